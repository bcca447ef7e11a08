/*
Package main implements the identifier suggestion server and CLI [DBG] application.

NameServe answers "did you mean <X>?" for misspelled identifiers: given an
input name and a set of known-good candidates, it returns the closest one
by Levenshtein edit distance, or nothing when no candidate is close enough.
It can operate as a MessagePack IPC server for integration with error
reporting paths in other tools, or as a CLI application for testing and
debugging.

Candidate sets are named and held in-memory in a registry, one set per
namespace of known identifiers (a schema's field names, a command table,
a flag list). An input that already matches a known name exactly is
reported as known rather than corrected.

# Usage

Start the server with default settings:

	nameserve

Load a candidate list into the default set and enable debug mode:

	nameserve -dict fields.txt -d

Run in CLI mode for interactive testing:

	nameserve -c -dict fields.txt -set fields

Candidate list files hold one identifier per line; blank lines and '#'
comments are skipped.

# Configuration

Runtime configuration is managed through a TOML file with server bounds,
registry limits, and CLI defaults:

	[server]
	max_input_len = 256
	max_candidates = 4096
	enable_filter = true

	[registry]
	max_sets = 64
	max_set_size = 65536

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Suggestion
requests are processed synchronously with microsecond timing information
included in responses.

Send a suggestion request with inline candidates:

	{"id": "req1", "in": "vacter", "c": ["vector", "id", "name"]}

Receive the closest candidate under the threshold:

	{"id": "req1", "s": "vector", "d": 2, "f": true, "t": 38}

Registry requests load and inspect candidate sets at runtime:

	{"id": "reg1", "action": "add_set", "set": "fields", "names": ["vector", "id"]}
	{"id": "reg2", "action": "list_sets"}

A request with no close-enough candidate gets a normal found=false
response; error responses are reserved for malformed or over-limit
requests.

# Selection Policy

A candidate qualifies when its edit distance to the input is at most a
third of the input's rune count (integer division). Among qualifiers the
smallest distance wins and ties go to the first candidate in list order.
Empty input never produces a suggestion. The cutoff is a fixed heuristic;
there is no configuration knob for it.

# Command Line Flags

The following flags control application behavior:

	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-config string
	    Custom config file path
	-dict string
	    Candidate list file to load at startup
	-set string
	    Registry set name for -dict and CLI lookups (default from config)
	-maxlen int
	    Maximum input length in bytes (default from config)
	-no-filter
	    Disable input filtering (DBG only) - accepts raw lines with spaces, control chars, etc

The config file path resolves to the user config directory, falling back
to the executable directory and finally builtin defaults.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/nameserve/internal/cli"
	"github.com/bastiangx/nameserve/internal/utils"
	"github.com/bastiangx/nameserve/pkg/config"
	"github.com/bastiangx/nameserve/pkg/server"
	"github.com/bastiangx/nameserve/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "nameserve"
	gh      = "https://github.com/bastiangx/nameserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	configPath := flag.String("config", "", "Custom config file path")
	dictPath := flag.String("dict", "", "Candidate list file to load at startup")
	setName := flag.String("set", "", "Registry set name for -dict and CLI lookups")
	maxLen := flag.Int("maxlen", 0, "Maximum input length in bytes (0 uses config value)")
	noFilter := flag.Bool("no-filter", false, "Disable input filtering (DBG only)")

	flag.Parse()

	if *showVersion {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    false,
			ReportTimestamp: false,
			Prefix:          "",
		})

		styles := log.DefaultStyles()

		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

		logger.SetStyles(styles)

		logger.Print("")
		logger.Print("[ NameServe ] did you mean <X>? for your identifiers")
		logger.Print("", "version", Version)
		logger.Print("")
		logger.Print("use -h or --help to see available options")
		logger.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config at: %s", config.GetActiveConfigPath(activePath))

	if *maxLen > 0 {
		cfg.Server.MaxInputLen = *maxLen
		cfg.CLI.MaxInputLen = *maxLen
	}
	if *noFilter {
		cfg.Server.EnableFilter = false
	}

	targetSet := *setName
	if targetSet == "" {
		targetSet = cfg.CLI.DefaultSet
	}

	registry := suggest.NewRegistry()

	dict := *dictPath
	if dict == "" {
		dict = cfg.CLI.DefaultDict
	}
	if dict != "" {
		names, err := utils.ParseWordList(dict)
		if err != nil {
			log.Fatalf("Failed to load candidate list %s: %v", dict, err)
		}
		added := registry.Add(targetSet, names...)
		log.Debugf("Loaded %s names into set %q from %s",
			utils.FormatWithCommas(added), targetSet, dict)
	}

	if *cliMode {
		handler := cli.NewInputHandler(registry, targetSet, cfg.CLI.MaxInputLen, *noFilter)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI loop: %v", err)
		}
		return
	}

	srv := server.NewServer(registry, cfg)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server: %v", err)
	}
}
