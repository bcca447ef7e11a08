// Package cli handles cmd line input and suggestions for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/nameserve/internal/logger"
	"github.com/bastiangx/nameserve/internal/utils"
	"github.com/bastiangx/nameserve/pkg/suggest"
	"github.com/charmbracelet/log"
)

// user-facing output goes through a prefixed logger so it stays
// visually separate from debug logging
var out = logger.Default("")

// InputHandler processes user input from stdin, running each line
// against a candidate set and printing the closest match. Flags
// control the input length cap and filtering behavior.
type InputHandler struct {
	registry     *suggest.Registry
	set          string
	maxInputLen  int
	requestCount int
	noFilter     bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(registry *suggest.Registry, set string, maxInputLen int, noFilter bool) *InputHandler {
	return &InputHandler{
		registry:    registry,
		set:         set,
		maxInputLen: maxInputLen,
		noFilter:    noFilter,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	out.Print("NameServe CLI")
	reader := bufio.NewReader(os.Stdin)
	out.Printf("Suggesting against set %q (%s names). Type a name and press Enter (Ctrl+C to exit):",
		h.set, utils.FormatWithCommas(h.registry.Len(h.set)))

	for {
		out.Print("> ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		h.handleInput(input)
	}
}

// handleInput runs a single lookup: validates the line, queries the
// registry, and prints the result with the distance and timing.
func (h *InputHandler) handleInput(input string) {
	h.requestCount++

	if h.maxInputLen > 0 && len(input) > h.maxInputLen {
		log.Errorf("Input too long: %s", input)
		return
	}

	// input filtering by default (unless --no-filter flag is used)
	if !h.noFilter {
		if !utils.IsValidIdentifier(input) {
			log.Infof("Not a valid identifier: '%s'", input)
			return
		}
	} else {
		log.Debug("Input filtering disabled")
	}

	start := time.Now()
	result := h.registry.Lookup(h.set, input)
	elapsed := time.Since(start)

	log.Debugf("Took [ %v ] for input '%s'", elapsed, input)

	if result.Known {
		out.Printf("'%s' is already a known name in %q", input, h.set)
		return
	}
	if !result.Found {
		log.Warnf("No suggestion for '%s' (threshold %d)", input, suggest.Threshold(input))
		return
	}

	clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", result.Match.Word)
	out.Printf("did you mean %s? (distance: %d)", clWord, result.Match.Distance)
}
