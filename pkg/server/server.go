package server

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/nameserve/internal/utils"
	"github.com/bastiangx/nameserve/pkg/config"
	"github.com/bastiangx/nameserve/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for identifier suggestions
type Server struct {
	registry *suggest.Registry
	cfg      *config.Config
	dec      *msgpack.Decoder
	enc      *msgpack.Encoder
}

// NewServer creates a new suggestion server using stdin/stdout for IPC
func NewServer(registry *suggest.Registry, cfg *config.Config) *Server {
	return NewServerWithIO(registry, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over arbitrary streams, used by
// tests and embedders that own the transport.
func NewServerWithIO(registry *suggest.Registry, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		registry: registry,
		cfg:      cfg,
		dec:      msgpack.NewDecoder(r),
		enc:      msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. Returns nil on EOF.
func (s *Server) Start() error {
	log.Debug("Starting Server.")

	for {
		var request Request
		if err := s.dec.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches a decoded request
func (s *Server) handleRequest(request Request) {
	if request.Action != "" {
		s.handleRegistry(request)
		return
	}
	s.handleSuggest(request)
}

// handleSuggest processes a suggestion request against either the
// inline candidate list or a named registry set. A missing close
// match is a normal found=false response; errors are reserved for
// requests that exceed the configured bounds.
func (s *Server) handleSuggest(request Request) {
	input := request.Input

	if s.cfg.Server.MaxInputLen > 0 && len(input) > s.cfg.Server.MaxInputLen {
		s.sendError(request.ID, fmt.Sprintf("Input exceeds maximum length of %d bytes", s.cfg.Server.MaxInputLen), 400)
		log.Debug("Input too long in request", "id", request.ID)
		return
	}
	if s.cfg.Server.MaxCandidates > 0 && len(request.Candidates) > s.cfg.Server.MaxCandidates {
		s.sendError(request.ID, fmt.Sprintf("Candidate list exceeds maximum size of %d", s.cfg.Server.MaxCandidates), 400)
		log.Debug("Candidate list too large in request", "id", request.ID)
		return
	}

	// input filtering by default (unless disabled in config)
	if s.cfg.Server.EnableFilter && !utils.IsValidIdentifier(input) {
		log.Debugf("Filtered input %q", input)
		s.sendResponse(SuggestResponse{ID: request.ID, Found: false})
		return
	}

	start := time.Now()

	var response SuggestResponse
	response.ID = request.ID

	if request.Set != "" {
		result := s.registry.Lookup(request.Set, input)
		response.Known = result.Known
		if result.Found {
			response.Suggestion = result.Match.Word
			response.Distance = result.Match.Distance
			response.Found = true
		}
	} else {
		match, found := suggest.BestMatch(input, request.Candidates)
		if found {
			response.Suggestion = match.Word
			response.Distance = match.Distance
			response.Found = true
		}
	}

	response.TimeTaken = time.Since(start).Microseconds()
	s.sendResponse(response)
}

// handleRegistry processes registry management actions
func (s *Server) handleRegistry(request Request) {
	switch request.Action {
	case "add_set":
		s.handleAddSet(request)
	case "get_info":
		stats := s.registry.Stats()
		s.sendResponse(RegistryResponse{
			ID:     request.ID,
			Status: "ok",
			Count:  stats["totalNames"],
			Sets:   s.registry.Sets(),
		})
	case "list_sets":
		s.sendResponse(RegistryResponse{
			ID:     request.ID,
			Status: "ok",
			Sets:   s.registry.Sets(),
		})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown action: %s", request.Action), 400)
	}
}

// handleAddSet loads names into a registry set, enforcing config bounds
func (s *Server) handleAddSet(request Request) {
	if request.Set == "" {
		s.sendError(request.ID, "Missing 'set' parameter for add_set", 400)
		return
	}
	if max := s.cfg.Registry.MaxSets; max > 0 {
		if len(s.registry.Sets()) >= max && s.registry.Len(request.Set) == 0 {
			s.sendError(request.ID, fmt.Sprintf("Registry is full (%d sets)", max), 409)
			return
		}
	}
	if max := s.cfg.Registry.MaxSetSize; max > 0 {
		if s.registry.Len(request.Set)+len(request.Names) > max {
			s.sendError(request.ID, fmt.Sprintf("Set %q would exceed maximum size of %d", request.Set, max), 409)
			return
		}
	}

	names := request.Names
	if s.cfg.Server.EnableFilter {
		filtered := names[:0:0]
		for _, name := range names {
			if utils.IsValidIdentifier(name) {
				filtered = append(filtered, name)
			}
		}
		names = filtered
	}

	added := s.registry.Add(request.Set, names...)
	log.Debugf("Added %d names to set %q", added, request.Set)

	s.sendResponse(RegistryResponse{
		ID:     request.ID,
		Status: "ok",
		Count:  added,
	})
}

// sendResponse encodes the given response as msgpack onto the output
// stream.
func (s *Server) sendResponse(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	errResponse := ErrorResponse{
		ID:    id,
		Error: message,
		Code:  code,
	}
	s.sendResponse(errResponse)
}
