package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/wordcombo/pkg/arrange"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for arrangement requests
type Server struct {
	engine     arrange.Enumerator
	reader     io.Reader
	writer     *bufio.Writer
	encoder    *msgpack.Encoder
	maxLetters int
	maxLimit   int
	requests   int
}

// Option customizes a Server.
type Option func(*Server)

// WithReader overrides the input stream.
func WithReader(r io.Reader) Option {
	return func(s *Server) {
		if r != nil {
			s.reader = r
		}
	}
}

// WithWriter overrides the output stream.
func WithWriter(w io.Writer) Option {
	return func(s *Server) {
		if w != nil {
			s.writer = bufio.NewWriter(w)
		}
	}
}

// WithMaxLetters refuses requests with more letters than n. 0 disables the check.
func WithMaxLetters(n int) Option {
	return func(s *Server) {
		s.maxLetters = n
	}
}

// WithMaxLimit caps how many arrangements a response lists. 0 means no cap.
func WithMaxLimit(n int) Option {
	return func(s *Server) {
		s.maxLimit = n
	}
}

// NewServer creates a server on stdin/stdout unless options say otherwise.
func NewServer(engine arrange.Enumerator, opts ...Option) *Server {
	s := &Server{
		engine: engine,
		reader: os.Stdin,
		writer: bufio.NewWriter(os.Stdout),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.encoder = msgpack.NewEncoder(s.writer)
	return s
}

// Start announces readiness and serves requests until the input ends.
func (s *Server) Start() error {
	log.Debug("Starting server", "maxLetters", s.maxLetters, "maxLimit", s.maxLimit)
	decoder := msgpack.NewDecoder(bufio.NewReader(s.reader))

	s.sendResponse(StatusResponse{Status: "ready"})

	for {
		var req Request
		if err := decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				log.Debugf("Input closed after %d requests", s.requests)
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			return err
		}
		s.requests++
		s.handleRequest(req)
	}
}

// handleRequest routes a decoded request by action
func (s *Server) handleRequest(req Request) {
	switch req.Action {
	case ActionEnumerate:
		s.handleEnumerate(req)
	case ActionEstimate:
		s.handleEstimate(req)
	case ActionHealth:
		s.sendResponse(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown action: %s", req.Action), 400)
	}
}

// checkRequest validates req and returns its letter count.
func (s *Server) checkRequest(req arrange.Request) (int, error) {
	if err := arrange.Validate(req); err != nil {
		return 0, err
	}
	letters := 0
	for _, w := range req.Words {
		letters += arrange.WordLen(w)
	}
	return letters, nil
}

func (s *Server) handleEnumerate(raw Request) {
	req := arrange.Request{Mode: arrange.Mode(raw.Mode), Words: raw.Words, Prefix: raw.Prefix}
	letters, err := s.checkRequest(req)
	if err != nil {
		s.sendError(raw.ID, err.Error(), 400)
		return
	}
	if s.maxLetters > 0 && letters > s.maxLetters {
		s.sendError(raw.ID, fmt.Sprintf("Request has %d letters, limit is %d", letters, s.maxLetters), 413)
		log.Debug("Refused oversized request", "id", raw.ID, "letters", letters)
		return
	}

	start := time.Now()
	res, err := s.engine.Enumerate(req)
	if err != nil {
		s.sendError(raw.ID, err.Error(), 400)
		return
	}
	elapsed := time.Since(start)

	listed := res.Words
	if limit := s.effectiveLimit(raw.Limit); limit > 0 && limit < len(listed) {
		listed = listed[:limit]
	}
	arrangements := make([]Arrangement, len(listed))
	for i, w := range listed {
		arrangements[i] = Arrangement{Word: w, Serial: i + 1}
	}

	s.sendResponse(EnumerateResponse{
		ID:           raw.ID,
		Arrangements: arrangements,
		Count:        len(res.Words),
		Length:       res.Length,
		Orderings:    res.Orderings,
		TimeTaken:    elapsed.Microseconds(),
	})
}

func (s *Server) handleEstimate(raw Request) {
	req := arrange.Request{Mode: arrange.Mode(raw.Mode), Words: raw.Words}
	letters, err := s.checkRequest(req)
	if err != nil {
		s.sendError(raw.ID, err.Error(), 400)
		return
	}
	minLen, maxLen := arrange.Lengths(req)
	s.sendResponse(EstimateResponse{
		ID:        raw.ID,
		Orderings: arrange.RawOrderings(letters, minLen, maxLen).String(),
		Letters:   letters,
		Length:    maxLen,
	})
}

func (s *Server) effectiveLimit(requested int) int {
	if s.maxLimit > 0 && (requested <= 0 || requested > s.maxLimit) {
		return s.maxLimit
	}
	return requested
}

// sendResponse encodes a response and flushes it so the client sees it right away.
func (s *Server) sendResponse(response any) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
		return
	}
	if err := s.writer.Flush(); err != nil {
		log.Errorf("Writing response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
