package server

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/mkarren/docdex/internal/logger"
	"github.com/mkarren/docdex/pkg/index"
	"github.com/mkarren/docdex/pkg/resolve"
)

// Server handles the IPC for phrase resolution and completion. Every
// request reads the store's current snapshot, so an index swap by the
// watcher or syncer is picked up on the next request.
type Server struct {
	store *index.Store
	dec   *msgpack.Decoder
	enc   *msgpack.Encoder
	log   *log.Logger
}

// NewServer creates a server speaking msgpack over the given streams.
func NewServer(store *index.Store, r io.Reader, w io.Writer) *Server {
	return &Server{
		store: store,
		dec:   msgpack.NewDecoder(r),
		enc:   msgpack.NewEncoder(w),
		log:   logger.New("ipc"),
	}
}

// Start signals readiness and processes requests until EOF.
func (s *Server) Start() error {
	s.log.Debug("Starting IPC server")
	s.send(StatusResponse{Status: "ready", Docs: s.store.Current().DocCount()})

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if err == io.EOF {
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handle(req)
	}
}

func (s *Server) handle(req Request) {
	switch req.Op {
	case "resolve":
		s.handleResolve(req)
	case "complete":
		s.handleComplete(req)
	case "health":
		s.send(StatusResponse{ID: req.ID, Status: "ok", Docs: s.store.Current().DocCount()})
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown op: %s", req.Op), 400)
	}
}

func (s *Server) handleResolve(req Request) {
	if req.Input == "" {
		s.sendError(req.ID, "Missing 'q' parameter", 400)
		return
	}

	start := time.Now()
	res := resolve.Resolve(s.store.Current(), req.Input, resolve.Options{
		Detail:  req.Detail,
		Install: req.Install,
	})

	s.send(ResolveResponse{
		ID:          req.ID,
		Path:        res.Path,
		Exists:      res.Exists,
		IsIndex:     res.IsIndex,
		Suggestions: res.Suggestions,
		TimeTaken:   time.Since(start).Microseconds(),
	})
}

func (s *Server) handleComplete(req Request) {
	iteration := req.Iteration
	if iteration < 1 {
		iteration = 1
	}

	start := time.Now()
	c := resolve.Complete(s.store.Current(), req.Input, iteration, resolve.MatchCommonPrefix)

	s.send(CompleteResponse{
		ID:        req.ID,
		Line:      c.Line,
		Choices:   c.Choices,
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func (s *Server) send(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
