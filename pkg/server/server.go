package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/snaik20/florisboard/internal/logger"
	"github.com/snaik20/florisboard/internal/utils"
	"github.com/snaik20/florisboard/pkg/config"
	"github.com/snaik20/florisboard/pkg/emoji"
	"github.com/snaik20/florisboard/pkg/pipeline"
	"github.com/snaik20/florisboard/pkg/suggest"
)

// Server handles the IPC for emoji suggestions. Inbound requests are
// decoded from reader; responses and pipeline events share writer, so
// every write goes through writeMu.
type Server struct {
	catalog   *emoji.Catalog
	pipe      *pipeline.Pipeline
	snapshots chan pipeline.Snapshot
	cfg       *config.Config

	indexOnce sync.Once
	index     *suggest.Index

	reader io.Reader
	writer io.Writer

	log *log.Logger

	writeMu sync.Mutex
}

// NewServer creates a new suggestion server using stdin/stdout for IPC.
func NewServer(catalog *emoji.Catalog, settings pipeline.Settings, cfg *config.Config) *Server {
	snapshots := make(chan pipeline.Snapshot, 16)
	return &Server{
		catalog:   catalog,
		pipe:      pipeline.New(catalog, settings, snapshots),
		snapshots: snapshots,
		cfg:       cfg,
		reader:    os.Stdin,
		writer:    os.Stdout,
		log:       logger.New("ipc"),
	}
}

// Start runs the pipeline and listens for IPC requests until the input
// stream ends or ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	s.log.Debug("Starting Server.")
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go s.pipe.Run(ctx)
	go s.forwardSuggestions(ctx)

	s.send(StatusResponse{Status: "ready"})

	dec := msgpack.NewDecoder(s.reader)
	for {
		var request Request
		if err := dec.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if ctx.Err() != nil {
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			s.send(RequestError{Error: "Invalid msgpack request", Code: 400})
			continue
		}
		s.handleRequest(ctx, request)
	}
}

// forwardSuggestions pushes every pipeline publication to the client as
// an unsolicited event.
func (s *Server) forwardSuggestions(ctx context.Context) {
	updates := s.pipe.Candidates().Watch(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case candidates, ok := <-updates:
			if !ok {
				return
			}
			s.send(SuggestionsEvent{
				Event: "suggestions",
				Items: toItems(candidates),
				Count: len(candidates),
			})
		}
	}
}

// handleRequest dispatches one decoded request based on its op.
func (s *Server) handleRequest(ctx context.Context, request Request) {
	switch request.Op {
	case "compose":
		s.handleCompose(ctx, request)
	case "complete":
		s.handleComplete(request)
	case "health":
		s.send(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.send(RequestError{
			ID:    request.ID,
			Error: fmt.Sprintf("Unknown op: %s", request.Op),
			Code:  400,
		})
	}
}

// handleCompose feeds one composing-text snapshot into the pipeline. The
// result arrives later as a suggestions event once the debounce settles.
func (s *Server) handleCompose(ctx context.Context, request Request) {
	select {
	case s.snapshots <- pipeline.Snapshot{ComposingText: request.Text}:
		s.send(StatusResponse{ID: request.ID, Status: "ok"})
	case <-ctx.Done():
	}
}

// handleComplete answers a shortcode prefix completion request. It
// validates the request, queries the catalog's prefix index and sends the
// response with timing information.
func (s *Server) handleComplete(request Request) {
	prefix := request.Prefix

	if prefix == "" {
		s.send(RequestError{ID: request.ID, Error: "Missing 'p' parameter", Code: 400})
		s.log.Debug("Prefix is empty in request")
		return
	}

	if len(prefix) > s.cfg.Server.MaxPrefix {
		s.send(RequestError{
			ID:    request.ID,
			Error: fmt.Sprintf("Prefix exceeds maximum length of %d characters", s.cfg.Server.MaxPrefix),
			Code:  400,
		})
		s.log.Debug("Prefix is too long in request")
		return
	}

	if s.cfg.Server.EnableFilter && !utils.IsValidQuery(prefix) {
		s.send(CompleteResponse{ID: request.ID, Items: []SuggestionItem{}})
		s.log.Debugf("Prefix rejected by input filter: %q", prefix)
		return
	}

	limit := request.Limit
	if limit < 1 {
		limit = s.cfg.CLI.DefaultLimit
	}
	if limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}

	start := time.Now()
	candidates := s.shortcodeIndex().Complete(prefix, limit)
	elapsed := time.Since(start)

	s.send(CompleteResponse{
		ID:        request.ID,
		Items:     toItems(candidates),
		Count:     len(candidates),
		TimeTaken: elapsed.Milliseconds(),
	})
}

// shortcodeIndex builds the prefix index on first use; the catalog itself
// is also lazy, so the first completion request pays for both.
func (s *Server) shortcodeIndex() *suggest.Index {
	s.indexOnce.Do(func() {
		s.index = suggest.NewIndex(s.catalog.Emojis())
		s.log.Debugf("Shortcode index ready: %d names", s.index.Size())
	})
	return s.index
}

// send marshals the given message and writes it to the client.
func (s *Server) send(message interface{}) {
	data, err := msgpack.Marshal(message)
	if err != nil {
		s.log.Errorf("Marshaling response: %v", err)
		return
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if _, err := s.writer.Write(data); err != nil {
		s.log.Errorf("Writing response: %v", err)
	}
}

func toItems(candidates []suggest.Candidate) []SuggestionItem {
	items := make([]SuggestionItem, len(candidates))
	for i, c := range candidates {
		items[i] = SuggestionItem{Value: c.Emoji.Value, Name: c.Emoji.Name}
	}
	return items
}
