// Package cli handles cmd line input and suggestions for DBG and testing various features
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/snaik20/florisboard/internal/logger"
	"github.com/snaik20/florisboard/pkg/pipeline"
	"github.com/snaik20/florisboard/pkg/suggest"
)

// InputHandler drives the suggestion pipeline from stdin: every line is
// treated as the current composing text and the published candidate list
// is printed once the debounce settles. Useful for testing extraction,
// matching and debounce behavior without an editor attached.
type InputHandler struct {
	snapshots chan<- pipeline.Snapshot
	pipe      *pipeline.Pipeline
	maxLength int
	out       *log.Logger
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(pipe *pipeline.Pipeline, snapshots chan<- pipeline.Snapshot, maxLength int) *InputHandler {
	return &InputHandler{
		snapshots: snapshots,
		pipe:      pipe,
		maxLength: maxLength,
		out:       logger.Default(""),
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin, feeds it to
// the pipeline as a snapshot and waits for the debounced publication.
// Loop terminates if an error occurs while reading from stdin.
func (h *InputHandler) Start(ctx context.Context) error {
	h.out.Print("EmojiSuggest CLI [BETA]")
	reader := bufio.NewReader(os.Stdin)
	h.out.Print("type composing text (e.g. 'hello :smi') and press Enter (Ctrl+C to exit):")

	updates := h.pipe.Candidates().Watch(ctx)
	// Discard the initial empty publication.
	select {
	case <-updates:
	case <-ctx.Done():
		return ctx.Err()
	}

	for {
		h.out.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}
		h.handleInput(ctx, line, updates)
	}
}

// handleInput pushes one composing-text snapshot and prints the resulting
// publication. An unchanged line is suppressed upstream and never
// publishes, so the wait is bounded by a timeout.
func (h *InputHandler) handleInput(ctx context.Context, composing string, updates <-chan []suggest.Candidate) {
	if len(composing) > h.maxLength {
		log.Errorf("Input too long: %d chars", len(composing))
		return
	}

	start := time.Now()
	select {
	case h.snapshots <- pipeline.Snapshot{ComposingText: composing}:
	case <-ctx.Done():
		return
	}

	wait := time.NewTimer(pipeline.DebounceInterval + 250*time.Millisecond)
	defer wait.Stop()

	select {
	case candidates := <-updates:
		elapsed := time.Since(start)
		log.Debugf("Took [ %v ] for input '%s'", elapsed, composing)
		if len(candidates) == 0 {
			log.Warnf("No suggestions for input: '%s'", composing)
			return
		}
		h.out.Printf("Found %d suggestions:", len(candidates))
		for i, c := range candidates {
			clName := fmt.Sprintf("\033[38;5;75m%s\033[0m", c.Emoji.Name)
			h.out.Printf("%2d. %s  %-40s", i+1, c.Emoji.Value, clName)
		}
	case <-wait.C:
		log.Warn("No publication (input unchanged?)")
	case <-ctx.Done():
	}
}
