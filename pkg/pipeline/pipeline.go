package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/snaik20/florisboard/pkg/emoji"
	"github.com/snaik20/florisboard/pkg/suggest"
)

// Protocol constants. These are fixed by design, not runtime-overridable:
// changing them changes the editor-facing suggestion behavior.
const (
	// TriggerIndicator starts an emoji query inside composing text.
	TriggerIndicator byte = ':'
	// DebounceInterval is the quiet period a snapshot must survive
	// uninterrupted before it is processed.
	DebounceInterval = 200 * time.Millisecond
	// MinQueryLength is the composing-text length a snapshot must exceed
	// before any query is extracted.
	MinQueryLength = 3
	// MaxSuggestions bounds every published candidate list.
	MaxSuggestions = 5
)

// Settings exposes the user preferences the pipeline consumes. The
// enabled flag is read fresh at every processing step; the tone
// preference is read once, when the catalog is first built.
type Settings interface {
	SuggestionsEnabled() bool
	PreferredSkinTone() emoji.SkinTone
}

// Pipeline is the per-session suggestion orchestrator. It owns the
// published Value exclusively and is scoped to the context passed to Run;
// cancelling that context stops the debounce wait and the loop with no
// partial publication. Construct one pipeline per editing session, never
// share a global instance.
type Pipeline struct {
	catalog   *emoji.Catalog
	settings  Settings
	snapshots <-chan Snapshot
	value     *Value

	quiet     time.Duration
	trigger   byte
	minLength int
	limit     int
}

// New wires a pipeline over the given snapshot stream using the protocol
// constants.
func New(catalog *emoji.Catalog, settings Settings, snapshots <-chan Snapshot) *Pipeline {
	return &Pipeline{
		catalog:   catalog,
		settings:  settings,
		snapshots: snapshots,
		value:     NewValue(),
		quiet:     DebounceInterval,
		trigger:   TriggerIndicator,
		minLength: MinQueryLength,
		limit:     MaxSuggestions,
	}
}

// Candidates returns the published candidate list cell. Read-only for
// callers; the pipeline is the sole writer.
func (p *Pipeline) Candidates() *Value {
	return p.value
}

// Run consumes the snapshot stream until ctx is cancelled or the stream
// closes. It blocks; callers usually start it on its own goroutine. At
// most one snapshot is processed through extraction and matching at a
// time.
func (p *Pipeline) Run(ctx context.Context) {
	settled := debounce(ctx, dedupe(ctx, p.snapshots), p.quiet)
	for snap := range settled {
		p.process(snap)
	}
	log.Debug("Suggestion pipeline stopped")
}

// process runs one settled snapshot through the guarded extract/match
// steps and publishes the outcome as a full replacement.
func (p *Pipeline) process(snap Snapshot) {
	if !p.settings.SuggestionsEnabled() {
		p.value.publish(nil)
		return
	}

	query, ok := suggest.ExtractQuery(snap.ComposingText, p.trigger, p.minLength)
	if !ok {
		p.value.publish(nil)
		return
	}

	candidates := suggest.Match(query, p.catalog.Emojis(), p.limit)
	log.Debugf("Query %q matched %d candidates", query, len(candidates))
	p.value.publish(candidates)
}

// dedupe drops every snapshot whose composing text equals the previously
// delivered one. It is the equality stage of the spec'd two-stage filter,
// kept separate from the timer stage so both stay testable on their own.
func dedupe(ctx context.Context, in <-chan Snapshot) <-chan Snapshot {
	out := make(chan Snapshot)
	go func() {
		defer close(out)
		var last string
		seen := false
		for {
			select {
			case <-ctx.Done():
				return
			case snap, ok := <-in:
				if !ok {
					return
				}
				if seen && snap.ComposingText == last {
					continue
				}
				seen = true
				last = snap.ComposingText
				select {
				case out <- snap:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

// debounce forwards only the newest snapshot once no further snapshot has
// arrived for a full quiet period. Arrivals during the wait reset the
// timer, so bursts collapse into a single delivery of the last snapshot.
func debounce(ctx context.Context, in <-chan Snapshot, quiet time.Duration) <-chan Snapshot {
	out := make(chan Snapshot)
	go func() {
		defer close(out)
		var (
			pending Snapshot
			timer   *time.Timer
			timerC  <-chan time.Time
		)
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case snap, ok := <-in:
				if !ok {
					return
				}
				pending = snap
				if timer == nil {
					timer = time.NewTimer(quiet)
					timerC = timer.C
				} else {
					if !timer.Stop() {
						select {
						case <-timerC:
						default:
						}
					}
					timer.Reset(quiet)
				}
			case <-timerC:
				timerC = nil
				timer = nil
				select {
				case out <- pending:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
