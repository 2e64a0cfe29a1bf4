// Package pipeline runs the reactive suggestion loop: it observes editor
// text snapshots, suppresses no-op changes, debounces bursts and publishes
// the matched candidate list to a single current-value cell the UI reads.
package pipeline

// Snapshot is one observation of the editor's composing text. Two
// snapshots are considered equal when their composing text is equal;
// everything else about the editor state is opaque to the pipeline.
type Snapshot struct {
	ComposingText string
}
