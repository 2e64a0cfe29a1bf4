package pipeline

import (
	"context"
	"testing"

	"github.com/snaik20/florisboard/pkg/emoji"
	"github.com/snaik20/florisboard/pkg/suggest"
)

func candidates(values ...string) []suggest.Candidate {
	out := make([]suggest.Candidate, len(values))
	for i, v := range values {
		out[i] = suggest.Candidate{Emoji: emoji.Emoji{Value: v}}
	}
	return out
}

func TestValueInitialEmpty(t *testing.T) {
	v := NewValue()
	if got := v.Load(); len(got) != 0 {
		t.Errorf("fresh cell holds %d candidates, want 0", len(got))
	}
}

func TestValueLoadAfterPublish(t *testing.T) {
	v := NewValue()
	v.publish(candidates("😀", "😺"))
	if got := v.Load(); len(got) != 2 || got[0].Emoji.Value != "😀" {
		t.Errorf("Load = %v, want the published pair", got)
	}

	// Publication is whole-list replacement.
	v.publish(nil)
	if got := v.Load(); len(got) != 0 {
		t.Errorf("Load after empty publish = %d candidates, want 0", len(got))
	}
}

func TestValueWatchDeliversCurrent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	v := NewValue()
	v.publish(candidates("😀"))

	updates := v.Watch(ctx)
	got := <-updates
	if len(got) != 1 || got[0].Emoji.Value != "😀" {
		t.Errorf("initial watch value = %v, want the current list", got)
	}
}

func TestValueWatchLatestWins(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	v := NewValue()
	updates := v.Watch(ctx)

	// Nobody reading: the buffered initial value goes stale and both
	// publications land while the subscriber sleeps. Only the newest
	// list must come out.
	v.publish(candidates("😀"))
	v.publish(candidates("😺", "😢"))

	got := <-updates
	if len(got) != 2 || got[0].Emoji.Value != "😺" {
		t.Errorf("watch delivered %v, want only the newest list", got)
	}
}

func TestValueWatchUnsubscribesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	v := NewValue()

	updates := v.Watch(ctx)
	<-updates
	cancel()

	// Publishing after cancel must not deadlock on the dead subscriber.
	v.publish(candidates("😀"))
	v.publish(candidates("😺"))
	if got := v.Load(); len(got) != 1 || got[0].Emoji.Value != "😺" {
		t.Errorf("Load = %v, want the last published list", got)
	}
}
