package chat

import (
	"testing"
	"time"

	"github.com/drpriyanshi/companion-tui/internal/rng"
)

func TestDelayWithinBounds(t *testing.T) {
	seed, _ := rng.NewSeed("delay-bounds")
	r := NewResponder(seed)
	for i := 0; i < 500; i++ {
		d := r.Delay()
		if d < 1500*time.Millisecond || d >= 2500*time.Millisecond {
			t.Fatalf("delay out of [1.5s, 2.5s): %v", d)
		}
	}
}

func TestReplyFromCannedList(t *testing.T) {
	seed, _ := rng.NewSeed("canned-list")
	r := NewResponder(seed)
	canned := map[string]bool{}
	for _, s := range Replies() {
		canned[s] = true
	}
	if len(canned) != 6 {
		t.Fatalf("expected 6 canned replies, got %d", len(canned))
	}
	for i := 0; i < 100; i++ {
		if !canned[r.Reply()] {
			t.Fatal("reply not drawn from the canned list")
		}
	}
}

func TestResponderDeterministicPerSeed(t *testing.T) {
	s1, _ := rng.NewSeed("replay")
	s2, _ := rng.NewSeed("replay")
	a, b := NewResponder(s1), NewResponder(s2)
	for i := 0; i < 20; i++ {
		if a.Reply() != b.Reply() {
			t.Fatal("same seed produced different reply sequences")
		}
		if a.Delay() != b.Delay() {
			t.Fatal("same seed produced different delay sequences")
		}
	}
}
