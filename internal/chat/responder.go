// Package chat implements the simulated conversation responder. Replies are
// canned by design: the original assistant never did real language
// processing, and this port keeps that behavior.
package chat

import (
	"time"

	"github.com/drpriyanshi/companion-tui/internal/rng"
)

// cannedReplies is the fixed six-item list the bot draws from, independent
// of what the user wrote.
var cannedReplies = []string{
	"I understand your concern. Can you tell me more about when these symptoms started?",
	"Thank you for sharing that with me. Based on what you've described, here are some gentle recommendations...",
	"That sounds manageable. Let's work together on some simple steps to help you feel better.",
	"I'm here to support you. Have you been taking your medications as prescribed?",
	"It's great that you're staying aware of your health. Consider tracking this in your Health Tracker.",
	"Remember, small lifestyle changes can make a big difference. You're doing wonderfully by staying proactive!",
}

const (
	minDelay    = 1500 * time.Millisecond
	delayJitter = 1000 * time.Millisecond
)

// Responder produces one delayed canned reply per user message. Both the
// delay and the pick come from labelled streams so a fixed seed replays the
// exact conversation.
type Responder struct {
	replies *rng.Stream
	delays  *rng.Stream
}

// NewResponder derives the responder's streams from the session seed.
func NewResponder(seed rng.Seed) *Responder {
	return &Responder{
		replies: seed.Stream("chat:reply"),
		delays:  seed.Stream("chat:delay"),
	}
}

// Delay samples the composing pause, uniform in [1.5s, 2.5s).
func (r *Responder) Delay() time.Duration {
	return minDelay + time.Duration(r.delays.Float64()*float64(delayJitter))
}

// Reply picks the next canned response, uniformly at random.
func (r *Responder) Reply() string {
	return cannedReplies[r.replies.Intn(len(cannedReplies))]
}

// Replies exposes the canned list for tests and the help screen.
func Replies() []string {
	out := make([]string, len(cannedReplies))
	copy(out, cannedReplies)
	return out
}
