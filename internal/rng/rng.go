package rng

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"strings"
)

var seedEncoding = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

// RandomText generates a fresh seed string for launches where none was
// configured. 15 bytes encode to 24 lowercase characters.
func RandomText() (string, error) {
	buf := make([]byte, 15)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToLower(seedEncoding.EncodeToString(buf)), nil
}

// seedFromString returns a 64-bit seed from an arbitrary string using SHA256.
func seedFromString(s string) uint64 {
	h := sha256.Sum256([]byte(s))
	return binary.LittleEndian.Uint64(h[:8])
}

// derive returns a deterministic child seed from a base seed and a label
// using HMAC-SHA256. Labels should be stable strings such as "chat:reply".
func derive(base uint64, label string) uint64 {
	key := make([]byte, 8)
	binary.LittleEndian.PutUint64(key, base)
	m := hmac.New(sha256.New, key)
	_, _ = m.Write([]byte(label))
	sum := m.Sum(nil)
	return binary.LittleEndian.Uint64(sum[:8])
}

// Seed encapsulates the canonical seed string for a session and exposes
// deterministic labelled streams. Timers and canned-reply picks draw from
// streams so tests can pin the exact sequence.
type Seed struct {
	Text string
	root uint64
}

// NewSeed creates a deterministic Seed from a textual seed. Empty text is rejected.
func NewSeed(text string) (Seed, error) {
	if text == "" {
		return Seed{}, fmt.Errorf("seed text must not be empty")
	}
	return Seed{Text: text, root: seedFromString(text)}, nil
}

// Stream returns a new deterministic RNG stream derived from the seed root.
func (s Seed) Stream(label string) *Stream {
	return newStream(derive(s.root, label))
}

// splitMix64 PRNG implementation for deterministic streams.
type splitMix64 struct{ state uint64 }

func (s *splitMix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Stream provides deterministic random numbers with support for labelled
// child streams.
type Stream struct {
	base uint64
	sm   *splitMix64
}

func newStream(seed uint64) *Stream {
	return &Stream{base: seed, sm: &splitMix64{state: seed}}
}

// Intn mirrors math/rand.Intn but is deterministic per stream.
func (s *Stream) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.sm.next() % uint64(n))
}

// Float64 returns a float in [0,1).
func (s *Stream) Float64() float64 {
	return float64(s.sm.next()>>11) / (1 << 53)
}

// Uint64 exposes the underlying 64-bit stream.
func (s *Stream) Uint64() uint64 { return s.sm.next() }

// Child creates a stable sub-stream derived from this stream's base seed and label.
func (s *Stream) Child(label string) *Stream { return newStream(derive(s.base, label)) }
