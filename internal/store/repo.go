package store

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/drpriyanshi/companion-tui/internal/domain"
)

// NewID produces an identifier of the form <prefix>_<unix-ms>_<suffix>: a
// coarse monotonic time component plus nine random base36 characters.
// Collision probability is treated as negligible, not eliminated.
func NewID(prefix string) string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("%s_%d_fallback0", prefix, time.Now().UnixMilli())
	}
	const space = 36 * 36 * 36 * 36 * 36 * 36 * 36 * 36 * 36 // 36^9
	n := binary.BigEndian.Uint64(b[:]) % uint64(space)
	suffix := strconv.FormatUint(n, 36)
	if pad := 9 - len(suffix); pad > 0 {
		suffix = strings.Repeat("0", pad) + suffix
	}
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), suffix)
}

// decode unmarshals a document into v. Corrupt or partial JSON is logged
// and reported as absent; it never reaches the caller as an error.
func decode(raw, key string, v any) bool {
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		slog.Warn("discarding corrupt document", "key", key, "error", err)
		return false
	}
	return true
}

// Store bundles the typed repositories over one Documents port.
type Store struct {
	Docs     Documents
	Profiles *Profiles
	Messages *Messages
	Health   *HealthEntries
	States   *AppStates
}

func New(docs Documents) *Store {
	return &Store{
		Docs:     docs,
		Profiles: &Profiles{docs: docs},
		Messages: &Messages{docs: docs},
		Health:   &HealthEntries{docs: docs},
		States:   &AppStates{docs: docs},
	}
}

// ClearAll removes every slot unconditionally. Used by the reset flow.
func (s *Store) ClearAll(ctx context.Context) error {
	return s.Docs.Reset(ctx)
}

// Profiles manages the single user-profile slot.
type Profiles struct{ docs Documents }

// Save overwrites the profile slot. No validation happens at this layer.
func (p *Profiles) Save(ctx context.Context, profile domain.UserProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return errors.Wrap(err, "marshal profile")
	}
	return p.docs.Set(ctx, KeyUserProfile, string(raw))
}

// Get returns the stored profile with its timestamps reconstructed, or nil
// when the slot is absent or unreadable.
func (p *Profiles) Get(ctx context.Context) (*domain.UserProfile, error) {
	raw, ok, err := p.docs.Get(ctx, KeyUserProfile)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var profile domain.UserProfile
	if !decode(raw, KeyUserProfile, &profile) {
		return nil, nil
	}
	return &profile, nil
}

// Messages manages the append-only chat transcript slot.
type Messages struct{ docs Documents }

// List returns the full collection in storage order; empty when the slot
// is absent or malformed.
func (m *Messages) List(ctx context.Context) ([]domain.ChatMessage, error) {
	raw, ok, err := m.docs.Get(ctx, KeyChatMessages)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var msgs []domain.ChatMessage
	if !decode(raw, KeyChatMessages, &msgs) {
		return nil, nil
	}
	return msgs, nil
}

// ListFor filters the transcript down to one user's messages.
func (m *Messages) ListFor(ctx context.Context, userID string) ([]domain.ChatMessage, error) {
	all, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	out := all[:0:0]
	for _, msg := range all {
		if msg.UserID == userID {
			out = append(out, msg)
		}
	}
	return out, nil
}

// Add assigns an id and timestamp, appends the message to the collection,
// writes the whole collection back, and returns the stored record.
func (m *Messages) Add(ctx context.Context, msg domain.ChatMessage) (domain.ChatMessage, error) {
	existing, err := m.List(ctx)
	if err != nil {
		return domain.ChatMessage{}, err
	}
	msg.ID = NewID("msg")
	msg.Timestamp = time.Now().UTC()
	existing = append(existing, msg)
	raw, err := json.Marshal(existing)
	if err != nil {
		return domain.ChatMessage{}, errors.Wrap(err, "marshal messages")
	}
	if err := m.docs.Set(ctx, KeyChatMessages, string(raw)); err != nil {
		return domain.ChatMessage{}, err
	}
	return msg, nil
}

// HealthEntries manages the health-reading collection slot.
type HealthEntries struct{ docs Documents }

// List returns all entries in storage order; empty when absent or malformed.
func (h *HealthEntries) List(ctx context.Context) ([]domain.HealthData, error) {
	raw, ok, err := h.docs.Get(ctx, KeyHealthData)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var entries []domain.HealthData
	if !decode(raw, KeyHealthData, &entries) {
		return nil, nil
	}
	return entries, nil
}

// ListFor filters entries down to one user.
func (h *HealthEntries) ListFor(ctx context.Context, userID string) ([]domain.HealthData, error) {
	all, err := h.List(ctx)
	if err != nil {
		return nil, err
	}
	out := all[:0:0]
	for _, e := range all {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Add assigns an id and creation time and persists the entry. A second
// save for the same (user, date) replaces the earlier entry in place
// instead of appending a duplicate the reader would ignore.
func (h *HealthEntries) Add(ctx context.Context, entry domain.HealthData) (domain.HealthData, error) {
	existing, err := h.List(ctx)
	if err != nil {
		return domain.HealthData{}, err
	}
	entry.ID = NewID("health")
	entry.CreatedAt = time.Now().UTC()
	replaced := false
	for i, e := range existing {
		if e.UserID == entry.UserID && e.Date == entry.Date {
			existing[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		existing = append(existing, entry)
	}
	raw, err := json.Marshal(existing)
	if err != nil {
		return domain.HealthData{}, errors.Wrap(err, "marshal health entries")
	}
	if err := h.docs.Set(ctx, KeyHealthData, string(raw)); err != nil {
		return domain.HealthData{}, err
	}
	return entry, nil
}

// ForDate returns the entry for a user and calendar date, or nil.
func (h *HealthEntries) ForDate(ctx context.Context, userID, date string) (*domain.HealthData, error) {
	all, err := h.ListFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, e := range all {
		if e.Date == date {
			entry := e
			return &entry, nil
		}
	}
	return nil, nil
}

// AppStates manages the reserved fourth slot: a write-only launch snapshot.
type AppStates struct{ docs Documents }

func (a *AppStates) Save(ctx context.Context, st domain.AppState) error {
	st.UpdatedAt = time.Now().UTC()
	raw, err := json.Marshal(st)
	if err != nil {
		return errors.Wrap(err, "marshal app state")
	}
	return a.docs.Set(ctx, KeyAppState, string(raw))
}
