package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/drpriyanshi/companion-tui/internal/domain"
)

func newTestStore() (*Store, context.Context) {
	return New(NewMemoryDocuments()), context.Background()
}

func TestProfileRoundTrip(t *testing.T) {
	s, ctx := newTestStore()
	got, err := s.Profiles.Get(ctx)
	if err != nil || got != nil {
		t.Fatalf("empty store should yield nil profile, got %v err %v", got, err)
	}
	now := time.Now().UTC().Truncate(time.Second)
	p := domain.UserProfile{
		ID: NewID("user"), Name: "Asha", Phone: "+91 9876543210", Age: 34,
		Gender: domain.GenderFemale, Language: domain.LanguageEnglish,
		CreatedAt: now, LastLogin: now,
	}
	if err := s.Profiles.Save(ctx, p); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	got, err = s.Profiles.Get(ctx)
	if err != nil || got == nil {
		t.Fatalf("get profile: %v / %v", got, err)
	}
	if got.ID != p.ID || got.Name != "Asha" || !got.CreatedAt.Equal(now) {
		t.Fatalf("profile mangled on round trip: %+v", got)
	}
}

func TestCorruptSlotsReadAsEmpty(t *testing.T) {
	s, ctx := newTestStore()
	for _, key := range []string{KeyUserProfile, KeyChatMessages, KeyHealthData} {
		if err := s.Docs.Set(ctx, key, "{not json"); err != nil {
			t.Fatalf("seed corrupt doc: %v", err)
		}
	}
	if p, err := s.Profiles.Get(ctx); err != nil || p != nil {
		t.Fatalf("corrupt profile should read as absent, got %v err %v", p, err)
	}
	if msgs, err := s.Messages.List(ctx); err != nil || len(msgs) != 0 {
		t.Fatalf("corrupt messages should read as empty, got %d err %v", len(msgs), err)
	}
	if entries, err := s.Health.List(ctx); err != nil || len(entries) != 0 {
		t.Fatalf("corrupt health data should read as empty, got %d err %v", len(entries), err)
	}
	// a write straight after recovery starts a fresh collection
	if _, err := s.Messages.Add(ctx, domain.ChatMessage{UserID: "u1", Content: "hi", Sender: domain.SenderUser, Kind: domain.ContentText}); err != nil {
		t.Fatalf("add after corruption: %v", err)
	}
	msgs, _ := s.Messages.List(ctx)
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message after recovery, got %d", len(msgs))
	}
}

func TestMessagesPreserveOrderAndUniqueIDs(t *testing.T) {
	s, ctx := newTestStore()
	contents := []string{"one", "two", "three", "four", "five"}
	for _, c := range contents {
		if _, err := s.Messages.Add(ctx, domain.ChatMessage{
			UserID: "u1", Content: c, Sender: domain.SenderUser,
			Kind: domain.ContentText, Language: domain.LanguageEnglish,
		}); err != nil {
			t.Fatalf("add %q: %v", c, err)
		}
	}
	msgs, err := s.Messages.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(msgs) != len(contents) {
		t.Fatalf("expected %d messages, got %d", len(contents), len(msgs))
	}
	seen := map[string]bool{}
	for i, m := range msgs {
		if m.Content != contents[i] {
			t.Fatalf("order broken at %d: got %q want %q", i, m.Content, contents[i])
		}
		if seen[m.ID] {
			t.Fatalf("duplicate message id %q", m.ID)
		}
		seen[m.ID] = true
		if m.Timestamp.IsZero() {
			t.Fatalf("message %d missing timestamp", i)
		}
	}
}

func TestListForFiltersByUser(t *testing.T) {
	s, ctx := newTestStore()
	for _, uid := range []string{"u1", "u2", "u1"} {
		if _, err := s.Messages.Add(ctx, domain.ChatMessage{UserID: uid, Content: "x", Sender: domain.SenderUser, Kind: domain.ContentText}); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	mine, err := s.Messages.ListFor(ctx, "u1")
	if err != nil {
		t.Fatalf("list for: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 messages for u1, got %d", len(mine))
	}
}

func TestHealthSameDateOverwrites(t *testing.T) {
	s, ctx := newTestStore()
	first, err := s.Health.Add(ctx, domain.HealthData{
		UserID: "u1", Date: "2025-08-29",
		BloodPressure: domain.BloodPressure{Systolic: 120, Diastolic: 80},
		InsulinLevel:  12,
	})
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	if _, err := s.Health.Add(ctx, domain.HealthData{
		UserID: "u1", Date: "2025-08-28",
		BloodPressure: domain.BloodPressure{Systolic: 118, Diastolic: 78},
		InsulinLevel:  11,
	}); err != nil {
		t.Fatalf("second add: %v", err)
	}
	second, err := s.Health.Add(ctx, domain.HealthData{
		UserID: "u1", Date: "2025-08-29",
		BloodPressure: domain.BloodPressure{Systolic: 130, Diastolic: 85},
		InsulinLevel:  14,
	})
	if err != nil {
		t.Fatalf("same-date add: %v", err)
	}
	entries, _ := s.Health.List(ctx)
	if len(entries) != 2 {
		t.Fatalf("same-date save should overwrite, got %d entries", len(entries))
	}
	// replacement keeps the collection position but takes a fresh identity
	if entries[0].Date != "2025-08-29" || entries[0].BloodPressure.Systolic != 130 {
		t.Fatalf("entry not replaced in place: %+v", entries[0])
	}
	if entries[0].ID == first.ID {
		t.Fatal("replacement should carry a fresh id")
	}
	// a different user's same date is untouched territory
	if _, err := s.Health.Add(ctx, domain.HealthData{UserID: "u2", Date: "2025-08-29", BloodPressure: domain.BloodPressure{Systolic: 110, Diastolic: 70}, InsulinLevel: 9}); err != nil {
		t.Fatalf("other user add: %v", err)
	}
	entries, _ = s.Health.List(ctx)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries across users, got %d", len(entries))
	}
	_ = second
}

func TestForDate(t *testing.T) {
	s, ctx := newTestStore()
	if _, err := s.Health.Add(ctx, domain.HealthData{UserID: "u1", Date: "2025-08-29", BloodPressure: domain.BloodPressure{Systolic: 120, Diastolic: 80}, InsulinLevel: 10}); err != nil {
		t.Fatalf("add: %v", err)
	}
	e, err := s.Health.ForDate(ctx, "u1", "2025-08-29")
	if err != nil || e == nil {
		t.Fatalf("expected entry for date, got %v err %v", e, err)
	}
	if e, _ := s.Health.ForDate(ctx, "u1", "2025-08-30"); e != nil {
		t.Fatal("expected no entry for other date")
	}
}

func TestClearAllRemovesEverySlot(t *testing.T) {
	s, ctx := newTestStore()
	_ = s.Profiles.Save(ctx, domain.UserProfile{ID: "u1", Name: "A"})
	_, _ = s.Messages.Add(ctx, domain.ChatMessage{UserID: "u1", Content: "x", Sender: domain.SenderUser, Kind: domain.ContentText})
	_, _ = s.Health.Add(ctx, domain.HealthData{UserID: "u1", Date: "2025-08-29", BloodPressure: domain.BloodPressure{Systolic: 120, Diastolic: 80}, InsulinLevel: 10})
	_ = s.States.Save(ctx, domain.AppState{LaunchID: "l1"})
	if err := s.ClearAll(ctx); err != nil {
		t.Fatalf("clear all: %v", err)
	}
	if p, _ := s.Profiles.Get(ctx); p != nil {
		t.Fatal("profile survived clear-all")
	}
	if msgs, _ := s.Messages.List(ctx); len(msgs) != 0 {
		t.Fatal("messages survived clear-all")
	}
	if entries, _ := s.Health.List(ctx); len(entries) != 0 {
		t.Fatal("health entries survived clear-all")
	}
}

func TestNewIDFormat(t *testing.T) {
	re := regexp.MustCompile(`^user_\d+_[0-9a-z]{9}$`)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID("user")
		if !re.MatchString(id) {
			t.Fatalf("unexpected id format: %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
