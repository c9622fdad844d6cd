// Package session owns which screen is active and how the app resolves its
// starting state from storage. The transition function is pure so it can be
// tested without any rendering.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/drpriyanshi/companion-tui/internal/domain"
	"github.com/drpriyanshi/companion-tui/internal/store"
)

// Screen is one full-page view state of the application.
type Screen int

const (
	ScreenIntro Screen = iota
	ScreenOnboarding
	ScreenHomepage
	ScreenChat
	ScreenHealth
)

func (s Screen) String() string {
	switch s {
	case ScreenIntro:
		return "intro"
	case ScreenOnboarding:
		return "onboarding"
	case ScreenHomepage:
		return "homepage"
	case ScreenChat:
		return "chat"
	case ScreenHealth:
		return "health"
	default:
		return "unknown"
	}
}

// Event is a screen-transition signal.
type Event int

const (
	EventIntroDone Event = iota // intro timer elapsed
	EventOnboarded              // onboarding persisted a profile
	EventOpenChat
	EventOpenHealth
	EventBack
)

// Reduce is the total transition function. Pairs it does not recognize
// leave the screen unchanged.
func Reduce(s Screen, e Event) Screen {
	switch {
	case s == ScreenIntro && e == EventIntroDone:
		return ScreenOnboarding
	case s == ScreenOnboarding && e == EventOnboarded:
		return ScreenHomepage
	case s == ScreenHomepage && e == EventOpenChat:
		return ScreenChat
	case (s == ScreenHomepage || s == ScreenChat) && e == EventOpenHealth:
		return ScreenHealth
	case (s == ScreenChat || s == ScreenHealth) && e == EventBack:
		return ScreenHomepage
	default:
		return s
	}
}

// IntroDuration is how long the splash stays up before auto-advancing.
const IntroDuration = 3 * time.Second

// Session is the resolved launch state: the profile (nil until onboarded)
// and the screen to start on.
type Session struct {
	Profile  *domain.UserProfile
	Screen   Screen
	LaunchID string
}

// Start resolves the initial state from storage. An existing profile gets
// its last-login touched and the app opens on the homepage; otherwise the
// intro plays. A launch snapshot is written to the reserved app-state slot
// either way; failures there are not fatal.
func Start(ctx context.Context, st *store.Store) (Session, error) {
	s := Session{Screen: ScreenIntro, LaunchID: uuid.NewString()}
	profile, err := st.Profiles.Get(ctx)
	if err != nil {
		return s, err
	}
	if profile != nil {
		profile.LastLogin = time.Now().UTC()
		if err := st.Profiles.Save(ctx, *profile); err != nil {
			return s, err
		}
		s.Profile = profile
		s.Screen = ScreenHomepage
	}
	language := domain.LanguageEnglish
	if profile != nil {
		language = profile.Language
	}
	_ = st.States.Save(ctx, domain.AppState{
		LaunchID: s.LaunchID,
		Language: language,
		Screen:   s.Screen.String(),
	})
	return s, nil
}
