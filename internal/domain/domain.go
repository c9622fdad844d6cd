package domain

import "time"

// Gender values accepted during onboarding.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Language selects the string bundle for every user-visible label.
type Language string

const (
	LanguageEnglish Language = "english"
	LanguageHindi   Language = "hindi"
)

// Sender identifies which side of the conversation authored a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ContentKind distinguishes text messages from the (stubbed) media kinds.
type ContentKind string

const (
	ContentText  ContentKind = "text"
	ContentImage ContentKind = "image"
	ContentVoice ContentKind = "voice"
)

// Location is an optional position fix captured during onboarding.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// UserProfile is the single per-device user record. Its presence in storage
// is the sole signal that onboarding already happened. ID and CreatedAt are
// immutable after creation; LastLogin is touched on every launch.
type UserProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Age       int       `json:"age"`
	Gender    Gender    `json:"gender"`
	Location  *Location `json:"location,omitempty"`
	Language  Language  `json:"language"`
	CreatedAt time.Time `json:"createdAt"`
	LastLogin time.Time `json:"lastLogin"`
}

// ChatMessage is an append-only transcript entry. Messages are never edited
// or deleted; display order equals insertion order.
type ChatMessage struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Content   string      `json:"content"`
	Sender    Sender      `json:"sender"`
	Timestamp time.Time   `json:"timestamp"`
	Kind      ContentKind `json:"type"`
	Language  Language    `json:"language"`
}

// BloodPressure is a systolic/diastolic pair in mmHg.
type BloodPressure struct {
	Systolic  int `json:"systolic"`
	Diastolic int `json:"diastolic"`
}

// HealthData is one logged reading for a calendar day. Date carries no time
// component (YYYY-MM-DD); at most one entry exists per (user, date).
type HealthData struct {
	ID            string        `json:"id"`
	UserID        string        `json:"userId"`
	Date          string        `json:"date"`
	BloodPressure BloodPressure `json:"bloodPressure"`
	InsulinLevel  float64       `json:"insulinLevel"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// AppState occupies the fourth storage slot. It is a write-only launch
// snapshot, never read back as a source of truth.
type AppState struct {
	LaunchID  string    `json:"launchId"`
	Language  Language  `json:"language"`
	Screen    string    `json:"screen"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DateOf formats t as a date-only string the way health entries are keyed.
func DateOf(t time.Time) string { return t.Format("2006-01-02") }
