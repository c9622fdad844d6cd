package ui

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drpriyanshi/companion-tui/internal/chat"
	"github.com/drpriyanshi/companion-tui/internal/domain"
	"github.com/drpriyanshi/companion-tui/internal/geo"
	"github.com/drpriyanshi/companion-tui/internal/health"
	"github.com/drpriyanshi/companion-tui/internal/lang"
	"github.com/drpriyanshi/companion-tui/internal/session"
	"github.com/drpriyanshi/companion-tui/internal/store"
	"github.com/drpriyanshi/companion-tui/internal/util"
)

// onboarding focus slots; the gender row sits after the text fields
const (
	fieldName = iota
	fieldPhone
	fieldAge
	fieldGender
)

// health form focus slots
const (
	vitalSystolic = iota
	vitalDiastolic
	vitalInsulin
	vitalNotes
)

// insulinNoteDelay separates the two advisories after a save.
const insulinNoteDelay = 2 * time.Second

type model struct {
	ctx     context.Context
	st      *store.Store
	locator geo.Locator
	bot     *chat.Responder
	version string

	screen   session.Screen
	profile  *domain.UserProfile
	language domain.Language
	content  lang.Content
	launchID string

	width  int
	height int
	styles styles
	spin   spinner.Model

	// onboarding form
	step      int // 0 details, 1 location consent
	fields    []textinput.Model
	focus     int
	gender    domain.Gender
	formErr   string
	locating  bool
	locStatus string

	// homepage journey counters
	welcome  string
	checkIns int
	records  int
	consults int

	// chat
	chatInput textinput.Model
	messages  []domain.ChatMessage
	typing    bool

	status string

	// health tracker
	vitals       []textinput.Model
	vitalFocus   int
	healthErr    string
	bpNote       string
	insulinNote  string
	trend        health.Trend
	insulinTrend health.Trend
	today        *domain.HealthData
	previous     *domain.HealthData
	entries      []domain.HealthData
}

type (
	introDoneMsg   struct{}
	botReplyMsg    struct{ content string }
	insulinNoteMsg struct{ note string }
	locationMsg    struct {
		pos geo.Position
		err error
	}
)

func introCmd() tea.Cmd {
	return tea.Tick(session.IntroDuration, func(time.Time) tea.Msg { return introDoneMsg{} })
}

// botCmd picks the reply up front so the transcript is fixed the moment the
// user sends, even if the timer lands on another screen.
func (m *model) botCmd() tea.Cmd {
	reply := m.bot.Reply()
	return tea.Tick(m.bot.Delay(), func(time.Time) tea.Msg { return botReplyMsg{content: reply} })
}

func (m *model) insulinCmd(note string) tea.Cmd {
	return tea.Tick(insulinNoteDelay, func(time.Time) tea.Msg { return insulinNoteMsg{note: note} })
}

func (m *model) locateCmd() tea.Cmd {
	ctx, locator := m.ctx, m.locator
	return func() tea.Msg {
		pos, err := locator.Locate(ctx)
		return locationMsg{pos: pos, err: err}
	}
}

func initialModel(ctx context.Context, st *store.Store, locator geo.Locator, bot *chat.Responder, cfg util.Config, sess session.Session, version string) model {
	language := domain.LanguageEnglish
	if cfg.Language == string(domain.LanguageHindi) {
		language = domain.LanguageHindi
	}
	if sess.Profile != nil {
		language = sess.Profile.Language
	}
	m := model{
		ctx:      ctx,
		st:       st,
		locator:  locator,
		bot:      bot,
		version:  version,
		screen:   sess.Screen,
		profile:  sess.Profile,
		language: language,
		launchID: sess.LaunchID,
		gender:   domain.GenderMale,
	}
	m.content = lang.For(language)
	m.styles = newStyles(paletteFor(cfg.Theme))
	m.spin = spinner.New(spinner.WithSpinner(spinner.Dot))
	m.spin.Style = m.styles.title

	m.fields = make([]textinput.Model, 3)
	for i := range m.fields {
		m.fields[i] = textinput.New()
		m.fields[i].CharLimit = 64
		m.fields[i].Width = 32
	}
	m.fields[fieldAge].CharLimit = 3

	m.chatInput = textinput.New()
	m.chatInput.CharLimit = 500
	m.chatInput.Width = 60

	m.vitals = make([]textinput.Model, 4)
	for i := range m.vitals {
		m.vitals[i] = textinput.New()
		m.vitals[i].CharLimit = 8
		m.vitals[i].Width = 12
	}
	m.vitals[vitalNotes].CharLimit = 200
	m.vitals[vitalNotes].Width = 40

	m.applyContent()
	if m.screen == session.ScreenHomepage {
		m.refreshHomepage()
	}
	return m
}

// applyContent pushes the current language bundle into every placeholder.
func (m *model) applyContent() {
	m.fields[fieldName].Placeholder = m.content.NameLabel
	m.fields[fieldPhone].Placeholder = m.content.PhoneLabel
	m.fields[fieldAge].Placeholder = m.content.AgeLabel
	m.chatInput.Placeholder = m.content.ChatPlaceholder
	m.vitals[vitalSystolic].Placeholder = m.content.SystolicLabel
	m.vitals[vitalDiastolic].Placeholder = m.content.DiastolicLabel
	m.vitals[vitalInsulin].Placeholder = m.content.InsulinLabel
	m.vitals[vitalNotes].Placeholder = "Notes"
}

func (m *model) toggleLanguage() {
	if m.language == domain.LanguageHindi {
		m.language = domain.LanguageEnglish
	} else {
		m.language = domain.LanguageHindi
	}
	m.content = lang.For(m.language)
	m.applyContent()
	if m.profile != nil {
		m.profile.Language = m.language
		if err := m.st.Profiles.Save(m.ctx, *m.profile); err != nil {
			m.status = m.content.Error
		} else {
			m.status = ""
		}
	}
	_ = m.st.States.Save(m.ctx, domain.AppState{
		LaunchID: m.launchID,
		Language: m.language,
		Screen:   m.screen.String(),
	})
	if m.screen == session.ScreenHomepage {
		m.refreshHomepage()
	}
}

func (m *model) focusField(i int) {
	m.focus = i
	for j := range m.fields {
		if j == i {
			m.fields[j].Focus()
		} else {
			m.fields[j].Blur()
		}
	}
}

func (m *model) focusVital(i int) {
	m.vitalFocus = i
	for j := range m.vitals {
		if j == i {
			m.vitals[j].Focus()
		} else {
			m.vitals[j].Blur()
		}
	}
}

// tea.Model implementation ---------------------------------------------------

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick, textinput.Blink}
	if m.screen == session.ScreenIntro {
		cmds = append(cmds, introCmd())
	}
	return tea.Batch(cmds...)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case introDoneMsg:
		if m.screen == session.ScreenIntro {
			m.screen = session.Reduce(m.screen, session.EventIntroDone)
			m.focusField(fieldName)
		}
		return m, nil
	case locationMsg:
		m.locating = false
		if msg.err != nil {
			// lookup failures take the skip path; onboarding still completes
			m.locStatus = msg.err.Error()
			return m.completeOnboarding(nil)
		}
		return m.completeOnboarding(&domain.Location{
			Latitude:  msg.pos.Latitude,
			Longitude: msg.pos.Longitude,
			Address:   msg.pos.Address,
		})
	case botReplyMsg:
		// the reply lands even if the user navigated away mid-typing
		m.typing = false
		if m.profile != nil {
			if saved, err := m.st.Messages.Add(m.ctx, domain.ChatMessage{
				UserID:   m.profile.ID,
				Content:  msg.content,
				Sender:   domain.SenderBot,
				Kind:     domain.ContentText,
				Language: m.language,
			}); err == nil {
				m.messages = append(m.messages, saved)
			}
		}
		return m, nil
	case insulinNoteMsg:
		m.insulinNote = msg.note
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	switch m.screen {
	case session.ScreenOnboarding:
		return m.updateOnboarding(msg)
	case session.ScreenHomepage:
		return m.updateHomepage(msg)
	case session.ScreenChat:
		return m.updateChat(msg)
	case session.ScreenHealth:
		return m.updateHealth(msg)
	}
	return m, nil
}

// Onboarding -----------------------------------------------------------------

var phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]{10,}$`)

// validateDetails checks the three text fields; it returns the parsed age
// and an empty string on success.
func validateDetails(name, phone, ageText string) (int, string) {
	if strings.TrimSpace(name) == "" {
		return 0, "please enter your name"
	}
	if !phonePattern.MatchString(strings.TrimSpace(phone)) {
		return 0, "please enter a valid phone number"
	}
	age, err := strconv.Atoi(strings.TrimSpace(ageText))
	if err != nil || age < 1 || age > 150 {
		return 0, "please enter a valid age"
	}
	return age, ""
}

func cycleGender(g domain.Gender, step int) domain.Gender {
	order := []domain.Gender{domain.GenderMale, domain.GenderFemale, domain.GenderOther}
	idx := 0
	for i, o := range order {
		if o == g {
			idx = i
			break
		}
	}
	idx = (idx + step + len(order)) % len(order)
	return order[idx]
}

func (m model) updateOnboarding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.step == 1 {
		switch msg.String() {
		case "a":
			if !m.locating {
				m.locating = true
				m.locStatus = ""
				return m, m.locateCmd()
			}
			return m, nil
		case "s":
			return m.completeOnboarding(nil)
		case "esc":
			m.step = 0
			m.focusField(fieldName)
			return m, nil
		}
		return m, nil
	}
	switch msg.String() {
	case "ctrl+l":
		m.toggleLanguage()
		return m, nil
	case "tab", "down":
		next := m.focus + 1
		if next > fieldGender {
			next = fieldName
		}
		m.focusField(next)
		return m, nil
	case "shift+tab", "up":
		prev := m.focus - 1
		if prev < fieldName {
			prev = fieldGender
		}
		m.focusField(prev)
		return m, nil
	case "left":
		if m.focus == fieldGender {
			m.gender = cycleGender(m.gender, -1)
			return m, nil
		}
	case "right":
		if m.focus == fieldGender {
			m.gender = cycleGender(m.gender, 1)
			return m, nil
		}
	case "enter":
		if m.focus < fieldGender {
			m.focusField(m.focus + 1)
			return m, nil
		}
		_, errText := validateDetails(m.fields[fieldName].Value(), m.fields[fieldPhone].Value(), m.fields[fieldAge].Value())
		if errText != "" {
			m.formErr = errText
			return m, nil
		}
		m.formErr = ""
		m.step = 1
		m.locStatus = ""
		return m, nil
	}
	if m.focus < len(m.fields) {
		var cmd tea.Cmd
		m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) completeOnboarding(loc *domain.Location) (tea.Model, tea.Cmd) {
	age, errText := validateDetails(m.fields[fieldName].Value(), m.fields[fieldPhone].Value(), m.fields[fieldAge].Value())
	if errText != "" {
		m.step = 0
		m.formErr = errText
		m.focusField(fieldName)
		return m, nil
	}
	now := time.Now().UTC()
	profile := domain.UserProfile{
		ID:        store.NewID("user"),
		Name:      strings.TrimSpace(m.fields[fieldName].Value()),
		Phone:     strings.TrimSpace(m.fields[fieldPhone].Value()),
		Age:       age,
		Gender:    m.gender,
		Location:  loc,
		Language:  m.language,
		CreatedAt: now,
		LastLogin: now,
	}
	if err := m.st.Profiles.Save(m.ctx, profile); err != nil {
		m.step = 0
		m.formErr = m.content.Error
		return m, nil
	}
	m.profile = &profile
	m.screen = session.Reduce(session.ScreenOnboarding, session.EventOnboarded)
	m.refreshHomepage()
	return m, nil
}

// Homepage -------------------------------------------------------------------

// journeyCounts derives the three stat-card numbers from live collections.
func journeyCounts(entries []domain.HealthData, msgs []domain.ChatMessage, today string) (checkIns, records, consults int) {
	records = len(entries)
	for _, e := range entries {
		if e.Date == today {
			checkIns = 1
		}
	}
	for _, msg := range msgs {
		if msg.Sender == domain.SenderUser {
			consults++
		}
	}
	return checkIns, records, consults
}

func (m *model) refreshJourney() {
	if m.profile == nil {
		return
	}
	entries, _ := m.st.Health.ListFor(m.ctx, m.profile.ID)
	msgs, _ := m.st.Messages.ListFor(m.ctx, m.profile.ID)
	m.checkIns, m.records, m.consults = journeyCounts(entries, msgs, domain.DateOf(time.Now()))
}

func (m model) updateHomepage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "g", "ctrl+l":
		m.toggleLanguage()
		return m, nil
	case "c", "enter":
		return m.enterChat()
	case "h":
		return m.enterHealth()
	}
	return m, nil
}

// Chat -----------------------------------------------------------------------

// enterChat loads the transcript and seeds the greeting on first open.
func (m model) enterChat() (tea.Model, tea.Cmd) {
	if m.profile == nil {
		return m, nil
	}
	m.screen = session.Reduce(m.screen, session.EventOpenChat)
	msgs, err := m.st.Messages.ListFor(m.ctx, m.profile.ID)
	if err == nil && len(msgs) == 0 {
		if saved, addErr := m.st.Messages.Add(m.ctx, domain.ChatMessage{
			UserID:   m.profile.ID,
			Content:  lang.Greeting(m.content, m.profile.Name),
			Sender:   domain.SenderBot,
			Kind:     domain.ContentText,
			Language: m.language,
		}); addErr == nil {
			msgs = append(msgs, saved)
		}
	}
	m.messages = msgs
	m.chatInput.Focus()
	return m, textinput.Blink
}

func (m model) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+l":
		m.toggleLanguage()
		return m, nil
	case "esc":
		m.screen = session.Reduce(m.screen, session.EventBack)
		m.chatInput.Blur()
		m.refreshJourney()
		return m, nil
	case "tab":
		m.chatInput.Blur()
		return m.enterHealth()
	case "enter":
		// consecutive sends each queue their own delayed reply
		content := strings.TrimSpace(m.chatInput.Value())
		if content == "" {
			return m, nil
		}
		saved, err := m.st.Messages.Add(m.ctx, domain.ChatMessage{
			UserID:   m.profile.ID,
			Content:  content,
			Sender:   domain.SenderUser,
			Kind:     domain.ContentText,
			Language: m.language,
		})
		if err != nil {
			return m, nil
		}
		m.messages = append(m.messages, saved)
		m.chatInput.Reset()
		m.typing = true
		return m, tea.Batch(m.botCmd(), m.spin.Tick)
	}
	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

// Health tracker -------------------------------------------------------------

func (m model) enterHealth() (tea.Model, tea.Cmd) {
	if m.profile == nil {
		return m, nil
	}
	m.screen = session.Reduce(m.screen, session.EventOpenHealth)
	m.healthErr = ""
	m.bpNote = ""
	m.insulinNote = ""
	m.refreshReadings()
	// a same-day entry pre-fills the form so a re-save edits it
	if m.today != nil {
		m.vitals[vitalSystolic].SetValue(strconv.Itoa(m.today.BloodPressure.Systolic))
		m.vitals[vitalDiastolic].SetValue(strconv.Itoa(m.today.BloodPressure.Diastolic))
		m.vitals[vitalInsulin].SetValue(strconv.FormatFloat(m.today.InsulinLevel, 'f', -1, 64))
		m.vitals[vitalNotes].SetValue(m.today.Notes)
	}
	m.focusVital(vitalSystolic)
	return m, textinput.Blink
}

func (m *model) refreshReadings() {
	entries, err := m.st.Health.ListFor(m.ctx, m.profile.ID)
	if err != nil {
		return
	}
	health.SortByDateDesc(entries)
	m.entries = entries
	m.today = nil
	if len(entries) > 0 && entries[0].Date == domain.DateOf(time.Now()) {
		e := entries[0]
		m.today = &e
	}
	m.previous = health.PreviousReading(entries)
	if m.today != nil && m.previous != nil {
		m.trend = health.CompareTrend(health.Mean(m.previous.BloodPressure), health.Mean(m.today.BloodPressure))
		m.insulinTrend = health.CompareTrend(m.previous.InsulinLevel, m.today.InsulinLevel)
	} else {
		m.trend = ""
		m.insulinTrend = ""
	}
}

func (m model) updateHealth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.screen = session.Reduce(m.screen, session.EventBack)
		for i := range m.vitals {
			m.vitals[i].Blur()
		}
		m.refreshJourney()
		return m, nil
	case "tab", "down":
		m.focusVital((m.vitalFocus + 1) % len(m.vitals))
		return m, nil
	case "shift+tab", "up":
		m.focusVital((m.vitalFocus + len(m.vitals) - 1) % len(m.vitals))
		return m, nil
	case "ctrl+s":
		return m.saveReading()
	case "enter":
		if m.vitalFocus == vitalNotes {
			return m.saveReading()
		}
		m.focusVital(m.vitalFocus + 1)
		return m, nil
	}
	var cmd tea.Cmd
	m.vitals[m.vitalFocus], cmd = m.vitals[m.vitalFocus].Update(msg)
	return m, cmd
}

// saveReading validates, persists, and queues the two advisories: blood
// pressure immediately, insulin a couple of seconds later.
func (m model) saveReading() (tea.Model, tea.Cmd) {
	reading, err := health.ParseReading(
		m.vitals[vitalSystolic].Value(),
		m.vitals[vitalDiastolic].Value(),
		m.vitals[vitalInsulin].Value(),
		m.vitals[vitalNotes].Value(),
	)
	if err == nil {
		err = health.Validate(reading)
	}
	if err != nil {
		m.healthErr = err.Error()
		return m, nil
	}
	m.healthErr = ""
	if _, err := m.st.Health.Add(m.ctx, domain.HealthData{
		UserID:        m.profile.ID,
		Date:          domain.DateOf(time.Now()),
		BloodPressure: domain.BloodPressure{Systolic: reading.Systolic, Diastolic: reading.Diastolic},
		InsulinLevel:  reading.Insulin,
		Notes:         reading.Notes,
	}); err != nil {
		m.healthErr = m.content.Error
		return m, nil
	}
	m.refreshReadings()
	m.bpNote = health.BPAdvisory(m.content, health.ClassifyBloodPressure(reading.Systolic, reading.Diastolic))
	m.insulinNote = ""
	note := health.InsulinAdvisory(m.content, health.ClassifyInsulin(reading.Insulin))
	for i := range m.vitals {
		m.vitals[i].Reset()
	}
	m.focusVital(vitalSystolic)
	return m, m.insulinCmd(note)
}
