package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/drpriyanshi/companion-tui/internal/domain"
	"github.com/drpriyanshi/companion-tui/internal/health"
	"github.com/drpriyanshi/companion-tui/internal/lang"
	"github.com/drpriyanshi/companion-tui/internal/session"
)

func (m model) View() string {
	switch m.screen {
	case session.ScreenIntro:
		return m.renderIntro()
	case session.ScreenOnboarding:
		return m.renderOnboarding()
	case session.ScreenHomepage:
		return m.renderHomepage()
	case session.ScreenChat:
		if m.profile == nil {
			return ""
		}
		return m.renderChat()
	case session.ScreenHealth:
		if m.profile == nil {
			return ""
		}
		return m.renderHealth()
	}
	return ""
}

func (m model) renderIntro() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render(m.content.WelcomeTitle) + "\n\n")
	b.WriteString(m.spin.View() + " " + m.styles.muted.Render(m.content.Loading) + "\n")
	return m.styles.panel.Render(b.String())
}

func (m model) renderOnboarding() string {
	if m.step == 1 {
		return m.renderLocationConsent()
	}
	var b strings.Builder
	b.WriteString(m.styles.title.Render(m.content.LoginTitle) + "\n\n")
	labels := []string{m.content.NameLabel, m.content.PhoneLabel, m.content.AgeLabel}
	for i, field := range m.fields {
		b.WriteString(m.styles.label.Render(labels[i]) + "\n")
		b.WriteString(field.View() + "\n")
	}
	b.WriteString(m.styles.label.Render(m.content.GenderLabel) + "\n")
	b.WriteString(m.renderGenderRow() + "\n")
	if m.formErr != "" {
		b.WriteString("\n" + m.styles.err.Render(m.formErr) + "\n")
	}
	b.WriteString("\n" + m.styles.help.Render("[Tab] next field  [←/→] gender  [Enter] "+m.content.ContinueButton+"  [Ctrl+L] भाषा/English"))
	return m.styles.panel.Render(b.String())
}

func (m model) renderGenderRow() string {
	options := []struct {
		value domain.Gender
		label string
	}{
		{domain.GenderMale, m.content.MaleOption},
		{domain.GenderFemale, m.content.FemaleOption},
		{domain.GenderOther, m.content.OtherOption},
	}
	parts := make([]string, 0, len(options))
	for _, o := range options {
		var label string
		if o.value == m.gender {
			label = m.styles.title.Render("[" + o.label + "]")
		} else {
			label = m.styles.muted.Render("  " + o.label + "  ")
		}
		parts = append(parts, label)
	}
	row := strings.Join(parts, " ")
	if m.focus == fieldGender {
		row = "> " + row
	} else {
		row = "  " + row
	}
	return row
}

func (m model) renderLocationConsent() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render(m.content.WelcomeTitle) + "\n\n")
	b.WriteString(m.styles.label.Render(m.content.LocationPermission) + "\n\n")
	if m.locating {
		b.WriteString(m.spin.View() + " " + m.styles.muted.Render(m.content.Loading) + "\n")
	} else {
		b.WriteString("[a] " + m.content.AllowLocation + "\n")
		b.WriteString("[s] " + m.content.SkipLocation + "\n")
	}
	if m.locStatus != "" {
		b.WriteString("\n" + m.styles.warning.Render(m.locStatus) + "\n")
	}
	b.WriteString("\n" + m.styles.help.Render("[Esc] back"))
	return m.styles.panel.Render(b.String())
}

// refreshHomepage rebuilds the rendered welcome card and the counters.
func (m *model) refreshHomepage() {
	name := ""
	if m.profile != nil {
		name = m.profile.Name
	}
	md := "# " + m.content.WelcomeBack + "\n\n" + lang.HomeWelcome(m.content, name)
	m.welcome = md
	if renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(72)); err == nil {
		if out, err := renderer.Render(md); err == nil {
			m.welcome = out
		}
	}
	m.refreshJourney()
}

func (m model) renderHomepage() string {
	var b strings.Builder
	b.WriteString(m.welcome)
	var j strings.Builder
	j.WriteString(m.styles.title.Render(m.content.HealthJourney) + "\n")
	j.WriteString(fmt.Sprintf("%-4d %s\n", m.checkIns, m.content.DailyCheckIns))
	j.WriteString(fmt.Sprintf("%-4d %s\n", m.records, m.content.HealthRecords))
	j.WriteString(fmt.Sprintf("%-4d %s", m.consults, m.content.Consultations))
	b.WriteString(m.styles.panel.Render(j.String()) + "\n\n")
	if m.status != "" {
		b.WriteString(m.styles.err.Render(m.status) + "\n")
	}
	b.WriteString(m.styles.help.Render("[c] " + m.content.StartChatButton + "  [h] " + m.content.HealthTab + "  [g] भाषा/English  [q] quit"))
	return b.String()
}

func (m model) renderChat() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Dr. Priyanshi") + m.styles.muted.Render("  ·  "+m.content.ChatTab) + "\n\n")
	msgs := m.messages
	if max := m.transcriptLines(); len(msgs) > max {
		msgs = msgs[len(msgs)-max:]
	}
	width := m.width - 6
	if width < 40 {
		width = 60
	}
	for _, msg := range msgs {
		line := msg.Content
		if msg.Sender == domain.SenderUser {
			b.WriteString(m.styles.userMsg.Width(width).Align(lipgloss.Right).Render(line) + "\n")
		} else {
			b.WriteString(m.styles.botMsg.Width(width).Render(line) + "\n")
		}
	}
	if m.typing {
		b.WriteString(m.spin.View() + " " + m.styles.muted.Render(m.content.TypingIndicator) + "\n")
	}
	b.WriteString("\n" + m.chatInput.View() + "\n")
	if m.status != "" {
		b.WriteString(m.styles.err.Render(m.status) + "\n")
	}
	b.WriteString(m.styles.help.Render("[Enter] " + m.content.SendButton + "  [Tab] " + m.content.HealthTab + "  [Esc] back"))
	return b.String()
}

// transcriptLines is how many messages fit above the input line.
func (m model) transcriptLines() int {
	h := m.height
	if h <= 0 {
		h = 24
	}
	n := h - 8
	if n < 4 {
		n = 4
	}
	return n
}

func trendGlyph(t health.Trend) string {
	switch t {
	case health.TrendIncreased:
		return "↑"
	case health.TrendDecreased:
		return "↓"
	case health.TrendStable:
		return "→"
	}
	return ""
}

func formatReading(e domain.HealthData) string {
	return fmt.Sprintf("%d/%d mmHg · %.1f u", e.BloodPressure.Systolic, e.BloodPressure.Diastolic, e.InsulinLevel)
}

func (m model) renderHealth() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render(m.content.HealthTrackingTitle) + "\n\n")

	var form strings.Builder
	form.WriteString(m.styles.label.Render(m.content.BloodPressureLabel) + "\n")
	form.WriteString(m.vitals[vitalSystolic].View() + "  " + m.vitals[vitalDiastolic].View() + "\n")
	form.WriteString(m.styles.label.Render(m.content.InsulinLabel) + "\n")
	form.WriteString(m.vitals[vitalInsulin].View() + "\n")
	form.WriteString(m.vitals[vitalNotes].View() + "\n")
	form.WriteString(m.styles.help.Render("[Ctrl+S] " + m.content.SaveDataButton))
	b.WriteString(m.styles.panel.Render(form.String()) + "\n")

	if m.healthErr != "" {
		b.WriteString(m.styles.err.Render(m.healthErr) + "\n")
	}
	if m.bpNote != "" {
		b.WriteString(m.styles.success.Render(m.bpNote) + "\n")
	}
	if m.insulinNote != "" {
		b.WriteString(m.styles.success.Render(m.insulinNote) + "\n")
	}

	if m.today != nil {
		var t strings.Builder
		t.WriteString(m.styles.label.Render(m.content.TodayReading) + "\n")
		t.WriteString(formatReading(*m.today))
		if m.previous != nil {
			t.WriteString("\n" + m.styles.muted.Render(m.content.PreviousReading+" ("+m.previous.Date+")") + "\n")
			t.WriteString(formatReading(*m.previous))
			t.WriteString("  " + trendGlyph(m.trend) + " mmHg  " + trendGlyph(m.insulinTrend) + " u")
		}
		b.WriteString(m.styles.panel.Render(t.String()) + "\n")
	}

	if len(m.entries) > 1 {
		recent := m.entries
		if len(recent) > 5 {
			recent = recent[:5]
		}
		var r strings.Builder
		r.WriteString(m.styles.muted.Render(m.content.HealthRecords) + "\n")
		for _, e := range recent {
			r.WriteString(e.Date + "  " + formatReading(e) + "\n")
		}
		b.WriteString(m.styles.panel.Render(strings.TrimRight(r.String(), "\n")) + "\n")
	}

	b.WriteString(m.styles.help.Render("[Tab] next field  [Esc] back"))
	return b.String()
}
