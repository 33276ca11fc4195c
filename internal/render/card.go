package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/i474232898/weather-card/internal/common"
	"github.com/i474232898/weather-card/internal/weather"
)

var (
	colorPrimary = lipgloss.Color("#00BFFF") // Deep sky blue
	colorMuted   = lipgloss.Color("#6C757D") // Gray
	colorBorder  = lipgloss.Color("#4A90E2") // Border blue

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	tempStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	dayStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(colorMuted).
			Padding(0, 1).
			MarginRight(1)
)

// Card renders a ready view as a terminal weather card. Views without a
// snapshot render only their place name.
func Card(v weather.ViewState) string {
	place := v.PlaceName
	if place == "" {
		place = "—"
	}

	sections := []string{titleStyle.Render(place)}

	if v.Snapshot == nil {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	}

	s := v.Snapshot
	cur := s.Current

	sections = append(sections,
		"",
		tempStyle.Render(fmt.Sprintf("%s %d°%s", conditionIcon(cur.Condition), cur.Temp, s.Unit)),
		cur.ConditionDescription,
		"",
		field("Umidade", fmt.Sprintf("%.0f%%", cur.Humidity)),
		field("Pressão", fmt.Sprintf("%.0f hPa", cur.Pressure)),
		field("Vento", fmt.Sprintf("%.1f m/s %s", cur.WindSpeed, cur.WindDirection)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			day("Amanhã", s.Tomorrow, s.Unit),
			day("Depois de amanhã", s.DayAfter, s.Unit),
		),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func field(label, value string) string {
	return labelStyle.Render(label+": ") + value
}

func day(label string, d weather.DayOutlook, unit weather.Unit) string {
	return dayStyle.Render(strings.Join([]string{
		labelStyle.Render(label),
		fmt.Sprintf("%s %d°%s", conditionIcon(d.Condition), d.Temp, unit),
	}, "\n"))
}

// conditionIcon picks a glyph for an OpenWeatherMap main condition.
func conditionIcon(condition string) string {
	switch {
	case common.HasAny(condition, "thunder"):
		return "⛈"
	case common.HasAny(condition, "rain", "drizzle"):
		return "☂"
	case common.HasAny(condition, "snow"):
		return "❄"
	case common.HasAny(condition, "cloud"):
		return "☁"
	case common.HasAny(condition, "clear"):
		return "☀"
	case common.HasAny(condition, "mist", "fog", "haze", "smoke", "dust"):
		return "≋"
	default:
		return "·"
	}
}
