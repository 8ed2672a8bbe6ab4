package ui

import (
	"fmt"
	"strings"

	"github.com/perch-tui/perch/internal/config"
	"github.com/perch-tui/perch/internal/weather"
)

func (m Model) renderWeatherCard() string {
	if !m.snapshot.HasCurrent {
		return m.styles.Panel.Render(m.renderWeatherSkeleton())
	}

	cur := m.snapshot.Current

	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render(cur.Icon + "  " + cur.Summary))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Text.Render(m.tempString(cur.TemperatureC, cur.TemperatureF())))
	b.WriteString(m.styles.FaintText.Render("  feels " + m.tempString(cur.FeelsLikeC, cur.FeelsLikeF())))
	b.WriteString("\n")

	details := fmt.Sprintf("humidity %.0f%%  ·  wind %s  ·  precip %d%%",
		cur.HumidityPct, m.windString(cur.WindKPH), cur.PrecipChancePct)
	b.WriteString(m.styles.MutedText.Render(details))

	if len(m.snapshot.Forecast) > 0 {
		b.WriteString("\n\n")
		b.WriteString(m.renderForecast(m.snapshot.Forecast))
	}

	if m.snapshot.LastError != nil {
		b.WriteString("\n\n")
		b.WriteString(m.styles.WarningText.Render("last refresh failed, showing cached data"))
	}

	return m.styles.Panel.Render(b.String())
}

func (m Model) renderForecast(days []weather.DayForecast) string {
	lines := make([]string, 0, len(days))
	for _, d := range days {
		day := m.styles.Text.Render(padRight(shortDay(d.Day), 4))
		icon := d.Icon + " "
		span := m.styles.MutedText.Render(fmt.Sprintf("%s / %s",
			m.tempString(d.HighC, d.HighC*9/5+32),
			m.tempString(d.LowC, d.LowC*9/5+32)))
		precip := m.styles.FaintText.Render(fmt.Sprintf("%3d%%", d.PrecipChancePct))
		lines = append(lines, day+icon+span+"  "+precip)
	}
	return strings.Join(lines, "\n")
}

// renderWeatherSkeleton is the placeholder shown until the first
// successful refresh lands.
func (m Model) renderWeatherSkeleton() string {
	bar := m.styles.FaintText.Render(strings.Repeat("░", 22))
	var b strings.Builder
	b.WriteString(m.spinner.View())
	b.WriteString(m.styles.MutedText.Render(" fetching weather"))
	b.WriteString("\n\n")
	b.WriteString(bar)
	b.WriteString("\n")
	b.WriteString(bar)
	b.WriteString("\n")
	b.WriteString(bar)
	return b.String()
}

func (m Model) tempString(celsius, fahrenheit float64) string {
	if m.units == config.UnitsImperial {
		return fmt.Sprintf("%.1f°F", fahrenheit)
	}
	return fmt.Sprintf("%.1f°C", celsius)
}

func (m Model) windString(kph float64) string {
	if m.units == config.UnitsImperial {
		return fmt.Sprintf("%.0f mph", kph/1.609344)
	}
	return fmt.Sprintf("%.0f km/h", kph)
}

func shortDay(day string) string {
	if len(day) > 3 {
		return day[:3]
	}
	return day
}
