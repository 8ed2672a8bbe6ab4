package ui

import "strings"

// Three-row half-block glyphs for the large clock readout. Only the
// characters emitted by clock.TimeString appear here.
var clockGlyphs = map[rune][3]string{
	'0': {"█▀█", "█ █", "█▄█"},
	'1': {"▀█ ", " █ ", "▄█▄"},
	'2': {"▀▀█", "█▀▀", "█▄▄"},
	'3': {"▀▀█", "▀▀█", "▄▄█"},
	'4': {"█ █", "▀▀█", "  █"},
	'5': {"█▀▀", "▀▀█", "▄▄█"},
	'6': {"█▀▀", "█▀█", "█▄█"},
	'7': {"▀▀█", "  █", "  █"},
	'8': {"█▀█", "█▀█", "█▄█"},
	'9': {"█▀█", "▀▀█", "▄▄█"},
	':': {" ", "▀", "▄"},
}

// bigDigits renders s in the glyph font. Runes without a glyph, such
// as the AM/PM suffix, are passed through on the middle row.
func bigDigits(s string) string {
	var rows [3]strings.Builder
	for _, r := range s {
		glyph, ok := clockGlyphs[r]
		if !ok {
			rows[0].WriteString(" ")
			rows[1].WriteString(string(r))
			rows[2].WriteString(" ")
			continue
		}
		for i := range rows {
			rows[i].WriteString(glyph[i])
			rows[i].WriteString(" ")
		}
	}
	return strings.TrimRight(rows[0].String(), " ") + "\n" +
		strings.TrimRight(rows[1].String(), " ") + "\n" +
		strings.TrimRight(rows[2].String(), " ")
}

func (m Model) renderClockPanel() string {
	digits := m.styles.ClockDigits.Render(bigDigits(m.clk.TimeString()))
	date := m.styles.MutedText.Render(m.clk.DateString())
	zone := m.styles.FaintText.Render(m.clk.ZoneString())

	body := digits + "\n\n" + date + "\n" + zone
	return m.styles.Panel.Render(body)
}
