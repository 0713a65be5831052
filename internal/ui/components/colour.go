package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// namedColours maps the colour names accepted in configuration to ANSI codes.
var namedColours = map[string]string{
	"black":          "0",
	"red":            "1",
	"green":          "2",
	"yellow":         "3",
	"blue":           "4",
	"magenta":        "5",
	"cyan":           "6",
	"white":          "7",
	"gray":           "8",
	"grey":           "8",
	"bright-black":   "8",
	"bright-red":     "9",
	"bright-green":   "10",
	"bright-yellow":  "11",
	"bright-blue":    "12",
	"bright-magenta": "13",
	"bright-cyan":    "14",
	"bright-white":   "15",
}

// lightANSI lists the ANSI codes that need dark text on top of them.
var lightANSI = map[string]bool{
	"3": true, "7": true, "10": true, "11": true, "14": true, "15": true,
}

// ParseColor resolves a colour name, a 0-255 ANSI code or a #rgb/#rrggbb hex
// string. Matching is case-insensitive.
func ParseColor(value string) (lipgloss.Color, bool) {
	s := strings.ToLower(strings.TrimSpace(value))
	if s == "" {
		return "", false
	}
	if code, ok := namedColours[s]; ok {
		return lipgloss.Color(code), true
	}
	if strings.HasPrefix(s, "#") {
		if _, err := colorful.Hex(expandShortHex(s)); err != nil {
			return "", false
		}
		return lipgloss.Color(expandShortHex(s)), true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return "", false
	}
	return lipgloss.Color(strconv.Itoa(n)), true
}

// MustColor is ParseColor for values already validated; unknown values fall
// back to the terminal default.
func MustColor(value string) lipgloss.Color {
	c, _ := ParseColor(value)
	return c
}

// ContrastText picks black or white text for legibility on background.
func ContrastText(background lipgloss.Color) lipgloss.Color {
	s := string(background)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return ""
		}
		l, _, _ := c.Lab()
		if l > 0.6 {
			return lipgloss.Color("0")
		}
		return lipgloss.Color("15")
	}
	if s == "" {
		return ""
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 232 {
		// Greyscale ramp; the upper half is light.
		if n >= 244 {
			return lipgloss.Color("0")
		}
		return lipgloss.Color("15")
	}
	if lightANSI[s] {
		return lipgloss.Color("0")
	}
	return lipgloss.Color("15")
}

func expandShortHex(s string) string {
	if len(s) != 4 {
		return s
	}
	return "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
}
