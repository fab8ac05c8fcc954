package menu

import "strings"

// alertScript renders an AppleScript warning alert with a single OK button.
func alertScript(title, message string) string {
	return `display alert "` + escapeAppleScript(title) + `" message "` + escapeAppleScript(message) +
		`" as warning buttons {"OK"} default button "OK"`
}

func escapeAppleScript(s string) string {
	var b strings.Builder
	for _, c := range s {
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}
