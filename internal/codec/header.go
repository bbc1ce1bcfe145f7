package codec

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	headerRE    = regexp.MustCompile(`^\s*\[LI-MAP-ID:\s*([0-9a-fA-F-]{36})\][^\n]*(?:\n|$)`)
	blankLineRE = regexp.MustCompile(`^[ \t]*\r?\n`)
)

// FormatHeader renders the header line, trailing newline included.
func FormatHeader(id, themeKey, lang string) string {
	return fmt.Sprintf("[LI-MAP-ID: %s] [THEME: %s] [LANG: %s]\n", id, themeKey, lang)
}

// ExtractHeaderID removes a leading header line, and one blank line after
// it, from text. It returns the remaining text and the embedded id, or text
// unchanged and "" when there is no well-formed header.
func ExtractHeaderID(text string) (string, string) {
	m := headerRE.FindStringSubmatchIndex(text)
	if m == nil {
		return text, ""
	}
	id := text[m[2]:m[3]]
	rest := text[m[1]:]
	if loc := blankLineRE.FindStringIndex(rest); loc != nil {
		rest = rest[loc[1]:]
	}
	return rest, id
}

// joinHeader prefixes body with header. A body that itself starts with a
// blank line gets one extra line break so ExtractHeaderID returns it intact.
func joinHeader(header, body string) string {
	if blankLineRE.MatchString(body) {
		return header + "\n" + body
	}
	return header + body
}

// checkHeaderField rejects values that would break the header line.
func checkHeaderField(name, value string) error {
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("%s %q must not contain line breaks", name, value)
	}
	return nil
}
