package search

import (
	"html"
	"regexp"
	"strings"
)

// Highlight HTML-escapes text and wraps every case-insensitive
// occurrence of query in <mark> tags. The query is quoted with
// regexp.QuoteMeta first, so metacharacters ("a.b*c") match only
// themselves. Matching runs against the raw text and escaping happens
// per segment, so a query containing "&" or "<" still matches.
func Highlight(text, query string) string {
	if query == "" {
		return html.EscapeString(text)
	}

	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(query))
	if err != nil {
		// QuoteMeta output always compiles; this is unreachable but
		// degrading to the escaped text beats panicking on user input.
		return html.EscapeString(text)
	}

	var b strings.Builder
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		b.WriteString(html.EscapeString(text[last:loc[0]]))
		b.WriteString("<mark>")
		b.WriteString(html.EscapeString(text[loc[0]:loc[1]]))
		b.WriteString("</mark>")
		last = loc[1]
	}
	b.WriteString(html.EscapeString(text[last:]))
	return b.String()
}
