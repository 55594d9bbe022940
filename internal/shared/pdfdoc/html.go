package pdfdoc

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"svg":      true,
	"head":     true,
}

var blockElements = map[string]bool{
	"p": true, "div": true, "section": true, "article": true, "header": true,
	"footer": true, "li": true, "ul": true, "ol": true, "br": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"main": true, "nav": true, "aside": true, "table": true,
}

// ExtractText strips markup, scripts, and styles from an HTML document and
// returns its visible text with whitespace collapsed. Block elements start a
// new line.
func ExtractText(doc []byte) string {
	z := html.NewTokenizer(bytes.NewReader(doc))
	var (
		out       strings.Builder
		skipDepth int
	)
	newline := func() {
		s := out.String()
		if s != "" && !strings.HasSuffix(s, "\n") {
			out.WriteByte('\n')
		}
	}

	for {
		switch z.Next() {
		case html.ErrorToken:
			return tidy(out.String())
		case html.StartTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if skippedElements[tag] {
				skipDepth++
				continue
			}
			if blockElements[tag] {
				newline()
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if skippedElements[tag] {
				if skipDepth > 0 {
					skipDepth--
				}
				continue
			}
			if blockElements[tag] {
				newline()
			}
		case html.SelfClosingTagToken:
			name, _ := z.TagName()
			if blockElements[string(name)] {
				newline()
			}
		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			text := strings.Join(strings.Fields(string(z.Text())), " ")
			if text == "" {
				continue
			}
			s := out.String()
			if s != "" && !strings.HasSuffix(s, "\n") && !strings.HasSuffix(s, " ") {
				out.WriteByte(' ')
			}
			out.WriteString(text)
		}
	}
}

func tidy(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, "\n")
}
