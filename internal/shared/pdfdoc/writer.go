// Package pdfdoc builds, inspects, and validates small PDF documents.
package pdfdoc

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	pageWidth    = 595 // A4 in points
	pageHeight   = 842
	marginLeft   = 50
	marginTop    = 60
	fontSize     = 10
	leading      = 13
	maxLineRunes = 95
	maxLines     = 58
)

// TextPDF wraps text in a single-page PDF with a fixed object layout: catalog,
// pages, page, content stream, and a Helvetica font. Text that does not fit on
// the page is dropped.
func TextPDF(text string) []byte {
	lines := wrapLines(text, maxLineRunes)
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	var content bytes.Buffer
	fmt.Fprintf(&content, "BT\n/F1 %d Tf\n%d TL\n%d %d Td\n", fontSize, leading, marginLeft, pageHeight-marginTop)
	for i, line := range lines {
		if i > 0 {
			content.WriteString("T*\n")
		}
		fmt.Fprintf(&content, "(%s) Tj\n", EscapeString(line))
	}
	content.WriteString("ET\n")

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Resources << /Font << /F1 5 0 R >> >> /Contents 4 0 R >>", pageWidth, pageHeight),
		fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", content.Len(), content.String()),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = out.Len()
		fmt.Fprintf(&out, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefStart := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n", len(objects)+1)
	out.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&out, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefStart)
	return out.Bytes()
}

// EscapeString escapes a PDF literal string. Parentheses and backslashes are
// prefixed with a backslash; characters outside printable ASCII become '?'.
func EscapeString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '(' || r == ')' || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\t':
			b.WriteByte(' ')
		case r < 0x20 || r > 0x7e:
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Truncate returns at most n runes of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

func wrapLines(text string, width int) []string {
	var out []string
	for _, para := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		var line strings.Builder
		for _, w := range words {
			for utf8.RuneCountInString(w) > width {
				runes := []rune(w)
				if line.Len() > 0 {
					out = append(out, line.String())
					line.Reset()
				}
				out = append(out, string(runes[:width]))
				w = string(runes[width:])
			}
			if line.Len() > 0 && utf8.RuneCountInString(line.String())+1+utf8.RuneCountInString(w) > width {
				out = append(out, line.String())
				line.Reset()
			}
			if line.Len() > 0 {
				line.WriteByte(' ')
			}
			line.WriteString(w)
		}
		if line.Len() > 0 {
			out = append(out, line.String())
		}
	}
	return out
}
