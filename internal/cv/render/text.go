// Package render turns a CV profile into plain text.
package render

import (
	"fmt"
	"strings"

	"portfolio-backend/internal/cv/model"
)

const ruleWidth = 60

// Text renders the profile as UTF-8 plain text with upper-case section headings.
// Empty sections are omitted.
func Text(p model.CvProfile) string {
	var b strings.Builder

	b.WriteString(strings.ToUpper(p.Name))
	b.WriteByte('\n')
	b.WriteString(p.Title)
	b.WriteByte('\n')
	if line := contactLine(p.Contact); line != "" {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	for _, l := range p.Contact.Links {
		fmt.Fprintf(&b, "%s: %s\n", l.Label, l.URL)
	}

	if s := strings.TrimSpace(p.Summary); s != "" {
		section(&b, "Summary")
		b.WriteString(s)
		b.WriteByte('\n')
	}

	if len(p.Experience) > 0 {
		section(&b, "Experience")
		for i, e := range p.Experience {
			if i > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "%s - %s", e.Role, e.Company)
			if e.Location != "" {
				fmt.Fprintf(&b, ", %s", e.Location)
			}
			fmt.Fprintf(&b, " (%s)\n", e.Period)
			for _, h := range e.Highlights {
				fmt.Fprintf(&b, "  - %s\n", h)
			}
		}
	}

	if len(p.Projects) > 0 {
		section(&b, "Projects")
		for _, pr := range p.Projects {
			fmt.Fprintf(&b, "%s: %s\n", pr.Name, pr.Description)
			if len(pr.Technologies) > 0 {
				fmt.Fprintf(&b, "  Tech: %s\n", strings.Join(pr.Technologies, ", "))
			}
			if pr.URL != "" {
				fmt.Fprintf(&b, "  %s\n", pr.URL)
			}
		}
	}

	if len(p.Skills) > 0 {
		section(&b, "Skills")
		for _, g := range p.Skills {
			fmt.Fprintf(&b, "%s: %s\n", g.Category, strings.Join(g.Items, ", "))
		}
	}

	if len(p.Certifications) > 0 {
		section(&b, "Certifications")
		for _, c := range p.Certifications {
			fmt.Fprintf(&b, "- %s, %s", c.Name, c.Issuer)
			if c.Year != "" {
				fmt.Fprintf(&b, " (%s)", c.Year)
			}
			b.WriteByte('\n')
		}
	}

	if len(p.Education) > 0 {
		section(&b, "Education")
		for _, e := range p.Education {
			fmt.Fprintf(&b, "%s, %s (%s)\n", e.Degree, e.Institution, e.Period)
			if e.Detail != "" {
				fmt.Fprintf(&b, "  %s\n", e.Detail)
			}
		}
	}

	return b.String()
}

func section(b *strings.Builder, title string) {
	b.WriteByte('\n')
	b.WriteString(strings.ToUpper(title))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", ruleWidth))
	b.WriteByte('\n')
}

func contactLine(c model.Contact) string {
	var parts []string
	for _, v := range []string{c.Email, c.Phone, c.Location} {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " | ")
}
