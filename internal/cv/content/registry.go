// Package content holds the CV profiles served by the site.
package content

import (
	"sort"
	"strings"

	"portfolio-backend/internal/cv/model"
)

const (
	// DefaultType is used when a request does not name a CV.
	DefaultType = "manish"
	// AlternateType selects the second profile.
	AlternateType = "omkar"
)

var profiles = map[string]model.CvProfile{
	DefaultType:   manish,
	AlternateType: omkar,
}

// Lookup resolves a CV type. An empty type selects the default profile;
// matching ignores case and surrounding whitespace.
func Lookup(cvType string) (model.CvProfile, bool) {
	key := strings.ToLower(strings.TrimSpace(cvType))
	if key == "" {
		key = DefaultType
	}
	p, ok := profiles[key]
	return p, ok
}

// All returns every profile ordered by id.
func All() []model.CvProfile {
	out := make([]model.CvProfile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Types lists the accepted CV type identifiers.
func Types() []string {
	all := All()
	out := make([]string, len(all))
	for i, p := range all {
		out[i] = p.ID
	}
	return out
}
