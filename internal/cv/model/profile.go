// Package model defines the structured CV content served by the render pipeline.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidProfile is returned by Validate for incomplete profiles.
var ErrInvalidProfile = errors.New("invalid cv profile")

// Link is a labelled URL shown in the contact block.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Contact groups the ways to reach the profile owner.
type Contact struct {
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Links    []Link `json:"links,omitempty"`
}

type Experience struct {
	Role       string   `json:"role"`
	Company    string   `json:"company"`
	Location   string   `json:"location,omitempty"`
	Period     string   `json:"period"`
	Highlights []string `json:"highlights"`
}

type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
}

type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year,omitempty"`
}

// SkillGroup is a titled list such as "Languages: Go, TypeScript".
type SkillGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Period      string `json:"period"`
	Detail      string `json:"detail,omitempty"`
}

// Delivery carries the metadata the render pipeline needs for a profile.
type Delivery struct {
	// PagePath is the frontend route that renders this CV, e.g. "/cv/manish".
	PagePath string
	// FileBase names downloads: FileBase + ".pdf" or ".txt".
	FileBase string
	// StorageName is the cache key in the object store.
	StorageName string
}

// CvProfile is the fixed CV record for one person.
type CvProfile struct {
	ID             string
	Name           string
	Title          string
	Contact        Contact
	Summary        string
	Experience     []Experience
	Projects       []Project
	Certifications []Certification
	Skills         []SkillGroup
	Education      []Education
	Delivery       Delivery
}

// PDFFileName is the attachment name for PDF downloads.
func (p CvProfile) PDFFileName() string { return p.Delivery.FileBase + ".pdf" }

// TextFileName is the attachment name for the plain-text fallback.
func (p CvProfile) TextFileName() string { return p.Delivery.FileBase + ".txt" }

// Validate checks that the fields required for rendering and delivery are set.
func (p CvProfile) Validate() error {
	var missing []string
	check := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	check("id", p.ID)
	check("name", p.Name)
	check("title", p.Title)
	check("delivery.fileBase", p.Delivery.FileBase)
	check("delivery.storageName", p.Delivery.StorageName)
	check("delivery.pagePath", p.Delivery.PagePath)
	if len(missing) > 0 {
		return fmt.Errorf("%w %q: missing %s", ErrInvalidProfile, p.ID, strings.Join(missing, ", "))
	}
	if strings.ContainsAny(p.Delivery.StorageName, `/\`) {
		return fmt.Errorf("%w %q: storage name must be a bare file name", ErrInvalidProfile, p.ID)
	}
	if !strings.HasPrefix(p.Delivery.PagePath, "/") {
		return fmt.Errorf("%w %q: page path must start with /", ErrInvalidProfile, p.ID)
	}
	return nil
}
