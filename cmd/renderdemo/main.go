package main

// Render every CV profile locally for inspection:
//   go run ./cmd/renderdemo -out ./out

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"portfolio-backend/internal/cv/content"
	"portfolio-backend/internal/cv/model"
	"portfolio-backend/internal/cv/render"
	"portfolio-backend/internal/pdfconvert"
	"portfolio-backend/internal/shared/pdfdoc"
)

func main() {
	outDir := flag.String("out", "./out", "output directory")
	only := flag.String("type", "", "render a single CV type")
	flag.Parse()

	profiles := content.All()
	if strings.TrimSpace(*only) != "" {
		p, ok := content.Lookup(*only)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown cv type %q (allowed: %s)\n", *only, strings.Join(content.Types(), ", "))
			os.Exit(2)
		}
		profiles = []model.CvProfile{p}
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create output dir: %v\n", err)
		os.Exit(1)
	}

	for _, p := range profiles {
		if err := writeProfile(*outDir, p); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", p.ID, err)
			os.Exit(1)
		}
		fmt.Printf("OK: %s -> %s, %s\n", p.ID, p.TextFileName(), p.PDFFileName())
	}
}

func writeProfile(dir string, p model.CvProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	text := render.Text(p)
	if err := os.WriteFile(filepath.Join(dir, p.TextFileName()), []byte(text), 0o644); err != nil {
		return err
	}

	pdf := pdfdoc.TextPDF(pdfdoc.Truncate(text, pdfconvert.TextFallbackLimit))
	if err := pdfdoc.Validate(pdf); err != nil {
		return fmt.Errorf("rendered pdf is invalid: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, p.PDFFileName()), pdf, 0o644); err != nil {
		return err
	}

	payload, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, p.ID+"_profile.json"), payload, 0o644)
}
