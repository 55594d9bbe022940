package cvdelivery

import "portfolio-backend/internal/cv/model"

const (
	FormatPDF  = "pdf"
	FormatText = "text"

	// SourceCache marks an artifact served from the object store.
	SourceCache = "cache"

	contentTypePDF  = "application/pdf"
	contentTypeText = "text/plain; charset=utf-8"
)

// Artifact is a rendered CV ready to be served or stored.
type Artifact struct {
	ProfileID   string
	Format      string
	Data        []byte
	ContentType string
	FileName    string
	// Source is SourceCache or the name of the strategy that produced Data.
	Source string
}

func pdfArtifact(p model.CvProfile, data []byte, source string) Artifact {
	return Artifact{
		ProfileID:   p.ID,
		Format:      FormatPDF,
		Data:        data,
		ContentType: contentTypePDF,
		FileName:    p.PDFFileName(),
		Source:      source,
	}
}

func textArtifact(p model.CvProfile, text string, source string) Artifact {
	return Artifact{
		ProfileID:   p.ID,
		Format:      FormatText,
		Data:        []byte(text),
		ContentType: contentTypeText,
		FileName:    p.TextFileName(),
		Source:      source,
	}
}
