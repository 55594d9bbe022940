package pdfdoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// ErrNotPDF is returned when bytes do not form a readable PDF document.
var ErrNotPDF = errors.New("not a pdf document")

// HasMagic reports whether data starts with the PDF header.
func HasMagic(data []byte) bool {
	return bytes.HasPrefix(data, []byte("%PDF-"))
}

// Validate parses data and checks that it holds at least one page.
func Validate(data []byte) (err error) {
	if !HasMagic(data) {
		return ErrNotPDF
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: parser panic: %v", ErrNotPDF, rec)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotPDF, err)
	}
	if r.NumPage() < 1 {
		return fmt.Errorf("%w: no pages", ErrNotPDF)
	}
	return nil
}

// PlainText extracts the text of every page.
func PlainText(data []byte) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: parser panic: %v", ErrNotPDF, rec)
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotPDF, err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}
