package export

import (
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageMarginPt    = 54 // 0.75in
	bodyLeadingPt   = 16
	salutLeadingPt  = 14
	paragraphGapPt  = 7.2 // 0.1in
	letterFontSize  = 11
	letterFontStyle = "Helvetica"
)

var salutationWords = []string{"dear", "sincerely", "regards", "best"}

// Render writes the cover letter as a single-column Letter-sized PDF.
// Paragraphs are split on blank lines; greeting and sign-off paragraphs stay
// left-aligned while body paragraphs are justified.
func Render(w io.Writer, letterText string) error {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(pageMarginPt, pageMarginPt, pageMarginPt)
	pdf.SetAutoPageBreak(true, pageMarginPt)
	pdf.AddPage()
	pdf.SetFont(letterFontStyle, "", letterFontSize)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, para := range splitParagraphs(letterText) {
		align := "J"
		leading := float64(bodyLeadingPt)
		if isSalutation(para) {
			align = "L"
			leading = salutLeadingPt
		}
		pdf.MultiCell(0, leading, tr(para), "", align, false)
		pdf.Ln(paragraphGapPt)
	}

	return pdf.Output(w)
}

func splitParagraphs(text string) []string {
	var out []string
	for _, para := range strings.Split(strings.TrimSpace(text), "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		out = append(out, strings.ReplaceAll(para, "\n", " "))
	}
	return out
}

func isSalutation(para string) bool {
	lower := strings.ToLower(para)
	for _, word := range salutationWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// GeneratedFileName builds the default export name from the job fields,
// keeping only characters that are safe in a filename.
func GeneratedFileName(company, jobTitle string, now time.Time) string {
	return "CoverLetter_" + safeNamePart(company) + "_" + safeNamePart(jobTitle) + "_" + now.Format("20060102_150405") + ".pdf"
}

func safeNamePart(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
