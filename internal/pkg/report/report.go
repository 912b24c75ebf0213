package report

import (
	"bytes"
	"fmt"
	"mime"
	"time"

	"github.com/go-pdf/fpdf"
)

// ContentType is the media type of rendered reports
const ContentType = "application/pdf"

const (
	title    = "SOPHIA ACADEMY"
	subtitle = "SSLC Career Guidance Report"

	filenamePrefix = "Sophia_Report_"

	// Layout in points, measured from the bottom-left corner of a letter page.
	marginLeft    = 100.0
	scoreIndent   = 120.0
	titleY        = 750.0
	subtitleY     = 730.0
	ruleY         = 720.0
	ruleRight     = 500.0
	nameY         = 680.0
	schoolY       = 660.0
	dominantY     = 640.0
	scoresHeaderY = 600.0
	firstScoreY   = 580.0
	scoreLineStep = 20.0
	titleFontSize = 24.0
	bodyFontSize  = 14.0
	fontFamily    = "Helvetica"
)

// ScoreLine is one "<label>: <value>%" line of the scores block
type ScoreLine struct {
	Label string
	Value float64
}

// Document is the content of a guidance report. Scores are printed in slice
// order.
type Document struct {
	Name          string
	School        string
	DominantTrait string
	Scores        []ScoreLine
	GeneratedAt   time.Time
}

// File is a rendered report ready to be served
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Renderer produces single page PDF reports
type Renderer struct {
	compress bool
}

// Option configures a Renderer
type Option func(*Renderer)

// WithCompression toggles stream compression (enabled by default).
func WithCompression(enabled bool) Option {
	return func(r *Renderer) {
		r.compress = enabled
	}
}

// NewRenderer creates a Renderer
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{compress: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render lays out doc on a letter page and returns the PDF bytes.
func (r *Renderer) Render(doc Document) ([]byte, error) {
	pdf := r.build(doc)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderFile renders doc and names the result after the student.
func (r *Renderer) RenderFile(doc Document) (*File, error) {
	data, err := r.Render(doc)
	if err != nil {
		return nil, err
	}
	return &File{
		Filename:    Filename(doc.Name),
		ContentType: ContentType,
		Data:        data,
	}, nil
}

func (r *Renderer) build(doc Document) *fpdf.Fpdf {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetCompression(r.compress)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(title+" - "+subtitle, true)
	pdf.SetAuthor(title, true)
	if !doc.GeneratedAt.IsZero() {
		pdf.SetCreationDate(doc.GeneratedAt)
	}

	// Core fonts are cp1252 encoded.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	_, pageHeight := pdf.GetPageSize()
	text := func(x, y float64, s string) {
		pdf.Text(x, pageHeight-y, tr(s))
	}

	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", titleFontSize)
	text(marginLeft, titleY, title)

	pdf.SetFont(fontFamily, "", bodyFontSize)
	text(marginLeft, subtitleY, subtitle)

	pdf.Line(marginLeft, pageHeight-ruleY, ruleRight, pageHeight-ruleY)

	text(marginLeft, nameY, "Name: "+doc.Name)
	text(marginLeft, schoolY, "School: "+doc.School)
	text(marginLeft, dominantY, "Dominant Trait: "+doc.DominantTrait)

	text(marginLeft, scoresHeaderY, "Detailed Scores:")
	y := firstScoreY
	for _, line := range doc.Scores {
		text(scoreIndent, y, FormatScoreLine(line))
		y -= scoreLineStep
	}

	return pdf
}

// FormatScoreLine renders a score with one decimal place
func FormatScoreLine(line ScoreLine) string {
	return fmt.Sprintf("%s: %.1f%%", line.Label, line.Value)
}

// Filename is the suggested download name for a student's report
func Filename(studentName string) string {
	return filenamePrefix + studentName + ".pdf"
}

// ContentDisposition builds an attachment header value for filename.
// Non-ASCII names are encoded per RFC 2231.
func ContentDisposition(filename string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": filename}); v != "" {
		return v
	}
	return "attachment"
}
