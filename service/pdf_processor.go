package service

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var horizontalSpace = regexp.MustCompile(`[ \t]+`)

func init() {
	// Keep pdfcpu from creating its config directory on disk.
	model.ConfigPath = "disable"
}

type PDFProcessor interface {
	ExtractText(pdfData []byte) (string, error)
}

type pdfProcessor struct{}

func NewPDFProcessor() PDFProcessor {
	return &pdfProcessor{}
}

// ExtractText returns the embedded text of every page, pages separated by a
// newline, with horizontal whitespace collapsed. Scanned pages yield no text.
func (p *pdfProcessor) ExtractText(pdfData []byte) (text string, err error) {
	if err := checkStructure(pdfData); err != nil {
		return "", err
	}

	// ledongthuc/pdf panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("failed to decode pdf content: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	totalPage := r.NumPage()
	pages := make([]string, 0, totalPage)
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		pages = append(pages, pageText(r.Page(pageIndex)))
	}

	return NormalizeText(strings.Join(pages, "\n")), nil
}

// checkStructure lets pdfcpu parse the cross-reference table and trailer
// before any content is decoded.
func checkStructure(pdfData []byte) error {
	if len(pdfData) == 0 {
		return fmt.Errorf("empty document")
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if _, err := api.ReadContext(bytes.NewReader(pdfData), conf); err != nil {
		return fmt.Errorf("failed to read pdf structure: %w", err)
	}
	return nil
}

const (
	// Glyphs whose baselines are this close, in points, share a line.
	lineTolerance = 3.0
	// A horizontal gap wider than this share of the font size starts a new word.
	wordGapRatio = 0.15
)

func pageText(p pdf.Page) string {
	if p.V.IsNull() {
		return ""
	}

	var textBuilder strings.Builder
	for _, line := range textLines(p.Content().Text) {
		if s := lineText(line); s != "" {
			textBuilder.WriteString(s)
			textBuilder.WriteString("\n")
		}
	}
	return textBuilder.String()
}

// textLines groups glyphs into lines from the top of the page down, each
// line ordered left to right. Glyphs at the same position keep stream order.
func textLines(glyphs []pdf.Text) [][]pdf.Text {
	sorted := make([]pdf.Text, len(glyphs))
	copy(sorted, glyphs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y > sorted[j].Y
	})

	var lines [][]pdf.Text
	start := 0
	for i := 1; i <= len(sorted); i++ {
		if i < len(sorted) && sorted[start].Y-sorted[i].Y <= lineTolerance {
			continue
		}
		line := sorted[start:i]
		sort.SliceStable(line, func(a, b int) bool {
			return line[a].X < line[b].X
		})
		lines = append(lines, line)
		start = i
	}
	return lines
}

// lineText joins the glyphs of one line. Whitespace glyphs and visible gaps
// become a single space; kerning inside a word does not.
func lineText(line []pdf.Text) string {
	var b strings.Builder
	space := false
	var prevEnd float64
	for _, g := range line {
		if strings.TrimSpace(g.S) == "" {
			space = true
			continue
		}
		if b.Len() > 0 && (space || g.X-prevEnd > g.FontSize*wordGapRatio) {
			b.WriteByte(' ')
		}
		b.WriteString(g.S)
		prevEnd = g.X + g.W
		space = false
	}
	return b.String()
}

// NormalizeText collapses runs of spaces and tabs and turns carriage returns
// into newlines.
func NormalizeText(text string) string {
	return strings.ReplaceAll(horizontalSpace.ReplaceAllString(text, " "), "\r", "\n")
}
