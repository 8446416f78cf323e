package service

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPDF renders one text line per cell, one page per entry of pages.
func buildPDF(t *testing.T, pages ...[]string) []byte {
	t.Helper()

	doc := gofpdf.New("P", "mm", "Letter", "")
	doc.SetFont("Helvetica", "", 10)
	for _, lines := range pages {
		doc.AddPage()
		for _, line := range lines {
			doc.Cell(0, 6, line)
			doc.Ln(8)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	return buf.Bytes()
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "Customer Charge 18.50\nTotal\n", NormalizeText("Customer \t Charge   18.50\rTotal\n"))
	assert.Equal(t, "a b\n\nc", NormalizeText("a\t\tb\r\nc"))
	assert.Equal(t, "", NormalizeText(""))
}

func TestExtractTextRejectsNonPDF(t *testing.T) {
	p := NewPDFProcessor()

	for _, data := range [][]byte{nil, []byte("definitely not a pdf"), []byte("%PDF-1.4\ngarbage")} {
		text, err := p.ExtractText(data)
		assert.Error(t, err)
		assert.Empty(t, text)
	}
}

func TestExtractTextFromGeneratedPDF(t *testing.T) {
	data := buildPDF(t,
		[]string{"Actual Usage in CCF:    50", "Customer Charge 18.50"},
		nil,
		[]string{"CURRENT CHARGES 95.20"},
	)

	text, err := NewPDFProcessor().ExtractText(data)
	require.NoError(t, err)

	assert.Equal(t, "Actual Usage in CCF: 50\nCustomer Charge 18.50\n\n\nCURRENT CHARGES 95.20\n", text)
}

func TestExtractTextKeepsLinesApart(t *testing.T) {
	data := billPDF(t, januaryText)

	text, err := NewPDFProcessor().ExtractText(data)
	require.NoError(t, err)

	assert.Equal(t, januaryText, text)
}

func glyphs(x, y, size, advance float64, s string) []pdf.Text {
	out := make([]pdf.Text, 0, len(s))
	for _, r := range s {
		out = append(out, pdf.Text{FontSize: size, X: x, Y: y, W: advance, S: string(r)})
		x += advance
	}
	return out
}

func TestLineTextSpacing(t *testing.T) {
	// Kerned run: "Customer Char" then 0.3pt nudge then "ge 18.50".
	kerned := glyphs(72, 700, 10, 5, "Customer Char")
	kerned = append(kerned, glyphs(72+13*5+0.3, 700, 10, 5, "ge 18.50")...)
	assert.Equal(t, "Customer Charge 18.50", lineText(kerned))

	// Words placed by position with no space glyph between them.
	placed := append(glyphs(72, 700, 10, 5, "Rider"), glyphs(72+5*5+4, 700, 10, 5, "GCR")...)
	assert.Equal(t, "Rider GCR", lineText(placed))

	// Zero-width glyphs of one run share an X and rely on their space glyphs.
	flat := glyphs(72, 700, 10, 0, "TAX/FEE  CHARGE\n")
	assert.Equal(t, "TAX/FEE CHARGE", lineText(flat))

	assert.Equal(t, "", lineText(glyphs(72, 700, 10, 5, "   ")))
}

func TestTextLinesOrder(t *testing.T) {
	var page []pdf.Text
	page = append(page, glyphs(72, 500, 10, 5, "second")...)
	page = append(page, glyphs(200, 700.5, 10, 5, "right")...)
	page = append(page, glyphs(72, 701, 10, 5, "left")...)
	page = append(page, glyphs(72, 300, 10, 0, "third")...)

	lines := textLines(page)
	require.Len(t, lines, 3)
	assert.Equal(t, "left right", lineText(lines[0]))
	assert.Equal(t, "second", lineText(lines[1]))
	assert.Equal(t, "third", lineText(lines[2]))

	assert.Empty(t, textLines(nil))
}

type stubProcessor struct {
	texts map[string]string
}

var errNotPDF = errors.New("not a pdf")

func (p stubProcessor) ExtractText(pdfData []byte) (string, error) {
	text, ok := p.texts[string(pdfData)]
	if !ok {
		return "", errNotPDF
	}
	return text, nil
}
