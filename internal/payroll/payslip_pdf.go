package payroll

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	pageWidth  = 595.0
	pageHeight = 842.0
	margin     = 18.0
	rowHeight  = 22.0
)

// RenderPDF draws a Document into a single-page PDF. The writer emits the
// objects by hand; the layout only needs rectangles, fills and three
// Helvetica variants.
func RenderPDF(doc Document) ([]byte, error) {
	p := &pdfPage{y: pageHeight - margin}

	for _, node := range doc.Nodes {
		switch n := node.(type) {
		case Band:
			p.band(n)
		case Line:
			p.line(n)
		case Grid:
			p.grid(n)
		case Words:
			p.words(n)
		case Footnote:
			p.footnote(n)
		default:
			return nil, fmt.Errorf("unknown layout node %T", node)
		}
		if p.y < margin {
			return nil, fmt.Errorf("payslip layout overflows one page")
		}
	}

	return assemblePDF(p.content.String()), nil
}

type pdfPage struct {
	content strings.Builder
	y       float64
}

func (p *pdfPage) band(b Band) {
	h := rowHeight
	r, g, bl := hexColor(b.Fill)
	fmt.Fprintf(&p.content, "%.3f %.3f %.3f rg\n", r, g, bl)
	fmt.Fprintf(&p.content, "%.1f %.1f %.1f %.1f re f\n", margin, p.y-h, pageWidth-2*margin, h)
	p.content.WriteString("1 1 1 rg\n")
	p.text(b.Text, "F2", 13, centerX(b.Text, 13), p.y-h+6)
	p.content.WriteString("0 0 0 rg\n")
	p.y -= h + 8
}

func (p *pdfPage) line(l Line) {
	font, size := "F1", 9.0
	if l.Bold {
		font = "F2"
		size = 10
	}
	if l.Italic {
		font = "F3"
		size = 8
	}

	x := margin
	switch l.Align {
	case "center":
		x = centerX(l.Text, size)
	case "right":
		x = pageWidth - margin - textWidth(l.Text, size)
	}
	p.text(l.Text, font, size, x, p.y-size)
	p.y -= size + 8
}

func (p *pdfPage) grid(g Grid) {
	cols := 4
	colW := (pageWidth - 2*margin) / float64(cols)

	for _, row := range g.Rows {
		topY := p.y
		for i, c := range row {
			x := margin + float64(i)*colW
			fmt.Fprintf(&p.content, "%.1f %.1f %.1f %.1f re S\n", x, topY-rowHeight, colW, rowHeight)
			font := "F1"
			if c.Bold {
				font = "F2"
			}
			p.text(c.Text, font, 9, x+4, topY-rowHeight+7)
		}
		p.y -= rowHeight
	}
	p.y -= 12
}

func (p *pdfPage) words(w Words) {
	colW := (pageWidth - 2*margin) / 4
	topY := p.y
	fmt.Fprintf(&p.content, "%.1f %.1f %.1f %.1f re S\n", margin, topY-rowHeight, colW, rowHeight)
	fmt.Fprintf(&p.content, "%.1f %.1f %.1f %.1f re S\n", margin+colW, topY-rowHeight, 3*colW, rowHeight)
	p.text(w.Label, "F2", 9, margin+4, topY-rowHeight+7)
	p.text(w.Text, "F1", 9, margin+colW+4, topY-rowHeight+7)
	p.y -= rowHeight + 10
}

func (p *pdfPage) footnote(f Footnote) {
	p.text(f.Text, "F1", 8, margin, p.y-8)
	p.y -= 16
}

func (p *pdfPage) text(s, font string, size, x, y float64) {
	if s == "" {
		return
	}
	fmt.Fprintf(&p.content, "BT /%s %.1f Tf %.1f %.1f Td (%s) Tj ET\n", font, size, x, y, pdfEscape(s))
}

// textWidth approximates Helvetica advance at roughly half the point size
// per glyph, which is close enough for centering header lines.
func textWidth(s string, size float64) float64 {
	return float64(len(s)) * size * 0.5
}

func centerX(s string, size float64) float64 {
	return (pageWidth - textWidth(s, size)) / 2
}

func hexColor(hex string) (float64, float64, float64) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0
	}
	r, _ := strconv.ParseUint(hex[0:2], 16, 8)
	g, _ := strconv.ParseUint(hex[2:4], 16, 8)
	b, _ := strconv.ParseUint(hex[4:6], 16, 8)
	return float64(r) / 255, float64(g) / 255, float64(b) / 255
}

func assemblePDF(stream string) []byte {
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		fmt.Sprintf("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Resources << /Font << /F1 4 0 R /F2 5 0 R /F3 6 0 R >> >> /Contents 7 0 R >>\nendobj\n", int(pageWidth), int(pageHeight)),
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n",
		"5 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Bold >>\nendobj\n",
		"6 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Oblique >>\nendobj\n",
		fmt.Sprintf("7 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes()
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)", "–", "-")
	return replacer.Replace(v)
}

// DocumentSink stores a rendered payslip and reports the final location.
//
//go:generate mockgen -source=payslip_pdf.go -destination=mock/document_sink_mock.go -package=mock
type DocumentSink interface {
	Write(filename string, pdf []byte) (string, error)
}

// DirSink writes payslips under a base directory.
type DirSink struct {
	dir string
}

func NewDirSink(dir string) *DirSink {
	return &DirSink{dir: dir}
}

func (s *DirSink) Write(filename string, pdf []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
