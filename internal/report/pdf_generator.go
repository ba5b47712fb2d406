package report

import (
	"bytes"
	"fmt"
	"math"

	"github.com/jung-kurt/gofpdf"

	"github.com/user/welllog_go/internal/analysis"
)

const (
	inchToMm               = 25.4
	pdfPageWidthLandscape  = 11 * inchToMm // Letter landscape
	pdfPageHeightLandscape = 8.5 * inchToMm
	pdfMargin              = 0.5 * inchToMm
	pdfContentWidth        = pdfPageWidthLandscape - (2 * pdfMargin)
)

// pdfStyler holds reusable styling and state for PDF generation.
type pdfStyler struct {
	pdf         *gofpdf.Fpdf
	styles      map[string]func()
	lineHeight  float64
	currentY    float64 // manually tracked Y position for flowing content
	pageHeight  float64
	contentTopY float64
}

func newPDFStyler(pdf *gofpdf.Fpdf) *pdfStyler {
	s := &pdfStyler{
		pdf:         pdf,
		styles:      make(map[string]func()),
		lineHeight:  6, // mm
		pageHeight:  pdfPageHeightLandscape - (2 * pdfMargin),
		contentTopY: pdfMargin,
	}
	s.currentY = s.contentTopY
	s.defineStyles()
	return s
}

func (s *pdfStyler) defineStyles() {
	s.styles["h1"] = func() {
		s.pdf.SetFont("Arial", "B", 16)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["h2"] = func() {
		s.pdf.SetFont("Arial", "B", 14)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["normal"] = func() {
		s.pdf.SetFont("Arial", "", 10)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["small"] = func() {
		s.pdf.SetFont("Arial", "", 8)
		s.pdf.SetTextColor(80, 80, 80)
	}
	s.styles["tableHeader"] = func() {
		s.pdf.SetFont("Arial", "B", 9)
		s.pdf.SetFillColor(200, 200, 200)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableCell"] = func() {
		s.pdf.SetFont("Arial", "", 9)
		s.pdf.SetTextColor(50, 50, 50)
	}
}

func (s *pdfStyler) applyStyle(styleName string) {
	if fn, ok := s.styles[styleName]; ok {
		fn()
	} else {
		s.styles["normal"]()
	}
}

func (s *pdfStyler) checkAddPage(neededHeight float64) {
	if s.currentY+neededHeight > s.pageHeight {
		s.pdf.AddPage()
		s.currentY = s.contentTopY
	}
}

func (s *pdfStyler) writeParagraph(text string, styleName string, align string) {
	s.applyStyle(styleName)
	s.checkAddPage(s.lineHeight)
	s.pdf.SetXY(pdfMargin, s.currentY)
	s.pdf.MultiCell(pdfContentWidth, s.lineHeight, text, "", align, false)
	s.currentY = s.pdf.GetY() + 1
}

func (s *pdfStyler) addSpacer(height float64) {
	s.checkAddPage(height)
	s.currentY += height
}

func (s *pdfStyler) addImage(imageBytes []byte, imageName string, width, height float64, caption string) {
	s.pdf.RegisterImageReader(imageName, "PNG", bytes.NewReader(imageBytes))

	if width > pdfContentWidth {
		ratio := pdfContentWidth / width
		width = pdfContentWidth
		height *= ratio
	}
	captionHeight := 0.0
	if caption != "" {
		captionHeight = s.lineHeight + 1
	}
	s.checkAddPage(height + captionHeight)

	// Center the image horizontally.
	x := pdfMargin + (pdfContentWidth-width)/2
	s.pdf.Image(imageName, x, s.currentY, width, height, false, "PNG", 0, "")
	s.currentY += height

	if caption != "" {
		s.addSpacer(1)
		s.writeParagraph(caption, "small", "C")
	}
	s.addSpacer(2)
}

// table writes a bordered table with a shaded header row.
func (s *pdfStyler) table(headers []string, widthsRel []float64, rows [][]string) {
	widths := make([]float64, len(widthsRel))
	for i, rel := range widthsRel {
		widths[i] = rel * pdfContentWidth
	}

	s.checkAddPage(s.lineHeight * (float64(len(rows)) + 1))
	sY := s.currentY
	sX := pdfMargin
	s.applyStyle("tableHeader")
	for i, header := range headers {
		s.pdf.SetXY(sX, sY)
		s.pdf.CellFormat(widths[i], s.lineHeight, header, "1", 0, "C", true, 0, "")
		sX += widths[i]
	}
	sY += s.lineHeight
	s.currentY = sY

	s.applyStyle("tableCell")
	for _, row := range rows {
		s.checkAddPage(s.lineHeight)
		sY = s.currentY
		sX = pdfMargin
		for i, cell := range row {
			s.pdf.SetXY(sX, sY)
			s.pdf.CellFormat(widths[i], s.lineHeight, cell, "1", 0, "C", false, 0, "")
			sX += widths[i]
		}
		sY += s.lineHeight
		s.currentY = sY
	}
}

func fmtStat(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.3f", v)
}

// FigureDef names one rendered figure embedded in the report.
type FigureDef struct {
	Key     string
	Title   string
	Caption string
}

// DefaultFigureDefs is the report's figure order: full track display,
// combined display with the fraction panel, standalone fraction panel.
var DefaultFigureDefs = []FigureDef{
	{Key: "tracks", Title: "Composite Log Display", Caption: "Selected curves against depth, depth increasing downward"},
	{Key: "combined", Title: "Log Display with Fraction Panel", Caption: "Curves with the stacked compositional track appended"},
	{Key: "fraction", Title: "Fraction Panel", Caption: "Stacked component fractions as filled polygons"},
}

// BuildPDFReport writes the report: well title, preparation summary, curve
// statistics table, ingest warnings, then one figure per page.
func BuildPDFReport(filepath, wellTitle string, summary analysis.Summary,
	warnings []string, figures map[string][]byte, figureDefs []FigureDef) error {

	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.AddPage()

	styler := newPDFStyler(pdf)

	title := "Well Log Report"
	if wellTitle != "" {
		title = fmt.Sprintf("Well Log Report: %s", wellTitle)
	}
	styler.writeParagraph(title, "h1", "C")
	styler.addSpacer(5)
	styler.writeParagraph(fmt.Sprintf("Rows after preparation: %d    Depth range: %.1f - %.1f ft",
		summary.Rows, summary.MinDepth, summary.MaxDepth), "normal", "L")
	styler.addSpacer(5)

	styler.writeParagraph("Curve Statistics", "h2", "L")
	if len(summary.Stats) > 0 {
		headers := []string{"Curve", "Valid", "Missing", "Mean", "Std Dev", "Min", "Max"}
		widths := []float64{0.16, 0.12, 0.12, 0.15, 0.15, 0.15, 0.15}
		rows := make([][]string, 0, len(summary.Stats))
		for _, cs := range summary.Stats {
			rows = append(rows, []string{
				cs.Curve,
				fmt.Sprintf("%d", cs.Count),
				fmt.Sprintf("%d", cs.Missing),
				fmtStat(cs.Mean),
				fmtStat(cs.StdDev),
				fmtStat(cs.Min),
				fmtStat(cs.Max),
			})
		}
		styler.table(headers, widths, rows)
	} else {
		styler.writeParagraph("No curves in the prepared table.", "normal", "L")
	}
	styler.addSpacer(5)

	if len(warnings) > 0 {
		styler.writeParagraph("Ingest Warnings", "h2", "L")
		for _, w := range warnings {
			styler.writeParagraph("- "+w, "small", "L")
		}
	}

	imgWidth := pdfContentWidth * 0.9
	imgHeight := imgWidth * (560.0 / 1190.0)
	for _, def := range figureDefs {
		styler.pdf.AddPage()
		styler.currentY = styler.contentTopY
		styler.writeParagraph(def.Title, "h2", "L")
		if imgBytes, ok := figures[def.Key]; ok && len(imgBytes) > 0 {
			styler.addImage(imgBytes, def.Key, imgWidth, imgHeight, def.Caption)
		} else {
			styler.writeParagraph(fmt.Sprintf("Figure %q not available.", def.Key), "normal", "L")
		}
	}

	return pdf.OutputFileAndClose(filepath)
}
