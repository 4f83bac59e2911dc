package report

import (
	"io"

	"github.com/go-pdf/fpdf"
)

// Renderer materializes a report document into a downloadable artifact.
type Renderer interface {
	Render(w io.Writer, doc *Document) error
}

type rgb struct {
	r, g, b int
}

var (
	colorBanner     = rgb{41, 128, 185}
	colorSummaryBox = rgb{245, 247, 250}
	colorGrid       = rgb{220, 220, 220}
	colorSummary    = rgb{80, 80, 80}
	colorFooter     = rgb{100, 100, 100}
	colorBody       = rgb{50, 50, 50}
	colorWhite      = rgb{255, 255, 255}
)

const (
	fontFamily = "Helvetica"

	bannerHeight      = 35.0
	smallBannerHeight = 20.0
	summaryBoxY       = 45.0
	summaryBoxHeight  = 45.0
	summaryLineStartY = 65.0
	summaryLineHeight = 12.0
	tableStartY       = 100.0
	headRowHeight     = 10.0
	bodyRowHeight     = 8.0
	footerOffset      = 15.0
	pageBreakMargin   = 30.0
)

// PDFRenderer lays a document out on portrait pages with the survey table
// spanning the width between the margins.
type PDFRenderer struct {
	PageSize string
	Margin   float64
}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{
		PageSize: "A4",
		Margin:   15,
	}
}

// Render writes the whole PDF to w. Nothing is written when the document
// can not be laid out.
func (r *PDFRenderer) Render(w io.Writer, doc *Document) error {
	if doc == nil || len(doc.Rows) == 0 {
		return ErrNoRecords
	}

	pdf := fpdf.New("P", "mm", r.PageSize, "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageWidth, pageHeight := pdf.GetPageSize()
	widths := ColumnWidths(pageWidth - 2*r.Margin)

	pdf.SetTitle(doc.Title, true)
	pdf.SetCreationDate(doc.GeneratedAt)
	pdf.SetMargins(r.Margin, r.Margin, r.Margin)
	pdf.SetAutoPageBreak(true, pageBreakMargin)

	pdf.SetHeaderFunc(func() {
		d := doc.Decoration(pdf.PageNo())
		if !d.RedrawBanner {
			return
		}

		setFill(pdf, colorBanner)
		pdf.Rect(0, 0, pageWidth, smallBannerHeight, "F")
		setText(pdf, colorWhite)
		pdf.SetFont(fontFamily, "B", 12)
		pdf.Text(r.Margin, 14, tr(doc.Title))

		pdf.SetY(smallBannerHeight + 8)
		r.drawTableHead(pdf, tr, doc, widths)
	})

	pdf.SetFooterFunc(func() {
		d := doc.Decoration(pdf.PageNo())
		footerY := pageHeight - footerOffset

		setDraw(pdf, colorGrid)
		pdf.SetLineWidth(0.1)
		pdf.Line(r.Margin, footerY-10, pageWidth-r.Margin, footerY-10)

		pdf.SetFont(fontFamily, "", 8)
		setText(pdf, colorFooter)
		pdf.Text(r.Margin, footerY, tr(d.FooterLegend))
		pdf.Text(pageWidth-r.Margin-20, footerY, tr(d.PageLabel))
	})

	pdf.AddPage()
	r.drawFirstPage(pdf, tr, doc, pageWidth)

	pdf.SetY(tableStartY)
	r.drawTableHead(pdf, tr, doc, widths)

	pdf.SetFont(fontFamily, "", 8)
	setText(pdf, colorBody)
	setDraw(pdf, colorGrid)
	pdf.SetLineWidth(0.1)
	for _, row := range doc.Rows {
		for i, cell := range row.Cells() {
			pdf.CellFormat(widths[i], bodyRowHeight, tr(cell), "1", 0, alignStr(doc.Columns, i), false, 0, "")
		}
		pdf.Ln(bodyRowHeight)
	}

	if err := pdf.Error(); err != nil {
		return err
	}

	return pdf.Output(w)
}

func (r *PDFRenderer) drawFirstPage(pdf *fpdf.Fpdf, tr func(string) string, doc *Document, pageWidth float64) {
	setFill(pdf, colorBanner)
	pdf.Rect(0, 0, pageWidth, bannerHeight, "F")
	setText(pdf, colorWhite)
	pdf.SetFont(fontFamily, "B", 22)
	pdf.Text(r.Margin, 25, tr(doc.Title))

	setFill(pdf, colorSummaryBox)
	pdf.RoundedRect(r.Margin, summaryBoxY, pageWidth-2*r.Margin, summaryBoxHeight, 3, "1234", "F")

	setText(pdf, colorBanner)
	pdf.SetFont(fontFamily, "B", 12)
	pdf.Text(r.Margin+5, summaryBoxY+10, tr(doc.SummaryTitle))

	setText(pdf, colorSummary)
	pdf.SetFont(fontFamily, "", 10)
	columnX := [2]float64{r.Margin + 5, pageWidth / 2}
	for c, lines := range doc.SummaryColumns {
		for i, line := range lines {
			pdf.Text(columnX[c], summaryLineStartY+float64(i)*summaryLineHeight, tr(line))
		}
	}
}

func (r *PDFRenderer) drawTableHead(pdf *fpdf.Fpdf, tr func(string) string, doc *Document, widths []float64) {
	setFill(pdf, colorBanner)
	setText(pdf, colorWhite)
	setDraw(pdf, colorGrid)
	pdf.SetLineWidth(0.1)
	pdf.SetFont(fontFamily, "B", 8)

	for i, column := range doc.Columns {
		pdf.CellFormat(widths[i], headRowHeight, tr(column.Header), "1", 0, alignStr(doc.Columns, i), true, 0, "")
	}
	pdf.Ln(headRowHeight)

	pdf.SetFont(fontFamily, "", 8)
	setText(pdf, colorBody)
}

func alignStr(columns []Column, i int) string {
	if i < len(columns) && columns[i].Align == AlignLeft {
		return "LM"
	}
	return "CM"
}

func setFill(pdf *fpdf.Fpdf, c rgb) {
	pdf.SetFillColor(c.r, c.g, c.b)
}

func setText(pdf *fpdf.Fpdf, c rgb) {
	pdf.SetTextColor(c.r, c.g, c.b)
}

func setDraw(pdf *fpdf.Fpdf, c rgb) {
	pdf.SetDrawColor(c.r, c.g, c.b)
}
