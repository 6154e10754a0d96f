package pdf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"github.com/mmonclus-coder/quote-web/models"
)

const inch = 72.0

// Letter page in points.
const (
	pageW = 612.0
	pageH = 792.0
)

// Fixed layout geometry, measured from the top-left of the page.
const (
	marginL = 0.85 * inch
	marginR = pageW - 0.85*inch
	topY    = 0.65 * inch

	col2Offset = 3.25 * inch
	col3Offset = 5.90 * inch

	tableHeaderH = 0.34 * inch
	rowH         = 0.28 * inch

	descInset = 0.12 * inch
	hoursCol  = marginL + 4.75*inch
	unitCol   = marginL + 5.75*inch
)

type rgb struct{ r, g, b int }

var (
	brandBlue     = rgb{47, 91, 234}
	labelGrey     = rgb{142, 142, 142}
	lineGrey      = rgb{217, 217, 217}
	rowLineGrey   = rgb{230, 230, 230}
	tableHeadBG   = rgb{242, 242, 242}
	tableHeadText = rgb{35, 57, 167}
	valueGrey     = rgb{74, 74, 74}
	closingPink   = rgb{194, 24, 91}
	black         = rgb{0, 0, 0}
)

// Document is everything the renderer needs to lay out one quote page.
type Document struct {
	QuoteNo     string
	SubmittedOn string
	WorkOrder   string
	DueDate     string
	UnitPrice   float64
	Items       []models.LineItem
}

// Config carries the fixed page furniture: sender identity, recipient block,
// and optional decorative assets. FontDir, when set, must contain Calibri.ttf
// and Calibri-Bold.ttf; fonts are a hard dependency and registration failures
// abort the render. The logo is cosmetic and skipped when absent.
type Config struct {
	CompanyLines   []string
	RecipientLines []string
	PayableTo      string
	LogoPath       string
	FontDir        string
}

// Renderer produces the fixed single-page quote document. It holds no
// per-request state; each Render call builds a fresh page.
type Renderer struct {
	cfg    Config
	logger *zap.Logger
}

func NewRenderer(cfg Config, logger *zap.Logger) *Renderer {
	return &Renderer{cfg: cfg, logger: logger}
}

// Render lays out the quote and writes the finished PDF to w. The table
// grows downward without pagination; callers keep item counts small.
func (r *Renderer) Render(w io.Writer, doc Document) error {
	p := gofpdf.New("P", "pt", "Letter", "")
	p.SetAutoPageBreak(false, 0)

	family := "Helvetica"
	if r.cfg.FontDir != "" {
		p.AddUTF8Font("Calibri", "", filepath.Join(r.cfg.FontDir, "Calibri.ttf"))
		p.AddUTF8Font("Calibri", "B", filepath.Join(r.cfg.FontDir, "Calibri-Bold.ttf"))
		if p.Err() {
			return fmt.Errorf("failed to register fonts: %w", p.Error())
		}
		family = "Calibri"
	}

	p.AddPage()

	// Brand bar across the top.
	setFill(p, brandBlue)
	p.Rect(marginL, topY-0.36*inch, marginR-marginL, 0.18*inch, "F")

	y := topY + 0.10*inch

	if r.cfg.LogoPath != "" {
		if _, err := os.Stat(r.cfg.LogoPath); err == nil {
			logoW, logoH := 2.2*inch, 0.6*inch
			p.ImageOptions(r.cfg.LogoPath, marginL, y, logoW, logoH, false, gofpdf.ImageOptions{}, 0, "")
			y += logoH + 10
		} else {
			r.logger.Warn("Logo not found, omitting", zap.String("path", r.cfg.LogoPath))
			y += 10
		}
	} else {
		y += 10
	}

	// Sender contact block.
	setText(p, black)
	p.SetFont(family, "", 10)
	for _, line := range r.cfg.CompanyLines {
		y += 14
		p.Text(marginL, y, line)
	}

	titleY := y + 0.55*inch
	p.SetFont(family, "B", 28)
	p.Text(marginL, titleY, "Quote")

	subY := titleY + 0.35*inch
	p.SetFont(family, "B", 11)
	setText(p, labelGrey)
	p.Text(marginL, subY, "Submitted on:")
	setText(p, valueGrey)
	p.SetFont(family, "", 11)
	p.Text(marginL+1.05*inch, subY, doc.SubmittedOn)

	// Three header columns: quote-for, payable-to, quote number.
	blocksTop := subY + 0.40*inch
	col1X := marginL
	col2X := marginL + col2Offset
	col3X := marginL + col3Offset

	setText(p, black)
	p.SetFont(family, "B", 11)
	p.Text(col1X, blocksTop, "Quote for")
	p.SetFont(family, "", 10)
	yy := blocksTop + 18
	for _, line := range r.cfg.RecipientLines {
		p.Text(col1X, yy, line)
		yy += 14
	}

	p.SetFont(family, "B", 11)
	p.Text(col2X, blocksTop, "Payable to")
	p.SetFont(family, "", 10)
	p.Text(col2X, blocksTop+18, r.cfg.PayableTo)

	p.SetFont(family, "B", 11)
	p.Text(col3X, blocksTop, "Quote")
	p.Text(col3X, blocksTop+16, doc.QuoteNo)

	infoY := blocksTop + 40
	p.SetFont(family, "B", 11)
	p.Text(col2X, infoY, "Work Order")
	p.Text(col3X, infoY, "Due date")
	p.SetFont(family, "", 10)
	p.Text(col2X, infoY+16, doc.WorkOrder)
	p.Text(col3X, infoY+16, doc.DueDate)

	divY := infoY + 0.55*inch
	setDraw(p, lineGrey)
	p.SetLineWidth(1)
	p.Line(marginL, divY, marginR, divY)

	// Table header: shaded row, numeric headings right-aligned.
	tableTop := divY + 0.35*inch
	setFill(p, tableHeadBG)
	p.Rect(marginL, tableTop-2, marginR-marginL, tableHeaderH, "F")

	descX := marginL + descInset
	totalX := marginR - descInset

	setText(p, tableHeadText)
	p.SetFont(family, "B", 11)
	headY := tableTop + 0.23*inch
	p.Text(descX, headY, "Description")
	textRight(p, hoursCol, headY, "Estimated Hours")
	textRight(p, unitCol, headY, "Unit price")
	textRight(p, totalX, headY, "Total price")

	// Item rows, insertion order, thin separator above each.
	setText(p, black)
	p.SetFont(family, "", 10)
	yRow := tableTop + tableHeaderH + 0.10*inch

	var subtotal float64
	for _, it := range doc.Items {
		subtotal += it.TotalPrice(doc.UnitPrice)
		setDraw(p, rowLineGrey)
		p.SetLineWidth(0.8)
		p.Line(marginL, yRow+6, marginR, yRow+6)

		p.Text(descX, yRow, it.Description)
		textRight(p, hoursCol, yRow, models.Hours(it.EstimatedHours))
		textRight(p, unitCol, yRow, models.Money(doc.UnitPrice))
		textRight(p, totalX, yRow, models.Money(it.TotalPrice(doc.UnitPrice)))
		yRow += rowH
	}

	yTot := yRow + 0.25*inch
	setDraw(p, lineGrey)
	p.Line(marginL, yTot-14, marginR, yTot-14)

	setText(p, black)
	p.SetFont(family, "", 10)
	textRight(p, unitCol, yTot, "Subtotal")
	textRight(p, totalX, yTot, models.Money(subtotal))

	// Total always equals subtotal; there is no tax or discount step.
	p.SetFont(family, "B", 15)
	textRight(p, unitCol, yTot+44, "Total")
	textRight(p, totalX, yTot+44, models.Money(subtotal))

	ySig := yTot + 0.55*inch
	p.SetFont(family, "", 10)
	p.Text(marginL, ySig, "PO # ________________________________")
	p.Text(marginL, ySig+18, "Approved By ____________________________")

	p.SetFont(family, "B", 11)
	setText(p, closingPink)
	p.Text(marginL, ySig+126, "Thank you for your business!")

	if err := p.Output(w); err != nil {
		return fmt.Errorf("failed to write quote document: %w", err)
	}
	return nil
}

func textRight(p *gofpdf.Fpdf, x, y float64, s string) {
	p.Text(x-p.GetStringWidth(s), y, s)
}

func setFill(p *gofpdf.Fpdf, c rgb) {
	p.SetFillColor(c.r, c.g, c.b)
}

func setText(p *gofpdf.Fpdf, c rgb) {
	p.SetTextColor(c.r, c.g, c.b)
}

func setDraw(p *gofpdf.Fpdf, c rgb) {
	p.SetDrawColor(c.r, c.g, c.b)
}
