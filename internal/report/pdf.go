// Package report produces the printable PDF blueprint of a plan.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/Dan9191/finplan-service/internal/dashboard"
	"github.com/go-pdf/fpdf"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// pdfText makes s printable with the core fonts: the rupee sign and emoji
// have no cp1252 glyph.
func pdfText(tr func(string) string, s string) string {
	s = strings.ReplaceAll(s, "₹", "Rs. ")
	var b strings.Builder
	for _, r := range s {
		if r > 0xFFFF || (r >= 0x2600 && r <= 0x27BF) || r == 0xFE0F {
			continue
		}
		b.WriteRune(r)
	}
	return tr(strings.TrimSpace(b.String()))
}

type blueprint struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	d   dashboard.Dashboard
	now time.Time
}

// Blueprint renders the dashboard as an A4 PDF
func Blueprint(d dashboard.Dashboard, now time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.SetTitle("Financial Blueprint", true)

	r := &blueprint{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor(""), d: d, now: now}
	r.addSummaryPage()
	r.addInstrumentPages()

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *blueprint) text(s string) string { return pdfText(r.tr, s) }

func (r *blueprint) heading(s string) {
	r.pdf.Ln(4)
	r.pdf.SetFont("Arial", "B", 13)
	r.pdf.SetTextColor(13, 43, 30)
	r.pdf.CellFormat(contentWidth, 8, r.text(s), "B", 1, "L", false, 0, "")
	r.pdf.Ln(2)
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
}

func (r *blueprint) row(left, right string, fill bool) {
	r.pdf.CellFormat(contentWidth*0.65, 7, r.text(left), "1", 0, "L", fill, 0, "")
	r.pdf.CellFormat(contentWidth*0.35, 7, r.text(right), "1", 1, "R", fill, 0, "")
}

func (r *blueprint) addSummaryPage() {
	p := r.pdf
	p.AddPage()

	p.SetFont("Arial", "B", 22)
	p.SetTextColor(39, 102, 69)
	p.CellFormat(contentWidth, 12, r.text(r.d.Header.Name+"'s Financial Blueprint"), "", 1, "C", false, 0, "")
	p.SetFont("Arial", "I", 10)
	p.SetTextColor(100, 100, 100)
	p.CellFormat(contentWidth, 6, fmt.Sprintf("Generated: %s", r.now.Format("2 January 2006")), "", 1, "C", false, 0, "")
	p.CellFormat(contentWidth, 6, r.text(fmt.Sprintf("Monthly income %s - Risk profile %s", r.d.Header.Income, r.d.Header.Risk)), "", 1, "C", false, 0, "")

	r.heading("At a glance")
	p.SetFillColor(245, 247, 250)
	for i, s := range r.d.Stats {
		r.row(s.Label, s.Text, i%2 == 0)
	}

	r.heading("Asset allocation")
	for i, s := range r.d.Slices {
		r.row(s.Label, fmt.Sprintf("%d%%", s.Percentage), i%2 == 0)
	}

	r.heading("Growth projection")
	p.SetFont("Arial", "B", 10)
	w := contentWidth / 3
	p.CellFormat(w, 7, "Horizon", "1", 0, "L", true, 0, "")
	p.CellFormat(w, 7, "Projected corpus", "1", 0, "R", true, 0, "")
	p.CellFormat(w, 7, "You invest", "1", 1, "R", true, 0, "")
	p.SetFont("Arial", "", 10)
	for _, b := range r.d.Bars {
		p.CellFormat(w, 7, b.Label, "1", 0, "L", false, 0, "")
		p.CellFormat(w, 7, r.text(b.Corpus), "1", 0, "R", false, 0, "")
		p.CellFormat(w, 7, r.text(b.Invested), "1", 1, "R", false, 0, "")
	}

	p.Ln(6)
	p.SetFont("Arial", "I", 8)
	p.MultiCell(contentWidth, 4, "Projections assume a constant annual return compounded monthly and are illustrative only. Markets do not move in straight lines.", "", "L", false)
}

func (r *blueprint) addInstrumentPages() {
	p := r.pdf
	p.AddPage()
	p.SetFont("Arial", "B", 18)
	p.SetTextColor(39, 102, 69)
	p.CellFormat(contentWidth, 10, "Recommended instruments", "", 1, "L", false, 0, "")

	for _, c := range r.d.Cards {
		r.heading(c.Name)
		alloc := c.AllocationText
		if c.AllocationPct != nil {
			alloc += "%"
		}
		p.MultiCell(contentWidth, 5, r.text(fmt.Sprintf("%s - %s of portfolio - %s (%s)", c.AllocationLabel, alloc, c.ReturnRange, c.ReturnLabel)), "", "L", false)
		for _, d := range c.Details {
			p.MultiCell(contentWidth, 5, r.text(d.Label+": "+d.Value), "", "L", false)
		}
		p.Ln(1)
		p.SetFont("Arial", "B", 10)
		p.CellFormat(contentWidth, 6, "How to invest", "", 1, "L", false, 0, "")
		p.SetFont("Arial", "", 10)
		for i, s := range c.Steps {
			p.MultiCell(contentWidth, 5, r.text(fmt.Sprintf("%d. %s", i+1, s)), "", "L", false)
		}
		p.MultiCell(contentWidth, 5, r.text("Documents: "+strings.Join(c.Docs, ", ")), "", "L", false)
		p.MultiCell(contentWidth, 5, r.text("Risks: "+c.Risks), "", "L", false)
		p.MultiCell(contentWidth, 5, r.text("Avoid if: "+c.WhoAvoid), "", "L", false)
		p.SetTextColor(160, 30, 30)
		for _, f := range c.ScamFlags {
			p.MultiCell(contentWidth, 5, r.text("! "+f), "", "L", false)
		}
		p.SetTextColor(50, 50, 50)
	}
}
