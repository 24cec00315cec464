package dashboard

import (
	"fmt"
	"math"

	"github.com/beevik/etree"
)

const (
	donutSize   = 200.0
	donutRadius = 90.0
	donutHole   = 50.0
	textColor   = "#0d2b1e"

	chartWidth    = 300.0
	chartHeight   = 200.0
	chartBaseline = 170.0
	barWidth      = 36.0
	returnsColor  = "#276645"
	investedColor = "#c49a2b"
)

// AllocationSVG draws the donut chart with its "Asset Mix" caption
func AllocationSVG(slices []Slice) ([]byte, error) {
	doc, svg := newSVG(donutSize, donutSize)
	cx, cy := donutSize/2, donutSize/2

	g := svg.CreateElement("g")
	g.CreateAttr("class", "donut")
	for _, s := range slices {
		if s.EndAngle <= s.StartAngle {
			continue
		}
		path := g.CreateElement("path")
		path.CreateAttr("d", arcPath(cx, cy, donutRadius, s.StartAngle, s.EndAngle))
		path.CreateAttr("fill", s.Color)
		title := path.CreateElement("title")
		title.SetText(fmt.Sprintf("%s %d%%", s.Label, s.Percentage))
	}

	hole := svg.CreateElement("circle")
	hole.CreateAttr("cx", num(cx))
	hole.CreateAttr("cy", num(cy))
	hole.CreateAttr("r", num(donutHole))
	hole.CreateAttr("fill", "#ffffff")

	for i, line := range []string{"Asset", "Mix"} {
		text := svg.CreateElement("text")
		text.CreateAttr("x", num(cx))
		text.CreateAttr("y", num(cy-6+float64(i)*18))
		text.CreateAttr("text-anchor", "middle")
		text.CreateAttr("font-weight", "bold")
		text.CreateAttr("font-size", "13")
		text.CreateAttr("fill", textColor)
		text.SetText(line)
	}

	return write(doc)
}

// ProjectionSVG draws the corpus bars with the contributed amount overlaid
func ProjectionSVG(bars []Bar) ([]byte, error) {
	doc, svg := newSVG(chartWidth, chartHeight)
	if len(bars) == 0 {
		return write(doc)
	}

	slot := chartWidth / float64(len(bars))
	usable := chartBaseline - 20
	for i, b := range bars {
		x := float64(i)*slot + (slot-barWidth)/2
		g := svg.CreateElement("g")
		g.CreateAttr("class", "proj-bar-group")

		corpusH := usable * b.CorpusPct / 100
		returns := g.CreateElement("rect")
		returns.CreateAttr("class", "proj-bar--returns")
		returns.CreateAttr("x", num(x))
		returns.CreateAttr("y", num(chartBaseline-corpusH))
		returns.CreateAttr("width", num(barWidth))
		returns.CreateAttr("height", num(corpusH))
		returns.CreateAttr("fill", returnsColor)

		investedH := usable * b.InvestedPct / 100
		invested := g.CreateElement("rect")
		invested.CreateAttr("class", "proj-bar--invested")
		invested.CreateAttr("x", num(x))
		invested.CreateAttr("y", num(chartBaseline-investedH))
		invested.CreateAttr("width", num(barWidth))
		invested.CreateAttr("height", num(investedH))
		invested.CreateAttr("fill", investedColor)

		tip := g.CreateElement("text")
		tip.CreateAttr("class", "proj-bar-tip")
		tip.CreateAttr("x", num(x+barWidth/2))
		tip.CreateAttr("y", num(chartBaseline-corpusH-4))
		tip.CreateAttr("text-anchor", "middle")
		tip.CreateAttr("font-size", "9")
		tip.SetText(b.Tip)

		year := g.CreateElement("text")
		year.CreateAttr("class", "proj-bar-year")
		year.CreateAttr("x", num(x+barWidth/2))
		year.CreateAttr("y", num(chartBaseline+16))
		year.CreateAttr("text-anchor", "middle")
		year.CreateAttr("font-size", "11")
		year.SetText(b.Label)
	}

	return write(doc)
}

func newSVG(w, h float64) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	svg := doc.CreateElement("svg")
	svg.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	svg.CreateAttr("width", num(w))
	svg.CreateAttr("height", num(h))
	svg.CreateAttr("viewBox", fmt.Sprintf("0 0 %s %s", num(w), num(h)))
	return doc, svg
}

func write(doc *etree.Document) ([]byte, error) {
	doc.Indent(2)
	b, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to write svg: %w", err)
	}
	return b, nil
}

// arcPath is a pie wedge from the centre, swept clockwise in screen space
func arcPath(cx, cy, r, start, end float64) string {
	x1, y1 := cx+r*math.Cos(start), cy+r*math.Sin(start)
	x2, y2 := cx+r*math.Cos(end), cy+r*math.Sin(end)
	large := 0
	if end-start > math.Pi {
		large = 1
	}
	return fmt.Sprintf("M %s %s L %s %s A %s %s 0 %d 1 %s %s Z",
		num(cx), num(cy), num(x1), num(y1), num(r), num(r), large, num(x2), num(y2))
}

func num(f float64) string {
	return fmt.Sprintf("%.2f", f)
}
