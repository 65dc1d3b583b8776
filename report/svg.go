package report

import (
	"fmt"
	"strings"

	"github.com/ilyacartwright/hamilton-dp-bipartite/backtrack"
	"github.com/ilyacartwright/hamilton-dp-bipartite/interval"
)

// Diagram geometry, in SVG user units.
const (
	svgMargin    = 40
	svgCellW     = 48 // horizontal distance between consecutive X-indices
	svgRowH      = 36 // vertical distance between consecutive Y-rows
	svgRadius    = 4
	svgColumnGap = 220 // X-to-Y column distance in the cycle layout
)

// IntervalSVG renders the 2-interval structure: one horizontal row per
// Y-index, a bar per non-empty interval with endpoint dots and an
// I1/I2 label. Output is deterministic for a given graph.
func IntervalSVG(g *interval.Graph) string {
	n := g.N()
	width := 2*svgMargin + max(n-1, 0)*svgCellW
	height := 2*svgMargin + max(n-1, 0)*svgRowH

	var b strings.Builder
	openSVG(&b, width, height)

	// Axis ticks: one label per X-index along the bottom.
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="10" text-anchor="middle">x%d</text>`+"\n",
			svgMargin+i*svgCellW, height-svgMargin/2, i)
	}

	for y := 0; y < n; y++ {
		rowY := svgMargin + y*svgRowH
		fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="10" text-anchor="end">y%d</text>`+"\n",
			svgMargin/2, rowY+3, y)

		yv := g.Y(y)
		drawInterval(&b, yv.First, "I1", rowY)
		drawInterval(&b, yv.Second, "I2", rowY)
	}

	b.WriteString("</svg>\n")

	return b.String()
}

// drawInterval emits one interval bar with endpoint dots and a label.
func drawInterval(b *strings.Builder, iv interval.Interval, label string, rowY int) {
	if iv.Empty() {
		return
	}
	l, r := iv.Bounds()
	x1 := svgMargin + l*svgCellW
	x2 := svgMargin + r*svgCellW
	fmt.Fprintf(b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="black" stroke-width="2"/>`+"\n", x1, rowY, x2, rowY)
	fmt.Fprintf(b, `<circle cx="%d" cy="%d" r="%d" fill="black"/>`+"\n", x1, rowY, svgRadius)
	fmt.Fprintf(b, `<circle cx="%d" cy="%d" r="%d" fill="black"/>`+"\n", x2, rowY, svgRadius)
	fmt.Fprintf(b, `<text x="%d" y="%d" font-size="9" text-anchor="middle">%s</text>`+"\n", (x1+x2)/2, rowY-7, label)
}

// CycleSVG renders a found cycle in a two-column bipartite layout:
// X-vertices on the left, Y-vertices on the right, cycle edges as
// straight segments including the closing one.
func CycleSVG(g *interval.Graph, cycle backtrack.Cycle) string {
	n := g.N()
	width := 2*svgMargin + svgColumnGap
	height := 2*svgMargin + max(n-1, 0)*svgRowH

	var b strings.Builder
	openSVG(&b, width, height)

	for i := 0; i < n; i++ {
		px, py := vertexPos(backtrack.Vertex{Side: backtrack.SideX, Index: i})
		fmt.Fprintf(&b, `<circle cx="%d" cy="%d" r="%d" fill="black"/>`+"\n", px, py, svgRadius)
		fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="10" text-anchor="end">x%d</text>`+"\n", px-8, py+3, i)

		px, py = vertexPos(backtrack.Vertex{Side: backtrack.SideY, Index: i})
		fmt.Fprintf(&b, `<circle cx="%d" cy="%d" r="%d" fill="black"/>`+"\n", px, py, svgRadius)
		fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="10" text-anchor="start">y%d</text>`+"\n", px+8, py+3, i)
	}

	for p, v := range cycle {
		w := cycle[(p+1)%len(cycle)]
		x1, y1 := vertexPos(v)
		x2, y2 := vertexPos(w)
		fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="black" stroke-width="1"/>`+"\n", x1, y1, x2, y2)
	}

	b.WriteString("</svg>\n")

	return b.String()
}

// vertexPos places a side-tagged vertex in the two-column layout.
func vertexPos(v backtrack.Vertex) (x, y int) {
	x = svgMargin
	if v.Side == backtrack.SideY {
		x += svgColumnGap
	}

	return x, svgMargin + v.Index*svgRowH
}

// openSVG writes the document header.
func openSVG(b *strings.Builder, width, height int) {
	fmt.Fprintf(b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)
}
