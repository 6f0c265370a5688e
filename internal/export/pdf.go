package export

import (
	"fmt"
	"io"
	"math"

	"github.com/jung-kurt/gofpdf"

	"LocalSketch/internal/state"
)

// PDFOptions configure WritePDF.
type PDFOptions struct {
	// Margin around the drawing, in points.
	Margin float64
	// LineWidth in points.
	LineWidth float64
}

// DefaultPDFOptions are used when WritePDF is given the zero value.
var DefaultPDFOptions = PDFOptions{Margin: 36, LineWidth: 1}

// WritePDF draws strokes on a single landscape A4 page, scaled uniformly to
// fit inside the margins, one line per pair of consecutive points. An empty
// drawing produces a blank page.
func WritePDF(w io.Writer, strokes []state.Stroke, opts PDFOptions) error {
	if opts == (PDFOptions{}) {
		opts = DefaultPDFOptions
	}
	p := gofpdf.New("L", "pt", "A4", "")
	p.AddPage()
	p.SetDrawColor(0, 0, 0)
	p.SetLineWidth(opts.LineWidth)
	p.SetLineCapStyle("round")

	pageW, pageH := p.GetPageSize()
	if b, ok := state.Bounds(strokes); ok {
		scale := fitScale(b, pageW-2*opts.Margin, pageH-2*opts.Margin)
		// Centre the drawing on the page.
		offX := pageW/2 - b.Center().X*scale
		offY := pageH/2 - b.Center().Y*scale
		for _, s := range strokes {
			for i := 1; i < len(s.Points); i++ {
				a, c := s.Points[i-1], s.Points[i]
				p.Line(a.X*scale+offX, a.Y*scale+offY, c.X*scale+offX, c.Y*scale+offY)
			}
		}
	}

	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// fitScale returns the largest uniform scale that fits b inside availW by
// availH, never enlarging the drawing.
func fitScale(b state.BoundingBox, availW, availH float64) float64 {
	scale := 1.0
	if b.Width() > 0 {
		scale = math.Min(scale, availW/b.Width())
	}
	if b.Height() > 0 {
		scale = math.Min(scale, availH/b.Height())
	}
	return scale
}
