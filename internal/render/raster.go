package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Raster is a headless Painter backed by an RGBA image. Paths are stroked
// with round caps and joins in the current colour.
type Raster struct {
	img        *image.RGBA
	background color.Color
	dasher     *rasterx.Dasher
	lineWidth  float64
	started    bool
	pending    bool
}

var _ Painter = (*Raster)(nil)

// NewRaster returns a white surface of the given size.
func NewRaster(width, height int) *Raster {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	r := &Raster{
		img:        img,
		background: color.White,
		dasher:     rasterx.NewDasher(width, height, scanner),
		lineWidth:  1,
	}
	r.dasher.SetColor(color.Black)
	r.Clear()
	return r
}

func (r *Raster) Clear() {
	r.dasher.Clear()
	r.started, r.pending = false, false
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)
}

func (r *Raster) SetLineWidth(w float64) {
	r.lineWidth = w
}

func (r *Raster) BeginPath() {
	r.dasher.Clear()
	r.started, r.pending = false, false
	r.dasher.SetStroke(fixed.Int26_6(r.lineWidth*64), 0, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.ArcClip, nil, 0)
}

func (r *Raster) MoveTo(x, y float64) {
	if r.started {
		r.dasher.Stop(false)
	}
	r.dasher.Start(rasterx.ToFixedP(x, y))
	r.started = true
}

func (r *Raster) LineTo(x, y float64) {
	if !r.started {
		r.MoveTo(x, y)
		return
	}
	r.dasher.Line(rasterx.ToFixedP(x, y))
	r.pending = true
}

// Stroke rasterizes the current path onto the image and resets it.
func (r *Raster) Stroke() {
	if r.started {
		r.dasher.Stop(false)
	}
	if r.pending {
		r.dasher.Draw()
	}
	r.dasher.Clear()
	r.started, r.pending = false, false
}

// Image returns the surface. The image is live: later painting changes it.
func (r *Raster) Image() image.Image {
	return r.img
}

// WritePNG encodes the surface as PNG.
func (r *Raster) WritePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
