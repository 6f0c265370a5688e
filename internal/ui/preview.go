package ui

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"LocalSketch/internal/sketch"
)

// PreviewImage is a display target that shows the centred preview document
// as an image scaled to fit its container. Document returns the document as
// presented; the image is fed a copy fyne can rasterise.
type PreviewImage struct {
	Image *canvas.Image
	name  string
	seq   int
	doc   string
}

var _ sketch.DisplayTarget = (*PreviewImage)(nil)

// NewPreviewImage creates an empty preview. name distinguishes the resources
// of several previews.
func NewPreviewImage(name string, minSize fyne.Size) *PreviewImage {
	img := &canvas.Image{FillMode: canvas.ImageFillContain}
	img.SetMinSize(minSize)
	return &PreviewImage{Image: img, name: name}
}

// Present swaps in doc. An empty document blanks the image.
func (p *PreviewImage) Present(doc string) {
	p.doc = doc
	if doc == "" {
		p.Image.Resource = nil
	} else {
		// A fresh resource name per document stops fyne reusing a cached render.
		p.seq++
		p.Image.Resource = fyne.NewStaticResource(fmt.Sprintf("%s-%d.svg", p.name, p.seq), []byte(displayable(doc)))
	}
	p.Image.Refresh()
}

// Document returns the document currently shown.
func (p *PreviewImage) Document() string { return p.doc }

var viewBoxAttr = regexp.MustCompile(`viewBox="([^"]*)"`)

// displayable adapts a preview document for fyne's SVG loader, which draws
// nothing for percentage sizes or a zero-area viewBox. The size attributes
// are dropped so the viewBox becomes the intrinsic size, and an empty axis
// gets a two-unit extent around its origin.
func displayable(doc string) string {
	doc = strings.Replace(doc, ` width="100%" height="100%"`, "", 1)
	return viewBoxAttr.ReplaceAllStringFunc(doc, func(attr string) string {
		fields := strings.Fields(viewBoxAttr.FindStringSubmatch(attr)[1])
		if len(fields) != 4 {
			return attr
		}
		var v [4]float64
		for i, f := range fields {
			n, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return attr
			}
			v[i] = n
		}
		if v[2] <= 0 {
			v[0], v[2] = v[0]-1, 2
		}
		if v[3] <= 0 {
			v[1], v[3] = v[1]-1, 2
		}
		return fmt.Sprintf(`viewBox="%s %s %s %s"`, num(v[0]), num(v[1]), num(v[2]), num(v[3]))
	})
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
