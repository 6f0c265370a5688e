package render

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalSketch/internal/state"
)

// recorder logs painter calls as strings.
type recorder struct {
	calls []string
}

func (r *recorder) Clear()                 { r.calls = append(r.calls, "clear") }
func (r *recorder) SetLineWidth(w float64) { r.calls = append(r.calls, fmt.Sprintf("width %g", w)) }
func (r *recorder) BeginPath()             { r.calls = append(r.calls, "begin") }
func (r *recorder) MoveTo(x, y float64)    { r.calls = append(r.calls, fmt.Sprintf("move %g %g", x, y)) }
func (r *recorder) LineTo(x, y float64)    { r.calls = append(r.calls, fmt.Sprintf("line %g %g", x, y)) }
func (r *recorder) Stroke()                { r.calls = append(r.calls, "stroke") }

func TestRedrawAll_OnePathPerStroke(t *testing.T) {
	rec := &recorder{}
	RedrawAll(rec, []state.Stroke{
		{Points: []state.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}},
		{Points: []state.Point{{X: 5, Y: 5}}},
	}, 2)

	assert.Equal(t, []string{
		"clear",
		"width 2", "begin", "move 1 1", "line 1 1", "line 2 2", "stroke",
		"width 2", "begin", "move 5 5", "line 5 5", "stroke",
	}, rec.calls)
}

func TestRedrawAll_EmptyHistoryOnlyClears(t *testing.T) {
	rec := &recorder{}
	RedrawAll(rec, nil, 2)
	assert.Equal(t, []string{"clear"}, rec.calls)
}

type batchRecorder struct {
	recorder
}

func (r *batchRecorder) BeginBatch() { r.calls = append(r.calls, "batch") }
func (r *batchRecorder) EndBatch()   { r.calls = append(r.calls, "end batch") }

func TestRedrawAll_BatchesWholeRedraw(t *testing.T) {
	rec := &batchRecorder{}
	RedrawAll(rec, []state.Stroke{
		{Points: []state.Point{{X: 1, Y: 1}}},
		{Points: []state.Point{{X: 2, Y: 2}}},
	}, 1)

	require.NotEmpty(t, rec.calls)
	assert.Equal(t, "batch", rec.calls[0])
	assert.Equal(t, "clear", rec.calls[1])
	assert.Equal(t, "end batch", rec.calls[len(rec.calls)-1])

	// Incremental segments are presented as they come.
	rec.calls = nil
	DrawSegment(rec, state.Pt(0, 0), state.Pt(1, 1), 1)
	assert.NotContains(t, rec.calls, "batch")
}

func TestDrawSegment(t *testing.T) {
	rec := &recorder{}
	DrawSegment(rec, state.Pt(0, 0), state.Pt(3, 4), 2)
	assert.Equal(t, []string{"width 2", "begin", "move 0 0", "line 3 4", "stroke"}, rec.calls)
}

func isInk(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r < 0x8000 && g < 0x8000 && b < 0x8000
}

func TestRaster_StrokesAndClears(t *testing.T) {
	r := NewRaster(40, 20)
	RedrawAll(r, []state.Stroke{{Points: []state.Point{{X: 5, Y: 10}, {X: 35, Y: 10}}}}, 4)

	img := r.Image()
	assert.True(t, isInk(img.At(20, 10)), "expected ink on the line")
	assert.False(t, isInk(img.At(20, 2)), "expected background away from the line")

	RedrawAll(r, nil, 4)
	assert.False(t, isInk(r.Image().At(20, 10)), "expected surface cleared")
}

func TestRaster_StrokesDoNotConnect(t *testing.T) {
	r := NewRaster(40, 40)
	RedrawAll(r, []state.Stroke{
		{Points: []state.Point{{X: 5, Y: 5}, {X: 15, Y: 5}}},
		{Points: []state.Point{{X: 5, Y: 35}, {X: 15, Y: 35}}},
	}, 2)

	// A join between the strokes would cross x=15, y=20.
	assert.False(t, isInk(r.Image().At(15, 20)))
}

func TestRaster_WritePNG(t *testing.T) {
	r := NewRaster(8, 8)
	var buf bytes.Buffer
	require.NoError(t, r.WritePNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
}
