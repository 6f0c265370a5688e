package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drawStroke(h *History, pts ...Point) {
	h.Begin(pts[0])
	for _, p := range pts[1:] {
		h.Append(p)
	}
}

func pointsOf(strokes []Stroke) [][]Point {
	out := make([][]Point, len(strokes))
	for i, s := range strokes {
		out[i] = s.Points
	}
	return out
}

func TestHistory_BeginOpensSinglePointStroke(t *testing.T) {
	h := NewHistory()
	s := h.Begin(Pt(3, 4))

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, []Point{{3, 4}}, s.Points)
	assert.Equal(t, 1, h.Len())
}

func TestHistory_AppendOnEmptyIsNoop(t *testing.T) {
	h := NewHistory()
	h.Append(Pt(1, 1))
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, uint64(0), h.Revision())
}

func TestHistory_UndoRedoInverse(t *testing.T) {
	tests := []struct {
		name    string
		strokes [][]Point
	}{
		{"single", [][]Point{{{0, 0}, {10, 0}}}},
		{"several", [][]Point{{{0, 0}, {1, 1}}, {{5, 5}}, {{2, 3}, {4, 5}, {6, 7}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHistory()
			for _, pts := range tt.strokes {
				drawStroke(h, pts...)
			}
			before := h.Strokes()

			require.True(t, h.Undo())
			assert.Equal(t, len(tt.strokes)-1, h.Len())
			assert.Equal(t, 1, h.RedoLen())

			require.True(t, h.Redo())
			assert.Equal(t, before, h.Strokes())
			assert.Equal(t, 0, h.RedoLen())
		})
	}
}

func TestHistory_RedoIsLastUndoneFirst(t *testing.T) {
	h := NewHistory()
	drawStroke(h, Pt(1, 1))
	drawStroke(h, Pt(2, 2))
	drawStroke(h, Pt(3, 3))

	h.Undo()
	h.Undo()
	assert.Equal(t, [][]Point{{{1, 1}}}, pointsOf(h.Strokes()))
	assert.Equal(t, [][]Point{{{3, 3}}, {{2, 2}}}, pointsOf(h.RedoStrokes()))

	h.Redo()
	assert.Equal(t, [][]Point{{{1, 1}}, {{2, 2}}}, pointsOf(h.Strokes()))
}

func TestHistory_UndoRedoEmptyAreNoops(t *testing.T) {
	h := NewHistory()
	assert.False(t, h.Undo())
	assert.False(t, h.Redo())
	assert.Equal(t, uint64(0), h.Revision())
}

func TestHistory_BeginInvalidatesRedo(t *testing.T) {
	h := NewHistory()
	drawStroke(h, Pt(0, 0), Pt(1, 0))
	drawStroke(h, Pt(0, 1), Pt(1, 1))
	h.Undo()
	h.Undo()
	require.Equal(t, 2, h.RedoLen())

	h.Begin(Pt(9, 9))
	assert.Equal(t, 0, h.RedoLen())
	assert.False(t, h.Redo())
}

func TestHistory_ClearEmptiesEverything(t *testing.T) {
	h := NewHistory()
	drawStroke(h, Pt(0, 0), Pt(1, 0))
	drawStroke(h, Pt(0, 1), Pt(1, 1))
	h.Undo()

	h.Clear()
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, 0, h.RedoLen())
	assert.False(t, h.Redo())
}

func TestHistory_UndoThenRedoRestoresStroke(t *testing.T) {
	h := NewHistory()
	drawStroke(h, Pt(0, 0), Pt(10, 0))

	h.Undo()
	assert.Equal(t, 0, h.Len())
	require.Len(t, h.RedoStrokes(), 1)
	assert.Len(t, h.RedoStrokes()[0].Points, 2)

	h.Redo()
	assert.Equal(t, [][]Point{{{0, 0}, {10, 0}}}, pointsOf(h.Strokes()))
}

func TestHistory_SnapshotsAreIndependent(t *testing.T) {
	h := NewHistory()
	drawStroke(h, Pt(0, 0), Pt(1, 1))

	snap := h.Strokes()
	snap[0].Points[0] = Pt(99, 99)

	assert.Equal(t, Pt(0, 0), h.Strokes()[0].Points[0])
}

func TestHistory_ReplaceLastKeepsID(t *testing.T) {
	h := NewHistory()
	s := h.Begin(Pt(0, 0))
	h.Append(Pt(3, 3))

	assert.False(t, h.ReplaceLast(nil))
	require.True(t, h.ReplaceLast([]Point{{1, 1}, {2, 2}}))

	last, ok := h.Last()
	require.True(t, ok)
	assert.Equal(t, s.ID, last.ID)
	assert.Equal(t, []Point{{1, 1}, {2, 2}}, last.Points)
}

func TestHistory_LoadDropsEmptyStrokesAndRedo(t *testing.T) {
	h := NewHistory()
	drawStroke(h, Pt(0, 0))
	h.Undo()

	h.Load([]Stroke{
		{ID: "a", Points: []Point{{1, 2}}},
		{ID: "empty"},
		{Points: []Point{{3, 4}, {5, 6}}},
	})

	got := h.Strokes()
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.NotEmpty(t, got[1].ID)
	assert.Equal(t, 0, h.RedoLen())
}

func TestHistory_RevisionAdvancesOnMutation(t *testing.T) {
	h := NewHistory()
	h.Begin(Pt(0, 0))
	r1 := h.Revision()
	h.Append(Pt(1, 0))
	r2 := h.Revision()
	h.Undo()
	r3 := h.Revision()

	assert.Less(t, r1, r2)
	assert.Less(t, r2, r3)
}

func TestBounds(t *testing.T) {
	_, ok := Bounds(nil)
	assert.False(t, ok)

	b, ok := Bounds([]Stroke{
		{Points: []Point{{10, 10}, {20, 10}}},
		{Points: []Point{{-5, 30}}},
	})
	require.True(t, ok)
	assert.Equal(t, BoundingBox{MinX: -5, MaxX: 20, MinY: 10, MaxY: 30}, b)
	assert.Equal(t, 25.0, b.Width())
	assert.Equal(t, 20.0, b.Height())
	assert.Equal(t, Pt(7.5, 20), b.Center())
}
