package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmooth(t *testing.T) {
	tests := []struct {
		name string
		in   []Point
		want []Point
	}{
		{"empty", []Point{}, []Point{}},
		{"single point unchanged", []Point{{4, 2}}, []Point{{4, 2}}},
		{"two points unchanged", []Point{{0, 0}, {9, 3}}, []Point{{0, 0}, {9, 3}}},
		{"collinear unchanged", []Point{{0, 0}, {10, 0}, {20, 0}, {30, 0}}, []Point{{0, 0}, {10, 0}, {20, 0}, {30, 0}}},
		{"spike averaged", []Point{{0, 0}, {3, 9}, {6, 0}}, []Point{{0, 0}, {3, 3}, {6, 0}}},
		{
			"reads unsmoothed neighbours",
			[]Point{{0, 0}, {0, 3}, {0, 6}, {0, 0}},
			[]Point{{0, 0}, {0, 3}, {0, 3}, {0, 0}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Smooth(tt.in))
		})
	}
}

func TestSmooth_PinsEndpoints(t *testing.T) {
	in := []Point{{1.5, -2}, {7, 7}, {-3, 11}, {8, 0.25}, {2, 2}}
	out := Smooth(in)

	assert.Equal(t, in[0], out[0])
	assert.Equal(t, in[len(in)-1], out[len(out)-1])
	assert.Len(t, out, len(in))
}

func TestSmooth_DoesNotModifyInput(t *testing.T) {
	in := []Point{{0, 0}, {3, 9}, {6, 0}}
	Smooth(in)
	assert.Equal(t, []Point{{0, 0}, {3, 9}, {6, 0}}, in)
}

func TestDamp(t *testing.T) {
	assert.Equal(t, Pt(10, 0), Damp([]Point{{0, 0}}, Pt(10, 0)))
	// Damped against the second-to-last recorded point, not the last.
	assert.Equal(t, Pt(5, 5), Damp([]Point{{0, 0}, {10, 0}}, Pt(10, 10)))
	assert.Equal(t, Pt(10, 5), Damp([]Point{{0, 0}, {10, 0}, {10, 5}}, Pt(10, 10)))
}

func TestRoundPoints(t *testing.T) {
	in := []Point{{1.23456, -7.891}, {0.005, 2}}

	assert.Equal(t, []Point{{1.23, -7.89}, {0.01, 2}}, RoundPoints(in, 2))
	assert.Equal(t, in, RoundPoints(in, 0))
}
