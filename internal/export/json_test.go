package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalSketch/internal/state"
)

func TestReadJSON(t *testing.T) {
	in := `[{"id":"a","points":[{"x":1,"y":2},{"x":3.5,"y":-4}]},{"id":"b","points":[{"x":0,"y":0}]}]`
	got, err := ReadJSON(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []state.Stroke{
		{ID: "a", Points: []state.Point{{X: 1, Y: 2}, {X: 3.5, Y: -4}}},
		{ID: "b", Points: []state.Point{{X: 0, Y: 0}}},
	}, got)
}

func TestWriteJSON_ReadableByReadJSON(t *testing.T) {
	in := []state.Stroke{{ID: "x", Points: []state.Point{{X: 1, Y: 1}, {X: 2, Y: 3}}}}
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, in))
	assert.Contains(t, buf.String(), `"points"`)

	got, err := ReadJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestReadJSON_Invalid(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`{"not":"a list"}`))
	assert.Error(t, err)
}
