package export

import (
	"encoding/json"
	"fmt"
	"io"

	"LocalSketch/internal/state"
)

// WriteJSON writes strokes as an indented JSON array, the format ReadJSON
// loads back.
func WriteJSON(w io.Writer, strokes []state.Stroke) error {
	data, err := json.MarshalIndent(strokes, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal strokes: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write strokes: %w", err)
	}
	return nil
}

// ReadJSON parses a drawing written by WriteJSON.
func ReadJSON(r io.Reader) ([]state.Stroke, error) {
	var strokes []state.Stroke
	if err := json.NewDecoder(r).Decode(&strokes); err != nil {
		return nil, fmt.Errorf("parse strokes: %w", err)
	}
	return strokes, nil
}
