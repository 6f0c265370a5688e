package sketch

import (
	"encoding/json"
	"fmt"
	"io"

	"LocalSketch/internal/logging"
	"LocalSketch/internal/state"
)

// Event is one recorded input: a pointer event or a control-surface command.
type Event struct {
	Op string  `json:"op"`
	X  float64 `json:"x,omitempty"`
	Y  float64 `json:"y,omitempty"`
	On bool    `json:"on,omitempty"`
}

// ReadEvents decodes a JSON array of events.
func ReadEvents(r io.Reader) ([]Event, error) {
	var events []Event
	if err := json.NewDecoder(r).Decode(&events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return events, nil
}

// Apply feeds one event to the controller.
func (c *Controller) Apply(e Event) error {
	switch e.Op {
	case "down":
		c.PointerDown(state.Pt(e.X, e.Y))
	case "move":
		c.PointerMove(state.Pt(e.X, e.Y))
	case "up":
		c.PointerUp()
	case "smooth":
		return c.Dispatch(CmdToggleSmoothing, e.On)
	default:
		cmd, err := ParseCommand(e.Op)
		if err != nil {
			return fmt.Errorf("apply: unknown op %q", e.Op)
		}
		return c.Dispatch(cmd, e.On)
	}
	return nil
}

// Replay applies events in order and closes any stroke left open. It stops
// at the first failing event.
func (c *Controller) Replay(events []Event) error {
	for i, e := range events {
		if err := c.Apply(e); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
	}
	c.PointerUp()
	logging.Logger().Info("[RECORDER] replayed", "events", len(events), "strokes", c.history.Len())
	return nil
}
