package sketch

import (
	"fmt"
	"strings"
)

// Command is a discrete action fired by the control surface.
type Command int

const (
	CmdUndo Command = iota + 1
	CmdRedo
	CmdClear
	CmdToggleSmoothing
	CmdSave
)

var commandNames = map[Command]string{
	CmdUndo:            "undo",
	CmdRedo:            "redo",
	CmdClear:           "clear",
	CmdToggleSmoothing: "toggle-smoothing",
	CmdSave:            "save",
}

func (c Command) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// ParseCommand maps a command name back to its value.
func ParseCommand(s string) (Command, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, name := range commandNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown command %q", s)
}

// SmoothingMode chooses which smoothing algorithm runs while smoothing is
// switched on.
type SmoothingMode int

const (
	// SmoothOff never smooths, whatever the toggle says.
	SmoothOff SmoothingMode = iota
	// SmoothRealtime damps each sample against the previous one while the
	// stroke is drawn.
	SmoothRealtime
	// SmoothPostHoc averages the finished stroke once the pointer lifts.
	SmoothPostHoc
	// SmoothBoth applies both, one after the other.
	SmoothBoth
)

var modeNames = []string{"off", "realtime", "posthoc", "both"}

func (m SmoothingMode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("SmoothingMode(%d)", int(m))
}

// ParseSmoothingMode accepts the names printed by String.
func ParseSmoothingMode(s string) (SmoothingMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if name == s {
			return SmoothingMode(i), nil
		}
	}
	return SmoothOff, fmt.Errorf("unknown smoothing mode %q", s)
}

func (m SmoothingMode) realtime() bool { return m == SmoothRealtime || m == SmoothBoth }
func (m SmoothingMode) postHoc() bool  { return m == SmoothPostHoc || m == SmoothBoth }
