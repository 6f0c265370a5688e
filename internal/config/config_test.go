package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalSketch/internal/sketch"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "localsketch.toml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	opts := cfg.Options()
	assert.Equal(t, sketch.SmoothPostHoc, opts.Smoothing)
	assert.False(t, opts.SmoothingEnabled)
	assert.Equal(t, 2.0, opts.LineWidth)
	assert.Equal(t, sketch.DefaultSaveKey, opts.SaveKey)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	p := writeFile(t, `
[canvas]
width = 1024
line_width = 3.5

[smoothing]
enabled = true
mode = "both"

[preview]
live = true

[export]
precision = 2
`)
	cfg, err := Load(p, false)
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Canvas.Width)
	assert.Equal(t, 400, cfg.Canvas.Height)
	assert.Equal(t, ":8888", cfg.Preview.Addr)

	opts := cfg.Options()
	assert.Equal(t, sketch.SmoothBoth, opts.Smoothing)
	assert.True(t, opts.SmoothingEnabled)
	assert.True(t, opts.LivePreview)
	assert.Equal(t, 3.5, opts.LineWidth)
	assert.Equal(t, 2, opts.Precision)
}

func TestLoad_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	cfg, err := Load(missing, true)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(missing, false)
	assert.Error(t, err)
}

func TestFlagGiven(t *testing.T) {
	fs := flag.NewFlagSet("localsketch", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.String("config", "localsketch.toml", "")
	fs.Bool("v", false, "")

	require.NoError(t, fs.Parse([]string{"-v"}))
	assert.False(t, FlagGiven(fs, "config"))
	assert.True(t, FlagGiven(fs, "v"))

	// Naming the default path explicitly still counts.
	require.NoError(t, fs.Parse([]string{"-config", "localsketch.toml"}))
	assert.True(t, FlagGiven(fs, "config"))
}

func TestLoad_ExplicitPathMustExist(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	fs := flag.NewFlagSet("localsketch", flag.ContinueOnError)
	path := fs.String("config", missing, "")
	require.NoError(t, fs.Parse(nil))
	cfg, err := Load(*path, !FlagGiven(fs, "config"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	require.NoError(t, fs.Parse([]string{"-config", missing}))
	_, err = Load(*path, !FlagGiven(fs, "config"))
	assert.Error(t, err)
}

func TestLoad_Rejects(t *testing.T) {
	tests := map[string]string{
		"unknown key":    "[canvas]\ncolour = \"red\"\n",
		"bad mode":       "[smoothing]\nmode = \"wobbly\"\n",
		"zero width":     "[canvas]\nwidth = 0\n",
		"negative line":  "[canvas]\nline_width = -1.0\n",
		"empty key":      "[store]\nkey = \"\"\n",
		"bad precision":  "[export]\nprecision = -3\n",
		"malformed toml": "[canvas\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, body), false)
			assert.Error(t, err)
		})
	}
}
