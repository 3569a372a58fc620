package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSilentByDefault(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	Disable()

	Debug.Debug().Msg("dropped")
	Reveal.Warn().Msg("dropped")
	assert.Empty(t, buf.String())
}

func TestSetOutputCapturesComponents(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(Disable)

	Debug.Debug().Str("path", "/srv").Msg("menu action")
	Reveal.Warn().Int("code", 3).Msg("helper exited with failure")

	out := buf.String()
	assert.Contains(t, out, `"component":"ui"`)
	assert.Contains(t, out, `"component":"reveal"`)
	assert.Contains(t, out, `"code":3`)
	assert.Contains(t, out, `"level":"debug"`)
}

func TestEnableWritesDebugLog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "rms")
	Enable(dir)
	t.Cleanup(Disable)

	Reveal.Debug().Msg("started")

	data, err := os.ReadFile(filepath.Join(dir, "debug.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "started")
}

func TestEnableTwiceSwitchesFile(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	Enable(first)
	Enable(second)
	t.Cleanup(Disable)

	Debug.Debug().Msg("second only")

	data, err := os.ReadFile(filepath.Join(first, "debug.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "second only")

	data, err = os.ReadFile(filepath.Join(second, "debug.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "second only")
}

func TestDisableStopsWriting(t *testing.T) {
	dir := t.TempDir()
	Enable(dir)
	Disable()

	Debug.Debug().Msg("after disable")

	data, err := os.ReadFile(filepath.Join(dir, "debug.log"))
	require.NoError(t, err)
	assert.Empty(t, data)
}
