package systems

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reloadYAML = `side:
  angle: [25, 5, 0]
  distance: 7
`

func TestIsPresetFile(t *testing.T) {
	assert.True(t, isPresetFile("rails.yaml"))
	assert.True(t, isPresetFile("/tmp/RAILS.YML"))
	assert.False(t, isPresetFile("rails.yaml.swp"))
	assert.False(t, isPresetFile("level.tmx"))
}

func TestReloadPresets_AppliesWhileAuthoring(t *testing.T) {
	e := newTestWorld(t)
	settings := GetOrCreateSettings(e)
	settings.Presets = testPresets()
	settings.PresetName = "side"
	d := testCamera(t, e).Driver

	require.NoError(t, reloadPresets(e, []byte(reloadYAML)))
	assert.Equal(t, 7.0, settings.Presets["side"].Distance)
	assert.Contains(t, settings.Presets, "top", "other presets survive")
	assert.Equal(t, 10.0, d.CopyCurrent().Distance, "runtime camera is untouched")

	d.SetAuthoring(true)
	require.NoError(t, reloadPresets(e, []byte(reloadYAML)))
	assert.Equal(t, [3]float64{25, 5, 0}, d.CopyCurrent().Angle)
}

func TestReloadPresets_Invalid(t *testing.T) {
	e := newTestWorld(t)
	settings := GetOrCreateSettings(e)
	settings.Presets = testPresets()

	assert.Error(t, reloadPresets(e, []byte("side:\n  distance: -1\n")))
	assert.Equal(t, 10.0, settings.Presets["side"].Distance)
}

func TestPresetWatcher_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewPresetWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, "rails.yaml")
	require.NoError(t, os.WriteFile(path, []byte(reloadYAML), 0o644))

	select {
	case got := <-w.Events:
		assert.Equal(t, path, got)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for preset write")
	}

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close(), "second close is a no-op")
}

func TestPresetReloadSystem_NilWatcher(t *testing.T) {
	e := newTestWorld(t)
	assert.NotPanics(t, func() { NewPresetReloadSystem(nil)(e) })
}
