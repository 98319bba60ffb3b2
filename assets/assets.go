package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/railcam/config"
	"github.com/automoto/railcam/shared/leveldata"
	"github.com/automoto/railcam/shared/railcam"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:presets
	presetFS embed.FS
)

// Levels exposes the embedded level files.
func Levels() fs.FS {
	return levelFS
}

// LoadLevels parses every embedded TMX level.
func LoadLevels() (map[string]*leveldata.RailLevel, []string, error) {
	return leveldata.LoadAllRails(levelFS, config.Level.Dir)
}

// LoadPresets parses the embedded rail presets.
func LoadPresets() (map[string]railcam.RailInfo, error) {
	p := path.Join("presets", config.Debug.PresetFile)
	f, err := presetFS.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", p, err)
	}
	defer f.Close()
	return railcam.LoadPresets(f)
}
