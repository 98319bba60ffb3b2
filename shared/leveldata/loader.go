package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/railcam/shared/railcam"
	"github.com/lafriks/go-tiled"
)

const (
	railsGroup = "Rails"
	spawnGroup = "PlayerSpawn"
)

// LoadRails parses a TMX file and returns its rail volumes and player spawn.
// It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadRails(fsys fs.FS, tmxPath string) (*RailLevel, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &RailLevel{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case railsGroup:
			for _, o := range og.Objects {
				info, err := railFromProperties(o.Properties)
				if err != nil {
					return nil, fmt.Errorf("rail %q in %s: %w", o.Name, tmxPath, err)
				}
				level.Rails = append(level.Rails, RailVolume{
					Name: o.Name,
					X:    o.X,
					Y:    o.Y,
					W:    o.Width,
					H:    o.Height,
					Info: info,
				})
			}
		case spawnGroup:
			if len(og.Objects) > 0 {
				level.Spawn = SpawnPoint{X: og.Objects[0].X, Y: og.Objects[0].Y}
			}
		}
	}

	// Sort rails left-to-right so overlap checks are deterministic
	sort.SliceStable(level.Rails, func(i, j int) bool {
		return level.Rails[i].X < level.Rails[j].X
	})

	return level, nil
}

// railFromProperties builds a RailInfo from Tiled custom properties. Missing
// properties keep their defaults and an unknown curve falls back to
// ease-in-out.
func railFromProperties(props tiled.Properties) (railcam.RailInfo, error) {
	info := railcam.DefaultRailInfo()

	floats := []struct {
		name string
		dst  *float64
	}{
		{"tilt", &info.Angle[0]},
		{"pan", &info.Angle[1]},
		{"roll", &info.Angle[2]},
		{"distance", &info.Distance},
		{"transitionDuration", &info.TransitionDuration},
		{"horizontalDeadzone", &info.HorizontalDeadzone},
		{"verticalDeadzone", &info.VerticalDeadzone},
		{"maxHorizontalOffset", &info.MaxHorizontalOffset},
		{"maxVerticalOffset", &info.MaxVerticalOffset},
	}
	for _, f := range floats {
		if len(props.Get(f.name)) > 0 {
			*f.dst = props.GetFloat(f.name)
		}
	}
	info.HorizontalOnly = props.GetBool("horizontalOnly")

	if name := props.GetString("curve"); name != "" {
		curve, err := railcam.Preset(name)
		switch {
		case errors.Is(err, railcam.ErrUnknownCurve):
			log.Printf("Warning: %v, using %s", err, railcam.CurveEaseInOut)
		case err != nil:
			return railcam.RailInfo{}, err
		default:
			info.TransitionCurve = curve
			info.CurveName = name
		}
	}

	if err := info.Validate(); err != nil {
		return railcam.RailInfo{}, err
	}
	return info, nil
}

// LoadAllRails discovers all .tmx files in levelsDir within fsys and loads
// the rails of each, returning them keyed by stem name plus a sorted list of
// names.
func LoadAllRails(fsys fs.FS, levelsDir string) (map[string]*RailLevel, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*RailLevel, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := LoadRails(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
