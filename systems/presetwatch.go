package systems

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/automoto/railcam/components"
	"github.com/automoto/railcam/shared/railcam"
	"github.com/fsnotify/fsnotify"
	"github.com/yohamta/donburi/ecs"
)

const reloadDebounce = 100 * time.Millisecond

// PresetWatcher reports writes to preset YAML files in a directory.
type PresetWatcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewPresetWatcher starts watching dir for preset file changes.
func NewPresetWatcher(dir string) (*PresetWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}

	pw := &PresetWatcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go pw.run()
	return pw, nil
}

// Close stops the watcher. It is safe to call more than once.
func (w *PresetWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *PresetWatcher) run() {
	defer close(w.done)
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isPresetFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < reloadDebounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- event.Name:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func isPresetFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// NewPresetReloadSystem returns a system that reloads presets when the
// watcher reports a change and re-applies the selected preset while
// authoring. A nil watcher yields a no-op system.
func NewPresetReloadSystem(w *PresetWatcher) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		if w == nil {
			return
		}
		for {
			select {
			case path := <-w.Events:
				data, err := os.ReadFile(path)
				if err != nil {
					log.Printf("Warning: Could not read presets %s: %v", path, err)
					continue
				}
				if err := reloadPresets(e, data); err != nil {
					log.Printf("Warning: Could not reload presets %s: %v", path, err)
				}
			case err := <-w.Errors:
				log.Printf("Warning: Preset watcher: %v", err)
			default:
				return
			}
		}
	}
}

// reloadPresets merges freshly parsed presets into the settings and pushes
// the selected one to the camera when authoring.
func reloadPresets(e *ecs.ECS, data []byte) error {
	loaded, err := railcam.LoadPresets(bytes.NewReader(data))
	if err != nil {
		return err
	}
	settings := GetOrCreateSettings(e)
	settings.Presets = MergePresets(settings.Presets, loaded)

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return nil
	}
	d := components.Camera.Get(cameraEntry).Driver
	if d == nil || !d.Authoring() {
		return nil
	}
	if preset, ok := settings.Presets[settings.PresetName]; ok {
		d.ApplyForEditing(preset)
	}
	return nil
}
