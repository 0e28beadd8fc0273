package gui

import (
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// soundBank loads whatever audio files exist and silently skips the rest.
// A missing assets directory just means a quiet game.
type soundBank struct {
	enabled bool
	device  bool
	sounds  map[string]rl.Sound
}

var soundFiles = map[string]string{
	"notify":    "notify.ogg",
	"ring":      "ring.ogg",
	"pop":       "pop.ogg",
	"milestone": "milestone.ogg",
	"send":      "send.ogg",
}

func newSoundBank(log *zap.Logger, dir string, enabled bool) *soundBank {
	b := &soundBank{enabled: enabled, sounds: make(map[string]rl.Sound)}
	if !enabled {
		return b
	}
	rl.InitAudioDevice()
	b.device = rl.IsAudioDeviceReady()
	if !b.device {
		log.Warn("audio device unavailable, running silent")
		return b
	}
	for name, file := range soundFiles {
		path := filepath.Join(dir, file)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		b.sounds[name] = rl.LoadSound(path)
	}
	log.Info("audio loaded", zap.Int("sounds", len(b.sounds)))
	return b
}

// Play is fire-and-forget; unknown or unloaded names are no-ops, and so is
// a nil bank (audio not initialised yet).
func (b *soundBank) Play(name string) {
	if b == nil || !b.enabled || !b.device {
		return
	}
	if s, ok := b.sounds[name]; ok {
		rl.PlaySound(s)
	}
}

func (b *soundBank) Close() {
	if b == nil || !b.device {
		return
	}
	for _, s := range b.sounds {
		rl.UnloadSound(s)
	}
	rl.CloseAudioDevice()
}
