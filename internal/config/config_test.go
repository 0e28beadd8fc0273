package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg := Load(zap.NewNop(), filepath.Join(t.TempDir(), "nope.yaml"))
	def := Default()
	if cfg.ScreenWidth != def.ScreenWidth || cfg.TargetFPS != def.TargetFPS {
		t.Fatalf("expected defaults, got %dx%d @%d", cfg.ScreenWidth, cfg.ScreenHeight, cfg.TargetFPS)
	}
	if cfg.AutoProgressRate != 0.05 {
		t.Fatalf("auto progress rate = %v, want 0.05", cfg.AutoProgressRate)
	}
}

func TestLoadMalformedFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("{not yaml: ["), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := Load(zap.NewNop(), path)
	if cfg.ScreenWidth != Default().ScreenWidth {
		t.Fatalf("screen width = %d, want default", cfg.ScreenWidth)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `screen_width: 1280
screen_height: 720
auto_progress_rate: 0.2
intervals:
  email_toast:
    min_seconds: 2
    max_seconds: 4
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := Load(zap.NewNop(), path)
	if cfg.ScreenWidth != 1280 || cfg.ScreenHeight != 720 {
		t.Fatalf("screen = %dx%d, want 1280x720", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	if cfg.AutoProgressRate != 0.2 {
		t.Fatalf("auto progress rate = %v, want 0.2", cfg.AutoProgressRate)
	}
	if got := cfg.Intervals.EmailToast.Min(); got != 2*time.Second {
		t.Fatalf("email toast min = %v, want 2s", got)
	}
	// Untouched sections keep their defaults.
	if cfg.Intervals.Interrupt.MinSeconds != 30 {
		t.Fatalf("interrupt min = %v, want 30", cfg.Intervals.Interrupt.MinSeconds)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	t.Setenv("MENUSIM_AUTO_PROGRESS_RATE", "1.5")
	t.Setenv("MENUSIM_NO_UPDATE_CHECK", "true")
	cfg := Load(zap.NewNop(), "")
	if cfg.AutoProgressRate != 1.5 {
		t.Fatalf("auto progress rate = %v, want 1.5", cfg.AutoProgressRate)
	}
	if !cfg.NoUpdateCheck {
		t.Fatal("expected update check disabled")
	}
}

func TestSanitizeSwapsInvertedInterval(t *testing.T) {
	cfg := Default()
	cfg.Intervals.Activity = Interval{MinSeconds: 9, MaxSeconds: 3}
	cfg = sanitize(cfg)
	got := cfg.Intervals.Activity
	if got.MinSeconds != 3 || got.MaxSeconds != 9 {
		t.Fatalf("activity interval = %+v, want swapped to 3..9", got)
	}
}
