package config

import (
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const envPrefix = "menusim"

// Interval is a randomized timer range expressed in seconds, the unit the
// config file uses.
type Interval struct {
	MinSeconds float64 `yaml:"min_seconds"`
	MaxSeconds float64 `yaml:"max_seconds"`
}

func (i Interval) Min() time.Duration { return time.Duration(i.MinSeconds * float64(time.Second)) }

func (i Interval) Max() time.Duration { return time.Duration(i.MaxSeconds * float64(time.Second)) }

// Intervals holds one range per notification channel.
type Intervals struct {
	EmailToast   Interval `yaml:"email_toast"`
	OutlookInbox Interval `yaml:"outlook_inbox"`
	Messages     Interval `yaml:"messages"`
	Discord      Interval `yaml:"discord"`
	Interrupt    Interval `yaml:"interrupt"`
	PhoneCall    Interval `yaml:"phone_call"`
	Activity     Interval `yaml:"activity"`
	GameCircles  Interval `yaml:"game_circles"`
}

type Config struct {
	ScreenWidth  int32 `yaml:"screen_width"`
	ScreenHeight int32 `yaml:"screen_height"`
	TargetFPS    int32 `yaml:"target_fps"`

	EmailsFile     string `yaml:"emails_file" envconfig:"EMAILS_FILE"`
	PhoneCallsFile string `yaml:"phone_calls_file" envconfig:"PHONE_CALLS_FILE"`
	AudioDir       string `yaml:"audio_dir" envconfig:"AUDIO_DIR"`
	AudioEnabled   bool   `yaml:"audio_enabled" envconfig:"AUDIO_ENABLED"`

	// Seed fixes every PRNG stream; zero means derive from the clock.
	Seed int64 `yaml:"seed" envconfig:"SEED"`

	// AutoProgressRate is the hidden percent-per-second drift.
	AutoProgressRate float64   `yaml:"auto_progress_rate" envconfig:"AUTO_PROGRESS_RATE"`
	Milestones       []float64 `yaml:"milestones"`

	Intervals Intervals `yaml:"intervals"`

	NoUpdateCheck bool `yaml:"no_update_check" envconfig:"NO_UPDATE_CHECK"`
}

// Default returns the built-in configuration; every field is playable
// without any config file present.
func Default() Config {
	return Config{
		ScreenWidth:      1920,
		ScreenHeight:     1080,
		TargetFPS:        60,
		EmailsFile:       "emails.json",
		PhoneCallsFile:   "phone_calls.json",
		AudioDir:         "assets/audio",
		AudioEnabled:     true,
		AutoProgressRate: 0.05,
		Milestones:       []float64{25, 50, 75, 90},
		Intervals: Intervals{
			EmailToast:   Interval{MinSeconds: 8, MaxSeconds: 15},
			OutlookInbox: Interval{MinSeconds: 10, MaxSeconds: 20},
			Messages:     Interval{MinSeconds: 10, MaxSeconds: 20},
			Discord:      Interval{MinSeconds: 12, MaxSeconds: 25},
			Interrupt:    Interval{MinSeconds: 30, MaxSeconds: 60},
			PhoneCall:    Interval{MinSeconds: 45, MaxSeconds: 90},
			Activity:     Interval{MinSeconds: 5, MaxSeconds: 15},
			GameCircles:  Interval{MinSeconds: 20, MaxSeconds: 40},
		},
	}
}

// Load layers the YAML file (if present) and environment overrides on top of
// the defaults. Configuration problems degrade to defaults with a warning;
// they never stop the game from starting.
func Load(log *zap.Logger, path string) Config {
	if log == nil {
		log = zap.NewNop()
	}
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- path comes from the -config flag
		switch {
		case os.IsNotExist(err):
			// No file is the normal case; defaults apply.
		case err != nil:
			log.Warn("config unreadable, using defaults", zap.String("path", path), zap.Error(err))
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				log.Warn("config malformed, using defaults", zap.String("path", path), zap.Error(err))
				cfg = Default()
			}
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		log.Warn("environment overrides ignored", zap.Error(err))
	}

	return sanitize(cfg)
}

func sanitize(cfg Config) Config {
	def := Default()
	if cfg.ScreenWidth < 640 {
		cfg.ScreenWidth = def.ScreenWidth
	}
	if cfg.ScreenHeight < 480 {
		cfg.ScreenHeight = def.ScreenHeight
	}
	if cfg.TargetFPS <= 0 {
		cfg.TargetFPS = def.TargetFPS
	}
	if cfg.AutoProgressRate < 0 {
		cfg.AutoProgressRate = def.AutoProgressRate
	}
	if len(cfg.Milestones) == 0 {
		cfg.Milestones = def.Milestones
	}
	cfg.Intervals = sanitizeIntervals(cfg.Intervals, def.Intervals)
	return cfg
}

func sanitizeIntervals(in, def Intervals) Intervals {
	fix := func(i, d Interval) Interval {
		if i.MinSeconds <= 0 || i.MaxSeconds <= 0 {
			return d
		}
		if i.MaxSeconds < i.MinSeconds {
			i.MinSeconds, i.MaxSeconds = i.MaxSeconds, i.MinSeconds
		}
		return i
	}
	in.EmailToast = fix(in.EmailToast, def.EmailToast)
	in.OutlookInbox = fix(in.OutlookInbox, def.OutlookInbox)
	in.Messages = fix(in.Messages, def.Messages)
	in.Discord = fix(in.Discord, def.Discord)
	in.Interrupt = fix(in.Interrupt, def.Interrupt)
	in.PhoneCall = fix(in.PhoneCall, def.PhoneCall)
	in.Activity = fix(in.Activity, def.Activity)
	in.GameCircles = fix(in.GameCircles, def.GameCircles)
	return in
}
