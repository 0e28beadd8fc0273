package gui

import (
	"math/rand/v2"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/appengine-ltd/menu-sim/internal/config"
	"github.com/appengine-ltd/menu-sim/internal/content"
	"github.com/appengine-ltd/menu-sim/internal/game"
	"github.com/appengine-ltd/menu-sim/internal/update"
	"github.com/appengine-ltd/menu-sim/internal/wm"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	NoUpdate  bool
}

type App struct {
	cfg  AppConfig
	conf config.Config
	log  *zap.Logger
}

func NewApp(cfg AppConfig, conf config.Config, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{cfg: cfg, conf: conf, log: log}
}

func (a *App) Run() error {
	ui := newGameUI(a.cfg, a.conf, a.log)
	return ui.Run()
}

type updateResult struct {
	res update.Result
	err error
}

type gameUI struct {
	cfg  AppConfig
	conf config.Config
	log  *zap.Logger

	width  int32
	height int32
	quit   bool

	state *game.State
	store *content.Store
	mgr   *wm.Manager

	// Desktop scheduling.
	emailToastSched *game.Scheduler
	outlookSched    *game.Scheduler
	messagesSched   *game.Scheduler
	slackSched      *game.Scheduler
	interruptSched  *game.Scheduler
	phoneSched      *game.Scheduler
	activitySched   *game.Scheduler
	circleSched     *game.Scheduler
	pendingCongrats []*game.OneShot
	schedRNG        *rand.Rand

	// Stable handles onto the permanent windows.
	inv      *inventoryContent
	loot     *lootContent
	ftl      *ftlContent
	outlook  *outlookContent
	activity *activityContent
	messages *messagesContent
	slack    *slackContent

	banners bannerQueue
	discord *discordOverlay
	phone   *phoneOverlay

	sounds *soundBank

	ending endingState

	needsUpdateCheck bool
	updateBusy       bool
	updateStatus     string
	updateResultCh   chan updateResult

	lastTick time.Time
}

func newGameUI(cfg AppConfig, conf config.Config, log *zap.Logger) *gameUI {
	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ui := &gameUI{
		cfg:            cfg,
		conf:           conf,
		log:            log,
		width:          conf.ScreenWidth,
		height:         conf.ScreenHeight,
		state:          game.NewState(conf.AutoProgressRate),
		updateResultCh: make(chan updateResult, 1),
	}
	ui.store = content.Load(log, conf.EmailsFile, conf.PhoneCallsFile, game.SeededRNG(seed, "content"))

	sched := game.SeededRNG(seed, "sched")
	iv := conf.Intervals
	ui.emailToastSched = game.NewScheduler(iv.EmailToast.Min(), iv.EmailToast.Max(), sched)
	ui.outlookSched = game.NewScheduler(iv.OutlookInbox.Min(), iv.OutlookInbox.Max(), sched)
	ui.messagesSched = game.NewScheduler(iv.Messages.Min(), iv.Messages.Max(), sched)
	ui.slackSched = game.NewScheduler(iv.Discord.Min(), iv.Discord.Max(), sched)
	ui.interruptSched = game.NewScheduler(iv.Interrupt.Min(), iv.Interrupt.Max(), sched)
	ui.phoneSched = game.NewScheduler(iv.PhoneCall.Min(), iv.PhoneCall.Max(), sched)
	ui.activitySched = game.NewScheduler(iv.Activity.Min(), iv.Activity.Max(), sched)
	ui.circleSched = game.NewScheduler(iv.GameCircles.Min(), iv.GameCircles.Max(), sched)
	ui.schedRNG = sched

	ui.mgr = wm.NewManager()
	ui.mgr.OnItemMoved = func(wm.Item, wm.Handle, wm.Handle) {
		ui.state.OnItemMoved()
		ui.sounds.Play("pop")
	}

	for _, at := range conf.Milestones {
		ui.state.Progress.OnThreshold(at, func(hit float64) {
			ui.banners.Push(content.MilestoneMessage(hit))
			ui.sounds.Play("milestone")
			ui.log.Info("milestone reached", zap.Float64("at", hit))
		})
	}

	if !cfg.NoUpdate && !conf.NoUpdateCheck {
		ui.needsUpdateCheck = true
	}
	ui.lastTick = time.Now()
	return ui
}

func (ui *gameUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "menu-sim")
	rl.SetExitKey(0)
	rl.SetTargetFPS(ui.conf.TargetFPS)

	ui.sounds = newSoundBank(ui.log, ui.conf.AudioDir, ui.conf.AudioEnabled)
	defer ui.sounds.Close()

	for !ui.quit && !rl.WindowShouldClose() {
		now := time.Now()
		delta := now.Sub(ui.lastTick)
		if delta < 0 {
			delta = 0
		}
		ui.lastTick = now

		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		ui.update(now, delta)

		rl.BeginDrawing()
		rl.ClearBackground(colorDesktop)
		ui.draw(now)
		rl.EndDrawing()
	}

	rl.CloseWindow()
	return nil
}

func (ui *gameUI) update(now time.Time, delta time.Duration) {
	switch ui.state.Phase {
	case game.PhaseStart:
		ui.updateStart(now)
	case game.PhasePlaying:
		ui.updateDesktop(now, delta)
	case game.PhaseEnding:
		ui.updateEnding(delta)
	}
}

func (ui *gameUI) draw(now time.Time) {
	switch ui.state.Phase {
	case game.PhaseStart:
		ui.drawStart()
	case game.PhasePlaying:
		ui.drawDesktop()
	case game.PhaseEnding:
		ui.drawEnding(now)
	}
}
