package game

import "time"

type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseEnding
)

// State owns the run-wide progress meter, the vanity counters shown on the
// ending screen, and the one-way Playing -> Ending transition. It is created
// at startup and passed through the update loop; nothing here is global.
type State struct {
	Phase    Phase
	Progress *Progress

	// The secret: progress rises on its own at autoRate percent per second.
	// Player interactions only move the counters below.
	autoRate               float64
	itemsMoved             int
	interruptionsDismissed int
	repliesSent            int
	startedAt              time.Time
	endedAt                time.Time
}

type Stats struct {
	ItemsMoved             int
	InterruptionsDismissed int
	RepliesSent            int
	Elapsed                time.Duration
	ActualWorkDone         float64
	CalvelliWorkDone       float64
}

func NewState(autoRate float64) *State {
	return &State{
		Phase:    PhaseStart,
		Progress: NewProgress(100),
		autoRate: autoRate,
	}
}

// BeginRun moves from the start screen into play and stamps the run clock.
func (s *State) BeginRun(now time.Time) {
	if s.Phase != PhaseStart {
		return
	}
	s.Phase = PhasePlaying
	s.startedAt = now
}

// Tick advances automatic progress and performs the one-way transition to
// Ending on the tick after progress completes. It reports whether the
// transition happened this tick.
func (s *State) Tick(now time.Time, delta time.Duration) bool {
	if s.Phase != PhasePlaying {
		return false
	}
	if s.autoRate > 0 && delta > 0 {
		s.Progress.Add(s.autoRate * delta.Seconds())
	}
	if s.Progress.Complete() {
		s.Phase = PhaseEnding
		s.endedAt = now
		return true
	}
	return false
}

func (s *State) OnItemMoved() { s.itemsMoved++ }

func (s *State) OnInterruptionDismissed() { s.interruptionsDismissed++ }

func (s *State) OnReplySent() { s.repliesSent++ }

func (s *State) Stats(now time.Time) Stats {
	end := now
	if s.Phase == PhaseEnding && !s.endedAt.IsZero() {
		end = s.endedAt
	}
	elapsed := time.Duration(0)
	if !s.startedAt.IsZero() {
		elapsed = end.Sub(s.startedAt)
	}
	return Stats{
		ItemsMoved:             s.itemsMoved,
		InterruptionsDismissed: s.interruptionsDismissed,
		RepliesSent:            s.repliesSent,
		Elapsed:                elapsed,
		ActualWorkDone:         0,
		CalvelliWorkDone:       100,
	}
}
