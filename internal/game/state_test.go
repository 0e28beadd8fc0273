package game

import (
	"testing"
	"time"
)

func TestStateTransitionsToEndingOnceProgressCompletes(t *testing.T) {
	s := NewState(0)
	now := time.Now()
	s.BeginRun(now)
	if s.Phase != PhasePlaying {
		t.Fatalf("phase = %v, want PhasePlaying", s.Phase)
	}

	s.Progress.Add(95)
	if s.Tick(now, 16*time.Millisecond) {
		t.Fatalf("state ended before progress completed")
	}

	s.Progress.Add(10) // clamps to 100
	now = now.Add(16 * time.Millisecond)
	if !s.Tick(now, 16*time.Millisecond) {
		t.Fatalf("expected transition to ending on tick after completion")
	}
	if s.Phase != PhaseEnding {
		t.Fatalf("phase = %v, want PhaseEnding", s.Phase)
	}
	if s.Tick(now, 16*time.Millisecond) {
		t.Fatalf("ending must be terminal, got second transition")
	}
}

func TestStateAutoProgressUsesWallClockDelta(t *testing.T) {
	s := NewState(2.0) // 2 percent per second
	now := time.Now()
	s.BeginRun(now)

	for i := 0; i < 10; i++ {
		now = now.Add(500 * time.Millisecond)
		s.Tick(now, 500*time.Millisecond)
	}
	if got := s.Progress.Value(); got < 9.9 || got > 10.1 {
		t.Fatalf("auto progress after 5s at 2%%/s = %v, want ~10", got)
	}
}

func TestStateStatsRevealTheSecret(t *testing.T) {
	s := NewState(0)
	start := time.Now()
	s.BeginRun(start)
	s.OnItemMoved()
	s.OnItemMoved()
	s.OnInterruptionDismissed()
	s.OnReplySent()

	stats := s.Stats(start.Add(90 * time.Second))
	if stats.ItemsMoved != 2 || stats.InterruptionsDismissed != 1 || stats.RepliesSent != 1 {
		t.Fatalf("counters = %+v", stats)
	}
	if stats.Elapsed != 90*time.Second {
		t.Fatalf("elapsed = %v, want 90s", stats.Elapsed)
	}
	if stats.ActualWorkDone != 0 || stats.CalvelliWorkDone != 100 {
		t.Fatalf("work split = %v/%v, want 0/100", stats.ActualWorkDone, stats.CalvelliWorkDone)
	}
}
