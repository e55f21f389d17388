package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseInput)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseStep)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}
	if _, ok := stats.PhaseAvg[PhaseInput]; !ok {
		t.Error("expected input phase to be tracked")
	}
	if _, ok := stats.PhaseAvg[PhaseStep]; !ok {
		t.Error("expected step phase to be tracked")
	}
}

func TestPerfCollector_Quantiles(t *testing.T) {
	pc := NewPerfCollector(100)

	// 1..100 microseconds, inserted out of order
	for i := 100; i >= 1; i-- {
		pc.record(PerfSample{TickDuration: time.Duration(i) * time.Microsecond})
	}

	stats := pc.Stats()

	if stats.MinTickDuration != time.Microsecond {
		t.Errorf("MinTickDuration = %v, want 1µs", stats.MinTickDuration)
	}
	if stats.MaxTickDuration != 100*time.Microsecond {
		t.Errorf("MaxTickDuration = %v, want 100µs", stats.MaxTickDuration)
	}
	if stats.P50TickDuration != 50*time.Microsecond {
		t.Errorf("P50TickDuration = %v, want 50µs", stats.P50TickDuration)
	}
	if stats.P95TickDuration != 95*time.Microsecond {
		t.Errorf("P95TickDuration = %v, want 95µs", stats.P95TickDuration)
	}
	want := 50500 * time.Nanosecond
	if d := stats.AvgTickDuration - want; d < -time.Nanosecond || d > time.Nanosecond {
		t.Errorf("AvgTickDuration = %v, want %v", stats.AvgTickDuration, want)
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseStep)
		pc.EndTick()
	}

	if pc.sampleCount != 5 {
		t.Errorf("sampleCount = %d, want 5", pc.sampleCount)
	}
	stats := pc.Stats()
	if stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.record(PerfSample{
			TickDuration: 100 * time.Microsecond,
			Phases: map[string]time.Duration{
				PhaseStep:   25 * time.Microsecond,
				PhaseRender: 75 * time.Microsecond,
			},
		})
	}

	stats := pc.Stats()

	if got := stats.PhasePct[PhaseStep]; got < 24.9 || got > 25.1 {
		t.Errorf("step pct = %v, want 25", got)
	}
	if got := stats.PhasePct[PhaseRender]; got < 74.9 || got > 75.1 {
		t.Errorf("render pct = %v, want 75", got)
	}

	row := stats.ToCSV(42)
	if row.WindowEnd != 42 || row.StepPct != stats.PhasePct[PhaseStep] {
		t.Errorf("ToCSV = %+v", row)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()

	if stats.AvgTickDuration != 0 {
		t.Error("expected zero avg tick duration for empty collector")
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps")
	}
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	pc.RecordFrame()
	time.Sleep(16 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()

	if stats.FrameDuration < 15*time.Millisecond {
		t.Errorf("expected frame duration >= 15ms, got %v", stats.FrameDuration)
	}
	if stats.FPS <= 0 {
		t.Error("expected positive FPS")
	}
}

func TestPerfCollector_AddPhase(t *testing.T) {
	pc := NewPerfCollector(4)

	// No tick yet: nothing to charge
	pc.AddPhase(PhaseRender, time.Millisecond)
	if stats := pc.Stats(); stats.AvgTickDuration != 0 {
		t.Fatalf("AvgTickDuration = %v, want 0", stats.AvgTickDuration)
	}

	pc.record(PerfSample{TickDuration: time.Millisecond, Phases: map[string]time.Duration{PhaseStep: time.Millisecond}})
	pc.AddPhase(PhaseRender, time.Millisecond)

	stats := pc.Stats()
	if stats.AvgTickDuration != 2*time.Millisecond {
		t.Errorf("AvgTickDuration = %v, want 2ms", stats.AvgTickDuration)
	}
	if got := stats.PhasePct[PhaseRender]; got < 49.9 || got > 50.1 {
		t.Errorf("render pct = %v, want 50", got)
	}
}
