package telemetry

import (
	"testing"
	"time"
)

// spin busy-waits so phase timings are nonzero on coarse clocks.
func spin(d time.Duration) {
	for start := time.Now(); time.Since(start) < d; {
	}
}

func TestPerfCollectorPhases(t *testing.T) {
	pc := NewPerfCollector(10)
	for i := 0; i < 4; i++ {
		pc.Begin(PhaseInput)
		spin(50 * time.Microsecond)
		pc.Switch(PhaseSession)
		spin(500 * time.Microsecond)
		pc.Switch(PhaseTelemetry)
		pc.End()
	}

	s := pc.Stats()
	if s.Samples != 4 {
		t.Errorf("samples = %d, want 4", s.Samples)
	}
	if s.Avg <= 0 || s.Min > s.Avg || s.Max < s.Avg {
		t.Errorf("inconsistent timings: avg=%v min=%v max=%v", s.Avg, s.Min, s.Max)
	}
	if s.PhasePct[PhaseSession] <= s.PhasePct[PhaseInput] {
		t.Errorf("session %.1f%% should exceed input %.1f%%", s.PhasePct[PhaseSession], s.PhasePct[PhaseInput])
	}
	var total float64
	for _, pct := range s.PhasePct {
		total += pct
	}
	if total < 99 || total > 101 {
		t.Errorf("phase shares sum to %.2f%%, want 100", total)
	}
}

func TestPerfCollectorWindowWraps(t *testing.T) {
	pc := NewPerfCollector(3)
	for i := 0; i < 7; i++ {
		pc.Begin(PhaseSession)
		pc.End()
	}
	if s := pc.Stats(); s.Samples != 3 {
		t.Errorf("samples = %d, want window size 3", s.Samples)
	}
	if NewPerfCollector(0).WindowSize() != 1 {
		t.Error("window size not clamped to 1")
	}
}

func TestPerfCollectorEmpty(t *testing.T) {
	s := NewPerfCollector(5).Stats()
	if s.Samples != 0 || s.Avg != 0 || s.FPS != 0 || s.UpdatesPerSecond() != 0 {
		t.Errorf("empty stats = %+v", s)
	}
}

func TestPerfCollectorFrameRate(t *testing.T) {
	pc := NewPerfCollector(5)
	pc.RecordFrame()
	time.Sleep(20 * time.Millisecond)
	pc.RecordFrame()

	// Sleep only guarantees a lower bound on the gap
	if fps := pc.Stats().FPS; fps <= 0 || fps > 51 {
		t.Errorf("fps = %.1f, want in (0, 50]", fps)
	}
}

func TestPerfStatsRow(t *testing.T) {
	s := PerfStats{
		Avg: 2 * time.Millisecond,
		Min: time.Millisecond,
		Max: 4 * time.Millisecond,
	}
	s.PhasePct[PhaseInput] = 10
	s.PhasePct[PhaseSession] = 85

	row := s.Row(600)
	if row.Tick != 600 || row.AvgUS != 2000 || row.MinUS != 1000 || row.MaxUS != 4000 {
		t.Errorf("timing columns = %+v", row)
	}
	if row.UpdatesPerSec != 500 {
		t.Errorf("updates/sec = %v, want 500", row.UpdatesPerSec)
	}
	if row.InputPct != 10 || row.SessionPct != 85 || row.TelemetryPct != 0 {
		t.Errorf("phase columns = %+v", row)
	}
}
