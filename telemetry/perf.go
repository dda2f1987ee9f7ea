package telemetry

import (
	"log/slog"
	"time"

	"gonum.org/v1/gonum/floats"
)

// Phase is one timed section of a game update.
type Phase int

const (
	PhaseInput Phase = iota
	PhaseSession
	PhaseTelemetry
	numPhases
)

var phaseNames = [numPhases]string{"input", "session", "telemetry"}

func (p Phase) String() string { return phaseNames[p] }

type perfSample struct {
	total  time.Duration
	phases [numPhases]time.Duration
}

// PerfCollector times game updates phase by phase over a rolling window.
type PerfCollector struct {
	samples []perfSample
	next    int
	count   int

	current perfSample
	start   time.Time
	mark    time.Time
	phase   Phase

	lastFrame time.Time
	frame     time.Duration
}

// NewPerfCollector keeps the last windowSize updates, at least one.
func NewPerfCollector(windowSize int) *PerfCollector {
	return &PerfCollector{samples: make([]perfSample, max(windowSize, 1))}
}

// WindowSize returns the number of updates averaged over.
func (p *PerfCollector) WindowSize() int {
	return len(p.samples)
}

// Begin starts timing an update in the given phase.
func (p *PerfCollector) Begin(phase Phase) {
	now := time.Now()
	p.current = perfSample{}
	p.start, p.mark, p.phase = now, now, phase
}

// Switch charges elapsed time to the running phase and moves to the next.
func (p *PerfCollector) Switch(phase Phase) {
	now := time.Now()
	p.current.phases[p.phase] += now.Sub(p.mark)
	p.mark, p.phase = now, phase
}

// End closes the update and stores it in the window.
func (p *PerfCollector) End() {
	now := time.Now()
	p.current.phases[p.phase] += now.Sub(p.mark)
	p.current.total = now.Sub(p.start)

	p.samples[p.next] = p.current
	p.next = (p.next + 1) % len(p.samples)
	p.count = min(p.count+1, len(p.samples))
}

// RecordFrame notes a drawn frame; the gap since the previous one gives FPS.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrame.IsZero() {
		p.frame = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats summarizes the window.
type PerfStats struct {
	Samples  int
	Avg      time.Duration
	Min      time.Duration
	Max      time.Duration
	PhasePct [numPhases]float64 // share of total update time
	FPS      float64
}

// Stats aggregates the stored updates.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{Samples: p.count}
	if p.frame > 0 {
		s.FPS = float64(time.Second) / float64(p.frame)
	}
	if p.count == 0 {
		return s
	}

	totals := make([]float64, p.count)
	var phaseSums [numPhases]float64
	for i, sample := range p.samples[:p.count] {
		totals[i] = float64(sample.total)
		for ph, d := range sample.phases {
			phaseSums[ph] += float64(d)
		}
	}

	sum := floats.Sum(totals)
	s.Avg = time.Duration(sum / float64(p.count))
	s.Min = time.Duration(floats.Min(totals))
	s.Max = time.Duration(floats.Max(totals))
	if sum > 0 {
		for ph := range phaseSums {
			s.PhasePct[ph] = phaseSums[ph] / sum * 100
		}
	}
	return s
}

// UpdatesPerSecond is the throughput implied by the average update time.
func (s PerfStats) UpdatesPerSecond() float64 {
	if s.Avg <= 0 {
		return 0
	}
	return float64(time.Second) / float64(s.Avg)
}

// LogStats logs the window at Info.
func (s PerfStats) LogStats() {
	slog.Info("perf", "stats", s)
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_us", s.Avg.Microseconds()),
		slog.Int64("max_us", s.Max.Microseconds()),
		slog.Float64("updates_per_sec", s.UpdatesPerSecond()),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for ph := Phase(0); ph < numPhases; ph++ {
		attrs = append(attrs, slog.Float64(ph.String()+"_pct", s.PhasePct[ph]))
	}
	return slog.GroupValue(attrs...)
}

// PerfRow is one perf.csv line.
type PerfRow struct {
	Tick          int64   `csv:"tick"`
	AvgUS         int64   `csv:"avg_us"`
	MinUS         int64   `csv:"min_us"`
	MaxUS         int64   `csv:"max_us"`
	UpdatesPerSec float64 `csv:"updates_per_sec"`
	FPS           float64 `csv:"fps"`
	InputPct      float64 `csv:"input_pct"`
	SessionPct    float64 `csv:"session_pct"`
	TelemetryPct  float64 `csv:"telemetry_pct"`
}

// Row flattens the stats for CSV output at the given game tick.
func (s PerfStats) Row(tick int64) PerfRow {
	return PerfRow{
		Tick:          tick,
		AvgUS:         s.Avg.Microseconds(),
		MinUS:         s.Min.Microseconds(),
		MaxUS:         s.Max.Microseconds(),
		UpdatesPerSec: s.UpdatesPerSecond(),
		FPS:           s.FPS,
		InputPct:      s.PhasePct[PhaseInput],
		SessionPct:    s.PhasePct[PhaseSession],
		TelemetryPct:  s.PhasePct[PhaseTelemetry],
	}
}
