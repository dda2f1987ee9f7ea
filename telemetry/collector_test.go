package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/life/life"
)

func TestCollectorFlushesOnWindow(t *testing.T) {
	c := NewCollector(3)

	c.RecordGeneration(1, 10, life.Change{Births: 4, Deaths: 1}, 1)
	c.RecordGeneration(2, 20, life.Change{Births: 2, Deaths: 3}, 2)
	if c.ShouldFlush() {
		t.Fatal("flush requested before window filled")
	}
	c.RecordRewind()
	c.RecordGeneration(2, 30, life.Change{Births: 1, Deaths: 0}, 2)
	if !c.ShouldFlush() {
		t.Fatal("flush not requested after window filled")
	}

	s := c.Flush()
	if s.Window != 0 || s.FirstGeneration != 1 || s.LastGeneration != 2 || s.Samples != 3 {
		t.Errorf("window bounds = %+v", s)
	}
	if math.Abs(s.PopulationMean-20) > 0.001 {
		t.Errorf("mean = %v, want 20", s.PopulationMean)
	}
	if s.PopulationMin != 10 || s.PopulationMax != 30 || s.PopulationMedian != 20 {
		t.Errorf("min/max/median = %v/%v/%v", s.PopulationMin, s.PopulationMax, s.PopulationMedian)
	}
	if s.Births != 7 || s.Deaths != 4 {
		t.Errorf("births/deaths = %d/%d, want 7/4", s.Births, s.Deaths)
	}
	if s.Rewinds != 1 || s.MaxHistory != 2 {
		t.Errorf("rewinds/max history = %d/%d", s.Rewinds, s.MaxHistory)
	}
}

func TestCollectorResetsAfterFlush(t *testing.T) {
	c := NewCollector(2)
	c.RecordGeneration(1, 5, life.Change{Births: 5}, 1)
	c.RecordGeneration(2, 6, life.Change{Births: 1}, 2)
	c.RecordRewind()
	c.Flush()

	if c.Pending() != 0 || c.ShouldFlush() {
		t.Fatal("collector not reset")
	}

	c.RecordGeneration(3, 8, life.Change{}, 1)
	s := c.Flush()
	if s.Window != 1 {
		t.Errorf("window index = %d, want 1", s.Window)
	}
	if s.FirstGeneration != 3 || s.Samples != 1 {
		t.Errorf("second window = %+v", s)
	}
	if s.Births != 0 || s.Rewinds != 0 || s.MaxHistory != 1 {
		t.Errorf("counters leaked across windows: %+v", s)
	}
}

func TestNewCollectorClampsWindow(t *testing.T) {
	c := NewCollector(0)
	if c.WindowGenerations() != 1 {
		t.Errorf("window = %d, want 1", c.WindowGenerations())
	}
	c.RecordGeneration(1, 1, life.Change{}, 0)
	if !c.ShouldFlush() {
		t.Error("single-generation window should flush after one sample")
	}
}

func TestCollectorDiscardKeepsWindowIndex(t *testing.T) {
	c := NewCollector(5)
	c.RecordRewind()
	c.Discard()

	c.RecordGeneration(1, 4, life.Change{Births: 2}, 1)
	s := c.Flush()
	if s.Window != 0 {
		t.Errorf("window index = %d, want 0 after discard", s.Window)
	}
	if s.Rewinds != 0 || s.Samples != 1 || s.Births != 2 {
		t.Errorf("discarded counters leaked: %+v", s)
	}
}
