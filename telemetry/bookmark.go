package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkExtinction      BookmarkType = "extinction"
	BookmarkStillLife       BookmarkType = "still_life"
	BookmarkPopulationBoom  BookmarkType = "population_boom"
	BookmarkPopulationCrash BookmarkType = "population_crash"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType
	Generation  int
	Description string
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"generation", b.Generation,
		"description", b.Description,
	)
}

// BookmarkDetector flags notable windows: the grid dying out, settling into a
// still life, or its population swinging sharply.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	recentPeak float64 // highest window mean since the last crash
	seenAlive  bool    // live cells observed since the last extinction or reset
	still      bool
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3 // minimum for a rolling average
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Reset forgets all history. Call it when the grid is cleared or reseeded.
func (bd *BookmarkDetector) Reset() {
	clear(bd.history)
	bd.historyIdx = 0
	bd.historyFull = false
	bd.recentPeak = 0
	bd.seenAlive = false
	bd.still = false
}

// Check analyzes the latest window and returns any triggered bookmarks.
// Extinction and still life fire once per occurrence.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	if stats.Samples == 0 {
		return nil
	}

	var bookmarks []Bookmark
	if b := bd.checkExtinction(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkStillLife(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkBoom(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkCrash(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)
	if stats.PopulationMean > bd.recentPeak {
		bd.recentPeak = stats.PopulationMean
	}

	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

// checkExtinction fires when a grid that held live cells is empty. Deaths
// count as evidence of life since the seed population is never sampled.
func (bd *BookmarkDetector) checkExtinction(stats WindowStats) *Bookmark {
	if stats.PopulationMax > 0 || stats.Deaths > 0 {
		bd.seenAlive = true
	}
	if stats.PopulationMin > 0 || !bd.seenAlive {
		return nil
	}
	bd.seenAlive = false
	return &Bookmark{
		Type:        BookmarkExtinction,
		Generation:  stats.LastGeneration,
		Description: fmt.Sprintf("Population died out by generation %d", stats.LastGeneration),
	}
}

func (bd *BookmarkDetector) checkStillLife(stats WindowStats) *Bookmark {
	settled := stats.Births == 0 && stats.Deaths == 0 && stats.PopulationMin > 0
	if !settled {
		bd.still = false
		return nil
	}
	if bd.still {
		return nil
	}
	bd.still = true
	return &Bookmark{
		Type:        BookmarkStillLife,
		Generation:  stats.LastGeneration,
		Description: fmt.Sprintf("Grid settled with %.0f live cells", stats.PopulationMax),
	}
}

func (bd *BookmarkDetector) checkBoom(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total float64
	for _, h := range history {
		total += h.PopulationMean
	}
	avg := total / float64(len(history))
	if avg == 0 {
		return nil
	}

	if stats.PopulationMean > avg*2.0 && stats.PopulationMean-avg >= 10 {
		return &Bookmark{
			Type:        BookmarkPopulationBoom,
			Generation:  stats.LastGeneration,
			Description: fmt.Sprintf("Mean population %.1f is %.1fx average (%.1f)", stats.PopulationMean, stats.PopulationMean/avg, avg),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkCrash(stats WindowStats) *Bookmark {
	if bd.recentPeak == 0 {
		return nil
	}

	drop := 1.0 - stats.PopulationMean/bd.recentPeak
	if drop > 0.30 && stats.PopulationMean < bd.recentPeak-10 {
		// Reset peak after crash
		oldPeak := bd.recentPeak
		bd.recentPeak = stats.PopulationMean

		return &Bookmark{
			Type:        BookmarkPopulationCrash,
			Generation:  stats.LastGeneration,
			Description: fmt.Sprintf("Population crashed %.0f%% from peak %.1f to %.1f", drop*100, oldPeak, stats.PopulationMean),
		}
	}
	return nil
}
