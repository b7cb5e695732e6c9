// Package deck defines level progression: how many decks there are, how large
// each deck's grid is, and the flavour line shown when it loads. The player
// never sees the total; they discover the end by reaching the final deck.
package deck

import (
	"github.com/leonelquinteros/gotext"
)

// TotalDecks is the fixed number of decks (never shown to the player).
const TotalDecks = 10

// Size bounds, as interior extents (grid size minus one).
const (
	baseExtentX  = 40
	baseExtentY  = 20
	growthX      = 2 // intervals added per deck
	growthY      = 1
	maxExtentX   = 100
	maxExtentY   = 60
	finalExtentX = 30
	finalExtentY = 20
)

// IsFinalDeck returns true if the given level (1-based) is the final deck.
func IsFinalDeck(level int) bool {
	return level >= TotalDecks
}

// NextDeckLevel returns the next deck level (1-based) for the given current level,
// or 0 if there is no next deck (current is final).
func NextDeckLevel(currentLevel int) int {
	if currentLevel <= 0 || currentLevel >= TotalDecks {
		return 0
	}
	return currentLevel + 1
}

// GridSize returns the grid width and height for a deck. Both satisfy
// (size-1) % interval == 0. Decks grow with depth up to a cap; the final deck
// uses a small fixed layout.
func GridSize(level, interval int) (width, height int) {
	if level < 1 {
		level = 1
	}
	if IsFinalDeck(level) {
		return align(finalExtentX, interval) + 1, align(finalExtentY, interval) + 1
	}

	extentX := min(baseExtentX+(level-1)*growthX*interval, maxExtentX)
	extentY := min(baseExtentY+(level-1)*growthY*interval, maxExtentY)
	return align(extentX, interval) + 1, align(extentY, interval) + 1
}

// align rounds n down to a multiple of interval, never below one interval
func align(n, interval int) int {
	if interval <= 0 {
		return n
	}
	return max(n/interval*interval, interval)
}

// FlavourKey returns the gettext message key for the deck's arrival line.
// Deeper decks get bleaker lines.
func FlavourKey(level int) string {
	switch {
	case IsFinalDeck(level):
		return "DECK_STATUS_FINAL"
	case level <= 3:
		return "DECK_STATUS_NOMINAL"
	case level <= 6:
		return "DECK_STATUS_LEGACY"
	default:
		return "DECK_STATUS_ANOMALY"
	}
}

// FlavourText returns the translated arrival line for the deck.
// Uses gotext.Get with constant keys to satisfy vet.
func FlavourText(level int) string {
	switch FlavourKey(level) {
	case "DECK_STATUS_LEGACY":
		return gotext.Get("DECK_STATUS_LEGACY")
	case "DECK_STATUS_ANOMALY":
		return gotext.Get("DECK_STATUS_ANOMALY")
	case "DECK_STATUS_FINAL":
		return gotext.Get("DECK_STATUS_FINAL")
	default:
		return gotext.Get("DECK_STATUS_NOMINAL")
	}
}
