package t2048

import "github.com/vovakirdan/termplay/internal/core"

// highlightTicks is how long merged and spawned tiles stay highlighted.
const highlightTicks = 3

// highlight marks the tiles touched by the last move.
type highlight struct {
	merged []core.Point
	fresh  core.Point
	ticks  int
}

func (h *highlight) start(merged []core.Point, fresh core.Point) {
	h.merged = merged
	h.fresh = fresh
	h.ticks = highlightTicks
}

func (h *highlight) tick() {
	if h.ticks == 0 {
		return
	}
	h.ticks--
	if h.ticks == 0 {
		h.merged = nil
	}
}

func (h *highlight) active() bool {
	return h.ticks > 0
}

func (h *highlight) isMerged(p core.Point) bool {
	if !h.active() {
		return false
	}
	for _, m := range h.merged {
		if m == p {
			return true
		}
	}
	return false
}

func (h *highlight) isFresh(p core.Point) bool {
	return h.active() && h.fresh == p
}
