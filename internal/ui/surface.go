package ui

import (
	"github.com/insighthub/landing/internal/coordinator"
)

// termSurface is the terminal implementation of [coordinator.Surface].
//
// It holds the visual flags View() reads; the coordinator is the only writer. Targets named
// navTarget or a panel identifier count as inside the navigation container, everything else
// (hero, feature cards, footer) is outside.
type termSurface struct {
	panelOpen  map[coordinator.PanelID]bool
	tabVisible map[coordinator.Tab]bool
	tabActive  map[coordinator.Tab]bool
	slide      int
	playing    bool
	muted      bool
}

// navTarget names the navigation container for outside-click classification.
const navTarget = "nav"

func newTermSurface() *termSurface {
	return &termSurface{
		panelOpen:  make(map[coordinator.PanelID]bool),
		tabVisible: make(map[coordinator.Tab]bool),
		tabActive:  make(map[coordinator.Tab]bool),
	}
}

func (s *termSurface) SetPanelOpen(id coordinator.PanelID, open bool) bool {
	s.panelOpen[id] = open
	return true
}

func (s *termSurface) SetTabVisible(tab coordinator.Tab, visible bool) bool {
	s.tabVisible[tab] = visible
	return true
}

func (s *termSurface) SetTabActive(tab coordinator.Tab, active bool) bool {
	s.tabActive[tab] = active
	return true
}

func (s *termSurface) ShowSlide(index int) bool {
	s.slide = index
	return true
}

func (s *termSurface) PlayVideo() bool {
	s.playing = true
	return true
}

func (s *termSurface) PauseVideo() bool {
	s.playing = false
	return true
}

func (s *termSurface) SetMuted(muted bool) bool {
	s.muted = muted
	return true
}

func (s *termSurface) NavContains(target string) bool {
	if target == navTarget {
		return true
	}
	for _, id := range coordinator.Panels() {
		if target == string(id) {
			return true
		}
	}
	return false
}
