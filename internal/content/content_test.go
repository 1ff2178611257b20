package content

import (
	"testing"

	"github.com/insighthub/landing/internal/coordinator"
)

func TestMenusCoverEveryPanel(t *testing.T) {
	menus := Menus()

	for _, id := range coordinator.Panels() {
		menu, ok := menus[id]
		if !ok {
			t.Errorf("no menu content for panel %s", id)
			continue
		}
		if menu.Title == "" {
			t.Errorf("panel %s has an empty title", id)
		}
		if len(menu.Items) == 0 {
			t.Errorf("panel %s has no entries", id)
		}
	}
}

func TestSlides(t *testing.T) {
	slides := Slides()

	if len(slides) < 2 {
		t.Fatalf("slideshow needs at least two frames, got %d", len(slides))
	}

	seen := make(map[string]bool)
	for _, s := range slides {
		if s.Asset == "" || s.Caption == "" {
			t.Errorf("slide missing asset or caption: %+v", s)
		}
		if seen[s.Asset] {
			t.Errorf("duplicate slide asset %s", s.Asset)
		}
		seen[s.Asset] = true
	}
}

func TestVideoFrames(t *testing.T) {
	if len(VideoFrames()) == 0 {
		t.Fatal("walkthrough needs at least one frame")
	}
}
