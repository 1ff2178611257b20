package coordinator

// Coordinator mediates between discrete UI intents and a rendering [Surface].
//
// One instance is created per session and passed explicitly to whatever owns event delivery;
// nothing here is global. All methods are synchronous and must be called from a single event
// loop, which serializes every state mutation.
type Coordinator struct {
	surface    Surface
	open       map[PanelID]bool
	tab        Tab
	slide      int
	slideCount int
	muted      bool
}

// New creates a Coordinator for a slideshow of slideCount images and establishes the
// deterministic starting state: all dropdowns closed, picture tab visible, first slide shown.
func New(surface Surface, slideCount int) *Coordinator {
	if slideCount < 1 {
		slideCount = 1
	}

	c := &Coordinator{
		surface:    surface,
		open:       make(map[PanelID]bool, len(Panels())),
		slideCount: slideCount,
	}

	for _, id := range Panels() {
		c.open[id] = false
	}

	c.ShowHighlightTab(TabPicture)
	c.surface.ShowSlide(0)
	c.surface.SetMuted(false)

	return c
}

// ToggleDropdown closes every dropdown other than id, then flips id itself.
//
// After the call at most one dropdown is open, and it is id exactly when id was previously
// closed. Panels the surface doesn't know about still track state but skip reflection.
func (c *Coordinator) ToggleDropdown(id PanelID) {
	for _, other := range Panels() {
		if other == id {
			continue
		}
		if c.open[other] {
			c.open[other] = false
		}
		c.surface.SetPanelOpen(other, false)
	}

	c.open[id] = !c.open[id]
	c.surface.SetPanelOpen(id, c.open[id])
}

// HandleOutsideClick closes every dropdown when target is outside the navigation container.
//
// Containment is answered by the surface, mirroring the page's nav-subtree test: a panel
// rendered outside that subtree would be misclassified as outside and closed. Calling this
// repeatedly with outside targets is idempotent.
func (c *Coordinator) HandleOutsideClick(target string) {
	if c.surface.NavContains(target) {
		return
	}
	c.CloseAll()
}

// CloseAll forces every dropdown closed.
func (c *Coordinator) CloseAll() {
	for _, id := range Panels() {
		c.open[id] = false
		c.surface.SetPanelOpen(id, false)
	}
}

// ShowHighlightTab makes tab the visible highlight sub-panel and the other hidden, updating the
// selector controls to match. Leaving the video tab pauses playback; entering it resumes.
func (c *Coordinator) ShowHighlightTab(tab Tab) {
	other := TabPicture
	if tab == TabPicture {
		other = TabVideo
	}

	c.tab = tab

	c.surface.SetTabVisible(other, false)
	c.surface.SetTabActive(other, false)
	c.surface.SetTabVisible(tab, true)
	c.surface.SetTabActive(tab, true)

	if tab == TabVideo {
		c.surface.PlayVideo()
	} else {
		c.surface.PauseVideo()
	}
}

// NextSlide advances the slideshow by one position, wrapping past the last slide.
func (c *Coordinator) NextSlide() {
	c.slide = (c.slide + 1) % c.slideCount
	c.surface.ShowSlide(c.slide)
}

// PrevSlide retreats the slideshow by one position, wrapping below zero to the last slide.
func (c *Coordinator) PrevSlide() {
	c.slide = (c.slide - 1 + c.slideCount) % c.slideCount
	c.surface.ShowSlide(c.slide)
}

// Tick advances the slideshow only while the picture tab is visible.
//
// The periodic timer calls this on every interval; auto-advance while the video tab is shown
// would be wasted work.
func (c *Coordinator) Tick() {
	if c.tab != TabPicture {
		return
	}
	c.NextSlide()
}

// ToggleMute flips the mute flag and applies it to the video element.
func (c *Coordinator) ToggleMute() {
	c.muted = !c.muted
	c.surface.SetMuted(c.muted)
}

// Open reports whether the dropdown for id is open.
func (c *Coordinator) Open(id PanelID) bool { return c.open[id] }

// AnyOpen reports whether any dropdown is open.
func (c *Coordinator) AnyOpen() bool {
	for _, id := range Panels() {
		if c.open[id] {
			return true
		}
	}
	return false
}

// ActiveTab returns the currently visible highlight tab.
func (c *Coordinator) ActiveTab() Tab { return c.tab }

// Slide returns the current slideshow index, always in [0, slide count).
func (c *Coordinator) Slide() int { return c.slide }

// SlideCount returns the length of the slide sequence.
func (c *Coordinator) SlideCount() int { return c.slideCount }

// Muted reports the current mute flag.
func (c *Coordinator) Muted() bool { return c.muted }
