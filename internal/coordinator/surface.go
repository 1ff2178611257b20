package coordinator

// PanelID identifies a navigation dropdown section.
type PanelID string

const (
	PanelObjectives PanelID = "objectives"
	PanelMembers    PanelID = "members"
	PanelHighlights PanelID = "highlights"
	PanelAbout      PanelID = "about"
)

// Panels lists every dropdown identifier in display order.
func Panels() []PanelID {
	return []PanelID{PanelObjectives, PanelMembers, PanelHighlights, PanelAbout}
}

// Tab selects which highlight sub-panel is visible.
type Tab int

const (
	TabPicture Tab = iota
	TabVideo
)

func (t Tab) String() string {
	if t == TabVideo {
		return "video"
	}
	return "picture"
}

// Surface is the rendering capability a [Coordinator] drives.
//
// Every mutator reports whether its target existed; false means the surface has no such element and
// the coordinator treats the call as a no-op. Implementations must not panic on unknown targets.
type Surface interface {
	// SetPanelOpen shows or hides the dropdown panel for id and marks its toggle control.
	SetPanelOpen(id PanelID, open bool) bool

	// SetTabVisible shows or hides the sub-panel for tab.
	SetTabVisible(tab Tab, visible bool) bool

	// SetTabActive marks the selector control for tab as active or inactive.
	SetTabActive(tab Tab, active bool) bool

	// ShowSlide swaps the displayed gallery image to the slide at index.
	ShowSlide(index int) bool

	// PlayVideo starts or resumes video playback.
	PlayVideo() bool

	// PauseVideo halts video playback.
	PauseVideo() bool

	// SetMuted applies the muted flag to the video element.
	SetMuted(muted bool) bool

	// NavContains reports whether the named click target lies inside the navigation
	// container's subtree. Unknown targets count as outside.
	NavContains(target string) bool
}
