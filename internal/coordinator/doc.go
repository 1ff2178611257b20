// Package coordinator implements the landing page's UI state machine, independent of any rendering surface.
//
// The [Coordinator] owns four pieces of session state:
//  1. Dropdown registry: which navigation panel is open (at most one)
//  2. Highlight tab: picture gallery or video, exactly one active
//  3. Slideshow index: position in the slide sequence, wrapping both ways
//  4. Mute flag: whether the highlight video is muted
//
// Discrete intents (menu toggles, tab selection, arrows, mute, outside clicks, timer ticks) arrive as
// method calls and are reflected through the [Surface] capability interface. Rendering targets that a
// Surface reports as absent are skipped silently; absence is never an error.
//
// Both the terminal UI (internal/ui) and the unit tests drive a Coordinator, the former with a live
// terminal surface, the latter with a recording fake.
package coordinator
