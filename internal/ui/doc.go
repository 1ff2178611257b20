// Package ui implements the interactive terminal rendition of the landing page using bubbletea's Elm architecture.
//
// The TUI mirrors the web page's structure in three views:
//  1. [HomeView] : Hero tagline (typed out character by character) and feature cards
//  2. [HighlightsView] : Picture gallery with auto-advancing slideshow, or the product walkthrough "video"
//  3. [FeedbackView] : Name/email/message form persisted through the feedback store
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern. All dropdown,
// tab, slideshow, and mute state is owned by a [coordinator.Coordinator] wired to a terminal
// surface; the model only translates key presses into coordinator operations and renders what the
// surface holds. Recurring [tea.Tick] commands drive the slideshow interval, the typing animation,
// and the walkthrough frames; bubbletea cancels them when the program exits.
//
// Keyboard navigation uses number keys for the dropdown menus plus single letters (h/g/f, p/v, m)
// with contextual help displayed via charmbracelet/bubbles/help.
package ui
