package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/insighthub/landing/internal/content"
	"github.com/insighthub/landing/internal/coordinator"
	"github.com/insighthub/landing/internal/models"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	HomeView ViewState = iota
	HighlightsView
	FeedbackView
)

// videoFrameInterval paces the walkthrough frames while the video tab is playing.
const videoFrameInterval = 500 * time.Millisecond

// Model represents the TUI application state.
//
// All landing state lives in the embedded [coordinator.Coordinator]; the model translates key
// presses into coordinator operations and renders the terminal surface the coordinator drives.
type Model struct {
	coord   *coordinator.Coordinator
	surface *termSurface

	menus    map[coordinator.PanelID]content.Menu
	features []content.Feature
	slides   []content.Slide
	frames   []string

	view   ViewState
	width  int
	height int

	typed       int
	frame       int
	slideEvery  time.Duration
	typingEvery time.Duration

	nameInput    textinput.Model
	emailInput   textinput.Model
	messageInput textarea.Model
	focus        int
	submitted    bool
	submitErr    error

	store  models.Repository[*models.Feedback]
	logger *log.Logger
	help   help.Model
	keys   keyMap
}

// Options configures a new TUI [Model].
type Options struct {
	Store         models.Repository[*models.Feedback]
	Logger        *log.Logger
	SlideInterval time.Duration
	TypingDelay   time.Duration
}

type slideTickMsg time.Time

type typeTickMsg time.Time

type frameTickMsg time.Time

type feedbackSavedMsg struct {
	err error
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(opts Options) *Model {
	if opts.SlideInterval <= 0 {
		opts.SlideInterval = 3 * time.Second
	}
	if opts.TypingDelay <= 0 {
		opts.TypingDelay = 80 * time.Millisecond
	}

	surface := newTermSurface()
	slides := content.Slides()

	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 64

	email := textinput.New()
	email.Placeholder = "Email (optional)"
	email.CharLimit = 128

	message := textarea.New()
	message.Placeholder = "What would make InsightHub work for your store?"
	message.SetHeight(4)

	m := &Model{
		coord:        coordinator.New(surface, len(slides)),
		surface:      surface,
		menus:        content.Menus(),
		features:     content.Features(),
		slides:       slides,
		frames:       content.VideoFrames(),
		slideEvery:   opts.SlideInterval,
		typingEvery:  opts.TypingDelay,
		nameInput:    name,
		emailInput:   email,
		messageInput: message,
		store:        opts.Store,
		logger:       opts.Logger,
		help:         help.New(),
		keys:         newKeyMap(),
	}

	return m
}

// Init starts the slideshow, typing, and walkthrough timers.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.slideTick(), m.typeTick(), m.frameTick())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.messageInput.SetWidth(min(msg.Width-8, 72))
		return m, nil

	case tea.KeyMsg:
		if m.view == FeedbackView {
			return m.handleFeedbackKeys(msg)
		}
		return m.handleBrowseKeys(msg)

	case slideTickMsg:
		m.coord.Tick()
		return m, m.slideTick()

	case typeTickMsg:
		if m.typed < len([]rune(content.Tagline)) {
			m.typed++
			return m, m.typeTick()
		}
		return m, nil

	case frameTickMsg:
		if m.surface.playing && len(m.frames) > 0 {
			m.frame = (m.frame + 1) % len(m.frames)
		}
		return m, m.frameTick()

	case feedbackSavedMsg:
		m.submitErr = msg.err
		m.submitted = msg.err == nil
		if msg.err != nil && m.logger != nil {
			m.logger.Error("failed to save feedback", "error", msg.err)
		}
		return m, nil
	}

	return m, nil
}

// handleBrowseKeys covers the home and highlights views, where single letters are commands.
func (m *Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.close):
		// The content area is outside the navigation container.
		m.coord.HandleOutsideClick("hero-section")
		return m, nil

	case key.Matches(msg, m.keys.menus):
		panels := coordinator.Panels()
		idx := int(msg.String()[0] - '1')
		if idx >= 0 && idx < len(panels) {
			m.coord.ToggleDropdown(panels[idx])
		}
		return m, nil

	case key.Matches(msg, m.keys.home):
		m.view = HomeView
		return m, nil

	case key.Matches(msg, m.keys.highlights):
		m.view = HighlightsView
		return m, nil

	case key.Matches(msg, m.keys.feedback):
		m.view = FeedbackView
		m.submitted = false
		m.submitErr = nil
		m.focus = 0
		return m, m.focusField(0)
	}

	if m.view == HighlightsView {
		switch {
		case key.Matches(msg, m.keys.picture):
			m.coord.ShowHighlightTab(coordinator.TabPicture)
		case key.Matches(msg, m.keys.video):
			m.coord.ShowHighlightTab(coordinator.TabVideo)
			m.frame = 0
		case key.Matches(msg, m.keys.prev):
			m.coord.PrevSlide()
		case key.Matches(msg, m.keys.next):
			m.coord.NextSlide()
		case key.Matches(msg, m.keys.mute):
			m.coord.ToggleMute()
		}
	}

	return m, nil
}

// handleFeedbackKeys routes most keys into the focused form field.
func (m *Model) handleFeedbackKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = HomeView
		m.blurFields()
		return m, nil
	case "tab":
		m.focus = (m.focus + 1) % 3
		return m, m.focusField(m.focus)
	case "shift+tab":
		m.focus = (m.focus + 2) % 3
		return m, m.focusField(m.focus)
	case "ctrl+s":
		return m, m.submitFeedback()
	}

	var cmd tea.Cmd
	switch m.focus {
	case 0:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case 1:
		m.emailInput, cmd = m.emailInput.Update(msg)
	case 2:
		m.messageInput, cmd = m.messageInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) focusField(idx int) tea.Cmd {
	m.blurFields()
	switch idx {
	case 0:
		return m.nameInput.Focus()
	case 1:
		return m.emailInput.Focus()
	default:
		return m.messageInput.Focus()
	}
}

func (m *Model) blurFields() {
	m.nameInput.Blur()
	m.emailInput.Blur()
	m.messageInput.Blur()
}

func (m *Model) submitFeedback() tea.Cmd {
	entry := models.NewFeedback(0, m.nameInput.Value(), m.emailInput.Value(), m.messageInput.Value(), models.SourceTUI)

	if err := entry.Validate(); err != nil {
		m.submitErr = err
		return nil
	}

	if m.store == nil {
		m.submitErr = fmt.Errorf("feedback store not configured, run setup first")
		return nil
	}

	return func() tea.Msg {
		return feedbackSavedMsg{err: m.store.Create(entry)}
	}
}

func (m *Model) slideTick() tea.Cmd {
	return tea.Tick(m.slideEvery, func(t time.Time) tea.Msg { return slideTickMsg(t) })
}

func (m *Model) typeTick() tea.Cmd {
	return tea.Tick(m.typingEvery, func(t time.Time) tea.Msg { return typeTickMsg(t) })
}

func (m *Model) frameTick() tea.Cmd {
	return tea.Tick(videoFrameInterval, func(t time.Time) tea.Msg { return frameTickMsg(t) })
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	var body string
	switch m.view {
	case HighlightsView:
		body = m.renderHighlights()
	case FeedbackView:
		body = m.renderFeedback()
	default:
		body = m.renderHome()
	}

	return fmt.Sprintf("%s\n%s\n%s", m.renderNav(), body, m.renderHelp())
}

// renderNav draws the navigation bar plus whichever dropdown panel is open.
func (m *Model) renderNav() string {
	var bar []string
	for i, id := range coordinator.Panels() {
		label := fmt.Sprintf("[%d] %s", i+1, m.menus[id].Title)
		if m.surface.panelOpen[id] {
			label = styles.active.Render(label)
		} else {
			label = styles.dim.Render(label)
		}
		bar = append(bar, label)
	}

	nav := styles.title.Render(content.Product) + "  " + strings.Join(bar, "  ")

	for _, id := range coordinator.Panels() {
		if !m.surface.panelOpen[id] {
			continue
		}
		menu := m.menus[id]
		var lines []string
		for _, item := range menu.Items {
			lines = append(lines, fmt.Sprintf("  • %s — %s", styles.ok.Render(item.Label), item.Blurb))
		}
		nav += "\n" + strings.Join(lines, "\n")
	}

	return nav
}

func (m *Model) renderHome() string {
	tagline := string([]rune(content.Tagline)[:m.typed])
	if m.typed < len([]rune(content.Tagline)) {
		tagline += "▌"
	}

	var cards []string
	for _, f := range m.features {
		cards = append(cards, fmt.Sprintf("  %s %s — %s", f.Icon, styles.ok.Render(f.Name), f.Summary))
	}

	return fmt.Sprintf("\n%s\n\n%s\n", styles.title.Render(tagline), strings.Join(cards, "\n"))
}

func (m *Model) renderHighlights() string {
	pictureTab := "Pictures"
	videoTab := "Video"
	if m.surface.tabActive[coordinator.TabPicture] {
		pictureTab = styles.active.Render("[p] " + pictureTab)
		videoTab = styles.dim.Render("[v] " + videoTab)
	} else {
		pictureTab = styles.dim.Render("[p] " + pictureTab)
		videoTab = styles.active.Render("[v] " + videoTab)
	}
	header := fmt.Sprintf("\n%s  %s\n", pictureTab, videoTab)

	if m.surface.tabVisible[coordinator.TabVideo] {
		frame := ""
		if len(m.frames) > 0 {
			frame = m.frames[m.frame]
		}
		audio := "🔊"
		if m.surface.muted {
			audio = styles.warn.Render("🔇 muted")
		}
		return fmt.Sprintf("%s\n  %s\n\n  %s\n", header, frame, audio)
	}

	slide := m.slides[m.surface.slide]
	position := fmt.Sprintf("%d/%d", m.surface.slide+1, len(m.slides))
	return fmt.Sprintf("%s\n%s\n\n  %s  %s\n", header, slide.Art, styles.ok.Render(slide.Caption), styles.dim.Render(position))
}

func (m *Model) renderFeedback() string {
	if m.submitted {
		return "\n" + styles.ok.Render("✓ Thanks for the feedback!") + "\n\n  Press esc to go back.\n"
	}

	var status string
	if m.submitErr != nil {
		status = "\n  " + styles.err.Render(fmt.Sprintf("Error: %v", m.submitErr))
	}

	return fmt.Sprintf(
		"\n%s\n\n  %s\n  %s\n\n%s\n%s\n",
		styles.title.Render("Tell us what you think"),
		m.nameInput.View(),
		m.emailInput.View(),
		m.messageInput.View(),
		status,
	)
}

func (m *Model) renderHelp() string {
	var helpKeys []key.Binding
	switch m.view {
	case HighlightsView:
		helpKeys = []key.Binding{m.keys.picture, m.keys.video, m.keys.prev, m.keys.next, m.keys.mute, m.keys.home, m.keys.quit}
	case FeedbackView:
		helpKeys = []key.Binding{m.keys.cycle, m.keys.submit, m.keys.close, m.keys.quit}
	default:
		helpKeys = []key.Binding{m.keys.menus, m.keys.highlights, m.keys.feedback, m.keys.close, m.keys.quit}
	}
	return m.help.ShortHelpView(helpKeys)
}
