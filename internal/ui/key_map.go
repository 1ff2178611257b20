package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	menus      key.Binding
	home       key.Binding
	highlights key.Binding
	feedback   key.Binding
	picture    key.Binding
	video      key.Binding
	prev       key.Binding
	next       key.Binding
	mute       key.Binding
	close      key.Binding
	submit     key.Binding
	cycle      key.Binding
	quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		menus:      key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "menus")),
		home:       key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home")),
		highlights: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "highlights")),
		feedback:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "feedback")),
		picture:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pictures")),
		video:      key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "video")),
		prev:       key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev slide")),
		next:       key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next slide")),
		mute:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute")),
		close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close menus")),
		submit:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
		cycle:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.menus, k.home, k.highlights, k.feedback},
		{k.picture, k.video, k.prev, k.next},
		{k.mute, k.close, k.submit, k.quit},
	}
}
