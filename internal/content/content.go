// Package content holds the static landing copy: navigation menus, feature cards, slideshow
// frames, and the hero tagline. Everything is fixed in-memory data recreated per session.
package content

import "github.com/insighthub/landing/internal/coordinator"

// MenuItem is a single entry inside a navigation dropdown panel.
type MenuItem struct {
	Label string
	Blurb string
}

// Menu is a dropdown panel's heading plus its entries.
type Menu struct {
	Title string
	Items []MenuItem
}

// Feature is one product capability card shown in the hero section.
type Feature struct {
	Icon    string
	Name    string
	Summary string
}

// Slide is one gallery image: the asset identifier the page swaps in, a caption, and the
// ASCII art the terminal rendition draws instead of the bitmap.
type Slide struct {
	Asset   string
	Caption string
	Art     string
}

// Tagline is the hero line revealed by the typing animation.
const Tagline = "InsightHub — upload, clean, forecast, decide."

// Product is the advertised application's display name.
const Product = "InsightHub"

// Menus returns the dropdown content per panel identifier.
func Menus() map[coordinator.PanelID]Menu {
	return map[coordinator.PanelID]Menu{
		coordinator.PanelObjectives: {
			Title: "Objectives",
			Items: []MenuItem{
				{Label: "One upload, full picture", Blurb: "Drop in raw sales and inventory sheets, get a cleaned, unified dataset back."},
				{Label: "Forecast before it happens", Blurb: "Demand projections per product and store so ordering stays ahead of sales."},
				{Label: "Alerts that matter", Blurb: "Low-stock and anomaly alerts surfaced in one centre, not buried in spreadsheets."},
			},
		},
		coordinator.PanelMembers: {
			Title: "Team",
			Items: []MenuItem{
				{Label: "Data Engineering", Blurb: "Upload pipeline, cleaning rules, Excel and CSV handling."},
				{Label: "Forecasting", Blurb: "Demand models, seasonality handling, accuracy tracking."},
				{Label: "Product & Design", Blurb: "Dashboards, alert centre, and this very page."},
			},
		},
		coordinator.PanelHighlights: {
			Title: "Highlights",
			Items: []MenuItem{
				{Label: "Gallery", Blurb: "Dashboard and forecast screenshots from live deployments."},
				{Label: "Walkthrough", Blurb: "A short product tour from upload to alert."},
			},
		},
		coordinator.PanelAbout: {
			Title: "About",
			Items: []MenuItem{
				{Label: "Why InsightHub", Blurb: "Store operations teams drown in exported spreadsheets. InsightHub turns them into answers."},
				{Label: "Get in touch", Blurb: "Use the feedback form below — we read everything."},
			},
		},
	}
}

// Features returns the capability cards in display order.
func Features() []Feature {
	return []Feature{
		{Icon: "⬆", Name: "Data Upload", Summary: "Excel or CSV sales data in, validated and versioned."},
		{Icon: "✦", Name: "Smart Cleaning", Summary: "Deduplication, type fixes, and date normalization without manual wrangling."},
		{Icon: "↗", Name: "ML Forecasting", Summary: "Per-product demand predictions with confidence ranges."},
		{Icon: "▦", Name: "Dashboards", Summary: "Line, bar, and area views over any date range."},
		{Icon: "!", Name: "Alert Centre", Summary: "Low-stock and anomaly notifications in one place."},
	}
}

// Slides returns the highlight gallery in slideshow order.
func Slides() []Slide {
	return []Slide{
		{
			Asset:   "assets/slides/dashboard.jpg",
			Caption: "Sales dashboard — daily revenue by store",
			Art:     "  ▁▂▄▆█▆▄▂▁\n  revenue / day",
		},
		{
			Asset:   "assets/slides/forecast.jpg",
			Caption: "Forecast view — next 30 days of demand",
			Art:     "  ──●──●──◌──◌→\n  actual vs predicted",
		},
		{
			Asset:   "assets/slides/alerts.jpg",
			Caption: "Alert centre — low stock flagged early",
			Art:     "  [!] SKU 1042 below reorder point\n  [!] SKU 2210 demand spike",
		},
	}
}

// VideoFrames returns the frames the terminal rendition cycles while the walkthrough "plays".
func VideoFrames() []string {
	return []string{
		"▶ upload……",
		"▶ cleaning…",
		"▶ forecasting…",
		"▶ dashboards ready ✓",
	}
}
