// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package charter

// QuoteTarget is where a quote request hands off to.
const QuoteTarget = "/#contact"

// Category is a class of aircraft offered for charter. The *Key fields are
// translation keys.
type Category struct {
	ID          int      `json:"id"`
	NameKey     string   `json:"name_key"`
	TaglineKey  string   `json:"tagline_key"`
	CapacityKey string   `json:"capacity_key"`
	RangeKey    string   `json:"range_key"`
	Aircraft    []string `json:"aircraft"`
	Image       string   `json:"image"`
}

var categories = []Category{
	{
		ID: 1, NameKey: "cat1_name", TaglineKey: "cat1_tagline", CapacityKey: "cat1_capacity", RangeKey: "cat1_range",
		Aircraft: []string{"Cessna Citation Mustang", "Embraer Phenom 100", "Eclipse 550", "HondaJet HA-420"},
		Image:    "https://images.unsplash.com/photo-1540962351504-03099e0a754b?w=800&h=600&fit=crop",
	},
	{
		ID: 2, NameKey: "cat2_name", TaglineKey: "cat2_tagline", CapacityKey: "cat2_capacity", RangeKey: "cat2_range",
		Aircraft: []string{"Cessna Citation CJ1/CJ2/CJ3/CJ4", "Embraer Phenom 300", "Beechcraft Premier 1A", "Learjet 31/35"},
		Image:    "https://images.unsplash.com/photo-1474302770737-173ee21bab63?w=800&h=600&fit=crop",
	},
	{
		ID: 3, NameKey: "cat3_name", TaglineKey: "cat3_tagline", CapacityKey: "cat3_capacity", RangeKey: "cat3_range",
		Aircraft: []string{"Hawker 800XP/850XP", "Cessna Citation XLS/XLS+", "Learjet 40/45", "Gulfstream G150"},
		Image:    "https://images.unsplash.com/photo-1559268950-2d7ceb2efa3a?w=800&h=600&fit=crop",
	},
	{
		ID: 4, NameKey: "cat4_name", TaglineKey: "cat4_tagline", CapacityKey: "cat4_capacity", RangeKey: "cat4_range",
		Aircraft: []string{"Bombardier Challenger 300/350", "Gulfstream G200", "Embraer Legacy 450/500", "Cessna Citation X"},
		Image:    "https://images.unsplash.com/photo-1436491865332-7a61a109cc05?w=800&h=600&fit=crop",
	},
	{
		ID: 5, NameKey: "cat5_name", TaglineKey: "cat5_tagline", CapacityKey: "cat5_capacity", RangeKey: "cat5_range",
		Aircraft: []string{"Bombardier Challenger 604/605/650", "Gulfstream G450/G550", "Dassault Falcon 900EX/2000", "Embraer Legacy 600/650"},
		Image:    "https://images.unsplash.com/photo-1569629743817-70d8db6c323b?w=800&h=600&fit=crop",
	},
	{
		ID: 6, NameKey: "cat6_name", TaglineKey: "cat6_tagline", CapacityKey: "cat6_capacity", RangeKey: "cat6_range",
		Aircraft: []string{"Gulfstream G650/G650ER", "Bombardier Global 6000/7500", "Dassault Falcon 7X/8X", "Gulfstream G700"},
		Image:    "https://images.unsplash.com/photo-1464037866556-6812c9d1c72e?w=800&h=600&fit=crop",
	},
}

// Categories returns the six charter categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		c.Aircraft = append([]string(nil), c.Aircraft...)
		out[i] = c
	}
	return out
}

// Find returns the category with the given id.
func Find(id int) (Category, bool) {
	for _, c := range Categories() {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// View is which of the browser's two screens is showing.
type View string

const (
	ViewGrid   View = "grid"
	ViewDetail View = "detail"
)

// Browser is the charter overlay: a grid of categories and a detail view of
// one of them. There is no history beyond going back to the grid.
type Browser struct {
	visible  bool
	selected *Category
}

// NewBrowser returns a hidden browser.
func NewBrowser() *Browser {
	return &Browser{}
}

// Open shows the overlay on the grid.
func (b *Browser) Open() {
	b.visible = true
	b.selected = nil
}

// Close hides the overlay and forgets the selection.
func (b *Browser) Close() {
	b.visible = false
	b.selected = nil
}

// Visible reports whether the overlay is showing.
func (b *Browser) Visible() bool {
	return b.visible
}

// Select opens the detail view of category id. Unknown ids and a hidden
// browser leave the state unchanged.
func (b *Browser) Select(id int) bool {
	if !b.visible {
		return false
	}
	c, ok := Find(id)
	if !ok {
		return false
	}
	b.selected = &c
	return true
}

// Back returns from the detail view to the grid.
func (b *Browser) Back() {
	b.selected = nil
}

// Selected returns the category of the detail view, if one is open.
func (b *Browser) Selected() (Category, bool) {
	if b.selected == nil {
		return Category{}, false
	}
	return *b.selected, true
}

// View reports which screen is showing.
func (b *Browser) View() View {
	if b.selected != nil {
		return ViewDetail
	}
	return ViewGrid
}

// RequestQuote closes the whole browser and returns where the visitor is
// sent to ask for a quote.
func (b *Browser) RequestQuote() string {
	b.Close()
	return QuoteTarget
}
