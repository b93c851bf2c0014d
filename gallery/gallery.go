// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gallery

import (
	"fmt"
	"strconv"
)

// Content of the site's gallery.
const (
	TotalImages   = 23
	PreviewImages = 6
)

// Mode is how the viewer presents images.
type Mode string

const (
	ModeGrid     Mode = "grid"
	ModeLightbox Mode = "lightbox"
)

// ParseMode returns the mode named s, or ModeGrid for anything else.
func ParseMode(s string) Mode {
	if Mode(s) == ModeLightbox {
		return ModeLightbox
	}
	return ModeGrid
}

// Viewer is the state of the full-screen gallery. The current image is
// 1-indexed and always within [1, Total].
type Viewer struct {
	current int
	total   int
	mode    Mode
	open    bool
}

// New opens a viewer in grid mode on image initial. Out of range values
// are clamped; a total below one is treated as one.
func New(total, initial int) *Viewer {
	if total < 1 {
		total = 1
	}
	v := &Viewer{total: total, mode: ModeGrid, open: true}
	v.current = v.clamp(initial)
	return v
}

func (v *Viewer) clamp(n int) int {
	if n < 1 {
		return 1
	}
	if n > v.total {
		return v.total
	}
	return n
}

func (v *Viewer) Current() int { return v.current }
func (v *Viewer) Total() int   { return v.total }
func (v *Viewer) Mode() Mode   { return v.mode }
func (v *Viewer) IsOpen() bool { return v.open }

// Next advances one image, wrapping from the last image to the first.
func (v *Viewer) Next() {
	if v.current >= v.total {
		v.current = 1
		return
	}
	v.current++
}

// Prev goes back one image, wrapping from the first image to the last.
func (v *Viewer) Prev() {
	if v.current <= 1 {
		v.current = v.total
		return
	}
	v.current--
}

// OpenAt shows image n in the lightbox.
func (v *Viewer) OpenAt(n int) {
	v.current = v.clamp(n)
	v.mode = ModeLightbox
}

// ToggleMode switches between grid and lightbox without moving.
func (v *Viewer) ToggleMode() {
	if v.mode == ModeGrid {
		v.mode = ModeLightbox
	} else {
		v.mode = ModeGrid
	}
}

// Close leaves the viewer entirely, whatever the mode.
func (v *Viewer) Close() {
	v.open = false
}

// Keys understood by HandleKey. Names follow KeyboardEvent.key.
const (
	KeyRight  = "ArrowRight"
	KeyLeft   = "ArrowLeft"
	KeyEscape = "Escape"
)

// HandleKey applies a key press and reports whether it was handled.
// Keys are ignored once the viewer is closed.
func (v *Viewer) HandleKey(key string) bool {
	if !v.open {
		return false
	}
	switch key {
	case KeyRight:
		v.Next()
	case KeyLeft:
		v.Prev()
	case KeyEscape:
		v.Close()
	default:
		return false
	}
	return true
}

// Clone returns an independent copy, used to compute neighbour links.
func (v *Viewer) Clone() *Viewer {
	c := *v
	return &c
}

// ImagePath is the public path of image n.
func ImagePath(n int) string {
	return fmt.Sprintf("/images/img%d.jpeg", n)
}

// ImageFile is the file name of image n inside the images directory.
func ImageFile(n int) string {
	return "img" + strconv.Itoa(n) + ".jpeg"
}

// Positions returns 1..n.
func Positions(n int) []int {
	out := make([]int, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, i)
	}
	return out
}
