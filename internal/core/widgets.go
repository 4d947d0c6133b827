package core

import (
	"fmt"
	"unicode/utf8"
)

// DrawPanel draws a box with a title embedded in its top edge.
func (s *Screen) DrawPanel(r Rect, title string, c Color) {
	s.DrawBoxColor(r, c)
	if title == "" || r.W < 6 {
		return
	}
	label := " " + title + " "
	if utf8.RuneCountInString(label) > r.W-2 {
		return
	}
	s.DrawTextColor(r.X+2, r.Y, label, c)
}

// DrawPopup draws a centered boxed message over whatever is on screen.
// The first line is treated as the heading.
func (s *Screen) DrawPopup(c Color, lines ...string) {
	if len(lines) == 0 {
		return
	}
	w := 0
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l))
	}
	box := Centered(s.width, s.height, w+4, len(lines)+2)
	s.FillRect(box, ' ', ColorDefault)
	s.DrawBoxColor(box, c)
	for i, l := range lines {
		col := ColorDefault
		if i == 0 {
			col = c
		}
		x := box.X + (box.W-utf8.RuneCountInString(l))/2
		s.DrawTextColor(x, box.Y+1+i, l, col)
	}
}

// DrawFooter writes a dimmed line of text centered on the bottom row.
func (s *Screen) DrawFooter(text string) {
	if s.height == 0 {
		return
	}
	s.DrawTextCenteredColor(s.height-1, text, ColorGray)
}

// FitsOrWarn reports whether the screen is at least w×h. When it is not,
// it replaces the frame with a resize hint.
func (s *Screen) FitsOrWarn(w, h int) bool {
	if s.width >= w && s.height >= h {
		return true
	}
	s.Clear()
	mid := s.height / 2
	s.DrawTextCenteredColor(mid-1, "Terminal too small", ColorBrightRed)
	s.DrawTextCentered(mid, fmt.Sprintf("need %dx%d, have %dx%d", w, h, s.width, s.height))
	return false
}
