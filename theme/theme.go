// Package theme switches the page between its four moods.
package theme

// Name identifies a mood theme.
type Name string

const (
	Kitty    Name = "kitty"
	Romantic Name = "romantic"
	Dreamy   Name = "dreamy"
	Party    Name = "party"
)

// All lists the themes in mood-bar order.
var All = []Name{Kitty, Romantic, Dreamy, Party}

// Parse returns the theme for s, or false when s is not a known theme.
func Parse(s string) (Name, bool) {
	for _, n := range All {
		if string(n) == s {
			return n, true
		}
	}
	return "", false
}

// Class is the presentation class applied to the page root for n.
func (n Name) Class() string {
	return "theme-" + string(n)
}

// Button is a mood control carrying a theme identifier.
type Button struct {
	Theme  string
	Active bool
}

// Switcher tracks the root presentation class and the active mood button.
type Switcher struct {
	current Name
	applied bool
	buttons []Button
}

// NewSwitcher creates a switcher with no theme applied and one button per
// identifier.
func NewSwitcher(buttonThemes ...string) *Switcher {
	s := &Switcher{}
	for _, id := range buttonThemes {
		s.buttons = append(s.buttons, Button{Theme: id})
	}
	return s
}

// SetTheme removes every theme class, applies the one named (if it is a
// known theme) and marks the buttons carrying that identifier active.
// Unknown names leave the page with no theme class and no active button.
func (s *Switcher) SetTheme(name string) {
	s.current, s.applied = Parse(name)

	for i := range s.buttons {
		s.buttons[i].Active = s.applied && s.buttons[i].Theme == name
	}
}

// Current returns the applied theme.
func (s *Switcher) Current() (Name, bool) {
	return s.current, s.applied
}

// Classes returns the presentation classes on the page root.
func (s *Switcher) Classes() []string {
	if !s.applied {
		return nil
	}
	return []string{s.current.Class()}
}

// Buttons returns a copy of the mood buttons.
func (s *Switcher) Buttons() []Button {
	out := make([]Button, len(s.buttons))
	copy(out, s.buttons)
	return out
}

// ActiveIndex returns the index of the active button, or -1.
func (s *Switcher) ActiveIndex() int {
	for i, b := range s.buttons {
		if b.Active {
			return i
		}
	}
	return -1
}
