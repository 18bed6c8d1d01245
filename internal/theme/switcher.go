package theme

// Switcher holds the active theme. Renderers query it on every draw, so a
// Set takes effect on the next frame.
type Switcher struct {
	current Theme
}

func NewSwitcher(name string) *Switcher {
	return &Switcher{current: Get(name)}
}

func (s *Switcher) Current() Theme { return s.current }

// Set switches to the named theme; unknown names select [Terminal].
func (s *Switcher) Set(name string) { s.current = Get(name) }

// Next cycles to the following theme and returns it.
func (s *Switcher) Next() Theme {
	names := Names()
	for i, n := range names {
		if n == s.current.Name {
			s.current = Get(names[(i+1)%len(names)])
			return s.current
		}
	}
	s.current = Themes[0]
	return s.current
}

func (s *Switcher) Lookup(token string) string { return s.current.Lookup(token) }
