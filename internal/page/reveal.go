package page

// revealVisible marks every element whose top has come within the viewport
// (less the reveal margin). Revealed elements stay revealed.
func (s *State) revealVisible() {
	for i, r := range s.content.Reveals {
		if s.revealed[i] {
			continue
		}
		if r.Top-s.ScrollY < s.ViewportH-revealMargin {
			s.revealed[i] = true
		}
	}
}

// Revealed reports whether reveal element i has been shown.
func (s *State) Revealed(i int) bool {
	if i < 0 || i >= len(s.revealed) {
		return false
	}
	return s.revealed[i]
}
