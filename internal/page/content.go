package page

// Section is a top-level anchor of the page, laid out in page coordinates.
type Section struct {
	ID     string
	Title  string
	Top    float64
	Height float64
	Lines  []string
}

// Reveal is an element that fades in once scrolled into view.
type Reveal struct {
	Section string
	Top     float64
	Height  float64
	Text    string
}

// CounterSpec is a stat that counts up from zero when first seen.
type CounterSpec struct {
	Label  string
	Target int
	Top    float64
	Height float64
}

// Card is a project card.
type Card struct {
	Title  string
	Tags   string
	Top    float64
	Column int
}

// Content is the static page the state machine runs over.
type Content struct {
	Owner    string
	Role     string
	Sections []Section
	Reveals  []Reveal
	Counters []CounterSpec
	Cards    []Card
}

// Height is the total page height.
func (c Content) Height() float64 {
	var h float64
	for _, s := range c.Sections {
		if end := s.Top + s.Height; end > h {
			h = end
		}
	}
	return h
}

// Section looks a section up by id.
func (c Content) Section(id string) (Section, bool) {
	for _, s := range c.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// DefaultContent is the portfolio shipped with the binary.
func DefaultContent() Content {
	return Content{
		Owner: "Alex Morgan",
		Role:  "Software Engineer",
		Sections: []Section{
			{ID: "home", Title: "Home", Top: 0, Height: 720, Lines: []string{
				"Hi, I'm Alex.",
				"I build fast, reliable software and tools people enjoy using.",
			}},
			{ID: "about", Title: "About", Top: 720, Height: 640, Lines: []string{
				"Backend and graphics programmer.",
				"Go, real-time rendering, audio, developer tooling.",
			}},
			{ID: "skills", Title: "Skills", Top: 1360, Height: 560, Lines: []string{
				"Go  ·  Concurrency  ·  ebiten  ·  Audio DSP",
				"Linux  ·  Networking  ·  CI/CD",
			}},
			{ID: "projects", Title: "Projects", Top: 1920, Height: 760, Lines: []string{
				"Selected work",
			}},
			{ID: "contact", Title: "Contact", Top: 2680, Height: 640, Lines: []string{
				"Have a project in mind? Let's talk.",
				"Click the button to write a message.",
			}},
		},
		Reveals: []Reveal{
			{Section: "about", Top: 820, Height: 80, Text: "Five years of shipping production Go."},
			{Section: "about", Top: 920, Height: 80, Text: "Open source contributor."},
			{Section: "skills", Top: 1460, Height: 80, Text: "Always learning."},
			{Section: "projects", Top: 2000, Height: 80, Text: "Things I've built."},
			{Section: "contact", Top: 2760, Height: 80, Text: "Replies within two days."},
		},
		Counters: []CounterSpec{
			{Label: "Years", Target: 5, Top: 1060, Height: 80},
			{Label: "Projects", Target: 48, Top: 1060, Height: 80},
			{Label: "Clients", Target: 27, Top: 1060, Height: 80},
		},
		Cards: []Card{
			{Title: "Audio Visualizer", Tags: "Go · ebiten · beep", Top: 2080, Column: 0},
			{Title: "Fluid Playground", Tags: "Go · WASM", Top: 2080, Column: 1},
			{Title: "Terminal Arcade", Tags: "Go · tcell", Top: 2380, Column: 0},
			{Title: "Particle Field", Tags: "Go · ebiten", Top: 2380, Column: 1},
		},
	}
}
