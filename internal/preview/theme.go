package preview

import "math/rand"

// Theme is a named color palette applied to every rendered page.
type Theme struct {
	Name       string
	Primary    string
	Secondary  string
	Accent     string
	Background string
	Text       string
}

var palette = []Theme{
	{
		Name:       "midnight",
		Primary:    "#1a2238",
		Secondary:  "#9daaf2",
		Accent:     "#ff6a3d",
		Background: "#f4f4f6",
		Text:       "#21243d",
	},
	{
		Name:       "terracotta",
		Primary:    "#7c4a3a",
		Secondary:  "#d9a38e",
		Accent:     "#c96f4a",
		Background: "#faf3ee",
		Text:       "#3e2723",
	},
	{
		Name:       "forest",
		Primary:    "#1b4332",
		Secondary:  "#95d5b2",
		Accent:     "#d8a47f",
		Background: "#f6fbf7",
		Text:       "#14281d",
	},
	{
		Name:       "slate",
		Primary:    "#2f3e46",
		Secondary:  "#84a98c",
		Accent:     "#cad2c5",
		Background: "#f8f9fa",
		Text:       "#212529",
	},
	{
		Name:       "champagne",
		Primary:    "#6d597a",
		Secondary:  "#b56576",
		Accent:     "#eaac8b",
		Background: "#fdf8f5",
		Text:       "#355070",
	},
}

// Themes returns the fixed palette.
func Themes() []Theme {
	out := make([]Theme, len(palette))
	copy(out, palette)
	return out
}

// DefaultTheme is applied until a regenerate action shuffles it.
func DefaultTheme() Theme {
	return palette[0]
}

// RandomTheme picks a palette entry different from the current one when
// possible, so a regenerate visibly reshuffles the look.
func RandomTheme(current Theme) Theme {
	if len(palette) == 1 {
		return palette[0]
	}
	for {
		next := palette[rand.Intn(len(palette))]
		if next.Name != current.Name {
			return next
		}
	}
}
