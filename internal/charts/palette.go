package charts

// Palette is a named, ordered set of hex colors. Colors cycle when there are
// more entities than colors.
type Palette struct {
	Name   string
	Colors []string
}

// DefaultPalette is used when a palette name is unknown.
const DefaultPalette = "Default"

var palettes = []Palette{
	{Name: DefaultPalette, Colors: []string{"#FF4B4B", "#0068C9", "#09AB3B", "#FF8C00", "#8A2BE2", "#DC143C", "#00CED1", "#FFD700"}},
	{Name: "Professional", Colors: []string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b", "#e377c2", "#7f7f7f"}},
	{Name: "Vibrant", Colors: []string{"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FFEAA7", "#DDA0DD", "#98D8C8", "#F7DC6F"}},
	{Name: "Earth Tones", Colors: []string{"#8B4513", "#CD853F", "#D2691E", "#A0522D", "#F4A460", "#DEB887", "#D2B48C", "#BC8F8F"}},
	{Name: "Ocean", Colors: []string{"#006994", "#13A3C4", "#BCF5F5", "#4DD0E1", "#0891B2", "#006BA6", "#1976D2", "#42A5F5"}},
	{Name: "Sunset", Colors: []string{"#FF6B35", "#F7931E", "#FFD23F", "#FE4A49", "#FE6B8B", "#FF8A65", "#FFAB40", "#FFD54F"}},
	{Name: "Pastel", Colors: []string{"#FFB3BA", "#FFDFBA", "#FFFFBA", "#BAFFC9", "#BAE1FF", "#E1BAFF", "#FFE1BA", "#FFBAE1"}},
}

// PaletteNames lists the available palettes.
func PaletteNames() []string {
	names := make([]string, len(palettes))
	for i, p := range palettes {
		names[i] = p.Name
	}

	return names
}

// PaletteByName returns the named palette, or the default one.
func PaletteByName(name string) Palette {
	for _, p := range palettes {
		if p.Name == name {
			return p
		}
	}

	return palettes[0]
}

// IsPalette reports whether name is a known palette.
func IsPalette(name string) bool {
	for _, p := range palettes {
		if p.Name == name {
			return true
		}
	}

	return false
}

// Color returns the i-th color, cycling.
func (p Palette) Color(i int) string {
	if len(p.Colors) == 0 {
		return palettes[0].Colors[i%len(palettes[0].Colors)]
	}

	return p.Colors[i%len(p.Colors)]
}
