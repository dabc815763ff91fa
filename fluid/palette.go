package fluid

// Palette is a named set of colours. The first colour doubles as the scene
// background.
type Palette struct {
	Name     string
	Colors   []string
	Included bool
}

// Background returns the palette's background colour.
func (p Palette) Background() string {
	if len(p.Colors) == 0 {
		return "#000"
	}
	return p.Colors[0]
}

// DefaultPalettes is the palette pool of a default configuration.
var DefaultPalettes = []Palette{
	{Name: "Ink", Colors: []string{"#0B0B0F", "#1D3557", "#457B9D", "#A8DADC", "#F1FAEE"}, Included: true},
	{Name: "Ember", Colors: []string{"#120907", "#6A040F", "#D00000", "#F48C06", "#FFBA08"}, Included: true},
	{Name: "Lagoon", Colors: []string{"#031A1F", "#05668D", "#028090", "#00A896", "#F0F3BD"}, Included: true},
	{Name: "Bone", Colors: []string{"#F2EFE9", "#BFB8AD", "#827B70", "#3D3A35", "#151412"}, Included: true},
	{Name: "Neon", Colors: []string{"#000000", "#FF00A0", "#00F0FF", "#C8FF00", "#FFFFFF"}, Included: false},
}
