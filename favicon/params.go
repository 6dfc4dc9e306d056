package favicon

// Fallbacks for empty generation parameters.
const (
	DefaultName       = "My App"
	DefaultShortName  = "App"
	DefaultThemeColor = "#ffffff"
	DefaultBackground = "#ffffff"
)

// Params holds the user supplied text for the manifest, tile config and
// README. Colors are not validated and are written out verbatim.
type Params struct {
	Name            string
	ShortName       string
	ThemeColor      string
	BackgroundColor string
	TileColor       string
}

// WithDefaults returns a copy of p with every empty field filled in.
// An empty tile color follows the (defaulted) theme color.
func (p Params) WithDefaults() Params {
	if p.Name == "" {
		p.Name = DefaultName
	}
	if p.ShortName == "" {
		p.ShortName = DefaultShortName
	}
	if p.ThemeColor == "" {
		p.ThemeColor = DefaultThemeColor
	}
	if p.BackgroundColor == "" {
		p.BackgroundColor = DefaultBackground
	}
	if p.TileColor == "" {
		p.TileColor = p.ThemeColor
	}
	return p
}
