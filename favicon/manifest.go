package favicon

import (
	"encoding/json"
	"fmt"
)

// Manifest is the web app manifest written to site.webmanifest and
// manifest.json.
type Manifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	StartURL        string         `json:"start_url"`
	Display         string         `json:"display"`
	BackgroundColor string         `json:"background_color"`
	ThemeColor      string         `json:"theme_color"`
	Icons           []ManifestIcon `json:"icons"`
}

type ManifestIcon struct {
	Src     string `json:"src"`
	Sizes   string `json:"sizes"`
	Type    string `json:"type"`
	Purpose string `json:"purpose,omitempty"`
}

// NewManifest lists every PNG of at most 512px, then the maskable 512
// Android icon. p is used as given; callers apply WithDefaults first.
func NewManifest(p Params) Manifest {
	icons := make([]ManifestIcon, 0, len(iconSpecs)+1)
	for _, spec := range iconSpecs {
		if spec.Size > maxManifestSize {
			continue
		}
		icons = append(icons, ManifestIcon{
			Src:   spec.Name,
			Sizes: sizesAttr(spec.Size),
			Type:  "image/png",
		})
	}
	icons = append(icons, ManifestIcon{
		Src:     maskableIcon,
		Sizes:   sizesAttr(maxManifestSize),
		Type:    "image/png",
		Purpose: "any maskable",
	})

	return Manifest{
		Name:            p.Name,
		ShortName:       p.ShortName,
		StartURL:        "/",
		Display:         "standalone",
		BackgroundColor: p.BackgroundColor,
		ThemeColor:      p.ThemeColor,
		Icons:           icons,
	}
}

// Encode serializes the manifest with two-space indentation.
func (m Manifest) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	return data, nil
}

func sizesAttr(size int) string {
	return fmt.Sprintf("%dx%d", size, size)
}
