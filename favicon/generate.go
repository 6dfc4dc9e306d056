package favicon

import (
	"fmt"
	"image"
	"reflect"
	"sort"
	"time"
)

// Bundle maps output filenames to their contents.
type Bundle map[string][]byte

// Names returns the filenames in the bundle, sorted.
func (b Bundle) Names() []string {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Result is one generated favicon set.
type Result struct {
	// Name is the suggested archive filename, favicons-<unix>.zip.
	Name    string
	Files   Bundle
	Created time.Time
}

// Generator runs the icon pipeline.
type Generator struct {
	now func() time.Time
}

// NewGenerator creates a generator stamping results with the wall clock.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// Generate renders the complete icon set for src. A nil src, including a
// nil pointer of a concrete image type, yields a nil Result and no error:
// there is nothing to generate.
func (g *Generator) Generate(src image.Image, p Params) (*Result, error) {
	if isNilImage(src) {
		return nil, nil
	}

	working, err := Normalize(src)
	if err != nil {
		return nil, err
	}
	p = p.WithDefaults()

	files := make(Bundle, len(iconSpecs)+6)

	for _, spec := range iconSpecs {
		data, err := renderPNG(working, spec.Size)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", spec.Name, err)
		}
		files[spec.Name] = data
	}

	if data, ok := files[appleTouchSource]; ok {
		files[AppleTouchIcon] = data
	} else {
		data, err := renderPNG(working, appleTouchSize)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", AppleTouchIcon, err)
		}
		files[AppleTouchIcon] = data
	}

	ico, err := renderICO(working)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", FaviconICO, err)
	}
	files[FaviconICO] = ico

	manifest, err := NewManifest(p).Encode()
	if err != nil {
		return nil, err
	}
	files[WebManifest] = manifest
	files[ManifestJSON] = manifest

	files[BrowserConfig] = BrowserConfigXML(p.TileColor)
	files[Readme] = ReadmeText(p.Name, p.ThemeColor)

	created := g.now()
	return &Result{
		Name:    ArchiveName(created),
		Files:   files,
		Created: created,
	}, nil
}

func isNilImage(src image.Image) bool {
	if src == nil {
		return true
	}
	v := reflect.ValueOf(src)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return v.IsNil()
	}
	return false
}

// Generate runs the pipeline with a wall-clock generator.
func Generate(src image.Image, p Params) (*Result, error) {
	return NewGenerator().Generate(src, p)
}
