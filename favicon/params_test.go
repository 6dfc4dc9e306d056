package favicon

import "testing"

func TestWithDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   Params
		want Params
	}{
		{
			name: "all empty",
			in:   Params{},
			want: Params{Name: "My App", ShortName: "App", ThemeColor: "#ffffff", BackgroundColor: "#ffffff", TileColor: "#ffffff"},
		},
		{
			name: "tile follows theme",
			in:   Params{ThemeColor: "#000000"},
			want: Params{Name: "My App", ShortName: "App", ThemeColor: "#000000", BackgroundColor: "#ffffff", TileColor: "#000000"},
		},
		{
			name: "values kept verbatim",
			in:   Params{Name: "Shop", ShortName: "S", ThemeColor: "red", BackgroundColor: "???", TileColor: "#abc"},
			want: Params{Name: "Shop", ShortName: "S", ThemeColor: "red", BackgroundColor: "???", TileColor: "#abc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.WithDefaults(); got != tt.want {
				t.Errorf("WithDefaults() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSpecsTable(t *testing.T) {
	specs := Specs()
	if len(specs) != 24 {
		t.Fatalf("Expected 24 icon specs, got %d", len(specs))
	}

	seen := make(map[string]bool)
	for _, spec := range specs {
		if seen[spec.Name] {
			t.Errorf("Duplicate filename %s", spec.Name)
		}
		seen[spec.Name] = true
		if spec.Size < 16 || spec.Size > 1024 {
			t.Errorf("%s has out of range size %d", spec.Name, spec.Size)
		}
	}

	// Callers get a copy.
	specs[0].Name = "changed.png"
	if Specs()[0].Name != "favicon-16x16.png" {
		t.Error("Specs() exposes the package table")
	}
}
