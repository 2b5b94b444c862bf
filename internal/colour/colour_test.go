package colour

import (
	"errors"
	"testing"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		alpha   float64
		wantErr bool
	}{
		{name: "valid opaque", r: 10, g: 20, b: 30, alpha: 1.0, wantErr: false},
		{name: "valid translucent", r: 0, g: 0, b: 0, alpha: 0.5, wantErr: false},
		{name: "valid boundaries", r: 255, g: 0, b: 255, alpha: 0.0, wantErr: false},
		{name: "red too large", r: 256, g: 0, b: 0, alpha: 1.0, wantErr: true},
		{name: "red negative", r: -1, g: 0, b: 0, alpha: 1.0, wantErr: true},
		{name: "green too large", r: 0, g: 300, b: 0, alpha: 1.0, wantErr: true},
		{name: "blue negative", r: 0, g: 0, b: -5, alpha: 1.0, wantErr: true},
		{name: "alpha too large", r: 0, g: 0, b: 0, alpha: 1.5, wantErr: true},
		{name: "alpha negative", r: 0, g: 0, b: 0, alpha: -0.1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.r, tt.g, tt.b, tt.alpha)
			if tt.wantErr {
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("New(%d, %d, %d, %v) error = %v, want ValidationError",
						tt.r, tt.g, tt.b, tt.alpha, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%d, %d, %d, %v) unexpected error: %v",
					tt.r, tt.g, tt.b, tt.alpha, err)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		name   string
		colour Colour
		want   string
	}{
		{
			name:   "opaque",
			colour: Colour{R: 26, G: 43, B: 60, Alpha: 1.0},
			want:   "#1a2b3c",
		},
		{
			name:   "opaque black",
			colour: Colour{R: 0, G: 0, B: 0, Alpha: 1.0},
			want:   "#000000",
		},
		{
			name:   "translucent carries alpha byte first",
			colour: Colour{R: 10, G: 20, B: 30, Alpha: 128.0 / 255.0},
			want:   "#800a141e",
		},
		{
			name:   "fully transparent",
			colour: Colour{R: 255, G: 255, B: 255, Alpha: 0.0},
			want:   "#00ffffff",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.colour.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRGBString(t *testing.T) {
	tests := []struct {
		name   string
		colour Colour
		want   string
	}{
		{
			name:   "opaque",
			colour: Colour{R: 10, G: 20, B: 30, Alpha: 1.0},
			want:   "rgb(10, 20, 30)",
		},
		{
			name:   "translucent",
			colour: Colour{R: 10, G: 20, B: 30, Alpha: 0.5},
			want:   "rgba(10, 20, 30, 0.5)",
		},
		{
			name:   "fully transparent",
			colour: Colour{R: 0, G: 0, B: 0, Alpha: 0.0},
			want:   "rgba(0, 0, 0, 0)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.colour.RGBString(); got != tt.want {
				t.Errorf("RGBString() = %q, want %q", got, tt.want)
			}
			if got := tt.colour.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	black := Colour{R: 0, G: 0, B: 0, Alpha: 1.0}
	tests := []struct {
		name string
		a, b Colour
		want float64
	}{
		{name: "identical", a: black, b: black, want: 0},
		{name: "single axis", a: black, b: Colour{R: 10, Alpha: 1.0}, want: 10},
		{name: "pythagorean", a: black, b: Colour{R: 3, G: 4, Alpha: 1.0}, want: 5},
		{
			name: "alpha ignored",
			a:    Colour{R: 3, G: 4, Alpha: 1.0},
			b:    Colour{R: 3, G: 4, Alpha: 0.2},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Distance(tt.b); got != tt.want {
				t.Errorf("Distance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMostSimilar(t *testing.T) {
	black := Colour{R: 0, G: 0, B: 0, Alpha: 1.0}
	white := Colour{R: 255, G: 255, B: 255, Alpha: 1.0}

	t.Run("nearest entry wins", func(t *testing.T) {
		palette := NewPalette([]Colour{black, white})
		query := Colour{R: 10, G: 20, B: 30, Alpha: 1.0}
		if got := query.MostSimilar(palette); got != black {
			t.Errorf("MostSimilar() = %v, want %v", got, black)
		}
		query = Colour{R: 200, G: 200, B: 200, Alpha: 1.0}
		if got := query.MostSimilar(palette); got != white {
			t.Errorf("MostSimilar() = %v, want %v", got, white)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		palette := NewPalette([]Colour{black, white, {R: 128, G: 128, B: 128, Alpha: 1.0}})
		query := Colour{R: 100, G: 100, B: 100, Alpha: 1.0}
		first := query.MostSimilar(palette)
		for i := 0; i < 10; i++ {
			if got := query.MostSimilar(palette); got != first {
				t.Fatalf("MostSimilar() returned %v after %v", got, first)
			}
		}
	})

	t.Run("first entry wins ties", func(t *testing.T) {
		low := Colour{R: 0, G: 0, B: 0, Alpha: 1.0}
		high := Colour{R: 20, G: 0, B: 0, Alpha: 1.0}
		palette := NewPalette([]Colour{low, high})
		// Equidistant from both entries.
		query := Colour{R: 10, G: 0, B: 0, Alpha: 1.0}
		if got := query.MostSimilar(palette); got != low {
			t.Errorf("MostSimilar() = %v, want first entry %v", got, low)
		}
	})

	t.Run("empty palette returns receiver", func(t *testing.T) {
		query := Colour{R: 1, G: 2, B: 3, Alpha: 0.5}
		if got := query.MostSimilar(NewPalette(nil)); got != query {
			t.Errorf("MostSimilar(empty) = %v, want %v", got, query)
		}
		if got := query.MostSimilar(nil); got != query {
			t.Errorf("MostSimilar(nil) = %v, want %v", got, query)
		}
	})
}
