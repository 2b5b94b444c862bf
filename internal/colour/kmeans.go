package colour

import (
	"fmt"
	"image"
	"math"
)

const (
	// maxSamples caps how many pixels are fed to the clustering loop.
	maxSamples = 5000
	// maxIterations bounds the k-means refinement loop.
	maxIterations = 20
	// convergence is the centroid movement below which iteration stops.
	convergence = 2.0
)

// FromImage extracts a palette of up to count colours from an image using
// k-means clustering over sampled pixels. Initial centroids are spread
// evenly through the sample, so extraction is deterministic for a given
// image and count.
func FromImage(img image.Image, count int) (*Palette, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", count)
	}
	if count > 256 {
		return nil, fmt.Errorf("colour count too large: %d (maximum: 256)", count)
	}

	samples := samplePixels(img)
	if len(samples) == 0 {
		return nil, fmt.Errorf("no pixels found in image")
	}

	unique := uniqueColours(samples)
	if count >= len(unique) {
		return NewPalette(unique), nil
	}

	centroids := kmeans(samples, count)

	colours := make([]Colour, len(centroids))
	for i, c := range centroids {
		colours[i] = Colour{
			R:     uint8(math.Round(c.r)),
			G:     uint8(math.Round(c.g)),
			B:     uint8(math.Round(c.b)),
			Alpha: 1.0,
		}
	}
	return NewPalette(colours), nil
}

// point3D is a point in RGB space during clustering.
type point3D struct {
	r, g, b float64
}

func (p point3D) distance(other point3D) float64 {
	dr := p.r - other.r
	dg := p.g - other.g
	db := p.b - other.b
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// samplePixels walks the image with a stride chosen to stay under
// maxSamples total pixels.
func samplePixels(img image.Image) []point3D {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil
	}

	stride := 1
	if total := width * height; total > maxSamples {
		stride = int(math.Ceil(math.Sqrt(float64(total) / float64(maxSamples))))
	}

	samples := make([]point3D, 0, maxSamples)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stride {
		for x := bounds.Min.X; x < bounds.Max.X; x += stride {
			r, g, b, _ := img.At(x, y).RGBA()
			samples = append(samples, point3D{
				r: float64(r >> 8),
				g: float64(g >> 8),
				b: float64(b >> 8),
			})
		}
	}
	return samples
}

// uniqueColours collapses samples to their distinct 8-bit colours,
// preserving first-seen order.
func uniqueColours(samples []point3D) []Colour {
	seen := make(map[Colour]bool)
	unique := make([]Colour, 0, len(samples))
	for _, p := range samples {
		c := Colour{R: uint8(p.r), G: uint8(p.g), B: uint8(p.b), Alpha: 1.0}
		if !seen[c] {
			seen[c] = true
			unique = append(unique, c)
		}
	}
	return unique
}

// kmeans clusters samples into count centroids. Initial centroids are taken
// at even offsets through the sample slice rather than at random, trading a
// little clustering quality for reproducible output.
func kmeans(samples []point3D, count int) []point3D {
	centroids := make([]point3D, count)
	step := len(samples) / count
	for i := range centroids {
		centroids[i] = samples[i*step]
	}

	assignments := make([]int, len(samples))
	for iter := 0; iter < maxIterations; iter++ {
		// Assign each sample to its nearest centroid.
		for i, p := range samples {
			best := 0
			bestDist := p.distance(centroids[0])
			for j := 1; j < len(centroids); j++ {
				if d := p.distance(centroids[j]); d < bestDist {
					best = j
					bestDist = d
				}
			}
			assignments[i] = best
		}

		// Recompute centroids as the mean of their members.
		sums := make([]point3D, count)
		counts := make([]int, count)
		for i, p := range samples {
			j := assignments[i]
			sums[j].r += p.r
			sums[j].g += p.g
			sums[j].b += p.b
			counts[j]++
		}

		moved := 0.0
		for j := range centroids {
			if counts[j] == 0 {
				continue
			}
			next := point3D{
				r: sums[j].r / float64(counts[j]),
				g: sums[j].g / float64(counts[j]),
				b: sums[j].b / float64(counts[j]),
			}
			moved += centroids[j].distance(next)
			centroids[j] = next
		}
		if moved < convergence {
			break
		}
	}
	return centroids
}
