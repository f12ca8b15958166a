package violin

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// DefaultCut extends the density grid this many bandwidths past the data
	DefaultCut = 2.0
	// DefaultGridSize is the number of points the density is evaluated at
	DefaultGridSize = 100
)

var errNoValues = errors.New("violin: no values")

// Density is a kernel density estimate evaluated on an evenly spaced grid.
// A degenerate estimate (one distinct value) has a single support point and no density.
type Density struct {
	Support []float64
	Density []float64
}

// Degenerate reports whether the data had no spread to estimate
func (d Density) Degenerate() bool {
	return len(d.Density) == 0
}

// Max returns the largest density value
func (d Density) Max() float64 {
	if d.Degenerate() {
		return 0
	}
	return floats.Max(d.Density)
}

// KDE is a Gaussian kernel density estimator
type KDE struct {
	// Bandwidth of the kernel; zero selects Scott's rule
	Bandwidth float64
	Cut       float64
	GridSize  int
}

// ScottBandwidth returns σ·n^(-1/5) for xs, using the sample standard deviation
func ScottBandwidth(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.StdDev(xs, nil) * math.Pow(float64(len(xs)), -1.0/5.0)
}

// Estimate evaluates the density of xs
func (k KDE) Estimate(xs []float64) (Density, error) {
	if len(xs) == 0 {
		return Density{}, errNoValues
	}

	lo, hi := floats.Min(xs), floats.Max(xs)
	bw := k.Bandwidth
	if bw == 0 {
		bw = ScottBandwidth(xs)
	}
	if lo == hi || bw == 0 {
		return Density{Support: []float64{lo}}, nil
	}

	cut, size := k.Cut, k.GridSize
	if cut == 0 {
		cut = DefaultCut
	}
	if size < 2 {
		size = DefaultGridSize
	}

	support := make([]float64, size)
	floats.Span(support, lo-cut*bw, hi+cut*bw)

	kernel := distuv.Normal{Mu: 0, Sigma: 1}
	norm := 1 / (float64(len(xs)) * bw)
	density := make([]float64, size)
	for i, y := range support {
		var sum float64
		for _, x := range xs {
			sum += kernel.Prob((y - x) / bw)
		}
		density[i] = sum * norm
	}

	return Density{Support: support, Density: density}, nil
}

// Summary holds the quartiles and whisker ends drawn inside a violin
type Summary struct {
	Q1, Median, Q3 float64

	// Whiskers end at the furthest observations within 1.5·IQR of the box
	LowWhisker, HighWhisker float64
}

// Summarize computes the inner box statistics of xs
func Summarize(xs []float64) (Summary, error) {
	if len(xs) == 0 {
		return Summary{}, errNoValues
	}

	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	s := Summary{
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q3:     quantile(sorted, 0.75),
	}

	reach := 1.5 * (s.Q3 - s.Q1)
	s.LowWhisker, s.HighWhisker = s.Q1, s.Q3
	for _, x := range sorted {
		if x >= s.Q1-reach {
			s.LowWhisker = x
			break
		}
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i] <= s.Q3+reach {
			s.HighWhisker = sorted[i]
			break
		}
	}
	return s, nil
}

// quantile interpolates linearly between the closest ranks, h = (n-1)·p
func quantile(sorted []float64, p float64) float64 {
	h := float64(len(sorted)-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}
