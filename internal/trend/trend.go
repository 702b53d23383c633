// Package trend fits an ordinary least-squares line over numeric chart
// coordinates.
package trend

import "math"

// Line is a fitted trend line over the X domain [DomainMin, DomainMax].
type Line struct {
	Slope     float64
	Intercept float64
	DomainMin float64
	DomainMax float64
}

// Fit computes the least-squares line for parallel X/Y coordinates.
// It returns false when no trend is defined: fewer than two points, or
// zero X variance (all X identical). A degenerate fit is detected here so
// NaN or Inf never reaches rendering.
func Fit(xs, ys []float64) (Line, bool) {
	n := len(xs)
	if n < 2 || len(ys) != n {
		return Line{}, false
	}

	var sumX, sumY, sumXY, sumXX float64
	minX, maxX := xs[0], xs[0]
	for i := 0; i < n; i++ {
		x, y := xs[i], ys[i]
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
	}

	denom := float64(n)*sumXX - sumX*sumX
	if denom == 0 {
		return Line{}, false
	}

	slope := (float64(n)*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / float64(n)
	if !isFinite(slope) || !isFinite(intercept) {
		return Line{}, false
	}

	return Line{
		Slope:     slope,
		Intercept: intercept,
		DomainMin: minX,
		DomainMax: maxX,
	}, true
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// Endpoints returns the two points that represent the line for rendering,
// evaluated at the domain bounds.
func (l Line) Endpoints() (xs, ys [2]float64) {
	xs = [2]float64{l.DomainMin, l.DomainMax}
	ys = [2]float64{l.At(l.DomainMin), l.At(l.DomainMax)}
	return xs, ys
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
