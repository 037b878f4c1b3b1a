// Package outcome converts batted-ball quality into expected statistics.
package outcome

// Surface maps (exit velocity, launch angle) to outcome probabilities. It is
// a pluggable capability: the default is a fixed interpolation grid, but a
// richer statistical model can be injected without touching the scoring
// logic.
type Surface interface {
	// HitProbability estimates the chance the batted ball falls for a hit.
	HitProbability(exitVelocity, launchAngle float64) float64

	// ExtraBaseProbability estimates the chance of an extra-base hit. Always
	// at most the hit probability.
	ExtraBaseProbability(exitVelocity, launchAngle float64) float64
}

// Grid axes for the default surface. Probabilities rise monotonically with
// exit velocity at every launch angle and peak in the 10-25 degree band,
// consistent with observed batted-ball outcomes. Values outside the grid
// clamp to the nearest edge.
var (
	evAxis = []float64{50, 70, 85, 95, 105, 115}
	laAxis = []float64{-90, -20, 0, 12, 25, 40, 60, 90}

	hitGrid = [][]float64{
		// la:  -90    -20     0     12     25     40     60     90
		{0.02, 0.08, 0.12, 0.15, 0.12, 0.06, 0.03, 0.01}, // ev 50
		{0.03, 0.12, 0.22, 0.28, 0.22, 0.10, 0.05, 0.02}, // ev 70
		{0.05, 0.20, 0.32, 0.40, 0.35, 0.18, 0.08, 0.03}, // ev 85
		{0.08, 0.28, 0.42, 0.55, 0.52, 0.30, 0.12, 0.04}, // ev 95
		{0.10, 0.35, 0.50, 0.68, 0.70, 0.45, 0.18, 0.05}, // ev 105
		{0.12, 0.40, 0.55, 0.78, 0.82, 0.55, 0.22, 0.06}, // ev 115
	}

	xbhGrid = [][]float64{
		// la:  -90    -20     0     12     25     40     60     90
		{0.00, 0.01, 0.02, 0.03, 0.03, 0.01, 0.00, 0.00}, // ev 50
		{0.00, 0.02, 0.05, 0.08, 0.08, 0.03, 0.01, 0.00}, // ev 70
		{0.01, 0.05, 0.10, 0.15, 0.16, 0.07, 0.02, 0.00}, // ev 85
		{0.01, 0.08, 0.16, 0.26, 0.28, 0.13, 0.04, 0.01}, // ev 95
		{0.02, 0.10, 0.20, 0.36, 0.40, 0.20, 0.06, 0.01}, // ev 105
		{0.02, 0.12, 0.24, 0.44, 0.50, 0.26, 0.08, 0.01}, // ev 115
	}
)

// GridSurface is the default Surface: bilinear interpolation over a fixed
// probability grid.
type GridSurface struct {
	ev, la   []float64
	hit, xbh [][]float64
}

// DefaultSurface returns the built-in probability grid.
func DefaultSurface() *GridSurface {
	return &GridSurface{ev: evAxis, la: laAxis, hit: hitGrid, xbh: xbhGrid}
}

// HitProbability implements Surface.
func (g *GridSurface) HitProbability(exitVelocity, launchAngle float64) float64 {
	return bilinear(g.ev, g.la, g.hit, exitVelocity, launchAngle)
}

// ExtraBaseProbability implements Surface.
func (g *GridSurface) ExtraBaseProbability(exitVelocity, launchAngle float64) float64 {
	xbh := bilinear(g.ev, g.la, g.xbh, exitVelocity, launchAngle)
	hit := g.HitProbability(exitVelocity, launchAngle)
	if xbh > hit {
		return hit
	}
	return xbh
}

// bilinear interpolates grid[i][j] over (x in xs, y in ys), clamping to the
// grid edges.
func bilinear(xs, ys []float64, grid [][]float64, x, y float64) float64 {
	i, tx := segment(xs, x)
	j, ty := segment(ys, y)

	v00 := grid[i][j]
	v10 := grid[i+1][j]
	v01 := grid[i][j+1]
	v11 := grid[i+1][j+1]

	lo := v00 + tx*(v10-v00)
	hi := v01 + tx*(v11-v01)
	return lo + ty*(hi-lo)
}

// segment locates x within the axis and returns the lower index and the
// interpolation fraction in [0, 1]. Out-of-range values clamp to the ends.
func segment(axis []float64, x float64) (int, float64) {
	if x <= axis[0] {
		return 0, 0
	}
	last := len(axis) - 1
	if x >= axis[last] {
		return last - 1, 1
	}
	for i := 0; i < last; i++ {
		if x <= axis[i+1] {
			return i, (x - axis[i]) / (axis[i+1] - axis[i])
		}
	}
	return last - 1, 1
}
