package domain

// Color is an RGBA color, kept here so renderers agree on the palette.
type Color struct {
	R, G, B, A uint8
}

var (
	ColorBlue   = Color{R: 0x1f, G: 0x3f, B: 0xff, A: 0x80}
	ColorGreen  = Color{R: 0x00, G: 0x80, B: 0x00, A: 0x80}
	ColorOrange = Color{R: 0xff, G: 0xa5, B: 0x00, A: 0x80}
	ColorBlack  = Color{A: 0xff}
	ColorGray   = Color{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	ColorRed    = Color{R: 0xff, A: 0xff}
	ColorWhite  = Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	// ColorRegion is the translucent fill of the feasible mask.
	ColorRegion = Color{R: 0x6b, G: 0xae, B: 0xd6, A: 0x4d}
)

// Window is the visible plot area.
type Window struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Contains reports whether (x, y) is inside the window, edges included.
func (w Window) Contains(x, y float64) bool {
	return x >= w.XMin && x <= w.XMax && y >= w.YMin && y <= w.YMax
}

// Grid is a dense sample of the plane with a feasibility tag per point.
// Mask is indexed [row][col] where rows follow Ys and columns follow Xs.
type Grid struct {
	Xs   []float64
	Ys   []float64
	Mask [][]bool
}

// Extent reports the sampled area, matching the image extent of the mask.
func (g Grid) Extent() Window {
	if len(g.Xs) == 0 || len(g.Ys) == 0 {
		return Window{}
	}
	return Window{
		XMin: g.Xs[0], XMax: g.Xs[len(g.Xs)-1],
		YMin: g.Ys[0], YMax: g.Ys[len(g.Ys)-1],
	}
}

// FeasibleCount returns the number of feasible samples.
func (g Grid) FeasibleCount() int {
	n := 0
	for _, row := range g.Mask {
		for _, ok := range row {
			if ok {
				n++
			}
		}
	}
	return n
}

// At returns the mask value of the sample nearest to (x, y), false outside the extent.
func (g Grid) At(x, y float64) bool {
	col, ok := nearest(g.Xs, x)
	if !ok {
		return false
	}
	row, ok := nearest(g.Ys, y)
	if !ok {
		return false
	}
	return g.Mask[row][col]
}

func nearest(vals []float64, v float64) (int, bool) {
	n := len(vals)
	if n == 0 || v < vals[0] || v > vals[n-1] {
		return 0, false
	}
	if n == 1 {
		return 0, true
	}
	step := (vals[n-1] - vals[0]) / float64(n-1)
	if step == 0 {
		return 0, true
	}
	i := int((v-vals[0])/step + 0.5)
	if i >= n {
		i = n - 1
	}
	return i, true
}

// Line is a constraint boundary drawn as y = f(x) over the sampled xs.
type Line struct {
	Label      string
	Constraint Constraint
	Color      Color
	Xs         []float64
	Ys         []float64
}

// Orientation of a reference line.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// RefLine is an axis or bound limit line.
type RefLine struct {
	Label       string // empty for the axes
	Orientation Orientation
	At          float64
	Color       Color
	Dashed      bool
	Width       float64
}

// Marker is the optimal-point dot.
type Marker struct {
	Label  string
	Point  Point
	Fill   Color
	Border Color
	Size   float64
}

// Chart is the full render description: a pure value, no drawing state.
type Chart struct {
	Params   Params
	Grid     Grid
	Region   Color
	Lines    []Line
	RefLines []RefLine
	Marker   *Marker
	Window   Window
	XLabel   string
	YLabel   string
}
