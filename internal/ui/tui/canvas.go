package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/lpdash/internal/domain"
)

const (
	runeRegion = '░'
	runeLine   = '•'
	runeVert   = '│'
	runeVertD  = '┊'
	runeHorz   = '─'
	runeHorzD  = '╌'
	runeCross  = '┼'
	runeMarker = '●'
)

// cell is one character of the terminal chart.
type cell struct {
	r     rune
	color domain.Color
	set   bool
}

// raster is a character grid covering a chart window, row 0 on top.
type raster struct {
	w, h  int
	win   domain.Window
	cells [][]cell
}

func newRaster(w, h int, win domain.Window) *raster {
	cells := make([][]cell, h)
	for i := range cells {
		cells[i] = make([]cell, w)
	}
	return &raster{w: w, h: h, win: win, cells: cells}
}

func (r *raster) col(x float64) int {
	return int(math.Round((x - r.win.XMin) / (r.win.XMax - r.win.XMin) * float64(r.w-1)))
}

func (r *raster) row(y float64) int {
	return int(math.Round((r.win.YMax - y) / (r.win.YMax - r.win.YMin) * float64(r.h-1)))
}

// xAt returns the window x at the center of column c.
func (r *raster) xAt(c int) float64 {
	return r.win.XMin + float64(c)/float64(r.w-1)*(r.win.XMax-r.win.XMin)
}

func (r *raster) yAt(row int) float64 {
	return r.win.YMax - float64(row)/float64(r.h-1)*(r.win.YMax-r.win.YMin)
}

func (r *raster) put(row, col int, ch rune, c domain.Color) {
	if row < 0 || row >= r.h || col < 0 || col >= r.w {
		return
	}
	r.cells[row][col] = cell{r: ch, color: c, set: true}
}

// rasterize draws c into a w×h grid in the same z-order as the image renderer:
// region, constraint lines, reference lines, marker.
func rasterize(c domain.Chart, w, h int) *raster {
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}
	r := newRaster(w, h, c.Window)

	for row := 0; row < h; row++ {
		y := r.yAt(row)
		for col := 0; col < w; col++ {
			if c.Grid.At(r.xAt(col), y) {
				r.put(row, col, runeRegion, c.Region)
			}
		}
	}

	half := (c.Window.XMax - c.Window.XMin) / float64(w-1) / 2
	for _, l := range c.Lines {
		for col := 0; col < w; col++ {
			x := r.xAt(col)
			// Fill the rows spanned across the column so steep lines stay connected.
			r0 := r.row(l.Constraint.YAt(x - half))
			r1 := r.row(l.Constraint.YAt(x + half))
			if r0 > r1 {
				r0, r1 = r1, r0
			}
			if r1 < 0 || r0 >= h {
				continue
			}
			r0 = max(r0, 0)
			r1 = min(r1, h-1)
			for row := r0; row <= r1; row++ {
				r.put(row, col, runeLine, l.Color)
			}
		}
	}

	for _, ref := range c.RefLines {
		switch ref.Orientation {
		case domain.Vertical:
			col := r.col(ref.At)
			for row := 0; row < h; row++ {
				ch := runeVert
				if ref.Dashed && row%2 == 1 {
					ch = runeVertD
				}
				if r.cells[clampIdx(row, h)][clampIdx(col, w)].r == runeHorz {
					ch = runeCross
				}
				r.put(row, col, ch, ref.Color)
			}
		case domain.Horizontal:
			row := r.row(ref.At)
			for col := 0; col < w; col++ {
				ch := runeHorz
				if ref.Dashed && col%2 == 1 {
					ch = runeHorzD
				}
				if existing := r.cells[clampIdx(row, h)][clampIdx(col, w)].r; existing == runeVert || existing == runeVertD {
					ch = runeCross
				}
				r.put(row, col, ch, ref.Color)
			}
		}
	}

	if c.Marker != nil && c.Window.Contains(c.Marker.Point.X, c.Marker.Point.Y) {
		r.put(r.row(c.Marker.Point.Y), r.col(c.Marker.Point.X), runeMarker, c.Marker.Fill)
	}

	return r
}

func clampIdx(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Plain returns the raster without styling.
func (r *raster) Plain() string {
	var b strings.Builder
	for i, row := range r.cells {
		for _, c := range row {
			if c.set {
				b.WriteRune(c.r)
			} else {
				b.WriteByte(' ')
			}
		}
		if i < len(r.cells)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Styled renders the raster with lipgloss colors, one style per run of equal cells.
func (r *raster) Styled() string {
	lines := make([]string, 0, r.h)
	for _, row := range r.cells {
		var b strings.Builder
		i := 0
		for i < len(row) {
			j := i
			var run strings.Builder
			for j < len(row) && row[j].set == row[i].set && row[j].color == row[i].color {
				if row[j].set {
					run.WriteRune(row[j].r)
				} else {
					run.WriteByte(' ')
				}
				j++
			}
			if row[i].set {
				b.WriteString(lipgloss.NewStyle().Foreground(termColor(row[i].color)).Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			i = j
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// termColor maps the palette to terminal colors. Black follows the terminal
// background so axes stay visible on dark themes.
func termColor(c domain.Color) lipgloss.TerminalColor {
	if c == domain.ColorBlack {
		return lipgloss.AdaptiveColor{Light: "#000000", Dark: "#DDDDDD"}
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// renderChart draws c with tick labels along the left and bottom edges and a legend.
func renderChart(c domain.Chart, w, h int) string {
	const gutter = 6
	pw, ph := w-gutter, h-3
	if pw < 10 || ph < 4 {
		return "(terminal too small for the chart)"
	}

	r := rasterize(c, pw, ph)
	body := strings.Split(r.Styled(), "\n")

	var b strings.Builder
	for i, line := range body {
		label := ""
		if i == 0 || i == len(body)-1 || i == len(body)/2 {
			label = fmt.Sprintf("%.1f", r.yAt(i))
		}
		b.WriteString(fmt.Sprintf("%*s ", gutter-1, label))
		b.WriteString(line)
		b.WriteByte('\n')
	}

	left := fmt.Sprintf("%.1f", c.Window.XMin)
	right := fmt.Sprintf("%.1f", c.Window.XMax)
	pad := pw - len(left) - len(right)
	if pad < 1 {
		pad = 1
	}
	b.WriteString(strings.Repeat(" ", gutter) + left + strings.Repeat(" ", pad) + right + "\n")
	b.WriteString(strings.Repeat(" ", gutter) + legend(c))
	return b.String()
}

func legend(c domain.Chart) string {
	var parts []string
	for _, l := range c.Lines {
		parts = append(parts, lipgloss.NewStyle().Foreground(termColor(l.Color)).Render(string(runeLine)+" "+l.Label))
	}
	for _, ref := range c.RefLines {
		if ref.Label == "" {
			continue
		}
		parts = append(parts, lipgloss.NewStyle().Foreground(termColor(ref.Color)).Render(string(runeHorzD)+" "+ref.Label))
	}
	parts = append(parts, lipgloss.NewStyle().Foreground(termColor(c.Region)).Render(string(runeRegion)+" Feasible Region"))
	if c.Marker != nil {
		parts = append(parts, lipgloss.NewStyle().Foreground(termColor(c.Marker.Fill)).Render(string(runeMarker)+" "+c.Marker.Label))
	}
	return strings.Join(parts, "  ")
}
