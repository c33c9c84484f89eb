package chartimg

import (
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type legendEntry struct {
	label string
	style chart.Style
	dot   bool
}

// legend draws an upper-right legend box. Unlike chart.Legend it lists
// entries independent of which series ended up visible in the window.
func legend(entries []legendEntry) chart.Renderable {
	return func(r chart.Renderer, box chart.Box, defaults chart.Style) {
		if len(entries) == 0 {
			return
		}

		const (
			pad      = 8
			swatch   = 24
			gap      = 6
			fontSize = 9.0
		)

		r.SetFont(defaults.GetFont())
		r.SetFontSize(fontSize)
		r.SetFontColor(chart.ColorBlack)

		textW, textH := 0, 0
		for _, e := range entries {
			tb := r.MeasureText(e.label)
			textW = max(textW, tb.Width())
			textH = max(textH, tb.Height())
		}
		rowH := textH + gap

		width := pad*2 + swatch + gap + textW
		height := pad*2 + rowH*len(entries) - gap
		right := box.Right - pad
		left := right - width
		top := box.Top + pad
		bottom := top + height

		r.SetFillColor(drawing.Color{R: 0xff, G: 0xff, B: 0xff, A: 0xe0})
		r.SetStrokeColor(chart.ColorAlternateGray)
		r.SetStrokeWidth(1)
		r.MoveTo(left, top)
		r.LineTo(right, top)
		r.LineTo(right, bottom)
		r.LineTo(left, bottom)
		r.LineTo(left, top)
		r.Close()
		r.FillStroke()
		r.ResetStyle()

		for i, e := range entries {
			mid := top + pad + i*rowH + textH/2
			sx := left + pad

			if e.dot {
				r.SetFillColor(e.style.FillColor)
				r.SetStrokeColor(e.style.StrokeColor)
				r.SetStrokeWidth(1)
				r.Circle(float64(textH)/2, sx+swatch/2, mid)
				r.FillStroke()
			} else {
				r.SetStrokeColor(e.style.StrokeColor)
				r.SetStrokeWidth(e.style.StrokeWidth)
				r.SetStrokeDashArray(e.style.StrokeDashArray)
				r.MoveTo(sx, mid)
				r.LineTo(sx+swatch, mid)
				r.Stroke()
			}
			r.ResetStyle()

			r.SetFont(defaults.GetFont())
			r.SetFontSize(fontSize)
			r.SetFontColor(chart.ColorBlack)
			r.Text(e.label, sx+swatch+gap, mid+textH/2)
		}
	}
}
