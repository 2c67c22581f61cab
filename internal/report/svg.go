package report

import (
	"fmt"
	"html/template"
	"io"
)

// The SVG card is a fixed-size vector summary of the order: number, status,
// and a progress bar. Width of the inner bar scales with the completion
// percentage over a 360px track.
var svgTmpl = template.Must(template.New("svg").Parse(`<svg xmlns="http://www.w3.org/2000/svg" width="400" height="140" viewBox="0 0 400 140">
<rect x="0" y="0" width="400" height="140" rx="8" fill="#ffffff" stroke="#cccccc"/>
<text x="20" y="32" font-family="sans-serif" font-size="16" font-weight="bold" fill="#222222">Order {{.Number}}</text>
<text x="20" y="56" font-family="sans-serif" font-size="12" fill="#555555">{{.CustomerName}} &#183; {{.Status}}</text>
<rect x="20" y="72" width="360" height="14" rx="7" fill="#eeeeee"/>
<rect x="20" y="72" width="{{.BarWidth}}" height="14" rx="7" fill="{{.BarColor}}"/>
<text x="20" y="108" font-family="sans-serif" font-size="12" fill="#222222">{{.CompletedCount}}/{{.PrintCount}} prints completed ({{.Percent}}%)</text>
<text x="20" y="126" font-family="sans-serif" font-size="12" fill="#555555">{{if .IsCompleted}}Completed{{else}}{{.RemainingTime}} remaining{{end}}</text>
</svg>
`))

type svgView struct {
	reportView
	BarWidth int
	BarColor string
}

// RenderSVG writes the SVG progress card for one order.
func RenderSVG(w io.Writer, d Data) error {
	v := buildView(d)

	sv := svgView{
		reportView: v,
		BarWidth:   v.Percent * 360 / 100,
		BarColor:   "#2f80ed",
	}
	if v.IsCompleted {
		sv.BarColor = "#27ae60"
	}

	if err := svgTmpl.Execute(w, sv); err != nil {
		return fmt.Errorf("render order svg: %w", err)
	}
	return nil
}
