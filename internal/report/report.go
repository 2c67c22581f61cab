// Package report renders a self-contained snapshot of one order for sharing
// with the customer, as an HTML document suitable for print-to-PDF and as an
// SVG progress card. Rendering is purely derived from the order aggregate;
// the estimated completion date is supplied by the caller.
package report

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"printshop/internal/model"
	"printshop/internal/timefmt"
	"printshop/internal/whatsapp"
)

// Data is everything the renderer needs for one order snapshot.
type Data struct {
	Order               model.Order
	Customer            model.Customer
	Prints              []model.Print
	EstimatedCompletion *time.Time
}

type printRow struct {
	Name     string
	Quantity int
	Material string
	Time     string
	Status   string
}

type reportView struct {
	Number         string
	Status         string
	Invoice        string
	CreatedAt      string
	CustomerName   string
	CustomerPhone  string
	CustomerEmail  string
	PrintCount     int
	TotalParts     int
	TotalTime      string
	Rows           []printRow
	CompletedCount int
	Percent        int
	RemainingTime  string
	IsCompleted    bool
	CompletionDate string
}

func buildView(d Data) reportView {
	v := reportView{
		Number:        d.Order.Number,
		Status:        whatsapp.StatusLabel(string(d.Order.Status)),
		CreatedAt:     d.Order.CreatedAt.Format("02 Jan 2006"),
		CustomerName:  d.Customer.Name,
		CustomerPhone: d.Customer.Phone,
		PrintCount:    len(d.Prints),
		TotalTime:     timefmt.FormatDuration(d.Order.TotalEstimatedHours),
		IsCompleted:   d.Order.Status == model.OrderCompleted,
	}

	if d.Customer.Email != nil {
		v.CustomerEmail = *d.Customer.Email
	}

	if d.Order.InvoiceNumber != nil {
		v.Invoice = *d.Order.InvoiceNumber
	} else {
		v.Invoice = "INV-" + d.Order.Number
	}

	var remaining float64
	for _, p := range d.Prints {
		v.TotalParts += p.Quantity
		if p.Status == model.PrintCompleted {
			v.CompletedCount++
		} else {
			remaining += p.EstimatedHours
		}
		v.Rows = append(v.Rows, printRow{
			Name:     p.Name,
			Quantity: p.Quantity,
			Material: p.Material,
			Time:     timefmt.FormatDuration(p.EstimatedHours),
			Status:   whatsapp.StatusLabel(string(p.Status)),
		})
	}

	if v.PrintCount > 0 {
		v.Percent = int(float64(v.CompletedCount)/float64(v.PrintCount)*100 + 0.5)
	}
	v.RemainingTime = timefmt.FormatDuration(remaining)

	if !v.IsCompleted && d.EstimatedCompletion != nil {
		v.CompletionDate = d.EstimatedCompletion.Format("02 Jan 2006")
	}

	return v
}

var htmlTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Order {{.Number}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #222; }
h1 { font-size: 1.4rem; }
table { border-collapse: collapse; width: 100%; margin: 1rem 0; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.6rem; text-align: left; }
th { background: #f2f2f2; }
.meta { color: #555; font-size: 0.9rem; }
.footer { margin-top: 1.5rem; font-weight: bold; }
</style>
</head>
<body>
<h1>Order {{.Number}}</h1>
<p class="meta">Created {{.CreatedAt}} &middot; Invoice {{.Invoice}} &middot; Status: {{.Status}}</p>

<h2>Customer</h2>
<p>{{.CustomerName}}<br>{{.CustomerPhone}}{{if .CustomerEmail}}<br>{{.CustomerEmail}}{{end}}</p>

<h2>Summary</h2>
<p>{{.PrintCount}} print jobs &middot; {{.TotalParts}} parts &middot; estimated total time {{.TotalTime}}</p>

<table>
<tr><th>Job</th><th>Qty</th><th>Material</th><th>Time</th><th>Status</th></tr>
{{range .Rows}}<tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>{{.Material}}</td><td>{{.Time}}</td><td>{{.Status}}</td></tr>
{{end}}</table>

<p class="footer">
{{.CompletedCount}}/{{.PrintCount}} prints completed ({{.Percent}}%), {{.RemainingTime}} remaining.
{{if .IsCompleted}}This order is complete. Thank you for your business!{{else}}{{if .CompletionDate}}Estimated completion: {{.CompletionDate}}.{{end}}{{end}}
</p>
</body>
</html>
`))

// RenderHTML writes the HTML report for one order.
func RenderHTML(w io.Writer, d Data) error {
	if err := htmlTmpl.Execute(w, buildView(d)); err != nil {
		return fmt.Errorf("render order report: %w", err)
	}
	return nil
}
