package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"printshop/internal/model"
)

func sampleData() Data {
	email := "maria@example.com"
	return Data{
		Order: model.Order{
			Number:              "PS-20260115-A3F9",
			Status:              model.OrderInProgress,
			TotalEstimatedHours: 5,
			CreatedAt:           time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
		},
		Customer: model.Customer{Name: "Maria", Phone: "+491701234567", Email: &email},
		Prints: []model.Print{
			{Name: "Bracket (4 pieces, 2 plates)", Quantity: 4, Material: "PLA", EstimatedHours: 2, Status: model.PrintCompleted},
			{Name: "Hook (10 pieces, 5 plates)", Quantity: 10, Material: "PLA", EstimatedHours: 3, Status: model.PrintQueued},
		},
	}
}

func TestRenderHTML(t *testing.T) {
	var b strings.Builder
	require.NoError(t, RenderHTML(&b, sampleData()))
	html := b.String()

	assert.Contains(t, html, "Order PS-20260115-A3F9")
	assert.Contains(t, html, "Maria")
	assert.Contains(t, html, "maria@example.com")
	assert.Contains(t, html, "2 print jobs")
	assert.Contains(t, html, "14 parts")
	assert.Contains(t, html, "5h 0m 0s")
	assert.Contains(t, html, "Bracket (4 pieces, 2 plates)")
	assert.Contains(t, html, "1/2 prints completed (50%)")
	assert.Contains(t, html, "3h 0m 0s remaining")
	// Generated invoice display when no invoice number is set.
	assert.Contains(t, html, "INV-PS-20260115-A3F9")
}

func TestRenderHTML_EstimatedCompletionDate(t *testing.T) {
	d := sampleData()
	eta := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)
	d.EstimatedCompletion = &eta

	var b strings.Builder
	require.NoError(t, RenderHTML(&b, d))
	assert.Contains(t, b.String(), "Estimated completion: 20 Jan 2026")
}

func TestRenderHTML_CompletedOrder(t *testing.T) {
	d := sampleData()
	d.Order.Status = model.OrderCompleted
	d.Prints[1].Status = model.PrintCompleted
	eta := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)
	d.EstimatedCompletion = &eta

	var b strings.Builder
	require.NoError(t, RenderHTML(&b, d))
	html := b.String()

	// Completion message replaces the estimated date.
	assert.Contains(t, html, "This order is complete")
	assert.NotContains(t, html, "Estimated completion")
	assert.Contains(t, html, "2/2 prints completed (100%)")
}

func TestRenderSVG(t *testing.T) {
	var b strings.Builder
	require.NoError(t, RenderSVG(&b, sampleData()))
	svg := b.String()

	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "PS-20260115-A3F9")
	assert.Contains(t, svg, `width="180"`) // 50% of the 360px track
	assert.Contains(t, svg, "1/2 prints completed (50%)")
}
