package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"printshop/internal/model"
	"printshop/internal/service"
	"printshop/internal/stock"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStockHandler_Create_BulkQuantity(t *testing.T) {
	svc := new(MockStockService)
	h := NewStockHandler(svc, zerolog.Nop())

	rolls := []model.FilamentRoll{
		{ID: uuid.New(), Material: "PLA", Color: "Black", Brand: "Prusament", TotalWeightGrams: 1000, CurrentWeightGrams: 1000},
		{ID: uuid.New(), Material: "PLA", Color: "Black", Brand: "Prusament", TotalWeightGrams: 1000, CurrentWeightGrams: 1000},
		{ID: uuid.New(), Material: "PLA", Color: "Black", Brand: "Prusament", TotalWeightGrams: 1000, CurrentWeightGrams: 1000},
	}
	svc.On("Create", mock.Anything, mock.AnythingOfType("*model.FilamentRollRequest")).Return(rolls, nil)

	body, _ := json.Marshal(model.FilamentRollRequest{
		Material:         "PLA",
		Color:            "Black",
		Brand:            "Prusament",
		TotalWeightGrams: 1000,
		Quantity:         3,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/filaments", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var got []model.FilamentRoll
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Len(t, got, 3)
}

func TestStockHandler_Create_InvalidWeight(t *testing.T) {
	svc := new(MockStockService)
	h := NewStockHandler(svc, zerolog.Nop())

	svc.On("Create", mock.Anything, mock.AnythingOfType("*model.FilamentRollRequest")).
		Return(nil, model.ErrInvalidWeight)

	body, _ := json.Marshal(model.FilamentRollRequest{Material: "PLA", TotalWeightGrams: -5})
	req := httptest.NewRequest(http.MethodPost, "/api/filaments", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), model.ErrCodeInvalidWeight)
}

func TestStockHandler_List(t *testing.T) {
	svc := new(MockStockService)
	h := NewStockHandler(svc, zerolog.Nop())

	alerts := []service.RollAlert{
		{FilamentRoll: model.FilamentRoll{ID: uuid.New(), Material: "PLA", CurrentWeightGrams: 50, ThresholdGrams: 100}, Status: stock.StatusCritical},
	}
	svc.On("List", mock.Anything).Return(alerts, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/filaments", nil)
	w := httptest.NewRecorder()

	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "critical")
}

func TestStockHandler_LowStock(t *testing.T) {
	svc := new(MockStockService)
	h := NewStockHandler(svc, zerolog.Nop())

	alerts := []service.RollAlert{
		{FilamentRoll: model.FilamentRoll{ID: uuid.New(), Material: "PETG", CurrentWeightGrams: 150, ThresholdGrams: 100}, Status: stock.StatusLow},
	}
	svc.On("LowStock", mock.Anything).Return(alerts, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/filaments/low", nil)
	w := httptest.NewRecorder()

	h.LowStock(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "low")
}

func TestStockHandler_Summary(t *testing.T) {
	svc := new(MockStockService)
	h := NewStockHandler(svc, zerolog.Nop())

	svc.On("Summary", mock.Anything).Return(stock.Summary{
		RollCount:        4,
		TotalWeightGrams: 3200,
		LowStockCount:    1,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/filaments/summary", nil)
	w := httptest.NewRecorder()

	h.Summary(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got stock.Summary
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, 4, got.RollCount)
}

func TestStockHandler_GetByID_NotFound(t *testing.T) {
	svc := new(MockStockService)
	h := NewStockHandler(svc, zerolog.Nop())

	id := uuid.New()
	svc.On("GetByID", mock.Anything, id).Return(nil, model.ErrRollNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/filaments/"+id.String(), nil)
	req = withURLParam(req, "id", id.String())
	w := httptest.NewRecorder()

	h.GetByID(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), model.ErrCodeRollNotFound)
}
