package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/skyreserve/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockFlightUseCase is a mock implementation of flights.FlightUseCase
type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) Search(ctx context.Context, origin, destination string) ([]domain.Flight, error) {
	args := m.Called(ctx, origin, destination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func newFlightsRouter(service *MockFlightUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewFlightHandler(service).Register(router.Group("/flights"))
	return router
}

func TestFlightHandler_list(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newFlightsRouter(mockService)

	flights := []domain.Flight{
		{ID: 1, Origin: "New York", Destination: "London", DepartureTime: "2026-05-10 10:00", Price: 500.0, Capacity: 150, BookedCount: 10},
	}
	mockService.On("Search", mock.Anything, "New York", "").Return(flights, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/flights/?origin=New+York", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []flightResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "$500.00", resp[0].FormattedPrice)
	assert.Equal(t, 140, resp[0].AvailableSeats)
	assert.True(t, resp[0].Available)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_list_Error(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newFlightsRouter(mockService)

	mockService.On("Search", mock.Anything, "", "").Return(nil, assert.AnError).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/flights/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestFlightHandler_get(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newFlightsRouter(mockService)

	flight := &domain.Flight{ID: 2, Origin: "Paris", Destination: "Tokyo", Price: 850.0, Capacity: 200, BookedCount: 200}
	mockService.On("GetByID", mock.Anything, int64(2)).Return(flight, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/flights/2", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp flightResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.AvailableSeats)
	assert.False(t, resp.Available)
}

func TestFlightHandler_get_InvalidID(t *testing.T) {
	router := newFlightsRouter(&MockFlightUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/flights/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFlightHandler_get_NotFound(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newFlightsRouter(mockService)

	mockService.On("GetByID", mock.Anything, int64(999)).Return(nil, domain.ErrFlightNotFound).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/flights/999", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
