package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fixify/models"
	"fixify/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type busyStub struct {
	calls int
	err   error
}

func (s *busyStub) BusyIntervals(ctx context.Context, start, end time.Time) ([]scheduling.Interval, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return nil, nil
}

func newTestRouter(t *testing.T, stub *busyStub) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	bt, err := scheduling.NewBusinessTime("America/Los_Angeles", time.Hour)
	if err != nil {
		t.Fatalf("NewBusinessTime: %v", err)
	}
	grid, err := scheduling.NewSlotGrid(bt,
		[]string{"08:00", "09:00"},
		[]time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday})
	if err != nil {
		t.Fatalf("NewSlotGrid: %v", err)
	}
	resolver := scheduling.NewResolver(bt, grid, stub, 5*time.Minute, zap.NewNop())

	r := gin.New()
	h := NewAvailabilityHandler(resolver)
	r.GET("/api/availability", h.GetAvailability)
	return r
}

func TestGetAvailabilityOK(t *testing.T) {
	router := newTestRouter(t, &busyStub{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2024-01-15", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp models.DayAvailability
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Serviceable || len(resp.Slots) != 2 {
		t.Errorf("response = %+v, want serviceable with both slots", resp)
	}
}

func TestGetAvailabilityClosedDay(t *testing.T) {
	stub := &busyStub{}
	router := newTestRouter(t, stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2024-01-21", nil) // Sunday
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp models.DayAvailability
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Serviceable || len(resp.Slots) != 0 {
		t.Errorf("response = %+v, want closed day with no slots", resp)
	}
	if stub.calls != 0 {
		t.Error("remote calendar queried for a closed day")
	}
}

func TestGetAvailabilityBadDate(t *testing.T) {
	router := newTestRouter(t, &busyStub{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=nonsense", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetAvailabilityUpstreamFailureIsNotAnEmptyList(t *testing.T) {
	stub := &busyStub{err: scheduling.NewRemoteError(scheduling.CodeRemoteUnavailable, "calendar down", nil)}
	router := newTestRouter(t, stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2024-01-15", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502 (never a silently empty calendar)", w.Code)
	}
	var resp struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != scheduling.CodeRemoteUnavailable {
		t.Errorf("error code = %q, want %q", resp.Code, scheduling.CodeRemoteUnavailable)
	}
}
