package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/db_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/request_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/services"
)

type stubTrekService struct {
	services.TrekServiceInterface
	updated request_models.UpdateTrekRequest
}

func (s *stubTrekService) UpdateTrek(ctx context.Context, req request_models.UpdateTrekRequest) error {
	s.updated = req
	return nil
}

type stubBookingService struct {
	services.BookingServiceInterface
	updated request_models.UpdateBookingStatusRequest
}

func (s *stubBookingService) UpdateStatus(ctx context.Context, req request_models.UpdateBookingStatusRequest) error {
	s.updated = req
	return nil
}

func TestUpdateTrekTargetsPathID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &stubTrekService{}
	r := gin.New()
	r.PUT("/admin/treks/:id", NewTrekController(svc).UpdateTrek)

	pathID := uuid.New()
	bodyID := uuid.New()
	body, _ := json.Marshal(map[string]interface{}{
		"id":    bodyID.String(),
		"name":  "Everest Base Camp",
		"price": 1450,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/treks/"+pathID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if svc.updated.ID != pathID {
		t.Fatalf("service received ID %s, want path ID %s", svc.updated.ID, pathID)
	}
}

func TestUpdateTrekRejectsBadPathID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.PUT("/admin/treks/:id", NewTrekController(&stubTrekService{}).UpdateTrek)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/treks/not-a-uuid", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUpdateBookingStatusTargetsPathID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &stubBookingService{}
	r := gin.New()
	r.PUT("/admin/bookings/:id/status", NewBookingController(svc).UpdateBookingStatus)

	pathID := uuid.New()
	body, _ := json.Marshal(map[string]interface{}{
		"id":             uuid.New().String(),
		"booking_status": db_models.BookingStatusConfirmed,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/bookings/"+pathID.String()+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if svc.updated.ID != pathID {
		t.Fatalf("service received ID %s, want path ID %s", svc.updated.ID, pathID)
	}
	if svc.updated.BookingStatus != db_models.BookingStatusConfirmed {
		t.Fatalf("booking status %q not carried from body", svc.updated.BookingStatus)
	}
}
