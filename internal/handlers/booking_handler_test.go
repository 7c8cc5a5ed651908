package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/sportivox/sportivox-api/internal/domain/booking"
	"github.com/sportivox/sportivox-api/internal/handlers"
	"github.com/sportivox/sportivox-api/internal/models"
	ucbooking "github.com/sportivox/sportivox-api/internal/usecase/booking"
	"github.com/sportivox/sportivox-api/test/mocks"
)

func newBookingRouter(repo *mocks.MockBookingRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := handlers.NewBookingHandler(
		ucbooking.NewCreateBooking(repo, nil),
		ucbooking.NewListBookings(repo),
		ucbooking.NewCancelBooking(repo, nil),
		ucbooking.NewApproveBooking(repo, nil),
		ucbooking.NewMarkBookingPaid(repo, nil),
	)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/bookings", h.Create)
	api.GET("/bookings", h.List)
	api.DELETE("/bookings/:id", h.Cancel)
	api.PUT("/bookings/approve/:id", h.Approve)
	api.PATCH("/bookings/payment/:id", h.MarkPaid)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBookingCreate_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no_email", `{"courtId":"` + uuid.NewString() + `","date":"2024-01-01"}`},
		{"no_court", `{"userEmail":"a@x.com","date":"2024-01-01"}`},
		{"no_date", `{"userEmail":"a@x.com","courtId":"` + uuid.NewString() + `"}`},
		{"bad_court_id", `{"userEmail":"a@x.com","courtId":"not-a-uuid","date":"2024-01-01"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockBookingRepository()
			r := newBookingRouter(repo)

			w := doJSON(t, r, http.MethodPost, "/api/bookings", tt.body)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			if repo.CreateBookingCalls != 0 {
				t.Error("rejected request must not reach the store")
			}
		})
	}
}

func TestBookingCreate_Success(t *testing.T) {
	repo := mocks.NewMockBookingRepository()
	r := newBookingRouter(repo)

	body := `{"userEmail":"a@x.com","userName":"Alice","courtId":"` + uuid.NewString() + `","date":"2024-01-01"}`
	w := doJSON(t, r, http.MethodPost, "/api/bookings", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Message string `json:"message"`
		ID      string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.ID == "" {
		t.Error("expected the new booking id in the response")
	}
	if len(repo.Bookings) != 1 {
		t.Fatalf("expected 1 stored booking, got %d", len(repo.Bookings))
	}
	if repo.Bookings[0].Status != string(domain.StatusPending) {
		t.Errorf("expected pending status, got %q", repo.Bookings[0].Status)
	}
}

func TestBookingCancel_NotFound(t *testing.T) {
	repo := mocks.NewMockBookingRepository()
	r := newBookingRouter(repo)

	w := doJSON(t, r, http.MethodDelete, "/api/bookings/"+uuid.NewString(), "")

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestBookingCancel_ReturnsDeletedCount(t *testing.T) {
	repo := mocks.NewMockBookingRepository()
	id := uuid.New()
	repo.SeedBooking(models.Booking{
		ID: id, UserEmail: "a@x.com", CourtID: uuid.New(),
		Date: "2024-01-01", Status: string(domain.StatusPending),
	})
	r := newBookingRouter(repo)

	w := doJSON(t, r, http.MethodDelete, "/api/bookings/"+id.String(), "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		DeletedCount int64 `json:"deletedCount"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.DeletedCount != 1 {
		t.Errorf("expected deletedCount 1, got %d", resp.DeletedCount)
	}
}

func TestBookingApprove_NotFound(t *testing.T) {
	repo := mocks.NewMockBookingRepository()
	r := newBookingRouter(repo)

	w := doJSON(t, r, http.MethodPut, "/api/bookings/approve/"+uuid.NewString(), "")

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestBookingApprove_ReportsModifications(t *testing.T) {
	repo := mocks.NewMockBookingRepository()
	repo.SeedUser(models.User{ID: uuid.New(), Email: "a@x.com", Role: models.RoleUser})
	id := uuid.New()
	repo.SeedBooking(models.Booking{
		ID: id, UserEmail: "a@x.com", CourtID: uuid.New(),
		Date: "2024-01-01", Status: string(domain.StatusPending),
	})
	r := newBookingRouter(repo)

	w := doJSON(t, r, http.MethodPut, "/api/bookings/approve/"+id.String(), "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp ucbooking.ApproveResult
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.BookingModified != 1 || resp.UserModified != 1 {
		t.Errorf("expected 1/1, got %d/%d", resp.BookingModified, resp.UserModified)
	}

	// Second call reports the no-op distinctly.
	w = doJSON(t, r, http.MethodPut, "/api/bookings/approve/"+id.String(), "")
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.BookingModified != 0 || resp.UserModified != 0 {
		t.Errorf("re-approval must report 0/0, got %d/%d", resp.BookingModified, resp.UserModified)
	}
	if resp.Message != ucbooking.MsgAlreadyApproved {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestBookingMarkPaid(t *testing.T) {
	repo := mocks.NewMockBookingRepository()
	id := uuid.New()
	repo.SeedBooking(models.Booking{
		ID: id, UserEmail: "a@x.com", CourtID: uuid.New(),
		Date: "2024-01-01", Status: string(domain.StatusApproved),
	})
	r := newBookingRouter(repo)

	w := doJSON(t, r, http.MethodPatch, "/api/bookings/payment/"+id.String(), "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if repo.Bookings[0].PaymentStatus != domain.PaymentPaid {
		t.Errorf("expected paymentStatus paid, got %q", repo.Bookings[0].PaymentStatus)
	}
}

func TestBookingList_PassesFilters(t *testing.T) {
	repo := mocks.NewMockBookingRepository()
	repo.SeedBooking(models.Booking{
		ID: uuid.New(), UserEmail: "a@x.com", CourtID: uuid.New(),
		Date: "2024-01-01", Status: string(domain.StatusPending),
	})
	repo.SeedBooking(models.Booking{
		ID: uuid.New(), UserEmail: "b@x.com", CourtID: uuid.New(),
		Date: "2024-01-02", Status: string(domain.StatusApproved),
	})
	r := newBookingRouter(repo)

	w := doJSON(t, r, http.MethodGet, "/api/bookings?status=approved&email=b@x.com", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp []models.Booking
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp) != 1 || resp[0].UserEmail != "b@x.com" {
		t.Errorf("expected only b@x.com's approved booking, got %+v", resp)
	}
}
