package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"frontend/internal/booking"
	"frontend/internal/domain"
	"frontend/internal/domain/models"
	"frontend/internal/repositories"
	"frontend/internal/seatmap"
	"frontend/internal/session"
	"frontend/internal/upstream"

	"github.com/gin-gonic/gin"
)

type fakeCatalog struct {
	schedule models.Schedule
	reserved []seatmap.SeatID
}

func (f fakeCatalog) Search(q repositories.ScheduleQuery) ([]models.Schedule, error) {
	return []models.Schedule{f.schedule}, nil
}

func (f fakeCatalog) GetByID(id int64) (models.Schedule, error) {
	if id != f.schedule.ID {
		return models.Schedule{}, domain.NotFoundError{Resource: "jadwal"}
	}
	return f.schedule, nil
}

func (f fakeCatalog) ReservedSeats(scheduleID int64) ([]seatmap.SeatID, error) {
	return f.reserved, nil
}

type fakeBackend struct {
	calls  int
	drafts []booking.Draft
	err    error
}

func (f *fakeBackend) Submit(ctx context.Context, draft booking.Draft) (upstream.SubmitResult, error) {
	f.calls++
	f.drafts = append(f.drafts, draft)
	if f.err != nil {
		return upstream.SubmitResult{}, f.err
	}
	return upstream.SubmitResult{BookingID: 777, Message: "Booking berhasil dibuat"}, nil
}

func newFlowRouter(backend *fakeBackend) *gin.Engine {
	gin.SetMode(gin.TestMode)

	price := int64(50000)
	flow := BookingFlow{
		Store: session.NewMemoryStore(time.Minute),
		Schedules: fakeCatalog{
			schedule: models.Schedule{
				ID:            42,
				DepartureDate: "2026-09-01",
				DepartureTime: "08:30",
				Vehicle:       models.Vehicle{PlateNumber: "BM 1234 XY", Capacity: 8},
				Route:         models.Route{Origin: "Pasir Pengaraian", Destination: "Pekanbaru", Price: &price},
			},
			reserved: []seatmap.SeatID{{Number: 3}},
		},
		Backend: backend,
	}

	r := gin.New()
	sessions := r.Group("/api/booking/sessions")
	sessions.POST("", flow.Create)
	sessions.GET("/:id", flow.Get)
	sessions.POST("/:id/schedule", flow.SelectSchedule)
	sessions.POST("/:id/seats/toggle", flow.ToggleSeat)
	sessions.PUT("/:id/passengers/:index", flow.UpdatePassenger)
	sessions.POST("/:id/review", flow.OpenReview)
	sessions.POST("/:id/review/cancel", flow.CancelReview)
	sessions.POST("/:id/confirm", flow.Confirm)
	sessions.POST("/:id/submit", flow.Submit)
	return r
}

type sessionResponse struct {
	Session booking.Wizard `json:"session"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, sessionResponse) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var resp sessionResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	return rec, resp
}

func TestBookingFlowEndToEnd(t *testing.T) {
	backend := &fakeBackend{}
	r := newFlowRouter(backend)

	rec, resp := doJSON(t, r, http.MethodPost, "/api/booking/sessions", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}
	id := resp.Session.ID
	if id == "" {
		t.Fatal("session id kosong")
	}
	base := "/api/booking/sessions/" + id

	rec, resp = doJSON(t, r, http.MethodPost, base+"/schedule", `{"scheduleId": 42}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("pilih jadwal status = %d: %s", rec.Code, rec.Body.String())
	}
	if resp.Session.State != booking.StateSchedulePicked {
		t.Fatalf("state = %s", resp.Session.State)
	}
	if seat, ok := resp.Session.Layout.SeatByID(seatmap.SeatID{Number: 3}); !ok || !seat.Reserved {
		t.Fatal("kursi 3 harusnya ditandai terpesan")
	}

	for _, seat := range []string{"1", "2"} {
		rec, resp = doJSON(t, r, http.MethodPost, base+"/seats/toggle", `{"seat": `+seat+`}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("toggle kursi %s status = %d: %s", seat, rec.Code, rec.Body.String())
		}
	}
	if len(resp.Session.Passengers) != 2 {
		t.Fatalf("jumlah penumpang = %d, harusnya 2", len(resp.Session.Passengers))
	}

	// kursi terpesan tidak bisa dipilih
	rec, resp = doJSON(t, r, http.MethodPost, base+"/seats/toggle", `{"seat": 3}`)
	if rec.Code != http.StatusOK || len(resp.Session.Selection.Seats) != 2 {
		t.Fatalf("kursi terpesan ikut terpilih: %v", resp.Session.Selection.Seats)
	}

	rec, _ = doJSON(t, r, http.MethodPut, base+"/passengers/0", `{"name": "Rina", "phone": "0812345678"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update penumpang status = %d: %s", rec.Code, rec.Body.String())
	}
	rec, _ = doJSON(t, r, http.MethodPut, base+"/passengers/1", `{"name": "Tono"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update penumpang status = %d: %s", rec.Code, rec.Body.String())
	}

	rec, resp = doJSON(t, r, http.MethodPost, base+"/review", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("review status = %d: %s", rec.Code, rec.Body.String())
	}
	if resp.Session.Gate.Snapshot == nil || resp.Session.Gate.Snapshot.Total != 100000 {
		t.Fatalf("snapshot review tidak sesuai: %+v", resp.Session.Gate.Snapshot)
	}

	rec, _ = doJSON(t, r, http.MethodPost, base+"/confirm", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("confirm status = %d: %s", rec.Code, rec.Body.String())
	}

	rec, resp = doJSON(t, r, http.MethodPost, base+"/submit", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("submit status = %d: %s", rec.Code, rec.Body.String())
	}
	if resp.Session.State != booking.StateSubmitted || resp.Session.BookingID != 777 {
		t.Fatalf("sesi setelah submit: state=%s bookingId=%d", resp.Session.State, resp.Session.BookingID)
	}

	if backend.calls != 1 {
		t.Fatalf("backend dipanggil %d kali, harusnya 1", backend.calls)
	}
	draft := backend.drafts[0]
	if draft.ScheduleID != 42 || len(draft.SeatsSelected) != 2 || len(draft.Passengers) != 2 {
		t.Fatalf("draft tidak sesuai: %+v", draft)
	}

	// submit kedua ditolak
	rec, _ = doJSON(t, r, http.MethodPost, base+"/submit", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("submit ulang status = %d, harusnya 409", rec.Code)
	}
	if backend.calls != 1 {
		t.Fatalf("backend dipanggil lagi setelah submit sukses")
	}
}

func TestBookingFlowReviewWithoutSeats(t *testing.T) {
	r := newFlowRouter(&fakeBackend{})

	_, resp := doJSON(t, r, http.MethodPost, "/api/booking/sessions", "")
	base := "/api/booking/sessions/" + resp.Session.ID

	rec, _ := doJSON(t, r, http.MethodPost, base+"/schedule", `{"scheduleId": 42}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("pilih jadwal status = %d", rec.Code)
	}

	rec, _ = doJSON(t, r, http.MethodPost, base+"/review", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("review tanpa kursi status = %d, harusnya 400", rec.Code)
	}
}

func TestBookingFlowSubmitConflictReopensForm(t *testing.T) {
	backend := &fakeBackend{err: domain.ConflictError{Resource: "kursi", Msg: "kursi 1 sudah dibooking orang lain"}}
	r := newFlowRouter(backend)

	_, resp := doJSON(t, r, http.MethodPost, "/api/booking/sessions", "")
	base := "/api/booking/sessions/" + resp.Session.ID

	doJSON(t, r, http.MethodPost, base+"/schedule", `{"scheduleId": 42}`)
	doJSON(t, r, http.MethodPost, base+"/seats/toggle", `{"seat": 1}`)
	doJSON(t, r, http.MethodPut, base+"/passengers/0", `{"name": "Rina"}`)
	doJSON(t, r, http.MethodPost, base+"/review", "")
	doJSON(t, r, http.MethodPost, base+"/confirm", "")

	rec, _ := doJSON(t, r, http.MethodPost, base+"/submit", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("submit status = %d, harusnya 409: %s", rec.Code, rec.Body.String())
	}

	_, resp = doJSON(t, r, http.MethodGet, base, "")
	if resp.Session.State == booking.StateSubmitted {
		t.Fatal("sesi gagal submit tidak boleh berstatus submitted")
	}
	if resp.Session.Submitting {
		t.Fatal("flag submitting harus dilepas setelah gagal")
	}
}

func TestBookingFlowEmptyNameNeverReachesBackend(t *testing.T) {
	backend := &fakeBackend{}
	r := newFlowRouter(backend)

	_, resp := doJSON(t, r, http.MethodPost, "/api/booking/sessions", "")
	base := "/api/booking/sessions/" + resp.Session.ID

	doJSON(t, r, http.MethodPost, base+"/schedule", `{"scheduleId": 42}`)
	doJSON(t, r, http.MethodPost, base+"/seats/toggle", `{"seat": 1}`)
	doJSON(t, r, http.MethodPost, base+"/review", "")
	doJSON(t, r, http.MethodPost, base+"/confirm", "")

	// nama penumpang sengaja dibiarkan kosong
	rec, _ := doJSON(t, r, http.MethodPost, base+"/submit", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("submit nama kosong status = %d, harusnya 400: %s", rec.Code, rec.Body.String())
	}
	if backend.calls != 0 {
		t.Fatalf("backend dipanggil %d kali padahal validasi lokal gagal", backend.calls)
	}

	_, resp = doJSON(t, r, http.MethodGet, base, "")
	if resp.Session.Submitting {
		t.Fatal("flag submitting menyala padahal draft tidak terkirim")
	}
}

func TestBookingFlowUnknownSession(t *testing.T) {
	r := newFlowRouter(&fakeBackend{})
	rec, _ := doJSON(t, r, http.MethodGet, "/api/booking/sessions/tidak-ada", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("sesi tidak dikenal status = %d, harusnya 404", rec.Code)
	}
}
