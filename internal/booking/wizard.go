package booking

import (
	"fmt"

	"frontend/internal/domain"
	"frontend/internal/domain/models"
	"frontend/internal/seatmap"
)

// State is the step the booking flow is at.
type State string

const (
	StateSearchingSchedule State = "searching_schedule"
	StateSchedulePicked    State = "schedule_picked"
	StateSeatsPicked       State = "seats_picked"
	StateReadyToConfirm    State = "ready_to_confirm"
	StateSubmitted         State = "submitted"
)

// Draft is the assembled submission payload: schedule, the numeric seat ids
// (driver and aisle sentinels filtered out), and the roster. Built fresh per
// attempt, never stored.
type Draft struct {
	ScheduleID    int64       `json:"schedule_id"`
	SeatsSelected []int       `json:"seats_selected"`
	Passengers    []Passenger `json:"passengers"`
}

// Wizard drives one booking attempt end to end: search, schedule, seats,
// passengers, confirmation, submit. All mutation goes through its methods;
// the whole struct round-trips through JSON for the session store.
type Wizard struct {
	ID          string             `json:"id"`
	State       State              `json:"state"`
	Schedule    *models.Schedule   `json:"schedule,omitempty"`
	Layout      seatmap.Layout     `json:"layout"`
	Reserved    []seatmap.SeatID   `json:"reserved,omitempty"`
	Selection   seatmap.Selection  `json:"selection"`
	Passengers  []Passenger        `json:"passengers"`
	Gate        ConfirmationGate   `json:"gate"`
	DefaultName string             `json:"defaultName,omitempty"`
	Submitting  bool               `json:"submitting"`
	BookingID   int64              `json:"bookingId,omitempty"`
	FieldErrors domain.FieldErrors `json:"fieldErrors,omitempty"`
}

// NewWizard starts a fresh booking attempt. defaultName, when known from the
// session context, pre-fills the first passenger once seats are picked.
func NewWizard(id, defaultName string) *Wizard {
	return &Wizard{
		ID:          id,
		State:       StateSearchingSchedule,
		Gate:        NewGate(),
		DefaultName: defaultName,
	}
}

// SelectSchedule pins the wizard to one departure: the layout is regenerated
// for the vehicle capacity and every prior pick is dropped. Selections never
// survive a schedule change.
func (w *Wizard) SelectSchedule(schedule models.Schedule, reserved []seatmap.SeatID) error {
	cfg, err := seatmap.DefaultRowConfig(schedule.Vehicle.Capacity)
	if err != nil {
		return err
	}
	layout, err := seatmap.Generate(schedule.Vehicle.Capacity, cfg, true)
	if err != nil {
		return err
	}

	s := schedule
	w.Schedule = &s
	w.Layout = layout.WithReserved(reserved)
	w.Reserved = reserved
	w.Selection = seatmap.Selection{}
	w.Passengers = nil
	w.Gate = NewGate()
	w.FieldErrors = nil
	w.State = StateSchedulePicked
	return nil
}

// ToggleSeat flips one seat and resizes the roster to match. Non-bookable
// seats (driver, reserved, unknown) are silent no-ops, same as the picker UI.
func (w *Wizard) ToggleSeat(id seatmap.SeatID) error {
	if w.Schedule == nil {
		return domain.ValidationError{Field: "schedule", Msg: "pilih jadwal terlebih dahulu"}
	}
	if w.State == StateSubmitted {
		return domain.ConflictError{Resource: "booking", Msg: "booking sudah dikirim"}
	}

	prev := len(w.Passengers)
	next := w.Selection.Toggle(id, w.Layout, w.Reserved)

	// a changed selection makes any open review (or its success flag) stale;
	// the user must go through the modal again with the new seats
	if next.Count() != w.Selection.Count() && w.Gate.State != GateHidden {
		w.Gate = NewGate()
	}

	w.Selection = next
	w.Passengers = ResizeRoster(w.Passengers, w.Selection.Count())

	// session user becomes the first passenger, but only on a fresh entry
	if prev == 0 && len(w.Passengers) > 0 && w.Passengers[0].Name == "" && w.DefaultName != "" {
		w.Passengers[0].Name = w.DefaultName
	}

	if w.Selection.Count() > 0 {
		w.State = StateSeatsPicked
	} else {
		w.State = StateSchedulePicked
	}
	return nil
}

// UpdatePassenger patches one roster entry.
func (w *Wizard) UpdatePassenger(index int, upd PassengerUpdate) error {
	out, err := UpdatePassenger(w.Passengers, index, upd)
	if err != nil {
		return err
	}
	w.Passengers = out
	return nil
}

// OpenReview validates the picks and opens the confirmation modal.
func (w *Wizard) OpenReview() error {
	if w.Schedule == nil {
		return domain.ValidationError{Field: "schedule", Msg: "pilih jadwal terlebih dahulu"}
	}
	if w.Selection.Count() == 0 {
		return domain.ValidationError{Field: "seats", Msg: "pilih kursi terlebih dahulu"}
	}
	if capacity := w.Schedule.Vehicle.Capacity; w.Selection.Count() > capacity {
		return domain.ValidationError{
			Field: "seats",
			Msg:   fmt.Sprintf("jumlah kursi melebihi kapasitas kendaraan (%d)", capacity),
		}
	}

	w.Gate.Open(*w.Schedule, w.Selection.Seats)
	w.State = StateReadyToConfirm
	return nil
}

// CancelReview closes the modal without confirming.
func (w *Wizard) CancelReview() error {
	if err := w.Gate.Cancel(); err != nil {
		return err
	}
	w.State = StateSeatsPicked
	return nil
}

// Confirm flips the modal to its success screen. Submission happens later,
// when the user dismisses that screen.
func (w *Wizard) Confirm() error {
	return w.Gate.Confirm()
}

// BeginSubmit runs the submit gate and hands back the draft to send. The
// in-flight flag blocks a second submission until FinishSubmit is called.
func (w *Wizard) BeginSubmit() (Draft, error) {
	if w.State == StateSubmitted {
		return Draft{}, domain.ConflictError{Resource: "booking", Msg: "booking sudah dikirim"}
	}
	if w.Gate.State != GateSuccess {
		return Draft{}, domain.ConflictError{Resource: "booking", Msg: "booking belum dikonfirmasi"}
	}
	if w.Submitting {
		return Draft{}, domain.ConflictError{Resource: "booking", Msg: "pengiriman sedang diproses"}
	}
	if err := ValidateRosterNames(w.Passengers); err != nil {
		return Draft{}, err
	}

	w.Submitting = true
	return w.buildDraft(), nil
}

// FinishSubmit records the upstream outcome. Field errors from the backend
// stay on the wizard so the form can render them next to the inputs; local
// seat state is deliberately not reconciled, the user re-searches instead.
func (w *Wizard) FinishSubmit(bookingID int64, err error) {
	w.Submitting = false
	if err == nil {
		_ = w.Gate.DismissSuccess()
		w.State = StateSubmitted
		w.BookingID = bookingID
		w.FieldErrors = nil
		return
	}
	if fields, ok := domain.IsFieldErrors(err); ok {
		w.FieldErrors = fields
	}
}

func (w *Wizard) buildDraft() Draft {
	passengers := make([]Passenger, len(w.Passengers))
	copy(passengers, w.Passengers)
	return Draft{
		ScheduleID:    w.Schedule.ID,
		SeatsSelected: w.Selection.Numbers(),
		Passengers:    passengers,
	}
}
