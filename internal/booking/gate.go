package booking

import (
	"frontend/internal/domain"
	"frontend/internal/domain/models"
	"frontend/internal/seatmap"
)

// GateState is the phase of the confirmation modal.
type GateState string

const (
	GateHidden    GateState = "hidden"
	GateReviewing GateState = "reviewing"
	GateSuccess   GateState = "success"
)

// ReviewSnapshot is what the modal shows: the schedule, the seats as picked,
// and the computed total. DisplaySeats is deduplicated for rendering only;
// submission always uses the wizard's own selection.
type ReviewSnapshot struct {
	ScheduleID   int64            `json:"scheduleId"`
	Origin       string           `json:"origin"`
	Destination  string           `json:"destination"`
	DisplaySeats []seatmap.SeatID `json:"displaySeats"`
	SeatCount    int              `json:"seatCount"`
	UnitPrice    int64            `json:"unitPrice"`
	Total        int64            `json:"total"`
}

// ConfirmationGate gates the final submission behind a two-phase modal:
// review first, then an explicit success screen. The success screen is a pure
// local flag; the actual submission fires only when the user closes it.
type ConfirmationGate struct {
	State    GateState       `json:"state"`
	Snapshot *ReviewSnapshot `json:"snapshot,omitempty"`
}

func NewGate() ConfirmationGate {
	return ConfirmationGate{State: GateHidden}
}

// Open enters Reviewing with a fresh snapshot. Any earlier Success flag is
// discarded, so reopening the modal never starts pre-confirmed. A route
// without a price quotes at 0 instead of failing.
func (g *ConfirmationGate) Open(schedule models.Schedule, seats []seatmap.SeatID) {
	display := make([]seatmap.SeatID, 0, len(seats))
	seen := map[seatmap.SeatID]bool{}
	for _, id := range seats {
		if seen[id] {
			continue
		}
		seen[id] = true
		display = append(display, id)
	}

	unit := schedule.Route.UnitPrice()
	g.State = GateReviewing
	g.Snapshot = &ReviewSnapshot{
		ScheduleID:   schedule.ID,
		Origin:       schedule.Route.Origin,
		Destination:  schedule.Route.Destination,
		DisplaySeats: display,
		SeatCount:    len(seats),
		UnitPrice:    unit,
		Total:        int64(len(seats)) * unit,
	}
}

// Confirm flips Reviewing to Success. It does not submit anything.
func (g *ConfirmationGate) Confirm() error {
	if g.State != GateReviewing {
		return domain.ConflictError{Resource: "konfirmasi", Msg: "belum ada review yang terbuka"}
	}
	g.State = GateSuccess
	return nil
}

// Cancel closes the modal from Reviewing without any side effect.
func (g *ConfirmationGate) Cancel() error {
	if g.State != GateReviewing {
		return domain.ConflictError{Resource: "konfirmasi", Msg: "tidak ada review untuk dibatalkan"}
	}
	g.State = GateHidden
	g.Snapshot = nil
	return nil
}

// DismissSuccess closes the modal from Success. This is the moment the
// externally visible "booking confirmed" effect may fire.
func (g *ConfirmationGate) DismissSuccess() error {
	if g.State != GateSuccess {
		return domain.ConflictError{Resource: "konfirmasi", Msg: "booking belum dikonfirmasi"}
	}
	g.State = GateHidden
	g.Snapshot = nil
	return nil
}
