package booking

import (
	"fmt"
	"strings"

	"frontend/internal/domain"
)

// Passenger is one roster entry. Only the name is mandatory; pickup
// coordinates come from the optional geolocation lookup on the address field.
type Passenger struct {
	Name          string   `json:"name"`
	Phone         string   `json:"phone,omitempty"`
	PickupAddress string   `json:"pickupAddress,omitempty"`
	PickupLat     *float64 `json:"pickupLat,omitempty"`
	PickupLng     *float64 `json:"pickupLng,omitempty"`
}

// PassengerUpdate patches a single roster entry by key presence,
// the same way the backend handles PATCH-style booking updates.
type PassengerUpdate struct {
	Name          *string  `json:"name"`
	Phone         *string  `json:"phone"`
	PickupAddress *string  `json:"pickupAddress"`
	PickupLat     *float64 `json:"pickupLat"`
	PickupLng     *float64 `json:"pickupLng"`
}

// ResizeRoster keeps the roster length in step with the selected-seat count.
// Equal length returns the roster unchanged (same slice, so the caller can
// cheaply detect "nothing happened"). Growing appends empty entries, shrinking
// drops trailing ones; retained entries are never touched.
func ResizeRoster(roster []Passenger, target int) []Passenger {
	if target < 0 {
		target = 0
	}
	if len(roster) == target {
		return roster
	}
	if target < len(roster) {
		out := make([]Passenger, target)
		copy(out, roster[:target])
		return out
	}
	out := make([]Passenger, target)
	copy(out, roster)
	return out
}

// UpdatePassenger replaces only the targeted entry; every other entry is
// carried over as-is.
func UpdatePassenger(roster []Passenger, index int, upd PassengerUpdate) ([]Passenger, error) {
	if index < 0 || index >= len(roster) {
		return nil, domain.ValidationError{
			Field: "index",
			Msg:   fmt.Sprintf("penumpang %d tidak ada", index+1),
		}
	}

	out := make([]Passenger, len(roster))
	copy(out, roster)

	p := out[index]
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Phone != nil {
		p.Phone = *upd.Phone
	}
	if upd.PickupAddress != nil {
		p.PickupAddress = *upd.PickupAddress
	}
	if upd.PickupLat != nil {
		p.PickupLat = upd.PickupLat
	}
	if upd.PickupLng != nil {
		p.PickupLng = upd.PickupLng
	}
	out[index] = p
	return out, nil
}

// ValidateRosterNames enforces the submit gate: every name non-empty after
// trimming. Failures come back as one aggregate error naming the offending
// entries, not as per-field errors.
func ValidateRosterNames(roster []Passenger) error {
	missing := []string{}
	for i, p := range roster {
		if strings.TrimSpace(p.Name) == "" {
			missing = append(missing, fmt.Sprintf("%d", i+1))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return domain.ValidationError{
		Field: "passengers",
		Msg:   "nama penumpang wajib diisi (penumpang " + strings.Join(missing, ", ") + ")",
	}
}
