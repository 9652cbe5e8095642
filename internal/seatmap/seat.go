package seatmap

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DriverLabel is what the seat picker renders on the driver slot.
const DriverLabel = "Sopir"

// SeatID identifies a seat in a layout: either a sequential passenger seat
// number (>= 1) or the driver seat. One tagged type instead of the old mix of
// numbers and "D"/"Sopir" strings.
type SeatID struct {
	Number int
	Driver bool
}

// DriverID is the sentinel identifier of the driver seat.
var DriverID = SeatID{Driver: true}

func (id SeatID) String() string {
	if id.Driver {
		return "D"
	}
	return strconv.Itoa(id.Number)
}

// MarshalJSON keeps the wire format the frontend pages already use:
// plain numbers for passenger seats, "D" for the driver.
func (id SeatID) MarshalJSON() ([]byte, error) {
	if id.Driver {
		return []byte(`"D"`), nil
	}
	return []byte(strconv.Itoa(id.Number)), nil
}

func (id *SeatID) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*id = SeatID{Number: n}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("seat id tidak valid: %s", string(data))
	}
	s = strings.TrimSpace(s)
	switch strings.ToUpper(s) {
	case "D", "SOPIR", "DRIVER":
		*id = DriverID
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("seat id tidak valid: %q", s)
	}
	*id = SeatID{Number: n}
	return nil
}

// Seat is immutable once generated for a schedule; identity is the ID.
type Seat struct {
	ID       SeatID `json:"id"`
	Label    string `json:"label"`
	Reserved bool   `json:"reserved"`
	IsDriver bool   `json:"isDriver"`
}

// Slot is one cell of a layout row: a seat or an aisle gap.
type Slot struct {
	Seat  *Seat `json:"seat,omitempty"`
	Aisle bool  `json:"aisle,omitempty"`
}

func seatSlot(s Seat) Slot { return Slot{Seat: &s} }
func aisleSlot() Slot      { return Slot{Aisle: true} }

// Layout is the generated 2-D arrangement of seats and aisles for one vehicle.
type Layout struct {
	Rows [][]Slot `json:"rows"`
}

// SeatByID looks a seat up by identifier.
func (l Layout) SeatByID(id SeatID) (Seat, bool) {
	for _, row := range l.Rows {
		for _, slot := range row {
			if slot.Seat != nil && slot.Seat.ID == id {
				return *slot.Seat, true
			}
		}
	}
	return Seat{}, false
}

// PassengerSeatCount counts bookable positions (driver excluded).
func (l Layout) PassengerSeatCount() int {
	n := 0
	for _, row := range l.Rows {
		for _, slot := range row {
			if slot.Seat != nil && !slot.Seat.IsDriver {
				n++
			}
		}
	}
	return n
}

// WithReserved returns a copy of the layout with the server-supplied reserved
// seats flagged. The receiver is left untouched.
func (l Layout) WithReserved(reserved []SeatID) Layout {
	taken := make(map[SeatID]bool, len(reserved))
	for _, id := range reserved {
		taken[id] = true
	}

	out := Layout{Rows: make([][]Slot, len(l.Rows))}
	for i, row := range l.Rows {
		out.Rows[i] = make([]Slot, len(row))
		for j, slot := range row {
			if slot.Seat == nil {
				out.Rows[i][j] = slot
				continue
			}
			seat := *slot.Seat
			if taken[seat.ID] {
				seat.Reserved = true
			}
			out.Rows[i][j] = Slot{Seat: &seat}
		}
	}
	return out
}
