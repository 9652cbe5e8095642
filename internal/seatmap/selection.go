package seatmap

// Selection is the ordered set of seats picked for one schedule. Order is
// insertion order (that is how the picker lists them); booking semantics do
// not depend on it. Selections never carry across schedules: picking a new
// schedule starts from an empty Selection.
type Selection struct {
	Seats []SeatID `json:"seats"`
}

func (s Selection) Contains(id SeatID) bool {
	for _, v := range s.Seats {
		if v == id {
			return true
		}
	}
	return false
}

func (s Selection) Count() int { return len(s.Seats) }

// Toggle adds or removes one seat and returns the new selection. Toggles on
// the driver seat, on reserved seats, or on ids the layout does not contain
// are ignored.
func (s Selection) Toggle(id SeatID, layout Layout, reserved []SeatID) Selection {
	seat, ok := layout.SeatByID(id)
	if !ok || seat.IsDriver || seat.Reserved {
		return s
	}
	for _, r := range reserved {
		if r == id {
			return s
		}
	}

	if s.Contains(id) {
		out := make([]SeatID, 0, len(s.Seats)-1)
		for _, v := range s.Seats {
			if v != id {
				out = append(out, v)
			}
		}
		return Selection{Seats: out}
	}

	out := make([]SeatID, 0, len(s.Seats)+1)
	out = append(out, s.Seats...)
	out = append(out, id)
	return Selection{Seats: out}
}

// Numbers returns the numeric ids of the selection in insertion order,
// skipping the driver sentinel should one ever slip in. This is the list the
// booking submission carries.
func (s Selection) Numbers() []int {
	out := make([]int, 0, len(s.Seats))
	for _, v := range s.Seats {
		if v.Driver {
			continue
		}
		out = append(out, v.Number)
	}
	return out
}
