package seatmap

import (
	"fmt"
	"strconv"

	"frontend/internal/domain"
)

// Generate builds the seat layout for a vehicle.
//
// rowConfig lists the seat count of each row, front to back. When withDriver
// is true the first row is the cockpit row [seat, aisle, driver]: it consumes
// the first rowConfig entry but always yields exactly one passenger seat.
// Remaining rows are shaped 1 -> [seat], 2 -> [seat aisle seat],
// n > 2 -> ceil(n/2) seats, aisle, rest.
//
// Passenger seats are numbered 1,2,3,... left to right, top to bottom, with
// no gaps; the driver carries the sentinel id and never joins the numbering.
//
// seatCount > 0 is checked against the number of passenger seats the config
// will actually produce. The old pages passed whatever capacity was at hand
// next to a hard-coded config, so seatCount <= 0 keeps the lenient "advisory
// only" behaviour for those callers.
func Generate(seatCount int, rowConfig []int, withDriver bool) (Layout, error) {
	if len(rowConfig) == 0 {
		return Layout{}, domain.ValidationError{Field: "rowConfig", Msg: "konfigurasi baris kosong"}
	}
	for i, n := range rowConfig {
		if n <= 0 {
			return Layout{}, domain.ValidationError{
				Field: "rowConfig",
				Msg:   fmt.Sprintf("baris %d tidak valid: %d kursi", i+1, n),
			}
		}
	}

	expected := 0
	for _, n := range rowConfig {
		expected += n
	}
	if withDriver {
		// cockpit row replaces the first entry with a single passenger seat
		expected = expected - rowConfig[0] + 1
	}
	if seatCount > 0 && seatCount != expected {
		return Layout{}, domain.ValidationError{
			Field: "seatCount",
			Msg:   fmt.Sprintf("kapasitas %d tidak cocok dengan konfigurasi baris (%d kursi)", seatCount, expected),
		}
	}

	layout := Layout{Rows: make([][]Slot, 0, len(rowConfig))}
	next := 1

	rows := rowConfig
	if withDriver {
		var cockpit []Slot
		cockpit, next = driverRow(next)
		layout.Rows = append(layout.Rows, cockpit)
		rows = rowConfig[1:]
	}

	for _, n := range rows {
		var row []Slot
		row, next = passengerRow(n, next)
		layout.Rows = append(layout.Rows, row)
	}

	return layout, nil
}

func driverRow(next int) ([]Slot, int) {
	row := make([]Slot, 0, 3)
	row, next = appendSeats(row, 1, next)
	row = append(row, aisleSlot())
	row = append(row, seatSlot(Seat{
		ID:       DriverID,
		Label:    DriverLabel,
		Reserved: true,
		IsDriver: true,
	}))
	return row, next
}

func passengerRow(n, next int) ([]Slot, int) {
	switch {
	case n == 1:
		return appendSeats(nil, 1, next)
	case n == 2:
		row, next := appendSeats(nil, 1, next)
		row = append(row, aisleSlot())
		return appendSeats(row, 1, next)
	default:
		left := (n + 1) / 2
		row, next := appendSeats(nil, left, next)
		row = append(row, aisleSlot())
		return appendSeats(row, n-left, next)
	}
}

func appendSeats(row []Slot, count, next int) ([]Slot, int) {
	for i := 0; i < count; i++ {
		row = append(row, seatSlot(Seat{
			ID:    SeatID{Number: next},
			Label: strconv.Itoa(next),
		}))
		next++
	}
	return row, next
}

// DefaultRowConfig derives a row configuration matching a vehicle capacity for
// the driver-row variant of Generate: cockpit row (one passenger seat) plus
// rows of two, odd remainder folded into the back row.
func DefaultRowConfig(capacity int) ([]int, error) {
	if capacity <= 0 {
		return nil, domain.ValidationError{Field: "capacity", Msg: "kapasitas harus lebih dari 0"}
	}

	cfg := []int{2} // consumed by the cockpit row -> one passenger seat
	remaining := capacity - 1
	for remaining > 0 {
		switch remaining {
		case 1:
			cfg = append(cfg, 1)
			remaining = 0
		case 3:
			cfg = append(cfg, 3)
			remaining = 0
		default:
			cfg = append(cfg, 2)
			remaining -= 2
		}
	}
	return cfg, nil
}
