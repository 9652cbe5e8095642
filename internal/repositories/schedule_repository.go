package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "frontend/internal/config"
	"frontend/internal/domain"
	"frontend/internal/domain/models"
	"frontend/internal/seatmap"

	"github.com/jmoiron/sqlx"
)

// ScheduleRepository reads the schedule catalog the customer searches over:
// schedules joined with their vehicle and route, plus the reserved-seat list
// per schedule. Read-only; bookings are written by the backend.
type ScheduleRepository struct {
	DB *sqlx.DB
}

func (r ScheduleRepository) db() *sqlx.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ScheduleQuery carries the search form filters. Empty fields match anything.
type ScheduleQuery struct {
	Origin      string
	Destination string
	Date        string // YYYY-MM-DD
}

type scheduleRow struct {
	ID            int64         `db:"id"`
	DepartureDate string        `db:"departure_date"`
	DepartureTime string        `db:"departure_time"`
	PlateNumber   string        `db:"plate_number"`
	Brand         string        `db:"brand"`
	Capacity      int           `db:"capacity"`
	Origin        string        `db:"origin"`
	Destination   string        `db:"destination"`
	Price         sql.NullInt64 `db:"price"`
	BookedSeats   int           `db:"booked_seats"`
}

const scheduleSelect = `
	SELECT
		s.id,
		DATE_FORMAT(s.departure_date, '%Y-%m-%d') AS departure_date,
		TIME_FORMAT(s.departure_time, '%H:%i')    AS departure_time,
		v.plate_number,
		COALESCE(v.brand, '')                     AS brand,
		v.capacity,
		r.origin,
		r.destination,
		r.price,
		(SELECT COUNT(*) FROM booking_seats bs WHERE bs.schedule_id = s.id) AS booked_seats
	FROM schedules s
	JOIN vehicles v ON v.id = s.vehicle_id
	JOIN routes r   ON r.id = s.route_id
`

// Search lists candidate departures for the search form.
func (r ScheduleRepository) Search(q ScheduleQuery) ([]models.Schedule, error) {
	where := []string{}
	args := []any{}

	if s := strings.TrimSpace(q.Origin); s != "" {
		where = append(where, "r.origin LIKE ?")
		args = append(args, "%"+s+"%")
	}
	if s := strings.TrimSpace(q.Destination); s != "" {
		where = append(where, "r.destination LIKE ?")
		args = append(args, "%"+s+"%")
	}
	if s := strings.TrimSpace(q.Date); s != "" {
		where = append(where, "s.departure_date = ?")
		args = append(args, s)
	}

	query := scheduleSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY s.departure_date ASC, s.departure_time ASC"

	rows := []scheduleRow{}
	if err := r.db().Select(&rows, query, args...); err != nil {
		return nil, domain.InternalError{Msg: "gagal mengambil jadwal", Err: err}
	}

	out := make([]models.Schedule, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}

// GetByID loads one schedule with its vehicle and route.
func (r ScheduleRepository) GetByID(id int64) (models.Schedule, error) {
	var row scheduleRow
	err := r.db().Get(&row, scheduleSelect+" WHERE s.id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Schedule{}, domain.NotFoundError{Resource: "jadwal"}
	}
	if err != nil {
		return models.Schedule{}, domain.InternalError{Msg: "gagal mengambil jadwal", Err: err}
	}
	return row.toModel(), nil
}

// ReservedSeats returns the seat numbers already committed to other bookings
// for one schedule.
func (r ScheduleRepository) ReservedSeats(scheduleID int64) ([]seatmap.SeatID, error) {
	nums := []int{}
	err := r.db().Select(&nums, `
		SELECT seat_number
		FROM booking_seats
		WHERE schedule_id = ?
		ORDER BY seat_number ASC`, scheduleID)
	if err != nil {
		return nil, domain.InternalError{Msg: "gagal mengambil kursi terpesan", Err: err}
	}

	out := make([]seatmap.SeatID, 0, len(nums))
	for _, n := range nums {
		out = append(out, seatmap.SeatID{Number: n})
	}
	return out, nil
}

func (row scheduleRow) toModel() models.Schedule {
	m := models.Schedule{
		ID:            row.ID,
		DepartureDate: row.DepartureDate,
		DepartureTime: row.DepartureTime,
		Vehicle: models.Vehicle{
			PlateNumber: row.PlateNumber,
			Brand:       row.Brand,
			Capacity:    row.Capacity,
		},
		Route: models.Route{
			Origin:      row.Origin,
			Destination: row.Destination,
		},
	}
	if row.Price.Valid {
		p := row.Price.Int64
		m.Route.Price = &p
	}
	m.AvailableSeats = row.Capacity - row.BookedSeats
	if m.AvailableSeats < 0 {
		m.AvailableSeats = 0
	}
	return m
}
