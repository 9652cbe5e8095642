package models

// Route is the origin/destination pair of a schedule. Price is the fare per
// seat in Rupiah; nil when the admin has not set a fare for the route yet.
type Route struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Price       *int64 `json:"price,omitempty"`
}

// UnitPrice returns the per-seat fare, 0 when the route carries no price.
func (r Route) UnitPrice() int64 {
	if r.Price == nil {
		return 0
	}
	return *r.Price
}

// Vehicle as shown to the customer while picking a schedule.
type Vehicle struct {
	PlateNumber string `json:"plateNumber"`
	Brand       string `json:"brand"`
	Capacity    int    `json:"capacity"`
}

// Schedule is one scheduled departure of a vehicle on a route.
// DepartureDate is YYYY-MM-DD, DepartureTime is HH:mm (frontend wire format).
type Schedule struct {
	ID             int64   `json:"id"`
	DepartureDate  string  `json:"departureDate"`
	DepartureTime  string  `json:"departureTime"`
	AvailableSeats int     `json:"availableSeats"`
	Vehicle        Vehicle `json:"vehicle"`
	Route          Route   `json:"route"`
}
