package domain

// ID is used across domain entities.
type ID int64

// UserContext carries the logged-in customer when a bearer token is present.
// Only the display name is consumed here (default for the first passenger);
// auth itself is owned by the backend.
type UserContext struct {
	UserID ID     `json:"userId"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}
