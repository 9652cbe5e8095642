package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"frontend/internal/booking"
	"frontend/internal/domain"
)

// Submitter sends an assembled booking draft to the backend. The wizard never
// retries on its own; one call per confirmation.
type Submitter interface {
	Submit(ctx context.Context, draft booking.Draft) (SubmitResult, error)
}

// SubmitResult is the backend's answer on success.
type SubmitResult struct {
	BookingID int64  `json:"bookingId"`
	Message   string `json:"message,omitempty"`
}

// Client talks to the backend booking API over plain HTTP.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type errorBody struct {
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Errors  map[string]string `json:"errors"`
}

// Submit posts the draft to POST /api/bookings. Per-field validation errors
// from the backend come back as domain.FieldErrors so the form can render
// them next to the matching inputs.
func (c *Client) Submit(ctx context.Context, draft booking.Draft) (SubmitResult, error) {
	payload, err := json.Marshal(draft)
	if err != nil {
		return SubmitResult{}, domain.InternalError{Msg: "gagal encode booking", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/bookings", bytes.NewReader(payload))
	if err != nil {
		return SubmitResult{}, domain.InternalError{Msg: "gagal membuat request booking", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return SubmitResult{}, domain.InternalError{Msg: "backend booking tidak bisa dihubungi", Err: err}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var out SubmitResult
		if err := json.Unmarshal(body, &out); err != nil {
			return SubmitResult{}, domain.InternalError{Msg: "respon booking tidak valid", Err: err}
		}
		return out, nil
	}

	var eb errorBody
	_ = json.Unmarshal(body, &eb)

	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if len(eb.Errors) > 0 {
			return SubmitResult{}, domain.FieldErrors(eb.Errors)
		}
		return SubmitResult{}, domain.ValidationError{Msg: firstNonEmpty(eb.Message, eb.Error, "booking ditolak backend")}
	case http.StatusConflict:
		// seat grabbed by a concurrent booking; user must re-search
		if len(eb.Errors) > 0 {
			return SubmitResult{}, domain.FieldErrors(eb.Errors)
		}
		return SubmitResult{}, domain.ConflictError{
			Resource: "kursi",
			Msg:      firstNonEmpty(eb.Message, eb.Error, "kursi sudah dibooking orang lain"),
		}
	case http.StatusNotFound:
		return SubmitResult{}, domain.NotFoundError{Resource: "jadwal"}
	default:
		return SubmitResult{}, domain.InternalError{
			Msg: fmt.Sprintf("backend booking error (status %d)", resp.StatusCode),
		}
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
