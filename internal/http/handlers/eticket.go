package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"frontend/internal/booking"
	"frontend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/phpdave11/gofpdf"
)

// GET /api/booking/sessions/:id/e-ticket
// Available once the booking has been submitted; one page per passenger.
func (h BookingFlow) ETicket(c *gin.Context) {
	w, ok := h.load(c)
	if !ok {
		return
	}
	if w.State != booking.StateSubmitted || w.Schedule == nil {
		RespondError(c, http.StatusConflict, "booking belum dikirim", nil)
		return
	}

	pdfBytes, filename, err := buildETicketPDF(w)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal membuat PDF e-ticket", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func buildETicketPDF(w *booking.Wizard) ([]byte, string, error) {
	schedule := w.Schedule
	seats := w.Selection.Numbers()
	unit := schedule.Route.UnitPrice()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)

	for i, p := range w.Passengers {
		seat := "-"
		if i < len(seats) {
			seat = fmt.Sprintf("%d", seats[i])
		}

		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 18)
		pdf.Cell(0, 10, "E-TICKET")
		pdf.Ln(12)

		pdf.SetFont("Helvetica", "", 12)
		lines := []string{
			fmt.Sprintf("Nama Penumpang : %s", safe(p.Name, "-")),
			fmt.Sprintf("No HP          : %s", safe(p.Phone, "-")),
			fmt.Sprintf("Seat           : %s", seat),
			fmt.Sprintf("Rute           : %s -> %s", safe(schedule.Route.Origin, "-"), safe(schedule.Route.Destination, "-")),
			fmt.Sprintf("Tanggal/Jam    : %s %s", safe(schedule.DepartureDate, "-"), safe(schedule.DepartureTime, "-")),
			fmt.Sprintf("Kendaraan      : %s (%s)", safe(schedule.Vehicle.Brand, "-"), safe(schedule.Vehicle.PlateNumber, "-")),
			fmt.Sprintf("Pickup         : %s", safe(p.PickupAddress, "-")),
			fmt.Sprintf("Harga          : %s", utils.FormatRupiah(unit)),
			fmt.Sprintf("Kode Booking   : #%d", w.BookingID),
		}
		for _, s := range lines {
			pdf.Cell(0, 7, s)
			pdf.Ln(7)
		}

		pdf.Ln(6)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "Catatan: E-ticket ini berlaku untuk 1 penumpang (1 seat). Harap tunjukkan saat keberangkatan.", "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%d.pdf", w.BookingID)
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
