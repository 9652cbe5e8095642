package booking

import (
	"reflect"
	"testing"

	"frontend/internal/domain"
	"frontend/internal/seatmap"
)

func pickedWizard(t *testing.T) *Wizard {
	t.Helper()
	w := NewWizard("sesi-1", "")
	reserved := []seatmap.SeatID{{Number: 3}, seatmap.DriverID}
	if err := w.SelectSchedule(testSchedule(int64ptr(150000)), reserved); err != nil {
		t.Fatalf("SelectSchedule error: %v", err)
	}
	return w
}

func toggle(t *testing.T, w *Wizard, nums ...int) {
	t.Helper()
	for _, n := range nums {
		if err := w.ToggleSeat(seatmap.SeatID{Number: n}); err != nil {
			t.Fatalf("ToggleSeat(%d) error: %v", n, err)
		}
	}
}

func confirmAll(t *testing.T, w *Wizard) {
	t.Helper()
	if err := w.OpenReview(); err != nil {
		t.Fatalf("OpenReview error: %v", err)
	}
	if err := w.Confirm(); err != nil {
		t.Fatalf("Confirm error: %v", err)
	}
}

func TestWizardFullFlowDraft(t *testing.T) {
	w := pickedWizard(t)

	// kursi 3 reserved, sopir sentinel: keduanya tidak bisa dipilih
	toggle(t, w, 1, 2, 3, 4)
	if err := w.ToggleSeat(seatmap.DriverID); err != nil {
		t.Fatalf("toggle sopir error: %v", err)
	}
	if w.Selection.Count() != 3 {
		t.Fatalf("kursi terpilih %d, harusnya 3", w.Selection.Count())
	}
	if len(w.Passengers) != 3 {
		t.Fatalf("roster %d entri, harusnya 3", len(w.Passengers))
	}

	for i, name := range []string{"Andi", "Budi", "Citra"} {
		if err := w.UpdatePassenger(i, PassengerUpdate{Name: strptr(name)}); err != nil {
			t.Fatalf("UpdatePassenger error: %v", err)
		}
	}

	confirmAll(t, w)

	draft, err := w.BeginSubmit()
	if err != nil {
		t.Fatalf("BeginSubmit error: %v", err)
	}
	if draft.ScheduleID != 42 {
		t.Fatalf("schedule_id %d, harusnya 42", draft.ScheduleID)
	}
	if want := []int{1, 2, 4}; !reflect.DeepEqual(draft.SeatsSelected, want) {
		t.Fatalf("seats_selected %v, harusnya %v", draft.SeatsSelected, want)
	}
	if len(draft.Passengers) != 3 {
		t.Fatalf("passengers %d, harusnya 3", len(draft.Passengers))
	}

	w.FinishSubmit(777, nil)
	if w.State != StateSubmitted || w.BookingID != 777 || w.Submitting {
		t.Fatalf("state akhir salah: %+v", w)
	}
}

func TestWizardDeselectKeepsEarlyEntries(t *testing.T) {
	w := pickedWizard(t)
	toggle(t, w, 1, 2, 4, 5, 6)

	names := []string{"Andi", "Budi", "Citra"}
	for i, name := range names {
		if err := w.UpdatePassenger(i, PassengerUpdate{Name: strptr(name)}); err != nil {
			t.Fatalf("UpdatePassenger error: %v", err)
		}
	}

	// batalkan dua kursi terakhir
	toggle(t, w, 6, 5)

	if len(w.Passengers) != 3 {
		t.Fatalf("roster %d entri, harusnya 3", len(w.Passengers))
	}
	for i, name := range names {
		if w.Passengers[i].Name != name {
			t.Fatalf("entri %d berubah: %+v", i, w.Passengers[i])
		}
	}
}

func TestWizardScheduleChangeResetsEverything(t *testing.T) {
	w := pickedWizard(t)
	toggle(t, w, 1, 2)
	if err := w.UpdatePassenger(0, PassengerUpdate{Name: strptr("Andi")}); err != nil {
		t.Fatalf("UpdatePassenger error: %v", err)
	}

	other := testSchedule(int64ptr(100000))
	other.ID = 43
	if err := w.SelectSchedule(other, nil); err != nil {
		t.Fatalf("SelectSchedule error: %v", err)
	}

	if w.Selection.Count() != 0 || len(w.Passengers) != 0 {
		t.Fatalf("pilihan lama terbawa: %+v", w)
	}
	if w.State != StateSchedulePicked {
		t.Fatalf("state %s, harusnya schedule_picked", w.State)
	}
}

func TestWizardReviewGateMessages(t *testing.T) {
	w := NewWizard("sesi-2", "")

	err := w.OpenReview()
	if !domain.IsValidation(err) || err.Error() != "schedule: pilih jadwal terlebih dahulu" {
		t.Fatalf("gate jadwal salah: %v", err)
	}

	w = pickedWizard(t)
	err = w.OpenReview()
	if !domain.IsValidation(err) || err.Error() != "seats: pilih kursi terlebih dahulu" {
		t.Fatalf("gate kursi salah: %v", err)
	}
}

func TestWizardSubmitBlockedOnEmptyName(t *testing.T) {
	w := pickedWizard(t)
	toggle(t, w, 1, 2)
	if err := w.UpdatePassenger(0, PassengerUpdate{Name: strptr("Andi")}); err != nil {
		t.Fatalf("UpdatePassenger error: %v", err)
	}
	// penumpang kedua sengaja kosong

	confirmAll(t, w)

	_, err := w.BeginSubmit()
	if !domain.IsValidation(err) {
		t.Fatalf("nama kosong tidak mem-blok submit: %v", err)
	}
	if w.Submitting {
		t.Fatalf("flag submitting menyala padahal validasi gagal")
	}
}

func TestWizardSingleInFlightSubmission(t *testing.T) {
	w := pickedWizard(t)
	toggle(t, w, 1)
	if err := w.UpdatePassenger(0, PassengerUpdate{Name: strptr("Andi")}); err != nil {
		t.Fatalf("UpdatePassenger error: %v", err)
	}
	confirmAll(t, w)

	if _, err := w.BeginSubmit(); err != nil {
		t.Fatalf("BeginSubmit pertama error: %v", err)
	}
	if _, err := w.BeginSubmit(); !domain.IsConflict(err) {
		t.Fatalf("submit kedua harus konflik, dapat %v", err)
	}

	// kegagalan upstream membuka lagi kesempatan submit
	w.FinishSubmit(0, domain.FieldErrors{"seats_selected": "kursi 1 sudah dibooking"})
	if w.Submitting {
		t.Fatalf("flag submitting tidak turun")
	}
	if w.FieldErrors["seats_selected"] == "" {
		t.Fatalf("field error backend tidak tersimpan")
	}
	if w.State == StateSubmitted {
		t.Fatalf("state submitted padahal gagal")
	}
}

func TestWizardToggleAfterConfirmStalesGate(t *testing.T) {
	w := pickedWizard(t)
	toggle(t, w, 1)
	if err := w.UpdatePassenger(0, PassengerUpdate{Name: strptr("Andi")}); err != nil {
		t.Fatalf("UpdatePassenger error: %v", err)
	}
	confirmAll(t, w)

	// batalkan kursi yang sudah dikonfirmasi
	toggle(t, w, 1)

	if w.Gate.State != GateHidden || w.Gate.Snapshot != nil {
		t.Fatalf("gate tidak kembali tertutup: %+v", w.Gate)
	}
	if _, err := w.BeginSubmit(); !domain.IsConflict(err) {
		t.Fatalf("draft tanpa kursi lolos submit: %v", err)
	}

	// kursi terpesan adalah no-op: review yang terbuka tetap berlaku
	toggle(t, w, 1)
	confirmAll(t, w)
	toggle(t, w, 3)
	if w.Gate.State != GateSuccess {
		t.Fatalf("no-op toggle menutup gate: %+v", w.Gate)
	}
}

func TestWizardToggleWhileReviewingStalesGate(t *testing.T) {
	w := pickedWizard(t)
	toggle(t, w, 1)
	if err := w.OpenReview(); err != nil {
		t.Fatalf("OpenReview error: %v", err)
	}

	toggle(t, w, 2)

	if w.Gate.State != GateHidden {
		t.Fatalf("review lama masih terbuka: %+v", w.Gate)
	}
	if err := w.Confirm(); !domain.IsConflict(err) {
		t.Fatalf("Confirm tanpa review harus konflik: %v", err)
	}
}

func TestWizardDefaultNameOnlyOnFreshEntry(t *testing.T) {
	w := NewWizard("sesi-3", "Rina")
	if err := w.SelectSchedule(testSchedule(nil), nil); err != nil {
		t.Fatalf("SelectSchedule error: %v", err)
	}

	toggle(t, w, 1)
	if w.Passengers[0].Name != "Rina" {
		t.Fatalf("nama default tidak terisi: %+v", w.Passengers[0])
	}

	// user menimpa nama, lalu kosongkan kursi dan pilih lagi
	if err := w.UpdatePassenger(0, PassengerUpdate{Name: strptr("Tono")}); err != nil {
		t.Fatalf("UpdatePassenger error: %v", err)
	}
	toggle(t, w, 1, 2)
	if w.Passengers[0].Name != "Rina" {
		// roster dikosongkan saat kursi habis, jadi entri baru memang fresh
		t.Fatalf("entri baru harus kembali ke default: %+v", w.Passengers[0])
	}
}
