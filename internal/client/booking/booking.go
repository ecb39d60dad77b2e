// Package booking implements the consultation booking flow: pick a doctor,
// choose a consultation type, then a date within the next week and one of
// the doctor's open slots, and confirm.
package booking

import (
	"fmt"
	"time"

	"github.com/beautyease/beautyease/internal/client/catalog"
	"github.com/beautyease/beautyease/internal/shared"
)

// Modality is how the consultation is conducted.
type Modality string

const (
	ModalityVideo Modality = "video"
	ModalityPhone Modality = "phone"
	ModalityChat  Modality = "chat"
)

// Modalities lists the selectable consultation types in display order.
var Modalities = []Modality{ModalityVideo, ModalityPhone, ModalityChat}

func validModality(m Modality) bool {
	for _, v := range Modalities {
		if v == m {
			return true
		}
	}
	return false
}

// DateOption is a selectable consultation date.
type DateOption struct {
	// Value is the date in YYYY-MM-DD form.
	Value string
	// Label is the short human form, e.g. "Mon, Sep 1".
	Label string
}

// NextWeekDates returns the seven days following now, earliest first.
func NextWeekDates(now time.Time) []DateOption {
	dates := make([]DateOption, 0, 7)
	for i := 1; i <= 7; i++ {
		d := now.AddDate(0, 0, i)
		dates = append(dates, DateOption{
			Value: d.Format("2006-01-02"),
			Label: d.Format("Mon, Jan 2"),
		})
	}
	return dates
}

// Summary describes a confirmed booking.
type Summary struct {
	DoctorName string
	Modality   Modality
	Date       string
	Time       string
	Price      float64
}

// String renders the confirmation message shown to the user.
func (s Summary) String() string {
	return fmt.Sprintf("Consultation booked with %s on %s at %s", s.DoctorName, s.Date, s.Time)
}

// Wizard collects a booking step by step. Selections validate against the
// chosen doctor's slots and the next-week date window; Confirm succeeds only
// once every step is complete, and resets the wizard afterwards.
type Wizard struct {
	doctor   *catalog.Doctor
	modality Modality
	date     string
	timeSlot string
	now      func() time.Time
}

// NewWizard builds an empty wizard. A nil clock defaults to time.Now.
func NewWizard(clock func() time.Time) *Wizard {
	if clock == nil {
		clock = time.Now
	}
	return &Wizard{modality: ModalityVideo, now: clock}
}

// Doctor returns the selected doctor, or nil before selection.
func (w *Wizard) Doctor() *catalog.Doctor {
	return w.doctor
}

// SelectDoctor starts a booking for the given doctor. Switching doctors
// clears any previously chosen slot, since slots differ per doctor.
func (w *Wizard) SelectDoctor(d catalog.Doctor) {
	if w.doctor == nil || w.doctor.ID != d.ID {
		w.timeSlot = ""
	}
	copied := d
	w.doctor = &copied
}

// SelectModality sets the consultation type.
func (w *Wizard) SelectModality(m Modality) error {
	if !validModality(m) {
		return fmt.Errorf("%w: unknown consultation type %q", shared.ErrValidation, m)
	}
	w.modality = m
	return nil
}

// SelectDate picks a date, which must fall inside the next-week window.
func (w *Wizard) SelectDate(value string) error {
	for _, opt := range NextWeekDates(w.now()) {
		if opt.Value == value {
			w.date = value
			return nil
		}
	}
	return fmt.Errorf("%w: date %q is not available", shared.ErrValidation, value)
}

// SelectTime picks one of the selected doctor's open slots.
func (w *Wizard) SelectTime(slot string) error {
	if w.doctor == nil {
		return fmt.Errorf("%w: select a doctor first", shared.ErrValidation)
	}
	for _, s := range w.doctor.AvailableSlots {
		if s == slot {
			w.timeSlot = slot
			return nil
		}
	}
	return fmt.Errorf("%w: slot %q is not available", shared.ErrValidation, slot)
}

// CanConfirm reports whether every step of the flow is complete.
func (w *Wizard) CanConfirm() bool {
	return w.doctor != nil && w.modality != "" && w.date != "" && w.timeSlot != ""
}

// Confirm finalizes the booking, returning its summary and resetting the
// wizard for the next one. Confirming an incomplete flow fails without
// changing any state.
func (w *Wizard) Confirm() (Summary, error) {
	if !w.CanConfirm() {
		return Summary{}, fmt.Errorf("%w: booking is incomplete", shared.ErrValidation)
	}

	s := Summary{
		DoctorName: w.doctor.Name,
		Modality:   w.modality,
		Date:       w.date,
		Time:       w.timeSlot,
		Price:      w.doctor.Price,
	}

	w.doctor = nil
	w.modality = ModalityVideo
	w.date = ""
	w.timeSlot = ""
	return s, nil
}
