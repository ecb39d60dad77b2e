package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/beautyease/beautyease/internal/client/booking"
	"github.com/beautyease/beautyease/internal/client/catalog"
)

// Consult lists the available specialists and walks the user through the
// booking flow: doctor, consultation type, date, time slot, confirm.
func (a *App) Consult(ctx context.Context) error {
	doctors := catalog.Doctors()
	for _, d := range doctors {
		status := "offline"
		if d.IsOnline {
			status = "online"
		}
		printlnFn(fmt.Sprintf("[%s] %s - %s, %d yrs, %.1f★ (%d reviews), $%.0f, %s",
			d.ID, d.Name, d.Specialization, d.Experience, d.Rating, d.Reviews, d.Price, status))
	}

	id, err := getSimpleText(a.reader, "Doctor id to book (Enter to go back)", os.Stdout)
	if err != nil || id == "" {
		return err
	}

	doctor, ok := catalog.DoctorByID(id)
	if !ok {
		printlnFn("Unknown doctor id:", id)
		return nil
	}

	w := booking.NewWizard(time.Now)
	w.SelectDoctor(doctor)

	modality, err := GetChoice(a.reader, "Consultation type",
		[]string{string(booking.ModalityVideo), string(booking.ModalityPhone), string(booking.ModalityChat)},
		string(booking.ModalityVideo), os.Stdout)
	if err != nil {
		return err
	}
	if err := w.SelectModality(booking.Modality(modality)); err != nil {
		printlnFn(err.Error())
		return err
	}

	dates := booking.NextWeekDates(time.Now())
	for i, d := range dates {
		printlnFn(fmt.Sprintf("%d) %s", i+1, d.Label))
	}
	dateChoice, err := getSimpleText(a.reader, "Pick a day (1-7)", os.Stdout)
	if err != nil {
		return err
	}
	idx, err := strconv.Atoi(dateChoice)
	if err != nil || idx < 1 || idx > len(dates) {
		printlnFn("Pick a number between 1 and 7.")
		return nil
	}
	if err := w.SelectDate(dates[idx-1].Value); err != nil {
		printlnFn(err.Error())
		return err
	}

	slot, err := GetChoice(a.reader, "Time slot", doctor.AvailableSlots, doctor.AvailableSlots[0], os.Stdout)
	if err != nil {
		return err
	}
	if err := w.SelectTime(slot); err != nil {
		printlnFn(err.Error())
		return err
	}

	if !w.CanConfirm() {
		printlnFn("Booking is incomplete.")
		return nil
	}

	summary, err := w.Confirm()
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(summary.String())
	printlnFn(fmt.Sprintf("Type: %s, fee: $%.0f", summary.Modality, summary.Price))
	return nil
}
