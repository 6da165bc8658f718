package client

import (
	"context"
	"errors"
	"strings"

	"eazywed/models"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// BookingForm is the booking dialog opened from an estimation. With neither
// ServiceID nor CardTemplateID set it books the whole estimation.
type BookingForm struct {
	Open           bool
	EstimationID   string
	ServiceID      string
	PackageID      string
	CardTemplateID string
	Name           string
	DateTime       string
	Quantity       int
}

// FullEstimation reports whether the form books every line at once.
func (f BookingForm) FullEstimation() bool {
	return f.ServiceID == "" && f.CardTemplateID == ""
}

// BuildBookingRequest is the single-item payload of the form.
func BuildBookingRequest(f BookingForm) models.BookingRequest {
	quantity := f.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	req := models.BookingRequest{
		EstimationID: f.EstimationID,
		DateTime:     f.DateTime,
		Quantity:     quantity,
	}
	if f.ServiceID != "" {
		req.ServiceID = f.ServiceID
		req.PackageID = f.PackageID
	} else {
		req.CardTemplateID = f.CardTemplateID
	}
	return req
}

// OpenBooking opens the booking form for one service or card line of an
// estimation, or for the whole estimation when both ids are empty.
func (d *Dashboard) OpenBooking(estimationID, serviceID, cardID string) (BookingForm, error) {
	d.mu.Lock()
	form, err := d.openBookingLocked(estimationID, serviceID, cardID)
	if err == nil {
		d.bookingForm = form
	}
	d.mu.Unlock()

	if err != nil {
		d.notifier.Error(err.Error())
		return BookingForm{}, err
	}
	return form, nil
}

func (d *Dashboard) openBookingLocked(estimationID, serviceID, cardID string) (BookingForm, error) {
	est, ok := d.state.findEstimation(estimationID)
	if !ok {
		return BookingForm{}, ErrEstimationNotFound
	}
	form := BookingForm{
		Open:         true,
		EstimationID: est.ID,
		DateTime:     d.now().Format(dateLayout),
		Quantity:     1,
	}
	switch {
	case serviceID != "":
		line, ok := est.FindService(serviceID)
		if !ok {
			return BookingForm{}, ErrServiceNotInEstimation
		}
		form.ServiceID = line.ServiceID
		form.PackageID = line.PackageID
		form.Name = line.Name
		form.Quantity = max(line.Quantity, 1)
	case cardID != "":
		line, ok := est.FindCard(cardID)
		if !ok {
			return BookingForm{}, ErrCardNotInEstimation
		}
		form.CardTemplateID = line.CardID
		form.Name = line.Name
		form.Quantity = max(line.Quantity, 1)
	default:
		form.Name = "Estimation #" + models.ShortID(est.ID)
	}
	return form, nil
}

// resolveFormLocked checks the open form against the loaded estimations,
// which may have changed since it was opened, and takes the quantity from the
// current line.
func (d *Dashboard) resolveFormLocked() (BookingForm, error) {
	form := d.bookingForm
	if !form.Open {
		return BookingForm{}, ErrNoOpenForm
	}
	est, ok := d.state.findEstimation(form.EstimationID)
	if !ok {
		return BookingForm{}, ErrEstimationNotFound
	}
	switch {
	case form.ServiceID != "":
		line, ok := est.FindService(form.ServiceID)
		if !ok {
			return BookingForm{}, ErrServiceNotInEstimation
		}
		form.PackageID = line.PackageID
		form.Quantity = max(line.Quantity, 1)
	case form.CardTemplateID != "":
		line, ok := est.FindCard(form.CardTemplateID)
		if !ok {
			return BookingForm{}, ErrCardNotInEstimation
		}
		form.Quantity = max(line.Quantity, 1)
	}
	return form, nil
}

// BookingForm returns the current booking form.
func (d *Dashboard) BookingForm() BookingForm {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.bookingForm
}

// EditBooking changes the open booking form, e.g. its event date.
func (d *Dashboard) EditBooking(edit func(*BookingForm)) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.bookingForm.Open {
		return ErrNoOpenForm
	}
	edit(&d.bookingForm)
	d.bookingForm.Open = true
	return nil
}

// CloseBooking discards the booking form.
func (d *Dashboard) CloseBooking() {
	d.mu.Lock()
	d.bookingForm = BookingForm{}
	d.mu.Unlock()
}

// SubmitBooking sends the open form: one convert request for a whole
// estimation, or a single booking. On success the form is reset and the
// bookings then estimations tabs are reloaded.
func (d *Dashboard) SubmitBooking(ctx context.Context) error {
	d.mu.Lock()
	form, err := d.resolveFormLocked()
	d.mu.Unlock()
	if errors.Is(err, ErrNoOpenForm) {
		return err
	}
	if err != nil {
		d.notifier.Error(err.Error())
		return err
	}
	if strings.TrimSpace(form.DateTime) == "" {
		d.notifier.Error(ErrMissingInformation.Error())
		return ErrMissingInformation
	}

	var (
		resp     *MessageResponse
		fallback string
	)
	if form.FullEstimation() {
		resp, err = d.api.ConvertEstimation(ctx, models.ConvertEstimationRequest{
			EstimationID: form.EstimationID,
			DateTime:     form.DateTime,
		})
		fallback = "Estimation converted to bookings successfully!"
	} else {
		resp, err = d.api.CreateBooking(ctx, BuildBookingRequest(form))
		fallback = "Booking created successfully!"
	}
	if err != nil {
		d.logger.Warn("booking failed", zap.String("estimationID", form.EstimationID), zap.Error(err))
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Message == ownListingMessage {
			d.notifier.Error(ownListingMessage)
		} else {
			d.notifier.Error(messageFor(err, "Failed to book item"))
		}
		return err
	}

	d.notifier.Success(successMessage(resp, fallback))
	d.CloseBooking()
	if err := d.reload(ctx, TabBookings); err != nil {
		return err
	}
	return d.reload(ctx, TabEstimations)
}
