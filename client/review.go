package client

import (
	"context"

	"eazywed/models"

	"go.uber.org/zap"
)

// ReviewForm is the review dialog of a completed booking.
type ReviewForm struct {
	Open      bool
	BookingID string
	ServiceID string
	Name      string
	Rating    int
	Comment   string
}

// OpenReview prefills the review form from a loaded review row or booking.
func (d *Dashboard) OpenReview(bookingID string) (ReviewForm, error) {
	d.mu.Lock()
	form := ReviewForm{Open: true, BookingID: bookingID, Rating: models.MaxRating}
	found := false
	for _, item := range d.state.Reviews {
		if item.BookingID == bookingID {
			form.ServiceID = firstNonEmpty(item.ServiceID, item.CardTemplateID)
			form.Name = item.Name
			found = true
			break
		}
	}
	if !found {
		if b, ok := d.state.findBooking(bookingID); ok {
			form.ServiceID = firstNonEmpty(b.ServiceID, b.CardTemplateID)
			form.Name = b.Name
			found = true
		}
	}
	if found {
		d.reviewForm = form
	}
	d.mu.Unlock()

	if !found {
		d.notifier.Error(ErrBookingNotFound.Error())
		return ReviewForm{}, ErrBookingNotFound
	}
	return form, nil
}

// ReviewForm returns the current review form.
func (d *Dashboard) ReviewForm() ReviewForm {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.reviewForm
}

// EditReview changes the open review form.
func (d *Dashboard) EditReview(edit func(*ReviewForm)) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.reviewForm.Open {
		return ErrNoOpenForm
	}
	edit(&d.reviewForm)
	d.reviewForm.Open = true
	return nil
}

// CloseReview discards the review form.
func (d *Dashboard) CloseReview() {
	d.mu.Lock()
	d.reviewForm = ReviewForm{}
	d.mu.Unlock()
}

// SubmitReview posts the open review. A form without a booking or rating is
// rejected without a request.
func (d *Dashboard) SubmitReview(ctx context.Context) error {
	form := d.ReviewForm()
	if form.BookingID == "" || form.Rating == 0 {
		d.notifier.Error(ErrMissingInformation.Error())
		return ErrMissingInformation
	}

	resp, err := d.api.SubmitReview(ctx, models.ReviewRequest{
		BookingID: form.BookingID,
		Rating:    form.Rating,
		Comment:   form.Comment,
	})
	if err != nil {
		d.logger.Warn("review failed", zap.String("bookingID", form.BookingID), zap.Error(err))
		d.notifier.Error(messageFor(err, "Failed to submit review"))
		return err
	}

	d.notifier.Success(successMessage(resp, "Review submitted successfully"))
	d.CloseReview()
	return d.reload(ctx, TabReviews)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
