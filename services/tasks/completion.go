package tasks

import (
	"time"

	"github.com/hibiken/asynq"
)

const TypeCompleteBookings = "booking:complete"

// NewCompleteBookingsTask builds the periodic sweep that completes confirmed
// bookings whose event date has passed.
func NewCompleteBookingsTask() (*asynq.Task, []asynq.Option) {
	task := asynq.NewTask(TypeCompleteBookings, nil)
	opts := []asynq.Option{
		asynq.MaxRetry(3),
		asynq.Timeout(time.Minute),
	}
	return task, opts
}
