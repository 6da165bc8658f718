package client

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// TargetKind says what a deletion removes.
type TargetKind int

const (
	TargetEstimation TargetKind = iota
	TargetBooking
)

// DeleteTarget names the thing to remove. For estimations, ServiceID or
// CardID narrows the deletion to one line.
type DeleteTarget struct {
	Kind      TargetKind
	ID        string
	ServiceID string
	CardID    string
}

func (t DeleteTarget) owningTab() Tab {
	if t.Kind == TargetBooking {
		return TabBookings
	}
	return TabEstimations
}

// DeletionPhase is the state of the delete/cancel confirmation flow.
type DeletionPhase int

const (
	PhaseIdle DeletionPhase = iota
	PhaseConfirming
	PhaseExecuting
)

func (p DeletionPhase) String() string {
	switch p {
	case PhaseConfirming:
		return "confirming"
	case PhaseExecuting:
		return "executing"
	}
	return "idle"
}

// DeletionState is Idle, Confirming(Target) or Executing(Target). Err holds
// the failure of the last execution while confirming again.
type DeletionState struct {
	Phase  DeletionPhase
	Target DeleteTarget
	Err    error
}

// Deletion returns the current deletion state.
func (d *Dashboard) Deletion() DeletionState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.deletion
}

// RequestDelete moves to Confirming(target). Bookings must be pending in the
// loaded state.
func (d *Dashboard) RequestDelete(target DeleteTarget) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.deletion.Phase == PhaseExecuting {
		return ErrDeletionInProgress
	}
	switch target.Kind {
	case TargetBooking:
		b, ok := d.state.findBooking(target.ID)
		if !ok {
			return ErrBookingNotFound
		}
		if !b.Cancellable() {
			return ErrNotCancellable
		}
	case TargetEstimation:
		est, ok := d.state.findEstimation(target.ID)
		if !ok {
			return ErrEstimationNotFound
		}
		if target.ServiceID != "" {
			if _, ok := est.FindService(target.ServiceID); !ok {
				return ErrServiceNotInEstimation
			}
		} else if target.CardID != "" {
			if _, ok := est.FindCard(target.CardID); !ok {
				return ErrCardNotInEstimation
			}
		}
	default:
		return fmt.Errorf("unknown delete target kind %d", target.Kind)
	}
	d.deletion = DeletionState{Phase: PhaseConfirming, Target: target}
	return nil
}

// CancelDelete returns to Idle unless a deletion is executing.
func (d *Dashboard) CancelDelete() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.deletion.Phase == PhaseConfirming {
		d.deletion = DeletionState{}
	}
}

// ConfirmDelete executes the confirmed deletion. Success returns to Idle and
// reloads the owning tab; failure returns to Confirming with the error kept.
func (d *Dashboard) ConfirmDelete(ctx context.Context) error {
	d.mu.Lock()
	switch d.deletion.Phase {
	case PhaseIdle:
		d.mu.Unlock()
		return ErrNothingToConfirm
	case PhaseExecuting:
		d.mu.Unlock()
		return ErrDeletionInProgress
	}
	target := d.deletion.Target
	d.deletion = DeletionState{Phase: PhaseExecuting, Target: target}
	d.mu.Unlock()

	resp, err := d.executeDelete(ctx, target)
	if err != nil {
		d.logger.Warn("deletion failed", zap.String("id", target.ID), zap.Error(err))
		d.mu.Lock()
		d.deletion = DeletionState{Phase: PhaseConfirming, Target: target, Err: err}
		d.mu.Unlock()
		d.notifier.Error(messageFor(err, deleteFailure(target)))
		return err
	}

	d.mu.Lock()
	d.deletion = DeletionState{}
	d.mu.Unlock()
	d.notifier.Success(successMessage(resp, deleteSuccess(target)))
	return d.reload(ctx, target.owningTab())
}

func (d *Dashboard) executeDelete(ctx context.Context, t DeleteTarget) (*MessageResponse, error) {
	switch {
	case t.Kind == TargetBooking:
		return d.api.CancelBooking(ctx, t.ID)
	case t.ServiceID != "":
		return d.api.DeleteEstimationService(ctx, t.ID, t.ServiceID)
	case t.CardID != "":
		return d.api.DeleteEstimationCard(ctx, t.ID, t.CardID)
	default:
		return d.api.DeleteEstimation(ctx, t.ID)
	}
}

func deleteSuccess(t DeleteTarget) string {
	switch {
	case t.Kind == TargetBooking:
		return "Booking canceled successfully"
	case t.ServiceID != "":
		return "Service removed from estimation successfully"
	case t.CardID != "":
		return "Card removed from estimation successfully"
	default:
		return "Estimation removed successfully"
	}
}

func deleteFailure(t DeleteTarget) string {
	if t.Kind == TargetBooking {
		return "Failed to cancel booking"
	}
	return "Failed to delete estimation item"
}
