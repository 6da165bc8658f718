package cron

import (
	"context"
	"fmt"
	"time"

	"eazywed/config"
	"eazywed/metrics"
	"eazywed/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// BookingCompleter completes confirmed bookings dated before now.
type BookingCompleter interface {
	CompleteDueBookings(ctx context.Context, now time.Time) (int64, error)
}

// Worker runs the asynq server and the scheduler that enqueues the
// completion sweep.
type Worker struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
	logger    *zap.Logger
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitCompletionWorker starts processing sweep tasks in the background and
// registers the sweep on the configured cron spec.
func InitCompletionWorker(completer BookingCompleter, logger *zap.Logger) (*Worker, error) {
	opts := redisOpts()
	w := &Worker{
		server: asynq.NewServer(opts, asynq.Config{
			Concurrency: 2,
			Queues:      map[string]int{"default": 1},
			Logger:      logger.Sugar(),
		}),
		scheduler: asynq.NewScheduler(opts, &asynq.SchedulerOpts{
			Logger:   logger.Sugar(),
			Location: time.UTC,
		}),
		logger: logger,
	}

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeCompleteBookings, HandleCompleteBookings(completer, time.Now, logger))

	const maxAttempts = 5
	for attempts := 1; ; attempts++ {
		err := w.server.Start(mux)
		if err == nil {
			break
		}
		logger.Warn("Completion worker failed to start",
			zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
		if attempts == maxAttempts {
			return nil, fmt.Errorf("failed to start completion worker: %w", err)
		}
		time.Sleep(time.Duration(attempts*2) * time.Second)
	}

	task, taskOpts := tasks.NewCompleteBookingsTask()
	entryID, err := w.scheduler.Register(config.AppConfig.CompletionSweep, task, taskOpts...)
	if err != nil {
		w.server.Shutdown()
		return nil, fmt.Errorf("failed to register completion sweep %q: %w", config.AppConfig.CompletionSweep, err)
	}
	if err := w.scheduler.Start(); err != nil {
		w.server.Shutdown()
		return nil, fmt.Errorf("failed to start scheduler: %w", err)
	}
	logger.Info("Completion sweep scheduled",
		zap.String("spec", config.AppConfig.CompletionSweep), zap.String("entryID", entryID))
	return w, nil
}

// Shutdown stops the scheduler and waits for in-flight tasks.
func (w *Worker) Shutdown() {
	w.scheduler.Shutdown()
	w.server.Shutdown()
}

// HandleCompleteBookings processes one sweep task.
func HandleCompleteBookings(completer BookingCompleter, now func() time.Time, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		n, err := completer.CompleteDueBookings(ctx, now())
		if err != nil {
			logger.Error("Completion sweep failed", zap.Error(err))
			return err
		}
		metrics.AddCompleted(n)
		logger.Debug("Completion sweep finished", zap.Int64("completed", n))
		return nil
	}
}
