package client

import "go.uber.org/zap"

// Notifier shows transient success and error messages to the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier writes notifications to a zap logger.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n LogNotifier) Success(msg string) {
	n.logger().Info(msg, zap.String("kind", "success"))
}

func (n LogNotifier) Error(msg string) {
	n.logger().Warn(msg, zap.String("kind", "error"))
}

func (n LogNotifier) logger() *zap.Logger {
	if n.Logger == nil {
		return zap.L()
	}
	return n.Logger
}
