package notification

import (
	"context"

	"go.uber.org/zap"
)

// Simulated only logs; it always succeeds.
type Simulated struct {
	logger *zap.Logger
}

func NewSimulated(logger *zap.Logger) *Simulated {
	return &Simulated{logger: logger}
}

func (s *Simulated) Send(_ context.Context, phone, message string) error {
	s.logger.Info("whatsapp simulated send",
		zap.String("to", phone),
		zap.String("message", message),
	)
	return nil
}
