package notify

import (
	"context"

	"go.uber.org/zap"
)

type Email struct {
	From    string
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, e Email) error
}

// LogMailer delivers nothing; it writes every message to the log.
type LogMailer struct {
	log *zap.Logger
}

func NewLogMailer(log *zap.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(ctx context.Context, e Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.log.Info("email sent",
		zap.String("from", e.From),
		zap.String("to", e.To),
		zap.String("subject", e.Subject),
		zap.String("body", e.Body),
	)
	return nil
}
