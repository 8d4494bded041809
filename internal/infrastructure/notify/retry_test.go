package notify_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"orderflow/internal/infrastructure/notify"
)

type flakyMailer struct {
	failures int
	err      error
	sent     []notify.Email
	attempts int
}

func (m *flakyMailer) Send(ctx context.Context, e notify.Email) error {
	m.attempts++
	if m.attempts <= m.failures {
		return m.err
	}
	m.sent = append(m.sent, e)
	return nil
}

type flakyTexter struct {
	failures int
	attempts int
}

func (t *flakyTexter) Send(ctx context.Context, s notify.SMS) error {
	t.attempts++
	if t.attempts <= t.failures {
		return errors.New("gateway timeout")
	}
	return nil
}

func fastPolicy(retries uint64) notify.RetryPolicy {
	return notify.RetryPolicy{MaxRetries: retries, InitialInterval: time.Millisecond, MaxElapsedTime: time.Second}
}

func TestRetryMailer_RecoversFromTransientFailures(t *testing.T) {
	inner := &flakyMailer{failures: 2, err: errors.New("smtp 421")}
	m := notify.NewRetryMailer(inner, fastPolicy(3))

	err := m.Send(context.Background(), notify.Email{To: "jane@example.com"})
	require.NoError(t, err)
	require.Equal(t, 3, inner.attempts)
	require.Len(t, inner.sent, 1)
}

func TestRetryMailer_GivesUp(t *testing.T) {
	smtpErr := errors.New("smtp 421")
	inner := &flakyMailer{failures: 10, err: smtpErr}
	m := notify.NewRetryMailer(inner, fastPolicy(2))

	err := m.Send(context.Background(), notify.Email{})
	require.ErrorIs(t, err, smtpErr)
	require.Equal(t, 3, inner.attempts)
}

func TestRetryMailer_PermanentStopsImmediately(t *testing.T) {
	bad := errors.New("mailbox does not exist")
	inner := &flakyMailer{failures: 10, err: notify.Permanent(bad)}
	m := notify.NewRetryMailer(inner, fastPolicy(5))

	err := m.Send(context.Background(), notify.Email{})
	require.ErrorIs(t, err, bad)
	require.Equal(t, 1, inner.attempts)
}

func TestRetryTexter(t *testing.T) {
	inner := &flakyTexter{failures: 1}
	tx := notify.NewRetryTexter(inner, fastPolicy(1))

	require.NoError(t, tx.Send(context.Background(), notify.SMS{Number: "+33600000000"}))
	require.Equal(t, 2, inner.attempts)
}

func TestLogTransports(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core)

	require.NoError(t, notify.NewLogMailer(log).Send(context.Background(), notify.Email{
		From: "web@maboutique.com", To: "jane@example.com", Subject: "Order confirmed", Body: "Thanks",
	}))
	require.NoError(t, notify.NewLogTexter(log).Send(context.Background(), notify.SMS{
		Number: "+33600000000", Text: "Thanks",
	}))

	require.Equal(t, 1, logs.FilterMessage("email sent").Len())
	require.Equal(t, "jane@example.com", logs.FilterMessage("email sent").All()[0].ContextMap()["to"])
	require.Equal(t, 1, logs.FilterMessage("sms sent").Len())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, notify.NewLogMailer(log).Send(ctx, notify.Email{}), context.Canceled)
}
