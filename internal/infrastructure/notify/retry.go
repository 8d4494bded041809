package notify

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy bounds the retries of a transport send.
type RetryPolicy struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxElapsedTime  time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:      3,
		InitialInterval: 200 * time.Millisecond,
		MaxElapsedTime:  5 * time.Second,
	}
}

func (p RetryPolicy) retry(ctx context.Context, op func() error) error {
	// BackOff implementations are stateful; build a fresh one per send.
	bo := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		bo.InitialInterval = p.InitialInterval
	}
	if p.MaxElapsedTime > 0 {
		bo.MaxElapsedTime = p.MaxElapsedTime
	}
	return backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, p.MaxRetries), ctx))
}

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

type RetryMailer struct {
	next   Mailer
	policy RetryPolicy
}

func NewRetryMailer(next Mailer, policy RetryPolicy) *RetryMailer {
	return &RetryMailer{next: next, policy: policy}
}

func (m *RetryMailer) Send(ctx context.Context, e Email) error {
	return m.policy.retry(ctx, func() error {
		return m.next.Send(ctx, e)
	})
}

type RetryTexter struct {
	next   Texter
	policy RetryPolicy
}

func NewRetryTexter(next Texter, policy RetryPolicy) *RetryTexter {
	return &RetryTexter{next: next, policy: policy}
}

func (t *RetryTexter) Send(ctx context.Context, s SMS) error {
	return t.policy.retry(ctx, func() error {
		return t.next.Send(ctx, s)
	})
}
