package dispatch

import (
	"context"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"

	"github.com/arkCyber/HunterMatrix/internal/config"
)

// sendWithRetry runs fn under the channel's retry policy and reports how
// many attempts were used. The policy applies the same fixed delay between
// every attempt; context cancellation stops further attempts immediately.
func sendWithRetry(ctx context.Context, policy config.RetryPolicy, fn func(ctx context.Context) error) (uint, error) {
	maxAttempts := policy.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	retry := retrypolicy.NewBuilder[any]().
		WithMaxAttempts(int(maxAttempts)).
		WithDelay(policy.Delay()).
		Build()

	var attempts uint
	err := failsafe.With(retry).WithContext(ctx).Run(func() error {
		attempts++
		return fn(ctx)
	})
	return attempts, err
}
