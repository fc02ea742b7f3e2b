package ports

import "context"

// SubmissionGuard serializes login/register submissions. TryAcquire returns
// false when a submission for op is already outstanding.
type SubmissionGuard interface {
	TryAcquire(ctx context.Context, op string) (bool, error)
	Release(ctx context.Context, op string) error
}
