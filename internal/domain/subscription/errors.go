package subscription

import (
	"errors"
	"fmt"
)

var (
	ErrSubscriptionNotFound    = errors.New("subscription not found")
	ErrSubscriptionExists      = errors.New("tenant already subscribed to plan")
	ErrSubscriptionCancelled   = errors.New("subscription cancelled")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrUsageNotFound           = errors.New("usage record not found")
)

func ErrInvalidTransition(from, to string) error {
	return fmt.Errorf("%w: from %s to %s", ErrInvalidStatusTransition, from, to)
}
