package repository_test

import (
	"context"
	"testing"

	"github.com/Shivanand-hulikatti/webinar-booking/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestKeyedLocker_CancelledWaiterSkipsFn(t *testing.T) {
	req := require.New(t)
	locker := repository.NewKeyedLocker()

	entered := make(chan struct{})
	release := make(chan struct{})
	holderDone := make(chan error, 1)
	go func() {
		holderDone <- locker.WithWebinarLock(context.Background(), "webinar-1", func(context.Context) error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	ctx, cancel := context.WithCancel(context.Background())
	waiterDone := make(chan error, 1)
	var ran bool
	go func() {
		waiterDone <- locker.WithWebinarLock(ctx, "webinar-1", func(context.Context) error {
			ran = true
			return nil
		})
	}()

	cancel()
	close(release)

	req.NoError(<-holderDone)
	req.ErrorIs(<-waiterDone, context.Canceled)
	req.False(ran)

	// The key is usable again once both callers are gone.
	req.NoError(locker.WithWebinarLock(context.Background(), "webinar-1", func(context.Context) error { return nil }))
}
