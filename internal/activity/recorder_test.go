package activity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yourorg/housing-site/internal/events"
)

func TestRecorderCounts(t *testing.T) {
	pub := events.NewInMemory(8)
	rec := &Recorder{Pub: pub}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		rec.Run(ctx)
		close(done)
	}()

	pub.Publish(ctx, events.Event{Kind: events.PropertySelected, PropertyID: 1})
	pub.Publish(ctx, events.Event{Kind: events.PropertySelected, PropertyID: 2})
	pub.Publish(ctx, events.Event{Kind: events.DialogClosed})

	assert.Eventually(t, func() bool {
		c := rec.Counts()
		return c[events.PropertySelected] == 2 && c[events.DialogClosed] == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}
