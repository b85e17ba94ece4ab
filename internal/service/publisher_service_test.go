package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"milktrack-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisherDeliversToSubscriber(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer func() { _ = pubSub.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	messages, err := pubSub.Subscribe(ctx, "IMPORT_COMPLETED")
	require.NoError(t, err)

	publisher := NewPublisherService("IMPORT_COMPLETED", pubSub)
	payload, err := json.Marshal(dto.ImportCompletedMessage{
		UploadId: "abc",
		Imported: 3,
		Skipped:  1,
	})
	require.NoError(t, err)
	require.NoError(t, publisher.Publish(ctx, payload))

	select {
	case msg := <-messages:
		var event dto.ImportCompletedMessage
		require.NoError(t, json.Unmarshal(msg.Payload, &event))
		assert.Equal(t, "abc", event.UploadId)
		assert.Equal(t, 3, event.Imported)
		assert.Equal(t, 1, event.Skipped)
		msg.Ack()
	case <-time.After(5 * time.Second):
		t.Fatal("no message delivered")
	}
}
