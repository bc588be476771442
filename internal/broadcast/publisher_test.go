package broadcast

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playroomlabs/kingsquiz-backend/testing/suite"
)

func TestPublisher_Publish(t *testing.T) {
	ctx, st := suite.New(t)

	publisher := NewPublisher(st.Storage)

	// Given: a subscriber on the game's event channel
	subscription := st.Storage.Subscribe(ctx, channelPrefix+"game-123")
	t.Cleanup(func() {
		_ = subscription.Close()
	})

	_, err := subscription.Receive(ctx)
	require.NoError(t, err)

	// When: publishing a round-advanced event
	event := Event{
		Type:     EventRoundAdvanced,
		GameID:   "game-123",
		Round:    1,
		KingName: "bob",
		Scores:   map[string]int{"alice": 10},
	}
	require.NoError(t, publisher.Publish(ctx, event))

	// Then: the subscriber receives the event as JSON
	select {
	case message := <-subscription.Channel():
		var received Event
		require.NoError(t, json.Unmarshal([]byte(message.Payload), &received))
		assert.Equal(t, event, received)
	case <-time.After(5 * time.Second):
		t.Fatal("event was never delivered")
	}
}
