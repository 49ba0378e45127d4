package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChat(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle("GET /v1/chat/messages", jsonHandler(http.StatusOK,
		`[{"id":1,"from":"support","body":"Hi!","sentAt":"2026-10-01T10:00:00Z"}]`))
	mux.Handle("POST /v1/chat/messages", jsonHandler(http.StatusCreated,
		`{"id":2,"from":"me","body":"Where is my order?","sentAt":"2026-10-01T10:01:00Z"}`))

	var rec recorder
	client, _ := newTestClient(t, rec.wrap(mux))
	ctx := t.Context()

	messages := client.ChatMessages(ctx)
	require.True(t, messages.Success, messages.Error)
	require.Len(t, messages.Data, 1)
	assert.Equal(t, "support", messages.Data[0].From)
	assert.Equal(t, 2026, messages.Data[0].SentAt.Year())

	sent := client.SendChatMessage(ctx, "  Where is my order?  ")
	require.True(t, sent.Success, sent.Error)
	assert.Equal(t, "2", sent.Data.ID)
	assert.JSONEq(t, `{"body":"Where is my order?"}`, rec.last().Body)

	blank := client.SendChatMessage(ctx, "   ")
	assert.False(t, blank.Success)
	assert.Equal(t, "message required", blank.Error)
	assert.Equal(t, 2, rec.count())
}
