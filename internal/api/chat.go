package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/nikolayk812/storefront/internal/domain"
)

func (c *Client) ChatMessages(ctx context.Context) Result[[]domain.ChatMessage] {
	return list(ctx, c, "/chat/messages", nil, chatMessageDTO.toDomain)
}

func (c *Client) SendChatMessage(ctx context.Context, body string) Result[domain.ChatMessage] {
	body = strings.TrimSpace(body)
	if err := required(map[string]string{"message": body}); err != nil {
		return fail[domain.ChatMessage](err)
	}

	var dto chatMessageDTO
	if err := c.do(ctx, http.MethodPost, "/chat/messages", nil, map[string]string{"body": body}, &dto); err != nil {
		return fail[domain.ChatMessage](err)
	}

	msg, err := dto.toDomain()
	if err != nil {
		return fail[domain.ChatMessage](err)
	}
	return ok(msg)
}
