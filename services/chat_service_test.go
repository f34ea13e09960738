package services

import (
	"context"
	"strings"
	"testing"

	"readroom/domain"
	"readroom/errors"

	"github.com/stretchr/testify/require"
)

func TestChatService_PostMessage_Validation(t *testing.T) {
	req := require.New(t)
	// The engine is never reached when validation rejects the command
	service := NewChatService(nil, 200)

	tests := []struct {
		description string
		cmd         domain.PostMessageCommand
	}{
		{
			"Should fail without a session",
			domain.PostMessageCommand{SenderID: "u1", Content: "hello"},
		},
		{
			"Should fail without a sender",
			domain.PostMessageCommand{SessionID: "42", Content: "hello"},
		},
		{
			"Should fail with empty content",
			domain.PostMessageCommand{SessionID: "42", SenderID: "u1"},
		},
		{
			"Should fail when content exceeds the configured cap",
			domain.PostMessageCommand{SessionID: "42", SenderID: "u1", Content: strings.Repeat("a", 201)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			_, err := service.PostMessage(context.Background(), tt.cmd)
			req.ErrorIs(err, errors.ErrInvalidMessage)
		})
	}
}
