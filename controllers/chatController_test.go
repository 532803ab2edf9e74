package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicmap-be/models"
)

func TestSendChatMessageWithoutAPIKey(t *testing.T) {
	resetState()
	t.Setenv("GEMINI_API_KEY", "")

	c, w := testContext(t, http.MethodPost, "/api/assistant/chat",
		`{"message":"How do I report a pothole?"}`)
	asCitizen(c)

	SendChatMessage(c)
	require.Equal(t, http.StatusBadGateway, w.Code)

	var resp struct {
		Error   string             `json:"error"`
		Message models.ChatMessage `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, chatFailureText, resp.Error)
	assert.Equal(t, models.SenderError, resp.Message.Sender)

	// The conversation records the greeting, the user's message, and the
	// failure bubble in order.
	history := chats.History(models.CitizenReporter.ID)
	require.Len(t, history, 3)
	assert.Equal(t, models.SenderBot, history[0].Sender)
	assert.Equal(t, models.SenderUser, history[1].Sender)
	assert.Equal(t, "How do I report a pothole?", history[1].Text)
	assert.Equal(t, models.SenderError, history[2].Sender)
	assert.Equal(t, chatFailureText, history[2].Text)
}

func TestSendChatMessageUnauthenticated(t *testing.T) {
	resetState()
	c, w := testContext(t, http.MethodPost, "/api/assistant/chat", `{"message":"hi"}`)

	SendChatMessage(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSendChatMessageRejectsEmptyMessage(t *testing.T) {
	resetState()
	c, w := testContext(t, http.MethodPost, "/api/assistant/chat", `{"message":""}`)
	asCitizen(c)

	SendChatMessage(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	// Nothing beyond the greeting should be recorded.
	assert.Len(t, chats.History(models.CitizenReporter.ID), 1)
}

func TestGetChatHistorySeedsGreeting(t *testing.T) {
	resetState()
	c, w := testContext(t, http.MethodGet, "/api/assistant/chat/history", "")
	asCitizen(c)

	GetChatHistory(c)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Messages []models.ChatMessage `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, models.SenderBot, resp.Messages[0].Sender)
	assert.Contains(t, resp.Messages[0].Text, "civic issues")
}
