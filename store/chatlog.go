package store

import (
	"sync"
	"time"

	"civicmap-be/models"
)

const chatGreeting = "Hello! How can I help you with civic issues today?"

// ChatLog keeps per-user assistant conversations in memory. Like the
// complaint collection it lives for the process lifetime only.
type ChatLog struct {
	mu       sync.RWMutex
	messages map[string][]models.ChatMessage
}

// NewChatLog creates an empty chat log.
func NewChatLog() *ChatLog {
	return &ChatLog{messages: make(map[string][]models.ChatMessage)}
}

// Append records a message in the user's conversation and returns it.
func (l *ChatLog) Append(userID string, sender models.ChatSender, text string) models.ChatMessage {
	msg := models.ChatMessage{Sender: sender, Text: text, Timestamp: time.Now()}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.ensureGreeting(userID)
	l.messages[userID] = append(l.messages[userID], msg)
	return msg
}

// History returns a snapshot of the user's conversation, starting with
// the bot greeting.
func (l *ChatLog) History(userID string) []models.ChatMessage {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ensureGreeting(userID)

	out := make([]models.ChatMessage, len(l.messages[userID]))
	copy(out, l.messages[userID])
	return out
}

// ensureGreeting seeds a new conversation with the opening bot message.
// Caller holds the write lock.
func (l *ChatLog) ensureGreeting(userID string) {
	if _, ok := l.messages[userID]; !ok {
		l.messages[userID] = []models.ChatMessage{
			{Sender: models.SenderBot, Text: chatGreeting, Timestamp: time.Now()},
		}
	}
}

// Chats is the process-wide assistant conversation log.
var Chats = NewChatLog()
