package models

import "time"

// ChatSender enum
type ChatSender string

const (
	SenderUser  ChatSender = "user"
	SenderBot   ChatSender = "bot"
	SenderError ChatSender = "error"
)

// ChatMessage is one entry in a user's assistant conversation. The
// "error" sender renders as a distinct error bubble on the client.
type ChatMessage struct {
	Sender    ChatSender `json:"sender"`
	Text      string     `json:"text"`
	Timestamp time.Time  `json:"timestamp"`
}
