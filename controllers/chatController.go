package controllers

import (
	"log"
	"net/http"

	"civicmap-be/config"
	"civicmap-be/models"
	"civicmap-be/store"

	"github.com/gin-gonic/gin"
	genai "google.golang.org/genai"
)

const chatModel = "gemini-2.5-flash"

const chatSystemInstruction = "You are a helpful assistant for a civic issue tracking application. " +
	"You can answer questions about local issues, reporting procedures, and the status of complaints. " +
	"Be concise and friendly."

const chatFailureText = "Sorry, I'm having trouble connecting. Please try again later."

var chats = store.Chats

// SendChatMessage forwards a user message to the assistant and records
// both sides of the exchange. A connectivity failure is recorded as an
// "error"-category message so the client renders it as a distinct
// bubble, and the action stays retryable.
func SendChatMessage(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		Message string `json:"message" binding:"required,max=2000"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chats.Append(userID, models.SenderUser, input.Message)

	ctx := c.Request.Context()
	cli, err := config.NewGenAIClient(ctx)
	if err != nil {
		log.Println("Error creating genai client:", err)
		msg := chats.Append(userID, models.SenderError, chatFailureText)
		c.JSON(http.StatusBadGateway, gin.H{"error": chatFailureText, "message": msg})
		return
	}

	resp, err := cli.Models.GenerateContent(ctx, chatModel,
		[]*genai.Content{{Parts: []*genai.Part{{Text: input.Message}}}},
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: chatSystemInstruction}}},
		},
	)
	if err != nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Println("Error sending chat message:", err)
		msg := chats.Append(userID, models.SenderError, chatFailureText)
		c.JSON(http.StatusBadGateway, gin.H{"error": chatFailureText, "message": msg})
		return
	}

	msg := chats.Append(userID, models.SenderBot, resp.Candidates[0].Content.Parts[0].Text)
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// GetChatHistory returns the user's assistant conversation so far.
func GetChatHistory(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": chats.History(userID)})
}
