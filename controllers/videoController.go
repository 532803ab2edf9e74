package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"civicmap-be/config"

	"github.com/gin-gonic/gin"
	genai "google.golang.org/genai"
)

const videoModel = "veo-3.1-fast-generate-preview"

// Generation takes minutes; poll at the recommended interval.
var videoPollInterval = 10 * time.Second

// GenerateVideo produces a short video from a text prompt. The request
// blocks while the generation operation is polled to completion, exactly
// like the long-running submit it replaces; the submit control stays
// disabled client-side for the duration.
func GenerateVideo(c *gin.Context) {
	if _, ok := sessionUserID(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		Prompt string `json:"prompt" binding:"required,max=2000"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	cli, err := config.NewGenAIClient(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "API Key error. Please select your API key again.",
			"code":  "api_key",
		})
		return
	}

	operation, err := cli.Models.GenerateVideos(ctx, videoModel, input.Prompt, nil,
		&genai.GenerateVideosConfig{
			NumberOfVideos: 1,
			Resolution:     "720p",
			AspectRatio:    "16:9",
		},
	)
	if err != nil {
		respondVideoError(c, err)
		return
	}

	for !operation.Done {
		select {
		case <-ctx.Done():
			c.JSON(http.StatusBadGateway, gin.H{"error": "Video generation interrupted"})
			return
		case <-time.After(videoPollInterval):
		}

		operation, err = cli.Operations.GetVideosOperation(ctx, operation, nil)
		if err != nil {
			respondVideoError(c, err)
			return
		}
	}

	downloadLink := ""
	if operation.Response != nil && len(operation.Response.GeneratedVideos) > 0 {
		if video := operation.Response.GeneratedVideos[0].Video; video != nil {
			downloadLink = video.URI
		}
	}
	if downloadLink == "" {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Video generation failed or returned no download link"})
		return
	}

	// The API key must be appended to the download URI.
	c.JSON(http.StatusOK, gin.H{"videoUrl": downloadLink + "&key=" + config.GenAIKey()})
}

// respondVideoError distinguishes credential failures, which require the
// caller to re-run key selection, from everything else.
func respondVideoError(c *gin.Context, err error) {
	log.Println("Error generating video:", err)

	var apiErr genai.APIError
	if errors.As(err, &apiErr) && (apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "API Key error. Please select your API key again.",
			"code":  "api_key",
		})
		return
	}

	c.JSON(http.StatusBadGateway, gin.H{"error": "Video generation failed. Please try again later."})
}
