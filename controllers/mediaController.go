package controllers

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"civicmap-be/config"

	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
)

// MaxImageSize is the attachment ceiling, checked before the file is read.
const MaxImageSize = 10 * 1024 * 1024 // 10MB

// UploadImage stores a report photo and returns a displayable URL for it.
func UploadImage(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}

	if header.Size > MaxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is too large. Maximum size is 10MB."})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only image files are accepted"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
		return
	}
	defer file.Close()

	client := config.ConnectMedia()
	objectName := fmt.Sprintf("%s/%d%s", userID, time.Now().UnixNano(), filepath.Ext(header.Filename))

	ctx := c.Request.Context()
	_, err = client.PutObject(ctx, config.MediaBucket(), objectName, file, header.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		log.Println("Error storing image:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}

	// Presign a read URL, the "displayable image reference" the report
	// form attaches to its draft.
	presigned, err := client.PresignedGetObject(ctx, config.MediaBucket(), objectName, 7*24*time.Hour, url.Values{})
	if err != nil {
		log.Println("Error presigning image URL:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"imageUrl": presigned.String()})
}
