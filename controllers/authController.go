package controllers

import (
	"log"
	"net/http"
	"os"

	"civicmap-be/models"
	"civicmap-be/session"
	"civicmap-be/utils"

	"github.com/gin-gonic/gin"
)

// LoginUser establishes the session identity from a role selection.
// There are no credentials: picking "citizen" or "admin" binds one of
// the built-in identities to the session.
func LoginUser(c *gin.Context) {
	var input struct {
		Role string `json:"role" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role, ok := models.ParseRole(input.Role)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	reporter := models.ReporterForRole(role)

	token, err := utils.GenerateToken(reporter, role)
	if err != nil {
		log.Println("Error generating token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	environment := os.Getenv("GO_ENV")
	domain := os.Getenv("DOMAIN")

	// For production, don't set domain to allow cross-origin cookies
	if environment == "production" {
		domain = ""
	}

	cookie := &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		MaxAge:   3600, // 1 hour
		Path:     "/",
		Domain:   domain,
		Secure:   environment == "production", // false for HTTP (dev), true for HTTPS (prod)
		HttpOnly: true,                        // still protect from JS access
		SameSite: http.SameSiteNoneMode,       // Required for cross-origin cookies in production
	}
	http.SetCookie(c.Writer, cookie)

	c.JSON(http.StatusOK, gin.H{
		"id":    reporter.ID,
		"name":  reporter.Name,
		"email": reporter.Email,
		"role":  role,
		"token": token,
	})
}

// GetMe retrieves the authenticated session identity.
func GetMe(c *gin.Context) {
	reporter, ok := currentReporter(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	role, _ := c.Get("role")
	c.JSON(http.StatusOK, gin.H{
		"id":    reporter.ID,
		"name":  reporter.Name,
		"email": reporter.Email,
		"role":  role,
	})
}

// LogoutUser clears the auth_token cookie and drops the session state so
// role switching starts fresh.
func LogoutUser(c *gin.Context) {
	environment := os.Getenv("GO_ENV")
	domain := os.Getenv("DOMAIN")

	if userID, exists := c.Get("user_id"); exists {
		if id, ok := userID.(string); ok {
			session.Sessions.Drop(id)
		}
	}

	c.SetCookie("auth_token", "", -1, "/", domain, environment == "production", true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// currentReporter rebuilds the session identity from the claims set by
// the auth middleware.
func currentReporter(c *gin.Context) (models.Reporter, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return models.Reporter{}, false
	}
	id, ok := userID.(string)
	if !ok || id == "" {
		return models.Reporter{}, false
	}

	name, _ := c.Get("user_name")
	email, _ := c.Get("user_email")
	reporter := models.Reporter{ID: id}
	if s, ok := name.(string); ok {
		reporter.Name = s
	}
	if s, ok := email.(string); ok {
		reporter.Email = s
	}
	return reporter, true
}
