package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jeemhub/fawazv7/common/middleware"
	"github.com/jeemhub/fawazv7/repository"
)

// SetLanguageRequest selects the session display language.
type SetLanguageRequest struct {
	Language string `json:"language" binding:"required,oneof=en ar"`
}

// SessionController persists per-session display preferences.
type SessionController struct {
	prefs repository.PreferencesRepository
}

func NewSessionController(prefs repository.PreferencesRepository) *SessionController {
	return &SessionController{prefs: prefs}
}

// GetLanguage handles GET /session/language
func (sc *SessionController) GetLanguage(c *gin.Context) {
	language, err := sc.prefs.GetLanguage(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read language preference"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"language": language})
}

// SetLanguage handles PUT /session/language
func (sc *SessionController) SetLanguage(c *gin.Context) {
	var req SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "language must be 'en' or 'ar'"})
		return
	}

	if err := sc.prefs.SetLanguage(c.Request.Context(), middleware.SessionID(c), req.Language); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save language preference"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"language": req.Language})
}
