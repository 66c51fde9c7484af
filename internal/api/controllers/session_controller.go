package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"petsoft/internal/services"
	"petsoft/pkg/utils"
)

type SessionController struct {
	sessionService services.SessionServiceInterface
	cookie         SessionCookieConfig
	logger         *zap.Logger
}

func NewSessionController(sessionService services.SessionServiceInterface, cookie SessionCookieConfig, logger *zap.Logger) *SessionController {
	return &SessionController{
		sessionService: sessionService,
		cookie:         cookie,
		logger:         logger,
	}
}

// GetSession godoc
// @Summary Current session snapshot
// @Tags Session
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/session [get]
func (s *SessionController) GetSession(c *gin.Context) {
	claims, ok := requireSession(c)
	if !ok {
		return
	}
	utils.RespondSuccess(c, sessionResponse(claims), "")
}

// UpdateSession godoc
// @Summary Refresh the session from storage
// @Description Re-reads the account so a completed payment becomes visible to this session
// @Tags Session
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/session/update [post]
func (s *SessionController) UpdateSession(c *gin.Context) {
	claims, ok := requireSession(c)
	if !ok {
		return
	}

	token, refreshed, err := s.sessionService.Refresh(c.Request.Context(), claims, services.TriggerUpdate)
	if err != nil {
		utils.HandleServiceError(c, s.logger, err)
		return
	}

	utils.SetSessionCookie(c, token, s.cookie.TTL, s.cookie.Secure)
	utils.SetSessionClaims(c, refreshed)
	c.Header("Cache-Control", "no-store")
	utils.RespondSuccess(c, sessionResponse(refreshed), "Session updated")
}
