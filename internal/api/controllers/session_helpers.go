package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"petsoft/internal/models/response_models"
	"petsoft/pkg/utils"
)

type SessionCookieConfig struct {
	Secure bool
	TTL    time.Duration
}

// requireSession returns the decoded session or writes a 401.
func requireSession(c *gin.Context) (*utils.SessionClaims, bool) {
	claims, ok := utils.SessionClaimsFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not signed in")
		return nil, false
	}
	return claims, true
}

func sessionResponse(claims *utils.SessionClaims) response_models.SessionResponse {
	resp := response_models.SessionResponse{
		AccountID: claims.UserID,
		Email:     claims.Email,
		HasAccess: claims.HasAccess,
	}
	if claims.ExpiresAt != nil {
		resp.ExpiresAt = claims.ExpiresAt.Unix()
	}
	return resp
}
