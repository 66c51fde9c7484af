package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"petsoft/internal/models/response_models"
	"petsoft/internal/services"
	"petsoft/pkg/utils"
)

const stripeSignatureHeader = "Stripe-Signature"

// maxWebhookBody bounds the raw body read before signature verification.
const maxWebhookBody = 512 << 10

type PaymentController struct {
	paymentService services.PaymentService
	sessionService services.SessionServiceInterface
	cookie         SessionCookieConfig
	logger         *zap.Logger
}

func NewPaymentController(
	paymentService services.PaymentService,
	sessionService services.SessionServiceInterface,
	cookie SessionCookieConfig,
	logger *zap.Logger) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
		sessionService: sessionService,
		cookie:         cookie,
		logger:         logger,
	}
}

// PaymentPage godoc
// @Summary Payment page
// @Description Returning from a successful checkout refreshes the session so the new access flag is visible.
// @Tags Payments
// @Produce json
// @Param success query bool false "Checkout completed"
// @Param cancelled query bool false "Checkout cancelled"
// @Success 200 {object} utils.APIResponse
// @Router /payment [get]
func (p *PaymentController) PaymentPage(c *gin.Context) {
	status := response_models.PaymentStatusResponse{
		Success:   c.Query("success") == "true",
		Cancelled: c.Query("cancelled") == "true",
	}

	claims, loggedIn := utils.SessionClaimsFromContext(c)
	if loggedIn {
		status.HasAccess = claims.HasAccess
		if status.Success {
			token, refreshed, err := p.sessionService.Refresh(c.Request.Context(), claims, services.TriggerUpdate)
			if err != nil {
				p.logger.Error("payment page: session refresh failed", zap.String("account_id", claims.UserID), zap.Error(err))
			} else {
				utils.SetSessionCookie(c, token, p.cookie.TTL, p.cookie.Secure)
				utils.SetSessionClaims(c, refreshed)
				status.HasAccess = refreshed.HasAccess
			}
		}
	}

	utils.RespondSuccess(c, status, "")
}

// CreateCheckout godoc
// @Summary Create a Stripe checkout session
// @Description Create a one-off payment checkout for lifetime access
// @Tags Payments
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /payment/checkout [post]
func (p *PaymentController) CreateCheckout(c *gin.Context) {
	claims, ok := requireSession(c)
	if !ok {
		return
	}

	checkout, err := p.paymentService.CreateCheckoutSession(c.Request.Context(), claims.Email)
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}

	utils.RespondSuccess(c, checkout, "Checkout session created")
}

// HandleWebhook godoc
// @Summary Stripe webhook
// @Description Verifies the Stripe signature and grants access on checkout.session.completed
// @Tags Payments
// @Accept json
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Router /api/stripe [post]
func (p *PaymentController) HandleWebhook(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody)
	rawBody, err := c.GetRawData()
	if err != nil {
		p.logger.Warn("webhook: failed to read body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
		return
	}

	result, err := p.paymentService.HandleWebhook(c.Request.Context(), rawBody, c.GetHeader(stripeSignatureHeader))
	switch {
	case errors.Is(err, utils.ErrMissingSignature):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing signature"})
		return
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
		return
	}

	p.logger.Debug("webhook acknowledged",
		zap.String("event_id", result.EventID),
		zap.String("outcome", string(result.Outcome)))

	c.JSON(http.StatusOK, gin.H{"received": true})
}
