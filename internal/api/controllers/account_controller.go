package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"petsoft/internal/access"
	"petsoft/internal/models/db_models"
	"petsoft/internal/models/request_models"
	"petsoft/internal/models/response_models"
	"petsoft/internal/services"
	"petsoft/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
	sessionService services.SessionServiceInterface
	cookie         SessionCookieConfig
	logger         *zap.Logger
}

func NewAccountController(
	accountService services.AccountServiceInterface,
	sessionService services.SessionServiceInterface,
	cookie SessionCookieConfig,
	logger *zap.Logger) *AccountController {
	return &AccountController{
		accountService: accountService,
		sessionService: sessionService,
		cookie:         cookie,
		logger:         logger,
	}
}

func (a *AccountController) LoginPage(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"page": "login", "callback_url": c.Query("callbackUrl")}, "")
}

func (a *AccountController) SignUpPage(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"page": "signup"}, "")
}

// SignUp godoc
// @Summary Register a new account
// @Description Create an account and sign it in. New accounts are sent to payment.
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Signup payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /signup [post]
func (a *AccountController) SignUp(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid form data.")
		return
	}

	account, err := a.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, a.logger, err)
		return
	}

	if !a.startSession(c, account) {
		return
	}

	utils.RespondSuccess(c, authResponse(account, access.PaymentPath), "Signed up")
}

// Login godoc
// @Summary Log in
// @Description Verify credentials and set the session cookie
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid form data.")
		return
	}

	account, err := a.accountService.Authenticate(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, a.logger, err)
		return
	}

	if !a.startSession(c, account) {
		return
	}

	dest := access.PaymentPath
	if account.HasAccess {
		dest = access.DashboardPath
	}
	utils.RespondSuccess(c, authResponse(account, dest), "Login successful")
}

// Logout clears the session cookie and sends the visitor home.
func (a *AccountController) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c, a.cookie.Secure)
	c.Redirect(http.StatusSeeOther, "/")
}

func (a *AccountController) startSession(c *gin.Context, account *db_models.Account) bool {
	token, _, err := a.sessionService.Issue(account)
	if err != nil {
		a.logger.Error("failed to issue session", zap.String("account_id", account.ID.String()), zap.Error(err))
		utils.RespondError(c, http.StatusInternalServerError, "Could not sign in.")
		return false
	}
	utils.SetSessionCookie(c, token, a.cookie.TTL, a.cookie.Secure)
	return true
}

func authResponse(account *db_models.Account, redirectTo string) response_models.AuthResponse {
	return response_models.AuthResponse{
		AccountID:  account.ID.String(),
		Email:      account.Email,
		HasAccess:  account.HasAccess,
		RedirectTo: redirectTo,
	}
}
