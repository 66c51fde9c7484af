package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"petsoft/internal/api/controllers"
	"petsoft/pkg/middleware"
)

type RouterDeps struct {
	Logger            *zap.Logger
	Sessions          middleware.SessionDecoder
	SecureCookie      bool
	AccountController *controllers.AccountController
	SessionController *controllers.SessionController
	PaymentController *controllers.PaymentController
	PetController     *controllers.PetController
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.SessionMiddleware(deps.Sessions, deps.SecureCookie, deps.Logger))
	r.Use(middleware.AccessMiddleware(middleware.DefaultAccessAllowList, deps.Logger))

	RegisterRoutes(r, deps)

	return r
}

func RegisterRoutes(r *gin.Engine, deps RouterDeps) {
	r.GET("/", controllers.Home)

	r.GET("/login", deps.AccountController.LoginPage)
	r.POST("/login", deps.AccountController.Login)
	r.GET("/signup", deps.AccountController.SignUpPage)
	r.POST("/signup", deps.AccountController.SignUp)
	r.POST("/logout", deps.AccountController.Logout)

	r.GET("/payment", deps.PaymentController.PaymentPage)
	r.POST("/payment/checkout", deps.PaymentController.CreateCheckout)

	appGroup := r.Group("/app")
	appGroup.GET("/dashboard", deps.PetController.Dashboard)
	appGroup.GET("/pets", deps.PetController.ListPets)
	appGroup.POST("/pets", deps.PetController.AddPet)
	appGroup.GET("/pets/:id", deps.PetController.GetPet)
	appGroup.PUT("/pets/:id", deps.PetController.EditPet)
	appGroup.DELETE("/pets/:id", deps.PetController.DeletePet)

	apiGroup := r.Group("/api")
	apiGroup.POST("/stripe", deps.PaymentController.HandleWebhook)
	apiGroup.GET("/session", deps.SessionController.GetSession)
	apiGroup.POST("/session/update", deps.SessionController.UpdateSession)
}
