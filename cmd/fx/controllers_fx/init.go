package controllers_fx

import (
	"go.uber.org/fx"
	"petsoft/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewSessionController),
	fx.Provide(controllers.NewPaymentController),
	fx.Provide(controllers.NewPetController))
