package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"petsoft/cmd/fx/account_fx"
	"petsoft/cmd/fx/config_fx"
	"petsoft/cmd/fx/controllers_fx"
	"petsoft/cmd/fx/db_fx"
	"petsoft/cmd/fx/payment_service_fx"
	"petsoft/cmd/fx/pet_fx"
	"petsoft/cmd/fx/session_fx"
	"petsoft/internal/api"
	"petsoft/internal/api/controllers"
	"petsoft/internal/config"
	"petsoft/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		account_fx.Module,
		session_fx.Module,
		pet_fx.Module,
		payment_service_fx.Module,
		controllers_fx.Module,

		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("starting HTTP server", zap.String("addr", srv.Addr), zap.String("env", cfg.Environment))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	sessions middleware.SessionDecoder,
	accountController *controllers.AccountController,
	sessionController *controllers.SessionController,
	paymentController *controllers.PaymentController,
	petController *controllers.PetController) *gin.Engine {

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	return api.NewRouter(api.RouterDeps{
		Logger:            logger,
		Sessions:          sessions,
		SecureCookie:      cfg.CookieSecure,
		AccountController: accountController,
		SessionController: sessionController,
		PaymentController: paymentController,
		PetController:     petController,
	})
}
