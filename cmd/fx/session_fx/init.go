package session_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"petsoft/internal/api/controllers"
	"petsoft/internal/config"
	"petsoft/internal/repositories"
	"petsoft/internal/services"
	"petsoft/pkg/middleware"
	"petsoft/pkg/utils"
)

var Module = fx.Provide(
	provideTokenCodec,
	provideSessionService,
	provideSessionDecoder,
	provideCookieConfig,
)

func provideTokenCodec(cfg *config.Config) *utils.TokenCodec {
	return utils.NewTokenCodec(cfg.JWTSecret, cfg.SessionTTL)
}

func provideSessionService(codec *utils.TokenCodec, accountRepo repositories.AccountRepository, logger *zap.Logger) services.SessionServiceInterface {
	return services.NewSessionService(codec, accountRepo, logger)
}

func provideSessionDecoder(sessions services.SessionServiceInterface) middleware.SessionDecoder {
	return sessions
}

func provideCookieConfig(cfg *config.Config) controllers.SessionCookieConfig {
	return controllers.SessionCookieConfig{
		Secure: cfg.CookieSecure,
		TTL:    cfg.SessionTTL,
	}
}
