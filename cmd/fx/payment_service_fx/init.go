package payment_service_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"petsoft/internal/config"
	"petsoft/internal/repositories"
	"petsoft/internal/services"
)

var Module = fx.Provide(
	provideStripeConfig, provideCheckoutClient, providePaymentService,
)

func provideStripeConfig(cfg *config.Config) services.StripeConfig {
	return services.StripeConfig{
		SecretKey:     cfg.StripeSecretKey,
		WebhookSecret: cfg.StripeWebhookSecret,
		PriceID:       cfg.StripePriceID,
		BaseURL:       cfg.CanonicalURL,
	}
}

func provideCheckoutClient(cfg services.StripeConfig) services.CheckoutSessionCreator {
	return services.NewStripeCheckoutClient(cfg.SecretKey)
}

func providePaymentService(
	accountRepo repositories.AccountRepository,
	checkout services.CheckoutSessionCreator,
	cfg services.StripeConfig,
	logger *zap.Logger) (services.PaymentService, error) {
	return services.NewPaymentService(accountRepo, checkout, cfg, logger)
}
