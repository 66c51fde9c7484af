package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
	"github.com/stripe/stripe-go/v81/webhook"
	"go.uber.org/zap"
	"petsoft/internal/models/request_models"
	"petsoft/internal/models/response_models"
	"petsoft/internal/repositories"
	"petsoft/pkg/utils"
)

const eventCheckoutSessionCompleted stripe.EventType = "checkout.session.completed"

type StripeConfig struct {
	SecretKey     string // sk_... used for checkout creation
	WebhookSecret string // whsec_... used to verify webhook signatures
	PriceID       string // one-off lifetime access price
	BaseURL       string // canonical app URL for success/cancel redirects
}

// CheckoutSessionCreator is satisfied by *session.Client.
type CheckoutSessionCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type WebhookOutcome string

const (
	OutcomeAccessGranted WebhookOutcome = "access_granted"
	OutcomeNoEmail       WebhookOutcome = "no_email"
	OutcomeNoMatch       WebhookOutcome = "no_matching_account"
	OutcomeIgnored       WebhookOutcome = "ignored"
	OutcomeFailed        WebhookOutcome = "failed"
)

type WebhookResult struct {
	EventID   string
	EventType string
	Outcome   WebhookOutcome
	Matched   int64
}

type PaymentService interface {
	CreateCheckoutSession(ctx context.Context, email string) (*response_models.CreateCheckoutResponse, error)
	// HandleWebhook returns an error only for signature failures. Everything
	// after verification is acknowledged so the provider stops retrying.
	HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) (WebhookResult, error)
}

type paymentService struct {
	accountRepo repositories.AccountRepository
	checkout    CheckoutSessionCreator
	cfg         StripeConfig
	logger      *zap.Logger
}

func NewPaymentService(accountRepo repositories.AccountRepository, checkout CheckoutSessionCreator, cfg StripeConfig, logger *zap.Logger) (PaymentService, error) {
	if cfg.WebhookSecret == "" {
		return nil, errors.New("missing stripe webhook secret")
	}
	if cfg.PriceID == "" {
		return nil, errors.New("missing stripe price id")
	}

	return &paymentService{
		accountRepo: accountRepo,
		checkout:    checkout,
		cfg:         cfg,
		logger:      logger,
	}, nil
}

// NewStripeCheckoutClient builds a checkout client bound to one API key
// instead of the package-level stripe.Key.
func NewStripeCheckoutClient(secretKey string) *session.Client {
	return &session.Client{B: stripe.GetBackend(stripe.APIBackend), Key: secretKey}
}

func (p *paymentService) CreateCheckoutSession(ctx context.Context, email string) (*response_models.CreateCheckoutResponse, error) {
	baseURL := strings.TrimRight(p.cfg.BaseURL, "/")

	params := &stripe.CheckoutSessionParams{
		CustomerEmail: stripe.String(email),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(p.cfg.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(baseURL + "/payment?success=true"),
		CancelURL:  stripe.String(baseURL + "/payment?cancelled=true"),
	}
	params.Context = ctx

	cs, err := p.checkout.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: create checkout session: %v", utils.ErrPaymentProvider, err)
	}
	if cs.URL == "" {
		return nil, fmt.Errorf("%w: checkout session %s has no url", utils.ErrPaymentProvider, cs.ID)
	}

	p.logger.Info("checkout session created", zap.String("session_id", cs.ID), zap.String("email", email))

	return &response_models.CreateCheckoutResponse{
		SessionID:   cs.ID,
		CheckoutURL: cs.URL,
	}, nil
}

func (p *paymentService) HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) (WebhookResult, error) {
	if signatureHeader == "" {
		p.logger.Warn("webhook: missing signature header")
		return WebhookResult{}, utils.ErrMissingSignature
	}

	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, p.cfg.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		p.logger.Warn("webhook: verification failed", zap.Error(err))
		return WebhookResult{}, fmt.Errorf("%w: %v", utils.ErrInvalidSignature, err)
	}

	result := WebhookResult{EventID: event.ID, EventType: string(event.Type)}
	log := p.logger.With(zap.String("event_id", event.ID), zap.String("event_type", string(event.Type)))

	if event.Type != eventCheckoutSessionCompleted {
		log.Info("webhook: unhandled event type")
		result.Outcome = OutcomeIgnored
		return result, nil
	}

	var checkout request_models.CheckoutSessionPayload
	if event.Data == nil || json.Unmarshal(event.Data.Raw, &checkout) != nil {
		log.Error("webhook: malformed checkout session payload")
		result.Outcome = OutcomeFailed
		return result, nil
	}

	email := checkout.PurchaserEmail()
	if email == "" {
		log.Warn("webhook: checkout session completed with no customer email", zap.String("session_id", checkout.ID))
		result.Outcome = OutcomeNoEmail
		return result, nil
	}

	matched, err := p.accountRepo.UpdateAccessByEmail(ctx, email)
	if err != nil {
		log.Error("webhook: failed to update account access", zap.String("email", email), zap.Error(err))
		result.Outcome = OutcomeFailed
		return result, nil
	}

	result.Matched = matched
	if matched == 0 {
		log.Warn("webhook: no account matched purchaser email", zap.String("email", email))
		result.Outcome = OutcomeNoMatch
		return result, nil
	}

	log.Info("webhook: updated account access", zap.String("email", email), zap.Int64("count", matched))
	result.Outcome = OutcomeAccessGranted
	return result, nil
}
