package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/jeemhub/fawazv7/common/errors"
	"github.com/jeemhub/fawazv7/config"
	"github.com/jeemhub/fawazv7/models"
	"github.com/jeemhub/fawazv7/repository"
)

// CheckoutPublisher emits checkout telemetry. Implementations must never
// block the checkout response on delivery.
type CheckoutPublisher interface {
	SendCheckoutEvent(event models.CheckoutEvent) error
}

// CheckoutAPI composes WhatsApp order messages from the current cart.
type CheckoutAPI interface {
	Compose(ctx context.Context, sessionID string, req models.CheckoutRequest) (*models.OrderSummary, *ServiceError)
	ShippingTiers() []models.ShippingTier
}

// CheckoutService turns a cart snapshot plus customer fields into a single
// order-summary text and a wa.me deep link. Orders are never persisted;
// opening the link is the caller's side of the handoff.
type CheckoutService struct {
	cart      CartAPI
	prefs     repository.PreferencesRepository
	publisher CheckoutPublisher

	whatsAppNumber string
	currency       string
	taxRate        float64
	tiers          []models.ShippingTier

	logger *zap.Logger
}

func NewCheckoutService(
	cart CartAPI,
	prefs repository.PreferencesRepository,
	publisher CheckoutPublisher,
	cfg config.Config,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		cart:           cart,
		prefs:          prefs,
		publisher:      publisher,
		whatsAppNumber: cfg.WhatsAppNumber,
		currency:       cfg.CurrencyCode,
		taxRate:        cfg.TaxRate,
		tiers:          ShippingTiersFromConfig(cfg),
		logger:         logger,
	}
}

// ShippingTiersFromConfig builds the closed two-tier shipping enumeration
// from configured flat fees.
func ShippingTiersFromConfig(cfg config.Config) []models.ShippingTier {
	return []models.ShippingTier{
		{
			Code:    models.ShippingStandard,
			Fee:     cfg.ShippingStandardFee,
			Label:   "All provinces",
			LabelAr: "باقي المحافظات",
		},
		{
			Code:    models.ShippingReduced,
			Fee:     cfg.ShippingReducedFee,
			Label:   "Baghdad",
			LabelAr: "بغداد",
		},
	}
}

// ShippingTiers returns the available shipping options.
func (s *CheckoutService) ShippingTiers() []models.ShippingTier {
	return s.tiers
}

func (s *CheckoutService) tierByCode(code string) (models.ShippingTier, bool) {
	for _, tier := range s.tiers {
		if tier.Code == code {
			return tier, true
		}
	}
	return models.ShippingTier{}, false
}

// Compose builds the order summary for the session's cart. On success the
// cart is cleared and a checkout.requested event is emitted when a publisher
// is configured; publish failures are logged and do not fail the checkout.
func (s *CheckoutService) Compose(ctx context.Context, sessionID string, req models.CheckoutRequest) (*models.OrderSummary, *ServiceError) {
	cart, svcErr := s.cart.Get(ctx, sessionID)
	if svcErr != nil {
		return nil, svcErr
	}
	if cart.IsEmpty() {
		return nil, FromAppError(apperrors.ErrEmptyCart)
	}

	tier, ok := s.tierByCode(req.ShippingTier)
	if !ok {
		return nil, FromAppError(apperrors.ErrUnknownShipping)
	}

	language := repository.LanguageEnglish
	if s.prefs != nil {
		if lang, err := s.prefs.GetLanguage(ctx, sessionID); err == nil {
			language = lang
		}
	}

	subtotal := cart.TotalPrice()
	tax := subtotal * s.taxRate
	total := subtotal + tier.Fee + tax

	message := s.composeMessage(cart, req, tier, language, subtotal, tax, total)

	summary := &models.OrderSummary{
		Message:     message,
		WhatsAppURL: fmt.Sprintf("https://wa.me/%s?text=%s", s.whatsAppNumber, url.QueryEscape(message)),
		Subtotal:    subtotal,
		ShippingFee: tier.Fee,
		Tax:         tax,
		Total:       total,
	}

	if s.publisher != nil {
		event := models.CheckoutEvent{
			Event:     "checkout.requested",
			SessionID: sessionID,
			Items:     cart.Items,
			Subtotal:  subtotal,
			Shipping:  tier.Code,
			Total:     total,
			Timestamp: time.Now(),
		}
		if err := s.publisher.SendCheckoutEvent(event); err != nil {
			s.logger.Warn("Failed to publish checkout event",
				zap.String("session_id", sessionID), zap.Error(err))
		}
	}

	if svcErr := s.cart.Clear(ctx, sessionID); svcErr != nil {
		s.logger.Warn("Failed to clear cart after checkout",
			zap.String("session_id", sessionID), zap.String("error", svcErr.Message))
	}

	return summary, nil
}

// composeMessage renders the line-oriented order text: header, customer
// block, numbered item lines in insertion order, then the totals block.
func (s *CheckoutService) composeMessage(
	cart *models.Cart,
	req models.CheckoutRequest,
	tier models.ShippingTier,
	language string,
	subtotal, tax, total float64,
) string {
	arabic := language == repository.LanguageArabic

	var b strings.Builder
	if arabic {
		b.WriteString("طلب جديد - مكتب فواز\n")
		b.WriteString("الاسم: " + req.Name + "\n")
		b.WriteString("الهاتف: " + req.Phone + "\n")
		b.WriteString("العنوان: " + req.Address + "\n")
	} else {
		b.WriteString("New Order - Fawaz Office\n")
		b.WriteString("Name: " + req.Name + "\n")
		b.WriteString("Phone: " + req.Phone + "\n")
		b.WriteString("Address: " + req.Address + "\n")
	}
	b.WriteString("----------------\n")

	for i, item := range cart.Items {
		name := item.Name
		if arabic && item.NameAr != "" {
			name = item.NameAr
		}
		lineTotal := item.Price * float64(item.Quantity)
		b.WriteString(fmt.Sprintf("%d- %s × %d = %s %s\n",
			i+1, name, item.Quantity, formatAmount(lineTotal), s.currency))
	}
	b.WriteString("----------------\n")

	shippingLabel := tier.Label
	if arabic {
		shippingLabel = tier.LabelAr
	}

	if arabic {
		b.WriteString(fmt.Sprintf("المجموع الفرعي: %s %s\n", formatAmount(subtotal), s.currency))
		b.WriteString(fmt.Sprintf("الشحن (%s): %s %s\n", shippingLabel, formatAmount(tier.Fee), s.currency))
		b.WriteString(fmt.Sprintf("الضريبة: %s %s\n", formatAmount(tax), s.currency))
		b.WriteString(fmt.Sprintf("المجموع الكلي: %s %s", formatAmount(total), s.currency))
	} else {
		b.WriteString(fmt.Sprintf("Subtotal: %s %s\n", formatAmount(subtotal), s.currency))
		b.WriteString(fmt.Sprintf("Shipping (%s): %s %s\n", shippingLabel, formatAmount(tier.Fee), s.currency))
		b.WriteString(fmt.Sprintf("Tax: %s %s\n", formatAmount(tax), s.currency))
		b.WriteString(fmt.Sprintf("Total: %s %s", formatAmount(total), s.currency))
	}

	return b.String()
}

// formatAmount prints whole amounts without a decimal part, e.g. 5000 not
// 5000.00, which keeps IQD prices readable in the message.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
