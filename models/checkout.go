package models

import "time"

// Shipping tier codes. The set is closed: flat-fee delivery to any province,
// or the reduced local-region rate.
const (
	ShippingStandard = "standard"
	ShippingReduced  = "reduced"
)

// ShippingTier is one flat delivery fee with bilingual labels.
type ShippingTier struct {
	Code    string  `json:"code"`
	Fee     float64 `json:"fee"`
	Label   string  `json:"label"`
	LabelAr string  `json:"label_ar"`
}

// CheckoutRequest is the payload for composing a WhatsApp order message.
// The presentation layer guarantees the customer fields are present; binding
// tags enforce that at the HTTP edge.
type CheckoutRequest struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Address      string `json:"address" binding:"required"`
	ShippingTier string `json:"shipping_tier" binding:"required"`
}

// OrderSummary is the ephemeral result of composing a checkout. It is
// returned to the caller and then forgotten; orders are never persisted.
type OrderSummary struct {
	Message     string  `json:"message"`
	WhatsAppURL string  `json:"whatsapp_url"`
	Subtotal    float64 `json:"subtotal"`
	ShippingFee float64 `json:"shipping_fee"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

// CheckoutEvent is published to Kafka when a checkout message is composed.
// Telemetry only; no consumer in this repository writes an order anywhere.
type CheckoutEvent struct {
	Event     string     `json:"event"` // e.g. "checkout.requested"
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
	Subtotal  float64    `json:"subtotal"`
	Shipping  string     `json:"shipping"`
	Total     float64    `json:"total"`
	Timestamp time.Time  `json:"timestamp"`
}
