package services

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/jeemhub/fawazv7/models"
	"github.com/jeemhub/fawazv7/repository"
)

// CartAPI is the cart store surface consumed by controllers and the
// checkout composer.
type CartAPI interface {
	Get(ctx context.Context, sessionID string) (*models.Cart, *ServiceError)
	AddItem(ctx context.Context, sessionID string, item models.CartItem) (*models.Cart, *ServiceError)
	UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*models.Cart, *ServiceError)
	RemoveItem(ctx context.Context, sessionID, productID string) (*models.Cart, *ServiceError)
	Clear(ctx context.Context, sessionID string) *ServiceError
}

// CartService is the authoritative cart store. Mutations run on a snapshot
// loaded from the persistence adapter and the full snapshot is written back
// before the call returns, so state survives across requests and reloads.
type CartService struct {
	repo   repository.CartRepository
	logger *zap.Logger
}

func NewCartService(repo repository.CartRepository, logger *zap.Logger) *CartService {
	return &CartService{
		repo:   repo,
		logger: logger,
	}
}

// load fetches the session's cart, falling back to an empty cart when no
// snapshot exists or the stored one is unusable. A storage read failure is
// logged and treated the same way; the shopping experience stays available.
func (s *CartService) load(ctx context.Context, sessionID string) *models.Cart {
	cart, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		s.logger.Warn("Cart load failed, starting empty",
			zap.String("session_id", sessionID), zap.Error(err))
	}
	if cart == nil {
		return models.NewCart(sessionID)
	}
	return cart
}

func (s *CartService) save(ctx context.Context, cart *models.Cart) *ServiceError {
	if err := s.repo.Save(ctx, cart); err != nil {
		s.logger.Error("Cart save failed",
			zap.String("session_id", cart.SessionID), zap.Error(err))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "failed to save cart"}
	}
	return nil
}

// Get returns the current cart for a session, empty when none exists.
func (s *CartService) Get(ctx context.Context, sessionID string) (*models.Cart, *ServiceError) {
	return s.load(ctx, sessionID), nil
}

// AddItem merges an item into the cart and persists the result. Adding a
// product already in the cart increments its quantity instead of creating a
// duplicate row.
func (s *CartService) AddItem(ctx context.Context, sessionID string, item models.CartItem) (*models.Cart, *ServiceError) {
	cart := s.load(ctx, sessionID)
	cart.AddItem(item)
	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateQuantity sets a row's quantity, removing the row at zero or below.
// Unknown product ids are a silent no-op.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*models.Cart, *ServiceError) {
	cart := s.load(ctx, sessionID)
	cart.UpdateQuantity(productID, quantity)
	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem removes a row if present.
func (s *CartService) RemoveItem(ctx context.Context, sessionID, productID string) (*models.Cart, *ServiceError) {
	cart := s.load(ctx, sessionID)
	cart.RemoveItem(productID)
	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear empties both the in-memory and the durable copy of the cart.
func (s *CartService) Clear(ctx context.Context, sessionID string) *ServiceError {
	if err := s.repo.Delete(ctx, sessionID); err != nil {
		s.logger.Error("Cart clear failed",
			zap.String("session_id", sessionID), zap.Error(err))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "failed to clear cart"}
	}
	return nil
}
