package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/jeemhub/fawazv7/models"
)

// memCartRepo stores serialized snapshots keyed by session id, mimicking the
// Redis adapter's JSON round trip.
type memCartRepo struct {
	snapshots map[string][]byte
	loadErr   error
	saveErr   error
	saveCalls int
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{snapshots: map[string][]byte{}}
}

func (m *memCartRepo) Load(_ context.Context, sessionID string) (*models.Cart, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	data, ok := m.snapshots[sessionID]
	if !ok {
		return nil, nil
	}
	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		// malformed snapshots read as "no cart"
		return nil, nil
	}
	return &cart, nil
}

func (m *memCartRepo) Save(_ context.Context, cart *models.Cart) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saveCalls++
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	m.snapshots[cart.SessionID] = data
	return nil
}

func (m *memCartRepo) Delete(_ context.Context, sessionID string) error {
	delete(m.snapshots, sessionID)
	return nil
}

func testItem(id string, price float64, qty int) models.CartItem {
	return models.CartItem{ProductID: id, Name: "Item " + id, Price: price, Quantity: qty}
}

func TestCartServiceAddMerges(t *testing.T) {
	svc := NewCartService(newMemCartRepo(), zap.NewNop())
	ctx := context.Background()

	_, svcErr := svc.AddItem(ctx, "s1", testItem("p1", 100, 2))
	assert.Nil(t, svcErr)
	cart, svcErr := svc.AddItem(ctx, "s1", testItem("p1", 100, 3))
	assert.Nil(t, svcErr)

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCartServicePersistsEveryMutation(t *testing.T) {
	repo := newMemCartRepo()
	svc := NewCartService(repo, zap.NewNop())
	ctx := context.Background()

	_, _ = svc.AddItem(ctx, "s1", testItem("p1", 100, 1))
	_, _ = svc.UpdateQuantity(ctx, "s1", "p1", 4)
	_, _ = svc.RemoveItem(ctx, "s1", "p1")

	assert.Equal(t, 3, repo.saveCalls)
}

func TestCartServicePersistenceRoundTrip(t *testing.T) {
	repo := newMemCartRepo()
	ctx := context.Background()

	first := NewCartService(repo, zap.NewNop())
	_, _ = first.AddItem(ctx, "s1", testItem("p1", 100, 2))
	_, _ = first.AddItem(ctx, "s1", testItem("p2", 50, 1))

	// new store instance rehydrates from the durable snapshot
	second := NewCartService(repo, zap.NewNop())
	cart, svcErr := second.Get(ctx, "s1")
	assert.Nil(t, svcErr)

	assert.Len(t, cart.Items, 2)
	assert.Equal(t, "p1", cart.Items[0].ProductID)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "p2", cart.Items[1].ProductID)
	assert.Equal(t, 3, cart.TotalItems())
	assert.Equal(t, 250.0, cart.TotalPrice())
}

func TestCartServiceMalformedSnapshotYieldsEmptyCart(t *testing.T) {
	repo := newMemCartRepo()
	repo.snapshots["s1"] = []byte("{not json")

	svc := NewCartService(repo, zap.NewNop())
	cart, svcErr := svc.Get(context.Background(), "s1")

	assert.Nil(t, svcErr)
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, "s1", cart.SessionID)
}

func TestCartServiceLoadErrorFallsBackToEmpty(t *testing.T) {
	repo := newMemCartRepo()
	repo.loadErr = errors.New("storage unreachable")

	svc := NewCartService(repo, zap.NewNop())
	cart, svcErr := svc.Get(context.Background(), "s1")

	assert.Nil(t, svcErr)
	assert.True(t, cart.IsEmpty())
}

func TestCartServiceSaveErrorSurfaces(t *testing.T) {
	repo := newMemCartRepo()
	repo.saveErr = errors.New("storage unreachable")

	svc := NewCartService(repo, zap.NewNop())
	_, svcErr := svc.AddItem(context.Background(), "s1", testItem("p1", 100, 1))

	assert.NotNil(t, svcErr)
	assert.Equal(t, 500, svcErr.StatusCode)
}

func TestCartServiceUpdateAbsentIDLeavesCartUnchanged(t *testing.T) {
	repo := newMemCartRepo()
	svc := NewCartService(repo, zap.NewNop())
	ctx := context.Background()

	_, _ = svc.AddItem(ctx, "s1", testItem("p1", 100, 2))
	cart, svcErr := svc.UpdateQuantity(ctx, "s1", "missing", 9)

	assert.Nil(t, svcErr)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCartServiceClear(t *testing.T) {
	repo := newMemCartRepo()
	svc := NewCartService(repo, zap.NewNop())
	ctx := context.Background()

	_, _ = svc.AddItem(ctx, "s1", testItem("p1", 100, 2))
	svcErr := svc.Clear(ctx, "s1")
	assert.Nil(t, svcErr)

	cart, _ := svc.Get(ctx, "s1")
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.TotalItems())
	assert.Equal(t, 0.0, cart.TotalPrice())
}
