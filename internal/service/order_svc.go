package service

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"github.com/intwaza/online-marketplace/internal/apperr"
	"github.com/intwaza/online-marketplace/internal/authz"
	"github.com/intwaza/online-marketplace/internal/domain"
	"github.com/intwaza/online-marketplace/internal/queue"
)

type orderStore interface {
	CreateWithItems(ctx context.Context, o *domain.Order) error
	ByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	ByUser(ctx context.Context, userID string) ([]domain.Order, error)
	ByStore(ctx context.Context, storeID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	Delete(ctx context.Context, o *domain.Order) error
}

type productReader interface {
	ByID(ctx context.Context, id string) (*domain.Product, error)
}

type publisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

type OrderSvc struct {
	orders   orderStore
	products productReader
	stores   storeReader
	pub      publisher
}

func NewOrderSvc(orders orderStore, products productReader, stores storeReader, pub publisher) *OrderSvc {
	return &OrderSvc{orders: orders, products: products, stores: stores, pub: pub}
}

type OrderLine struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// Place validates every line against current stock before any persistent
// write, snapshots product prices into the items, creates the order and its
// items transactionally, and only then enqueues the work item for async stock
// decrement and confirmation mail. A failed enqueue leaves the order standing.
func (s *OrderSvc) Place(ctx context.Context, actor *domain.User, lines []OrderLine) (*domain.Order, error) {
	if actor.Role != domain.RoleShopper {
		return nil, apperr.New(apperr.Forbidden, "only shoppers can place orders")
	}
	if len(lines) == 0 {
		return nil, apperr.New(apperr.BadRequest, "order must contain at least one item")
	}

	total := decimal.Zero
	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, apperr.New(apperr.BadRequest, "item quantity must be at least 1")
		}
		product, err := s.products.ByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if product.StockQuantity < line.Quantity {
			return nil, apperr.Newf(apperr.BadRequest, "insufficient stock for product %s", product.Name)
		}
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		items = append(items, domain.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     product.Price,
		})
	}

	order := &domain.Order{
		UserID:      actor.ID,
		TotalAmount: total,
		Status:      domain.OrderPending,
		Items:       items,
	}
	if err := s.orders.CreateWithItems(ctx, order); err != nil {
		return nil, err
	}

	placed := queue.OrderPlaced{OrderID: order.ID}
	for _, it := range order.Items {
		placed.Items = append(placed.Items, queue.PlacedItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price.StringFixed(2),
		})
	}
	if err := s.pub.PublishJSON(ctx, queue.RKOrderPlaced, placed); err != nil {
		// The order is already committed; the async step simply never runs.
		log.Printf("[orders] enqueue order %s failed: %v", order.ID, err)
	}

	return s.orders.ByID(ctx, order.ID)
}

func (s *OrderSvc) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

func (s *OrderSvc) ListMine(ctx context.Context, actor *domain.User) ([]domain.Order, error) {
	return s.orders.ByUser(ctx, actor.ID)
}

func (s *OrderSvc) ListStore(ctx context.Context, actor *domain.User) ([]domain.Order, error) {
	store, err := s.stores.ByOwner(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperr.New(apperr.BadRequest, "you need to create a store first")
	}
	return s.orders.ByStore(ctx, store.ID)
}

func (s *OrderSvc) Get(ctx context.Context, actor *domain.User, id string) (*domain.Order, error) {
	order, err := s.orders.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sellerStoreID, err := s.sellerStoreID(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !authz.CanActOnOrder(actor, order, sellerStoreID) {
		return nil, apperr.New(apperr.Forbidden, "you can only view your own orders")
	}
	return order, nil
}

func (s *OrderSvc) UpdateStatus(ctx context.Context, actor *domain.User, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, apperr.Newf(apperr.BadRequest, "invalid order status %q", status)
	}
	order, err := s.orders.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sellerStoreID, err := s.sellerStoreID(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !authz.CanActOnOrder(actor, order, sellerStoreID) {
		return nil, apperr.New(apperr.Forbidden, "you can only update orders containing your products")
	}
	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	order.Status = status

	if order.User != nil {
		evt := queue.OrderStatusChanged{OrderID: order.ID, Email: order.User.Email, Status: string(status)}
		if err := s.pub.PublishJSON(ctx, queue.RKOrderStatus, evt); err != nil {
			log.Printf("[orders] enqueue status update for %s failed: %v", order.ID, err)
		}
	}
	return order, nil
}

// Delete removes an order, allowed only for the owner or an admin and only
// while the order is still pending.
func (s *OrderSvc) Delete(ctx context.Context, actor *domain.User, id string) error {
	order, err := s.orders.ByID(ctx, id)
	if err != nil {
		return err
	}
	if !authz.CanDeleteOrder(actor, order) {
		return apperr.New(apperr.Forbidden, "you can only delete your own orders")
	}
	if order.Status != domain.OrderPending {
		return apperr.New(apperr.BadRequest, "can only delete pending orders")
	}
	return s.orders.Delete(ctx, order)
}

func (s *OrderSvc) sellerStoreID(ctx context.Context, actor *domain.User) (string, error) {
	if actor.Role != domain.RoleSeller {
		return "", nil
	}
	store, err := s.stores.ByOwner(ctx, actor.ID)
	if err != nil {
		return "", err
	}
	if store == nil {
		return "", nil
	}
	return store.ID, nil
}
