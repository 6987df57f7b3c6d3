package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/intwaza/online-marketplace/internal/apperr"
	"github.com/intwaza/online-marketplace/internal/domain"
)

// In-memory fakes for the consumer-side store interfaces. They assign
// sequential IDs so tests can reference created rows.

type mailSpy struct {
	calls []string
}

func (m *mailSpy) SendVerificationEmail(to, token string) {
	m.calls = append(m.calls, "verification:"+to)
}

func (m *mailSpy) SendSellerApplicationEmail(adminTo, applicantEmail, storeName, storeDescription string, upgrade bool) {
	m.calls = append(m.calls, fmt.Sprintf("application:%s:upgrade=%t", applicantEmail, upgrade))
}

func (m *mailSpy) SendSellerApprovalEmail(to, tempPassword string) {
	m.calls = append(m.calls, "approval:"+to)
}

func (m *mailSpy) SendSellerUpgradeEmail(to string) {
	m.calls = append(m.calls, "upgrade:"+to)
}

func (m *mailSpy) SendOrderConfirmationEmail(to, orderID string, total decimal.Decimal) {
	m.calls = append(m.calls, "confirmation:"+to)
}

func (m *mailSpy) SendOrderStatusEmail(to, orderID, status string) {
	m.calls = append(m.calls, "status:"+to+":"+status)
}

type userStoreFake struct {
	seq   int
	users map[string]*domain.User
}

func newUserStoreFake() *userStoreFake {
	return &userStoreFake{users: map[string]*domain.User{}}
}

func (f *userStoreFake) Create(ctx context.Context, u *domain.User) error {
	f.seq++
	u.ID = fmt.Sprintf("user-%d", f.seq)
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *userStoreFake) ByID(ctx context.Context, id string) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	cp := *u
	return &cp, nil
}

func (f *userStoreFake) ByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *userStoreFake) ByVerificationToken(ctx context.Context, tok string) (*domain.User, error) {
	for _, u := range f.users {
		if u.VerificationToken != nil && *u.VerificationToken == tok {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "invalid verification token")
}

func (f *userStoreFake) List(ctx context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *userStoreFake) Save(ctx context.Context, u *domain.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *userStoreFake) Delete(ctx context.Context, u *domain.User) error {
	delete(f.users, u.ID)
	return nil
}

type orderStoreFake struct {
	seq       int
	orders    map[string]*domain.Order
	statusSet map[string]domain.OrderStatus
	deleted   []string
}

func newOrderStoreFake() *orderStoreFake {
	return &orderStoreFake{
		orders:    map[string]*domain.Order{},
		statusSet: map[string]domain.OrderStatus{},
	}
}

func (f *orderStoreFake) CreateWithItems(ctx context.Context, o *domain.Order) error {
	f.seq++
	o.ID = fmt.Sprintf("order-%d", f.seq)
	for i := range o.Items {
		o.Items[i].ID = fmt.Sprintf("item-%d-%d", f.seq, i)
		o.Items[i].OrderID = o.ID
	}
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *orderStoreFake) ByID(ctx context.Context, id string) (*domain.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "order not found")
	}
	cp := *o
	return &cp, nil
}

func (f *orderStoreFake) List(ctx context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *orderStoreFake) ByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *orderStoreFake) ByStore(ctx context.Context, storeID string) ([]domain.Order, error) {
	return nil, nil
}

func (f *orderStoreFake) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	o, ok := f.orders[id]
	if !ok {
		return apperr.New(apperr.NotFound, "order not found")
	}
	o.Status = status
	f.statusSet[id] = status
	return nil
}

func (f *orderStoreFake) Delete(ctx context.Context, o *domain.Order) error {
	delete(f.orders, o.ID)
	f.deleted = append(f.deleted, o.ID)
	return nil
}

type productReaderFake struct {
	products map[string]*domain.Product
}

func (f *productReaderFake) ByID(ctx context.Context, id string) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "product not found")
	}
	cp := *p
	return &cp, nil
}

type storeReaderFake struct {
	store *domain.Store
}

func (f *storeReaderFake) ByOwner(ctx context.Context, ownerID string) (*domain.Store, error) {
	if f.store == nil || f.store.OwnerID != ownerID {
		return nil, nil
	}
	cp := *f.store
	return &cp, nil
}

type publisherFake struct {
	keys []string
	err  error
}

func (f *publisherFake) PublishJSON(ctx context.Context, key string, v any) error {
	if f.err != nil {
		return f.err
	}
	f.keys = append(f.keys, key)
	return nil
}

type paymentStoreFake struct {
	seq       int
	payments  map[string]*domain.Payment
	completed map[string]*domain.Payment
}

func newPaymentStoreFake() *paymentStoreFake {
	return &paymentStoreFake{
		payments:  map[string]*domain.Payment{},
		completed: map[string]*domain.Payment{},
	}
}

func (f *paymentStoreFake) Create(ctx context.Context, p *domain.Payment) error {
	f.seq++
	p.ID = fmt.Sprintf("payment-%d", f.seq)
	cp := *p
	f.payments[p.ID] = &cp
	return nil
}

func (f *paymentStoreFake) ByID(ctx context.Context, id string) (*domain.Payment, error) {
	p, ok := f.payments[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "payment not found")
	}
	cp := *p
	return &cp, nil
}

func (f *paymentStoreFake) ByOrder(ctx context.Context, orderID string) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range f.payments {
		if p.OrderID == orderID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *paymentStoreFake) CompletedByOrder(ctx context.Context, orderID string) (*domain.Payment, error) {
	if p, ok := f.completed[orderID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *paymentStoreFake) Save(ctx context.Context, p *domain.Payment) error {
	cp := *p
	f.payments[p.ID] = &cp
	if p.Status == domain.PaymentCompleted {
		f.completed[p.OrderID] = &cp
	}
	return nil
}

type reviewStoreFake struct {
	seq     int
	reviews map[string]*domain.Review
}

func newReviewStoreFake() *reviewStoreFake {
	return &reviewStoreFake{reviews: map[string]*domain.Review{}}
}

func (f *reviewStoreFake) Create(ctx context.Context, rv *domain.Review) error {
	f.seq++
	rv.ID = fmt.Sprintf("review-%d", f.seq)
	cp := *rv
	f.reviews[rv.ID] = &cp
	return nil
}

func (f *reviewStoreFake) ByID(ctx context.Context, id string) (*domain.Review, error) {
	rv, ok := f.reviews[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "review not found")
	}
	cp := *rv
	return &cp, nil
}

func (f *reviewStoreFake) ByUserAndProduct(ctx context.Context, userID, productID string) (*domain.Review, error) {
	for _, rv := range f.reviews {
		if rv.UserID == userID && rv.ProductID == productID {
			cp := *rv
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *reviewStoreFake) ByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	var out []domain.Review
	for _, rv := range f.reviews {
		if rv.ProductID == productID {
			out = append(out, *rv)
		}
	}
	return out, nil
}

func (f *reviewStoreFake) RatingsByProduct(ctx context.Context, productID string) ([]int, error) {
	var out []int
	for _, rv := range f.reviews {
		if rv.ProductID == productID {
			out = append(out, rv.Rating)
		}
	}
	return out, nil
}

func (f *reviewStoreFake) Save(ctx context.Context, rv *domain.Review) error {
	cp := *rv
	f.reviews[rv.ID] = &cp
	return nil
}

func (f *reviewStoreFake) Delete(ctx context.Context, rv *domain.Review) error {
	delete(f.reviews, rv.ID)
	return nil
}

type productStoreFake struct {
	seq      int
	products map[string]*domain.Product
}

func newProductStoreFake() *productStoreFake {
	return &productStoreFake{products: map[string]*domain.Product{}}
}

func (f *productStoreFake) Create(ctx context.Context, p *domain.Product) error {
	f.seq++
	p.ID = fmt.Sprintf("product-%d", f.seq)
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *productStoreFake) ByID(ctx context.Context, id string) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "product not found")
	}
	cp := *p
	return &cp, nil
}

func (f *productStoreFake) List(ctx context.Context, page, limit int, search, categoryID string) ([]domain.Product, int64, error) {
	var out []domain.Product
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *productStoreFake) ByStore(ctx context.Context, storeID string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		if p.StoreID == storeID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *productStoreFake) Featured(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		if p.IsFeatured {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *productStoreFake) Save(ctx context.Context, p *domain.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *productStoreFake) Delete(ctx context.Context, p *domain.Product) error {
	delete(f.products, p.ID)
	return nil
}

type categoryReaderFake struct {
	categories map[string]*domain.Category
}

func (f *categoryReaderFake) ByID(ctx context.Context, id string) (*domain.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "category not found")
	}
	cp := *c
	return &cp, nil
}

type storeStoreFake struct {
	seq    int
	stores map[string]*domain.Store
}

func newStoreStoreFake() *storeStoreFake {
	return &storeStoreFake{stores: map[string]*domain.Store{}}
}

func (f *storeStoreFake) Create(ctx context.Context, s *domain.Store) error {
	f.seq++
	s.ID = fmt.Sprintf("store-%d", f.seq)
	cp := *s
	f.stores[s.ID] = &cp
	return nil
}

func (f *storeStoreFake) ByID(ctx context.Context, id string) (*domain.Store, error) {
	s, ok := f.stores[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "store not found")
	}
	cp := *s
	return &cp, nil
}

func (f *storeStoreFake) ByOwner(ctx context.Context, ownerID string) (*domain.Store, error) {
	for _, s := range f.stores {
		if s.OwnerID == ownerID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *storeStoreFake) List(ctx context.Context) ([]domain.Store, error) {
	out := make([]domain.Store, 0, len(f.stores))
	for _, s := range f.stores {
		out = append(out, *s)
	}
	return out, nil
}

func (f *storeStoreFake) Save(ctx context.Context, s *domain.Store) error {
	cp := *s
	f.stores[s.ID] = &cp
	return nil
}

func (f *storeStoreFake) Delete(ctx context.Context, s *domain.Store) error {
	delete(f.stores, s.ID)
	return nil
}
