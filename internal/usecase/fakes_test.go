package usecase

import (
	"context"
	"fmt"
	"time"

	"ecommerce-api/internal/data/entity"
	"ecommerce-api/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes for exercising the services without a
// database. Merge and cascade semantics mirror the SQL layer.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, u)
	}
	return users, nil
}

func (f *fakeUserRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return fmt.Errorf("user %s not found", user.ID.String())
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.users[id]; !ok {
		return fmt.Errorf("user %s not found", id.String())
	}
	delete(f.users, id)
	return nil
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	return f.categories[id], nil
}

func (f *fakeCategoryRepo) FindByName(_ context.Context, name string) (*entity.Category, error) {
	for _, c := range f.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindAll(_ context.Context) ([]*entity.Category, error) {
	categories := make([]*entity.Category, 0, len(f.categories))
	for _, c := range f.categories {
		categories = append(categories, c)
	}
	return categories, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	if _, ok := f.categories[category.ID]; !ok {
		return fmt.Errorf("category %s not found", category.ID.String())
	}
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.categories[id]; !ok {
		return fmt.Errorf("category %s not found", id.String())
	}
	delete(f.categories, id)
	return nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) FindAll(_ context.Context) ([]*entity.Product, error) {
	products := make([]*entity.Product, 0, len(f.products))
	for _, p := range f.products {
		products = append(products, p)
	}
	return products, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	if _, ok := f.products[product.ID]; !ok {
		return fmt.Errorf("product %s not found", product.ID.String())
	}
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.products[id]; !ok {
		return fmt.Errorf("product %s not found", id.String())
	}
	delete(f.products, id)
	return nil
}

type fakeCartRepo struct {
	carts map[uuid.UUID]*entity.Cart // keyed by user ID
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[uuid.UUID]*entity.Cart)}
}

func (f *fakeCartRepo) EnsureForUser(_ context.Context, userID uuid.UUID) (*entity.Cart, error) {
	if cart, ok := f.carts[userID]; ok {
		return cart, nil
	}
	now := time.Now()
	cart := &entity.Cart{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID: userID,
	}
	f.carts[userID] = cart
	return cart, nil
}

func (f *fakeCartRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Cart, error) {
	return f.carts[userID], nil
}

func (f *fakeCartRepo) FindItems(_ context.Context, cartID uuid.UUID) ([]*entity.CartItem, error) {
	for _, cart := range f.carts {
		if cart.ID == cartID {
			return cart.Items, nil
		}
	}
	return nil, nil
}

func (f *fakeCartRepo) MergeItem(_ context.Context, item *entity.CartItem) error {
	for _, cart := range f.carts {
		if cart.ID != item.CartID {
			continue
		}
		for _, line := range cart.Items {
			if line.ProductID == item.ProductID {
				line.Quantity += item.Quantity
				return nil
			}
		}
		cart.Items = append(cart.Items, item)
		return nil
	}
	return fmt.Errorf("cart %s not found", item.CartID.String())
}

func (f *fakeCartRepo) SetItemQuantity(_ context.Context, cartID, productID uuid.UUID, quantity int) (bool, error) {
	for _, cart := range f.carts {
		if cart.ID != cartID {
			continue
		}
		for _, line := range cart.Items {
			if line.ProductID == productID {
				line.Quantity = quantity
				return true, nil
			}
		}
	}
	return false, nil
}

func (f *fakeCartRepo) RemoveItem(_ context.Context, cartID, productID uuid.UUID) error {
	for _, cart := range f.carts {
		if cart.ID != cartID {
			continue
		}
		for i, line := range cart.Items {
			if line.ProductID == productID {
				cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

func (f *fakeCartRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	delete(f.carts, userID)
	return nil
}

type fakeOrderRepo struct {
	orders map[uuid.UUID]*entity.Order
	items  map[uuid.UUID][]*entity.OrderItem
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: make(map[uuid.UUID]*entity.Order),
		items:  make(map[uuid.UUID][]*entity.OrderItem),
	}
}

func (f *fakeOrderRepo) CreateWithItems(_ context.Context, order *entity.Order, items []*entity.OrderItem) error {
	f.orders[order.ID] = order
	f.items[order.ID] = items
	return nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	order.Items = f.items[id]
	return order, nil
}

func (f *fakeOrderRepo) FindAll(_ context.Context) ([]*entity.Order, error) {
	orders := make([]*entity.Order, 0, len(f.orders))
	for id, o := range f.orders {
		o.Items = f.items[id]
		orders = append(orders, o)
	}
	return orders, nil
}

func (f *fakeOrderRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orders []*entity.Order
	for id, o := range f.orders {
		if o.UserID == userID {
			o.Items = f.items[id]
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (f *fakeOrderRepo) FindItemsByOrderID(_ context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	return f.items[orderID], nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, orderID uuid.UUID, status string) error {
	order, ok := f.orders[orderID]
	if !ok {
		return fmt.Errorf("order %s not found", orderID.String())
	}
	order.Status = status
	return nil
}

func (f *fakeOrderRepo) DeleteWithItems(_ context.Context, id uuid.UUID) error {
	if _, ok := f.orders[id]; !ok {
		return fmt.Errorf("order %s not found", id.String())
	}
	delete(f.orders, id)
	delete(f.items, id)
	return nil
}

func (f *fakeOrderRepo) TotalSales(_ context.Context) (float64, error) {
	var total float64
	for _, o := range f.orders {
		total += o.TotalPrice
	}
	return total, nil
}

func newFakeRepository() *repository.Repository {
	return &repository.Repository{
		User:     newFakeUserRepo(),
		Category: newFakeCategoryRepo(),
		Product:  newFakeProductRepo(),
		Cart:     newFakeCartRepo(),
		Order:    newFakeOrderRepo(),
	}
}
