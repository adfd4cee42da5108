package repository

import (
	"context"
	"fmt"
	"time"

	"ecommerce-api/internal/data/entity"
	"ecommerce-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CartRepository interface {
	// EnsureForUser returns the user's cart, creating it when missing.
	// Safe under concurrent calls: the unique user_id constraint keeps
	// at most one cart per user.
	EnsureForUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
	FindItems(ctx context.Context, cartID uuid.UUID) ([]*entity.CartItem, error)

	// MergeItem adds quantity to an existing line or inserts a new one,
	// as a single atomic upsert (no read-modify-write race).
	MergeItem(ctx context.Context, item *entity.CartItem) error
	// SetItemQuantity overwrites the stored quantity; returns false when
	// the product is not in the cart.
	SetItemQuantity(ctx context.Context, cartID, productID uuid.UUID, quantity int) (bool, error)
	// RemoveItem is idempotent; removing an absent product is not an error.
	RemoveItem(ctx context.Context, cartID, productID uuid.UUID) error
	// DeleteByUserID removes the cart and all its items. Idempotent.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type cartRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCartRepository(db database.PgxIface, log *zap.Logger) CartRepository {
	return &cartRepository{
		db:  db,
		log: log.With(zap.String("repository", "cart")),
	}
}

func (r *cartRepository) EnsureForUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	now := time.Now()
	insert := `
		INSERT INTO carts (id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, insert, uuid.New(), userID, now, now)
	if err != nil {
		r.log.Error("Failed to ensure cart",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("ensure cart for user %s: %w", userID.String(), err)
	}

	// Re-read so concurrent creators all observe the same row
	cart, err := r.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, fmt.Errorf("cart for user %s missing after ensure", userID.String())
	}

	return cart, nil
}

func (r *cartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	query := `
		SELECT id, user_id, created_at, updated_at
		FROM carts
		WHERE user_id = $1
	`

	var cart entity.Cart
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&cart.ID,
		&cart.UserID,
		&cart.CreatedAt,
		&cart.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find cart by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find cart by user ID %s: %w", userID.String(), err)
	}

	items, err := r.FindItems(ctx, cart.ID)
	if err != nil {
		return nil, err
	}
	cart.Items = items

	return &cart, nil
}

func (r *cartRepository) FindItems(ctx context.Context, cartID uuid.UUID) ([]*entity.CartItem, error) {
	query := `
		SELECT id, cart_id, product_id, quantity, created_at
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, cartID)
	if err != nil {
		r.log.Error("Failed to find cart items",
			zap.Error(err),
			zap.String("cart_id", cartID.String()),
		)
		return nil, fmt.Errorf("find cart items %s: %w", cartID.String(), err)
	}
	defer rows.Close()

	var items []*entity.CartItem
	for rows.Next() {
		var item entity.CartItem
		err := rows.Scan(
			&item.ID,
			&item.CartID,
			&item.ProductID,
			&item.Quantity,
			&item.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan cart item row", zap.Error(err))
			return nil, fmt.Errorf("scan cart item row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate cart items rows: %w", err)
	}

	return items, nil
}

func (r *cartRepository) MergeItem(ctx context.Context, item *entity.CartItem) error {
	// Unique (cart_id, product_id) means a duplicate add lands on the
	// conflict branch and sums quantities atomically in the store
	query := `
		INSERT INTO cart_items (id, cart_id, product_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
	`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.CartID,
		item.ProductID,
		item.Quantity,
		item.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to merge cart item",
			zap.Error(err),
			zap.String("cart_id", item.CartID.String()),
			zap.String("product_id", item.ProductID.String()),
		)
		return fmt.Errorf("merge cart item %s: %w", item.ProductID.String(), err)
	}

	return nil
}

func (r *cartRepository) SetItemQuantity(ctx context.Context, cartID, productID uuid.UUID, quantity int) (bool, error) {
	query := `
		UPDATE cart_items
		SET quantity = $3
		WHERE cart_id = $1 AND product_id = $2
	`

	result, err := r.db.Exec(ctx, query, cartID, productID, quantity)
	if err != nil {
		r.log.Error("Failed to set cart item quantity",
			zap.Error(err),
			zap.String("cart_id", cartID.String()),
			zap.String("product_id", productID.String()),
		)
		return false, fmt.Errorf("set cart item quantity %s: %w", productID.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *cartRepository) RemoveItem(ctx context.Context, cartID, productID uuid.UUID) error {
	query := `DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2`

	_, err := r.db.Exec(ctx, query, cartID, productID)
	if err != nil {
		r.log.Error("Failed to remove cart item",
			zap.Error(err),
			zap.String("cart_id", cartID.String()),
			zap.String("product_id", productID.String()),
		)
		return fmt.Errorf("remove cart item %s: %w", productID.String(), err)
	}

	return nil
}

func (r *cartRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	// Cart owns its items: delete both inside one transaction
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin clear cart tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		DELETE FROM cart_items
		WHERE cart_id IN (SELECT id FROM carts WHERE user_id = $1)
	`, userID)
	if err != nil {
		r.log.Error("Failed to delete cart items",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("delete cart items for user %s: %w", userID.String(), err)
	}

	_, err = tx.Exec(ctx, `DELETE FROM carts WHERE user_id = $1`, userID)
	if err != nil {
		r.log.Error("Failed to delete cart",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("delete cart for user %s: %w", userID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit clear cart tx: %w", err)
	}

	return nil
}
