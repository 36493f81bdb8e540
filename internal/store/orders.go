package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"peluqueria/internal/models"
)

type CartItem struct {
	ProductID uint
	Quantity  int
}

type CreateOrderRequest struct {
	UserID uint
	Items  []CartItem
	// Date stamps the order; the zero value means "now".
	Date time.Time
}

// CreateOrderFromCart converts a finalized cart into a persisted order.
//
// Every product is resolved up front and its current price is snapshotted
// into the order line, so nothing the client sent is trusted for pricing and
// later catalog changes cannot alter this order. The status row and the
// order with its items are written in a single transaction: a failure
// anywhere leaves no orphaned status and no partial order.
func CreateOrderFromCart(ctx context.Context, db *gorm.DB, req CreateOrderRequest) (*models.Order, error) {
	if req.UserID == 0 {
		return nil, ErrMissingUser
	}
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}
	for _, line := range req.Items {
		if line.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}

	var user models.User
	if err := db.WithContext(ctx).First(&user, req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("resolve user %d: %w", req.UserID, err)
	}

	var (
		items []models.OrderItem
		total decimal.Decimal
	)
	for _, line := range req.Items {
		var product models.Product
		if err := db.WithContext(ctx).First(&product, line.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: id %d", ErrProductNotFound, line.ProductID)
			}
			return nil, fmt.Errorf("resolve product %d: %w", line.ProductID, err)
		}
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			Price:     product.Price,
		})
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	var order models.Order
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		status := models.OrderStatus{Estado: false}
		if err := tx.Create(&status).Error; err != nil {
			return fmt.Errorf("create order status: %w", err)
		}

		order = models.Order{
			UserID:   req.UserID,
			Date:     date,
			Total:    total,
			StatusID: status.ID,
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.CreateInBatches(&items, len(items)).Error; err != nil {
			return fmt.Errorf("create order items: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return GetOrder(ctx, db, order.ID)
}

func GetOrder(ctx context.Context, db *gorm.DB, id uint) (*models.Order, error) {
	var order models.Order
	err := db.WithContext(ctx).
		Preload("User.Role").
		Preload("Status").
		Preload("Items.Product").
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	return &order, nil
}

func ListOrders(ctx context.Context, db *gorm.DB) ([]models.Order, error) {
	orders := []models.Order{}
	err := db.WithContext(ctx).
		Preload("User.Role").
		Preload("Status").
		Preload("Items.Product").
		Order("date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func ListOrdersByUser(ctx context.Context, db *gorm.DB, userID uint) ([]models.Order, error) {
	orders := []models.Order{}
	err := db.WithContext(ctx).
		Preload("Status").
		Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list orders for user %d: %w", userID, err)
	}
	return orders, nil
}

// SetOrderStatus overwrites the delivery flag of an order's status row. It is
// the only mutation an order sees after creation and is idempotent: setting
// the current value again succeeds without effect.
func SetOrderStatus(ctx context.Context, db *gorm.DB, orderID uint, delivered bool) (*models.OrderStatus, error) {
	var order models.Order
	if err := db.WithContext(ctx).First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("resolve order %d: %w", orderID, err)
	}

	var status models.OrderStatus
	if err := db.WithContext(ctx).First(&status, order.StatusID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Dangling status link: the order exists but its status row is gone.
			return nil, ErrStatusNotFound
		}
		return nil, fmt.Errorf("resolve status %d: %w", order.StatusID, err)
	}

	if err := db.WithContext(ctx).Model(&status).Update("estado", delivered).Error; err != nil {
		return nil, fmt.Errorf("update status %d: %w", status.ID, err)
	}
	return &status, nil
}
