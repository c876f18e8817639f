package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pedelocal/pedelocal-order-service/internal/domain"
	"github.com/pedelocal/pedelocal-order-service/internal/infrastructure/postgres/mappers"
	"github.com/pedelocal/pedelocal-order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(order *domain.Order) error {
	orderModel := mappers.ToGORMOrder(order)
	if err := r.DB.Create(orderModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultOrderRepository) GetOrderByID(orderID string) (*domain.Order, error) {
	var order models.OrderModel
	if err := r.DB.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return mappers.ToDomainOrder(&order), nil
}

// UpdateOrderStatus is the optimistic-concurrency write: the status column
// is updated only if it still holds oldStatus. A concurrent transition that
// got there first leaves zero affected rows and the caller gets
// ErrStaleState to re-read and retry.
func (r *DefaultOrderRepository) UpdateOrderStatus(orderID string, oldStatus, newStatus domain.OrderStatus) error {
	res := r.DB.Model(&models.OrderModel{}).
		Where("id = ? AND status = ?", orderID, oldStatus).
		Updates(map[string]interface{}{
			"status":     newStatus,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.DB.Model(&models.OrderModel{}).Where("id = ?", orderID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrNotFound
		}
		return domain.ErrStaleState
	}
	return nil
}

func (r *DefaultOrderRepository) GetOrdersByStoreID(
	storeID string,
	filters domain.OrderFilters,
	page, limit int64,
	sortBy, sortOrder string,
) ([]*domain.Order, int64, error) {
	var orderModels []models.OrderModel
	var total int64

	safeSortBy := "created_at"
	switch sortBy {
	case "total":
		safeSortBy = "total"
	case "updated_at":
		safeSortBy = "updated_at"
	case "created_at":
		safeSortBy = "created_at"
	}

	safeSortOrder := "DESC"
	if strings.ToUpper(sortOrder) == "ASC" {
		safeSortOrder = "ASC"
	}

	baseQuery := r.DB.Model(&models.OrderModel{}).
		Preload("Items").
		Where("store_id = ?", storeID)

	if len(filters.Statuses) > 0 {
		baseQuery = baseQuery.Where("status IN (?)", filters.Statuses)
	}

	if filters.CustomerID != "" {
		baseQuery = baseQuery.Where("customer_id = ?", filters.CustomerID)
	}

	if !filters.DateFrom.IsZero() {
		baseQuery = baseQuery.Where("created_at >= ?", filters.DateFrom)
	}

	if !filters.DateTo.IsZero() {
		baseQuery = baseQuery.Where("created_at <= ?", filters.DateTo)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	offset := (page - 1) * limit
	err := baseQuery.
		Order(fmt.Sprintf("%s %s", safeSortBy, safeSortOrder)).
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&orderModels).Error

	if err != nil {
		return nil, 0, fmt.Errorf("failed to find orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}

	return orders, total, nil
}

func (r *DefaultOrderRepository) GetOrdersByCustomerID(customerID string, page, limit int64) ([]*domain.Order, int64, error) {
	var orderModels []models.OrderModel
	var total int64

	baseQuery := r.DB.Model(&models.OrderModel{}).
		Preload("Items").
		Where("customer_id = ?", customerID)

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	offset := (page - 1) * limit
	if err := baseQuery.
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&orderModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}

	return orders, total, nil
}

// GetDeliveredOrders feeds settlement generation: entregue orders created
// in the half-open window [from, to).
func (r *DefaultOrderRepository) GetDeliveredOrders(storeID string, from, to time.Time) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	if err := r.DB.
		Preload("Items").
		Where("store_id = ?", storeID).
		Where("status = ?", domain.StatusEntregue).
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at ASC").
		Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}

	return orders, nil
}
