package mappers

import (
	"github.com/pedelocal/pedelocal-order-service/internal/domain"
	"github.com/pedelocal/pedelocal-order-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	items := make([]domain.OrderItem, len(model.Items))
	for i, it := range model.Items {
		items[i] = domain.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Note:      it.Note,
		}
	}

	return &domain.Order{
		ID:          model.ID,
		StoreID:     model.StoreID,
		CustomerID:  model.CustomerID,
		Items:       items,
		Subtotal:    model.Subtotal,
		DeliveryFee: model.DeliveryFee,
		Total:       model.Total,
		Status:      model.Status,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	items := make([]models.OrderItemModel, len(order.Items))
	for i, it := range order.Items {
		items[i] = models.OrderItemModel{
			OrderID:   order.ID,
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Note:      it.Note,
		}
	}

	return &models.OrderModel{
		ID:          order.ID,
		StoreID:     order.StoreID,
		CustomerID:  order.CustomerID,
		Items:       items,
		Subtotal:    order.Subtotal,
		DeliveryFee: order.DeliveryFee,
		Total:       order.Total,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}
