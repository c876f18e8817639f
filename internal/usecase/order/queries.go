package order

import (
	"github.com/pedelocal/pedelocal-order-service/internal/domain"
	orderdto "github.com/pedelocal/pedelocal-order-service/internal/usecase/dto/order"
)

// GetOrderByID enforces read visibility: customers see their own orders,
// stores see their own store's, admins see everything.
func (uc *DefaultOrderUsecase) GetOrderByID(actor domain.Actor, orderID string) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case domain.RoleAdmin:
	case domain.RoleLoja:
		if actor.StoreID != order.StoreID {
			return nil, domain.ErrForbidden
		}
	case domain.RoleCliente:
		if actor.ID != order.CustomerID {
			return nil, domain.ErrForbidden
		}
	default:
		return nil, domain.ErrForbidden
	}

	return order, nil
}

func (uc *DefaultOrderUsecase) GetStoreOrders(actor domain.Actor, storeID string, input *orderdto.ListOrdersInput) ([]*domain.Order, int64, error) {
	if actor.Role != domain.RoleAdmin && !(actor.Role == domain.RoleLoja && actor.StoreID == storeID) {
		return nil, 0, domain.ErrForbidden
	}

	page, limit := normalizePage(input.Page, input.Limit)
	return uc.OrderRepo.GetOrdersByStoreID(storeID, input.Filters, page, limit, input.SortBy, input.SortOrder)
}

func (uc *DefaultOrderUsecase) GetCustomerOrders(actor domain.Actor, customerID string, page, limit int64) ([]*domain.Order, int64, error) {
	if actor.Role != domain.RoleAdmin && !(actor.Role == domain.RoleCliente && actor.ID == customerID) {
		return nil, 0, domain.ErrForbidden
	}

	page, limit = normalizePage(page, limit)
	return uc.OrderRepo.GetOrdersByCustomerID(customerID, page, limit)
}

func normalizePage(page, limit int64) (int64, int64) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
