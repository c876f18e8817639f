package domain

import "time"

type OrderStatus string

const (
	StatusPendente   OrderStatus = "pendente"
	StatusAceito     OrderStatus = "aceito"
	StatusPreparando OrderStatus = "preparando"
	StatusPronto     OrderStatus = "pronto"
	StatusEmEntrega  OrderStatus = "em_entrega"
	StatusEntregue   OrderStatus = "entregue"
	StatusCancelado  OrderStatus = "cancelado"
)

// statusGraph holds the allowed forward transitions. Terminal statuses
// have no outgoing edges; every non-terminal status may be cancelled.
var statusGraph = map[OrderStatus][]OrderStatus{
	StatusPendente:   {StatusAceito, StatusCancelado},
	StatusAceito:     {StatusPreparando, StatusCancelado},
	StatusPreparando: {StatusPronto, StatusCancelado},
	StatusPronto:     {StatusEmEntrega, StatusCancelado},
	StatusEmEntrega:  {StatusEntregue, StatusCancelado},
	StatusEntregue:   {},
	StatusCancelado:  {},
}

func ValidStatus(s OrderStatus) bool {
	_, ok := statusGraph[s]
	return ok
}

func IsTerminalStatus(s OrderStatus) bool {
	next, ok := statusGraph[s]
	return ok && len(next) == 0
}

// CanTransition reports whether from -> to is a legal forward move.
// Skipping states, moving backward and leaving a terminal status are all
// illegal.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range statusGraph[from] {
		if next == to {
			return true
		}
	}
	return false
}

type OrderItem struct {
	ProductID string
	Name      string
	UnitPrice int64
	Quantity  int64
	Note      string
}

// Order amounts are integer centavos. Total is derived from
// Subtotal + DeliveryFee at creation and never mutated independently.
type Order struct {
	ID          string
	StoreID     string
	CustomerID  string
	Items       []OrderItem
	Subtotal    int64
	DeliveryFee int64
	Total       int64
	Status      OrderStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AuthorizeStatusWrite checks whether the actor may change this order's
// status at all. Only the owning store or a platform admin may; customers
// have read-only visibility.
func AuthorizeStatusWrite(actor Actor, order *Order) error {
	switch actor.Role {
	case RoleAdmin:
		return nil
	case RoleLoja:
		if actor.StoreID == order.StoreID {
			return nil
		}
		return ErrForbidden
	default:
		return ErrForbidden
	}
}

type OrderFilters struct {
	Statuses   []OrderStatus
	CustomerID string
	DateFrom   time.Time
	DateTo     time.Time
}
