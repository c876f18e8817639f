package cart

import (
	"time"

	"github.com/pedelocal/pedelocal-order-service/internal/domain"
	orderdto "github.com/pedelocal/pedelocal-order-service/internal/usecase/dto/order"
)

type orderCreator interface {
	CreateOrder(actor domain.Actor, input *orderdto.CreateOrderInput) (*domain.Order, error)
}

// AddItemResult distinguishes the cross-store decision point from a plain
// add: when RequiresConfirmation is set the cart was NOT changed and the
// caller must repeat the add with the confirm flag to replace the cart.
type AddItemResult struct {
	Cart                 domain.Cart
	RequiresConfirmation bool
}

type DefaultCartUsecase struct {
	Sessions  *SessionStore
	StoreRepo domain.StoreRepository
	Orders    orderCreator
	// DefaultLoc is the marketplace-wide timezone for stores that have
	// none of their own.
	DefaultLoc *time.Location
	Now        func() time.Time
}

func NewDefaultCartUsecase(sessions *SessionStore, storeRepo domain.StoreRepository, orders orderCreator, defaultLoc *time.Location) *DefaultCartUsecase {
	return &DefaultCartUsecase{
		Sessions:   sessions,
		StoreRepo:  storeRepo,
		Orders:     orders,
		DefaultLoc: defaultLoc,
		Now:        time.Now,
	}
}

func (uc *DefaultCartUsecase) GetCart(sessionID string) domain.Cart {
	return uc.Sessions.Get(sessionID)
}

func (uc *DefaultCartUsecase) AddItem(sessionID string, item domain.CartItem, confirmReplace bool) (AddItemResult, error) {
	if item.Quantity < 1 {
		return AddItemResult{}, domain.ErrInvalidQuantity
	}
	if _, err := uc.StoreRepo.GetStoreByID(item.StoreID); err != nil {
		return AddItemResult{}, err
	}

	cart := uc.Sessions.Get(sessionID)
	next, applied := cart.AddItem(item, confirmReplace)
	if !applied {
		// With the quantity validated above, the only remaining rejection
		// is an unconfirmed cross-store add.
		return AddItemResult{Cart: cart, RequiresConfirmation: true}, nil
	}

	uc.Sessions.Put(sessionID, next)
	return AddItemResult{Cart: next}, nil
}

func (uc *DefaultCartUsecase) UpdateQuantity(sessionID, productID, note string, quantity int64) domain.Cart {
	next := uc.Sessions.Get(sessionID).UpdateQuantity(productID, note, quantity)
	uc.Sessions.Put(sessionID, next)
	return next
}

func (uc *DefaultCartUsecase) RemoveItem(sessionID, productID, note string) domain.Cart {
	next := uc.Sessions.Get(sessionID).RemoveItem(productID, note)
	uc.Sessions.Put(sessionID, next)
	return next
}

// Checkout turns the session's cart into a pendente order against the
// cart's store, which must be open at this instant. The cart survives a
// failed checkout and is discarded after a successful one.
func (uc *DefaultCartUsecase) Checkout(actor domain.Actor, sessionID string) (*domain.Order, error) {
	cart := uc.Sessions.Get(sessionID)
	if len(cart.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	store, err := uc.StoreRepo.GetStoreByID(cart.StoreID())
	if err != nil {
		return nil, err
	}
	if !store.Schedule.IsOpenAt(uc.Now(), store.Location(uc.DefaultLoc)) {
		return nil, domain.ErrStoreClosed
	}

	items := make([]domain.OrderItem, len(cart.Items))
	for i, line := range cart.Items {
		items[i] = domain.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Note:      line.Note,
		}
	}

	order, err := uc.Orders.CreateOrder(actor, &orderdto.CreateOrderInput{
		StoreID:     store.ID,
		CustomerID:  actor.ID,
		Items:       items,
		DeliveryFee: store.DeliveryFee,
	})
	if err != nil {
		return nil, err
	}

	uc.Sessions.Clear(sessionID)
	return order, nil
}
