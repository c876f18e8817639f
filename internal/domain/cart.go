package domain

type CartItem struct {
	ProductID string
	Name      string
	UnitPrice int64
	Quantity  int64
	Note      string
	StoreID   string
}

// Cart is session-scoped, ephemeral state. All line items share one
// StoreID; the invariant is enforced at insertion, never re-checked.
// Methods are pure: they return a new cart and never mutate the receiver.
type Cart struct {
	Items []CartItem
}

// StoreID is the cart's store affinity, empty for an empty cart.
func (c Cart) StoreID() string {
	if len(c.Items) == 0 {
		return ""
	}
	return c.Items[0].StoreID
}

func (c Cart) Subtotal() int64 {
	var sum int64
	for _, it := range c.Items {
		sum += it.UnitPrice * it.Quantity
	}
	return sum
}

func (c Cart) clone() Cart {
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items}
}

// AddItem applies the single-store rule. Same store (or empty cart): merge
// quantity into an existing line with the same product and note, else
// append. Different store: without confirmReplace the add is a no-op and
// applied is false, signalling the caller to ask; with it the cart is
// replaced by a single-line cart for the new store.
func (c Cart) AddItem(item CartItem, confirmReplace bool) (Cart, bool) {
	if item.Quantity < 1 {
		return c, false
	}
	if len(c.Items) > 0 && item.StoreID != c.StoreID() {
		if !confirmReplace {
			return c, false
		}
		return Cart{Items: []CartItem{item}}, true
	}

	next := c.clone()
	for i, line := range next.Items {
		if line.ProductID == item.ProductID && line.Note == item.Note {
			next.Items[i].Quantity += item.Quantity
			return next, true
		}
	}
	next.Items = append(next.Items, item)
	return next, true
}

// UpdateQuantity sets a line's quantity; zero or negative removes the line.
func (c Cart) UpdateQuantity(productID, note string, quantity int64) Cart {
	if quantity <= 0 {
		return c.RemoveItem(productID, note)
	}
	next := c.clone()
	for i, line := range next.Items {
		if line.ProductID == productID && line.Note == note {
			next.Items[i].Quantity = quantity
			break
		}
	}
	return next
}

func (c Cart) RemoveItem(productID, note string) Cart {
	items := make([]CartItem, 0, len(c.Items))
	for _, line := range c.Items {
		if line.ProductID == productID && line.Note == note {
			continue
		}
		items = append(items, line)
	}
	return Cart{Items: items}
}
