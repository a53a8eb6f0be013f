package domain

// Add appends item to the end of the cart and returns the new sequence.
// The input cart is left untouched.
func Add(cart Cart, item CartItem) Cart {
	out := make(Cart, 0, len(cart)+1)
	out = append(out, cart...)
	return append(out, item)
}

// Remove returns a new cart with every entry matching id excluded.
// Idempotent: removing an absent id returns an equal cart.
func Remove(cart Cart, id int) Cart {
	out := make(Cart, 0, len(cart))
	for _, item := range cart {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}

// TotalPrice sums the item prices. Derived on every call; there is no
// maintained running total to drift.
func TotalPrice(cart Cart) float64 {
	var total float64
	for _, item := range cart {
		total += item.Price.Float64()
	}
	return total
}
