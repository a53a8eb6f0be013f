package domain

import (
	"encoding/json"
	"strconv"
	"time"
)

// knownItemFields are the CartItem keys handled by the struct itself.
// Everything else (calories, protein, stars, ...) is category-specific
// catalog data that must survive a round trip untouched.
var knownItemFields = []string{"id", "name", "price", "description", "meal_img", "drink_image"}

type CartItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       Price  `json:"price"`
	Description string `json:"description"`
	MealImg     string `json:"meal_img,omitempty"`
	DrinkImage  string `json:"drink_image,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (it *CartItem) UnmarshalJSON(data []byte) error {
	type alias CartItem
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for _, key := range knownItemFields {
		delete(fields, key)
	}
	if len(fields) > 0 {
		decoded.Extra = fields
	}

	*it = CartItem(decoded)
	return nil
}

func (it CartItem) MarshalJSON() ([]byte, error) {
	type alias CartItem
	base, err := json.Marshal(alias(it))
	if err != nil {
		return nil, err
	}
	if len(it.Extra) == 0 {
		return base, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(base, &fields); err != nil {
		return nil, err
	}
	for key, value := range it.Extra {
		if _, ok := fields[key]; !ok {
			fields[key] = value
		}
	}
	return json.Marshal(fields)
}

// Price is a decimal amount that upstream data serializes either as a
// number or as a string like "5.00".
type Price string

func (p *Price) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = Price(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*p = Price(n.String())
		return nil
	}

	// Anything else counts as no price rather than an error.
	*p = ""
	return nil
}

// Float64 returns the numeric value, treating missing or unparseable
// prices as zero.
func (p Price) Float64() float64 {
	value, err := strconv.ParseFloat(string(p), 64)
	if err != nil {
		return 0
	}
	return value
}

// Cart is the shopper's in-progress selection, insertion order preserved.
// Duplicate ids are permitted: adding the same catalog item twice yields
// two entries.
type Cart []CartItem

// Order is a finalized transaction as recorded by the remote order
// service. Never mutated after creation.
type Order struct {
	ID         int     `json:"id,omitempty"`
	Cart       Cart    `json:"cart"`
	TotalPrice float64 `json:"totalPrice"`
	Date       string  `json:"date"`
}

// OrderHistory is the flattened view of every submitted order: each
// record's cart concatenated in returned order, grand total summed from
// the stored totals.
type OrderHistory struct {
	Items      Cart        `json:"items"`
	TotalPrice float64     `json:"totalPrice"`
	Status     OrderStatus `json:"status"`
}

// OrderEvent is published to Kafka after the remote service has confirmed
// a submission.
type OrderEvent struct {
	Type       string    `json:"type"`
	OrderID    int       `json:"order_id"`
	TotalPrice float64   `json:"total_price"`
	ItemCount  int       `json:"item_count"`
	Timestamp  time.Time `json:"timestamp"`
}
