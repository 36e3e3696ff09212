package quote

import (
	"errors"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownProduct  = errors.New("unknown product")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidSize     = errors.New("size is not offered for this product")
	ErrIndexOutOfRange = errors.New("quote item index out of range")
	ErrDraftSubmitted  = errors.New("quote already submitted; reset to start a new one")
	ErrSubmitInFlight  = errors.New("quote submission already in progress")
)

// FormState tracks a draft's submission lifecycle.
type FormState string

const (
	StateIdle       FormState = "idle"
	StateSubmitting FormState = "submitting"
	StateSubmitted  FormState = "submitted"
	StateFailed     FormState = "failed"
)

// Draft is an in-progress quote owned by a single session.
type Draft struct {
	ID        string     `json:"id"`
	Items     []LineItem `json:"items"`
	State     FormState  `json:"state"`
	LastError string     `json:"lastError,omitempty"`
	QuoteID   string     `json:"quoteId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// ItemPatch changes quantity and/or size of one item.
type ItemPatch struct {
	Quantity *int    `json:"quantity,omitempty"`
	Size     *string `json:"size,omitempty"`
}

func NewDraft(id string, now time.Time) *Draft {
	return &Draft{
		ID:        id,
		Items:     []LineItem{},
		State:     StateIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Add appends productID with quantity 1 and the product's default size.
func (d *Draft) Add(products ProductLookup, productID string) error {
	p, ok := products.ByID(productID)
	if !ok {
		return ErrUnknownProduct
	}
	if err := d.beginEdit(); err != nil {
		return err
	}
	d.Items = append(d.Items, LineItem{ProductID: productID, Quantity: 1, Size: p.DefaultSize()})
	return nil
}

// Update mutates the item at index in place.
func (d *Draft) Update(products ProductLookup, index int, patch ItemPatch) error {
	if index < 0 || index >= len(d.Items) {
		return ErrIndexOutOfRange
	}
	item := d.Items[index]

	if patch.Quantity != nil {
		if *patch.Quantity <= 0 {
			return ErrInvalidQuantity
		}
		item.Quantity = *patch.Quantity
	}
	if patch.Size != nil {
		p, ok := products.ByID(item.ProductID)
		if !ok {
			return ErrUnknownProduct
		}
		if !p.HasSize(*patch.Size) {
			return ErrInvalidSize
		}
		item.Size = *patch.Size
	}

	if err := d.beginEdit(); err != nil {
		return err
	}
	d.Items[index] = item
	return nil
}

func (d *Draft) Remove(index int) error {
	if index < 0 || index >= len(d.Items) {
		return ErrIndexOutOfRange
	}
	if err := d.beginEdit(); err != nil {
		return err
	}
	d.Items = slices.Delete(d.Items, index, index+1)
	return nil
}

// Reset discards every item and returns the draft to idle from any state.
func (d *Draft) Reset() {
	d.Items = []LineItem{}
	d.State = StateIdle
	d.LastError = ""
	d.QuoteID = ""
}

// ItemsCopy returns a copy of the line items.
func (d *Draft) ItemsCopy() []LineItem {
	return slices.Clone(d.Items)
}

func (d *Draft) Estimate(products ProductLookup) decimal.Decimal {
	return Estimate(products, d.Items)
}

// BeginSubmit moves the draft to submitting.
func (d *Draft) BeginSubmit() error {
	switch d.State {
	case StateSubmitting:
		return ErrSubmitInFlight
	case StateSubmitted:
		return ErrDraftSubmitted
	}
	d.State = StateSubmitting
	d.LastError = ""
	return nil
}

func (d *Draft) CompleteSubmit(quoteID string) {
	d.State = StateSubmitted
	d.QuoteID = quoteID
	d.LastError = ""
}

func (d *Draft) FailSubmit(reason string) {
	d.State = StateFailed
	d.LastError = reason
}

// beginEdit gates edits on the form state. A failed draft returns to idle
// and drops its error on the next edit.
func (d *Draft) beginEdit() error {
	switch d.State {
	case StateSubmitted:
		return ErrDraftSubmitted
	case StateSubmitting:
		return ErrSubmitInFlight
	case StateFailed:
		d.State = StateIdle
		d.LastError = ""
	}
	return nil
}
