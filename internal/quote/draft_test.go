package quote

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func newTestDraft() *Draft {
	return NewDraft("d1", time.Unix(0, 0))
}

func TestDraftAddUsesDefaultSize(t *testing.T) {
	d := newTestDraft()
	require.NoError(t, d.Add(testCatalog, "cheap"))
	assert.Equal(t, []LineItem{{ProductID: "cheap", Quantity: 1, Size: "25 lb Bag"}}, d.Items)

	assert.ErrorIs(t, d.Add(testCatalog, "ghost"), ErrUnknownProduct)
	assert.Len(t, d.Items, 1)
}

func TestDraftUpdateInPlace(t *testing.T) {
	d := newTestDraft()
	require.NoError(t, d.Add(testCatalog, "basic"))
	require.NoError(t, d.Add(testCatalog, "cheap"))

	require.NoError(t, d.Update(testCatalog, 0, ItemPatch{Quantity: intPtr(2), Size: strPtr("1 ton")}))
	assert.Equal(t, LineItem{ProductID: "basic", Quantity: 2, Size: "1 ton"}, d.Items[0])
	assert.Equal(t, "1409.99", FormatTotal(d.Estimate(testCatalog)))

	assert.ErrorIs(t, d.Update(testCatalog, 1, ItemPatch{Quantity: intPtr(0)}), ErrInvalidQuantity)
	assert.ErrorIs(t, d.Update(testCatalog, 1, ItemPatch{Size: strPtr("1 ton")}), ErrInvalidSize)
	assert.ErrorIs(t, d.Update(testCatalog, 5, ItemPatch{Quantity: intPtr(1)}), ErrIndexOutOfRange)
	assert.ErrorIs(t, d.Update(testCatalog, -1, ItemPatch{}), ErrIndexOutOfRange)
	assert.Equal(t, LineItem{ProductID: "cheap", Quantity: 1, Size: "25 lb Bag"}, d.Items[1])
}

func TestDraftRemoveByIndex(t *testing.T) {
	d := newTestDraft()
	require.NoError(t, d.Add(testCatalog, "basic"))
	require.NoError(t, d.Add(testCatalog, "cheap"))
	require.NoError(t, d.Add(testCatalog, "basic"))

	require.NoError(t, d.Remove(1))
	assert.Equal(t, []string{"basic", "basic"}, productIDs(d.Items))
	assert.ErrorIs(t, d.Remove(2), ErrIndexOutOfRange)
}

func TestDraftItemsCopyIsDetached(t *testing.T) {
	d := newTestDraft()
	require.NoError(t, d.Add(testCatalog, "basic"))
	items := d.ItemsCopy()
	items[0].Quantity = 50
	assert.Equal(t, 1, d.Items[0].Quantity)
}

func TestDraftSubmitStateMachine(t *testing.T) {
	d := newTestDraft()
	require.NoError(t, d.Add(testCatalog, "basic"))

	require.NoError(t, d.BeginSubmit())
	assert.Equal(t, StateSubmitting, d.State)
	assert.ErrorIs(t, d.BeginSubmit(), ErrSubmitInFlight)
	assert.ErrorIs(t, d.Add(testCatalog, "cheap"), ErrSubmitInFlight)

	d.FailSubmit("Missing required fields")
	assert.Equal(t, StateFailed, d.State)
	assert.Equal(t, "Missing required fields", d.LastError)

	// the next edit clears the failure
	require.NoError(t, d.Update(testCatalog, 0, ItemPatch{Quantity: intPtr(3)}))
	assert.Equal(t, StateIdle, d.State)
	assert.Empty(t, d.LastError)

	require.NoError(t, d.BeginSubmit())
	d.CompleteSubmit("QT-1-ABC")
	assert.Equal(t, StateSubmitted, d.State)
	assert.Equal(t, "QT-1-ABC", d.QuoteID)

	assert.ErrorIs(t, d.Add(testCatalog, "cheap"), ErrDraftSubmitted)
	assert.ErrorIs(t, d.Remove(0), ErrDraftSubmitted)
	assert.ErrorIs(t, d.BeginSubmit(), ErrDraftSubmitted)

	d.Reset()
	assert.Equal(t, StateIdle, d.State)
	assert.Empty(t, d.Items)
	assert.Empty(t, d.QuoteID)
	require.NoError(t, d.Add(testCatalog, "cheap"))
}

func TestFailedDraftCanBeResubmitted(t *testing.T) {
	d := newTestDraft()
	require.NoError(t, d.BeginSubmit())
	d.FailSubmit("Invalid email format")
	require.NoError(t, d.BeginSubmit())
	assert.Empty(t, d.LastError)
}

func productIDs(items []LineItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ProductID
	}
	return out
}
