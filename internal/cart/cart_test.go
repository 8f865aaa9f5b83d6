package cart

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metforge/steelctl/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// memSaver keeps the serialized cart in memory.
type memSaver struct {
	data []byte
}

func (m *memSaver) SaveCart(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.data = data
	return nil
}

func (m *memSaver) LoadCart(out interface{}) (bool, error) {
	if m.data == nil {
		return false, nil
	}
	return true, json.Unmarshal(m.data, out)
}

func (m *memSaver) ClearCart() error {
	m.data = nil
	return nil
}

func boru(diameter int, length float64) domain.Product {
	return domain.Product{
		Diameter: diameter,
		Length:   length,
		Weight:   42.5,
		Fields:   map[string]interface{}{"innerDiameter": 16, "note": ""},
	}
}

func TestAddBuildsOrderItem(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)

	item, err := c.Add(boru(20, 6000), "cat1", "5", 2)
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "5", item.BranchID)

	row := item.OrderItem
	assert.Equal(t, "cat1", row["productCategoryId"])
	assert.Equal(t, 20, row["diameter"])
	assert.Equal(t, 2, row["quantity"])
	assert.Equal(t, 0, row["wastageLength"])
	assert.Equal(t, 16, row["innerDiameter"])
	_, hasNote := row["note"]
	assert.False(t, hasNote, "empty dynamic values must be dropped")
}

func TestSingleBranchRule(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)

	_, err = c.Add(boru(20, 6000), "cat1", "5", 1)
	require.NoError(t, err)

	_, err = c.Add(boru(25, 6000), "cat2", "7", 1)
	assert.ErrorIs(t, err, ErrBranchMismatch)

	// same branch is fine
	_, err = c.Add(boru(25, 6000), "cat2", "5", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, "5", c.BranchID())
}

func TestUpdateQuantity(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)
	item, err := c.Add(boru(20, 6000), "cat1", "5", 2)
	require.NoError(t, err)

	require.NoError(t, c.UpdateQuantity(item.ID, 3))
	got := c.Items()[0]
	assert.Equal(t, 5, got.Quantity)
	assert.Equal(t, 5, got.OrderItem["quantity"])

	// dropping to zero removes the line
	require.NoError(t, c.UpdateQuantity(item.ID, -5))
	assert.Zero(t, c.Len())

	require.NoError(t, c.UpdateQuantity("missing", 1))
}

func TestItemsReturnsDetachedRows(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)
	item, err := c.Add(boru(20, 6000), "cat1", "5", 2)
	require.NoError(t, err)

	got := c.Items()[0]
	got.OrderItem["quantity"] = 99
	got.OrderItem["tampered"] = true

	fresh := c.Items()[0]
	assert.Equal(t, 2, fresh.OrderItem["quantity"])
	assert.NotContains(t, fresh.OrderItem, "tampered")

	require.NoError(t, c.UpdateQuantity(item.ID, 1))
	assert.Equal(t, 3, c.Items()[0].OrderItem["quantity"])
}

func TestToOrder(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)

	_, err = c.ToOrder("1", "Çelik A.Ş.", 100)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = c.Add(boru(20, 6000), "cat1", "5", 2)
	require.NoError(t, err)

	_, err = c.ToOrder("1", "   ", 100)
	assert.ErrorIs(t, err, ErrBlankCustomer)
	_, err = c.ToOrder("1", "Çelik A.Ş.", 0)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	order, err := c.ToOrder("1", "Çelik A.Ş.", 1500)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCreated, order.OrderStatus)
	assert.Equal(t, "1", order.OrderGivenBranchID)
	assert.Equal(t, "5", order.OrderDeliveryBranchID)
	assert.Len(t, order.OrderItems, 1)
	assert.Equal(t, 1500.0, order.TotalPrice)
	assert.NotEmpty(t, order.OrderGivenDate)
}

func TestPersistenceRoundTrip(t *testing.T) {
	saver := &memSaver{}
	c, err := New(saver)
	require.NoError(t, err)
	_, err = c.Add(boru(20, 6000), "cat1", "5", 2)
	require.NoError(t, err)

	// a fresh cart over the same saver sees the line
	c2, err := New(saver)
	require.NoError(t, err)
	require.Equal(t, 1, c2.Len())
	assert.Equal(t, "5", c2.BranchID())

	require.NoError(t, c2.Clear())
	c3, err := New(saver)
	require.NoError(t, err)
	assert.Zero(t, c3.Len())
}
