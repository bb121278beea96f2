package cli

import (
	"bufio"
	"context"
	"math"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonestock/internal/client/api"
	"phonestock/internal/client/catalog"
	"phonestock/internal/client/config"
	"phonestock/internal/client/models"
	"phonestock/internal/common"
)

// fakeInventory implements services.InventoryService for CLI tests.
type fakeInventory struct {
	items   []models.Phone
	listErr error

	listCalls int

	sellouts     []models.Phone
	selloutErr   error
	selloutCalls int
}

func (f *fakeInventory) List(context.Context) ([]models.Phone, error) {
	f.listCalls++
	return f.items, f.listErr
}

func (f *fakeInventory) Get(_ context.Context, id string) (*models.Phone, error) {
	for _, p := range f.items {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeInventory) Add(_ context.Context, phone models.Phone) (*models.Phone, error) {
	phone.ID = "new"
	f.items = append(f.items, phone)
	return &phone, nil
}

func (f *fakeInventory) AdjustQuantity(_ context.Context, id string, quantity int) (*models.Phone, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Quantity = quantity
			p := f.items[i]
			return &p, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeInventory) Sell(context.Context, api.SellRequest) (*api.SellConfirmation, error) {
	return &api.SellConfirmation{Message: "ok"}, nil
}

func (f *fakeInventory) Sellouts(context.Context) ([]models.Phone, error) {
	f.selloutCalls++
	return f.sellouts, f.selloutErr
}

func (f *fakeInventory) LowStock(items []models.Phone, threshold int) []models.Phone {
	low := make([]models.Phone, 0)
	for _, item := range items {
		if item.Quantity < threshold {
			low = append(low, item)
		}
	}
	sort.SliceStable(low, func(i, j int) bool { return low[i].Quantity < low[j].Quantity })
	return low
}

func testApp(inv *fakeInventory, authed bool) *App {
	return &App{
		config:    &config.Config{LowStockThreshold: 10},
		session:   &fakeSession{authed: authed},
		inventory: inv,
		params:    catalog.DefaultParams(),
	}
}

func TestList_RequiresLogin(t *testing.T) {
	inv := &fakeInventory{}
	a := testApp(inv, false)

	assert.ErrorIs(t, a.List(context.Background()), common.ErrLoginRequired)
	assert.Zero(t, inv.listCalls, "anonymous list must not hit the service")
}

func TestList_FetchesOnce(t *testing.T) {
	inv := &fakeInventory{items: []models.Phone{{ID: "1", Name: "Pixel 8", Price: 50000, Quantity: 3}}}
	a := testApp(inv, true)

	require.NoError(t, a.List(context.Background()))
	assert.Equal(t, 1, inv.listCalls)
}

func TestList_DegradedViewStillRenders(t *testing.T) {
	inv := &fakeInventory{items: catalog.Placeholder(), listErr: common.ErrUnavailable}
	a := testApp(inv, true)

	assert.NoError(t, a.List(context.Background()))
}

func TestList_HardFailurePropagates(t *testing.T) {
	inv := &fakeInventory{listErr: &api.ServerError{Status: 500}}
	a := testApp(inv, true)

	err := a.List(context.Background())
	var se *api.ServerError
	assert.ErrorAs(t, err, &se)
}

func TestFind_DoesNotMutateStoredParams(t *testing.T) {
	inv := &fakeInventory{items: []models.Phone{{ID: "1", Name: "Pixel 8"}}}
	a := testApp(inv, true)

	require.NoError(t, a.Find(context.Background(), "pixel"))
	assert.Empty(t, a.params.Term, "find must not persist its term")
}

func TestRestock(t *testing.T) {
	inv := &fakeInventory{items: []models.Phone{
		{ID: "1", Name: "A", Quantity: 50},
		{ID: "2", Name: "B", Quantity: 2},
	}}
	a := testApp(inv, true)

	require.NoError(t, a.Restock(context.Background()))
}

func TestSellouts_RequiresLogin(t *testing.T) {
	inv := &fakeInventory{}
	a := testApp(inv, false)

	assert.ErrorIs(t, a.Sellouts(context.Background(), ""), common.ErrLoginRequired)
	assert.Zero(t, inv.selloutCalls)
}

func TestSellouts_Renders(t *testing.T) {
	inv := &fakeInventory{sellouts: []models.Phone{
		{ID: "s1", Name: "Pixel 8", Price: 69999, Quantity: 2},
		{ID: "s2", Name: "iPhone 15", Price: 89999, Quantity: 1},
	}}
	a := testApp(inv, true)

	require.NoError(t, a.Sellouts(context.Background(), ""))
	require.NoError(t, a.Sellouts(context.Background(), "pixel"))
	assert.Equal(t, 2, inv.selloutCalls)
}

func TestSellouts_ErrorPropagates(t *testing.T) {
	inv := &fakeInventory{selloutErr: common.ErrUnavailable}
	a := testApp(inv, true)

	assert.ErrorIs(t, a.Sellouts(context.Background(), ""), common.ErrUnavailable)
}

func TestCategories_RequiresLogin(t *testing.T) {
	inv := &fakeInventory{}
	a := testApp(inv, false)

	assert.ErrorIs(t, a.Categories(context.Background()), common.ErrLoginRequired)
	assert.Zero(t, inv.listCalls)
}

func TestCategories(t *testing.T) {
	inv := &fakeInventory{items: []models.Phone{
		{ID: "1", Name: "A", UseIn: []string{"Gaming", "Photography"}},
		{ID: "2", Name: "B", UseIn: []string{"gaming"}},
	}}
	a := testApp(inv, true)

	require.NoError(t, a.Categories(context.Background()))
	assert.Equal(t, 1, inv.listCalls)
}

func TestUpdate_AdjustsQuantity(t *testing.T) {
	restore := stubInputs(t, []string{"p1"}, nil)
	defer restore()

	inv := &fakeInventory{items: []models.Phone{{ID: "p1", Name: "Pixel 8", Quantity: 3}}}
	a := testApp(inv, true)
	a.reader = bufio.NewReader(strings.NewReader("20\n"))

	require.NoError(t, a.Update(context.Background()))
	assert.Equal(t, 20, inv.items[0].Quantity)
}

func TestUpdate_UnknownListing(t *testing.T) {
	restore := stubInputs(t, []string{"missing"}, nil)
	defer restore()

	inv := &fakeInventory{}
	a := testApp(inv, true)

	assert.ErrorIs(t, a.Update(context.Background()), common.ErrorNotFound)
}

func TestSetPrice(t *testing.T) {
	a := testApp(&fakeInventory{}, true)

	require.NoError(t, a.SetPrice("1000", "50000"))
	assert.Equal(t, 1000.0, a.params.PriceMin)
	assert.Equal(t, 50000.0, a.params.PriceMax)

	require.NoError(t, a.SetPrice("500", ""))
	assert.Equal(t, 500.0, a.params.PriceMin)
	assert.True(t, math.IsInf(a.params.PriceMax, 1))

	assert.Error(t, a.SetPrice("abc", ""))
	assert.Error(t, a.SetPrice("100", "xyz"))
	assert.Error(t, a.SetPrice("100", "50"), "max below min")
}

func TestSetSort(t *testing.T) {
	a := testApp(&fakeInventory{}, true)

	for _, key := range []string{"name", "price-asc", "price-desc", "quantity-desc"} {
		require.NoError(t, a.SetSort(key))
		assert.Equal(t, catalog.SortKey(key), a.params.Sort)
	}

	assert.Error(t, a.SetSort("rating"))
}

func TestClearParams(t *testing.T) {
	a := testApp(&fakeInventory{}, true)
	a.params.Term = "pixel"
	a.params.Category = "Gaming"
	a.params.PriceMin = 100

	a.ClearParams()
	assert.Equal(t, catalog.DefaultParams(), a.params)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "₹50000", formatPrice(50000))
	assert.Equal(t, "∞", formatPrice(math.Inf(1)))
}
