package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinCatalogIsValid(t *testing.T) {
	c, err := New(Builtin())
	require.NoError(t, err)
	assert.Equal(t, len(Builtin()), c.Len())
}

func TestNewRejectsBadProducts(t *testing.T) {
	good := Product{ID: "a", Name: "A", Price: 1, Sizes: []string{"50 lb Bag"}}

	cases := map[string][]Product{
		"empty":     {},
		"no id":     {{Name: "x", Price: 1, Sizes: []string{"s"}}},
		"duplicate": {good, good},
		"zero price": {
			{ID: "b", Price: 0, Sizes: []string{"s"}},
		},
		"no sizes": {
			{ID: "c", Price: 2},
		},
	}
	for name, products := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(products)
			assert.Error(t, err)
		})
	}
}

func TestByIDReturnsCopies(t *testing.T) {
	c := MustNew(Builtin())

	p, ok := c.ByID("premium-cattle-feed")
	require.True(t, ok)
	p.Sizes[0] = "mutated"
	p.Benefits = nil

	again, _ := c.ByID("premium-cattle-feed")
	assert.Equal(t, "50 lb Bag", again.DefaultSize())
	assert.NotEmpty(t, again.Benefits)

	_, ok = c.ByID("does-not-exist")
	assert.False(t, ok)
}

func TestCategoriesSortedAndUnique(t *testing.T) {
	c := MustNew(Builtin())
	assert.Equal(t, []string{"Cattle", "Horses", "Poultry", "Sheep", "Swine"}, c.Categories())
	assert.Equal(t, "Cattle", c.CanonicalCategory("cattle"))
	assert.Equal(t, "llamas", c.CanonicalCategory("llamas"))
}

func TestByCategoryKeepsCatalogOrder(t *testing.T) {
	c := MustNew(Builtin())
	got := ids(c.ByCategory("Cattle"))
	assert.Equal(t, []string{"premium-cattle-feed", "calf-starter-crumbles", "mineral-lick-block"}, got)
	assert.Empty(t, c.ByCategory("Llamas"))
}

func TestFeatured(t *testing.T) {
	c := MustNew(Builtin())
	assert.Equal(t, []string{"premium-cattle-feed", "poultry-layer-pellets", "swine-grower-mix"}, ids(c.Featured(3)))
	assert.Len(t, c.Featured(100), c.Len())
	assert.Empty(t, c.Featured(0))
}

func TestRelated(t *testing.T) {
	c := MustNew(Builtin())

	related, ok := c.Related("poultry-layer-pellets", 3)
	require.True(t, ok)
	assert.Equal(t, []string{"broiler-finisher", "organic-scratch-grains"}, ids(related))

	related, ok = c.Related("equine-performance-blend", 1)
	require.True(t, ok)
	assert.Equal(t, []string{"senior-horse-feed"}, ids(related))

	_, ok = c.Related("missing", 3)
	assert.False(t, ok)
}

type fakeRow struct {
	values []any
	err    error
}

func (f fakeRow) Scan(dest ...any) error {
	if f.err != nil {
		return f.err
	}
	for i, d := range dest {
		switch ptr := d.(type) {
		case *string:
			*ptr = f.values[i].(string)
		case *float64:
			*ptr = f.values[i].(float64)
		case *pq.StringArray:
			*ptr = pq.StringArray(f.values[i].([]string))
		}
	}
	return nil
}

func TestScanProduct(t *testing.T) {
	row := fakeRow{values: []any{
		"hay-cubes", "Hay Cubes", "Compressed alfalfa", 12.5, "/img.jpg",
		"Horses", []string{"Dust free"}, []string{"50 lb Bag", "1 ton Bulk"},
	}}

	p, err := scanProduct(row)
	require.NoError(t, err)
	assert.Equal(t, "hay-cubes", p.ID)
	assert.Equal(t, 12.5, p.Price)
	assert.Equal(t, []string{"Dust free"}, p.Benefits)
	assert.Equal(t, "50 lb Bag", p.DefaultSize())
	assert.True(t, p.HasSize("1 ton Bulk"))
	assert.False(t, p.HasSize("25 lb Bag"))

	_, err = scanProduct(fakeRow{err: errors.New("bad column")})
	assert.Error(t, err)
}

func TestLoadWithoutDatabaseUsesBuiltin(t *testing.T) {
	c, err := Load(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, len(Builtin()), c.Len())
}

func ids(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}
