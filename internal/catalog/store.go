package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

const listProductsQuery = `
	SELECT id, name, description, price,
	       COALESCE(image, '') AS image,
	       animal_type,
	       COALESCE(benefits, '{}'::text[]) AS benefits,
	       COALESCE(sizes, '{}'::text[]) AS sizes
	FROM catalog.products
	ORDER BY position, id
`

// Store reads the product line from Postgres. It is only used once, at startup.
type Store struct {
	db *sql.DB
}

// NewStore creates a new product store
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// LoadProducts reads every product in display order.
func (s *Store) LoadProducts(ctx context.Context) ([]Product, error) {
	rows, err := s.db.QueryContext(ctx, listProductsQuery)
	if err != nil {
		return nil, fmt.Errorf("LoadProducts query: %w", err)
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("LoadProducts scan: %w", err)
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (Product, error) {
	var p Product
	var benefits, sizes pq.StringArray

	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Image,
		&p.AnimalType, &benefits, &sizes,
	)
	if err != nil {
		return Product{}, err
	}

	p.Benefits = []string(benefits)
	p.Sizes = []string(sizes)
	return p, nil
}

// Load picks the catalog source: Postgres when db is non-nil, the built-in
// product line otherwise.
func Load(ctx context.Context, db *sql.DB) (*Catalog, error) {
	if db == nil {
		return New(Builtin())
	}
	products, err := NewStore(db).LoadProducts(ctx)
	if err != nil {
		return nil, err
	}
	return New(products)
}
