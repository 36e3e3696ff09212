package catalog

// Product is one feed product. Products are fixed at startup and never change.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	AnimalType  string   `json:"animalType"`
	Benefits    []string `json:"benefits"`
	Sizes       []string `json:"sizes"`
}

// DefaultSize is the first listed size.
func (p Product) DefaultSize() string {
	if len(p.Sizes) == 0 {
		return ""
	}
	return p.Sizes[0]
}

// HasSize reports whether size is one of the product's sizes.
func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// ProductListResponse wraps a filtered view of the catalog
type ProductListResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Shown    int       `json:"shown"`
	Query    Query     `json:"query"`
}

// ProductDetailResponse is a product plus the cards shown beside it
type ProductDetailResponse struct {
	Product Product   `json:"product"`
	Related []Product `json:"related"`
}
