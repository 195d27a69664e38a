package catalog

import "errors"

var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrUnknownProduct  = errors.New("product does not belong to category")
)

// Category is the canonical property taxonomy. Parsing rejects unknown
// strings, so a lookup on a valid Category can never miss.
type Category string

const (
	CategoryResidential    Category = "Residential Property"
	CategoryCommercial     Category = "Commercial Property"
	CategoryLand           Category = "Land"
	CategoryVacationRental Category = "Vacation Rental"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryResidential, CategoryCommercial, CategoryLand, CategoryVacationRental:
		return true
	default:
		return false
	}
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

func AllCategories() []Category {
	return []Category{
		CategoryResidential,
		CategoryCommercial,
		CategoryLand,
		CategoryVacationRental,
	}
}

// Products is total over valid categories: every Category constant has an
// entry, and NewCategory guarantees no other value reaches here.
func (c Category) Products() []string {
	switch c {
	case CategoryResidential:
		return []string{"Apartment", "House", "Villa", "Townhouse", "Penthouse"}
	case CategoryCommercial:
		return []string{"Office", "Shop", "Warehouse", "Showroom"}
	case CategoryLand:
		return []string{"Plot", "Farmland"}
	case CategoryVacationRental:
		return []string{"Cottage", "Cabin", "Beach House"}
	default:
		return nil
	}
}

func (c Category) HasProduct(product string) bool {
	for _, p := range c.Products() {
		if p == product {
			return true
		}
	}
	return false
}
