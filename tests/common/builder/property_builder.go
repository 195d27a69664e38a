//go:build unit || e2e

package builder

import (
	"time"

	"havenmart/internal/domain/catalog"
	reqdto "havenmart/internal/handler/dto/request"
	"havenmart/internal/usecase/queries"

	"github.com/google/uuid"
)

type PropertyBuilder struct {
	Title       string
	Description string
	Category    string
	Product     string
	PriceCents  int64
	Location    string
	ImageURL    *string
	CreatedAt   time.Time
}

func NewPropertyBuilder() *PropertyBuilder {
	return &PropertyBuilder{
		Title:       "Sunny two-bedroom apartment",
		Description: "Bright apartment close to the city center.",
		Category:    catalog.CategoryResidential.String(),
		Product:     "Apartment",
		PriceCents:  25_000_000,
		Location:    "Lisbon",
		CreatedAt:   time.Now(),
	}
}

func (p *PropertyBuilder) With(mutate func(*PropertyBuilder)) *PropertyBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *PropertyBuilder) BuildDomain() (*catalog.Property, error) {
	category, err := catalog.NewCategory(p.Category)
	if err != nil {
		return nil, err
	}
	return catalog.NewProperty(p.Title, p.Description, category, p.Product, p.PriceCents, p.Location, p.ImageURL)
}

func (p *PropertyBuilder) BuildAddRequestDTO() reqdto.AddPropertyRequest {
	return reqdto.AddPropertyRequest{
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Product:     p.Product,
		PriceCents:  p.PriceCents,
		Location:    p.Location,
		ImageURL:    p.ImageURL,
	}
}

func (p *PropertyBuilder) BuildView() *queries.PropertyView {
	return &queries.PropertyView{
		ID:          uuid.New(),
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Product:     p.Product,
		PriceCents:  p.PriceCents,
		Location:    p.Location,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
	}
}

// Fluent builder methods
func (p *PropertyBuilder) WithTitle(title string) *PropertyBuilder {
	p.Title = title
	return p
}

func (p *PropertyBuilder) WithCategory(category string) *PropertyBuilder {
	p.Category = category
	return p
}

func (p *PropertyBuilder) WithProduct(product string) *PropertyBuilder {
	p.Product = product
	return p
}

func (p *PropertyBuilder) WithPriceCents(price int64) *PropertyBuilder {
	p.PriceCents = price
	return p
}

func (p *PropertyBuilder) WithLocation(location string) *PropertyBuilder {
	p.Location = location
	return p
}
