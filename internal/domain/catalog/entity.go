package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle    = errors.New("title is required")
	ErrNegativePrice = errors.New("price cannot be negative")
	ErrEmptyLocation = errors.New("location is required")
)

// Property is a catalog entry. Read-only from the client's perspective;
// only admins create them.
type Property struct {
	id          uuid.UUID
	title       string
	description string
	category    Category
	product     string
	priceCents  int64
	location    string
	imageURL    *string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProperty(
	title, description string,
	category Category,
	product string,
	priceCents int64,
	location string,
	imageURL *string,
) (*Property, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if !category.HasProduct(product) {
		return nil, ErrUnknownProduct
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrEmptyLocation
	}

	return &Property{
		id:          uuid.New(),
		title:       title,
		description: strings.TrimSpace(description),
		category:    category,
		product:     product,
		priceCents:  priceCents,
		location:    location,
		imageURL:    imageURL,
	}, nil
}

func ReconstructProperty(
	id uuid.UUID,
	title, description string,
	category Category,
	product string,
	priceCents int64,
	location string,
	imageURL *string,
	createdAt, updatedAt time.Time,
) *Property {
	return &Property{
		id:          id,
		title:       title,
		description: description,
		category:    category,
		product:     product,
		priceCents:  priceCents,
		location:    location,
		imageURL:    imageURL,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Property) ID() uuid.UUID        { return p.id }
func (p *Property) Title() string        { return p.title }
func (p *Property) Description() string  { return p.description }
func (p *Property) Category() Category   { return p.category }
func (p *Property) Product() string      { return p.product }
func (p *Property) PriceCents() int64    { return p.priceCents }
func (p *Property) Location() string     { return p.location }
func (p *Property) ImageURL() *string    { return p.imageURL }
func (p *Property) CreatedAt() time.Time { return p.createdAt }
func (p *Property) UpdatedAt() time.Time { return p.updatedAt }
