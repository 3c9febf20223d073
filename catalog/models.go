package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidProperty = errors.New("invalid property")
	ErrDuplicateID     = errors.New("duplicate property id")
	ErrNotFound        = errors.New("property not found")
)

// Variant is the badge style of a Tag.
type Variant string

const (
	VariantDefault   Variant = "default"
	VariantSecondary Variant = "secondary"
)

func (v Variant) Valid() bool {
	return v == VariantDefault || v == VariantSecondary
}

// Icon names a decorative glyph. The empty Icon renders nothing.
type Icon string

const (
	IconWifi        Icon = "wifi"
	IconShield      Icon = "shield"
	IconCoffee      Icon = "coffee"
	IconUsers       Icon = "users"
	IconClock       Icon = "clock"
	IconMapPin      Icon = "map-pin"
	IconChevronDown Icon = "chevron-down"
)

type Tag struct {
	Label   string  `json:"label" yaml:"label"`
	Variant Variant `json:"variant" yaml:"variant"`
}

type Amenity struct {
	Icon  Icon   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Label string `json:"label" yaml:"label"`
}

type Property struct {
	ID          int       `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Location    string    `json:"location" yaml:"location"`
	Price       string    `json:"price" yaml:"price"` // monthly amount, display only
	Image       string    `json:"image" yaml:"image"`
	Tags        []Tag     `json:"tags" yaml:"tags"`
	Amenities   []Amenity `json:"amenities" yaml:"amenities"`
	Description string    `json:"description" yaml:"description"`
}

// normalize returns a deep copy of p with trimmed text, non-nil slices and
// defaulted tag variants, or an error wrapping ErrInvalidProperty.
func normalize(p Property) (Property, error) {
	out := Property{
		ID:          p.ID,
		Name:        strings.TrimSpace(p.Name),
		Location:    strings.TrimSpace(p.Location),
		Price:       strings.TrimSpace(p.Price),
		Image:       strings.TrimSpace(p.Image),
		Description: strings.TrimSpace(p.Description),
		Tags:        make([]Tag, 0, len(p.Tags)),
		Amenities:   make([]Amenity, 0, len(p.Amenities)),
	}
	if out.ID <= 0 {
		return Property{}, fmt.Errorf("%w: id must be positive, got %d", ErrInvalidProperty, p.ID)
	}
	required := []struct{ field, value string }{
		{"name", out.Name},
		{"location", out.Location},
		{"price", out.Price},
		{"image", out.Image},
		{"description", out.Description},
	}
	for _, r := range required {
		if r.value == "" {
			return Property{}, fmt.Errorf("%w: property %d: %s required", ErrInvalidProperty, p.ID, r.field)
		}
	}
	for i, t := range p.Tags {
		t.Label = strings.TrimSpace(t.Label)
		if t.Label == "" {
			return Property{}, fmt.Errorf("%w: property %d: tag %d label required", ErrInvalidProperty, p.ID, i)
		}
		if t.Variant == "" {
			t.Variant = VariantDefault
		}
		if !t.Variant.Valid() {
			return Property{}, fmt.Errorf("%w: property %d: tag %q has unknown variant %q", ErrInvalidProperty, p.ID, t.Label, t.Variant)
		}
		out.Tags = append(out.Tags, t)
	}
	for i, a := range p.Amenities {
		a.Label = strings.TrimSpace(a.Label)
		if a.Label == "" {
			return Property{}, fmt.Errorf("%w: property %d: amenity %d label required", ErrInvalidProperty, p.ID, i)
		}
		out.Amenities = append(out.Amenities, a)
	}
	return out, nil
}

func (p Property) clone() Property {
	out := p
	out.Tags = append([]Tag(nil), p.Tags...)
	out.Amenities = append([]Amenity(nil), p.Amenities...)
	return out
}
