package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// stringNumber accepts string or number JSON and stores as string
type stringNumber string

func (s *stringNumber) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = stringNumber(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*s = stringNumber(num.String())
	return nil
}

// DecodeFeed maps a remote catalog payload to properties. Feeds disagree on
// whether ids and prices are numbers or strings, so both are accepted. The
// records are returned unvalidated; pass them to New.
func DecodeFeed(raw []byte) ([]Property, error) {
	type fTag struct {
		Label   string `json:"label"`
		Variant string `json:"variant"`
	}
	type fAmenity struct {
		Icon  string `json:"icon"`
		Label string `json:"label"`
	}
	type fProperty struct {
		ID          stringNumber `json:"id"`
		Name        string       `json:"name"`
		Location    string       `json:"location"`
		Address     string       `json:"address"`
		Price       stringNumber `json:"price"`
		Image       string       `json:"image"`
		Images      []string     `json:"images"`
		Tags        []fTag       `json:"tags"`
		Amenities   []fAmenity   `json:"amenities"`
		Description string       `json:"description"`
	}
	var root struct {
		Properties []fProperty `json:"properties"`
	}
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, err
	}

	out := make([]Property, 0, len(root.Properties))
	for i, p := range root.Properties {
		id, err := strconv.Atoi(strings.TrimSpace(string(p.ID)))
		if err != nil {
			return nil, fmt.Errorf("feed property %d: id %q: %w", i, p.ID, err)
		}
		image := p.Image
		if image == "" && len(p.Images) > 0 {
			image = p.Images[0]
		}
		prop := Property{
			ID:          id,
			Name:        p.Name,
			Location:    nonEmpty(p.Location, p.Address),
			Price:       string(p.Price),
			Image:       image,
			Description: p.Description,
		}
		for _, t := range p.Tags {
			prop.Tags = append(prop.Tags, Tag{Label: t.Label, Variant: Variant(strings.ToLower(t.Variant))})
		}
		for _, a := range p.Amenities {
			prop.Amenities = append(prop.Amenities, Amenity{Icon: Icon(strings.ToLower(a.Icon)), Label: a.Label})
		}
		out = append(out, prop)
	}
	return out, nil
}

func nonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
