package canon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Student Haven":             "student-haven",
		"  Academia   House ":       "academia-house",
		"32 Kasselvlei, Cape Town":  "32-kasselvlei-cape-town",
		"Allan's Accommodation":     "allans-accommodation",
		"24/7 Security":             "24-7-security",
		"":                          "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slug(in), in)
	}
}

func TestAnchor(t *testing.T) {
	assert.Equal(t, "property-1-student-haven", Anchor(1, "Student Haven"))
	assert.Equal(t, "property-7", Anchor(7, "!!!"))
	assert.NotEqual(t, Anchor(1, "Twin Flats"), Anchor(2, "Twin Flats"))
}
