package view

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourorg/housing-site/catalog"
	"github.com/yourorg/housing-site/internal/contact"
	"github.com/yourorg/housing-site/internal/page"
)

func renderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	require.NoError(t, err)
	return r
}

func TestCard(t *testing.T) {
	p, _ := catalog.Default().Lookup(1)
	var buf bytes.Buffer
	require.NoError(t, renderer(t).Card(&buf, p))
	out := buf.String()

	assert.Contains(t, out, `id="property-1-student-haven"`)
	assert.Contains(t, out, "Student Haven")
	assert.Contains(t, out, "32 Kasselvlei, Cape Town")
	assert.Contains(t, out, `<span class="badge badge-default">NSFAS Accredited</span>`)
	assert.Contains(t, out, `<span class="badge badge-secondary">Available</span>`)
	assert.Contains(t, out, "R4,000/month")
	assert.Contains(t, out, `action="/properties/1/select"`)
	assert.Contains(t, out, "View Details")
}

func TestCardAnchorsUniqueForSharedNames(t *testing.T) {
	twin := func(id int) catalog.Property {
		return catalog.Property{
			ID:          id,
			Name:        "Twin Flats",
			Location:    "Voortrekker Road, Bellville",
			Price:       "3,000",
			Image:       "/api/placeholder/600/400",
			Description: "Two blocks, one name.",
		}
	}
	cat, err := catalog.New([]catalog.Property{twin(1), twin(2)})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderer(t).Page(&buf, PageData{Properties: cat.All()}))
	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, `id="property-1-twin-flats"`))
	assert.Equal(t, 1, strings.Count(out, `id="property-2-twin-flats"`))
}

func TestCardLimitsAmenities(t *testing.T) {
	p, _ := catalog.Default().Lookup(1)
	p.Amenities = append(p.Amenities, catalog.Amenity{Icon: catalog.IconClock, Label: "Laundry"})
	var buf bytes.Buffer
	require.NoError(t, renderer(t).Card(&buf, p))
	assert.Contains(t, buf.String(), "Common Room")
	assert.NotContains(t, buf.String(), "Laundry")
}

func TestCardEscapesText(t *testing.T) {
	p := catalog.Property{ID: 5, Name: "<b>Bold</b>", Location: "x", Price: "1", Image: "/i", Description: "d"}
	var buf bytes.Buffer
	require.NoError(t, renderer(t).Card(&buf, p))
	assert.NotContains(t, buf.String(), "<b>Bold</b>")
}

func TestDialogNilRendersNothing(t *testing.T) {
	r := renderer(t)
	for _, open := range []bool{true, false} {
		var buf bytes.Buffer
		require.NoError(t, r.Dialog(&buf, nil, open))
		assert.Empty(t, buf.String())
	}
}

func TestDialogOpen(t *testing.T) {
	p, _ := catalog.Default().Lookup(2)
	var buf bytes.Buffer
	require.NoError(t, renderer(t).Dialog(&buf, &p, true))
	out := buf.String()

	assert.Contains(t, out, `<dialog id="property-dialog" class="dialog" open`)
	assert.Contains(t, out, `<h2 id="property-dialog-title">Academia House</h2>`)
	assert.Contains(t, out, `<p class="dialog-description">Fourie Street, Cape Town</p>`)
	for _, a := range p.Amenities {
		assert.Contains(t, out, a.Label)
	}
	assert.Contains(t, out, p.Description)
	assert.Contains(t, out, `action="/dialog/close"`)
	assert.Contains(t, out, "Contact Agent")
}

func TestDialogMissingIconRendersLabelOnly(t *testing.T) {
	p := catalog.Property{ID: 5, Name: "n", Location: "l", Price: "1", Image: "/i", Description: "d",
		Amenities: []catalog.Amenity{{Label: "Garden"}}}
	var buf bytes.Buffer
	require.NoError(t, renderer(t).Dialog(&buf, &p, true))
	assert.Contains(t, buf.String(), "<li><span>Garden</span></li>")
}

func TestContact(t *testing.T) {
	r := renderer(t)
	var buf bytes.Buffer
	require.NoError(t, r.Contact(&buf, ContactData{}))
	assert.Contains(t, buf.String(), `type="email" name="email"`)
	assert.Equal(t, 3, strings.Count(buf.String(), "required"))
	assert.NotContains(t, buf.String(), "Thank you for your message!")

	buf.Reset()
	require.NoError(t, r.Contact(&buf, ContactData{Submitted: true}))
	assert.Contains(t, buf.String(), "Thank you for your message! We'll get back to you soon.")
	assert.Contains(t, buf.String(), "Send Message", "form stays available while the notice is shown")

	buf.Reset()
	require.NoError(t, r.Contact(&buf, ContactData{
		Values: contact.Submission{Name: "Lindiwe"},
		Errors: contact.FieldErrors{"email": "Please fill out this field."},
	}))
	assert.Contains(t, buf.String(), `value="Lindiwe"`)
	assert.Contains(t, buf.String(), `<p class="field-error">Please fill out this field.</p>`)
}

func TestPage(t *testing.T) {
	cat := catalog.Default()
	var buf bytes.Buffer
	require.NoError(t, renderer(t).Page(&buf, PageData{
		Site:       Site{Title: "Allan's Accommodation", Tagline: "Premium Student Housing"},
		Properties: cat.All(),
	}))
	out := buf.String()
	assert.Contains(t, out, `<section id="properties">`)
	assert.Contains(t, out, `href="#properties"`)
	assert.Contains(t, out, "Student Haven")
	assert.Contains(t, out, "Academia House")
	assert.NotContains(t, out, "<dialog")

	ctl := page.New(cat)
	require.NoError(t, ctl.SelectID(1))
	buf.Reset()
	require.NoError(t, renderer(t).Page(&buf, PageData{Properties: cat.All(), Dialog: ctl.Dialog()}))
	assert.Contains(t, buf.String(), `<h2 id="property-dialog-title">Student Haven</h2>`)
}

func TestAssets(t *testing.T) {
	rec := httptest.NewRecorder()
	Assets().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/site.css", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".card")
}
