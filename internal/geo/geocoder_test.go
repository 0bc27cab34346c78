package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocate_Deterministic(t *testing.T) {
	g := NewGeocoder(7)

	first := g.Locate("Market")
	second := g.Locate("Market")
	assert.Equal(t, first, second)

	// новый экземпляр с тем же seed дает ту же точку
	assert.Equal(t, first, NewGeocoder(7).Locate("Market"))
}

func TestLocate_DifferentLocations(t *testing.T) {
	g := NewGeocoder(0)
	assert.NotEqual(t, g.Locate("Market"), g.Locate("Highway"))
}

func TestLocate_SeedChangesPoint(t *testing.T) {
	assert.NotEqual(t, NewGeocoder(1).Locate("Colony"), NewGeocoder(2).Locate("Colony"))
}

func TestLocate_WithinBounds(t *testing.T) {
	g := NewGeocoder(42)
	minPt, maxPt := g.Bounds()

	for _, loc := range []string{"", "Market", "Highway", "Colony", "Hospital", "(no address)", "Сектор 7"} {
		p := g.Locate(loc)
		assert.GreaterOrEqual(t, p.Lat, minPt.Lat, loc)
		assert.LessOrEqual(t, p.Lat, maxPt.Lat, loc)
		assert.GreaterOrEqual(t, p.Lon, minPt.Lon, loc)
		assert.LessOrEqual(t, p.Lon, maxPt.Lon, loc)
	}
}

func TestReverse(t *testing.T) {
	assert.Equal(t, "tekraM", reverse("Market"))
	assert.Equal(t, "", reverse(""))
}
