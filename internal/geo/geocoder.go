// Package geo ставит приблизительную метку на карту по текстовому адресу.
// Это не геокодирование: точка детерминированно выводится из хэша строки.
package geo

import (
	"encoding/binary"
	"math/rand"

	"github.com/cespare/xxhash/v2"
)

const (
	DefaultBaseLat = 28.61
	DefaultBaseLon = 77.23

	// offsetBuckets и offsetScale дают смещение базы в пределах [0, 0.0495]
	offsetBuckets = 100
	offsetScale   = 2000.0
	// jitter - полуширина случайного разброса вокруг базовой точки
	jitter = 0.02
)

// Point - координаты метки
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Geocoder вычисляет метку для адреса. Одинаковые seed и адрес всегда дают одну и ту же точку.
type Geocoder struct {
	seed    uint64
	baseLat float64
	baseLon float64
}

func NewGeocoder(seed uint64) *Geocoder {
	return &Geocoder{
		seed:    seed,
		baseLat: DefaultBaseLat,
		baseLon: DefaultBaseLon,
	}
}

// Locate возвращает координаты для адреса
func (g *Geocoder) Locate(location string) Point {
	h := g.hash(location)
	hr := g.hash(reverse(location))

	baseLat := g.baseLat + float64(h%offsetBuckets)/offsetScale
	baseLon := g.baseLon + float64(hr%offsetBuckets)/offsetScale

	rng := rand.New(rand.NewSource(int64(h ^ hr))) //nolint:gosec // разброс метки, не криптография
	return Point{
		Lat: baseLat + uniform(rng, -jitter, jitter),
		Lon: baseLon + uniform(rng, -jitter, jitter),
	}
}

// Bounds возвращает прямоугольник, в который гарантированно попадают все метки
func (g *Geocoder) Bounds() (minPt, maxPt Point) {
	maxOffset := float64(offsetBuckets-1) / offsetScale
	minPt = Point{Lat: g.baseLat - jitter, Lon: g.baseLon - jitter}
	maxPt = Point{Lat: g.baseLat + maxOffset + jitter, Lon: g.baseLon + maxOffset + jitter}
	return minPt, maxPt
}

func (g *Geocoder) hash(s string) uint64 {
	var seed [8]byte
	binary.LittleEndian.PutUint64(seed[:], g.seed)

	d := xxhash.New()
	_, _ = d.Write(seed[:])
	_, _ = d.WriteString(s)
	return d.Sum64()
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
