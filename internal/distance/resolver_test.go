package distance

import (
	"errors"
	"math"
	"testing"
)

func TestHaversineStockholmBerlin(t *testing.T) {
	sto := CityCoordinates["Stockholm"]
	ber := CityCoordinates["Berlin"]
	km := Haversine(sto.Lat, sto.Lon, ber.Lat, ber.Lon)
	// Stockholm-Berlin is roughly 810 km great circle.
	if km < 780 || km > 840 {
		t.Errorf("expected ~810 km, got %.0f", km)
	}
	if km != math.Round(km) {
		t.Errorf("expected whole km, got %f", km)
	}
}

func TestHaversineZeroForSamePoint(t *testing.T) {
	p := CityCoordinates["Paris"]
	if km := Haversine(p.Lat, p.Lon, p.Lat, p.Lon); km != 0 {
		t.Errorf("expected 0 km, got %.0f", km)
	}
}

func TestCityDistanceIsSymmetric(t *testing.T) {
	r := NewResolver(NewMemoryCache())
	ab, err := r.CityDistance("Madrid", "Warsaw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ba, err := r.CityDistance("Warsaw", "Madrid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ab != ba {
		t.Errorf("expected symmetric distance, got %.0f and %.0f", ab, ba)
	}
}

func TestCityDistanceUnknownCity(t *testing.T) {
	r := NewResolver(NewMemoryCache())
	_, err := r.CityDistance("Atlantis", "Berlin")
	if err == nil {
		t.Fatal("expected error for unknown city")
	}
	var unknown *UnknownCityError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownCityError, got %T", err)
	}
}

func TestCityDistanceUsesCache(t *testing.T) {
	cache := NewMemoryCache()
	r := NewResolver(cache)

	first, err := r.CityDistance("Rome", "Vienna")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cache.Get(cacheKey("Rome", "Vienna")); !ok {
		t.Fatal("expected distance to be cached after first lookup")
	}

	// Poison the cache to prove the second lookup reads it.
	if err := cache.Set(cacheKey("Rome", "Vienna"), "123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := r.CityDistance("Vienna", "Rome")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second != 123 {
		t.Errorf("expected cached value 123, got %.0f (first was %.0f)", second, first)
	}
}
