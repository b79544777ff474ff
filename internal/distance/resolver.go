package distance

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

// UnknownCityError is returned when a city is not in the coordinate table.
type UnknownCityError struct {
	City string
}

func (e *UnknownCityError) Error() string {
	return fmt.Sprintf("unknown city %q", e.City)
}

// Resolver looks up city-pair distances, memoized through a Cache.
type Resolver struct {
	cache Cache
}

func NewResolver(cache Cache) *Resolver {
	return &Resolver{cache: cache}
}

// CityDistance returns the great-circle distance in km between two cities
// from the coordinate table. The cache key is order-independent since the
// distance is symmetric.
func (r *Resolver) CityDistance(origin, destination string) (float64, error) {
	originCoords, ok := CityCoordinates[origin]
	if !ok {
		return 0, &UnknownCityError{City: origin}
	}
	destCoords, ok := CityCoordinates[destination]
	if !ok {
		return 0, &UnknownCityError{City: destination}
	}

	key := cacheKey(origin, destination)
	if cached, ok := r.cache.Get(key); ok {
		if km, err := strconv.ParseFloat(cached, 64); err == nil {
			return km, nil
		}
	}

	km := Haversine(originCoords.Lat, originCoords.Lon, destCoords.Lat, destCoords.Lon)

	if err := r.cache.Set(key, strconv.FormatFloat(km, 'f', -1, 64)); err != nil {
		log.Printf("warning: failed to cache distance %s: %v", key, err)
	}

	return km, nil
}

func cacheKey(origin, destination string) string {
	a := strings.ToLower(origin)
	b := strings.ToLower(destination)
	if a > b {
		a, b = b, a
	}
	return "distance:" + a + ":" + b
}
