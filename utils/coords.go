package utils

import (
	"strconv"
	"strings"
)

// ParseCoordinates derives latitude and longitude from a free-text
// "lat,long" pair. Anything that is not a comma-separated pair of
// numbers yields absent values for both.
func ParseCoordinates(coords string) (lat, long *float64) {
	parts := strings.Split(coords, ",")
	if len(parts) != 2 {
		return nil, nil
	}
	la, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, nil
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, nil
	}
	return &la, &lo
}
