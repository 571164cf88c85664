package utils

import (
	"fmt"
	"math"
	"strconv"
)

// DropsPerXRP is the number of drops in one XRP
const DropsPerXRP = 1000000

// DropsToXRP converts drops to XRP (1 XRP = 1,000,000 drops)
func DropsToXRP(drops uint64) float64 {
	return float64(drops) / DropsPerXRP
}

// XRPToDrops converts XRP to drops, rounding to the nearest drop
func XRPToDrops(xrp float64) (uint64, error) {
	if err := checkXRP(xrp); err != nil {
		return 0, err
	}
	drops := math.Round(xrp * DropsPerXRP)
	if drops >= math.MaxUint64 {
		return 0, fmt.Errorf("XRP amount %s overflows drops", FormatXRP(xrp))
	}
	return uint64(drops), nil
}

// ParseDrops parses a drops string to uint64
func ParseDrops(drops string) (uint64, error) {
	return strconv.ParseUint(drops, 10, 64)
}

// FormatXRP renders an XRP amount as the decimal string expected by XRP-API,
// using the shortest representation (10 -> "10", 1.5 -> "1.5")
func FormatXRP(xrp float64) string {
	return strconv.FormatFloat(xrp, 'f', -1, 64)
}

// ParseXRP parses a decimal XRP amount and rejects negative values
func ParseXRP(value string) (float64, error) {
	xrp, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid XRP amount %q: %w", value, err)
	}
	if err := checkXRP(xrp); err != nil {
		return 0, fmt.Errorf("invalid XRP amount %q: %w", value, err)
	}
	return xrp, nil
}

func checkXRP(xrp float64) error {
	switch {
	case math.IsNaN(xrp) || math.IsInf(xrp, 0):
		return fmt.Errorf("must be a finite number")
	case xrp < 0:
		return fmt.Errorf("must not be negative")
	}
	return nil
}
