// Package units converts physical pixel densities.
package units

import "math"

// PpmFromPpi converts pixels per inch to pixels per meter.
//
// Graphics software truncates in this direction: 254 → 10000, 72 → 2834.
// Results beyond the uint32 range saturate at math.MaxUint32.
func PpmFromPpi(ppi uint32) uint32 {
	ppm := uint64(ppi) * 10000 / 254
	if ppm > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(ppm)
}

// PpiFromPpm converts pixels per meter to pixels per inch, rounding to nearest.
func PpiFromPpm(ppm uint32) uint32 {
	return uint32((uint64(ppm)*254 + 5000) / 10000)
}
