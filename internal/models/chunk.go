package models

import (
	"fmt"
	"strconv"
)

// ChunkOption is the policy for one optional PNG chunk category.
type ChunkOption uint8

const (
	ChunkRemove ChunkOption = iota
	ChunkKeep
	ChunkForce
)

// Valid reports whether o is one of the three known options.
func (o ChunkOption) Valid() bool {
	return o <= ChunkForce
}

// Code returns the canonical store code ("0", "1" or "2").
func (o ChunkOption) Code() string {
	return strconv.Itoa(int(o))
}

func (o ChunkOption) String() string {
	switch o {
	case ChunkRemove:
		return "Remove"
	case ChunkKeep:
		return "Keep"
	case ChunkForce:
		return "Force"
	default:
		return fmt.Sprintf("ChunkOption(%d)", uint8(o))
	}
}

// RGB is a forced background color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as six lowercase hex digits, e.g. "a1b2c3".
func (c RGB) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}
