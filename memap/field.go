package memap

import (
	"fmt"
	"strings"
)

// Field is a named, fixed-position bit range within a register's raw value.
// Hi and Lo are inclusive bit positions counted from the LSB.
type Field struct {
	Name   string
	Hi, Lo uint
	// Values lists symbolic names by code. Only set for enumeration fields.
	Values []string
}

// Width of the field in bits.
func (f Field) Width() uint {
	return f.Hi - f.Lo + 1
}

// Mask returns the field's bits in position.
func (f Field) Mask() uint32 {
	if f.Width() >= 32 {
		return 0xFFFFFFFF
	}
	return ((uint32(1) << f.Width()) - 1) << f.Lo
}

// Extract shifts the field down to bit 0 and masks it to its width.
func (f Field) Extract(raw uint32) uint32 {
	return (raw & f.Mask()) >> f.Lo
}

// Flag reports whether a single-bit field is set.
func (f Field) Flag(raw uint32) bool {
	return f.Extract(raw) != 0
}

// Place shifts v into position. Bits of v beyond the field width are not
// discarded and merge into neighbouring fields.
func (f Field) Place(v uint32) uint32 {
	return v << f.Lo
}

// Insert replaces the field's bits in raw with v, truncated to the field width.
func (f Field) Insert(raw, v uint32) uint32 {
	return (raw &^ f.Mask()) | (f.Place(v) & f.Mask())
}

// Enum reports whether the field holds an enumeration.
func (f Field) Enum() bool {
	return f.Values != nil
}

// Format renders a field code, by name for enumerations.
func (f Field) Format(code uint32) string {
	if f.Enum() {
		if code < uint32(len(f.Values)) {
			return f.Values[code]
		}
		return fmt.Sprintf("invalid(%d)", code)
	}
	if f.Width() == 1 {
		if code != 0 {
			return "1"
		}
		return "0"
	}
	return fmt.Sprintf("0x%X", code)
}

// Code looks up an enumeration name, ignoring case.
func (f Field) Code(name string) (uint32, bool) {
	for i, v := range f.Values {
		if strings.EqualFold(v, name) {
			return uint32(i), true
		}
	}
	return 0, false
}

func bit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// covered returns the union of all field masks in a layout.
func covered(layout []Field) uint32 {
	var m uint32
	for _, f := range layout {
		m |= f.Mask()
	}
	return m
}
