// Package memap provides typed access to the registers of an ARM CoreSight
// Memory Access Port (MEM-AP) as defined by ADIv5 and ADIv6.
//
// Every register is a plain value type that can be decoded from and encoded
// to the raw 32-bit value transferred over the debug bus. The bus address of a
// register is the access port's base address plus the register's Address().
package memap

import (
	"errors"
	"fmt"
	"strings"
)

// Register offsets relative to the access port's base address.
const (
	AddrCSW   uint16 = 0xD00
	AddrTAR   uint16 = 0xD04
	AddrTAR2  uint16 = 0xD08
	AddrDRW   uint16 = 0xD0C
	AddrBD0   uint16 = 0xD10
	AddrBD1   uint16 = 0xD14
	AddrBD2   uint16 = 0xD18
	AddrBD3   uint16 = 0xD1C
	AddrMBT   uint16 = 0xD20
	AddrBASE2 uint16 = 0xDF0
	AddrCFG   uint16 = 0xDF4
	AddrBASE  uint16 = 0xDF8
	AddrIDR   uint16 = 0xDFC
)

// Register is implemented by every typed access port register.
type Register interface {
	// Address is the register's byte offset from the access port base.
	Address() uint16
	// Name is the architectural register name, for diagnostics.
	Name() string
	// Raw encodes the register into its 32-bit bus value.
	Raw() uint32
	// Layout lists the fields the register models.
	Layout() []Field
}

type registerPtr[T any] interface {
	*T
	Register
	decode(raw uint32) error
}

// Decode converts a raw bus value into the register type T.
//
//	csw, err := memap.Decode[memap.CSW](raw)
func Decode[T Register, P registerPtr[T]](raw uint32) (T, error) {
	var r T
	if err := P(&r).decode(raw); err != nil {
		var zero T
		return zero, err
	}
	return r, nil
}

// ErrUnknownRegister is returned when a name or offset matches no register.
var ErrUnknownRegister = errors.New("unknown register")

// ParseError reports a raw value that cannot be decoded into a register.
type ParseError struct {
	Register string
	// Field is the enumeration field holding the unrecognised code.
	Field string
	Value uint32
}

func (e *ParseError) Error() string {
	s := fmt.Sprintf("failed to parse register %s from 0x%08X", e.Register, e.Value)
	if e.Field != "" {
		s += " (field " + e.Field + ")"
	}
	return s
}

func parseError(r Register, f Field, raw uint32) error {
	return &ParseError{Register: r.Name(), Field: f.Name, Value: raw}
}

// Describe renders a register with its fields, e.g.
//
//	CFG@0xDF4 = 0x00000002 {LD=0 LA=1 BE=0}
func Describe(r Register) string {
	raw := r.Raw()
	var b strings.Builder
	fmt.Fprintf(&b, "%s@0x%03X = 0x%08X {", r.Name(), r.Address(), raw)
	for i, f := range r.Layout() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(f.Name)
		b.WriteByte('=')
		b.WriteString(f.Format(f.Extract(raw)))
	}
	b.WriteByte('}')
	return b.String()
}
