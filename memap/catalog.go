package memap

import (
	"fmt"
	"strings"
)

// Entry describes one register of the MEM-AP register space.
type Entry struct {
	Name    string
	Address uint16
	Layout  []Field
	// Default is the value a register is built from before a write.
	Default Register
	Decode  func(raw uint32) (Register, error)
}

// Covered returns the bits modelled by the register's fields. Only these
// bits survive a decode/encode round trip.
func (e Entry) Covered() uint32 {
	return covered(e.Layout)
}

// Field looks up a field by name, ignoring case.
func (e Entry) Field(name string) (Field, bool) {
	for _, f := range e.Layout {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return Field{}, false
}

func decodeAs[T Register, P registerPtr[T]](raw uint32) (Register, error) {
	r, err := Decode[T, P](raw)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func entry[T Register, P registerPtr[T]](def T) Entry {
	return Entry{
		Name:    def.Name(),
		Address: def.Address(),
		Layout:  def.Layout(),
		Default: def,
		Decode:  decodeAs[T, P],
	}
}

// Ordered by address.
var catalog = []Entry{
	entry(NewCSW()),
	entry(TAR{}),
	entry(TAR2{}),
	entry(DRW{}),
	entry(BD0{}),
	entry(BD1{}),
	entry(BD2{}),
	entry(BD3{}),
	entry(MBT{}),
	entry(BASE2{}),
	entry(CFG{}),
	entry(BASE{}),
	entry(IDR{}),
}

// Catalog returns every MEM-AP register, ordered by address.
func Catalog() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a register by name, ignoring case.
func Lookup(name string) (Entry, bool) {
	for _, e := range catalog {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return Entry{}, false
}

// LookupAddress finds a register by its offset.
func LookupAddress(addr uint16) (Entry, bool) {
	for _, e := range catalog {
		if e.Address == addr {
			return e, true
		}
	}
	return Entry{}, false
}

// DecodeAt decodes a raw value read from the register at offset addr.
func DecodeAt(addr uint16, raw uint32) (Register, error) {
	e, ok := LookupAddress(addr)
	if !ok {
		return nil, fmt.Errorf("%w at offset 0x%03X", ErrUnknownRegister, addr)
	}
	return e.Decode(raw)
}
