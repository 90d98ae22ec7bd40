package memap

import "fmt"

// DataSize is the unit of data moved by one DRW access, configured in CSW.SIZE.
// All MEM-APs support Size32; the other sizes are optional.
type DataSize uint8

const (
	Size8   DataSize = 0b000
	Size16  DataSize = 0b001
	Size32  DataSize = 0b010
	Size64  DataSize = 0b011
	Size128 DataSize = 0b100
	Size256 DataSize = 0b101
)

// DefaultDataSize is the transfer size of a freshly constructed CSW.
var DefaultDataSize = Size32

var dataSizeNames = []string{"U8", "U16", "U32", "U64", "U128", "U256"}

// DataSizeFromCode decodes the 3-bit SIZE field. Codes 0b110 and 0b111 are
// reserved and rejected.
func DataSizeFromCode(code uint8) (DataSize, bool) {
	if code > uint8(Size256) {
		return 0, false
	}
	return DataSize(code), true
}

// DataSizeForBytes returns the transfer size moving n bytes per access.
func DataSizeForBytes(n int) (DataSize, bool) {
	for d := Size8; d <= Size256; d++ {
		if d.Bytes() == n {
			return d, true
		}
	}
	return 0, false
}

// Code is the field encoding of the size.
func (d DataSize) Code() uint8 { return uint8(d) }

// Valid reports whether d is one of the defined sizes.
func (d DataSize) Valid() bool { return d <= Size256 }

// Bytes per transfer. Returns 0 for an invalid size.
func (d DataSize) Bytes() int {
	if !d.Valid() {
		return 0
	}
	return 1 << d
}

func (d DataSize) String() string {
	if !d.Valid() {
		return fmt.Sprintf("DataSize(%d)", uint8(d))
	}
	return dataSizeNames[d]
}

// AddressIncrement is the TAR auto-increment performed after each DRW access,
// configured in CSW.AddrInc.
type AddressIncrement uint8

const (
	// IncOff leaves TAR unchanged.
	IncOff AddressIncrement = 0b00
	// IncSingle advances TAR by the access size.
	IncSingle AddressIncrement = 0b01
	// IncPacked enables packed sub-word transfers. Only available when
	// the MEM-AP supports sub-word access.
	IncPacked AddressIncrement = 0b10
)

// DefaultAddressIncrement is the increment mode of a freshly constructed CSW.
var DefaultAddressIncrement = IncSingle

var addressIncrementNames = []string{"Off", "Single", "Packed"}

// AddressIncrementFromCode decodes the 2-bit AddrInc field. Code 0b11 is
// reserved and rejected.
func AddressIncrementFromCode(code uint8) (AddressIncrement, bool) {
	if code > uint8(IncPacked) {
		return 0, false
	}
	return AddressIncrement(code), true
}

// Code is the field encoding of the increment mode.
func (a AddressIncrement) Code() uint8 { return uint8(a) }

// Valid reports whether a is one of the defined modes.
func (a AddressIncrement) Valid() bool { return a <= IncPacked }

func (a AddressIncrement) String() string {
	if !a.Valid() {
		return fmt.Sprintf("AddressIncrement(%d)", uint8(a))
	}
	return addressIncrementNames[a]
}

// BaseAddrFormat is the format of the BASE register.
type BaseAddrFormat uint8

const (
	// FormatLegacy is used by very old debug implementations.
	FormatLegacy BaseAddrFormat = 0
	// FormatADIv5 is used by all current implementations.
	FormatADIv5 BaseAddrFormat = 1
)

// DefaultBaseAddrFormat is the format of a zero BASE value.
var DefaultBaseAddrFormat = FormatLegacy

var baseAddrFormatNames = []string{"Legacy", "ADIv5"}

// BaseAddrFormatFromCode decodes the 1-bit Format field. Both codes are valid;
// only values wider than one bit are rejected.
func BaseAddrFormatFromCode(code uint8) (BaseAddrFormat, bool) {
	if code > 1 {
		return 0, false
	}
	return BaseAddrFormat(code), true
}

// Code is the field encoding of the format.
func (f BaseAddrFormat) Code() uint8 { return uint8(f) }

// Valid reports whether f is one of the defined formats.
func (f BaseAddrFormat) Valid() bool { return f <= FormatADIv5 }

func (f BaseAddrFormat) String() string {
	if !f.Valid() {
		return fmt.Sprintf("BaseAddrFormat(%d)", uint8(f))
	}
	return baseAddrFormatNames[f]
}
