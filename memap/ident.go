package memap

// Identification and configuration registers at the top of the AP register
// space.

// BASE2 holds the upper word of the debug component base address when the
// large address extension is implemented.
type BASE2 struct {
	BaseAddr uint32
}

var base2Layout = []Field{{Name: "BASEADDR", Hi: 31, Lo: 0}}

func (BASE2) Address() uint16            { return AddrBASE2 }
func (BASE2) Name() string               { return "BASE2" }
func (BASE2) Layout() []Field            { return base2Layout }
func (r BASE2) Raw() uint32              { return r.BaseAddr }
func (r BASE2) String() string           { return Describe(r) }
func (r *BASE2) decode(raw uint32) error { r.BaseAddr = raw; return nil }

// CFG is the Configuration register, listing the extensions the MEM-AP
// implements.
type CFG struct {
	// LD is set when the large data extension (accesses wider than 32
	// bits) is implemented.
	LD bool
	// LA is set when the large address extension (64-bit addressing) is
	// implemented.
	LA bool
	// BE is set for big-endian memory systems. Deprecated since ADIv5.2 and
	// always zero on current parts.
	BE bool
}

var (
	cfgLD = Field{Name: "LD", Hi: 2, Lo: 2}
	cfgLA = Field{Name: "LA", Hi: 1, Lo: 1}
	cfgBE = Field{Name: "BE", Hi: 0, Lo: 0}

	cfgLayout = []Field{cfgLD, cfgLA, cfgBE}
)

func (CFG) Address() uint16  { return AddrCFG }
func (CFG) Name() string     { return "CFG" }
func (CFG) Layout() []Field  { return cfgLayout }
func (r CFG) String() string { return Describe(r) }

func (r CFG) Raw() uint32 {
	return cfgLD.Place(bit(r.LD)) | cfgLA.Place(bit(r.LA)) | cfgBE.Place(bit(r.BE))
}

func (r *CFG) decode(raw uint32) error {
	*r = CFG{LD: cfgLD.Flag(raw), LA: cfgLA.Flag(raw), BE: cfgBE.Flag(raw)}
	return nil
}

// BASE holds the base address of the debug component (ROM table) behind
// the access port.
type BASE struct {
	// BaseAddr is bits [31:12] of the component address, already shifted
	// down by 12.
	BaseAddr uint32
	Format   BaseAddrFormat
	// Present is set when a debug component is attached. Scanning access
	// ports stops at the first one without it.
	Present bool
}

var (
	baseBaseAddr = Field{Name: "BASEADDR", Hi: 31, Lo: 12}
	baseFormat   = Field{Name: "FORMAT", Hi: 1, Lo: 1, Values: baseAddrFormatNames}
	basePresent  = Field{Name: "P", Hi: 0, Lo: 0}

	baseLayout = []Field{baseBaseAddr, baseFormat, basePresent}
)

func (BASE) Address() uint16  { return AddrBASE }
func (BASE) Name() string     { return "BASE" }
func (BASE) Layout() []Field  { return baseLayout }
func (r BASE) String() string { return Describe(r) }

// Raw encodes the register. Bits [11:2] are reserved and written as zero.
func (r BASE) Raw() uint32 {
	return baseBaseAddr.Place(r.BaseAddr) |
		baseFormat.Place(uint32(r.Format)) |
		basePresent.Place(bit(r.Present))
}

func (r *BASE) decode(raw uint32) error {
	// Both codes of the single-bit format field are defined.
	*r = BASE{
		BaseAddr: baseBaseAddr.Extract(raw),
		Format:   BaseAddrFormat(baseFormat.Extract(raw)),
		Present:  basePresent.Flag(raw),
	}
	return nil
}

// ComponentBase returns the 32-bit component address held in BASE.
func (r BASE) ComponentBase() uint32 {
	return r.BaseAddr << 12
}

// ComponentBase64 combines BASE and BASE2 into a 64-bit component address.
func ComponentBase64(lo BASE, hi BASE2) uint64 {
	return uint64(hi.BaseAddr)<<32 | uint64(lo.ComponentBase())
}

// IDR classes.
const (
	ClassNone  uint8 = 0b0000
	ClassCOMAP uint8 = 0b0001
	ClassMemAP uint8 = 0b1000
)

// IDR is the Identification Register.
type IDR struct {
	Revision uint8
	// Designer is the JEP106 code of the designer, continuation code in
	// bits [10:7].
	Designer uint16
	Class    uint8
	Variant  uint8
	// Type is the bus type for a MEM-AP, e.g. 0x1 for AMBA AHB3.
	Type uint8
}

var (
	idrRevision = Field{Name: "REVISION", Hi: 31, Lo: 28}
	idrDesigner = Field{Name: "DESIGNER", Hi: 27, Lo: 17}
	idrClass    = Field{Name: "CLASS", Hi: 16, Lo: 13}
	idrVariant  = Field{Name: "VARIANT", Hi: 7, Lo: 4}
	idrType     = Field{Name: "TYPE", Hi: 3, Lo: 0}

	idrLayout = []Field{idrRevision, idrDesigner, idrClass, idrVariant, idrType}
)

func (IDR) Address() uint16  { return AddrIDR }
func (IDR) Name() string     { return "IDR" }
func (IDR) Layout() []Field  { return idrLayout }
func (r IDR) String() string { return Describe(r) }

// Raw encodes the register. Bits [12:8] are not modelled and written as zero.
func (r IDR) Raw() uint32 {
	return idrRevision.Place(uint32(r.Revision)) |
		idrDesigner.Place(uint32(r.Designer)) |
		idrClass.Place(uint32(r.Class)) |
		idrVariant.Place(uint32(r.Variant)) |
		idrType.Place(uint32(r.Type))
}

func (r *IDR) decode(raw uint32) error {
	*r = IDR{
		Revision: uint8(idrRevision.Extract(raw)),
		Designer: uint16(idrDesigner.Extract(raw)),
		Class:    uint8(idrClass.Extract(raw)),
		Variant:  uint8(idrVariant.Extract(raw)),
		Type:     uint8(idrType.Extract(raw)),
	}
	return nil
}

// IsMemAP reports whether the IDR identifies a memory access port.
func (r IDR) IsMemAP() bool {
	return r.Class == ClassMemAP
}
