package memap

// Registers taking part in a memory transfer. Each carries a single 32-bit
// field, so decoding never fails.

var (
	addrLayout = []Field{{Name: "ADDR", Hi: 31, Lo: 0}}
	dataLayout = []Field{{Name: "DATA", Hi: 31, Lo: 0}}
)

// TAR is the Transfer Address Register. It holds the address accessed by the
// next DRW or BDx read or write.
type TAR struct {
	Addr uint32
}

func (TAR) Address() uint16            { return AddrTAR }
func (TAR) Name() string               { return "TAR" }
func (TAR) Layout() []Field            { return addrLayout }
func (r TAR) Raw() uint32              { return r.Addr }
func (r TAR) String() string           { return Describe(r) }
func (r *TAR) decode(raw uint32) error { r.Addr = raw; return nil }

// TAR2 is the upper word of the Transfer Address Register, present when the
// large address extension (CFG.LA) is implemented.
type TAR2 struct {
	Addr uint32
}

func (TAR2) Address() uint16            { return AddrTAR2 }
func (TAR2) Name() string               { return "TAR2" }
func (TAR2) Layout() []Field            { return addrLayout }
func (r TAR2) Raw() uint32              { return r.Addr }
func (r TAR2) String() string           { return Describe(r) }
func (r *TAR2) decode(raw uint32) error { r.Addr = raw; return nil }

// SplitAddress splits a 64-bit target address into its TAR and TAR2 words.
func SplitAddress(addr uint64) (TAR, TAR2) {
	return TAR{Addr: uint32(addr)}, TAR2{Addr: uint32(addr >> 32)}
}

// JoinAddress combines TAR and TAR2 into a 64-bit target address.
func JoinAddress(lo TAR, hi TAR2) uint64 {
	return uint64(hi.Addr)<<32 | uint64(lo.Addr)
}

// DRW is the Data Read/Write register. An access to DRW is translated into a
// memory access at the address held in TAR.
type DRW struct {
	Data uint32
}

func (DRW) Address() uint16            { return AddrDRW }
func (DRW) Name() string               { return "DRW" }
func (DRW) Layout() []Field            { return dataLayout }
func (r DRW) Raw() uint32              { return r.Data }
func (r DRW) String() string           { return Describe(r) }
func (r *DRW) decode(raw uint32) error { r.Data = raw; return nil }

// BD0 is Banked Data register 0. An access maps to TAR[31:4] with bits [3:2]
// set to 0b00.
type BD0 struct {
	Data uint32
}

func (BD0) Address() uint16            { return AddrBD0 }
func (BD0) Name() string               { return "BD0" }
func (BD0) Layout() []Field            { return dataLayout }
func (r BD0) Raw() uint32              { return r.Data }
func (r BD0) String() string           { return Describe(r) }
func (r *BD0) decode(raw uint32) error { r.Data = raw; return nil }

// BD1 is Banked Data register 1.
type BD1 struct {
	Data uint32
}

func (BD1) Address() uint16            { return AddrBD1 }
func (BD1) Name() string               { return "BD1" }
func (BD1) Layout() []Field            { return dataLayout }
func (r BD1) Raw() uint32              { return r.Data }
func (r BD1) String() string           { return Describe(r) }
func (r *BD1) decode(raw uint32) error { r.Data = raw; return nil }

// BD2 is Banked Data register 2.
type BD2 struct {
	Data uint32
}

func (BD2) Address() uint16            { return AddrBD2 }
func (BD2) Name() string               { return "BD2" }
func (BD2) Layout() []Field            { return dataLayout }
func (r BD2) Raw() uint32              { return r.Data }
func (r BD2) String() string           { return Describe(r) }
func (r *BD2) decode(raw uint32) error { r.Data = raw; return nil }

// BD3 is Banked Data register 3.
type BD3 struct {
	Data uint32
}

func (BD3) Address() uint16            { return AddrBD3 }
func (BD3) Name() string               { return "BD3" }
func (BD3) Layout() []Field            { return dataLayout }
func (r BD3) Raw() uint32              { return r.Data }
func (r BD3) String() string           { return Describe(r) }
func (r *BD3) decode(raw uint32) error { r.Data = raw; return nil }

// BankedDataAddress returns the offset of the BDx register that reaches the
// word at tar within its 16-byte aligned block.
func BankedDataAddress(tar uint32) uint16 {
	return AddrBD0 + uint16(tar&0xC)
}

// MBT is the Memory Barrier Transfer register. Writing it generates a barrier
// operation on the bus when the Barrier Operations Extension is implemented.
type MBT struct {
	// Data is implementation defined.
	Data uint32
}

func (MBT) Address() uint16            { return AddrMBT }
func (MBT) Name() string               { return "MBT" }
func (MBT) Layout() []Field            { return dataLayout }
func (r MBT) Raw() uint32              { return r.Data }
func (r MBT) String() string           { return Describe(r) }
func (r *MBT) decode(raw uint32) error { r.Data = raw; return nil }
