package memap

// CSW is the Control and Status Word register. It configures memory
// accesses made through the MEM-AP.
type CSW struct {
	// DbgSwEnable enables debug software access.
	DbgSwEnable bool
	// Prot is the implementation defined bus access protection, used
	// together with Type.
	Prot uint8
	// SDeviceEn reports that secure access is enabled. Read-only. In ADIv5
	// this bit is named SPIDEN.
	SDeviceEn bool
	// RMEEN is the realm and root access status when CFG.RME is set. Read-only.
	RMEEN uint8
	Res0  uint8
	// ErrStop makes access errors prevent further memory accesses.
	ErrStop bool
	// ErrNPass stops errors from being passed upstream.
	ErrNPass bool
	// MTE enables memory tagging access.
	MTE bool
	// Type is the implementation defined memory tagging type.
	Type uint8
	// Mode of operation, normally 0.
	Mode uint8
	// TrInProg is set while a transfer is in progress. Read-only.
	TrInProg bool
	// DeviceEn is set when transactions can be issued through the AP. Read-only.
	DeviceEn bool
	AddrInc  AddressIncrement
	Res1     uint8
	Size     DataSize
}

var (
	cswDbgSwEnable = Field{Name: "DbgSwEnable", Hi: 31, Lo: 31}
	cswProt        = Field{Name: "Prot", Hi: 30, Lo: 24}
	cswSDeviceEn   = Field{Name: "SDeviceEn", Hi: 23, Lo: 23}
	cswRMEEN       = Field{Name: "RMEEN", Hi: 22, Lo: 21}
	cswRes0        = Field{Name: "RES0", Hi: 20, Lo: 18}
	cswErrStop     = Field{Name: "ERRSTOP", Hi: 17, Lo: 17}
	cswErrNPass    = Field{Name: "ERRNPASS", Hi: 16, Lo: 16}
	cswMTE         = Field{Name: "MTE", Hi: 15, Lo: 15}
	cswType        = Field{Name: "Type", Hi: 14, Lo: 12}
	cswMode        = Field{Name: "Mode", Hi: 11, Lo: 8}
	cswTrInProg    = Field{Name: "TrInProg", Hi: 7, Lo: 7}
	cswDeviceEn    = Field{Name: "DeviceEn", Hi: 6, Lo: 6}
	cswAddrInc     = Field{Name: "AddrInc", Hi: 5, Lo: 4, Values: addressIncrementNames}
	cswRes1        = Field{Name: "RES1", Hi: 3, Lo: 3}
	cswSize        = Field{Name: "SIZE", Hi: 2, Lo: 0, Values: dataSizeNames}

	cswLayout = []Field{
		cswDbgSwEnable, cswProt, cswSDeviceEn, cswRMEEN, cswRes0,
		cswErrStop, cswErrNPass, cswMTE, cswType, cswMode,
		cswTrInProg, cswDeviceEn, cswAddrInc, cswRes1, cswSize,
	}
)

// NewCSW returns a CSW with every field zero except the enumerations, which
// take their defaults (32-bit transfers, single increment).
func NewCSW() CSW {
	return CSW{AddrInc: DefaultAddressIncrement, Size: DefaultDataSize}
}

func (CSW) Address() uint16  { return AddrCSW }
func (CSW) Name() string     { return "CSW" }
func (CSW) Layout() []Field  { return cswLayout }
func (r CSW) String() string { return Describe(r) }

// Raw encodes the register. Integer fields are not range checked.
func (r CSW) Raw() uint32 {
	return cswDbgSwEnable.Place(bit(r.DbgSwEnable)) |
		cswProt.Place(uint32(r.Prot)) |
		cswSDeviceEn.Place(bit(r.SDeviceEn)) |
		cswRMEEN.Place(uint32(r.RMEEN)) |
		cswRes0.Place(uint32(r.Res0)) |
		cswErrStop.Place(bit(r.ErrStop)) |
		cswErrNPass.Place(bit(r.ErrNPass)) |
		cswMTE.Place(bit(r.MTE)) |
		cswType.Place(uint32(r.Type)) |
		cswMode.Place(uint32(r.Mode)) |
		cswTrInProg.Place(bit(r.TrInProg)) |
		cswDeviceEn.Place(bit(r.DeviceEn)) |
		cswAddrInc.Place(uint32(r.AddrInc)) |
		cswRes1.Place(uint32(r.Res1)) |
		cswSize.Place(uint32(r.Size))
}

func (r *CSW) decode(raw uint32) error {
	inc, ok := AddressIncrementFromCode(uint8(cswAddrInc.Extract(raw)))
	if !ok {
		return parseError(r, cswAddrInc, raw)
	}
	size, ok := DataSizeFromCode(uint8(cswSize.Extract(raw)))
	if !ok {
		return parseError(r, cswSize, raw)
	}
	*r = CSW{
		DbgSwEnable: cswDbgSwEnable.Flag(raw),
		Prot:        uint8(cswProt.Extract(raw)),
		SDeviceEn:   cswSDeviceEn.Flag(raw),
		RMEEN:       uint8(cswRMEEN.Extract(raw)),
		Res0:        uint8(cswRes0.Extract(raw)),
		ErrStop:     cswErrStop.Flag(raw),
		ErrNPass:    cswErrNPass.Flag(raw),
		MTE:         cswMTE.Flag(raw),
		Type:        uint8(cswType.Extract(raw)),
		Mode:        uint8(cswMode.Extract(raw)),
		TrInProg:    cswTrInProg.Flag(raw),
		DeviceEn:    cswDeviceEn.Flag(raw),
		AddrInc:     inc,
		Res1:        uint8(cswRes1.Extract(raw)),
		Size:        size,
	}
	return nil
}
