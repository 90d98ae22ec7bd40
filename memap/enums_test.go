package memap_test

import (
	"testing"

	"github.com/Urethramancer/memap/memap"
)

func TestDataSizeCodes(t *testing.T) {
	valid := 0
	for code := uint8(0); code < 8; code++ {
		d, ok := memap.DataSizeFromCode(code)
		if code <= 0b101 {
			if !ok || d.Code() != code {
				t.Errorf("code %03b: got %v %v, want valid", code, d, ok)
			}
			valid++
		} else if ok {
			t.Errorf("code %03b: decoded to %v, want invalid", code, d)
		}
	}
	if valid != 6 {
		t.Errorf("got %d valid sizes, want 6", valid)
	}
}

func TestDataSizeBytes(t *testing.T) {
	tests := []struct {
		d     memap.DataSize
		bytes int
		name  string
	}{
		{memap.Size8, 1, "U8"},
		{memap.Size16, 2, "U16"},
		{memap.Size32, 4, "U32"},
		{memap.Size64, 8, "U64"},
		{memap.Size128, 16, "U128"},
		{memap.Size256, 32, "U256"},
	}
	for _, tt := range tests {
		if got := tt.d.Bytes(); got != tt.bytes {
			t.Errorf("%s: got %d bytes, want %d", tt.name, got, tt.bytes)
		}
		if got := tt.d.String(); got != tt.name {
			t.Errorf("got %s, want %s", got, tt.name)
		}
		if d, ok := memap.DataSizeForBytes(tt.bytes); !ok || d != tt.d {
			t.Errorf("DataSizeForBytes(%d): got %v %v", tt.bytes, d, ok)
		}
	}
	if _, ok := memap.DataSizeForBytes(3); ok {
		t.Errorf("3 bytes should have no transfer size")
	}
	if got := memap.DataSize(6).Bytes(); got != 0 {
		t.Errorf("invalid size: got %d bytes, want 0", got)
	}
}

func TestAddressIncrementCodes(t *testing.T) {
	want := []struct {
		ok   bool
		name string
	}{
		{true, "Off"},
		{true, "Single"},
		{true, "Packed"},
		{false, ""},
	}
	for code := uint8(0); code < 4; code++ {
		a, ok := memap.AddressIncrementFromCode(code)
		if ok != want[code].ok {
			t.Errorf("code %02b: got ok=%v, want %v", code, ok, want[code].ok)
			continue
		}
		if ok && a.String() != want[code].name {
			t.Errorf("code %02b: got %s, want %s", code, a, want[code].name)
		}
	}
}

func TestBaseAddrFormatCodes(t *testing.T) {
	for code := uint8(0); code < 2; code++ {
		f, ok := memap.BaseAddrFormatFromCode(code)
		if !ok || f.Code() != code {
			t.Errorf("code %d: got %v %v", code, f, ok)
		}
	}
	if _, ok := memap.BaseAddrFormatFromCode(2); ok {
		t.Errorf("code 2 is wider than the field")
	}
}

func TestDefaults(t *testing.T) {
	if memap.DefaultDataSize != memap.Size32 {
		t.Errorf("default size: got %v", memap.DefaultDataSize)
	}
	if memap.DefaultAddressIncrement != memap.IncSingle {
		t.Errorf("default increment: got %v", memap.DefaultAddressIncrement)
	}
	if memap.DefaultBaseAddrFormat != memap.FormatLegacy {
		t.Errorf("default format: got %v", memap.DefaultBaseAddrFormat)
	}
}
