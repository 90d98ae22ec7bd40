package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Urethramancer/memap/memap"
)

func runArgs(t *testing.T, table bool, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := run(args, &buf, table)
	return buf.String(), err
}

func TestDecode(t *testing.T) {
	out, err := runArgs(t, false, "CSW", "0xA3000052")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	for _, want := range []string{
		"REGISTER=CSW\n",
		"OFFSET=0xD00\n",
		"RAW=0xA3000052\n",
		"DbgSwEnable=1\n",
		"Prot=0x23\n",
		"AddrInc=Single\n",
		"SIZE=U32\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestDecodeBase(t *testing.T) {
	out, err := runArgs(t, false, "-base", "0x01000000", "IDR", "0x24770011")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	for _, want := range []string{"BUS=0x1000DFC\n", "REVISION=0x2\n", "CLASS=0x8\n", "DESIGNER=0x23B\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestDecodeByOffset(t *testing.T) {
	out, err := runArgs(t, false, "-q", "0xDF8", "0xE0000FFD")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if out != "0xE0000001\n" {
		t.Errorf("got %q, want %q", out, "0xE0000001\n")
	}
}

func TestDecodeTable(t *testing.T) {
	out, err := runArgs(t, true, "CFG", "2")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !strings.HasPrefix(out, "CFG at offset 0xDF4, bus address 0xDF4\n") {
		t.Errorf("bad header:\n%s", out)
	}
	if !strings.Contains(out, "  LA  [1]  1\n") {
		t.Errorf("missing LA row:\n%s", out)
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"-e", "-q", "CSW"}, "0x00000012\n"},
		{[]string{"-e", "-q", "CSW", "SIZE=U8", "AddrInc=Off", "DbgSwEnable=1"}, "0x80000000\n"},
		{[]string{"-e", "-q", "CSW", "SIZE=u16", "Prot=0x23"}, "0x23000011\n"},
		{[]string{"-e", "-q", "BASE", "BASEADDR=0xE0000", "FORMAT=ADIv5", "P=1"}, "0xE0000003\n"},
		{[]string{"-q", "-e", "TAR", "ADDR=0x20000000"}, "0x20000000\n"},
	}
	for _, tt := range tests {
		out, err := runArgs(t, false, tt.args...)
		if err != nil {
			t.Errorf("%v: %v", tt.args, err)
			continue
		}
		if out != tt.want {
			t.Errorf("%v: got %q, want %q", tt.args, out, tt.want)
		}
	}
}

func TestEncodeErrors(t *testing.T) {
	_, err := runArgs(t, false, "-e", "CSW", "Prot=0x80")
	if err == nil || !strings.Contains(err.Error(), "does not fit in 7 bits") {
		t.Errorf("got %v, want range error", err)
	}

	_, err = runArgs(t, false, "-e", "CSW", "SIZE=6")
	var pe *memap.ParseError
	if !errors.As(err, &pe) || pe.Field != "SIZE" {
		t.Errorf("got %v, want ParseError on SIZE", err)
	}

	_, err = runArgs(t, false, "-e", "CSW", "BOGUS=1")
	if !errors.Is(err, errUsage) {
		t.Errorf("got %v, want usage error", err)
	}
}

func TestErrors(t *testing.T) {
	if _, err := runArgs(t, false, "DAR0", "0"); !errors.Is(err, memap.ErrUnknownRegister) {
		t.Errorf("got %v, want ErrUnknownRegister", err)
	}
	if _, err := runArgs(t, false); !errors.Is(err, errUsage) {
		t.Errorf("got %v, want usage error", err)
	}
	if _, err := runArgs(t, false, "CSW"); !errors.Is(err, errUsage) {
		t.Errorf("got %v, want usage error", err)
	}
	if _, err := runArgs(t, false, "CSW", "zz"); !errors.Is(err, errUsage) {
		t.Errorf("got %v, want usage error", err)
	}
	if _, err := runArgs(t, false, "CSW", "0x16"); err == nil {
		t.Errorf("invalid SIZE decoded")
	}
}

func TestList(t *testing.T) {
	out, err := runArgs(t, false, "-l")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(memap.Catalog()) {
		t.Fatalf("got %d lines, want %d", len(lines), len(memap.Catalog()))
	}
	if !strings.HasPrefix(lines[0], "CSW=0xD00 DbgSwEnable[31] Prot[30:24]") {
		t.Errorf("got %q", lines[0])
	}
	if lines[len(lines)-1] != "IDR=0xDFC REVISION[31:28] DESIGNER[27:17] CLASS[16:13] VARIANT[7:4] TYPE[3:0]" {
		t.Errorf("got %q", lines[len(lines)-1])
	}
}

func TestHelp(t *testing.T) {
	out, err := runArgs(t, false, "--help")
	if err != nil || !strings.HasPrefix(out, "Usage:") {
		t.Errorf("got %q %v", out, err)
	}
}
