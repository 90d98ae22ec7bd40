package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/Urethramancer/memap/memap"
	"github.com/mattn/go-isatty"
	"github.com/platinasystems/flags"
	"github.com/platinasystems/parms"
)

const usage = `Usage:
  apreg [-q] [-base ADDR] REGISTER VALUE         decode a raw value
  apreg -e [-q] [-base ADDR] REGISTER [FIELD=VALUE]...  encode fields
  apreg -l                                       list registers

REGISTER is a name (CSW, TAR, IDR, ...) or an offset such as 0xD00.
Enumeration fields accept their symbolic names, e.g. SIZE=U8 AddrInc=Off.
`

var errUsage = errors.New("invalid arguments")

func main() {
	err := run(os.Args[1:], os.Stdout, isatty.IsTerminal(os.Stdout.Fd()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		os.Exit(1)
	}
}

// run executes one invocation. A table is written when table is set,
// NAME=VALUE lines otherwise.
func run(args []string, w io.Writer, table bool) error {
	flag, args := flags.New(args, "-e", "-l", "-q", []string{"-h", "-help", "--help"})
	parm, args := parms.New(args, "-base")

	switch {
	case flag.ByName["-h"]:
		fmt.Fprint(w, usage)
		return nil
	case flag.ByName["-l"]:
		return list(w, table)
	}

	var base uint64
	if s := parm.ByName["-base"]; s != "" {
		v, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return fmt.Errorf("%w: bad base address %q", errUsage, s)
		}
		base = v
	}

	if len(args) == 0 {
		return errUsage
	}
	e, err := lookup(args[0])
	if err != nil {
		return err
	}

	var raw uint32
	if flag.ByName["-e"] {
		raw, err = assign(e, args[1:])
		if err != nil {
			return err
		}
	} else {
		if len(args) != 2 {
			return errUsage
		}
		raw, err = parseValue(args[1], 32)
		if err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
	}

	r, err := e.Decode(raw)
	if err != nil {
		return err
	}
	if flag.ByName["-q"] {
		fmt.Fprintf(w, "0x%08X\n", r.Raw())
		return nil
	}
	show(w, r, base, table)
	return nil
}

// lookup resolves a register name or numeric offset.
func lookup(s string) (memap.Entry, error) {
	if e, ok := memap.Lookup(s); ok {
		return e, nil
	}
	if v, err := strconv.ParseUint(s, 0, 16); err == nil {
		if e, ok := memap.LookupAddress(uint16(v)); ok {
			return e, nil
		}
	}
	return memap.Entry{}, fmt.Errorf("%w %q", memap.ErrUnknownRegister, s)
}

// parseValue parses an integer literal that must fit in width bits.
func parseValue(s string, width uint) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("bad value %q", s)
	}
	if width < 32 && v>>width != 0 {
		return 0, fmt.Errorf("value %s does not fit in %d bits", s, width)
	}
	return uint32(v), nil
}

func bits(f memap.Field) string {
	if f.Hi == f.Lo {
		return fmt.Sprintf("[%d]", f.Hi)
	}
	return fmt.Sprintf("[%d:%d]", f.Hi, f.Lo)
}

func show(w io.Writer, r memap.Register, base uint64, table bool) {
	raw := r.Raw()
	bus := base + uint64(r.Address())
	if !table {
		fmt.Fprintf(w, "REGISTER=%s\nOFFSET=0x%03X\nBUS=0x%X\nRAW=0x%08X\n", r.Name(), r.Address(), bus, raw)
		for _, f := range r.Layout() {
			fmt.Fprintf(w, "%s=%s\n", f.Name, f.Format(f.Extract(raw)))
		}
		return
	}

	fmt.Fprintf(w, "%s at offset 0x%03X, bus address 0x%X\n", r.Name(), r.Address(), bus)
	fmt.Fprintf(w, "Raw value: 0x%08X\n\n", raw)
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, f := range r.Layout() {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", f.Name, bits(f), f.Format(f.Extract(raw)))
	}
	tw.Flush()
}

func list(w io.Writer, table bool) error {
	tw := io.Writer(w)
	var flush func() error
	if table {
		t := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
		tw, flush = t, t.Flush
	}
	for _, e := range memap.Catalog() {
		var fields string
		for i, f := range e.Layout {
			if i > 0 {
				fields += " "
			}
			fields += f.Name + bits(f)
		}
		if table {
			fmt.Fprintf(tw, "%s\t0x%03X\t%s\n", e.Name, e.Address, fields)
		} else {
			fmt.Fprintf(tw, "%s=0x%03X %s\n", e.Name, e.Address, fields)
		}
	}
	if flush != nil {
		return flush()
	}
	return nil
}
