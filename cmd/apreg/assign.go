package main

import (
	"fmt"
	"strings"

	"github.com/Urethramancer/memap/memap"
	"github.com/platinasystems/parms"
)

// assign starts from the register's default value and applies FIELD=VALUE
// arguments. Field names are matched exactly.
func assign(e memap.Entry, args []string) (uint32, error) {
	raw := e.Default.Raw()
	for _, f := range e.Layout {
		parm, rest := parms.New(args, f.Name)
		args = rest
		s := parm.ByName[f.Name]
		if s == "" {
			continue
		}
		code, err := fieldValue(f, s)
		if err != nil {
			return 0, fmt.Errorf("%s.%s: %v", e.Name, f.Name, err)
		}
		raw = f.Insert(raw, code)
	}
	if len(args) > 0 {
		names := make([]string, len(e.Layout))
		for i, f := range e.Layout {
			names[i] = f.Name
		}
		return 0, fmt.Errorf("%w: unknown field assignment %q; %s has %s",
			errUsage, args[0], e.Name, strings.Join(names, ", "))
	}
	return raw, nil
}

func fieldValue(f memap.Field, s string) (uint32, error) {
	if code, ok := f.Code(s); ok {
		return code, nil
	}
	return parseValue(s, f.Width())
}
