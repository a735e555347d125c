// Package argv reads "-Name" and "-Name:Value" style command lines.
package argv

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Args is an immutable view over a parsed token list.
type Args struct {
	args []arg
}

type arg struct {
	flag   bool
	name   string // Flag name or regular argument
	folded string // Case-folded flag name
	value  string
}

// FromOSArgs parses os.Args style input, skipping the program name.
func FromOSArgs(osArgs []string) *Args {
	if len(osArgs) == 0 {
		return Parse(nil)
	}
	return Parse(osArgs[1:])
}

// Parse builds Args from tokens that do not include the program name.
//
// Accepted flag shapes: -Name, --Name, -Name:Value and -Name:"Value".
// A lone "--" ends flag interpretation; later tokens are regular arguments.
func Parse(tokens []string) *Args {
	fold := cases.Fold()
	a := &Args{args: make([]arg, 0, len(tokens))}

	flagsDone := false
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if tok == "--" && !flagsDone {
			flagsDone = true
			continue
		}
		if flagsDone || tok[0] != '-' {
			a.args = append(a.args, arg{name: tok})
			continue
		}

		name, value := splitFlag(tok)
		a.args = append(a.args, arg{
			flag:   true,
			name:   name,
			folded: fold.String(name),
			value:  value,
		})
	}
	return a
}

// splitFlag cuts "-Name:Value" into its name and value parts.
func splitFlag(tok string) (name, value string) {
	body := strings.TrimPrefix(tok[1:], "-")

	i := strings.IndexAny(body, `:"`)
	if i < 0 {
		return body, ""
	}
	name, rest := body[:i], body[i+1:]

	if body[i] == ':' {
		if !strings.HasPrefix(rest, `"`) {
			return name, rest
		}
		rest = rest[1:]
	}

	// Double-quoted value, ends at the closing quote or the token end
	if end := strings.IndexByte(rest, '"'); end >= 0 {
		rest = rest[:end]
	}
	return name, rest
}

func (a *Args) find(name string) (arg, bool) {
	wanted := cases.Fold().String(name)
	for _, ar := range a.args {
		if ar.flag && ar.folded == wanted {
			return ar, true
		}
	}
	return arg{}, false
}

// HasFlag reports whether -name or -name:* was given.
func (a *Args) HasFlag(name string) bool {
	_, ok := a.find(name)
	return ok
}

// FlagString returns the value of the first matching flag.
//
// It is empty when the flag is absent or carries no value.
func (a *Args) FlagString(name string) string {
	ar, _ := a.find(name)
	return ar.value
}

// FlagInt returns the integer value of a flag, 0 when absent or malformed.
func (a *Args) FlagInt(name string) int {
	v, err := strconv.Atoi(strings.TrimSpace(a.FlagString(name)))
	if err != nil {
		return 0
	}
	return v
}

// RegularArgs returns the non-flag arguments in order.
func (a *Args) RegularArgs() []string {
	var out []string
	for _, ar := range a.args {
		if !ar.flag {
			out = append(out, ar.name)
		}
	}
	return out
}

// FlagNames returns the flag names as written, in order.
func (a *Args) FlagNames() []string {
	var out []string
	for _, ar := range a.args {
		if ar.flag {
			out = append(out, ar.name)
		}
	}
	return out
}
