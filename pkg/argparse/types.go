package argparse

import (
	"fmt"
	"strings"
)

// ArgType is the value type an argument converts to.
type ArgType int

const (
	String ArgType = iota
	Int
	Float
	Double
	StoreTrue  // flag: false when absent, true when present
	StoreFalse // flag: true when absent, false when present
)

var argTypeNames = map[ArgType]string{
	String:     "string",
	Int:        "int",
	Float:      "float",
	Double:     "double",
	StoreTrue:  "store_true",
	StoreFalse: "store_false",
}

func (t ArgType) String() string {
	if name, ok := argTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ArgType(%d)", int(t))
}

// IsFlag reports whether the type takes no value.
func (t ArgType) IsFlag() bool {
	return t == StoreTrue || t == StoreFalse
}

func (t ArgType) valid() bool {
	_, ok := argTypeNames[t]
	return ok
}

// ParseArgType maps a type name such as "int" or "store_true" to its ArgType.
func ParseArgType(s string) (ArgType, error) {
	for t, name := range argTypeNames {
		if strings.EqualFold(s, name) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown argument type: %q", s)
}

// Importance decides whether an argument is bound by slot or by name.
type Importance int

const (
	Positional Importance = iota
	Optional
)

func (i Importance) String() string {
	switch i {
	case Positional:
		return "positional"
	case Optional:
		return "optional"
	}
	return fmt.Sprintf("Importance(%d)", int(i))
}

// ParseImportance maps "positional" or "optional" to its Importance.
func ParseImportance(s string) (Importance, error) {
	switch strings.ToLower(s) {
	case "positional":
		return Positional, nil
	case "optional":
		return Optional, nil
	}
	return 0, fmt.Errorf("unknown argument importance: %q", s)
}

// Behavior marks arguments with parser-wide side effects.
type Behavior int

const (
	None Behavior = iota
	// DropPositionalCheck disables the positional pass when the argument is
	// bound. Typical use is a --version style optional that must work without
	// the required positionals.
	DropPositionalCheck
)

func (b Behavior) String() string {
	switch b {
	case None:
		return "none"
	case DropPositionalCheck:
		return "drop_positional_check"
	}
	return fmt.Sprintf("Behavior(%d)", int(b))
}

// ParseBehavior maps "none" or "drop_positional_check" to its Behavior.
func ParseBehavior(s string) (Behavior, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return None, nil
	case "drop_positional_check":
		return DropPositionalCheck, nil
	}
	return 0, fmt.Errorf("unknown argument behavior: %q", s)
}

// ArgumentSpec is one declared argument.
type ArgumentSpec struct {
	Name       string
	Help       string
	Type       ArgType
	Importance Importance
	Behavior   Behavior

	// Position is the 1-based slot of a positional argument, assigned at
	// registration. Optional arguments carry -1.
	Position int
}
