package symbols

import (
	"lyra/internal/source"
)

// SymbolID uniquely identifies a symbol inside a Table. It is the
// identity-comparable key the unit's dependency sets and caches use.
type SymbolID uint32

const NoSymbolID SymbolID = 0

func (id SymbolID) IsValid() bool { return id != NoSymbolID }

// SymbolKind classifies the semantic meaning of a symbol.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolModule
	SymbolClass
	SymbolObject
	SymbolMethod
	SymbolVal
	SymbolType
	SymbolParam
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolModule:
		return "module"
	case SymbolClass:
		return "class"
	case SymbolObject:
		return "object"
	case SymbolMethod:
		return "method"
	case SymbolVal:
		return "val"
	case SymbolType:
		return "type"
	case SymbolParam:
		return "param"
	default:
		return "invalid"
	}
}

// SymbolFlags encode misc attributes for quick checks.
type SymbolFlags uint16

const (
	SymbolFlagPublic SymbolFlags = 1 << iota
	SymbolFlagSynthetic
	SymbolFlagJavaDefined
	SymbolFlagDeferred
)

// Strings returns textual flag labels, nil when no flag is set.
func (f SymbolFlags) Strings() []string {
	if f == 0 {
		return nil
	}
	labels := make([]string, 0, 4)
	if f&SymbolFlagPublic != 0 {
		labels = append(labels, "public")
	}
	if f&SymbolFlagSynthetic != 0 {
		labels = append(labels, "synthetic")
	}
	if f&SymbolFlagJavaDefined != 0 {
		labels = append(labels, "java-defined")
	}
	if f&SymbolFlagDeferred != 0 {
		labels = append(labels, "deferred")
	}
	return labels
}

// Symbol describes a named entity the resolver produced.
type Symbol struct {
	Name  string
	Kind  SymbolKind
	Span  source.Span
	Flags SymbolFlags
	Owner SymbolID // enclosing symbol, NoSymbolID at top level
}
