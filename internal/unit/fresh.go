package unit

import "strconv"

// DefaultTermPrefix marks generated term names apart from generated type
// names.
const DefaultTermPrefix = "x$"

// FreshNames hands out identifiers unique within one unit. A single
// counter feeds every prefix, so no two calls ever collide regardless of
// the prefix mix. The zero value is ready to use; the supply belongs to
// exactly one unit and is not shared.
type FreshNames struct {
	next uint64
}

func (f *FreshNames) fresh(prefix string) string {
	n := f.next
	f.next++
	return prefix + strconv.FormatUint(n, 10)
}

// FreshTermName returns a new term name; an empty prefix selects
// DefaultTermPrefix.
func (f *FreshNames) FreshTermName(prefix string) string {
	if prefix == "" {
		prefix = DefaultTermPrefix
	}
	return f.fresh(prefix)
}

// FreshTypeName returns a new type name under the given prefix.
func (f *FreshNames) FreshTypeName(prefix string) string {
	return f.fresh(prefix)
}
