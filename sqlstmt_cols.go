package sqlstmt

import (
	r "reflect"
	"sort"

	"github.com/mitranim/refut"
)

const TagNameDb = `db`

// Single column paired with its value.
type Col struct {
	Name string
	Val  Value
}

// Shortcut for `Col{name, ValueOf(val)}`.
func C(name string, val any) Col { return Col{name, ValueOf(val)} }

/*
Ordered mapping of column names to values, used by `set`, `values` and
structured `where` clauses. Order is significant: placeholders are allocated
in this order.
*/
type Cols []Col

// Returns the column names in order.
func (self Cols) Names() []string {
	out := make([]string, len(self))
	for ind, col := range self {
		out[ind] = col.Name
	}
	return out
}

// Appends a column, classifying the value via `ValueOf`.
func (self Cols) Add(name string, val any) Cols {
	return append(self, C(name, val))
}

/*
Normalizes an arbitrary column source:

	* nil                          -> nil
	* `Cols`, `[]Col`, `Col`       -> as-is
	* `map[string]any`             -> keys in lexicographic order
	* map with string-kinded keys  -> same
	* struct or struct pointer     -> exported fields with a "db" tag, in field
	                                  order; embedded structs without a tag are
	                                  flattened

Values are classified via `ValueOf`. A nil struct pointer produces nil. Other
inputs panic with `ErrInvalidInput`.
*/
func ColsOf(src any) Cols {
	switch src := src.(type) {
	case nil:
		return nil
	case Cols:
		return src
	case []Col:
		return src
	case Col:
		return Cols{src}
	case map[string]any:
		return mapCols(r.ValueOf(src))
	}

	rval := r.ValueOf(src)
	rtype := refut.RtypeDeref(rval.Type())

	switch rtype.Kind() {
	case r.Map:
		if rtype.Key().Kind() == r.String {
			return mapCols(rval)
		}
	case r.Struct:
		return structCols(rval)
	}

	panic(errInvalid(
		`converting to columns`,
		errf(`expected columns, string-keyed map or struct, got %v`, rtype),
	))
}

func mapCols(rval r.Value) Cols {
	for rval.Kind() == r.Ptr {
		if rval.IsNil() {
			return nil
		}
		rval = rval.Elem()
	}

	keys := rval.MapKeys()
	sort.Slice(keys, func(one, two int) bool {
		return keys[one].String() < keys[two].String()
	})

	out := make(Cols, 0, len(keys))
	for _, key := range keys {
		out = append(out, C(key.String(), rval.MapIndex(key).Interface()))
	}
	return out
}

func structCols(rval r.Value) (out Cols) {
	if refut.IsRvalNil(rval) {
		return
	}

	err := refut.TraverseStructRval(rval, func(rval r.Value, sfield r.StructField, _ []int) error {
		if !sfield.IsExported() {
			return nil
		}
		name := refut.TagIdent(sfield.Tag.Get(TagNameDb))
		if name != `` {
			out = append(out, C(name, rval.Interface()))
		}
		return nil
	})
	try(err)
	return
}
