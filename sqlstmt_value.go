package sqlstmt

import (
	"database/sql/driver"
	r "reflect"

	"github.com/mitranim/refut"
)

const (
	KindNull    Kind = 0
	KindNotNull Kind = 1
	KindScalar  Kind = 2
	KindArray   Kind = 3
)

// Discriminant of `Value`. The zero kind is `KindNull`.
type Kind byte

// Implement `fmt.Stringer` for debug purposes.
func (self Kind) String() string {
	switch self {
	case KindNull:
		return `null`
	case KindNotNull:
		return `not null`
	case KindScalar:
		return `scalar`
	case KindArray:
		return `array`
	default:
		return `unknown`
	}
}

var (
	// Renders as `NULL` or `IS NULL`, never consumes a parameter.
	Null = Value{Kind: KindNull}

	// Renders as `NOT NULL` or `IS NOT NULL`, never consumes a parameter.
	NotNull = Value{Kind: KindNotNull}
)

/*
Tagged union of everything that can appear on the value side of a column or in
place of a template marker. The zero value is `Null`. Build values with
`Scalar`, `Array`, `List` or `ValueOf`; `.Val` is meaningful only for
`KindScalar` and `.Items` only for `KindArray`.

Rendering depends on `Mode`, see `Value.AppendTo`.
*/
type Value struct {
	Kind  Kind
	Val   any
	Items []Value
}

/*
Always a bound parameter, even when the input is nil. `Scalar(nil)` therefore
renders as a placeholder bound to a nil argument, unlike `Null` which renders
the `NULL` keyword.
*/
func Scalar(val any) Value { return Value{Kind: KindScalar, Val: val} }

// Array of arbitrary values, possibly other arrays.
func Array(vals ...Value) Value { return Value{Kind: KindArray, Items: vals} }

// Array of native Go values, each classified via `ValueOf`.
func List(vals ...any) Value {
	items := make([]Value, len(vals))
	for ind, val := range vals {
		items[ind] = ValueOf(val)
	}
	return Array(items...)
}

/*
Classifies an arbitrary Go value:

	* `Value`                     -> as-is
	* `[]Value`                   -> `Array`
	* nil, nil pointer            -> `Null`
	* `driver.Valuer`             -> `Null` if its SQL value is nil, else scalar
	* `[]byte`, byte arrays       -> scalar (e.g. `uuid.UUID`)
	* other slices and arrays     -> `Array` of classified elements
	* anything else               -> scalar

Panics if a `driver.Valuer` fails to produce its value.
*/
func ValueOf(src any) Value {
	switch src := src.(type) {
	case nil:
		return Null
	case Value:
		return src
	case []Value:
		return Array(src...)
	case []byte:
		if src == nil {
			return Null
		}
		return Scalar(src)
	case driver.Valuer:
		if refut.IsNil(src) || try1(src.Value()) == nil {
			return Null
		}
		return Scalar(src)
	}

	rval := r.ValueOf(src)
	if refut.IsRvalNil(rval) {
		return Null
	}

	switch rval.Kind() {
	case r.Slice, r.Array:
		if rval.Type().Elem().Kind() == r.Uint8 {
			return Scalar(src)
		}
		if rval.Len() == 0 {
			return Array()
		}
		items := make([]Value, rval.Len())
		for ind := range items {
			items[ind] = ValueOf(rval.Index(ind).Interface())
		}
		return Array(items...)
	default:
		return Scalar(src)
	}
}

// True if this is an array whose items are themselves arrays.
func (self Value) IsNested() bool {
	if self.Kind != KindArray {
		return false
	}
	for _, val := range self.Items {
		if val.Kind == KindArray {
			return true
		}
	}
	return false
}

// Number of scalars this value binds when rendered.
func (self Value) ArgCount() (count int) {
	switch self.Kind {
	case KindScalar:
		return 1
	case KindArray:
		for _, val := range self.Items {
			count += val.ArgCount()
		}
	}
	return
}
