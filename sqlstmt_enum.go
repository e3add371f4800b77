package sqlstmt

import (
	"strconv"
)

const (
	ordinalParamPrefix = '$'
	tplMarker          = '?'
)

const (
	ModeAssign Mode = 0
	ModeCond   Mode = 1
	ModeTpl    Mode = 2
)

/*
Rendering context for `Value`. The same value renders differently depending on
where it appears:

	* `ModeAssign`: right side of `set` or inside `values (...)`. Arrays become
	  `ARRAY[...]`, nulls become `NULL`.
	* `ModeCond`: right side of a structured `where` column. Arrays become
	  `IN (...)`, nulls become `IS NULL`.
	* `ModeTpl`: in place of a `?` marker in a `where` template. Arrays become
	  parenthesized lists, nulls become `NULL`.
*/
type Mode byte

// Implement `fmt.Stringer` for debug purposes.
func (self Mode) String() string {
	switch self {
	case ModeAssign:
		return `assign`
	case ModeCond:
		return `cond`
	case ModeTpl:
		return `tpl`
	default:
		return `unknown`
	}
}

// Implement `fmt.GoStringer` for debug purposes. Returns valid Go code
// representing this value.
func (self Mode) GoString() string {
	switch self {
	case ModeAssign:
		return `sqlstmt.ModeAssign`
	case ModeCond:
		return `sqlstmt.ModeCond`
	case ModeTpl:
		return `sqlstmt.ModeTpl`
	default:
		return `sqlstmt.Mode(` + strconv.Itoa(int(self)) + `)`
	}
}

const (
	ConjAnd Conj = `AND`
	ConjOr  Conj = `OR`
)

/*
Short for "conjunction". Joins structured `where` conditions. Untyped string
constants such as "OR" convert implicitly, which allows both of the following:

	sqlstmt.Select().From(`t`).Where(cols, sqlstmt.ConjOr)
	sqlstmt.Select().From(`t`).Where(cols, "OR")

Any other text is rejected when the statement is built.
*/
type Conj string

/*
Parses a conjunction. Accepts exactly "AND" or "OR"; anything else, including
empty input, produces an `ErrInvalidInput`. Omitting the conjunction in
builder methods is how to get the default.
*/
func ParseConj(src string) (Conj, error) {
	switch Conj(src) {
	case ConjAnd, ConjOr:
		return Conj(src), nil
	default:
		return ``, errInvalid(`parsing conjunction`, errf(`invalid conjunction %q, expected "AND" or "OR"`, src))
	}
}

// Returns the delimiter used between conditions, such as " AND ".
func (self Conj) delim() string { return ` ` + string(self) + ` ` }

// SQL expression used when there are no conditions to join.
func (self Conj) empty() string {
	if self == ConjOr {
		return `false`
	}
	return `true`
}

// Implement `encoding.TextUnmarshaler`.
func (self *Conj) UnmarshalText(src []byte) error {
	val, err := ParseConj(string(src))
	if err == nil {
		*self = val
	}
	return err
}

func optConj(while string, vals []Conj) Conj {
	switch len(vals) {
	case 0:
		return ConjAnd
	case 1:
		return try1(ParseConj(string(vals[0])))
	default:
		panic(errInvalid(while, errf(`expected at most one conjunction, got %v`, len(vals))))
	}
}

const (
	DirNone Dir = ``
	DirAsc  Dir = `ASC`
	DirDesc Dir = `DESC`
)

/*
Short for "direction". Enum for ordering direction: none, "ASC", "DESC".
Untyped string constants convert implicitly, like with `Conj`.
*/
type Dir string

// Parses a direction. Accepts exactly "ASC" or "DESC".
func ParseDir(src string) (Dir, error) {
	switch Dir(src) {
	case DirAsc, DirDesc:
		return Dir(src), nil
	default:
		return DirNone, errInvalid(`parsing order direction`, errf(`unrecognized direction %q, expected "ASC" or "DESC"`, src))
	}
}

// Implement `encoding.TextUnmarshaler`.
func (self *Dir) UnmarshalText(src []byte) error {
	val, err := ParseDir(string(src))
	if err == nil {
		*self = val
	}
	return err
}

func optDir(while string, vals []Dir) Dir {
	switch len(vals) {
	case 0:
		return DirNone
	case 1:
		return try1(ParseDir(string(vals[0])))
	default:
		panic(errInvalid(while, errf(`expected at most one direction, got %v`, len(vals))))
	}
}

const (
	ClauseSet Clause = 1 << iota
	ClauseFrom
	ClauseValues
	ClauseWhere
	ClauseOrderBy
	ClauseLimit
	ClauseOffset
	ClauseReturning
)

// Bitset of clauses already appended to a statement.
type Clause uint16

func (self Clause) Has(val Clause) bool { return self&val == val }

// Implement `fmt.Stringer` for debug purposes.
func (self Clause) String() string {
	switch self {
	case ClauseSet:
		return `SET`
	case ClauseFrom:
		return `FROM`
	case ClauseValues:
		return `VALUES`
	case ClauseWhere:
		return `WHERE`
	case ClauseOrderBy:
		return `ORDER BY`
	case ClauseLimit:
		return `LIMIT`
	case ClauseOffset:
		return `OFFSET`
	case ClauseReturning:
		return `RETURNING`
	default:
		return `unknown`
	}
}
