package sqlstmt

/*
Appends the SQL fragment for this value to `text`, appending every scalar it
contains to `args` in depth-first order. Each scalar gets the placeholder
`$N` where N is the length of `args` right after appending it, so indexes are
never reused or renumbered. `Null` and `NotNull` render keywords and leave
`args` untouched.

	Kind      ModeAssign      ModeCond        ModeTpl
	Scalar    $N              $N              $N
	Null      NULL            IS NULL         NULL
	NotNull   NOT NULL        IS NOT NULL     NOT NULL
	Array     ARRAY[$1, $2]   IN ($1, $2)     ($1, $2)

Items of `IN (...)` and template lists are rendered in `ModeAssign`, which
means a nested array inside a condition list becomes `ARRAY[...]`. Empty arrays
render as `'{}'` in `ModeAssign`, which Postgres coerces to any array type, and
as a list containing a single `NULL` otherwise, which matches no rows.
*/
func (self Value) AppendTo(text []byte, args []any, mode Mode) ([]byte, []any) {
	switch self.Kind {
	case KindScalar:
		args = append(args, self.Val)
		return appendOrdinal(text, len(args)), args

	case KindNull:
		if mode == ModeCond {
			return append(text, `IS NULL`...), args
		}
		return append(text, `NULL`...), args

	case KindNotNull:
		if mode == ModeCond {
			return append(text, `IS NOT NULL`...), args
		}
		return append(text, `NOT NULL`...), args

	case KindArray:
		switch mode {
		case ModeCond:
			return appendList(text, args, `IN (`, `)`, `NULL`, self.Items)
		case ModeTpl:
			return appendList(text, args, `(`, `)`, `NULL`, self.Items)
		default:
			return appendList(text, args, `ARRAY[`, `]`, ``, self.Items)
		}

	default:
		panic(Err{
			Code:  ErrCodeInternal,
			While: `allocating placeholder`,
			Cause: errf(`unknown value kind %v`, self.Kind),
		})
	}
}

func appendList(
	text []byte, args []any, prefix, suffix, empty string, items []Value,
) (
	[]byte, []any,
) {
	if len(items) == 0 && empty == `` {
		return append(text, `'{}'`...), args
	}

	text = append(text, prefix...)
	if len(items) == 0 {
		text = append(text, empty...)
	}
	for ind, item := range items {
		if ind > 0 {
			text = append(text, `, `...)
		}
		text, args = item.AppendTo(text, args, ModeAssign)
	}
	return append(text, suffix...), args
}

// Renders the value in the given mode, returning only the fragment.
func (self Value) Render(mode Mode) (string, []any) {
	text, args := self.AppendTo(nil, nil, mode)
	return bytesToMutableString(text), args
}

/*
Allocates placeholders for the value, appending its scalars to the shared list
and returning the SQL fragment to splice into statement text.
*/
func Alloc(val Value, mode Mode, args *[]any) string {
	if args == nil {
		panic(Err{
			Code:  ErrCodeInternal,
			While: `allocating placeholder`,
			Cause: errf(`nil argument list`),
		})
	}
	text, out := val.AppendTo(nil, *args, mode)
	*args = out
	return bytesToMutableString(text)
}
