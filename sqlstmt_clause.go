package sqlstmt

/*
Appends a `set`-style assignment list such as `a = $1, b = ARRAY[$2, $3]`.
Values are rendered in `ModeAssign`, in column order.
*/
func AppendAssigns(text []byte, args []any, cols Cols) ([]byte, []any) {
	for ind, col := range cols {
		if ind > 0 {
			text = append(text, `, `...)
		}
		text = append(text, col.Name...)
		text = append(text, ` = `...)
		text, args = col.Val.AppendTo(text, args, ModeAssign)
	}
	return text, args
}

/*
Appends a column list and the matching `VALUES` list, such as
`(a, b) VALUES($1, $2)`. Without columns, appends ` DEFAULT VALUES`.
*/
func AppendInsert(text []byte, args []any, cols Cols) ([]byte, []any) {
	if len(cols) == 0 {
		return append(text, ` DEFAULT VALUES`...), args
	}

	text = append(text, '(')
	for ind, col := range cols {
		if ind > 0 {
			text = append(text, `, `...)
		}
		text = append(text, col.Name...)
	}
	text = append(text, `) VALUES(`...)

	for ind, col := range cols {
		if ind > 0 {
			text = append(text, `, `...)
		}
		text, args = col.Val.AppendTo(text, args, ModeAssign)
	}
	return append(text, ')'), args
}

/*
Appends structured conditions joined by the conjunction, such as
`a = $1 AND b IN ($2, $3) AND c IS NULL`. Scalars are compared with `=`,
other values render their own operator in `ModeCond`. Without columns, appends
`true` for `ConjAnd` and `false` for `ConjOr`. Panics on an invalid
conjunction.
*/
func AppendConds(text []byte, args []any, cols Cols, conj Conj) ([]byte, []any) {
	conj = try1(ParseConj(string(conj)))

	if len(cols) == 0 {
		return append(text, conj.empty()...), args
	}

	for ind, col := range cols {
		if ind > 0 {
			text = append(text, conj.delim()...)
		}
		text = append(text, col.Name...)
		text = append(text, ' ')
		if col.Val.Kind == KindScalar {
			text = append(text, `= `...)
		}
		text, args = col.Val.AppendTo(text, args, ModeCond)
	}
	return text, args
}

// Templated condition: `?` markers in `.Text` are replaced by `.Vals` in order.
type Tpl struct {
	Text string
	Vals []any
}

// Shortcut for making a `Tpl`.
func T(text string, vals ...any) Tpl { return Tpl{text, vals} }

/*
Appends the template, replacing each `?` marker with the fragment of the
corresponding value rendered in `ModeTpl`. Markers inside quoted strings,
quoted identifiers and comments are ignored, and `??` stands for a literal
`?`. The boolean structure of the template is preserved verbatim.

Panics if the template has more markers than values (`ErrMissingArgument`),
fewer markers than values (`ErrUnusedArgument`), contains ordinal
parameters such as `$1` (`ErrUnexpectedParameter`), or ends inside a quote or
block comment (`ErrInvalidInput`).
*/
func AppendTpl(text []byte, args []any, src string, vals []any) ([]byte, []any) {
	tpl := preparse(src)
	markers := len(tpl.Parts) - 1

	if len(vals) < markers {
		panic(Err{
			Code:  ErrCodeMissingArgument,
			While: `appending condition template`,
			Cause: errf(`template %q has %v markers but only %v values`, src, markers, len(vals)),
		})
	}
	if len(vals) > markers {
		panic(Err{
			Code:  ErrCodeUnusedArgument,
			While: `appending condition template`,
			Cause: errf(`template %q has %v markers but %v values`, src, markers, len(vals)),
		})
	}

	for ind, part := range tpl.Parts {
		text = append(text, part...)
		if ind < markers {
			text, args = ValueOf(vals[ind]).AppendTo(text, args, ModeTpl)
		}
	}
	return text, args
}

// Appends either structured conditions or a template, depending on the input.
func appendWhere(text []byte, args []any, src any, conj Conj) ([]byte, []any) {
	switch src := src.(type) {
	case Tpl:
		return AppendTpl(text, args, src.Text, src.Vals)
	case *Tpl:
		if src != nil {
			return AppendTpl(text, args, src.Text, src.Vals)
		}
	}
	return AppendConds(text, args, ColsOf(src), conj)
}
