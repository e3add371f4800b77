package sqlstmt

import (
	"github.com/mitranim/sqlp"
)

/*
Verifies that the ordinal parameters in `text` are exactly `$1` through
`$argCount`: every argument is referenced, and no parameter exceeds the
argument count. Parameters inside quoted strings and comments are ignored.
Returns an `ErrParamMismatch` describing the first problem found.

Statements built by this package always satisfy this check. It's useful for
guarding hand-written fragments mixed into templates, and in tests.
*/
func CheckParams(text string, argCount int) (err error) {
	defer rec(&err)

	used := make([]bool, argCount)
	tokenizer := sqlp.Tokenizer{Source: text}

	for {
		node := tokenizer.Next()
		if node == nil {
			break
		}

		param, ok := node.(sqlp.NodeOrdinalParam)
		if !ok {
			continue
		}

		index := param.Index()
		if index < 0 || index >= argCount {
			return Err{
				Code:  ErrCodeParamMismatch,
				While: `checking parameters`,
				Cause: errf(`parameter $%d exceeds argument count %v`, int(param), argCount),
			}
		}
		used[index] = true
	}

	for index, ok := range used {
		if !ok {
			return Err{
				Code:  ErrCodeParamMismatch,
				While: `checking parameters`,
				Cause: errf(`argument %v has no parameter $%d`, index, index+1),
			}
		}
	}
	return nil
}
