package sqlstmt

import (
	"errors"
	"fmt"
)

// Category of an `Err`. Callers match on the `Err` variables below instead.
type ErrCode string

const (
	ErrCodeUnknown             ErrCode = ""
	ErrCodeInvalidInput        ErrCode = "InvalidInput"
	ErrCodeMissingArgument     ErrCode = "MissingArgument"
	ErrCodeClauseOrder         ErrCode = "ClauseOrder"
	ErrCodeUnexpectedParameter ErrCode = "UnexpectedParameter"
	ErrCodeUnusedArgument      ErrCode = "UnusedArgument"
	ErrCodeParamMismatch       ErrCode = "ParamMismatch"
	ErrCodeInternal            ErrCode = "Internal"
)

/*
Sentinels for `errors.Is`. Actual errors carry a `While` context and a
specific `Cause`, so they match a sentinel by code:

	if errors.Is(err, sqlstmt.ErrClauseOrder) {
		return stmt, err
	}
*/
var (
	ErrInvalidInput        = Err{Code: ErrCodeInvalidInput, Cause: errors.New(`invalid input`)}
	ErrMissingArgument     = Err{Code: ErrCodeMissingArgument, Cause: errors.New(`missing argument`)}
	ErrClauseOrder         = Err{Code: ErrCodeClauseOrder, Cause: errors.New(`clause out of order`)}
	ErrUnexpectedParameter = Err{Code: ErrCodeUnexpectedParameter, Cause: errors.New(`unexpected parameter`)}
	ErrUnusedArgument      = Err{Code: ErrCodeUnusedArgument, Cause: errors.New(`unused argument`)}
	ErrParamMismatch       = Err{Code: ErrCodeParamMismatch, Cause: errors.New(`parameters don't match arguments`)}
	ErrInternal            = Err{Code: ErrCodeInternal, Cause: errors.New(`internal error`)}
)

/*
Every builder failure is an `Err`, usually panicked and recovered by `Catch`.
`Error` renders "[sqlstmt] <code> while <context>: <cause>", omitting empty
parts.
*/
type Err struct {
	Code  ErrCode
	While string
	Cause error
}

func (self Err) Error() string {
	if self == (Err{}) {
		return ``
	}

	var buf []byte
	buf = append(buf, `[sqlstmt]`...)
	if self.Code != ErrCodeUnknown {
		buf = append(buf, ' ')
		buf = append(buf, self.Code...)
	}
	if self.While != `` {
		buf = append(buf, ` while `...)
		buf = append(buf, self.While...)
	}
	if self.Cause != nil {
		buf = append(buf, `: `...)
		buf = append(buf, self.Cause.Error()...)
	}
	return string(buf)
}

// Matches by code, then by cause.
func (self Err) Is(other error) bool {
	if val, ok := other.(Err); ok && val.Code != ErrCodeUnknown && val.Code == self.Code {
		return true
	}
	return self.Cause != nil && errors.Is(self.Cause, other)
}

func (self Err) Unwrap() error { return self.Cause }

func errf(pat string, args ...any) error { return fmt.Errorf(pat, args...) }

func errInvalid(while string, cause error) Err {
	return Err{Code: ErrCodeInvalidInput, While: while, Cause: cause}
}

func errMissingTable(while string) Err {
	return Err{
		Code:  ErrCodeMissingArgument,
		While: while,
		Cause: errors.New(`table name must be non-empty`),
	}
}

func errClauseOrder(while string, clause Clause) Err {
	return Err{
		Code:  ErrCodeClauseOrder,
		While: while,
		Cause: errf(`requires a preceding %v clause`, clause),
	}
}

/*
Converts panics raised by statement builders into a returned error. Non-error
panics are re-raised. Typical use:

	var stmt *sqlstmt.UpdateStmt
	err := sqlstmt.Catch(func() {
		stmt = sqlstmt.Update(table).Set(cols).Where(cond)
	})
*/
func Catch(fun func()) (err error) {
	defer rec(&err)
	if fun != nil {
		fun()
	}
	return
}
