package sqlstmt

import (
	"strconv"
)

/*
Accumulator shared by every clause of one statement. `.Text` is the SQL text
built so far, `.Args` the bound values in placeholder order: `.Args[i]` is
bound to `$i+1`. Clause methods only ever append to both.

A statement is owned by one caller and must not be used concurrently.
*/
type Stmt struct {
	Text    []byte
	Args    []any
	Clauses Clause
}

// Returns inner text as a string, performing a free cast.
func (self Stmt) String() string { return bytesToMutableString(self.Text) }

// Shortcut for `self.String(), self.Args`. Go database drivers tend to require
// `string, []any` as inputs for queries and statements.
func (self Stmt) Reify() (string, []any) { return self.String(), self.Args }

// Verifies the placeholder/argument correspondence via `CheckParams`.
func (self Stmt) Check() error { return CheckParams(self.String(), len(self.Args)) }

/*
Appends the value's scalars to `.Args`, returning the SQL fragment without
appending it to `.Text`. Requires caution: the caller must splice the fragment
into the text, otherwise placeholders and arguments diverge.
*/
func (self *Stmt) Alloc(val Value, mode Mode) string { return Alloc(val, mode, &self.Args) }

func (self *Stmt) keyword(val string) { self.Text = appendClause(self.Text, val) }

func (self *Stmt) appendInt(val int) { self.Text = strconv.AppendInt(self.Text, int64(val), 10) }

func (self *Stmt) require(while string, clause Clause) {
	if !self.Clauses.Has(clause) {
		panic(errClauseOrder(while, clause))
	}
}

func (self *Stmt) mark(clause Clause) { self.Clauses |= clause }

// Clause text is built on copies and committed only when rendering succeeds.
func (self *Stmt) where(while string, src any, conj []Conj) {
	con := optConj(while, conj)
	text, args := appendWhere(appendClause(self.Text, `WHERE`), self.Args, src, con)
	self.Text, self.Args = text, args
	self.mark(ClauseWhere)
}

func (self *Stmt) whereTpl(src string, vals []any) {
	text, args := AppendTpl(appendClause(self.Text, `WHERE`), self.Args, src, vals)
	self.Text, self.Args = text, args
	self.mark(ClauseWhere)
}

func (self *Stmt) returning(while string, cols []string) {
	if len(cols) == 0 {
		panic(Err{
			Code:  ErrCodeMissingArgument,
			While: while,
			Cause: errf(`expected "*" or at least one column`),
		})
	}
	self.keyword(`RETURNING`)
	self.Text = appendJoined(self.Text, `, `, cols)
	self.mark(ClauseReturning)
}

func (self *Stmt) limit(while, keyword string, clause Clause, val int) {
	if val < 0 {
		panic(errInvalid(while, errf(`expected non-negative count, got %v`, val)))
	}
	self.keyword(keyword)
	self.appendInt(val)
	self.mark(clause)
}

func reqTable(while, table string) {
	if table == `` {
		panic(errMissingTable(while))
	}
}
