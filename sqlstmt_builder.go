package sqlstmt

/*
Builder for `UPDATE <table> SET ... [WHERE ...] [RETURNING ...]`. Panics with
`ErrMissingArgument` if the table is empty.

	stmt := Update(`users`).
		Set(Cols{C(`email`, `one@example.com`)}).
		Where(Cols{C(`id`, 10)}).
		Returning(`*`)

	text, args := stmt.Reify()
	// UPDATE users SET email = $1 WHERE id = $2 RETURNING *
	// [one@example.com 10]
*/
func Update(table string) *UpdateStmt {
	reqTable(`building UPDATE`, table)
	var out UpdateStmt
	out.keyword(`UPDATE`)
	out.Text = append(out.Text, table...)
	return &out
}

type UpdateStmt struct{ Stmt }

/*
Appends `SET col = val, ...`. The source is anything accepted by `ColsOf`.
Panics with `ErrInvalidInput` if there are no columns.
*/
func (self *UpdateStmt) Set(src any) *UpdateStmt {
	cols := ColsOf(src)
	if len(cols) == 0 {
		panic(errInvalid(`appending SET`, errf(`expected at least one column`)))
	}
	self.keyword(`SET`)
	self.Text, self.Args = AppendAssigns(self.Text, self.Args, cols)
	self.mark(ClauseSet)
	return self
}

/*
Appends `WHERE` with structured conditions joined by the optional conjunction
(default `ConjAnd`), or with a `Tpl`. Requires `SET`.
*/
func (self *UpdateStmt) Where(src any, conj ...Conj) *UpdateStmt {
	self.require(`appending WHERE to UPDATE`, ClauseSet)
	self.where(`appending WHERE to UPDATE`, src, conj)
	return self
}

// Appends `WHERE` with a condition template. Requires `SET`.
func (self *UpdateStmt) WhereTpl(src string, vals ...any) *UpdateStmt {
	self.require(`appending WHERE to UPDATE`, ClauseSet)
	self.whereTpl(src, vals)
	return self
}

// Appends `RETURNING` with "*" or the given columns. Requires `SET`.
func (self *UpdateStmt) Returning(cols ...string) *UpdateStmt {
	self.require(`appending RETURNING to UPDATE`, ClauseSet)
	self.returning(`appending RETURNING to UPDATE`, cols)
	return self
}

/*
Builder for `SELECT <cols> FROM <table> [WHERE ...] [ORDER BY ...] [LIMIT n]
[OFFSET n]`. Without columns, selects `*`.
*/
func Select(cols ...string) *SelectStmt {
	var out SelectStmt
	out.keyword(`SELECT`)
	if len(cols) == 0 {
		out.Text = append(out.Text, '*')
	} else {
		out.Text = appendJoined(out.Text, `, `, cols)
	}
	return &out
}

type SelectStmt struct{ Stmt }

// Appends `FROM <table>`. Panics with `ErrMissingArgument` if the table is
// empty.
func (self *SelectStmt) From(table string) *SelectStmt {
	reqTable(`appending FROM to SELECT`, table)
	self.keyword(`FROM`)
	self.Text = append(self.Text, table...)
	self.mark(ClauseFrom)
	return self
}

// Same as `UpdateStmt.Where`, but requires `FROM`.
func (self *SelectStmt) Where(src any, conj ...Conj) *SelectStmt {
	self.require(`appending WHERE to SELECT`, ClauseFrom)
	self.where(`appending WHERE to SELECT`, src, conj)
	return self
}

// Appends `WHERE` with a condition template. Requires `FROM`.
func (self *SelectStmt) WhereTpl(src string, vals ...any) *SelectStmt {
	self.require(`appending WHERE to SELECT`, ClauseFrom)
	self.whereTpl(src, vals)
	return self
}

// Shortcut for `OrderByCols` with a single column.
func (self *SelectStmt) OrderBy(col string, dir ...Dir) *SelectStmt {
	return self.OrderByCols([]string{col}, dir...)
}

/*
Appends `ORDER BY` with the columns and the optional direction, which applies
to the last column. Requires `FROM`. Panics with `ErrInvalidInput` on an
unknown direction.
*/
func (self *SelectStmt) OrderByCols(cols []string, dir ...Dir) *SelectStmt {
	const while = `appending ORDER BY to SELECT`
	self.require(while, ClauseFrom)

	val := optDir(while, dir)
	if len(cols) == 0 {
		panic(Err{
			Code:  ErrCodeMissingArgument,
			While: while,
			Cause: errf(`expected at least one column`),
		})
	}

	self.keyword(`ORDER BY`)
	self.Text = appendJoined(self.Text, `, `, cols)
	if val != DirNone {
		self.Text = append(self.Text, ' ')
		self.Text = append(self.Text, string(val)...)
	}
	self.mark(ClauseOrderBy)
	return self
}

// Appends `LIMIT <count>` as a literal. Requires `FROM`.
func (self *SelectStmt) Limit(count int) *SelectStmt {
	self.require(`appending LIMIT to SELECT`, ClauseFrom)
	self.limit(`appending LIMIT to SELECT`, `LIMIT`, ClauseLimit, count)
	return self
}

// Appends `OFFSET <count>` as a literal. Requires `FROM`.
func (self *SelectStmt) Offset(count int) *SelectStmt {
	self.require(`appending OFFSET to SELECT`, ClauseFrom)
	self.limit(`appending OFFSET to SELECT`, `OFFSET`, ClauseOffset, count)
	return self
}

/*
Builder for `INSERT INTO <table>(cols) VALUES(...) [RETURNING ...]`. Panics
with `ErrMissingArgument` if the table is empty.
*/
func Insert(table string) *InsertStmt {
	reqTable(`building INSERT`, table)
	var out InsertStmt
	out.keyword(`INSERT INTO`)
	out.Text = append(out.Text, table...)
	return &out
}

type InsertStmt struct{ Stmt }

/*
Appends the column list and `VALUES(...)`. The source is anything accepted by
`ColsOf`. Without columns, appends `DEFAULT VALUES`.
*/
func (self *InsertStmt) Values(src any) *InsertStmt {
	self.Text, self.Args = AppendInsert(self.Text, self.Args, ColsOf(src))
	self.mark(ClauseValues)
	return self
}

// Appends `RETURNING` with "*" or the given columns. Requires `VALUES`.
func (self *InsertStmt) Returning(cols ...string) *InsertStmt {
	self.require(`appending RETURNING to INSERT`, ClauseValues)
	self.returning(`appending RETURNING to INSERT`, cols)
	return self
}

/*
Builder for `DELETE FROM <table> [WHERE ...] [LIMIT n] [RETURNING ...]`.
Panics with `ErrMissingArgument` if the table is empty.
*/
func Delete(table string) *DeleteStmt {
	reqTable(`building DELETE`, table)
	var out DeleteStmt
	out.keyword(`DELETE FROM`)
	out.Text = append(out.Text, table...)
	return &out
}

type DeleteStmt struct{ Stmt }

// Same as `UpdateStmt.Where`, without any requirement.
func (self *DeleteStmt) Where(src any, conj ...Conj) *DeleteStmt {
	self.where(`appending WHERE to DELETE`, src, conj)
	return self
}

// Appends `WHERE` with a condition template.
func (self *DeleteStmt) WhereTpl(src string, vals ...any) *DeleteStmt {
	self.whereTpl(src, vals)
	return self
}

// Appends `LIMIT <count>` as a literal. Requires `WHERE`.
func (self *DeleteStmt) Limit(count int) *DeleteStmt {
	self.require(`appending LIMIT to DELETE`, ClauseWhere)
	self.limit(`appending LIMIT to DELETE`, `LIMIT`, ClauseLimit, count)
	return self
}

// Appends `RETURNING` with "*" or the given columns.
func (self *DeleteStmt) Returning(cols ...string) *DeleteStmt {
	self.returning(`appending RETURNING to DELETE`, cols)
	return self
}
