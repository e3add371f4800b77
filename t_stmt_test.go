package sqlstmt

import (
	"testing"
)

func TestUpdate(t *testing.T) {
	t.Run(`set_where_returning`, func(t *testing.T) {
		stmt := Update(`foo`).
			Set(Cols{C(`a`, 1), C(`b`, 2), C(`c`, 3)}).
			Where(Cols{C(`d`, 4), C(`e`, 5)}).
			Returning(`*`)

		eq(
			t,
			rei(`UPDATE foo SET a = $1, b = $2, c = $3 WHERE d = $4 AND e = $5 RETURNING *`, 1, 2, 3, 4, 5),
			checked(t, stmt.Stmt),
		)
	})

	t.Run(`set_arrays`, func(t *testing.T) {
		stmt := Update(`foo`).Set(Cols{
			C(`a`, []int{1, 2}),
			C(`b`, [][]int{{3, 4}, {5, 6}}),
			C(`c`, nil),
		})

		eq(
			t,
			rei(`UPDATE foo SET a = ARRAY[$1, $2], b = ARRAY[ARRAY[$3, $4], ARRAY[$5, $6]], c = NULL`, 1, 2, 3, 4, 5, 6),
			checked(t, stmt.Stmt),
		)
	})

	t.Run(`where_in`, func(t *testing.T) {
		stmt := Update(`foo`).
			Set(map[string]any{`a`: 1}).
			Where(Cols{C(`id`, []int{2, 3}), C(`deleted_at`, nil)}, ConjOr).
			Returning(`id`, `a`)

		eq(
			t,
			rei(`UPDATE foo SET a = $1 WHERE id IN ($2, $3) OR deleted_at IS NULL RETURNING id, a`, 1, 2, 3),
			checked(t, stmt.Stmt),
		)
	})

	t.Run(`where_tpl`, func(t *testing.T) {
		stmt := Update(`foo`).Set(Cols{C(`a`, 1)}).WhereTpl(`id = ? OR id IN ?`, 2, []int{3, 4})
		eq(t, rei(`UPDATE foo SET a = $1 WHERE id = $2 OR id IN ($3, $4)`, 1, 2, 3, 4), checked(t, stmt.Stmt))
	})

	t.Run(`where_tpl_value`, func(t *testing.T) {
		stmt := Update(`foo`).Set(Cols{C(`a`, 1)}).Where(T(`id < ?`, 10))
		eq(t, rei(`UPDATE foo SET a = $1 WHERE id < $2`, 1, 10), checked(t, stmt.Stmt))
	})

	t.Run(`where_struct`, func(t *testing.T) {
		stmt := Update(`foo`).Set(Cols{C(`a`, 1)}).Where(&PairStruct{10, nil})
		eq(t, rei(`UPDATE foo SET a = $1 WHERE one = $2 AND two IS NULL`, 1, 10), checked(t, stmt.Stmt))
	})

	t.Run(`clause_order`, func(t *testing.T) {
		panicsWith(t, ErrClauseOrder, `requires a preceding SET clause`, func() {
			Update(`foo`).Where(Cols{C(`a`, 1)})
		})
		panicsWith(t, ErrClauseOrder, `appending WHERE to UPDATE`, func() {
			Update(`foo`).WhereTpl(`a = ?`, 1)
		})
		panicsWith(t, ErrClauseOrder, `appending RETURNING to UPDATE`, func() {
			Update(`foo`).Returning(`*`)
		})
	})

	t.Run(`table_named_like_clause`, func(t *testing.T) {
		panicsWith(t, ErrClauseOrder, `requires a preceding SET clause`, func() {
			Update(`settings`).Where(Cols{C(`a`, 1)})
		})
	})

	t.Run(`invalid`, func(t *testing.T) {
		panicsWith(t, ErrMissingArgument, `table name must be non-empty`, func() { Update(``) })
		panicsWith(t, ErrInvalidInput, `expected at least one column`, func() { Update(`foo`).Set(nil) })
		panicsWith(t, ErrMissingArgument, `expected "*" or at least one column`, func() {
			Update(`foo`).Set(Cols{C(`a`, 1)}).Returning()
		})
		panicsWith(t, ErrInvalidInput, `invalid conjunction "NAND"`, func() {
			Update(`foo`).Set(Cols{C(`a`, 1)}).Where(Cols{C(`b`, 2)}, `NAND`)
		})
		panicsWith(t, ErrInvalidInput, `invalid conjunction ""`, func() {
			Update(`foo`).Set(Cols{C(`a`, 1)}).Where(Cols{C(`b`, 2)}, ``)
		})
		panicsWith(t, ErrInvalidInput, `invalid conjunction "or"`, func() {
			Update(`foo`).Set(Cols{C(`a`, 1)}).Where(Cols{C(`b`, 2)}, `or`)
		})
		panicsWith(t, ErrInvalidInput, `expected at most one conjunction`, func() {
			Update(`foo`).Set(Cols{C(`a`, 1)}).Where(Cols{C(`b`, 2)}, ConjAnd, ConjOr)
		})
	})

	t.Run(`failed_where_is_not_appended`, func(t *testing.T) {
		stmt := Update(`foo`).Set(Cols{C(`a`, 1)})
		err := Catch(func() { stmt.WhereTpl(`b = ? AND c = ?`, 2) })

		eq(t, true, err != nil)
		eq(t, rei(`UPDATE foo SET a = $1`, 1), checked(t, stmt.Stmt))
		eq(t, false, stmt.Clauses.Has(ClauseWhere))
	})
}

func TestSelect(t *testing.T) {
	t.Run(`star`, func(t *testing.T) {
		eq(t, rei(`SELECT * FROM foo`), checked(t, Select().From(`foo`).Stmt))
	})

	t.Run(`cols`, func(t *testing.T) {
		eq(t, rei(`SELECT id, name FROM foo`), checked(t, Select(`id`, `name`).From(`foo`).Stmt))
	})

	t.Run(`where_tpl`, func(t *testing.T) {
		stmt := Select().From(`foo`).WhereTpl(`(id < ?) AND (bar = ?)`, 3, 5)
		eq(t, rei(`SELECT * FROM foo WHERE (id < $1) AND (bar = $2)`, 3, 5), checked(t, stmt.Stmt))
	})

	t.Run(`where_tpl_in`, func(t *testing.T) {
		stmt := Select().From(`foo`).WhereTpl(`id IN ?`, []int{3, 5})
		eq(t, rei(`SELECT * FROM foo WHERE id IN ($1, $2)`, 3, 5), checked(t, stmt.Stmt))
	})

	t.Run(`where_null_or`, func(t *testing.T) {
		stmt := Select().From(`foo`).Where(Cols{C(`a`, Null), C(`b`, NotNull)}, ConjOr)
		eq(t, rei(`SELECT * FROM foo WHERE a IS NULL OR b IS NOT NULL`), checked(t, stmt.Stmt))
	})

	t.Run(`where_string_conj`, func(t *testing.T) {
		stmt := Select().From(`foo`).Where(Cols{C(`a`, 1), C(`b`, 2)}, "OR")
		eq(t, rei(`SELECT * FROM foo WHERE a = $1 OR b = $2`, 1, 2), checked(t, stmt.Stmt))
	})

	t.Run(`where_empty`, func(t *testing.T) {
		eq(t, rei(`SELECT * FROM foo WHERE true`), checked(t, Select().From(`foo`).Where(nil).Stmt))
		eq(t, rei(`SELECT * FROM foo WHERE false`), checked(t, Select().From(`foo`).Where(Cols{}, ConjOr).Stmt))
	})

	t.Run(`order_limit_offset`, func(t *testing.T) {
		stmt := Select(`id`).
			From(`foo`).
			Where(Cols{C(`a`, 1)}).
			OrderBy(`created_at`, DirDesc).
			Limit(10).
			Offset(20)

		eq(
			t,
			rei(`SELECT id FROM foo WHERE a = $1 ORDER BY created_at DESC LIMIT 10 OFFSET 20`, 1),
			checked(t, stmt.Stmt),
		)
	})

	t.Run(`order_by_cols`, func(t *testing.T) {
		eq(
			t,
			rei(`SELECT * FROM foo ORDER BY one, two`),
			checked(t, Select().From(`foo`).OrderByCols([]string{`one`, `two`}).Stmt),
		)
		eq(
			t,
			rei(`SELECT * FROM foo ORDER BY one, two ASC`),
			checked(t, Select().From(`foo`).OrderByCols([]string{`one`, `two`}, "ASC").Stmt),
		)
	})

	t.Run(`limit_zero`, func(t *testing.T) {
		eq(t, rei(`SELECT * FROM foo LIMIT 0`), checked(t, Select().From(`foo`).Limit(0).Stmt))
	})

	t.Run(`clause_order`, func(t *testing.T) {
		panicsWith(t, ErrClauseOrder, `requires a preceding FROM clause`, func() { Select().Where(nil) })
		panicsWith(t, ErrClauseOrder, `appending WHERE to SELECT`, func() { Select().WhereTpl(`true`) })
		panicsWith(t, ErrClauseOrder, `appending ORDER BY to SELECT`, func() { Select().OrderBy(`id`) })
		panicsWith(t, ErrClauseOrder, `appending LIMIT to SELECT`, func() { Select().Limit(10) })
		panicsWith(t, ErrClauseOrder, `appending OFFSET to SELECT`, func() { Select().Offset(10) })
	})

	t.Run(`invalid`, func(t *testing.T) {
		panicsWith(t, ErrMissingArgument, `table name must be non-empty`, func() { Select().From(``) })
		panicsWith(t, ErrInvalidInput, `unrecognized direction "sideways"`, func() {
			Select().From(`foo`).OrderBy(`id`, `sideways`)
		})
		panicsWith(t, ErrInvalidInput, `unrecognized direction "desc"`, func() {
			Select().From(`foo`).OrderBy(`id`, `desc`)
		})
		panicsWith(t, ErrInvalidInput, `unrecognized direction ""`, func() {
			Select().From(`foo`).OrderBy(`id`, DirNone)
		})
		panicsWith(t, ErrInvalidInput, `expected at most one direction`, func() {
			Select().From(`foo`).OrderBy(`id`, DirAsc, DirDesc)
		})
		panicsWith(t, ErrMissingArgument, `expected at least one column`, func() {
			Select().From(`foo`).OrderByCols(nil)
		})
		panicsWith(t, ErrInvalidInput, `expected non-negative count, got -1`, func() {
			Select().From(`foo`).Limit(-1)
		})
		panicsWith(t, ErrInvalidInput, `expected non-negative count, got -5`, func() {
			Select().From(`foo`).Offset(-5)
		})
	})
}

func TestInsert(t *testing.T) {
	t.Run(`values_arrays`, func(t *testing.T) {
		stmt := Insert(`foo`).Values(Cols{
			C(`a`, []int{1, 2}),
			C(`b`, [][]int{{3, 4}, {5, 6}}),
			C(`c`, []int{7, 8}),
		})

		eq(
			t,
			rei(
				`INSERT INTO foo(a, b, c) VALUES(ARRAY[$1, $2], ARRAY[ARRAY[$3, $4], ARRAY[$5, $6]], ARRAY[$7, $8])`,
				1, 2, 3, 4, 5, 6, 7, 8,
			),
			checked(t, stmt.Stmt),
		)
	})

	t.Run(`values_struct_returning`, func(t *testing.T) {
		stmt := Insert(`foo`).Values(testOuter).Returning(`embed_id`, `outer_id`)

		eq(
			t,
			rei(
				`INSERT INTO foo(embed_id, embed_name, outer_id, outer_name) VALUES($1, $2, $3, $4) RETURNING embed_id, outer_id`,
				`embed id`, `embed name`, `outer id`, `outer name`,
			),
			checked(t, stmt.Stmt),
		)
	})

	t.Run(`default_values`, func(t *testing.T) {
		eq(
			t,
			rei(`INSERT INTO foo DEFAULT VALUES RETURNING *`),
			checked(t, Insert(`foo`).Values(nil).Returning(`*`).Stmt),
		)
	})

	t.Run(`invalid`, func(t *testing.T) {
		panicsWith(t, ErrMissingArgument, `building INSERT`, func() { Insert(``) })
		panicsWith(t, ErrClauseOrder, `requires a preceding VALUES clause`, func() {
			Insert(`foo`).Returning(`*`)
		})
	})
}

func TestDelete(t *testing.T) {
	t.Run(`where`, func(t *testing.T) {
		stmt := Delete(`foo`).Where(Cols{C(`a`, 1), C(`b`, 2)})
		eq(t, rei(`DELETE FROM foo WHERE a = $1 AND b = $2`, 1, 2), checked(t, stmt.Stmt))
	})

	t.Run(`where_limit_returning`, func(t *testing.T) {
		stmt := Delete(`foo`).WhereTpl(`id IN ?`, []int{1, 2}).Limit(2).Returning(`*`)
		eq(t, rei(`DELETE FROM foo WHERE id IN ($1, $2) LIMIT 2 RETURNING *`, 1, 2), checked(t, stmt.Stmt))
	})

	t.Run(`returning_without_where`, func(t *testing.T) {
		eq(t, rei(`DELETE FROM foo RETURNING id`), checked(t, Delete(`foo`).Returning(`id`).Stmt))
	})

	t.Run(`invalid`, func(t *testing.T) {
		panicsWith(t, ErrMissingArgument, `building DELETE`, func() { Delete(``) })
		panicsWith(t, ErrClauseOrder, `requires a preceding WHERE clause`, func() {
			Delete(`foo`).Limit(1)
		})
	})
}

func TestStmt(t *testing.T) {
	stmt := Select().From(`foo`).Where(Cols{C(`a`, 1)}).Stmt

	text, args := stmt.Reify()
	eq(t, `SELECT * FROM foo WHERE a = $1`, text)
	eq(t, list{1}, args)
	eq(t, nil, stmt.Check())

	eq(t, true, stmt.Clauses.Has(ClauseFrom))
	eq(t, true, stmt.Clauses.Has(ClauseWhere))
	eq(t, false, stmt.Clauses.Has(ClauseOrderBy))
}

func BenchmarkUpdate(b *testing.B) {
	set := Cols{C(`a`, 1), C(`b`, []int{2, 3}), C(`c`, nil)}
	where := Cols{C(`id`, []int{4, 5, 6})}
	b.ResetTimer()

	for ind := 0; ind < b.N; ind++ {
		_ = Update(`foo`).Set(set).Where(where).Returning(`*`)
	}
}
