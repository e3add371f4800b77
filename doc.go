/*
Parameterized SQL statement builder. Builds `insert`, `update`, `select` and
`delete` statements from structured columns, values and conditions, producing
SQL text with Postgres-style ordinal parameters such as "$1" and the matching
argument list.

Key Features

• One shared, append-only argument list per statement. Every clause allocates
placeholders from it, so numbering is always contiguous: `$1` through `$N`.

• Explicit value kinds: scalars, `Null`, `NotNull` and arrays of any depth. See
`Value` and `ValueOf`.

• Context-sensitive arrays: `ARRAY[...]` in `set` and `values`, `IN (...)` in
structured `where` conditions, a parenthesized list in `where` templates.

• Two forms of `where`: ordered columns joined by `AND`/`OR`, or a template
with "?" markers.

Column and table names are trusted literals. They are never quoted or escaped.

Errors

Builder methods panic with `Err` on programmer errors such as a missing table
or a clause used out of order. Use `Catch` to convert such panics to errors.

Examples

See `Update`, `Select`, `Insert`, `Delete` and the package examples.
*/
package sqlstmt
