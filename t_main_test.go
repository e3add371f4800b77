package sqlstmt

import (
	"database/sql/driver"
	"errors"
	"fmt"
	r "reflect"
	"runtime"
	"strings"
	"testing"
)

type list = []any

// nolint:govet
type Embed struct {
	Id        string `db:"embed_id"`
	Name      string `db:"embed_name"`
	private   string `db:"embed_private"`
	Untagged0 string ``
	Untagged1 string `db:"-"`
}

type Outer struct {
	Embed
	Id       string `db:"outer_id"`
	Name     string `db:"outer_name"`
	OnlyJson string `json:"onlyJson"`
}

var testOuter = Outer{
	Id:   `outer id`,
	Name: `outer name`,
	Embed: Embed{
		Id:        `embed id`,
		Name:      `embed name`,
		private:   `private`,
		Untagged0: `untagged 0`,
		Untagged1: `untagged 1`,
	},
}

type PairStruct struct {
	One any `db:"one"`
	Two any `db:"two"`
}

/*
Short for "reified". Pairs statement text with its args for comparison via
`eq`. Nil and empty arg lists are considered equivalent.
*/
type R struct {
	Text string
	Args list
}

func (self R) Norm() R {
	if self.Args == nil {
		self.Args = list{}
	}
	return self
}

// Short for "reified".
func rei(text string, args ...any) R { return R{text, args}.Norm() }

func reiFrom(text []byte, args []any) R {
	return R{string(text), args}.Norm()
}

func reiStmt(stmt Stmt) R { return reiFrom(stmt.Text, stmt.Args) }

func eq(t testing.TB, exp, act any) {
	t.Helper()
	if !r.DeepEqual(exp, act) {
		t.Fatalf(`
expected (detailed):
	%#[1]v
actual (detailed):
	%#[2]v
expected (simple):
	%[1]v
actual (simple):
	%[2]v
`, exp, act)
	}
}

func panics(t testing.TB, msg string, fun func()) {
	t.Helper()
	val := catchAny(fun)

	if val == nil {
		t.Fatalf(`expected %v to panic, found no panic`, funcName(fun))
	}

	str := fmt.Sprint(val)
	if !strings.Contains(str, msg) {
		t.Fatalf(
			`expected %v to panic with a message containing %q, found %q`,
			funcName(fun), msg, str,
		)
	}
}

// Same as `panics`, but also requires the panic to match the given error.
func panicsWith(t testing.TB, exp error, msg string, fun func()) {
	t.Helper()
	panics(t, msg, fun)

	err := Catch(fun)
	if !errors.Is(err, exp) {
		t.Fatalf(`expected %v to panic with %q, found %q`, funcName(fun), exp, err)
	}
}

func funcName(val any) string {
	return runtime.FuncForPC(r.ValueOf(val).Pointer()).Name()
}

func catchAny(fun func()) (val any) {
	defer recAny(&val)
	fun()
	return
}

func recAny(ptr *any) { *ptr = recover() }

/*
Verifies the round-trip property: every `$N` in the text is exactly `$1` to
`$len(args)`, each used.
*/
func checked(t testing.TB, stmt Stmt) R {
	t.Helper()
	if err := stmt.Check(); err != nil {
		t.Fatalf(`unexpected parameter mismatch in %q: %v`, stmt.String(), err)
	}
	return reiStmt(stmt)
}

var (
	_ driver.Valuer = FakeValuer{}
	_ driver.Valuer = FailingValuer{}
)

type FakeValuer struct{ Val any }

func (self FakeValuer) Value() (driver.Value, error) { return self.Val, nil }

type FailingValuer struct{}

func (FailingValuer) Value() (driver.Value, error) { return nil, errors.New(`valuer failure`) }
