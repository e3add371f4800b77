/*
Command `sqlstmt` renders statement descriptions written in YAML into
parameterized SQL and its ordered arguments. Example input:

	update: users
	set:
	  email: one@example.com
	  tags: [a, b]
	where:
	  id: 10
	returning: '*'

Output:

	UPDATE users SET email = $1, tags = ARRAY[$2, $3] WHERE id = $4 RETURNING *
	$1 = "one@example.com"
	$2 = "a"
	$3 = "b"
	$4 = 10
*/
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	s "github.com/mitranim/sqlstmt"
)

const (
	formatText = `text`
	formatJSON = `json`
)

type renderOpts struct {
	Format  string
	Check   bool
	NoColor bool
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           `sqlstmt`,
		Short:         `Render parameterized SQL statements from YAML descriptions`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(renderCmd())
	return cmd
}

func renderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   `render [file|-]`,
		Short: `Render one statement description; reads stdin when the file is "-" or omitted`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.NoColor {
				color.NoColor = true
			}

			src, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), src, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.Format, `format`, `f`, formatText, `output format: "text" or "json"`)
	flags.BoolVar(&opts.Check, `check`, false, `verify placeholder/argument correspondence of the output`)
	flags.BoolVar(&opts.NoColor, `no-color`, false, `disable colored output`)
	return cmd
}

func readInput(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == `-` {
		src, err := io.ReadAll(stdin)
		return src, errors.Wrap(err, `reading stdin`)
	}
	src, err := os.ReadFile(args[0])
	return src, errors.Wrapf(err, `reading %q`, args[0])
}

func render(out io.Writer, src []byte, opts renderOpts) error {
	if opts.Format != formatText && opts.Format != formatJSON {
		return errors.Errorf(`unknown format %q, expected "text" or "json"`, opts.Format)
	}

	doc, err := decodeDoc(src)
	if err != nil {
		return err
	}

	stmt, err := doc.build()
	if err != nil {
		return errors.Wrapf(err, `building %v statement`, doc.Kind)
	}

	if opts.Check {
		if err := stmt.Check(); err != nil {
			return err
		}
	}

	if opts.Format == formatJSON {
		return writeJSON(out, stmt)
	}
	return writeText(out, stmt)
}

type jsonStmt struct {
	Text string `json:"text"`
	Args []any  `json:"args"`
}

func writeJSON(out io.Writer, stmt s.Stmt) error {
	text, args := stmt.Reify()
	if args == nil {
		args = []any{}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent(``, `  `)
	return errors.Wrap(enc.Encode(jsonStmt{text, args}), `encoding JSON`)
}

func writeText(out io.Writer, stmt s.Stmt) error {
	sql := color.New(color.FgCyan, color.Bold)
	ord := color.New(color.FgYellow)

	if _, err := sql.Fprintln(out, stmt.String()); err != nil {
		return errors.WithStack(err)
	}
	for ind, arg := range stmt.Args {
		_, err := fmt.Fprintf(out, "%v = %#v\n", ord.Sprintf(`$%d`, ind+1), arg)
		if err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
