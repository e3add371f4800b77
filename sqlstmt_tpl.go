package sqlstmt

import (
	"github.com/mitranim/sqlp"
)

/*
Preparsed condition template: the text between `?` markers. A template with N
markers has N+1 parts. Parts never contain markers; escaped `??` are already
collapsed into a single `?`.
*/
type ParsedTpl struct {
	Source string
	Parts  []string
}

// Number of `?` markers in the template.
func (self ParsedTpl) Markers() int { return len(self.Parts) - 1 }

/*
Parses the template, splitting it on `?` markers. Uses the SQL tokenizer to
skip quoted strings, quoted identifiers and comments, so markers there are left
as-is. Panics with `ErrUnexpectedParameter` on ordinal parameters such as `$1`,
which would collide with allocated placeholders, and with `ErrInvalidInput` if
the template ends inside a quote or a block comment.
*/
func ParseTpl(src string) ParsedTpl {
	tokenizer := sqlp.Tokenizer{Source: src}
	var buf []byte
	var parts []string
	var size int

	for {
		node := tokenizer.Next()
		if node == nil {
			break
		}

		switch node := node.(type) {
		case sqlp.NodeText:
			chunk := string(node)
			size += len(chunk)
			for ind := 0; ind < len(chunk); ind++ {
				char := chunk[ind]
				if char != tplMarker {
					buf = append(buf, char)
					continue
				}
				if ind+1 < len(chunk) && chunk[ind+1] == tplMarker {
					buf = append(buf, tplMarker)
					ind++
					continue
				}
				parts = append(parts, string(buf))
				buf = buf[:0]
			}

		case sqlp.NodeOrdinalParam:
			panic(Err{
				Code:  ErrCodeUnexpectedParameter,
				While: `parsing condition template`,
				Cause: errf(`expected only "?" markers, got ordinal param $%d in %q`, int(node), src),
			})

		default:
			start := len(buf)
			node.Append(&buf)
			size += len(buf) - start
		}
	}

	// The tokenizer closes unterminated quotes and comments on output.
	if size != len(src) {
		panic(Err{
			Code:  ErrCodeInvalidInput,
			While: `parsing condition template`,
			Cause: errf(`unterminated quote or comment in %q`, src),
		})
	}

	return ParsedTpl{Source: src, Parts: append(parts, string(buf))}
}

var tplCache = cacheOf(ParseTpl)

/*
Returns a parsed template for the given source, caching it for future calls.
Used internally by `AppendTpl`.
*/
func preparse(src string) ParsedTpl { return tplCache.Get(src) }
