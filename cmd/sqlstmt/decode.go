package main

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	s "github.com/mitranim/sqlstmt"
)

// Exact scalar text standing for `sqlstmt.NotNull` in value positions.
const notNullText = `NOT NULL`

/*
Statement description decoded from one YAML document. Columns are kept in
document order, which determines placeholder numbering.
*/
type stmtDoc struct {
	Kind      string
	Table     string
	Cols      []string
	Set       s.Cols
	Values    s.Cols
	Where     s.Cols
	HasWhere  bool
	Conj      s.Conj
	Tpl       *s.Tpl
	OrderBy   []string
	Dir       s.Dir
	Limit     *int
	Offset    *int
	Returning []string
}

type tplDoc struct {
	Text string      `yaml:"text"`
	Vals []yaml.Node `yaml:"vals"`
}

func decodeDoc(src []byte) (*stmtDoc, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(src, &root); err != nil {
		return nil, errors.Wrap(err, `decoding YAML`)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) != 1 {
		return nil, errors.New(`expected a single YAML document`)
	}
	return decodeStmt(root.Content[0])
}

func decodeStmt(node *yaml.Node) (*stmtDoc, error) {
	node = deref(node)
	if node.Kind != yaml.MappingNode {
		return nil, errorAt(node, `expected a mapping`)
	}

	var out stmtDoc
	for ind := 0; ind+1 < len(node.Content); ind += 2 {
		key, val := node.Content[ind].Value, deref(node.Content[ind+1])
		if err := out.decodeField(key, val); err != nil {
			return nil, errors.Wrapf(err, `field %q`, key)
		}
	}

	if out.Kind == `` {
		return nil, errors.New(`expected one of "update", "select", "insert", "delete"`)
	}
	if out.HasWhere && out.Tpl != nil {
		return nil, errors.New(`"where" and "where_tpl" are mutually exclusive`)
	}
	return &out, nil
}

func (self *stmtDoc) decodeField(key string, val *yaml.Node) (err error) {
	switch key {
	case `update`, `insert`, `delete`:
		if err = self.setKind(key); err == nil {
			err = val.Decode(&self.Table)
		}
	case `select`:
		if err = self.setKind(key); err == nil {
			self.Cols, err = decodeStrings(val)
		}
	case `from`:
		err = val.Decode(&self.Table)
	case `set`:
		self.Set, err = decodeCols(val)
	case `values`:
		self.Values, err = decodeCols(val)
	case `where`:
		self.HasWhere = true
		self.Where, err = decodeCols(val)
	case `conj`:
		err = val.Decode(&self.Conj)
	case `where_tpl`:
		self.Tpl, err = decodeTpl(val)
	case `order_by`:
		self.OrderBy, err = decodeStrings(val)
	case `dir`:
		err = val.Decode(&self.Dir)
	case `limit`:
		err = val.Decode(&self.Limit)
	case `offset`:
		err = val.Decode(&self.Offset)
	case `returning`:
		self.Returning, err = decodeStrings(val)
	default:
		err = errorAt(val, `unknown field`)
	}
	return
}

func (self *stmtDoc) setKind(kind string) error {
	if self.Kind != `` {
		return errors.Errorf(`statement kind already set to %q`, self.Kind)
	}
	self.Kind = kind
	return nil
}

func decodeTpl(node *yaml.Node) (*s.Tpl, error) {
	var doc tplDoc
	if err := node.Decode(&doc); err != nil {
		return nil, err
	}

	vals := make([]any, len(doc.Vals))
	for ind := range doc.Vals {
		val, err := decodeValue(&doc.Vals[ind])
		if err != nil {
			return nil, err
		}
		vals[ind] = val
	}
	return &s.Tpl{Text: doc.Text, Vals: vals}, nil
}

// Accepts null, a single string, or a sequence of strings.
func decodeStrings(node *yaml.Node) ([]string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == `!!null` {
			return nil, nil
		}
		return []string{node.Value}, nil
	case yaml.SequenceNode:
		var out []string
		err := node.Decode(&out)
		return out, err
	default:
		return nil, errorAt(node, `expected a string or a sequence of strings`)
	}
}

func decodeCols(node *yaml.Node) (s.Cols, error) {
	if node.Kind != yaml.MappingNode {
		return nil, errorAt(node, `expected a mapping of columns`)
	}

	out := make(s.Cols, 0, len(node.Content)/2)
	for ind := 0; ind+1 < len(node.Content); ind += 2 {
		val, err := decodeValue(node.Content[ind+1])
		if err != nil {
			return nil, errors.Wrapf(err, `column %q`, node.Content[ind].Value)
		}
		out = append(out, s.Col{Name: node.Content[ind].Value, Val: val})
	}
	return out, nil
}

/*
YAML null is `sqlstmt.Null`, the exact string "NOT NULL" is `sqlstmt.NotNull`,
sequences are arrays, other scalars are bound as decoded by YAML.
*/
func decodeValue(node *yaml.Node) (s.Value, error) {
	node = deref(node)

	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == `!!null` {
			return s.Null, nil
		}
		if node.Tag == `!!str` && node.Value == notNullText {
			return s.NotNull, nil
		}
		var val any
		if err := node.Decode(&val); err != nil {
			return s.Value{}, err
		}
		return s.Scalar(val), nil

	case yaml.SequenceNode:
		items := make([]s.Value, len(node.Content))
		for ind, child := range node.Content {
			val, err := decodeValue(child)
			if err != nil {
				return s.Value{}, err
			}
			items[ind] = val
		}
		return s.Array(items...), nil

	default:
		return s.Value{}, errorAt(node, `expected a scalar, null or sequence`)
	}
}

func deref(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func errorAt(node *yaml.Node, msg string) error {
	return errors.Errorf(`line %v, column %v: %v`, node.Line, node.Column, msg)
}
