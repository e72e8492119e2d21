package pith

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
)

// Encoding selects the serialization of an encoded tree.
type Encoding int

const (
	EncodingJSON Encoding = iota
	EncodingYAML
)

func (e Encoding) String() string {
	switch e {
	case EncodingJSON:
		return "json"
	case EncodingYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// wireNode is the encoded form of every node. Which fields are meaningful
// depends on Kind.
type wireNode struct {
	Kind        string            `json:"kind"`
	Name        json.RawMessage   `json:"name,omitempty"`
	Parameters  []json.RawMessage `json:"parameters,omitempty"`
	Function    json.RawMessage   `json:"function,omitempty"`
	Arguments   []json.RawMessage `json:"arguments,omitempty"`
	Condition   json.RawMessage   `json:"condition,omitempty"`
	Consequence json.RawMessage   `json:"consequence,omitempty"`
	Alternative json.RawMessage   `json:"alternative,omitempty"`
	Left        json.RawMessage   `json:"left,omitempty"`
	Operator    string            `json:"operator,omitempty"`
	Right       json.RawMessage   `json:"right,omitempty"`
	Value       json.RawMessage   `json:"value,omitempty"`
	Body        json.RawMessage   `json:"body,omitempty"`
	Statements  []json.RawMessage `json:"statements,omitempty"`
}

// nodeKinds maps each kind name to a constructor for its node type.
var nodeKinds = map[string]func() Node{}

// kindFields lists the wire fields each kind may set, besides "kind".
var kindFields = map[string][]string{}

func init() {
	for _, k := range []struct {
		proto  Node
		fields []string
	}{
		{&Program{}, []string{"statements"}},
		{&Let{}, []string{"name", "value"}},
		{&Return{}, []string{"value"}},
		{&Terminating{}, []string{"value"}},
		{&NonTerminating{}, []string{"value"}},
		{&Identifier{}, []string{"value"}},
		{&Int{}, []string{"value"}},
		{&Boolean{}, []string{"value"}},
		{&NoneLiteral{}, nil},
		{&Function{}, []string{"parameters", "body"}},
		{&If{}, []string{"condition", "consequence", "alternative"}},
		{&Call{}, []string{"function", "arguments"}},
		{&Block{}, []string{"statements"}},
		{&Prefix{}, []string{"operator", "right"}},
		{&Infix{}, []string{"left", "operator", "right"}},
	} {
		rt := reflect.TypeOf(k.proto).Elem()
		kind := KindOf(k.proto)
		nodeKinds[kind] = func() Node {
			return reflect.New(rt).Interface().(Node)
		}
		kindFields[kind] = k.fields
	}
}

// setFields returns the wire names of every field w carries a value for,
// in declaration order. A JSON null counts as no value.
func setFields(w *wireNode) []string {
	rv := reflect.ValueOf(w).Elem()
	rt := rv.Type()
	var fields []string
	for i := 0; i < rt.NumField(); i++ {
		name, _, _ := strings.Cut(rt.Field(i).Tag.Get("json"), ",")
		if name == "kind" {
			continue
		}
		field := rv.Field(i)
		if raw, ok := field.Interface().(json.RawMessage); ok {
			if !present(raw) {
				continue
			}
		} else if field.Len() == 0 {
			continue
		}
		fields = append(fields, name)
	}
	return fields
}

// KindOf returns the encoded kind name of node, e.g. "non_terminating".
func KindOf(node Node) string {
	rt := reflect.TypeOf(node)
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	return strcase.ToSnake(rt.Name())
}

// MarshalProgram encodes a program as indented JSON. A tree with a required
// node missing fails with *EncodeError instead of producing output that
// would not decode.
func MarshalProgram(prog *Program) ([]byte, error) {
	raw, err := encodeNode(prog, "")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, errors.Wrap(err, "indent")
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// UnmarshalProgram decodes a JSON-encoded program.
func UnmarshalProgram(data []byte) (*Program, error) {
	return DecodeProgram(data, EncodingJSON)
}

// DecodeProgram decodes a program encoded as JSON or YAML. Failures are
// reported as *DecodeError.
func DecodeProgram(data []byte, enc Encoding) (*Program, error) {
	switch enc {
	case EncodingJSON:
	case EncodingYAML:
		converted, err := yaml.YAMLToJSON(data)
		if err != nil {
			return nil, errors.Wrap(err, "converting yaml")
		}
		data = converted
	default:
		return nil, errors.Errorf("unsupported encoding: %s", enc)
	}

	node, err := decodeNode(data, "")
	if err != nil {
		return nil, err
	}
	prog, ok := node.(*Program)
	if !ok {
		return nil, decodeErr("", errors.Wrapf(ErrWrongKind, "expected program, got %s", KindOf(node)))
	}
	return prog, nil
}

func encodeNode(node Node, path string) (json.RawMessage, error) {
	if missing(node) {
		return nil, encodeErr(path, ErrMissingField)
	}
	w := wireNode{Kind: KindOf(node)}

	var err error
	switch n := node.(type) {
	case *Program:
		w.Statements, err = encodeStatements(n.Statements, path+"/statements")
	case *Let:
		if w.Name, err = encodeNode(n.Name, path+"/name"); err == nil {
			w.Value, err = encodeNode(n.Value, path+"/value")
		}
	case *Return:
		w.Value, err = encodeOptional(n.Value, path+"/value")
	case *Terminating:
		w.Value, err = encodeNode(n.Value, path+"/value")
	case *NonTerminating:
		w.Value, err = encodeNode(n.Value, path+"/value")
	case *Identifier:
		w.Value, err = marshalJSON(n.Value)
	case *Int:
		w.Value, err = marshalJSON(n.Value)
	case *Boolean:
		w.Value, err = marshalJSON(n.Value)
	case *NoneLiteral:
	case *Function:
		for i, param := range n.Parameters {
			var raw json.RawMessage
			if raw, err = encodeNode(param, fmt.Sprintf("%s/parameters/%d", path, i)); err != nil {
				break
			}
			w.Parameters = append(w.Parameters, raw)
		}
		if err == nil {
			w.Body, err = encodeNode(n.Body, path+"/body")
		}
	case *If:
		if w.Condition, err = encodeNode(n.Condition, path+"/condition"); err != nil {
			break
		}
		if w.Consequence, err = encodeNode(n.Consequence, path+"/consequence"); err != nil {
			break
		}
		w.Alternative, err = encodeOptional(n.Alternative, path+"/alternative")
	case *Call:
		if w.Function, err = encodeNode(n.Function, path+"/function"); err != nil {
			break
		}
		for i, arg := range n.Arguments {
			var raw json.RawMessage
			if raw, err = encodeNode(arg, fmt.Sprintf("%s/arguments/%d", path, i)); err != nil {
				break
			}
			w.Arguments = append(w.Arguments, raw)
		}
	case *Block:
		w.Statements, err = encodeStatements(n.Statements, path+"/statements")
	case *Prefix:
		if !n.Operator.IsValid() {
			err = encodeErr(path+"/operator", errors.Wrapf(ErrUnknownOperator, "prefix operator %d", int(n.Operator)))
			break
		}
		w.Operator = n.Operator.String()
		w.Right, err = encodeNode(n.Right, path+"/right")
	case *Infix:
		if w.Left, err = encodeNode(n.Left, path+"/left"); err != nil {
			break
		}
		if !n.Operator.IsValid() {
			err = encodeErr(path+"/operator", errors.Wrapf(ErrUnknownOperator, "infix operator %d", int(n.Operator)))
			break
		}
		w.Operator = n.Operator.String()
		w.Right, err = encodeNode(n.Right, path+"/right")
	default:
		return nil, encodeErr(path, errors.Errorf("encode: unhandled node type %T", node))
	}
	if err != nil {
		return nil, encodeErr(path, err)
	}
	return marshalJSON(w)
}

// marshalJSON encodes v without escaping <, > and &, which appear in
// operator symbols.
func marshalJSON(v any) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func encodeOptional(node Node, path string) (json.RawMessage, error) {
	if missing(node) {
		return nil, nil
	}
	return encodeNode(node, path)
}

func encodeStatements(stmts []Statement, path string) ([]json.RawMessage, error) {
	raws := make([]json.RawMessage, 0, len(stmts))
	for i, stmt := range stmts {
		raw, err := encodeNode(stmt, fmt.Sprintf("%s/%d", path, i))
		if err != nil {
			return nil, err
		}
		raws = append(raws, raw)
	}
	return raws, nil
}

func decodeNode(data []byte, path string) (Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var w wireNode
	if err := dec.Decode(&w); err != nil {
		return nil, decodeErr(path, errors.Wrap(err, "malformed node"))
	}
	if w.Kind == "" {
		return nil, decodeErr(path, errors.Wrap(ErrMissingField, "kind"))
	}
	ctor, ok := nodeKinds[w.Kind]
	if !ok {
		return nil, decodeErr(path, errors.Wrapf(ErrUnknownKind, "%q", w.Kind))
	}
	for _, field := range setFields(&w) {
		if !slices.Contains(kindFields[w.Kind], field) {
			return nil, decodeErr(path+"/"+field, errors.Wrapf(ErrUnexpectedField, "%s has no %s", w.Kind, field))
		}
	}

	node := ctor()
	var err error
	switch n := node.(type) {
	case *Program:
		n.Statements, err = decodeStatements(w.Statements, path+"/statements")
	case *Let:
		if n.Name, err = decodeIdentifier(w.Name, path+"/name"); err != nil {
			break
		}
		n.Value, err = decodeRequiredExpression(w.Value, path, "value")
	case *Return:
		if present(w.Value) {
			n.Value, err = decodeExpression(w.Value, path+"/value")
		}
	case *Terminating:
		n.Value, err = decodeRequiredExpression(w.Value, path, "value")
	case *NonTerminating:
		n.Value, err = decodeRequiredExpression(w.Value, path, "value")
	case *Identifier:
		err = decodeScalar(w.Value, path, &n.Value)
	case *Int:
		err = decodeScalar(w.Value, path, &n.Value)
	case *Boolean:
		err = decodeScalar(w.Value, path, &n.Value)
	case *NoneLiteral:
	case *Function:
		for i, raw := range w.Parameters {
			var param *Identifier
			if param, err = decodeIdentifier(raw, fmt.Sprintf("%s/parameters/%d", path, i)); err != nil {
				break
			}
			n.Parameters = append(n.Parameters, param)
		}
		if err == nil {
			n.Body, err = decodeBlock(w.Body, path, "body")
		}
	case *If:
		if n.Condition, err = decodeRequiredExpression(w.Condition, path, "condition"); err != nil {
			break
		}
		if n.Consequence, err = decodeBlock(w.Consequence, path, "consequence"); err != nil {
			break
		}
		if present(w.Alternative) {
			n.Alternative, err = decodeBlock(w.Alternative, path, "alternative")
		}
	case *Call:
		if n.Function, err = decodeCallable(w.Function, path, "function"); err != nil {
			break
		}
		for i, raw := range w.Arguments {
			var arg Expression
			if arg, err = decodeExpression(raw, fmt.Sprintf("%s/arguments/%d", path, i)); err != nil {
				break
			}
			n.Arguments = append(n.Arguments, arg)
		}
	case *Block:
		n.Statements, err = decodeStatements(w.Statements, path+"/statements")
	case *Prefix:
		if n.Operator, err = ParsePrefixOperator(w.Operator); err != nil {
			err = decodeErr(path+"/operator", err)
			break
		}
		n.Right, err = decodeRequiredExpression(w.Right, path, "right")
	case *Infix:
		if n.Left, err = decodeRequiredExpression(w.Left, path, "left"); err != nil {
			break
		}
		if n.Operator, err = ParseInfixOperator(w.Operator); err != nil {
			err = decodeErr(path+"/operator", err)
			break
		}
		n.Right, err = decodeRequiredExpression(w.Right, path, "right")
	default:
		return nil, decodeErr(path, errors.Errorf("decode: unhandled node type %T", node))
	}
	if err != nil {
		return nil, decodeErr(path, err)
	}
	return node, nil
}

// present reports whether an optional field was given a non-null value.
func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(bytes.TrimSpace(raw)) != "null"
}

func decodeScalar(raw json.RawMessage, path string, dest any) error {
	if !present(raw) {
		return decodeErr(path+"/value", ErrMissingField)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return decodeErr(path+"/value", errors.Wrap(err, "invalid literal"))
	}
	return nil
}

func decodeStatements(raws []json.RawMessage, path string) ([]Statement, error) {
	var stmts []Statement
	for i, raw := range raws {
		elemPath := fmt.Sprintf("%s/%d", path, i)
		node, err := decodeNode(raw, elemPath)
		if err != nil {
			return nil, err
		}
		stmt, ok := node.(Statement)
		if !ok {
			return nil, decodeErr(elemPath, errors.Wrapf(ErrWrongKind, "expected statement, got %s", KindOf(node)))
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func decodeExpression(raw json.RawMessage, path string) (Expression, error) {
	node, err := decodeNode(raw, path)
	if err != nil {
		return nil, err
	}
	expr, ok := node.(Expression)
	if !ok {
		return nil, decodeErr(path, errors.Wrapf(ErrWrongKind, "expected expression, got %s", KindOf(node)))
	}
	return expr, nil
}

func decodeRequiredExpression(raw json.RawMessage, parent, field string) (Expression, error) {
	if !present(raw) {
		return nil, decodeErr(parent+"/"+field, ErrMissingField)
	}
	return decodeExpression(raw, parent+"/"+field)
}

func decodeIdentifier(raw json.RawMessage, path string) (*Identifier, error) {
	if !present(raw) {
		return nil, decodeErr(path, ErrMissingField)
	}
	expr, err := decodeExpression(raw, path)
	if err != nil {
		return nil, err
	}
	ident, ok := expr.(*Identifier)
	if !ok {
		return nil, decodeErr(path, errors.Wrapf(ErrWrongKind, "expected identifier, got %s", KindOf(expr)))
	}
	return ident, nil
}

func decodeBlock(raw json.RawMessage, parent, field string) (*Block, error) {
	path := parent + "/" + field
	if !present(raw) {
		return nil, decodeErr(path, ErrMissingField)
	}
	expr, err := decodeExpression(raw, path)
	if err != nil {
		return nil, err
	}
	block, ok := expr.(*Block)
	if !ok {
		return nil, decodeErr(path, errors.Wrapf(ErrWrongKind, "expected block, got %s", KindOf(expr)))
	}
	return block, nil
}

func decodeCallable(raw json.RawMessage, parent, field string) (Callable, error) {
	path := parent + "/" + field
	if !present(raw) {
		return nil, decodeErr(path, ErrMissingField)
	}
	expr, err := decodeExpression(raw, path)
	if err != nil {
		return nil, err
	}
	callable, ok := expr.(Callable)
	if !ok {
		return nil, decodeErr(path, errors.Wrapf(ErrIllegalCallee, "got %s", KindOf(expr)))
	}
	return callable, nil
}
