package command

import (
	"fmt"
	"sort"

	jsoniter "github.com/json-iterator/go"

	"github.com/cuemby/cephcmd/pkg/validate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Arity says whether a field takes exactly one value or a non-empty
// sequence of repeated values.
type Arity int

const (
	One Arity = iota
	Many
)

// FieldSpec declares one argument of a remote operation.
type FieldSpec struct {
	Name      string
	Validator validate.Validator
	Arity     Arity
	Required  bool
}

// OperationSpec is the load-time template for one remote operation.
// It is immutable once constructed; field names are unique.
type OperationSpec struct {
	Prefix    string
	Subsystem string
	Desc      string
	Fields    []FieldSpec
}

// Field returns the spec for a named field, if declared.
func (s *OperationSpec) Field(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Args carries caller-supplied values keyed by field name. Values are
// strings, integers, floats, or []string for repeated fields.
type Args map[string]any

// CommandObject is the fully validated, ready-to-serialize request
// envelope. Field insertion order follows the operation's declaration
// order and is preserved by MarshalJSON. A CommandObject is built
// fresh per call and never reused.
type CommandObject struct {
	Prefix string

	names  []string
	values map[string]any
}

// Get returns the validated value stored under a field name.
func (c *CommandObject) Get(name string) (any, bool) {
	v, ok := c.values[name]
	return v, ok
}

// FieldNames returns the emitted field names in declaration order.
func (c *CommandObject) FieldNames() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

func (c *CommandObject) set(name string, v any) {
	c.names = append(c.names, name)
	c.values[name] = v
}

// MarshalJSON emits the wire encoding: the prefix key first, then the
// fields in declaration order. The remote end does not care about
// order, but a deterministic encoding keeps round trips testable.
func (c *CommandObject) MarshalJSON() ([]byte, error) {
	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)

	stream.WriteObjectStart()
	stream.WriteObjectField("prefix")
	stream.WriteString(c.Prefix)
	for _, name := range c.names {
		stream.WriteMore()
		stream.WriteObjectField(name)
		stream.WriteVal(c.values[name])
	}
	stream.WriteObjectEnd()
	if stream.Error != nil {
		return nil, stream.Error
	}
	buf := stream.Buffer()
	out := make([]byte, len(buf))
	copy(out, buf)
	return out, nil
}

func (c *CommandObject) String() string {
	b, err := c.MarshalJSON()
	if err != nil {
		return c.Prefix
	}
	return string(b)
}

// Build validates the supplied args against the operation spec and
// assembles the command object. Fields are processed in declaration
// order and the first failure wins; optional fields that are absent
// are omitted entirely, never emitted as null or empty. Supplied args
// the spec does not declare are rejected so generation skew surfaces
// instead of silently dropping input.
func Build(spec *OperationSpec, args Args) (*CommandObject, error) {
	cmd := &CommandObject{
		Prefix: spec.Prefix,
		values: make(map[string]any, len(args)),
	}
	for _, f := range spec.Fields {
		v, ok := args[f.Name]
		if !ok {
			if f.Required {
				return nil, &validate.Error{Field: f.Name, Reason: "required field is missing"}
			}
			continue
		}
		switch f.Arity {
		case Many:
			vals, err := asStringList(v)
			if err != nil {
				return nil, &validate.Error{Field: f.Name, Reason: err.Error()}
			}
			if len(vals) == 0 {
				return nil, &validate.Error{Field: f.Name, Reason: "requires at least one value"}
			}
			for _, s := range vals {
				if err := f.Validator.Validate(s); err != nil {
					return nil, &validate.Error{Field: f.Name, Reason: err.Error()}
				}
			}
			cmd.set(f.Name, vals)
		default:
			if err := f.Validator.Validate(v); err != nil {
				return nil, &validate.Error{Field: f.Name, Reason: err.Error()}
			}
			cmd.set(f.Name, v)
		}
	}
	if len(cmd.names) != len(args) {
		if unknown := unknownArgs(spec, args); len(unknown) > 0 {
			return nil, &validate.Error{
				Field:  unknown[0],
				Reason: fmt.Sprintf("not a field of %q", spec.Prefix),
			}
		}
	}
	return cmd, nil
}

func unknownArgs(spec *OperationSpec, args Args) []string {
	var out []string
	for name := range args {
		if _, ok := spec.Field(name); !ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// asStringList accepts the shapes a repeated field can arrive in:
// []string directly, or []any holding strings (JSON decoding).
func asStringList(v any) ([]string, error) {
	switch vals := v.(type) {
	case []string:
		return vals, nil
	case []any:
		out := make([]string, 0, len(vals))
		for _, e := range vals {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("%v is not a string", e)
			}
			out = append(out, s)
		}
		return out, nil
	case string:
		// a lone value for a repeatable field is fine
		return []string{vals}, nil
	}
	return nil, fmt.Errorf("%v is not a list of strings", v)
}
