package catalog

import (
	"embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/cuemby/cephcmd/pkg/command"
	"github.com/cuemby/cephcmd/pkg/validate"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Generation names a release's command catalog.
type Generation string

const (
	Firefly    Generation = "firefly"
	Hammer     Generation = "hammer"
	Infernalis Generation = "infernalis"
	Jewel      Generation = "jewel"
)

// Generations returns the known generations in release order.
func Generations() []Generation {
	return []Generation{Firefly, Hammer, Infernalis, Jewel}
}

// ParseGeneration parses a generation name.
func ParseGeneration(s string) (Generation, error) {
	for _, g := range Generations() {
		if s == string(g) {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown generation %q (known: firefly, hammer, infernalis, jewel)", s)
}

// Subsystem groups operations by the cluster component they manage.
type Subsystem string

const (
	SubsystemPG        Subsystem = "pg"
	SubsystemMDS       Subsystem = "mds"
	SubsystemOSD       Subsystem = "osd"
	SubsystemMon       Subsystem = "mon"
	SubsystemAuth      Subsystem = "auth"
	SubsystemConfigKey Subsystem = "config-key"
)

// ErrUnknownOperation reports a prefix the generation's catalog does
// not declare. Check with errors.Is.
var ErrUnknownOperation = errors.New("unknown operation")

// Catalog is an immutable table of operation specs for one generation.
// It is constructed once by Load and passed by reference; there is no
// ambient global lookup.
type Catalog struct {
	generation Generation
	ops        map[string]*command.OperationSpec
	order      []string
}

// yaml file shapes

type fileCatalog struct {
	Generation string          `yaml:"generation"`
	Operations []fileOperation `yaml:"operations"`
}

type fileOperation struct {
	Prefix    string      `yaml:"prefix"`
	Subsystem string      `yaml:"subsystem"`
	Desc      string      `yaml:"desc"`
	Fields    []fileField `yaml:"fields"`
}

type fileField struct {
	Name    string   `yaml:"name"`
	Type    string   `yaml:"type"`
	Min     *float64 `yaml:"min"`
	Max     *float64 `yaml:"max"`
	Chars   string   `yaml:"chars"`
	Allowed []string `yaml:"allowed"`
	Many    bool     `yaml:"many"`
	Req     bool     `yaml:"req"`
}

// Load parses the embedded catalog for a generation and verifies its
// invariants: unique prefixes, unique field names per operation, and a
// known validator for every field.
func Load(g Generation) (*Catalog, error) {
	raw, err := dataFS.ReadFile(fmt.Sprintf("data/%s.yaml", g))
	if err != nil {
		return nil, fmt.Errorf("no catalog for generation %q: %w", g, err)
	}
	var fc fileCatalog
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("parse %s catalog: %w", g, err)
	}
	if fc.Generation != string(g) {
		return nil, fmt.Errorf("catalog %s declares generation %q", g, fc.Generation)
	}

	cat := &Catalog{
		generation: g,
		ops:        make(map[string]*command.OperationSpec, len(fc.Operations)),
		order:      make([]string, 0, len(fc.Operations)),
	}
	for _, op := range fc.Operations {
		if _, dup := cat.ops[op.Prefix]; dup {
			return nil, fmt.Errorf("%s catalog: duplicate operation %q", g, op.Prefix)
		}
		spec, err := buildSpec(op)
		if err != nil {
			return nil, fmt.Errorf("%s catalog: %q: %w", g, op.Prefix, err)
		}
		cat.ops[op.Prefix] = spec
		cat.order = append(cat.order, op.Prefix)
	}
	return cat, nil
}

// MustLoad is Load for program setup paths where a missing embedded
// catalog is a build defect, not a runtime condition.
func MustLoad(g Generation) *Catalog {
	cat, err := Load(g)
	if err != nil {
		panic(err)
	}
	return cat
}

func buildSpec(op fileOperation) (*command.OperationSpec, error) {
	spec := &command.OperationSpec{
		Prefix:    op.Prefix,
		Subsystem: op.Subsystem,
		Desc:      op.Desc,
		Fields:    make([]command.FieldSpec, 0, len(op.Fields)),
	}
	seen := make(map[string]bool, len(op.Fields))
	for _, f := range op.Fields {
		if seen[f.Name] {
			return nil, fmt.Errorf("duplicate field %q", f.Name)
		}
		seen[f.Name] = true
		v, err := buildValidator(f)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		arity := command.One
		if f.Many {
			arity = command.Many
		}
		spec.Fields = append(spec.Fields, command.FieldSpec{
			Name:      f.Name,
			Validator: v,
			Arity:     arity,
			Required:  f.Req,
		})
	}
	return spec, nil
}

func buildValidator(f fileField) (validate.Validator, error) {
	switch f.Type {
	case "int":
		var iv validate.Int
		if f.Min != nil {
			min := int64(*f.Min)
			iv.Min = &min
		}
		if f.Max != nil {
			max := int64(*f.Max)
			iv.Max = &max
		}
		return iv, nil
	case "float":
		return validate.Float{Min: f.Min, Max: f.Max}, nil
	case "str":
		return validate.Str{Chars: f.Chars}, nil
	case "choice":
		if len(f.Allowed) == 0 {
			return nil, fmt.Errorf("choice with empty allow-list")
		}
		return validate.Choice{Allowed: f.Allowed}, nil
	case "pgid":
		return validate.Pgid{}, nil
	case "name":
		return validate.Name{}, nil
	case "osdname":
		return validate.OsdName{}, nil
	case "uuid":
		return validate.UUID{}, nil
	case "ipaddr":
		return validate.IPAddr{}, nil
	case "entityaddr":
		return validate.EntityAddr{}, nil
	}
	return nil, fmt.Errorf("unknown field type %q", f.Type)
}

// Generation returns the generation this catalog was loaded for.
func (c *Catalog) Generation() Generation { return c.generation }

// Len returns the number of operations in the catalog.
func (c *Catalog) Len() int { return len(c.order) }

// Lookup resolves an operation prefix. The returned error wraps
// ErrUnknownOperation when the generation does not declare the prefix.
func (c *Catalog) Lookup(prefix string) (*command.OperationSpec, error) {
	spec, ok := c.ops[prefix]
	if !ok {
		return nil, fmt.Errorf("%s: %q: %w", c.generation, prefix, ErrUnknownOperation)
	}
	return spec, nil
}

// Operations returns all operation specs in catalog declaration order.
func (c *Catalog) Operations() []*command.OperationSpec {
	out := make([]*command.OperationSpec, 0, len(c.order))
	for _, prefix := range c.order {
		out = append(out, c.ops[prefix])
	}
	return out
}

// BySubsystem returns the operations of one subsystem, in declaration
// order.
func (c *Catalog) BySubsystem(s Subsystem) []*command.OperationSpec {
	var out []*command.OperationSpec
	for _, prefix := range c.order {
		if op := c.ops[prefix]; op.Subsystem == string(s) {
			out = append(out, op)
		}
	}
	return out
}
