package validate

import (
	"fmt"
	"math"
	"strings"
)

// Error is a validation failure attributed to a single command field.
// It is always produced locally, before any network interaction.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid value for field %q: %s", e.Field, e.Reason)
}

// Validator checks a single value against a declared constraint.
// Validators are stateless and safe to share across concurrent calls;
// Validate never mutates its input. Errors carry the reason only, the
// command builder attributes them to the offending field.
type Validator interface {
	Validate(v any) error
	// String describes the constraint for help and error output.
	String() string
}

// Int accepts integral values, optionally bounded inclusively.
// A nil bound means unconstrained on that side.
type Int struct {
	Min *int64
	Max *int64
}

func (iv Int) Validate(v any) error {
	n, ok := asInt64(v)
	if !ok {
		return fmt.Errorf("%v is not an int", v)
	}
	if iv.Min != nil && n < *iv.Min {
		return fmt.Errorf("%d is less than minimum allowed value of %d", n, *iv.Min)
	}
	if iv.Max != nil && n > *iv.Max {
		return fmt.Errorf("%d is greater than maximum allowed value of %d", n, *iv.Max)
	}
	return nil
}

func (iv Int) String() string {
	return "int" + boundsSuffix(iv.Min, iv.Max)
}

// Float accepts finite numeric values, optionally bounded inclusively.
// NaN and infinities are rejected: they have no JSON representation and
// the cluster would reject the command anyway.
type Float struct {
	Min *float64
	Max *float64
}

func (fv Float) Validate(v any) error {
	f, ok := asFloat64(v)
	if !ok {
		return fmt.Errorf("%v is not a float", v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%v is not a finite number", f)
	}
	if fv.Min != nil && f < *fv.Min {
		return fmt.Errorf("%v is less than minimum allowed value of %v", f, *fv.Min)
	}
	if fv.Max != nil && f > *fv.Max {
		return fmt.Errorf("%v is greater than maximum allowed value of %v", f, *fv.Max)
	}
	return nil
}

func (fv Float) String() string {
	return "float" + floatBoundsSuffix(fv.Min, fv.Max)
}

// Str accepts strings, optionally restricted to a character class such
// as "A-Za-z0-9-_.". An empty class means unrestricted. The empty
// string is accepted either way, matching the remote parser.
type Str struct {
	Chars string
}

func (sv Str) Validate(v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%v is not a string", v)
	}
	if sv.Chars == "" {
		return nil
	}
	allowed := classTable(sv.Chars)
	for _, r := range s {
		if r > 0x7f || !allowed[byte(r)] {
			return fmt.Errorf("%q contains invalid character %q (allowed: %s)", s, r, sv.Chars)
		}
	}
	return nil
}

func (sv Str) String() string {
	if sv.Chars == "" {
		return "string"
	}
	return fmt.Sprintf("string (characters %s)", sv.Chars)
}

// Choice accepts a string drawn from a fixed allow-list. Allowed keeps
// its declaration order so error messages and help output are stable.
type Choice struct {
	Allowed []string
}

func (cv Choice) Validate(v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%v is not a string", v)
	}
	for _, a := range cv.Allowed {
		if s == a {
			return nil
		}
	}
	return fmt.Errorf("%q is not in the list %s", s, strings.Join(cv.Allowed, "|"))
}

func (cv Choice) String() string {
	return "one of " + strings.Join(cv.Allowed, "|")
}

// asInt64 widens the integer kinds a caller can plausibly hand us.
// float64 is accepted only when integral, because JSON decoding at the
// CLI boundary delivers whole numbers as float64.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || math.IsNaN(n) {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}

func asFloat64(v any) (float64, bool) {
	switch f := v.(type) {
	case float32:
		return float64(f), true
	case float64:
		return f, true
	}
	if n, ok := asInt64(v); ok {
		return float64(n), true
	}
	return 0, false
}

// classTable expands a character-class expression ("A-Za-z0-9-_.")
// into an ASCII membership table. A '-' that does not sit between two
// class members is a literal.
func classTable(class string) [128]bool {
	var t [128]bool
	for i := 0; i < len(class); {
		if i+2 < len(class) && class[i+1] == '-' {
			for c := class[i]; c <= class[i+2]; c++ {
				t[c] = true
			}
			i += 3
			continue
		}
		t[class[i]] = true
		i++
	}
	return t
}

func boundsSuffix(min, max *int64) string {
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf(" [%d..%d]", *min, *max)
	case min != nil:
		return fmt.Sprintf(" (min %d)", *min)
	case max != nil:
		return fmt.Sprintf(" (max %d)", *max)
	}
	return ""
}

func floatBoundsSuffix(min, max *float64) string {
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf(" [%v..%v]", *min, *max)
	case min != nil:
		return fmt.Sprintf(" (min %v)", *min)
	case max != nil:
		return fmt.Sprintf(" (max %v)", *max)
	}
	return ""
}
