/*
Package validate implements the field validators for admin command
arguments.

Every argument that enters a command passes one of a small closed set
of validators before serialization. Validators are stateless value
types sharing one interface:

	type Validator interface {
		Validate(v any) error
		String() string
	}

The set covers the argument grammars the cluster expects:

	Int         integer with optional inclusive bounds
	Float       float with optional inclusive bounds; NaN/Inf rejected
	Str         free string, optionally restricted to a character class
	Choice      membership in a fixed allow-list
	Pgid        placement group id, "poolnum.hexid"
	Name        daemon or client name, "type.id"
	OsdName     "osd.N" or a bare nonnegative id
	UUID        canonical hyphenated UUID
	IPAddr      v4/v6 address with optional port and nonce
	EntityAddr  IPAddr or Name, either form

All failures are reported as *Error carrying the offending field name
and a human-readable reason; callers branch on it with errors.As.
String renders the constraint for help output, e.g. "int [0..10]" or
"one of pause|noup".
*/
package validate
