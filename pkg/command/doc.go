/*
Package command assembles validated admin commands from operation
specs.

An OperationSpec declares an operation's prefix and ordered, typed
fields. Build checks the supplied arguments against the spec
(fail-fast in field declaration order, unknown arguments rejected,
repeated fields validated per element) and returns an immutable
CommandObject whose MarshalJSON emits the deterministic wire form:
the prefix first, then fields in declaration order, absent optional
fields omitted entirely.

	cmd, err := command.Build(spec, command.Args{"id": 5, "weight": 0.5})
	if err != nil {
		var verr *validate.Error
		// errors.As(err, &verr): nothing was assembled
	}
	wire, _ := cmd.MarshalJSON()
	// {"prefix":"osd reweight","id":5,"weight":0.5}

Specs come from pkg/catalog; this package only defines their shape.
*/
package command
