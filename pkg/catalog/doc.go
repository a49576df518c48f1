/*
Package catalog holds the per-generation admin command tables.

Each supported release generation ships as an embedded YAML data file
declaring every operation: its prefix, subsystem, description and
typed fields. Load parses one generation into an immutable Catalog
that the client dispatches against. Adding a generation means adding a
data file, not code.

# Generations

	firefly      151 operations
	hammer       166 operations
	infernalis   170 operations
	jewel        183 operations

Later generations are supersets in practice but nothing assumes it:
each catalog stands alone, and an operation missing from the loaded
generation fails Lookup with ErrUnknownOperation.

# Usage

	cat, err := catalog.Load(catalog.Jewel)
	if err != nil {
		log.Fatal(err)
	}

	spec, err := cat.Lookup("osd reweight")
	if errors.Is(err, catalog.ErrUnknownOperation) {
		// prefix not in this generation
	}

	for _, op := range cat.BySubsystem(catalog.SubsystemPG) {
		fmt.Println(op.Prefix, "-", op.Desc)
	}

Load verifies catalog invariants up front: prefixes are unique, field
names are unique per operation, and every field names a known
validator type. MustLoad panics on failure and suits program setup
paths where the embedded data is part of the build.
*/
package catalog
