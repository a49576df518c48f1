package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/cephcmd/pkg/command"
	"github.com/cuemby/cephcmd/pkg/validate"
)

// TestLoadAllGenerations tests that every embedded catalog parses and
// carries its expected operation count
func TestLoadAllGenerations(t *testing.T) {
	counts := map[Generation]int{
		Firefly:    151,
		Hammer:     166,
		Infernalis: 170,
		Jewel:      183,
	}

	for _, g := range Generations() {
		t.Run(string(g), func(t *testing.T) {
			cat, err := Load(g)
			require.NoError(t, err)
			assert.Equal(t, g, cat.Generation())
			assert.Equal(t, counts[g], cat.Len())
		})
	}
}

// TestLoadUnknownGeneration tests the error for a generation with no
// embedded catalog
func TestLoadUnknownGeneration(t *testing.T) {
	_, err := Load(Generation("nautilus"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no catalog for generation")
}

// TestLookup tests prefix resolution and the unknown-operation sentinel
func TestLookup(t *testing.T) {
	jewel := MustLoad(Jewel)

	spec, err := jewel.Lookup("osd reweight")
	require.NoError(t, err)
	assert.Equal(t, "osd reweight", spec.Prefix)
	assert.Equal(t, "osd", spec.Subsystem)

	require.Len(t, spec.Fields, 2)
	assert.Equal(t, "id", spec.Fields[0].Name)
	assert.True(t, spec.Fields[0].Required)
	assert.IsType(t, validate.Int{}, spec.Fields[0].Validator)
	assert.Equal(t, "weight", spec.Fields[1].Name)
	assert.True(t, spec.Fields[1].Required)
	assert.IsType(t, validate.Float{}, spec.Fields[1].Validator)

	_, err = jewel.Lookup("osd levitate")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownOperation)
	assert.Contains(t, err.Error(), "osd levitate")
}

// TestGenerationSkew tests that an operation added in a later release
// is absent from earlier catalogs
func TestGenerationSkew(t *testing.T) {
	firefly := MustLoad(Firefly)
	jewel := MustLoad(Jewel)

	_, err := firefly.Lookup("pg ls-by-primary")
	assert.ErrorIs(t, err, ErrUnknownOperation)

	_, err = jewel.Lookup("pg ls-by-primary")
	assert.NoError(t, err)
}

// TestBySubsystem tests subsystem grouping
func TestBySubsystem(t *testing.T) {
	jewel := MustLoad(Jewel)

	total := 0
	for _, s := range []Subsystem{SubsystemPG, SubsystemMDS, SubsystemOSD, SubsystemMon, SubsystemAuth, SubsystemConfigKey} {
		ops := jewel.BySubsystem(s)
		assert.NotEmpty(t, ops, "subsystem %s has operations", s)
		for _, op := range ops {
			assert.Equal(t, string(s), op.Subsystem)
		}
		total += len(ops)
	}
	assert.Equal(t, jewel.Len(), total, "every operation belongs to exactly one subsystem")
}

// TestOperationsOrder tests that Operations preserves catalog
// declaration order and covers every prefix exactly once
func TestOperationsOrder(t *testing.T) {
	jewel := MustLoad(Jewel)

	ops := jewel.Operations()
	require.Equal(t, jewel.Len(), len(ops))

	seen := make(map[string]bool, len(ops))
	for _, op := range ops {
		assert.False(t, seen[op.Prefix], "duplicate prefix %q", op.Prefix)
		seen[op.Prefix] = true
	}
}

// TestCatalogSpecsBuild tests that a representative choice-field spec
// from the catalog enforces its allow-list
func TestCatalogSpecsBuild(t *testing.T) {
	jewel := MustLoad(Jewel)

	spec, err := jewel.Lookup("osd set")
	require.NoError(t, err)

	_, err = command.Build(spec, command.Args{"key": "noout"})
	assert.NoError(t, err)

	_, err = command.Build(spec, command.Args{"key": "levitate"})
	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "key", verr.Field)
}

// TestParseGeneration tests generation name parsing
func TestParseGeneration(t *testing.T) {
	g, err := ParseGeneration("jewel")
	require.NoError(t, err)
	assert.Equal(t, Jewel, g)

	_, err = ParseGeneration("JEWEL")
	assert.Error(t, err)

	_, err = ParseGeneration("luminous")
	assert.Error(t, err)
}
