package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/cephcmd/pkg/validate"
)

func intPtr(n int64) *int64       { return &n }
func floatPtr(f float64) *float64 { return &f }

// reweightSpec mirrors a typical two-field operation: a nonnegative
// id plus a weight in [0,1].
func reweightSpec() *OperationSpec {
	return &OperationSpec{
		Prefix:    "osd reweight",
		Subsystem: "osd",
		Fields: []FieldSpec{
			{Name: "id", Validator: validate.Int{Min: intPtr(0)}, Required: true},
			{Name: "weight", Validator: validate.Float{Min: floatPtr(0), Max: floatPtr(1)}, Required: true},
		},
	}
}

// TestBuildSuccess tests assembly of a fully valid command
func TestBuildSuccess(t *testing.T) {
	cmd, err := Build(reweightSpec(), Args{"id": 5, "weight": 0.5})
	require.NoError(t, err)

	assert.Equal(t, "osd reweight", cmd.Prefix)
	id, ok := cmd.Get("id")
	require.True(t, ok)
	assert.Equal(t, 5, id)
	weight, ok := cmd.Get("weight")
	require.True(t, ok)
	assert.Equal(t, 0.5, weight)
}

// TestBuildRangeViolation tests that an out-of-range value names its
// field and constraint
func TestBuildRangeViolation(t *testing.T) {
	_, err := Build(reweightSpec(), Args{"id": 5, "weight": 1.5})
	require.Error(t, err)

	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "weight", verr.Field)
	assert.Contains(t, verr.Reason, "greater than maximum allowed value of 1")
}

// TestBuildChoiceViolation tests rejection of a value outside the
// allow-list
func TestBuildChoiceViolation(t *testing.T) {
	spec := &OperationSpec{
		Prefix: "osd set",
		Fields: []FieldSpec{
			{Name: "key", Validator: validate.Choice{Allowed: []string{"pause", "noup"}}, Required: true},
		},
	}

	_, err := Build(spec, Args{"key": "typo"})
	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "key", verr.Field)
	assert.Contains(t, verr.Reason, "is not in the list")
}

// TestBuildRequiredMissing tests that a missing required field fails
// regardless of other fields' validity
func TestBuildRequiredMissing(t *testing.T) {
	_, err := Build(reweightSpec(), Args{"weight": 123.0})

	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "id", verr.Field)
	assert.Equal(t, "required field is missing", verr.Reason)
}

// TestBuildFailFastOrder tests that with two invalid fields the error
// names whichever is declared first
func TestBuildFailFastOrder(t *testing.T) {
	_, err := Build(reweightSpec(), Args{"id": -1, "weight": 99.0})

	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "id", verr.Field, "declaration order decides which failure wins")
}

// TestBuildOptionalOmitted tests that absent optional fields leave no
// trace in the command object or its encoding
func TestBuildOptionalOmitted(t *testing.T) {
	spec := &OperationSpec{
		Prefix: "pg dump_stuck",
		Fields: []FieldSpec{
			{Name: "stuckops", Validator: validate.Choice{Allowed: []string{"inactive", "stale"}}, Arity: Many},
			{Name: "threshold", Validator: validate.Int{}},
		},
	}

	cmd, err := Build(spec, Args{"threshold": 30})
	require.NoError(t, err)

	_, present := cmd.Get("stuckops")
	assert.False(t, present)
	assert.Equal(t, []string{"threshold"}, cmd.FieldNames())

	wire, err := cmd.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"prefix":"pg dump_stuck","threshold":30}`, string(wire))
	assert.NotContains(t, string(wire), "stuckops")
}

// TestBuildManyArity tests repeated-field validation
func TestBuildManyArity(t *testing.T) {
	spec := &OperationSpec{
		Prefix: "pg dump_stuck",
		Fields: []FieldSpec{
			{Name: "stuckops", Validator: validate.Choice{Allowed: []string{"inactive", "unclean", "stale"}}, Arity: Many},
		},
	}

	t.Run("all members pass", func(t *testing.T) {
		cmd, err := Build(spec, Args{"stuckops": []string{"inactive", "stale"}})
		require.NoError(t, err)
		v, _ := cmd.Get("stuckops")
		assert.Equal(t, []string{"inactive", "stale"}, v)
	})

	t.Run("one non-member fails", func(t *testing.T) {
		_, err := Build(spec, Args{"stuckops": []string{"inactive", "bogus"}})
		var verr *validate.Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "stuckops", verr.Field)
	})

	t.Run("empty list fails", func(t *testing.T) {
		_, err := Build(spec, Args{"stuckops": []string{}})
		var verr *validate.Error
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Reason, "at least one value")
	})

	t.Run("lone string is promoted", func(t *testing.T) {
		cmd, err := Build(spec, Args{"stuckops": "stale"})
		require.NoError(t, err)
		v, _ := cmd.Get("stuckops")
		assert.Equal(t, []string{"stale"}, v)
	})

	t.Run("any-typed list accepted", func(t *testing.T) {
		cmd, err := Build(spec, Args{"stuckops": []any{"inactive"}})
		require.NoError(t, err)
		v, _ := cmd.Get("stuckops")
		assert.Equal(t, []string{"inactive"}, v)
	})
}

// TestBuildUnknownArg tests rejection of args the spec never declared
func TestBuildUnknownArg(t *testing.T) {
	_, err := Build(reweightSpec(), Args{"id": 5, "weight": 0.5, "bogus": 1})

	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "bogus", verr.Field)
	assert.Contains(t, verr.Reason, `not a field of "osd reweight"`)
}

// TestMarshalOrder tests that the wire encoding is deterministic with
// the prefix first and fields in declaration order
func TestMarshalOrder(t *testing.T) {
	cmd, err := Build(reweightSpec(), Args{"id": 5, "weight": 0.5})
	require.NoError(t, err)

	first, err := cmd.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"prefix":"osd reweight","id":5,"weight":0.5}`, string(first))

	second, err := cmd.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

// TestSpecFieldLookup tests OperationSpec.Field
func TestSpecFieldLookup(t *testing.T) {
	spec := reweightSpec()

	f, ok := spec.Field("weight")
	assert.True(t, ok)
	assert.Equal(t, "weight", f.Name)

	_, ok = spec.Field("nope")
	assert.False(t, ok)
}
