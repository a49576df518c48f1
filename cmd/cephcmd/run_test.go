package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/cephcmd/pkg/catalog"
	"github.com/cuemby/cephcmd/pkg/command"
)

// TestCoerceArgs tests the name=value to typed-args translation
func TestCoerceArgs(t *testing.T) {
	jewel := catalog.MustLoad(catalog.Jewel)

	reweight, err := jewel.Lookup("osd reweight")
	require.NoError(t, err)
	dumpStuck, err := jewel.Lookup("pg dump_stuck")
	require.NoError(t, err)

	tests := []struct {
		name    string
		spec    *command.OperationSpec
		kvs     []string
		want    command.Args
		wantErr string
	}{
		{
			name: "int and float parsed by field type",
			spec: reweight,
			kvs:  []string{"id=5", "weight=0.5"},
			want: command.Args{"id": int64(5), "weight": 0.5},
		},
		{
			name: "repeatable field accumulates",
			spec: dumpStuck,
			kvs:  []string{"stuckops=inactive", "stuckops=stale", "threshold=30"},
			want: command.Args{"stuckops": []string{"inactive", "stale"}, "threshold": int64(30)},
		},
		{
			name: "empty input",
			spec: reweight,
			kvs:  nil,
			want: command.Args{},
		},
		{
			name: "value containing equals",
			spec: dumpStuck,
			kvs:  []string{"stuckops=a=b"},
			want: command.Args{"stuckops": []string{"a=b"}},
		},
		{
			name:    "missing equals",
			spec:    reweight,
			kvs:     []string{"id"},
			wantErr: "malformed --arg",
		},
		{
			name:    "unknown field",
			spec:    reweight,
			kvs:     []string{"bogus=1"},
			wantErr: `"bogus" is not a field of "osd reweight"`,
		},
		{
			name:    "non-numeric int",
			spec:    reweight,
			kvs:     []string{"id=five"},
			wantErr: "is not an int",
		},
		{
			name:    "non-numeric float",
			spec:    reweight,
			kvs:     []string{"weight=half"},
			wantErr: "is not a float",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := coerceArgs(tt.spec, tt.kvs)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestCoerceArgsBuildRoundTrip tests that coerced args survive the
// command builder unchanged
func TestCoerceArgsBuildRoundTrip(t *testing.T) {
	jewel := catalog.MustLoad(catalog.Jewel)
	spec, err := jewel.Lookup("osd reweight")
	require.NoError(t, err)

	args, err := coerceArgs(spec, []string{"id=3", "weight=0.25"})
	require.NoError(t, err)

	obj, err := command.Build(spec, args)
	require.NoError(t, err)
	wire, err := obj.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"prefix":"osd reweight","id":3,"weight":0.25}`, string(wire))
}

// TestFormatArgs tests deterministic history formatting
func TestFormatArgs(t *testing.T) {
	assert.Equal(t, "", formatArgs(nil))
	assert.Equal(t, "id=5 weight=0.5", formatArgs(command.Args{"weight": 0.5, "id": 5}))
}
