package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/cephcmd/pkg/catalog"
	"github.com/cuemby/cephcmd/pkg/command"
	"github.com/cuemby/cephcmd/pkg/validate"
)

// fakeMon records the wire bytes it receives and replies with a canned
// result.
type fakeMon struct {
	reply    *Reply
	err      error
	lastCmd  []byte
	lastIn   []byte
	calls    int
	closed   bool
	closeErr error
}

func (f *fakeMon) MonCommand(ctx context.Context, cmd []byte, inbuf []byte) (*Reply, error) {
	f.calls++
	f.lastCmd = cmd
	f.lastIn = inbuf
	if f.err != nil {
		return nil, f.err
	}
	if f.reply != nil {
		return f.reply, nil
	}
	return &Reply{Code: 0, Outbuf: []byte("ok"), Status: ""}, nil
}

func (f *fakeMon) Close() error {
	f.closed = true
	return f.closeErr
}

func newTestClient(t *testing.T, mon *fakeMon) *Client {
	t.Helper()
	return New(catalog.MustLoad(catalog.Jewel), mon)
}

// TestRunSuccess tests the happy path: validated command out, outbuf
// and status back
func TestRunSuccess(t *testing.T) {
	mon := &fakeMon{reply: &Reply{Code: 0, Outbuf: []byte("reweighted"), Status: "set weight"}}
	c := newTestClient(t, mon)

	out, status, err := c.Run(context.Background(), "osd reweight", command.Args{"id": 5, "weight": 0.5})
	require.NoError(t, err)
	assert.Equal(t, []byte("reweighted"), out)
	assert.Equal(t, "set weight", status)
	assert.Equal(t, 1, mon.calls)
	assert.JSONEq(t, `{"prefix":"osd reweight","id":5,"weight":0.5}`, string(mon.lastCmd))
}

// TestRunValidationFailure tests that a locally rejected command never
// reaches the transport
func TestRunValidationFailure(t *testing.T) {
	mon := &fakeMon{}
	c := newTestClient(t, mon)

	_, _, err := c.Run(context.Background(), "osd reweight", command.Args{"id": 5, "weight": 1.5})

	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "weight", verr.Field)
	assert.Zero(t, mon.calls, "nothing is submitted on validation failure")
}

// TestRunUnknownOperation tests generation-skew rejection before any
// transport work
func TestRunUnknownOperation(t *testing.T) {
	mon := &fakeMon{}
	c := New(catalog.MustLoad(catalog.Firefly), mon)

	_, _, err := c.Run(context.Background(), "pg ls-by-primary", command.Args{"osd": "osd.0"})
	assert.ErrorIs(t, err, catalog.ErrUnknownOperation)
	assert.Zero(t, mon.calls)
}

// TestRunClusterRejection tests errno decoding on a nonzero reply code
func TestRunClusterRejection(t *testing.T) {
	mon := &fakeMon{reply: &Reply{Code: -2, Status: "entity osd.99 does not exist"}}
	c := newTestClient(t, mon)

	_, _, err := c.Run(context.Background(), "osd reweight", command.Args{"id": 99, "weight": 0.5})

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, -2, cmdErr.Code)
	assert.Equal(t, "no such file or directory", cmdErr.Msg)
	assert.Equal(t, "osd reweight", cmdErr.Cmd.Prefix)
	assert.Contains(t, err.Error(), `"osd reweight" failed`)
}

// TestRunTransportError tests that a transport failure passes through
// untouched, distinguishable from both other error kinds
func TestRunTransportError(t *testing.T) {
	transportErr := errors.New("connection reset by monitor")
	mon := &fakeMon{err: transportErr}
	c := newTestClient(t, mon)

	_, _, err := c.Run(context.Background(), "osd reweight", command.Args{"id": 5, "weight": 0.5})
	require.Error(t, err)
	assert.ErrorIs(t, err, transportErr)

	var verr *validate.Error
	assert.False(t, errors.As(err, &verr))
	var cmdErr *CommandError
	assert.False(t, errors.As(err, &cmdErr))
}

// TestRunWithInput tests that the input payload reaches the transport
func TestRunWithInput(t *testing.T) {
	mon := &fakeMon{}
	c := newTestClient(t, mon)

	keyring := []byte("[client.bootstrap]\n\tkey = AQD...\n")
	_, _, err := c.Auth().Import(context.Background(), keyring)
	require.NoError(t, err)
	assert.Equal(t, keyring, mon.lastIn)
	assert.JSONEq(t, `{"prefix":"auth import"}`, string(mon.lastCmd))
}

// TestWrapperWireShapes spot-checks the wire encoding produced by the
// typed wrappers
func TestWrapperWireShapes(t *testing.T) {
	mon := &fakeMon{}
	c := newTestClient(t, mon)
	ctx := context.Background()

	t.Run("no-field operation", func(t *testing.T) {
		_, _, err := c.PG().Stat(ctx)
		require.NoError(t, err)
		assert.JSONEq(t, `{"prefix":"pg stat"}`, string(mon.lastCmd))
	})

	t.Run("optional pointer omitted", func(t *testing.T) {
		_, _, err := c.PG().DumpStuck(ctx, []string{"inactive", "stale"}, nil)
		require.NoError(t, err)
		assert.JSONEq(t, `{"prefix":"pg dump_stuck","stuckops":["inactive","stale"]}`, string(mon.lastCmd))
	})

	t.Run("optional pointer set", func(t *testing.T) {
		_, _, err := c.PG().DumpStuck(ctx, nil, Int(30))
		require.NoError(t, err)
		assert.JSONEq(t, `{"prefix":"pg dump_stuck","threshold":30}`, string(mon.lastCmd))
	})

	t.Run("required scalars", func(t *testing.T) {
		_, _, err := c.OSD().Reweight(ctx, 3, 0.75)
		require.NoError(t, err)
		assert.JSONEq(t, `{"prefix":"osd reweight","id":3,"weight":0.75}`, string(mon.lastCmd))
	})

	t.Run("choice field", func(t *testing.T) {
		_, _, err := c.OSD().Set(ctx, "noout")
		require.NoError(t, err)
		assert.JSONEq(t, `{"prefix":"osd set","key":"noout"}`, string(mon.lastCmd))

		_, _, err = c.OSD().Set(ctx, "levitate")
		var verr *validate.Error
		require.ErrorAs(t, err, &verr)
	})
}

// TestPointerHelpers tests the optional-argument constructors
func TestPointerHelpers(t *testing.T) {
	assert.Equal(t, "x", *String("x"))
	assert.Equal(t, int64(5), *Int(5))
	assert.Equal(t, 0.5, *Float(0.5))
}

// TestClose tests that Close reaches a closable transport and is a
// no-op otherwise
func TestClose(t *testing.T) {
	mon := &fakeMon{}
	c := newTestClient(t, mon)
	require.NoError(t, c.Close())
	assert.True(t, mon.closed)

	plain := struct{ MonCommander }{mon}
	c2 := New(catalog.MustLoad(catalog.Jewel), plain)
	assert.NoError(t, c2.Close())
}

// TestStrerror tests errno decoding of both sign conventions
func TestStrerror(t *testing.T) {
	assert.Equal(t, "no such file or directory", strerror(-2))
	assert.Equal(t, "no such file or directory", strerror(2))
	assert.Equal(t, "operation not permitted", strerror(-1))
	assert.Equal(t, "invalid argument", strerror(-22))
}
