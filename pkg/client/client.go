package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/cuemby/cephcmd/pkg/catalog"
	"github.com/cuemby/cephcmd/pkg/command"
	"github.com/cuemby/cephcmd/pkg/log"
	"github.com/cuemby/cephcmd/pkg/metrics"
)

// Reply is the three-part result of one mon command round trip: an
// errno-style status code (0 on success, negative on failure), the
// primary output buffer, and a secondary status string.
type Reply struct {
	Code   int
	Outbuf []byte
	Status string
}

// MonCommander is the cluster control channel. MonCommand submits one
// serialized command plus an optional input payload and blocks for the
// reply. The error return is reserved for transport failures; command
// failures arrive as a nonzero Reply.Code. Implementations must be
// safe for concurrent use.
type MonCommander interface {
	MonCommand(ctx context.Context, cmd []byte, inbuf []byte) (*Reply, error)
}

// Client validates and dispatches admin commands against one
// generation's catalog. A Client is safe for concurrent use: every
// call builds its own command object and validators are stateless.
// Nothing is retried and no timeout is imposed here; wrap the context
// with a deadline if the transport supports cancellation.
type Client struct {
	cat    *catalog.Catalog
	mc     MonCommander
	logger zerolog.Logger
}

// New creates a client over an established control channel.
func New(cat *catalog.Catalog, mc MonCommander) *Client {
	return &Client{
		cat:    cat,
		mc:     mc,
		logger: log.WithComponent("client"),
	}
}

// Catalog returns the catalog this client dispatches against.
func (c *Client) Catalog() *catalog.Catalog { return c.cat }

// Close closes the underlying control channel if it is closable.
func (c *Client) Close() error {
	if closer, ok := c.mc.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Run builds, validates and submits one command. It returns the output
// buffer and status string on success. Errors are one of three
// disjoint kinds: *validate.Error (rejected locally, nothing was
// sent), *CommandError (the cluster returned a nonzero status), or the
// transport's own error passed through.
func (c *Client) Run(ctx context.Context, prefix string, args command.Args) ([]byte, string, error) {
	return c.RunWithInput(ctx, prefix, args, nil)
}

// RunWithInput is Run with an opaque input payload accompanying the
// command, for operations that consume a keyring, crush map or similar
// blob.
func (c *Client) RunWithInput(ctx context.Context, prefix string, args command.Args, inbuf []byte) ([]byte, string, error) {
	spec, err := c.cat.Lookup(prefix)
	if err != nil {
		return nil, "", err
	}

	cmd, err := command.Build(spec, args)
	if err != nil {
		metrics.ValidationFailures.WithLabelValues(string(c.cat.Generation()), spec.Subsystem).Inc()
		return nil, "", err
	}

	wire, err := cmd.MarshalJSON()
	if err != nil {
		return nil, "", fmt.Errorf("encode %q: %w", prefix, err)
	}

	start := time.Now()
	reply, err := c.mc.MonCommand(ctx, wire, inbuf)
	metrics.CommandDuration.WithLabelValues(spec.Subsystem).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.CommandsTotal.WithLabelValues(string(c.cat.Generation()), spec.Subsystem, metrics.OutcomeTransport).Inc()
		c.logger.Error().Err(err).Str("prefix", prefix).Msg("command submission failed")
		return nil, "", err
	}
	if reply.Code != 0 {
		metrics.CommandsTotal.WithLabelValues(string(c.cat.Generation()), spec.Subsystem, metrics.OutcomeError).Inc()
		cmdErr := &CommandError{Cmd: cmd, Code: reply.Code, Msg: strerror(reply.Code)}
		c.logger.Warn().
			Str("prefix", prefix).
			Int("code", reply.Code).
			Str("status", reply.Status).
			Msg("command rejected by cluster")
		return nil, "", cmdErr
	}

	metrics.CommandsTotal.WithLabelValues(string(c.cat.Generation()), spec.Subsystem, metrics.OutcomeOK).Inc()
	c.logger.Debug().
		Str("prefix", prefix).
		Int("outbuf_bytes", len(reply.Outbuf)).
		Dur("took", time.Since(start)).
		Msg("command completed")
	return reply.Outbuf, reply.Status, nil
}

// Subsystem accessors. Each returns a view grouping the typed wrappers
// for one cluster component; the groups share the client and carry no
// state of their own.

// PG returns the placement-group command group.
func (c *Client) PG() *PG { return &PG{c} }

// MDS returns the metadata-server command group.
func (c *Client) MDS() *MDS { return &MDS{c} }

// OSD returns the storage-device command group.
func (c *Client) OSD() *OSD { return &OSD{c} }

// Mon returns the monitor/quorum command group.
func (c *Client) Mon() *Mon { return &Mon{c} }

// Auth returns the authentication command group.
func (c *Client) Auth() *Auth { return &Auth{c} }

// ConfigKey returns the key-value configuration command group.
func (c *Client) ConfigKey() *ConfigKey { return &ConfigKey{c} }
