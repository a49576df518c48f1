package rados

import (
	"context"
	"errors"
	"fmt"

	gorados "github.com/ceph/go-ceph/rados"

	"github.com/cuemby/cephcmd/pkg/catalog"
	"github.com/cuemby/cephcmd/pkg/client"
	"github.com/cuemby/cephcmd/pkg/metrics"
)

// Conn is a cluster control channel over a librados handle. It
// implements client.MonCommander. librados serializes mon commands
// internally, so a Conn may be shared by concurrent callers.
type Conn struct {
	cluster *gorados.Conn
}

// Dial connects to the cluster named by a ceph.conf locator. An empty
// conffile falls back to the default search path, matching the ceph
// CLI. The locator is passed through opaquely; this layer does not
// parse it.
func Dial(conffile string) (*Conn, error) {
	cluster, err := gorados.NewConn()
	if err != nil {
		return nil, fmt.Errorf("create cluster handle: %w", err)
	}
	if conffile != "" {
		err = cluster.ReadConfigFile(conffile)
	} else {
		err = cluster.ReadDefaultConfigFile()
	}
	if err != nil {
		return nil, fmt.Errorf("read cluster config %q: %w", conffile, err)
	}
	if err := cluster.Connect(); err != nil {
		metrics.ConnectionsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("connect to cluster: %w", err)
	}
	metrics.ConnectionsTotal.WithLabelValues("ok").Inc()
	return &Conn{cluster: cluster}, nil
}

// Connect dials the cluster and returns a ready client for the given
// generation. Close the client to release the connection.
func Connect(conffile string, g catalog.Generation) (*client.Client, error) {
	cat, err := catalog.Load(g)
	if err != nil {
		return nil, err
	}
	conn, err := Dial(conffile)
	if err != nil {
		return nil, err
	}
	return client.New(cat, conn), nil
}

// MonCommand submits one serialized command to the monitors and blocks
// for the reply. Nonzero cluster status codes come back in the reply;
// the error return is reserved for transport failures. The context is
// checked before submission, but librados itself is not interruptible
// mid-call.
func (c *Conn) MonCommand(ctx context.Context, cmd []byte, inbuf []byte) (*client.Reply, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	outbuf, status, err := c.cluster.MonCommandWithInputBuffer(cmd, inbuf)
	if err != nil {
		// rados surfaces nonzero mon statuses as errno-carrying
		// errors; unwrap them into the three-part reply so the
		// dispatcher can tell command failure from transport failure.
		var coded interface{ ErrorCode() int }
		if errors.As(err, &coded) {
			return &client.Reply{Code: coded.ErrorCode(), Outbuf: outbuf, Status: status}, nil
		}
		return nil, err
	}
	return &client.Reply{Code: 0, Outbuf: outbuf, Status: status}, nil
}

// Close shuts the cluster handle down.
func (c *Conn) Close() error {
	c.cluster.Shutdown()
	return nil
}
