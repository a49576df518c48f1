/*
Package client validates and dispatches Ceph admin commands.

The client package is the SDK core: it binds a generation's operation
catalog to a cluster control channel, validates arguments locally
before anything touches the wire, and exposes the full command surface
both as a generic Run call and as typed per-subsystem wrappers.

# Architecture

	┌──────────────────── APPLICATION CODE ──────────────────────┐
	│                                                             │
	│  import "github.com/cuemby/cephcmd/pkg/client"              │
	│                                                             │
	│  cli := client.New(catalog.MustLoad(catalog.Jewel), conn)   │
	│  out, _, err := cli.OSD().Reweight(ctx, 5, 0.5)             │
	│                                                             │
	└──────────────────┬──────────────────────────────────────────┘
	                   │
	┌──────────────────▼──── pkg/client ─────────────────────────┐
	│                                                             │
	│  ┌──────────────────────────────────────────────┐           │
	│  │        Typed Wrappers (PG/MDS/OSD/...)       │           │
	│  │  - One method per catalog operation          │           │
	│  │  - Required args positional, optional        │           │
	│  │    args as pointers or nil-able slices       │           │
	│  └──────────────────┬───────────────────────────┘           │
	│                     │                                       │
	│  ┌──────────────────▼───────────────────────────┐           │
	│  │        Run / RunWithInput                    │           │
	│  │  - catalog.Lookup (generation skew check)    │           │
	│  │  - command.Build (validation, assembly)      │           │
	│  │  - ordered JSON wire encoding                │           │
	│  │  - metrics + structured logging              │           │
	│  └──────────────────┬───────────────────────────┘           │
	└─────────────────────┼───────────────────────────────────────┘
	                      │ MonCommander
	                      ▼
	           Cluster monitors (pkg/rados)

# Usage

Connecting and running a command:

	conn, err := rados.Dial("/etc/ceph/ceph.conf")
	if err != nil {
		log.Fatal(err)
	}
	cli := client.New(catalog.MustLoad(catalog.Jewel), conn)
	defer cli.Close()

	out, status, err := cli.OSD().Reweight(ctx, 5, 0.5)

The same operation through the generic entry point:

	out, status, err := cli.Run(ctx, "osd reweight",
		command.Args{"id": 5, "weight": 0.5})

Optional arguments use pointers (nil means "omit the field"):

	cli.PG().DumpStuck(ctx, []string{"inactive"}, client.Int(30))
	cli.PG().DumpStuck(ctx, nil, nil)

Operations that consume a payload take it explicitly:

	keyring, _ := os.ReadFile("bootstrap.keyring")
	cli.Auth().Import(ctx, keyring)

# Error Handling

Run returns exactly one of three disjoint error kinds, so callers can
branch with errors.As without string matching:

	_, _, err := cli.Run(ctx, "osd reweight", args)

	var verr *validate.Error
	var cmdErr *client.CommandError
	switch {
	case errors.As(err, &verr):
		// Rejected locally. Nothing was sent to the cluster.
		fmt.Printf("bad field %s: %s\n", verr.Field, verr.Reason)
	case errors.As(err, &cmdErr):
		// The cluster executed the round trip and refused.
		fmt.Printf("cluster said: %s (code %d)\n", cmdErr.Msg, cmdErr.Code)
	case err != nil:
		// Transport failure, passed through untouched.
	}

An unknown prefix wraps catalog.ErrUnknownOperation, which is how
generation skew surfaces: asking a firefly client for a jewel-era
operation fails before any transport work.

# Thread Safety

A Client is safe for concurrent use. The catalog is immutable,
validators are stateless, and every call assembles its own command
object. Concurrency limits, retries and timeouts all belong to the
caller; pass a context with a deadline if the transport honors one.

# See Also

  - pkg/catalog for the per-generation operation tables
  - pkg/command for validation and wire assembly
  - pkg/rados for the production MonCommander
*/
package client
