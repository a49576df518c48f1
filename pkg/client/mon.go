package client

import (
	"context"

	"github.com/cuemby/cephcmd/pkg/command"
)

// Mon groups the monitor and quorum management commands. Methods mirror the
// latest-generation surface; running one against an older catalog
// that lacks the operation reports catalog.ErrUnknownOperation.
type Mon struct {
	c *Client
}

// Compact builds and submits "compact": cause compaction of monitor's
// leveldb storage (DEPRECATED).
func (mon *Mon) Compact(ctx context.Context) ([]byte, string, error) {
	return mon.c.Run(ctx, "compact", nil)
}

// Scrub builds and submits "scrub": scrub the monitor stores (DEPRECATED).
func (mon *Mon) Scrub(ctx context.Context) ([]byte, string, error) {
	return mon.c.Run(ctx, "scrub", nil)
}

// Fsid builds and submits "fsid": show cluster FSID/UUID.
func (mon *Mon) Fsid(ctx context.Context) ([]byte, string, error) {
	return mon.c.Run(ctx, "fsid", nil)
}

// Log builds and submits "log": log supplied text to the monitor log.
func (mon *Mon) Log(ctx context.Context, logtext []string) ([]byte, string, error) {
	args := command.Args{"logtext": logtext}
	return mon.c.Run(ctx, "log", args)
}

// Injectargs builds and submits "injectargs": inject config arguments into
// monitor.
func (mon *Mon) Injectargs(ctx context.Context, injectedArgs []string) ([]byte, string, error) {
	args := command.Args{"injected_args": injectedArgs}
	return mon.c.Run(ctx, "injectargs", args)
}

// Status builds and submits "status": show cluster status.
func (mon *Mon) Status(ctx context.Context) ([]byte, string, error) {
	return mon.c.Run(ctx, "status", nil)
}

// Health builds and submits "health": show cluster health.
func (mon *Mon) Health(ctx context.Context, detail *string) ([]byte, string, error) {
	args := command.Args{}
	if detail != nil {
		args["detail"] = *detail
	}
	return mon.c.Run(ctx, "health", args)
}

// Df builds and submits "df": show cluster free space stats.
func (mon *Mon) Df(ctx context.Context, detail *string) ([]byte, string, error) {
	args := command.Args{}
	if detail != nil {
		args["detail"] = *detail
	}
	return mon.c.Run(ctx, "df", args)
}

// Report builds and submits "report": report full status of cluster,
// optional title tag strings.
func (mon *Mon) Report(ctx context.Context, tags []string) ([]byte, string, error) {
	args := command.Args{}
	if tags != nil {
		args["tags"] = tags
	}
	return mon.c.Run(ctx, "report", args)
}

// QuorumStatus builds and submits "quorum_status": report status of
// monitor quorum.
func (mon *Mon) QuorumStatus(ctx context.Context) ([]byte, string, error) {
	return mon.c.Run(ctx, "quorum_status", nil)
}

// MonStatus builds and submits "mon_status": report status of monitors.
func (mon *Mon) MonStatus(ctx context.Context) ([]byte, string, error) {
	return mon.c.Run(ctx, "mon_status", nil)
}

// SyncForce builds and submits "sync force": force sync of and clear
// monitor store (DEPRECATED).
func (mon *Mon) SyncForce(ctx context.Context, validate1 *string, validate2 *string) ([]byte, string, error) {
	args := command.Args{}
	if validate1 != nil {
		args["validate1"] = *validate1
	}
	if validate2 != nil {
		args["validate2"] = *validate2
	}
	return mon.c.Run(ctx, "sync force", args)
}

// Heap builds and submits "heap": show heap usage info (available only if
// compiled with tcmalloc).
func (mon *Mon) Heap(ctx context.Context, heapcmd string) ([]byte, string, error) {
	args := command.Args{"heapcmd": heapcmd}
	return mon.c.Run(ctx, "heap", args)
}

// Quorum builds and submits "quorum": enter or exit quorum.
func (mon *Mon) Quorum(ctx context.Context, quorumcmd string) ([]byte, string, error) {
	args := command.Args{"quorumcmd": quorumcmd}
	return mon.c.Run(ctx, "quorum", args)
}

// Tell builds and submits "tell": send a command to a specific daemon.
func (mon *Mon) Tell(ctx context.Context, target string, args []string) ([]byte, string, error) {
	cmdArgs := command.Args{"target": target, "args": args}
	return mon.c.Run(ctx, "tell", cmdArgs)
}

// Version builds and submits "version": show mon daemon version.
func (mon *Mon) Version(ctx context.Context) ([]byte, string, error) {
	return mon.c.Run(ctx, "version", nil)
}

// NodeLs builds and submits "node ls": list all nodes in cluster [type].
func (mon *Mon) NodeLs(ctx context.Context, typ *string) ([]byte, string, error) {
	args := command.Args{}
	if typ != nil {
		args["type"] = *typ
	}
	return mon.c.Run(ctx, "node ls", args)
}

// MonCompact builds and submits "mon compact": cause compaction of monitor's
// leveldb storage.
func (mon *Mon) MonCompact(ctx context.Context) ([]byte, string, error) {
	return mon.c.Run(ctx, "mon compact", nil)
}

// MonScrub builds and submits "mon scrub": scrub the monitor stores.
func (mon *Mon) MonScrub(ctx context.Context) ([]byte, string, error) {
	return mon.c.Run(ctx, "mon scrub", nil)
}

// MonSyncForce builds and submits "mon sync force": force sync of and clear
// monitor store.
func (mon *Mon) MonSyncForce(ctx context.Context, validate1 *string, validate2 *string) ([]byte, string, error) {
	args := command.Args{}
	if validate1 != nil {
		args["validate1"] = *validate1
	}
	if validate2 != nil {
		args["validate2"] = *validate2
	}
	return mon.c.Run(ctx, "mon sync force", args)
}

// Metadata builds and submits "mon metadata": fetch metadata for mon <id>.
func (mon *Mon) Metadata(ctx context.Context, id string) ([]byte, string, error) {
	args := command.Args{"id": id}
	return mon.c.Run(ctx, "mon metadata", args)
}

// Dump builds and submits "mon dump": dump formatted monmap (optionally
// from epoch).
func (mon *Mon) Dump(ctx context.Context, epoch *int64) ([]byte, string, error) {
	args := command.Args{}
	if epoch != nil {
		args["epoch"] = *epoch
	}
	return mon.c.Run(ctx, "mon dump", args)
}

// Stat builds and submits "mon stat": summarize monitor status.
func (mon *Mon) Stat(ctx context.Context) ([]byte, string, error) {
	return mon.c.Run(ctx, "mon stat", nil)
}

// Getmap builds and submits "mon getmap": get monmap.
func (mon *Mon) Getmap(ctx context.Context, epoch *int64) ([]byte, string, error) {
	args := command.Args{}
	if epoch != nil {
		args["epoch"] = *epoch
	}
	return mon.c.Run(ctx, "mon getmap", args)
}

// Add builds and submits "mon add": add new monitor named <name> at
// <addr>.
func (mon *Mon) Add(ctx context.Context, name string, addr string) ([]byte, string, error) {
	args := command.Args{"name": name, "addr": addr}
	return mon.c.Run(ctx, "mon add", args)
}

// Remove builds and submits "mon remove": remove monitor named <name>.
func (mon *Mon) Remove(ctx context.Context, name string) ([]byte, string, error) {
	args := command.Args{"name": name}
	return mon.c.Run(ctx, "mon remove", args)
}

// Rm builds and submits "mon rm": remove monitor named <name>.
func (mon *Mon) Rm(ctx context.Context, name string) ([]byte, string, error) {
	args := command.Args{"name": name}
	return mon.c.Run(ctx, "mon rm", args)
}
