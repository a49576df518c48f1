package client

import (
	"context"

	"github.com/cuemby/cephcmd/pkg/command"
)

// PG groups the placement-group management commands. Methods mirror the
// latest-generation surface; running one against an older catalog
// that lacks the operation reports catalog.ErrUnknownOperation.
type PG struct {
	c *Client
}

// Stat builds and submits "pg stat": show placement group status.
func (pg *PG) Stat(ctx context.Context) ([]byte, string, error) {
	return pg.c.Run(ctx, "pg stat", nil)
}

// Getmap builds and submits "pg getmap": get binary pg map to -o/stdout.
func (pg *PG) Getmap(ctx context.Context) ([]byte, string, error) {
	return pg.c.Run(ctx, "pg getmap", nil)
}

// SendPgCreates builds and submits "pg send_pg_creates": trigger pg
// creates to be issued.
func (pg *PG) SendPgCreates(ctx context.Context) ([]byte, string, error) {
	return pg.c.Run(ctx, "pg send_pg_creates", nil)
}

// Dump builds and submits "pg dump": show human-readable versions of pg
// map (only 'all' valid with plain).
func (pg *PG) Dump(ctx context.Context, dumpcontents []string) ([]byte, string, error) {
	args := command.Args{}
	if dumpcontents != nil {
		args["dumpcontents"] = dumpcontents
	}
	return pg.c.Run(ctx, "pg dump", args)
}

// DumpJson builds and submits "pg dump_json": show human-readable version
// of pg map in json only.
func (pg *PG) DumpJson(ctx context.Context, dumpcontents []string) ([]byte, string, error) {
	args := command.Args{}
	if dumpcontents != nil {
		args["dumpcontents"] = dumpcontents
	}
	return pg.c.Run(ctx, "pg dump_json", args)
}

// DumpPoolsJson builds and submits "pg dump_pools_json": show pg pools
// info in json only.
func (pg *PG) DumpPoolsJson(ctx context.Context) ([]byte, string, error) {
	return pg.c.Run(ctx, "pg dump_pools_json", nil)
}

// DumpStuck builds and submits "pg dump_stuck": show information about
// stuck pgs.
func (pg *PG) DumpStuck(ctx context.Context, stuckops []string, threshold *int64) ([]byte, string, error) {
	args := command.Args{}
	if stuckops != nil {
		args["stuckops"] = stuckops
	}
	if threshold != nil {
		args["threshold"] = *threshold
	}
	return pg.c.Run(ctx, "pg dump_stuck", args)
}

// LsByPool builds and submits "pg ls-by-pool": list pg with pool =
// [poolname | poolid].
func (pg *PG) LsByPool(ctx context.Context, poolstr string, states []string) ([]byte, string, error) {
	args := command.Args{"poolstr": poolstr}
	if states != nil {
		args["states"] = states
	}
	return pg.c.Run(ctx, "pg ls-by-pool", args)
}

// LsByPrimary builds and submits "pg ls-by-primary": list pg with primary
// = [osd].
func (pg *PG) LsByPrimary(ctx context.Context, osd string, pool *int64, states []string) ([]byte, string, error) {
	args := command.Args{"osd": osd}
	if pool != nil {
		args["pool"] = *pool
	}
	if states != nil {
		args["states"] = states
	}
	return pg.c.Run(ctx, "pg ls-by-primary", args)
}

// LsByOsd builds and submits "pg ls-by-osd": list pg on osd [osd].
func (pg *PG) LsByOsd(ctx context.Context, osd string, states []string, pool *int64) ([]byte, string, error) {
	args := command.Args{"osd": osd}
	if states != nil {
		args["states"] = states
	}
	if pool != nil {
		args["pool"] = *pool
	}
	return pg.c.Run(ctx, "pg ls-by-osd", args)
}

// Ls builds and submits "pg ls": list pg with specific pool, osd, state.
func (pg *PG) Ls(ctx context.Context, states []string, pool *int64) ([]byte, string, error) {
	args := command.Args{}
	if states != nil {
		args["states"] = states
	}
	if pool != nil {
		args["pool"] = *pool
	}
	return pg.c.Run(ctx, "pg ls", args)
}

// Map builds and submits "pg map": show mapping of pg to osds.
func (pg *PG) Map(ctx context.Context, pgid string) ([]byte, string, error) {
	args := command.Args{"pgid": pgid}
	return pg.c.Run(ctx, "pg map", args)
}

// Scrub builds and submits "pg scrub": start scrub on <pgid>.
func (pg *PG) Scrub(ctx context.Context, pgid string) ([]byte, string, error) {
	args := command.Args{"pgid": pgid}
	return pg.c.Run(ctx, "pg scrub", args)
}

// DeepScrub builds and submits "pg deep-scrub": start deep-scrub on
// <pgid>.
func (pg *PG) DeepScrub(ctx context.Context, pgid string) ([]byte, string, error) {
	args := command.Args{"pgid": pgid}
	return pg.c.Run(ctx, "pg deep-scrub", args)
}

// Repair builds and submits "pg repair": start repair on <pgid>.
func (pg *PG) Repair(ctx context.Context, pgid string) ([]byte, string, error) {
	args := command.Args{"pgid": pgid}
	return pg.c.Run(ctx, "pg repair", args)
}

// Debug builds and submits "pg debug": show debug info about pgs.
func (pg *PG) Debug(ctx context.Context, debugop string) ([]byte, string, error) {
	args := command.Args{"debugop": debugop}
	return pg.c.Run(ctx, "pg debug", args)
}

// ForceCreatePg builds and submits "pg force_create_pg": force creation of
// pg <pgid>.
func (pg *PG) ForceCreatePg(ctx context.Context, pgid string) ([]byte, string, error) {
	args := command.Args{"pgid": pgid}
	return pg.c.Run(ctx, "pg force_create_pg", args)
}

// SetFullRatio builds and submits "pg set_full_ratio": set ratio at which
// pgs are considered full.
func (pg *PG) SetFullRatio(ctx context.Context, ratio float64) ([]byte, string, error) {
	args := command.Args{"ratio": ratio}
	return pg.c.Run(ctx, "pg set_full_ratio", args)
}

// SetNearfullRatio builds and submits "pg set_nearfull_ratio": set ratio
// at which pgs are considered nearly full.
func (pg *PG) SetNearfullRatio(ctx context.Context, ratio float64) ([]byte, string, error) {
	args := command.Args{"ratio": ratio}
	return pg.c.Run(ctx, "pg set_nearfull_ratio", args)
}
