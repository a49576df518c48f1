package client

import (
	"context"

	"github.com/cuemby/cephcmd/pkg/command"
)

// MDS groups the metadata-server management commands. Methods mirror the
// latest-generation surface; running one against an older catalog
// that lacks the operation reports catalog.ErrUnknownOperation.
type MDS struct {
	c *Client
}

// Stat builds and submits "mds stat": show MDS status.
func (mds *MDS) Stat(ctx context.Context) ([]byte, string, error) {
	return mds.c.Run(ctx, "mds stat", nil)
}

// Dump builds and submits "mds dump": dump legacy MDS cluster info,
// optionally from epoch.
func (mds *MDS) Dump(ctx context.Context, epoch *int64) ([]byte, string, error) {
	args := command.Args{}
	if epoch != nil {
		args["epoch"] = *epoch
	}
	return mds.c.Run(ctx, "mds dump", args)
}

// FsDump builds and submits "fs dump": dump all CephFS status, optionally
// from epoch.
func (mds *MDS) FsDump(ctx context.Context, epoch *int64) ([]byte, string, error) {
	args := command.Args{}
	if epoch != nil {
		args["epoch"] = *epoch
	}
	return mds.c.Run(ctx, "fs dump", args)
}

// Getmap builds and submits "mds getmap": get MDS map, optionally from
// epoch.
func (mds *MDS) Getmap(ctx context.Context, epoch *int64) ([]byte, string, error) {
	args := command.Args{}
	if epoch != nil {
		args["epoch"] = *epoch
	}
	return mds.c.Run(ctx, "mds getmap", args)
}

// Metadata builds and submits "mds metadata": fetch metadata for mds
// <who>.
func (mds *MDS) Metadata(ctx context.Context, who string) ([]byte, string, error) {
	args := command.Args{"who": who}
	return mds.c.Run(ctx, "mds metadata", args)
}

// Tell builds and submits "mds tell": send command to particular mds.
func (mds *MDS) Tell(ctx context.Context, who string, args []string) ([]byte, string, error) {
	cmdArgs := command.Args{"who": who, "args": args}
	return mds.c.Run(ctx, "mds tell", cmdArgs)
}

// CompatShow builds and submits "mds compat show": show mds compatibility
// settings.
func (mds *MDS) CompatShow(ctx context.Context) ([]byte, string, error) {
	return mds.c.Run(ctx, "mds compat show", nil)
}

// Stop builds and submits "mds stop": stop mds.
func (mds *MDS) Stop(ctx context.Context, who string) ([]byte, string, error) {
	args := command.Args{"who": who}
	return mds.c.Run(ctx, "mds stop", args)
}

// Deactivate builds and submits "mds deactivate": stop mds.
func (mds *MDS) Deactivate(ctx context.Context, who string) ([]byte, string, error) {
	args := command.Args{"who": who}
	return mds.c.Run(ctx, "mds deactivate", args)
}

// SetMaxMds builds and submits "mds set_max_mds": set max MDS index.
func (mds *MDS) SetMaxMds(ctx context.Context, maxmds int64) ([]byte, string, error) {
	args := command.Args{"maxmds": maxmds}
	return mds.c.Run(ctx, "mds set_max_mds", args)
}

// SetState builds and submits "mds set_state": set mds state of <gid> to
// <numeric-state>.
func (mds *MDS) SetState(ctx context.Context, gid int64, state int64) ([]byte, string, error) {
	args := command.Args{"gid": gid, "state": state}
	return mds.c.Run(ctx, "mds set_state", args)
}

// Fail builds and submits "mds fail": force mds to status failed.
func (mds *MDS) Fail(ctx context.Context, who string) ([]byte, string, error) {
	args := command.Args{"who": who}
	return mds.c.Run(ctx, "mds fail", args)
}

// Repaired builds and submits "mds repaired": mark a damaged MDS rank as
// no longer damaged.
func (mds *MDS) Repaired(ctx context.Context, rank string) ([]byte, string, error) {
	args := command.Args{"rank": rank}
	return mds.c.Run(ctx, "mds repaired", args)
}

// Rm builds and submits "mds rm": remove nonactive mds.
func (mds *MDS) Rm(ctx context.Context, gid int64) ([]byte, string, error) {
	args := command.Args{"gid": gid}
	return mds.c.Run(ctx, "mds rm", args)
}

// Rmfailed builds and submits "mds rmfailed": remove failed mds.
func (mds *MDS) Rmfailed(ctx context.Context, who string, confirm *string) ([]byte, string, error) {
	args := command.Args{"who": who}
	if confirm != nil {
		args["confirm"] = *confirm
	}
	return mds.c.Run(ctx, "mds rmfailed", args)
}

// ClusterDown builds and submits "mds cluster_down": take MDS cluster
// down.
func (mds *MDS) ClusterDown(ctx context.Context) ([]byte, string, error) {
	return mds.c.Run(ctx, "mds cluster_down", nil)
}

// ClusterUp builds and submits "mds cluster_up": bring MDS cluster up.
func (mds *MDS) ClusterUp(ctx context.Context) ([]byte, string, error) {
	return mds.c.Run(ctx, "mds cluster_up", nil)
}

// CompatRmCompat builds and submits "mds compat rm_compat": remove
// compatible feature.
func (mds *MDS) CompatRmCompat(ctx context.Context, feature int64) ([]byte, string, error) {
	args := command.Args{"feature": feature}
	return mds.c.Run(ctx, "mds compat rm_compat", args)
}

// CompatRmIncompat builds and submits "mds compat rm_incompat": remove
// incompatible feature.
func (mds *MDS) CompatRmIncompat(ctx context.Context, feature int64) ([]byte, string, error) {
	args := command.Args{"feature": feature}
	return mds.c.Run(ctx, "mds compat rm_incompat", args)
}

// AddDataPool builds and submits "mds add_data_pool": add data pool
// <pool>.
func (mds *MDS) AddDataPool(ctx context.Context, pool string) ([]byte, string, error) {
	args := command.Args{"pool": pool}
	return mds.c.Run(ctx, "mds add_data_pool", args)
}

// RemoveDataPool builds and submits "mds remove_data_pool": remove data
// pool <pool>.
func (mds *MDS) RemoveDataPool(ctx context.Context, pool string) ([]byte, string, error) {
	args := command.Args{"pool": pool}
	return mds.c.Run(ctx, "mds remove_data_pool", args)
}

// RmDataPool builds and submits "mds rm_data_pool": remove data pool
// <pool>.
func (mds *MDS) RmDataPool(ctx context.Context, pool string) ([]byte, string, error) {
	args := command.Args{"pool": pool}
	return mds.c.Run(ctx, "mds rm_data_pool", args)
}

// Newfs builds and submits "mds newfs": make new filesystem using pools
// <metadata> and <data>.
func (mds *MDS) Newfs(ctx context.Context, metadata int64, data int64, sure *string) ([]byte, string, error) {
	args := command.Args{"metadata": metadata, "data": data}
	if sure != nil {
		args["sure"] = *sure
	}
	return mds.c.Run(ctx, "mds newfs", args)
}

// FsSet builds and submits "fs set": set mds parameter <var> to <val>.
func (mds *MDS) FsSet(ctx context.Context, varname string, fsName string, val string, confirm *string) ([]byte, string, error) {
	args := command.Args{"var": varname, "fs_name": fsName, "val": val}
	if confirm != nil {
		args["confirm"] = *confirm
	}
	return mds.c.Run(ctx, "fs set", args)
}

// FsAddDataPool builds and submits "fs add_data_pool": add data pool
// <pool>.
func (mds *MDS) FsAddDataPool(ctx context.Context, fsName string, pool string) ([]byte, string, error) {
	args := command.Args{"fs_name": fsName, "pool": pool}
	return mds.c.Run(ctx, "fs add_data_pool", args)
}

// FsRmDataPool builds and submits "fs rm_data_pool": remove data pool
// <pool>.
func (mds *MDS) FsRmDataPool(ctx context.Context, fsName string, pool string) ([]byte, string, error) {
	args := command.Args{"fs_name": fsName, "pool": pool}
	return mds.c.Run(ctx, "fs rm_data_pool", args)
}
