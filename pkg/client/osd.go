package client

import (
	"context"

	"github.com/cuemby/cephcmd/pkg/command"
)

// OSD groups the storage-device management commands. Methods mirror the
// latest-generation surface; running one against an older catalog
// that lacks the operation reports catalog.ErrUnknownOperation.
type OSD struct {
	c *Client
}

// Stat builds and submits "osd stat": print summary of OSD map.
func (osd *OSD) Stat(ctx context.Context) ([]byte, string, error) {
	return osd.c.Run(ctx, "osd stat", nil)
}

// Dump builds and submits "osd dump": print summary of OSD map.
func (osd *OSD) Dump(ctx context.Context, epoch *int64) ([]byte, string, error) {
	args := command.Args{}
	if epoch != nil {
		args["epoch"] = *epoch
	}
	return osd.c.Run(ctx, "osd dump", args)
}

// Tree builds and submits "osd tree": print OSD tree.
func (osd *OSD) Tree(ctx context.Context, epoch *int64) ([]byte, string, error) {
	args := command.Args{}
	if epoch != nil {
		args["epoch"] = *epoch
	}
	return osd.c.Run(ctx, "osd tree", args)
}

// Ls builds and submits "osd ls": show all OSD ids.
func (osd *OSD) Ls(ctx context.Context, epoch *int64) ([]byte, string, error) {
	args := command.Args{}
	if epoch != nil {
		args["epoch"] = *epoch
	}
	return osd.c.Run(ctx, "osd ls", args)
}

// Getmap builds and submits "osd getmap": get OSD map.
func (osd *OSD) Getmap(ctx context.Context, epoch *int64) ([]byte, string, error) {
	args := command.Args{}
	if epoch != nil {
		args["epoch"] = *epoch
	}
	return osd.c.Run(ctx, "osd getmap", args)
}

// Getcrushmap builds and submits "osd getcrushmap": get CRUSH map.
func (osd *OSD) Getcrushmap(ctx context.Context, epoch *int64) ([]byte, string, error) {
	args := command.Args{}
	if epoch != nil {
		args["epoch"] = *epoch
	}
	return osd.c.Run(ctx, "osd getcrushmap", args)
}

// Perf builds and submits "osd perf": print dump of OSD perf summary
// stats.
func (osd *OSD) Perf(ctx context.Context) ([]byte, string, error) {
	return osd.c.Run(ctx, "osd perf", nil)
}

// BlockedBy builds and submits "osd blocked-by": print histogram of which
// OSDs are blocking their peers.
func (osd *OSD) BlockedBy(ctx context.Context) ([]byte, string, error) {
	return osd.c.Run(ctx, "osd blocked-by", nil)
}

// Getmaxosd builds and submits "osd getmaxosd": show largest OSD id.
func (osd *OSD) Getmaxosd(ctx context.Context) ([]byte, string, error) {
	return osd.c.Run(ctx, "osd getmaxosd", nil)
}

// Find builds and submits "osd find": find osd <id> in the CRUSH map and
// show its location.
func (osd *OSD) Find(ctx context.Context, id int64) ([]byte, string, error) {
	args := command.Args{"id": id}
	return osd.c.Run(ctx, "osd find", args)
}

// Metadata builds and submits "osd metadata": fetch metadata for osd {id}
// (default all).
func (osd *OSD) Metadata(ctx context.Context, id *int64) ([]byte, string, error) {
	args := command.Args{}
	if id != nil {
		args["id"] = *id
	}
	return osd.c.Run(ctx, "osd metadata", args)
}

// Map builds and submits "osd map": find pg for <object> in <pool> with
// [namespace].
func (osd *OSD) Map(ctx context.Context, object string, pool string, nspace *string) ([]byte, string, error) {
	args := command.Args{"object": object, "pool": pool}
	if nspace != nil {
		args["nspace"] = *nspace
	}
	return osd.c.Run(ctx, "osd map", args)
}

// Scrub builds and submits "osd scrub": initiate scrub on osd <who>.
func (osd *OSD) Scrub(ctx context.Context, who string) ([]byte, string, error) {
	args := command.Args{"who": who}
	return osd.c.Run(ctx, "osd scrub", args)
}

// DeepScrub builds and submits "osd deep-scrub": initiate deep scrub on
// osd <who>.
func (osd *OSD) DeepScrub(ctx context.Context, who string) ([]byte, string, error) {
	args := command.Args{"who": who}
	return osd.c.Run(ctx, "osd deep-scrub", args)
}

// Repair builds and submits "osd repair": initiate repair on osd <who>.
func (osd *OSD) Repair(ctx context.Context, who string) ([]byte, string, error) {
	args := command.Args{"who": who}
	return osd.c.Run(ctx, "osd repair", args)
}

// Lspools builds and submits "osd lspools": list pools.
func (osd *OSD) Lspools(ctx context.Context, auid *int64) ([]byte, string, error) {
	args := command.Args{}
	if auid != nil {
		args["auid"] = *auid
	}
	return osd.c.Run(ctx, "osd lspools", args)
}

// BlacklistLs builds and submits "osd blacklist ls": show blacklisted
// clients.
func (osd *OSD) BlacklistLs(ctx context.Context) ([]byte, string, error) {
	return osd.c.Run(ctx, "osd blacklist ls", nil)
}

// BlacklistClear builds and submits "osd blacklist clear": clear all
// blacklisted clients.
func (osd *OSD) BlacklistClear(ctx context.Context) ([]byte, string, error) {
	return osd.c.Run(ctx, "osd blacklist clear", nil)
}

// CrushRuleList builds and submits "osd crush rule list": list crush
// rules.
func (osd *OSD) CrushRuleList(ctx context.Context) ([]byte, string, error) {
	return osd.c.Run(ctx, "osd crush rule list", nil)
}

// CrushRuleLs builds and submits "osd crush rule ls": list crush rules.
func (osd *OSD) CrushRuleLs(ctx context.Context) ([]byte, string, error) {
	return osd.c.Run(ctx, "osd crush rule ls", nil)
}

// CrushRuleDump builds and submits "osd crush rule dump": dump crush rule
// <name> (default all).
func (osd *OSD) CrushRuleDump(ctx context.Context, name *string) ([]byte, string, error) {
	args := command.Args{}
	if name != nil {
		args["name"] = *name
	}
	return osd.c.Run(ctx, "osd crush rule dump", args)
}

// CrushDump builds and submits "osd crush dump": dump crush map.
func (osd *OSD) CrushDump(ctx context.Context) ([]byte, string, error) {
	return osd.c.Run(ctx, "osd crush dump", nil)
}

// Setcrushmap builds and submits "osd setcrushmap": set crush map from
// input file.
func (osd *OSD) Setcrushmap(ctx context.Context, inbuf []byte) ([]byte, string, error) {
	return osd.c.RunWithInput(ctx, "osd setcrushmap", nil, inbuf)
}

// CrushSet builds and submits "osd crush set": update crushmap position
// and weight for <name> to <weight> with location <args>.
func (osd *OSD) CrushSet(ctx context.Context, weight float64, id string, args []string) ([]byte, string, error) {
	cmdArgs := command.Args{"weight": weight, "id": id, "args": args}
	return osd.c.Run(ctx, "osd crush set", cmdArgs)
}

// CrushAddBucket builds and submits "osd crush add-bucket": add no-parent
// (probably root) crush bucket <name> of type <type>.
func (osd *OSD) CrushAddBucket(ctx context.Context, name string, typ string) ([]byte, string, error) {
	args := command.Args{"name": name, "type": typ}
	return osd.c.Run(ctx, "osd crush add-bucket", args)
}

// CrushRenameBucket builds and submits "osd crush rename-bucket": rename
// bucket <srcname> to <dstname>.
func (osd *OSD) CrushRenameBucket(ctx context.Context, dstname string, srcname string) ([]byte, string, error) {
	args := command.Args{"dstname": dstname, "srcname": srcname}
	return osd.c.Run(ctx, "osd crush rename-bucket", args)
}

// CrushAdd builds and submits "osd crush add": add or update crushmap
// position and weight for <name> with <weight> and location <args>.
func (osd *OSD) CrushAdd(ctx context.Context, id string, weight float64, args []string) ([]byte, string, error) {
	cmdArgs := command.Args{"id": id, "weight": weight, "args": args}
	return osd.c.Run(ctx, "osd crush add", cmdArgs)
}

// CrushCreateOrMove builds and submits "osd crush create-or-move": create
// entry or move existing entry for <name> <weight> at/to location <args>.
func (osd *OSD) CrushCreateOrMove(ctx context.Context, args []string, weight float64, id string) ([]byte, string, error) {
	cmdArgs := command.Args{"args": args, "weight": weight, "id": id}
	return osd.c.Run(ctx, "osd crush create-or-move", cmdArgs)
}

// CrushMove builds and submits "osd crush move": move existing entry for
// <name> to location <args>.
func (osd *OSD) CrushMove(ctx context.Context, args []string, name string) ([]byte, string, error) {
	cmdArgs := command.Args{"args": args, "name": name}
	return osd.c.Run(ctx, "osd crush move", cmdArgs)
}

// CrushLink builds and submits "osd crush link": link existing entry for
// <name> under location <args>.
func (osd *OSD) CrushLink(ctx context.Context, args []string, name string) ([]byte, string, error) {
	cmdArgs := command.Args{"args": args, "name": name}
	return osd.c.Run(ctx, "osd crush link", cmdArgs)
}

// CrushRm builds and submits "osd crush rm": remove <name> from crush map
// (everywhere, or just at <ancestor>).
func (osd *OSD) CrushRm(ctx context.Context, name string, ancestor *string) ([]byte, string, error) {
	args := command.Args{"name": name}
	if ancestor != nil {
		args["ancestor"] = *ancestor
	}
	return osd.c.Run(ctx, "osd crush rm", args)
}

// CrushRemove builds and submits "osd crush remove": remove <name> from
// crush map (everywhere, or just at <ancestor>).
func (osd *OSD) CrushRemove(ctx context.Context, name string, ancestor *string) ([]byte, string, error) {
	args := command.Args{"name": name}
	if ancestor != nil {
		args["ancestor"] = *ancestor
	}
	return osd.c.Run(ctx, "osd crush remove", args)
}

// CrushUnlink builds and submits "osd crush unlink": unlink <name> from
// crush map (everywhere, or just at <ancestor>).
func (osd *OSD) CrushUnlink(ctx context.Context, name string, ancestor *string) ([]byte, string, error) {
	args := command.Args{"name": name}
	if ancestor != nil {
		args["ancestor"] = *ancestor
	}
	return osd.c.Run(ctx, "osd crush unlink", args)
}

// CrushReweightAll builds and submits "osd crush reweight-all":
// recalculate the weights for the tree to ensure they sum correctly.
func (osd *OSD) CrushReweightAll(ctx context.Context) ([]byte, string, error) {
	return osd.c.Run(ctx, "osd crush reweight-all", nil)
}

// CrushReweight builds and submits "osd crush reweight": change <name>'s
// weight to <weight> in crush map.
func (osd *OSD) CrushReweight(ctx context.Context, weight float64, name string) ([]byte, string, error) {
	args := command.Args{"weight": weight, "name": name}
	return osd.c.Run(ctx, "osd crush reweight", args)
}

// CrushReweightSubtree builds and submits "osd crush reweight-subtree":
// change all leaf items beneath <name> to <weight> in crush map.
func (osd *OSD) CrushReweightSubtree(ctx context.Context, weight float64, name string) ([]byte, string, error) {
	args := command.Args{"weight": weight, "name": name}
	return osd.c.Run(ctx, "osd crush reweight-subtree", args)
}

// CrushTunables builds and submits "osd crush tunables": set crush
// tunables values to <profile>.
func (osd *OSD) CrushTunables(ctx context.Context, profile string) ([]byte, string, error) {
	args := command.Args{"profile": profile}
	return osd.c.Run(ctx, "osd crush tunables", args)
}

// CrushSetTunable builds and submits "osd crush set-tunable": set crush
// tunable <tunable> to <value>.
func (osd *OSD) CrushSetTunable(ctx context.Context, value int64, tunable string) ([]byte, string, error) {
	args := command.Args{"value": value, "tunable": tunable}
	return osd.c.Run(ctx, "osd crush set-tunable", args)
}

// CrushGetTunable builds and submits "osd crush get-tunable": get crush
// tunable <tunable>.
func (osd *OSD) CrushGetTunable(ctx context.Context, tunable string) ([]byte, string, error) {
	args := command.Args{"tunable": tunable}
	return osd.c.Run(ctx, "osd crush get-tunable", args)
}

// CrushShowTunables builds and submits "osd crush show-tunables": show
// current crush tunables.
func (osd *OSD) CrushShowTunables(ctx context.Context) ([]byte, string, error) {
	return osd.c.Run(ctx, "osd crush show-tunables", nil)
}

// CrushRuleCreateSimple builds and submits "osd crush rule create-simple":
// create crush rule <name> to start from <root>, replicate across buckets
// of type <type>, using a choose mode of <firstn|indep> (default firstn;
// indep best for erasure pools).
func (osd *OSD) CrushRuleCreateSimple(ctx context.Context, typ string, root string, name string, mode *string) ([]byte, string, error) {
	args := command.Args{"type": typ, "root": root, "name": name}
	if mode != nil {
		args["mode"] = *mode
	}
	return osd.c.Run(ctx, "osd crush rule create-simple", args)
}

// CrushRuleCreateErasure builds and submits "osd crush rule
// create-erasure": create crush rule <name> for erasure coded pool
// created with <profile> (default default).
func (osd *OSD) CrushRuleCreateErasure(ctx context.Context, name string, profile *string) ([]byte, string, error) {
	args := command.Args{"name": name}
	if profile != nil {
		args["profile"] = *profile
	}
	return osd.c.Run(ctx, "osd crush rule create-erasure", args)
}

// CrushRuleRm builds and submits "osd crush rule rm": remove crush rule
// <name>.
func (osd *OSD) CrushRuleRm(ctx context.Context, name string) ([]byte, string, error) {
	args := command.Args{"name": name}
	return osd.c.Run(ctx, "osd crush rule rm", args)
}

// CrushTree builds and submits "osd crush tree": dump crush buckets and
// items in a tree view.
func (osd *OSD) CrushTree(ctx context.Context) ([]byte, string, error) {
	return osd.c.Run(ctx, "osd crush tree", nil)
}

// Setmaxosd builds and submits "osd setmaxosd": set new maximum osd value.
func (osd *OSD) Setmaxosd(ctx context.Context, newmax int64) ([]byte, string, error) {
	args := command.Args{"newmax": newmax}
	return osd.c.Run(ctx, "osd setmaxosd", args)
}

// Pause builds and submits "osd pause": pause osd.
func (osd *OSD) Pause(ctx context.Context) ([]byte, string, error) {
	return osd.c.Run(ctx, "osd pause", nil)
}

// Unpause builds and submits "osd unpause": unpause osd.
func (osd *OSD) Unpause(ctx context.Context) ([]byte, string, error) {
	return osd.c.Run(ctx, "osd unpause", nil)
}

// ErasureCodeProfileSet builds and submits "osd erasure-code-profile set":
// create erasure code profile <name> with [<key[=value]> ...] pairs. Add a
// --force at the end to override an existing profile (VERY DANGEROUS).
func (osd *OSD) ErasureCodeProfileSet(ctx context.Context, name string, profile []string) ([]byte, string, error) {
	args := command.Args{"name": name}
	if profile != nil {
		args["profile"] = profile
	}
	return osd.c.Run(ctx, "osd erasure-code-profile set", args)
}

// ErasureCodeProfileGet builds and submits "osd erasure-code-profile get":
// get erasure code profile <name>.
func (osd *OSD) ErasureCodeProfileGet(ctx context.Context, name string) ([]byte, string, error) {
	args := command.Args{"name": name}
	return osd.c.Run(ctx, "osd erasure-code-profile get", args)
}

// ErasureCodeProfileRm builds and submits "osd erasure-code-profile rm":
// remove erasure code profile <name>.
func (osd *OSD) ErasureCodeProfileRm(ctx context.Context, name string) ([]byte, string, error) {
	args := command.Args{"name": name}
	return osd.c.Run(ctx, "osd erasure-code-profile rm", args)
}

// ErasureCodeProfileLs builds and submits "osd erasure-code-profile ls":
// list all erasure code profiles.
func (osd *OSD) ErasureCodeProfileLs(ctx context.Context) ([]byte, string, error) {
	return osd.c.Run(ctx, "osd erasure-code-profile ls", nil)
}

// Set builds and submits "osd set": set <key>.
func (osd *OSD) Set(ctx context.Context, key string) ([]byte, string, error) {
	args := command.Args{"key": key}
	return osd.c.Run(ctx, "osd set", args)
}

// Unset builds and submits "osd unset": unset <key>.
func (osd *OSD) Unset(ctx context.Context, key string) ([]byte, string, error) {
	args := command.Args{"key": key}
	return osd.c.Run(ctx, "osd unset", args)
}

// ClusterSnap builds and submits "osd cluster_snap": take cluster snapshot
// (disabled).
func (osd *OSD) ClusterSnap(ctx context.Context) ([]byte, string, error) {
	return osd.c.Run(ctx, "osd cluster_snap", nil)
}

// Down builds and submits "osd down": set osd(s) <id> [<id>...] down.
func (osd *OSD) Down(ctx context.Context, ids []string) ([]byte, string, error) {
	args := command.Args{"ids": ids}
	return osd.c.Run(ctx, "osd down", args)
}

// Out builds and submits "osd out": set osd(s) <id> [<id>...] out.
func (osd *OSD) Out(ctx context.Context, ids []string) ([]byte, string, error) {
	args := command.Args{"ids": ids}
	return osd.c.Run(ctx, "osd out", args)
}

// In builds and submits "osd in": set osd(s) <id> [<id>...] in.
func (osd *OSD) In(ctx context.Context, ids []string) ([]byte, string, error) {
	args := command.Args{"ids": ids}
	return osd.c.Run(ctx, "osd in", args)
}

// Rm builds and submits "osd rm": remove osd(s) <id> [<id>...] in.
func (osd *OSD) Rm(ctx context.Context, ids []string) ([]byte, string, error) {
	args := command.Args{"ids": ids}
	return osd.c.Run(ctx, "osd rm", args)
}

// Reweight builds and submits "osd reweight": reweight osd to 0.0 <
// <weight> < 1.0.
func (osd *OSD) Reweight(ctx context.Context, id int64, weight float64) ([]byte, string, error) {
	args := command.Args{"id": id, "weight": weight}
	return osd.c.Run(ctx, "osd reweight", args)
}

// PgTemp builds and submits "osd pg-temp": set pg_temp mapping pgid:[<id>
// [<id>...]] (developers only).
func (osd *OSD) PgTemp(ctx context.Context, pgid string, id []string) ([]byte, string, error) {
	args := command.Args{"pgid": pgid}
	if id != nil {
		args["id"] = id
	}
	return osd.c.Run(ctx, "osd pg-temp", args)
}

// PrimaryTemp builds and submits "osd primary-temp": set primary_temp
// mapping pgid:<id>|-1 (developers only).
func (osd *OSD) PrimaryTemp(ctx context.Context, pgid string, id string) ([]byte, string, error) {
	args := command.Args{"pgid": pgid, "id": id}
	return osd.c.Run(ctx, "osd primary-temp", args)
}

// PrimaryAffinity builds and submits "osd primary-affinity": adjust osd
// primary-affinity from 0.0 <= <weight> <= 1.0.
func (osd *OSD) PrimaryAffinity(ctx context.Context, id string, weight float64) ([]byte, string, error) {
	args := command.Args{"id": id, "weight": weight}
	return osd.c.Run(ctx, "osd primary-affinity", args)
}

// Lost builds and submits "osd lost": mark osd as permanently lost. THIS
// DESTROYS DATA IF NO MORE REPLICAS EXIST, BE CAREFUL.
func (osd *OSD) Lost(ctx context.Context, id int64, sure *string) ([]byte, string, error) {
	args := command.Args{"id": id}
	if sure != nil {
		args["sure"] = *sure
	}
	return osd.c.Run(ctx, "osd lost", args)
}

// Create builds and submits "osd create": create new osd (with optional
// UUID and ID).
func (osd *OSD) Create(ctx context.Context, id *int64, uuid *string) ([]byte, string, error) {
	args := command.Args{}
	if id != nil {
		args["id"] = *id
	}
	if uuid != nil {
		args["uuid"] = *uuid
	}
	return osd.c.Run(ctx, "osd create", args)
}

// Blacklist builds and submits "osd blacklist": add (optionally until
// <expire> seconds from now) or remove <addr> from blacklist.
func (osd *OSD) Blacklist(ctx context.Context, addr string, blacklistop string, expire *float64) ([]byte, string, error) {
	args := command.Args{"addr": addr, "blacklistop": blacklistop}
	if expire != nil {
		args["expire"] = *expire
	}
	return osd.c.Run(ctx, "osd blacklist", args)
}

// PoolMksnap builds and submits "osd pool mksnap": make snapshot <snap> in
// <pool>.
func (osd *OSD) PoolMksnap(ctx context.Context, pool string, snap string) ([]byte, string, error) {
	args := command.Args{"pool": pool, "snap": snap}
	return osd.c.Run(ctx, "osd pool mksnap", args)
}

// PoolRmsnap builds and submits "osd pool rmsnap": remove snapshot <snap>
// from <pool>.
func (osd *OSD) PoolRmsnap(ctx context.Context, snap string, pool string) ([]byte, string, error) {
	args := command.Args{"snap": snap, "pool": pool}
	return osd.c.Run(ctx, "osd pool rmsnap", args)
}

// PoolLs builds and submits "osd pool ls": list pools.
func (osd *OSD) PoolLs(ctx context.Context, detail *string) ([]byte, string, error) {
	args := command.Args{}
	if detail != nil {
		args["detail"] = *detail
	}
	return osd.c.Run(ctx, "osd pool ls", args)
}

// PoolCreate builds and submits "osd pool create": create pool.
func (osd *OSD) PoolCreate(ctx context.Context, pool string, pgNum int64, ruleset *string, poolType *string, expectedNumObjects *int64, erasureCodeProfile *string, pgpNum *int64) ([]byte, string, error) {
	args := command.Args{"pool": pool, "pg_num": pgNum}
	if ruleset != nil {
		args["ruleset"] = *ruleset
	}
	if poolType != nil {
		args["pool_type"] = *poolType
	}
	if expectedNumObjects != nil {
		args["expected_num_objects"] = *expectedNumObjects
	}
	if erasureCodeProfile != nil {
		args["erasure_code_profile"] = *erasureCodeProfile
	}
	if pgpNum != nil {
		args["pgp_num"] = *pgpNum
	}
	return osd.c.Run(ctx, "osd pool create", args)
}

// PoolDelete builds and submits "osd pool delete": delete pool.
func (osd *OSD) PoolDelete(ctx context.Context, pool string, sure *string, pool2 *string) ([]byte, string, error) {
	args := command.Args{"pool": pool}
	if sure != nil {
		args["sure"] = *sure
	}
	if pool2 != nil {
		args["pool2"] = *pool2
	}
	return osd.c.Run(ctx, "osd pool delete", args)
}

// PoolRm builds and submits "osd pool rm": remove pool.
func (osd *OSD) PoolRm(ctx context.Context, pool string, pool2 *string, sure *string) ([]byte, string, error) {
	args := command.Args{"pool": pool}
	if pool2 != nil {
		args["pool2"] = *pool2
	}
	if sure != nil {
		args["sure"] = *sure
	}
	return osd.c.Run(ctx, "osd pool rm", args)
}

// PoolRename builds and submits "osd pool rename": rename <srcpool> to
// <destpool>.
func (osd *OSD) PoolRename(ctx context.Context, destpool string, srcpool string) ([]byte, string, error) {
	args := command.Args{"destpool": destpool, "srcpool": srcpool}
	return osd.c.Run(ctx, "osd pool rename", args)
}

// PoolGet builds and submits "osd pool get": get pool parameter <var>.
func (osd *OSD) PoolGet(ctx context.Context, varname string, pool string) ([]byte, string, error) {
	args := command.Args{"var": varname, "pool": pool}
	return osd.c.Run(ctx, "osd pool get", args)
}

// PoolSet builds and submits "osd pool set": set pool parameter <var> to
// <val>.
func (osd *OSD) PoolSet(ctx context.Context, val string, pool string, varname string, force *string) ([]byte, string, error) {
	args := command.Args{"val": val, "pool": pool, "var": varname}
	if force != nil {
		args["force"] = *force
	}
	return osd.c.Run(ctx, "osd pool set", args)
}

// PoolSetQuota builds and submits "osd pool set-quota": set object or byte
// limit on pool.
func (osd *OSD) PoolSetQuota(ctx context.Context, pool string, val string, field string) ([]byte, string, error) {
	args := command.Args{"pool": pool, "val": val, "field": field}
	return osd.c.Run(ctx, "osd pool set-quota", args)
}

// PoolGetQuota builds and submits "osd pool get-quota": obtain object or
// byte limits for pool.
func (osd *OSD) PoolGetQuota(ctx context.Context, pool string) ([]byte, string, error) {
	args := command.Args{"pool": pool}
	return osd.c.Run(ctx, "osd pool get-quota", args)
}

// PoolStats builds and submits "osd pool stats": obtain stats from all
// pools, or from specified pool.
func (osd *OSD) PoolStats(ctx context.Context, name *string) ([]byte, string, error) {
	args := command.Args{}
	if name != nil {
		args["name"] = *name
	}
	return osd.c.Run(ctx, "osd pool stats", args)
}

// Utilization builds and submits "osd utilization": get basic pg
// distribution stats.
func (osd *OSD) Utilization(ctx context.Context) ([]byte, string, error) {
	return osd.c.Run(ctx, "osd utilization", nil)
}

// ReweightByUtilization builds and submits "osd reweight-by-utilization":
// reweight OSDs by utilization [overload-percentage-for-consideration,
// default 120].
func (osd *OSD) ReweightByUtilization(ctx context.Context, oload *int64, maxOsds *int64, noIncreasing *string, maxChange *float64) ([]byte, string, error) {
	args := command.Args{}
	if oload != nil {
		args["oload"] = *oload
	}
	if maxOsds != nil {
		args["max_osds"] = *maxOsds
	}
	if noIncreasing != nil {
		args["no_increasing"] = *noIncreasing
	}
	if maxChange != nil {
		args["max_change"] = *maxChange
	}
	return osd.c.Run(ctx, "osd reweight-by-utilization", args)
}

// TestReweightByUtilization builds and submits
// "osd test-reweight-by-utilization": dry run of reweight OSDs by
// utilization [overload-percentage-for-consideration, default 120].
func (osd *OSD) TestReweightByUtilization(ctx context.Context, maxOsds *int64, maxChange *float64, noIncreasing *string, oload *int64) ([]byte, string, error) {
	args := command.Args{}
	if maxOsds != nil {
		args["max_osds"] = *maxOsds
	}
	if maxChange != nil {
		args["max_change"] = *maxChange
	}
	if noIncreasing != nil {
		args["no_increasing"] = *noIncreasing
	}
	if oload != nil {
		args["oload"] = *oload
	}
	return osd.c.Run(ctx, "osd test-reweight-by-utilization", args)
}

// ReweightByPg builds and submits "osd reweight-by-pg": reweight OSDs by
// PG distribution [overload-percentage-for-consideration, default 120].
func (osd *OSD) ReweightByPg(ctx context.Context, maxOsds *int64, maxChange *float64, oload *int64, pools []string) ([]byte, string, error) {
	args := command.Args{}
	if maxOsds != nil {
		args["max_osds"] = *maxOsds
	}
	if maxChange != nil {
		args["max_change"] = *maxChange
	}
	if oload != nil {
		args["oload"] = *oload
	}
	if pools != nil {
		args["pools"] = pools
	}
	return osd.c.Run(ctx, "osd reweight-by-pg", args)
}

// TestReweightByPg builds and submits "osd test-reweight-by-pg": dry
// run of reweight OSDs by PG distribution
// [overload-percentage-for-consideration, default 120].
func (osd *OSD) TestReweightByPg(ctx context.Context, maxChange *float64, maxOsds *int64, pools []string, oload *int64) ([]byte, string, error) {
	args := command.Args{}
	if maxChange != nil {
		args["max_change"] = *maxChange
	}
	if maxOsds != nil {
		args["max_osds"] = *maxOsds
	}
	if pools != nil {
		args["pools"] = pools
	}
	if oload != nil {
		args["oload"] = *oload
	}
	return osd.c.Run(ctx, "osd test-reweight-by-pg", args)
}

// Thrash builds and submits "osd thrash": thrash OSDs for <num_epochs>.
func (osd *OSD) Thrash(ctx context.Context, numEpochs int64) ([]byte, string, error) {
	args := command.Args{"num_epochs": numEpochs}
	return osd.c.Run(ctx, "osd thrash", args)
}

// Df builds and submits "osd df": show OSD utilization.
func (osd *OSD) Df(ctx context.Context, outputMethod *string) ([]byte, string, error) {
	args := command.Args{}
	if outputMethod != nil {
		args["output_method"] = *outputMethod
	}
	return osd.c.Run(ctx, "osd df", args)
}

// TierAdd builds and submits "osd tier add": add the tier <tierpool> (the
// second one) to base pool <pool> (the first one).
func (osd *OSD) TierAdd(ctx context.Context, tierpool string, pool string, forceNonempty *string) ([]byte, string, error) {
	args := command.Args{"tierpool": tierpool, "pool": pool}
	if forceNonempty != nil {
		args["force_nonempty"] = *forceNonempty
	}
	return osd.c.Run(ctx, "osd tier add", args)
}

// TierRemove builds and submits "osd tier remove": remove the tier
// <tierpool> (the second one) from base pool <pool> (the first one).
func (osd *OSD) TierRemove(ctx context.Context, tierpool string, pool string) ([]byte, string, error) {
	args := command.Args{"tierpool": tierpool, "pool": pool}
	return osd.c.Run(ctx, "osd tier remove", args)
}

// TierRm builds and submits "osd tier rm": remove the tier <tierpool> (the
// second one) from base pool <pool> (the first one).
func (osd *OSD) TierRm(ctx context.Context, pool string, tierpool string) ([]byte, string, error) {
	args := command.Args{"pool": pool, "tierpool": tierpool}
	return osd.c.Run(ctx, "osd tier rm", args)
}

// TierCacheMode builds and submits "osd tier cache-mode": specify the
// caching mode for cache tier <pool>.
func (osd *OSD) TierCacheMode(ctx context.Context, pool string, mode string, sure *string) ([]byte, string, error) {
	args := command.Args{"pool": pool, "mode": mode}
	if sure != nil {
		args["sure"] = *sure
	}
	return osd.c.Run(ctx, "osd tier cache-mode", args)
}

// TierSetOverlay builds and submits "osd tier set-overlay": set the
// overlay pool for base pool <pool> to be <overlaypool>.
func (osd *OSD) TierSetOverlay(ctx context.Context, overlaypool string, pool string) ([]byte, string, error) {
	args := command.Args{"overlaypool": overlaypool, "pool": pool}
	return osd.c.Run(ctx, "osd tier set-overlay", args)
}

// TierRemoveOverlay builds and submits "osd tier remove-overlay": remove
// the overlay pool for base pool <pool>.
func (osd *OSD) TierRemoveOverlay(ctx context.Context, pool string) ([]byte, string, error) {
	args := command.Args{"pool": pool}
	return osd.c.Run(ctx, "osd tier remove-overlay", args)
}

// TierRmOverlay builds and submits "osd tier rm-overlay": remove the
// overlay pool for base pool <pool>.
func (osd *OSD) TierRmOverlay(ctx context.Context, pool string) ([]byte, string, error) {
	args := command.Args{"pool": pool}
	return osd.c.Run(ctx, "osd tier rm-overlay", args)
}

// TierAddCache builds and submits "osd tier add-cache": add a cache
// <tierpool> (the second one) of size <size> to existing pool <pool> (the
// first one).
func (osd *OSD) TierAddCache(ctx context.Context, size int64, pool string, tierpool string) ([]byte, string, error) {
	args := command.Args{"size": size, "pool": pool, "tierpool": tierpool}
	return osd.c.Run(ctx, "osd tier add-cache", args)
}
