package client

import (
	"context"

	"github.com/cuemby/cephcmd/pkg/command"
)

// ConfigKey groups the key-value configuration store commands. Methods mirror the
// latest-generation surface; running one against an older catalog
// that lacks the operation reports catalog.ErrUnknownOperation.
type ConfigKey struct {
	c *Client
}

// Get builds and submits "config-key get": get <key>.
func (ck *ConfigKey) Get(ctx context.Context, key string) ([]byte, string, error) {
	args := command.Args{"key": key}
	return ck.c.Run(ctx, "config-key get", args)
}

// Put builds and submits "config-key put": put <key>, value <val>.
func (ck *ConfigKey) Put(ctx context.Context, key string, val *string) ([]byte, string, error) {
	args := command.Args{"key": key}
	if val != nil {
		args["val"] = *val
	}
	return ck.c.Run(ctx, "config-key put", args)
}

// Del builds and submits "config-key del": delete <key>.
func (ck *ConfigKey) Del(ctx context.Context, key string) ([]byte, string, error) {
	args := command.Args{"key": key}
	return ck.c.Run(ctx, "config-key del", args)
}

// Rm builds and submits "config-key rm": rm <key>.
func (ck *ConfigKey) Rm(ctx context.Context, key string) ([]byte, string, error) {
	args := command.Args{"key": key}
	return ck.c.Run(ctx, "config-key rm", args)
}

// Exists builds and submits "config-key exists": check for <key>'s
// existence.
func (ck *ConfigKey) Exists(ctx context.Context, key string) ([]byte, string, error) {
	args := command.Args{"key": key}
	return ck.c.Run(ctx, "config-key exists", args)
}

// List builds and submits "config-key list": list keys.
func (ck *ConfigKey) List(ctx context.Context) ([]byte, string, error) {
	return ck.c.Run(ctx, "config-key list", nil)
}
