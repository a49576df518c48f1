package client

import (
	"context"

	"github.com/cuemby/cephcmd/pkg/command"
)

// Auth groups the authentication and key management commands. Methods mirror the
// latest-generation surface; running one against an older catalog
// that lacks the operation reports catalog.ErrUnknownOperation.
type Auth struct {
	c *Client
}

// Export builds and submits "auth export": write keyring for requested
// entity, or master keyring if none given.
func (auth *Auth) Export(ctx context.Context, entity *string) ([]byte, string, error) {
	args := command.Args{}
	if entity != nil {
		args["entity"] = *entity
	}
	return auth.c.Run(ctx, "auth export", args)
}

// Get builds and submits "auth get": write keyring file with requested
// key.
func (auth *Auth) Get(ctx context.Context, entity string) ([]byte, string, error) {
	args := command.Args{"entity": entity}
	return auth.c.Run(ctx, "auth get", args)
}

// GetKey builds and submits "auth get-key": display requested key.
func (auth *Auth) GetKey(ctx context.Context, entity string) ([]byte, string, error) {
	args := command.Args{"entity": entity}
	return auth.c.Run(ctx, "auth get-key", args)
}

// PrintKey builds and submits "auth print-key": display requested key.
func (auth *Auth) PrintKey(ctx context.Context, entity string) ([]byte, string, error) {
	args := command.Args{"entity": entity}
	return auth.c.Run(ctx, "auth print-key", args)
}

// AuthPrintKey builds and submits "auth print_key": display requested key.
func (auth *Auth) AuthPrintKey(ctx context.Context, entity string) ([]byte, string, error) {
	args := command.Args{"entity": entity}
	return auth.c.Run(ctx, "auth print_key", args)
}

// List builds and submits "auth list": list authentication state.
func (auth *Auth) List(ctx context.Context) ([]byte, string, error) {
	return auth.c.Run(ctx, "auth list", nil)
}

// Import builds and submits "auth import": auth import: read keyring file
// from -i <file>.
func (auth *Auth) Import(ctx context.Context, inbuf []byte) ([]byte, string, error) {
	return auth.c.RunWithInput(ctx, "auth import", nil, inbuf)
}

// Add builds and submits "auth add": add auth info for <entity> from input
// file, or random key if no input is given, and/or any caps specified in
// the command.
func (auth *Auth) Add(ctx context.Context, entity string, caps []string, inbuf []byte) ([]byte, string, error) {
	args := command.Args{"entity": entity}
	if caps != nil {
		args["caps"] = caps
	}
	return auth.c.RunWithInput(ctx, "auth add", args, inbuf)
}

// GetOrCreateKey builds and submits "auth get-or-create-key": get, or add,
// key for <name> from system/caps pairs specified in the command. If key
// already exists, any given caps must match the existing caps for that
// key.
func (auth *Auth) GetOrCreateKey(ctx context.Context, entity string, caps []string) ([]byte, string, error) {
	args := command.Args{"entity": entity}
	if caps != nil {
		args["caps"] = caps
	}
	return auth.c.Run(ctx, "auth get-or-create-key", args)
}

// GetOrCreate builds and submits "auth get-or-create": add auth info for
// <entity> from input file, or random key if no input given, and/or any
// caps specified in the command.
func (auth *Auth) GetOrCreate(ctx context.Context, entity string, caps []string, inbuf []byte) ([]byte, string, error) {
	args := command.Args{"entity": entity}
	if caps != nil {
		args["caps"] = caps
	}
	return auth.c.RunWithInput(ctx, "auth get-or-create", args, inbuf)
}

// Caps builds and submits "auth caps": update caps for <name> from caps
// specified in the command.
func (auth *Auth) Caps(ctx context.Context, entity string, caps []string) ([]byte, string, error) {
	args := command.Args{"entity": entity, "caps": caps}
	return auth.c.Run(ctx, "auth caps", args)
}

// Del builds and submits "auth del": delete all caps for <name>.
func (auth *Auth) Del(ctx context.Context, entity string) ([]byte, string, error) {
	args := command.Args{"entity": entity}
	return auth.c.Run(ctx, "auth del", args)
}

// Rm builds and submits "auth rm": remove all caps for <name>.
func (auth *Auth) Rm(ctx context.Context, entity string) ([]byte, string, error) {
	args := command.Args{"entity": entity}
	return auth.c.Run(ctx, "auth rm", args)
}
