package client

import (
	"fmt"
	"syscall"

	"github.com/cuemby/cephcmd/pkg/command"
)

// CommandError reports a command the cluster accepted on the wire but
// refused to execute. It carries the original command object and a
// message decoded from the errno-style status code. The round trip
// succeeded, so retrying is the caller's decision, never this layer's.
type CommandError struct {
	Cmd  *command.CommandObject
	Code int
	Msg  string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%q failed: %s (code %d)", e.Cmd.Prefix, e.Msg, e.Code)
}

// strerror decodes a negated errno-style status code into the platform
// error text, e.g. -2 -> "no such file or directory".
func strerror(code int) string {
	if code < 0 {
		code = -code
	}
	return syscall.Errno(code).Error()
}
