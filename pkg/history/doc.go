// Package history is the CLI's bbolt-backed record of submitted
// commands. The SDK core never writes history; only cmd/cephcmd does.
package history
