/*
Package log provides structured logging using zerolog.

The package wraps zerolog behind a global Logger initialized once via
Init, plus child-logger constructors that stamp the fields every
cephcmd log line should carry. Output is JSON by default; console
format is for humans at a terminal.

# Usage

Initialize once at startup:

	log.Init(log.Config{
		Level:      "info",
		JSONOutput: true,
	})

Component loggers tag their subsystem:

	logger := log.WithComponent("client")
	logger.Info().Str("prefix", "osd reweight").Msg("command completed")

Domain-specific children:

	log.WithGeneration("jewel")
	log.WithPrefix("osd reweight")

Package-level helpers cover the common one-liners:

	log.Info("connected to cluster")
	log.Error("command submission failed")

The global Logger is safe for concurrent use; child loggers are cheap
value copies.
*/
package log
