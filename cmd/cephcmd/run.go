package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cuemby/cephcmd/pkg/client"
	"github.com/cuemby/cephcmd/pkg/command"
	"github.com/cuemby/cephcmd/pkg/history"
	"github.com/cuemby/cephcmd/pkg/log"
	"github.com/cuemby/cephcmd/pkg/rados"
	"github.com/cuemby/cephcmd/pkg/validate"
)

var (
	flagArgs  []string
	flagInbuf string
)

var runCmd = &cobra.Command{
	Use:   "run <prefix>",
	Short: "Validate and submit one admin command",
	Long: `Validate the supplied arguments against the catalog entry for
<prefix>, then submit the command to the cluster monitors. The output
buffer goes to stdout; the status string, if any, goes to stderr.

Arguments are given as repeated --arg name=value pairs. Repeatable
fields take multiple --arg pairs with the same name:

  cephcmd run "osd reweight" --arg id=5 --arg weight=0.5
  cephcmd run "pg dump_stuck" --arg stuckops=inactive --arg stuckops=stale`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, posArgs []string) error {
		prefix := posArgs[0]

		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		spec, err := cat.Lookup(prefix)
		if err != nil {
			return err
		}
		args, err := coerceArgs(spec, flagArgs)
		if err != nil {
			return err
		}

		var inbuf []byte
		if flagInbuf != "" {
			inbuf, err = os.ReadFile(flagInbuf)
			if err != nil {
				return fmt.Errorf("read input payload: %w", err)
			}
		}

		conn, err := rados.Dial(flagConf)
		if err != nil {
			return err
		}
		cli := client.New(cat, conn)
		defer cli.Close()

		outbuf, outs, err := cli.RunWithInput(context.Background(), prefix, args, inbuf)
		appendHistory(string(cat.Generation()), prefix, args, err)
		if err != nil {
			return err
		}

		if len(outbuf) > 0 {
			os.Stdout.Write(outbuf)
		}
		if outs != "" {
			fmt.Fprintln(os.Stderr, outs)
		}
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <prefix>",
	Short: "Build a command locally and print its wire encoding",
	Long: `Run the full validation and assembly pipeline for <prefix> without
submitting anything. On success the exact JSON that would be sent to
the cluster is printed to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, posArgs []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		spec, err := cat.Lookup(posArgs[0])
		if err != nil {
			return err
		}
		args, err := coerceArgs(spec, flagArgs)
		if err != nil {
			return err
		}
		obj, err := command.Build(spec, args)
		if err != nil {
			return err
		}
		wire, err := obj.MarshalJSON()
		if err != nil {
			return err
		}
		fmt.Println(string(wire))
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{runCmd, validateCmd} {
		c.Flags().StringArrayVar(&flagArgs, "arg", nil, "field value as name=value (repeatable)")
	}
	runCmd.Flags().StringVar(&flagInbuf, "in", "", "file whose contents accompany the command as its input payload")
}

// coerceArgs turns CLI name=value strings into typed args, using the
// operation's declared field types: ints and floats are parsed,
// repeatable fields accumulate, everything else passes through as a
// string. Validation proper stays in the command builder.
func coerceArgs(spec *command.OperationSpec, kvs []string) (command.Args, error) {
	args := command.Args{}
	for _, kv := range kvs {
		name, value, found := strings.Cut(kv, "=")
		if !found {
			return nil, fmt.Errorf("malformed --arg %q (expected name=value)", kv)
		}
		f, ok := spec.Field(name)
		if !ok {
			return nil, fmt.Errorf("%q is not a field of %q", name, spec.Prefix)
		}
		if f.Arity == command.Many {
			prev, _ := args[name].([]string)
			args[name] = append(prev, value)
			continue
		}
		switch f.Validator.(type) {
		case validate.Int:
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("field %q: %q is not an int", name, value)
			}
			args[name] = n
		case validate.Float:
			x, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, fmt.Errorf("field %q: %q is not a float", name, value)
			}
			args[name] = x
		default:
			args[name] = value
		}
	}
	return args, nil
}

// appendHistory records the submission in the CLI history database.
// History is best effort: a broken database never fails the command.
func appendHistory(generation, prefix string, args command.Args, runErr error) {
	if flagHistoryDB == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(flagHistoryDB), 0700); err != nil {
		log.Logger.Warn().Err(err).Msg("cannot create history directory")
		return
	}
	store, err := history.Open(flagHistoryDB)
	if err != nil {
		log.Logger.Warn().Err(err).Msg("cannot open history database")
		return
	}
	defer store.Close()

	e := &history.Entry{
		Generation: generation,
		Prefix:     prefix,
		Command:    formatArgs(args),
	}
	if runErr != nil {
		e.Error = runErr.Error()
		var cmdErr *client.CommandError
		if errors.As(runErr, &cmdErr) {
			e.Code = cmdErr.Code
		}
	}
	if err := store.Append(e); err != nil {
		log.Logger.Warn().Err(err).Msg("cannot append history entry")
	}
}

func formatArgs(args command.Args) string {
	if len(args) == 0 {
		return ""
	}
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, args[k]))
	}
	return strings.Join(parts, " ")
}
