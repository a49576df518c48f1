package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cuemby/cephcmd/pkg/catalog"
	"github.com/cuemby/cephcmd/pkg/command"
)

var flagSubsystem string

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List the operations the selected generation supports",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		ops := cat.Operations()
		if flagSubsystem != "" {
			ops = cat.BySubsystem(catalog.Subsystem(flagSubsystem))
			if len(ops) == 0 {
				return fmt.Errorf("no operations for subsystem %q in %s", flagSubsystem, cat.Generation())
			}
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PREFIX\tSUBSYSTEM\tDESCRIPTION")
		for _, op := range ops {
			fmt.Fprintf(w, "%s\t%s\t%s\n", op.Prefix, op.Subsystem, op.Desc)
		}
		return w.Flush()
	},
}

var describeCmd = &cobra.Command{
	Use:   "describe <prefix>",
	Short: "Show the declared fields and constraints of one operation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		spec, err := cat.Lookup(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s, %s)\n", spec.Prefix, spec.Subsystem, cat.Generation())
		if spec.Desc != "" {
			fmt.Printf("  %s\n", spec.Desc)
		}
		if len(spec.Fields) == 0 {
			fmt.Println("  no fields")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "  FIELD\tTYPE\tARITY\tREQUIRED")
		for _, f := range spec.Fields {
			arity := "one"
			if f.Arity == command.Many {
				arity = "many"
			}
			required := ""
			if f.Required {
				required = "yes"
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", f.Name, f.Validator.String(), arity, required)
		}
		return w.Flush()
	},
}

func init() {
	opsCmd.Flags().StringVar(&flagSubsystem, "subsystem", "", "restrict to one subsystem (pg|mds|osd|mon|auth|config-key)")
}
