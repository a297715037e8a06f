// Command sqllint checks that every SQL constant starts with a unique
// "--sql <uuid>" audit marker, which the SQL runner attaches to its logs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	cmd := &cobra.Command{
		Use:           "sqllint [paths...]",
		Short:         "Verify --sql <uuid> markers on SQL constants",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			l := newLinter()
			for _, target := range args {
				if err := l.lintPath(target); err != nil {
					return err
				}
			}
			if vs := l.violations(); len(vs) > 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "sqllint: SQL audit marker violations")
				for _, v := range vs {
					fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", v)
				}
				return fmt.Errorf("%d violation(s)", len(vs))
			}
			return nil
		},
	}
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sqllint: %v\n", err)
		os.Exit(1)
	}
}
