// SPDX-License-Identifier: MIT

package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the dynmat command tree bound to the given streams.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	o := NewOptions(in, out, errOut)

	cmd := &cobra.Command{
		Use:   "dynmat",
		Short: "Dense vector and square matrix arithmetic over whitespace-separated text",
		Long: `dynmat reads operands in the textual vector/matrix format and prints the result.

A vector of size N is N whitespace-separated numbers. A matrix of dimension N
is N rows of N numbers. Operands are read one after another from --input
(default stdin).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.Complete()
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.PersistentFlags()
	flags.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Log level (panic, fatal, error, warning, info, debug, trace); defaults to $"+EnvLogLevel)
	flags.StringVar(&o.Type, "type", o.Type, "Element type: int64 or float64")
	flags.StringVar(&o.Verb, "verb", o.Verb, "fmt verb used to print each element, e.g. %g or %.3f")
	flags.StringVarP(&o.Input, "input", "i", o.Input, "Read operands from this file instead of stdin ('-' for stdin)")

	cmd.AddCommand(
		newVectorCommand(o),
		newMatrixCommand(o),
	)

	return cmd
}
