package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/termb64/termb64/base64"
)

type options struct {
	nullTerm bool
	capacity int
	strict   bool
}

// outputCap returns the capacity set with -c, or required if the
// flag was not given.
func (o options) outputCap(f *pflag.FlagSet, required int) (int, error) {
	if !f.Changed("capacity") {
		return required, nil
	}
	if o.capacity < 0 {
		return 0, fmt.Errorf("invalid capacity %d: must not be negative", o.capacity)
	}
	return o.capacity, nil
}

func addBufferFlags(f *pflag.FlagSet, o *options, termName, termUsage string) {
	f.BoolVarP(&o.nullTerm, termName, "n", false, termUsage)
	f.IntVarP(&o.capacity, "capacity", "c", 0,
		"output buffer size in bytes (default: exactly what is required)")
}

// execute runs cmd and reports any error on its error writer.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

// newRootCmd creates the base command when called without any
// subcommands.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "b64demo",
		Short: "b64demo encodes and decodes Base64 through fixed-size buffers.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(),
	)
	return cmd
}

func runDemo(w io.Writer) error {
	input := []byte("-c4")
	fmt.Fprintf(w, "Input: %s\n", input)

	encoded := make([]byte, 5)
	n, err := base64.Encode(encoded, input, true)
	if err != nil {
		return err
	}
	// Drop the terminator for printing.
	fmt.Fprintf(w, "Base64 output: %s\n", encoded[:n-1])

	decoded := make([]byte, len(input))
	n, err = base64.Decode(decoded, encoded[:n], true)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Binary output: %s\n", decoded[:n])
	return nil
}
