package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/termb64/termb64/base64"
)

func newDecodeCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "decode BASE64",
		Short: "decode BASE64 to bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := []byte(args[0])
			if o.nullTerm {
				// Arguments cannot carry a NUL, so add it here.
				src = append(src, 0)
			}

			enc := base64.StdEncoding
			if o.strict {
				enc = enc.Strict()
			}
			required, err := enc.DecodedLen(src, o.nullTerm)
			if err != nil {
				return err
			}
			size, err := o.outputCap(cmd.Flags(), required)
			if err != nil {
				return err
			}
			dst := make([]byte, size)
			n, err := enc.Decode(dst, src, o.nullTerm)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%q\n", dst[:n])
			return nil
		},
	}
	f := cmd.Flags()
	addBufferFlags(f, &o, "terminated", "BASE64 is null-terminated")
	f.BoolVar(&o.strict, "strict", false, "reject non-zero padding bits")
	return cmd
}
