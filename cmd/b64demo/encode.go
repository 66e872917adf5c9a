package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/termb64/termb64/base64"
)

func newEncodeCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "encode TEXT",
		Short: "encode TEXT as Base64",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := []byte(args[0])
			size, err := o.outputCap(cmd.Flags(), base64.EncodedLen(len(src), o.nullTerm))
			if err != nil {
				return err
			}
			dst := make([]byte, size)
			n, err := base64.Encode(dst, src, o.nullTerm)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%q\n", dst[:n])
			return nil
		},
	}
	addBufferFlags(cmd.Flags(), &o, "terminate", "append a null terminator")
	return cmd
}
