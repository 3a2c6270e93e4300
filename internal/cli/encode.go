package cli

import (
	"github.com/rawbytedev/tagwire"
	"github.com/rawbytedev/tagwire/pkg/textform"
	"github.com/rawbytedev/tagwire/pkg/wireframe"
	"github.com/spf13/cobra"
)

func newEncodeCmd(o *options) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "encode TOKEN...",
		Short: "Encode tag:value tokens into a buffer",
		Example: `  tagwire encode D:42 s:hello b:true
  tagwire encode --framed l:18446744073709551615 f:1.5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := textform.ParseTokens(args)
			if err != nil {
				return err
			}
			buf, err := tagwire.EncodeValues(vals)
			if err != nil {
				return err
			}
			if flagOr(cmd, "framed", o.cfg.Framed) {
				buf = wireframe.AppendFrame(nil, buf)
			}
			o.log.Debug().Int("values", len(vals)).Int("bytes", len(buf)).Msg("encoded buffer")
			return writeBytes(cmd.OutOrStdout(), buf, raw)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "write raw bytes instead of hex")
	cmd.Flags().Bool("framed", false, "wrap the buffer in a checksummed frame")
	return cmd
}
