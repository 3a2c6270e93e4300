package cli

import (
	"github.com/rawbytedev/tagwire/pkg/transcode"
	"github.com/spf13/cobra"
)

func newConvertCmd(o *options) *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "convert [HEX]",
		Short: "Transcode a buffer to MessagePack or CBOR",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args, flagOr(cmd, "raw", o.cfg.Input == "raw"))
			if err != nil {
				return err
			}
			vals, err := o.decodeBuffer(data)
			if err != nil {
				return err
			}
			out, err := transcode.Convert(to, vals)
			if err != nil {
				return err
			}
			o.log.Debug().Str("format", to).Int("bytes", len(out)).Msg("converted buffer")
			return writeBytes(cmd.OutOrStdout(), out, false)
		},
	}
	cmd.Flags().StringVar(&to, "to", transcode.FormatMsgpack, "target format: msgpack, cbor")
	cmd.Flags().Bool("raw", false, "read raw bytes from stdin instead of hex")
	return cmd
}
