package cli

import (
	"fmt"

	"github.com/rawbytedev/tagwire"
	"github.com/rawbytedev/tagwire/pkg/textform"
	"github.com/spf13/cobra"
)

func sampleBuffer() []byte {
	enc := tagwire.NewEncoder(96)
	enc.WriteInt32(42)
	enc.WriteString("Hello world")
	enc.WriteBool(true)
	enc.WriteBool(false)
	enc.WriteBool(false)
	enc.WriteBool(true)
	enc.WriteUint64(1234)
	enc.WriteInt64(-1234)
	enc.WriteFloat64(12.34)
	enc.WriteFloat32(12.34)
	enc.WriteInt8('x')
	enc.WriteString("cheese")
	enc.WriteString("string")
	enc.WriteInt8('-')
	return enc.Bytes()
}

func newDemoCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Encode a fixed sample, dump it and decode it back",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			buf := sampleBuffer()
			fmt.Fprintf(w, "Encoding\n\nHex: %s\n\nRaw: %s\n\n", textform.Hex(buf), textform.Raw(buf))

			vals, err := o.decodeBuffer(buf)
			if err != nil {
				return err
			}
			fmt.Fprint(w, "Decoding\n\nValues:\n")
			return render(w, o.cfg.Output, vals)
		},
	}
}
