package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/rawbytedev/tagwire"
	"github.com/rawbytedev/tagwire/pkg/wireframe"
	"github.com/spf13/cobra"
)

func newDecodeCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [HEX]",
		Short: "Decode a buffer and list its values",
		Example: `  tagwire decode 3c440000002a3e
  tagwire encode D:1 s:x | tagwire decode -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := flagOr(cmd, "raw", o.cfg.Input == "raw")
			data, err := readInput(cmd, args, raw)
			if err != nil {
				return err
			}
			if flagOr(cmd, "framed", o.cfg.Framed) {
				frames, err := o.decodeFrames(data)
				if err != nil {
					return err
				}
				return renderFrames(cmd.OutOrStdout(), o.cfg.Output, frames)
			}
			vals, err := o.decodeBuffer(data)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), o.cfg.Output, vals)
		},
	}
	cmd.Flags().Bool("raw", false, "read raw bytes from stdin instead of hex")
	cmd.Flags().Bool("framed", false, "read a stream of checksummed frames")
	return cmd
}

func (o *options) decodeBuffer(data []byte) ([]tagwire.Value, error) {
	var d tagwire.Decoder
	vals, err := d.Decode(data)
	if err != nil {
		return nil, err
	}
	if extra := len(data) - d.Offset(); extra > 0 {
		o.log.Warn().Int("trailing", extra).Msg("ignoring bytes after end marker")
	}
	o.log.Debug().Int("values", len(vals)).Int("bytes", d.Offset()).Msg("decoded buffer")
	return vals, nil
}

func (o *options) decodeFrames(data []byte) ([][]tagwire.Value, error) {
	r := wireframe.NewReader(bytes.NewReader(data), o.cfg.MaxFrameSize)
	var frames [][]tagwire.Value
	for {
		vals, err := r.ReadValues()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", len(frames), err)
		}
		frames = append(frames, vals)
	}
	o.log.Debug().Int("frames", len(frames)).Msg("decoded frames")
	return frames, nil
}
