package cli

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var errRawArgs = errors.New("raw input is only read from stdin")

// readInput returns the buffer named by args, or stdin when args is empty.
// Hex input may contain whitespace between byte pairs.
func readInput(cmd *cobra.Command, args []string, raw bool) ([]byte, error) {
	if len(args) > 0 {
		if raw {
			return nil, errRawArgs
		}
		return decodeHex(strings.Join(args, ""))
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	if raw {
		return data, nil
	}
	return decodeHex(string(data))
}

func decodeHex(s string) ([]byte, error) {
	buf, err := hex.DecodeString(strings.Join(strings.Fields(s), ""))
	if err != nil {
		return nil, fmt.Errorf("decode hex input: %w", err)
	}
	return buf, nil
}

// writeBytes prints buf as one line of hex, or verbatim when raw is set.
func writeBytes(w io.Writer, buf []byte, raw bool) error {
	if raw {
		_, err := w.Write(buf)
		return err
	}
	_, err := fmt.Fprintln(w, hex.EncodeToString(buf))
	return err
}
