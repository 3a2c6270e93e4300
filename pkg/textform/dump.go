package textform

import (
	"fmt"
	"strings"

	"github.com/rawbytedev/tagwire"
)

// Hex renders buf as space-separated lowercase byte pairs.
func Hex(buf []byte) string {
	var sb strings.Builder
	for i, c := range buf {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", c)
	}
	return sb.String()
}

// Raw renders buf as text, replacing bytes outside printable ASCII with '.'.
func Raw(buf []byte) string {
	out := make([]byte, len(buf))
	for i, c := range buf {
		if c >= 32 && c < 127 {
			out[i] = c
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}

// Listing renders one line per value: ` * type=D value=42`.
// Strings are quoted.
func Listing(vals []tagwire.Value) string {
	var sb strings.Builder
	for _, v := range vals {
		payload := FormatPayload(v)
		if v.Type() == tagwire.TypeString {
			payload = fmt.Sprintf("%q", payload)
		}
		fmt.Fprintf(&sb, " * type=%c value=%s\n", byte(v.Type()), payload)
	}
	return sb.String()
}
