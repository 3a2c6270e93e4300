// Package textform is a human-readable notation for tagwire values.
//
// A token is a tag byte, a colon and the value: "D:-7", "l:18446744073709551615",
// "f:1.5", "b:true", "s:hello world". Integers accept Go base prefixes
// (0x, 0o, 0b); floats accept NaN and ±Inf.
package textform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rawbytedev/tagwire"
)

var ErrBadToken = errors.New("textform: malformed token")

// ParseToken parses one token into a value.
func ParseToken(tok string) (tagwire.Value, error) {
	head, rest, ok := strings.Cut(tok, ":")
	if !ok || len(head) != 1 {
		return tagwire.Value{}, fmt.Errorf("%w %q: want <tag>:<value>", ErrBadToken, tok)
	}
	t, ok := tagwire.ParseType(head[0])
	if !ok {
		return tagwire.Value{}, fmt.Errorf("%w %q: unknown tag %q", ErrBadToken, tok, head)
	}
	v, err := parseValue(t, rest)
	if err != nil {
		return tagwire.Value{}, fmt.Errorf("%w %q: %w", ErrBadToken, tok, err)
	}
	return v, nil
}

// ParseTokens parses every token, stopping at the first failure.
func ParseTokens(toks []string) ([]tagwire.Value, error) {
	vals := make([]tagwire.Value, 0, len(toks))
	for i, tok := range toks {
		v, err := ParseToken(tok)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func parseValue(t tagwire.Type, s string) (tagwire.Value, error) {
	switch t {
	case tagwire.TypeBool:
		b, err := strconv.ParseBool(s)
		return tagwire.Bool(b), err
	case tagwire.TypeString:
		return tagwire.String(s), nil
	case tagwire.TypeFloat:
		f, err := strconv.ParseFloat(s, 32)
		return tagwire.Float32(float32(f)), err
	case tagwire.TypeDouble:
		f, err := strconv.ParseFloat(s, 64)
		return tagwire.Float64(f), err
	}
	bits := 8 * t.Width()
	if t.Signed() {
		n, err := strconv.ParseInt(s, 0, bits)
		if err != nil {
			return tagwire.Value{}, err
		}
		switch t {
		case tagwire.TypeInt8:
			return tagwire.Int8(int8(n)), nil
		case tagwire.TypeInt16:
			return tagwire.Int16(int16(n)), nil
		case tagwire.TypeInt32:
			return tagwire.Int32(int32(n)), nil
		default:
			return tagwire.Int64(n), nil
		}
	}
	n, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return tagwire.Value{}, err
	}
	switch t {
	case tagwire.TypeUint8:
		return tagwire.Uint8(uint8(n)), nil
	case tagwire.TypeUint16:
		return tagwire.Uint16(uint16(n)), nil
	case tagwire.TypeUint32:
		return tagwire.Uint32(uint32(n)), nil
	default:
		return tagwire.Uint64(n), nil
	}
}

// Format renders v as a token. ParseToken(Format(v)) returns v for every
// value except NaNs with a non-default payload.
func Format(v tagwire.Value) string {
	return string(rune(v.Type())) + ":" + FormatPayload(v)
}

// FormatPayload renders only the value part of a token.
func FormatPayload(v tagwire.Value) string {
	switch x := v.Interface().(type) {
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return x
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}
