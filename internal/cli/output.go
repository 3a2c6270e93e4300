package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/rawbytedev/tagwire"
	"github.com/rawbytedev/tagwire/pkg/textform"
	"gopkg.in/yaml.v3"
)

// valueView is the json/yaml shape of one decoded value.
type valueView struct {
	Tag   string `json:"tag" yaml:"tag"`
	Type  string `json:"type" yaml:"type"`
	Value any    `json:"value" yaml:"value"`
}

func viewOf(vals []tagwire.Value) []valueView {
	out := make([]valueView, 0, len(vals))
	for _, v := range vals {
		out = append(out, valueView{
			Tag:   string(rune(v.Type())),
			Type:  v.Type().String(),
			Value: viewPayload(v),
		})
	}
	return out
}

// viewPayload keeps the Go value except for NaN and infinities, which JSON
// cannot carry and are rendered as text.
func viewPayload(v tagwire.Value) any {
	switch x := v.Interface().(type) {
	case float32:
		if f := float64(x); math.IsNaN(f) || math.IsInf(f, 0) {
			return textform.FormatPayload(v)
		}
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return textform.FormatPayload(v)
		}
	}
	return v.Interface()
}

func render(w io.Writer, format string, vals []tagwire.Value) error {
	switch format {
	case "json":
		return encodeJSON(w, viewOf(vals))
	case "yaml":
		return encodeYAML(w, viewOf(vals))
	default:
		_, err := io.WriteString(w, textform.Listing(vals))
		return err
	}
}

func renderFrames(w io.Writer, format string, frames [][]tagwire.Value) error {
	switch format {
	case "json", "yaml":
		views := make([][]valueView, 0, len(frames))
		for _, f := range frames {
			views = append(views, viewOf(f))
		}
		if format == "json" {
			return encodeJSON(w, views)
		}
		return encodeYAML(w, views)
	default:
		for i, f := range frames {
			if _, err := fmt.Fprintf(w, "frame %d:\n%s", i, textform.Listing(f)); err != nil {
				return err
			}
		}
		return nil
	}
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
