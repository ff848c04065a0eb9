// internal/jsonutil/json.go
package jsonutil

import (
	"io"

	"github.com/bytedance/sonic"
)

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := sonic.ConfigStd.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
