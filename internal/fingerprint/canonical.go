// Package fingerprint computes stable content digests of benchmark runs.
//
// Digests are SHA-256 over canonical JSON with a domain prefix. The input
// digest identifies the list being sorted no matter how it was supplied
// (flags, profile, generator); the settings digest identifies how the run
// was printed and which algorithms it ran, so runs can be compared like
// for like.
package fingerprint

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// MarshalCanonical produces canonical JSON: object keys sorted, no
// insignificant whitespace, strings NFC-normalized and never HTML-escaped.
//
// Supported values: string, bool, int, int64, []string and map[string]any
// of those. Floats are rejected; render them as strings.
func MarshalCanonical(v any) ([]byte, error) {
	switch val := v.(type) {
	case string:
		return marshalString(val)
	case bool:
		return []byte(strconv.FormatBool(val)), nil
	case int:
		return []byte(strconv.Itoa(val)), nil
	case int64:
		return []byte(strconv.FormatInt(val, 10)), nil
	case []string:
		return marshalStrings(val)
	case map[string]any:
		return marshalObject(val)
	default:
		return nil, fmt.Errorf("unsupported type for canonical JSON: %T", v)
	}
}

// marshalString NFC-normalizes s so canonically equivalent delimiters
// digest alike, and encodes it without HTML escaping.
func marshalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(norm.NFC.String(s)); err != nil {
		return nil, err
	}
	out := bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})
	return unescapeLineSeparators(out), nil
}

// unescapeLineSeparators undoes encoding/json's \u2028 and \u2029 escapes
// so those characters are written literally like every other code point.
// Escape sequences are consumed pairwise: an escaped backslash followed by
// "u2028" is left alone.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}

	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 >= len(data) {
			out = append(out, data[i])
			continue
		}
		if i+6 <= len(data) && string(data[i+1:i+5]) == "u202" && (data[i+5] == '8' || data[i+5] == '9') {
			if data[i+5] == '8' {
				out = append(out, "\u2028"...)
			} else {
				out = append(out, "\u2029"...)
			}
			i += 5
			continue
		}
		out = append(out, data[i], data[i+1])
		i++
	}
	return out
}

func marshalStrings(arr []string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, s := range arr {
		if i > 0 {
			buf.WriteByte(',')
		}
		b, err := marshalString(s)
		if err != nil {
			return nil, fmt.Errorf("array[%d]: %w", i, err)
		}
		buf.Write(b)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// marshalObject writes keys in byte order. Keys are fixed ASCII field
// names, for which byte order and UTF-16 order agree.
func marshalObject(obj map[string]any) ([]byte, error) {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := marshalString(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := MarshalCanonical(obj[k])
		if err != nil {
			return nil, fmt.Errorf("object[%q]: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
