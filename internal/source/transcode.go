package source

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Subtitle files in the wild are frequently stored in single-byte legacy
// charsets. The parser only understands UTF-8, so legacy input is decoded
// on load and encoded back on write.

func lookupCharset(name string) (encoding.Encoding, error) {
	switch name {
	case "", "utf8", "utf-8":
		return nil, nil
	case "latin1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("unsupported charset %q (expected utf8, latin1 or windows-1252)", name)
	}
}

// DecodeCharset converts content from the named charset into UTF-8.
// The second result reports whether a conversion actually happened.
func DecodeCharset(content []byte, charset string) ([]byte, bool, error) {
	enc, err := lookupCharset(charset)
	if err != nil {
		return nil, false, err
	}
	if enc == nil {
		return content, false, nil
	}
	out, err := enc.NewDecoder().Bytes(content)
	if err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", charset, err)
	}
	return out, true, nil
}

// EncodeCharset converts UTF-8 content back into the named charset.
func EncodeCharset(content []byte, charset string) ([]byte, error) {
	enc, err := lookupCharset(charset)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return content, nil
	}
	out, err := enc.NewEncoder().Bytes(content)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", charset, err)
	}
	return out, nil
}
