package packstream

import "unicode/utf8"

// encodeUTF8 converts s to its UTF-8 byte encoding. Go strings are already
// UTF-8 byte sequences by construction, but this validates that invariant
// explicitly rather than trusting it silently — a string built from
// arbitrary bytes (e.g. via unsafe conversion upstream) could violate it.
func encodeUTF8(s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, protocolErrorf("string is not valid UTF-8")
	}
	return []byte(s), nil
}

// decodeUTF8 reads exactly byteCount bytes from ch and decodes them as
// UTF-8. It's used by the Unpacker for every sized string payload.
func decodeUTF8(ch ReadChannel, byteCount int) (string, error) {
	if byteCount == 0 {
		return "", nil
	}
	data, err := ch.ReadBytes(byteCount)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", protocolErrorf("string payload is not valid UTF-8")
	}
	return string(data), nil
}
