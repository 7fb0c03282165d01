package costmodel

import (
	"hash/fnv"
	"io"
)

// Digest computes a stable content hash of the raw config.tsa text, used
// as the cost_model_digest field of the output TOML document (§6). It is
// FNV-1a over the exact bytes Parse was given, so a Digest mismatch
// between two runs means the cost model itself differs, not just its
// in-memory representation.
//
// Complexity: O(n).
func Digest(raw io.Reader) (string, error) {
	h := fnv.New128a()
	if _, err := io.Copy(h, raw); err != nil {
		return "", err
	}
	return fnvHex(h.Sum(nil)), nil
}

func fnvHex(sum []byte) string {
	const hexDigits = "0123456789abcdef"
	out := make([]byte, len(sum)*2)
	for i, b := range sum {
		out[i*2] = hexDigits[b>>4]
		out[i*2+1] = hexDigits[b&0xf]
	}
	return string(out)
}
