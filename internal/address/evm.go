package address

import (
	"strings"

	"golang.org/x/crypto/sha3"
)

// IsEVM reports whether addr is a well-formed EVM address. Uniform-case
// addresses pass on format alone; mixed-case addresses must carry a valid
// EIP-55 checksum.
func IsEVM(addr string) bool {
	if !strings.HasPrefix(addr, "0x") {
		return false
	}

	hexPart := addr[2:]
	if len(hexPart) != 40 || !isHex(hexPart) {
		return false
	}

	lower := strings.ToLower(hexPart)
	upper := strings.ToUpper(hexPart)
	if hexPart == lower || hexPart == upper {
		return true
	}

	return hexPart == checksumHex(lower)
}

// ChecksumEVM returns the EIP-55 checksummed form of a well-formed
// address, or "" if addr is not a valid EVM address.
func ChecksumEVM(addr string) string {
	if !IsEVM(addr) {
		return ""
	}
	return "0x" + checksumHex(strings.ToLower(addr[2:]))
}

// checksumHex applies EIP-55 casing to a lowercase 40-char hex string.
func checksumHex(lower string) string {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	sum := h.Sum(nil)

	out := []byte(lower)
	for i, c := range out {
		if c < 'a' || c > 'f' {
			continue
		}

		nibble := sum[i/2] >> 4
		if i%2 == 1 {
			nibble = sum[i/2] & 0x0f
		}
		if nibble >= 8 {
			out[i] = c - 'a' + 'A'
		}
	}

	return string(out)
}

func isHex(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
