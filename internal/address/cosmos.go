package address

import "github.com/btcsuite/btcutil/bech32"

// IsCosmos reports whether addr is a valid bech32 account address for the
// given prefix: matching human-readable part, valid checksum, and a
// 20-byte payload.
func IsCosmos(addr, prefix string) bool {
	hrp, data, err := bech32.Decode(addr)
	if err != nil {
		return false
	}
	if hrp != prefix {
		return false
	}

	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return false
	}

	return len(payload) == 20
}

// CosmosPrefix returns the human-readable part of a bech32 address, or
// "" when addr does not decode.
func CosmosPrefix(addr string) string {
	hrp, _, err := bech32.Decode(addr)
	if err != nil {
		return ""
	}
	return hrp
}
