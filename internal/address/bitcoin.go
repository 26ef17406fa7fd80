package address

import (
	"strings"

	"github.com/btcsuite/btcutil/base58"
	"github.com/btcsuite/btcutil/bech32"
)

// Bitcoin address version bytes and segwit human-readable parts.
const (
	btcMainnetP2PKH = 0x00
	btcMainnetP2SH  = 0x05
	btcMainnetHRP   = "bc"

	btcTestnetP2PKH = 0x6f
	btcTestnetP2SH  = 0xc4
	btcTestnetHRP   = "tb"
)

// IsBitcoinMainnet reports whether addr is a valid Bitcoin mainnet
// address: base58check P2PKH/P2SH or segwit bech32.
func IsBitcoinMainnet(addr string) bool {
	return isBitcoin(addr, btcMainnetP2PKH, btcMainnetP2SH, btcMainnetHRP)
}

// IsBitcoinTestnet reports whether addr is a valid Bitcoin testnet
// address: base58check P2PKH/P2SH or segwit bech32.
func IsBitcoinTestnet(addr string) bool {
	return isBitcoin(addr, btcTestnetP2PKH, btcTestnetP2SH, btcTestnetHRP)
}

func isBitcoin(addr string, p2pkh, p2sh byte, hrp string) bool {
	if strings.HasPrefix(strings.ToLower(addr), hrp+"1") {
		return isSegwit(addr, hrp)
	}

	payload, version, err := base58.CheckDecode(addr)
	if err != nil {
		return false
	}
	if len(payload) != 20 {
		return false
	}
	return version == p2pkh || version == p2sh
}

// isSegwit validates a bech32 segwit address for the given hrp.
func isSegwit(addr, hrp string) bool {
	gotHRP, data, err := bech32.Decode(addr)
	if err != nil {
		return false
	}
	if gotHRP != hrp || len(data) < 1 {
		return false
	}

	version := data[0]
	if version > 16 {
		return false
	}

	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return false
	}
	if len(program) < 2 || len(program) > 40 {
		return false
	}

	// Version 0 programs are exactly a key hash or script hash.
	if version == 0 && len(program) != 20 && len(program) != 32 {
		return false
	}

	return true
}
