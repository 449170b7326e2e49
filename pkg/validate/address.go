package validate

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// IsWalletAddress reports whether s is a canonical EVM address:
// "0x" followed by exactly 40 hex digits, case-insensitive.
// common.IsHexAddress also accepts the bare 40-digit form, so the
// prefix is required here before delegating.
func IsWalletAddress(s string) bool {
	if len(s) != 42 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return false
	}
	return common.IsHexAddress(s)
}

// Normalize lowercases a wallet address so it can be used as a storage key.
func Normalize(s string) string {
	return strings.ToLower(s)
}
