package validation

import "regexp"

const (
	// MinWalletAddressLength is the shortest crypto wallet address accepted.
	MinWalletAddressLength = 26
)

// emailRegex only requires a local part, a domain and a dotted suffix.
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
