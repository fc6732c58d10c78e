package validation

// Card validates the identity fields of a payment card.
func (v *Validator) Card(number, expiry, cvv string) {
	v.Required("card_number", number)
	v.Required("expiry", expiry)
	v.Required("cvv", cvv)
}

// WalletAccount validates the login email of a wallet-style account.
func (v *Validator) WalletAccount(email string) {
	v.Email("email", email)
}

// CryptoWallet validates a crypto wallet address.
func (v *Validator) CryptoWallet(address string) {
	v.Required("wallet_address", address)
	v.MinLength("wallet_address", address, MinWalletAddressLength)
}

// InitialBalance validates the opening balance of any payment method.
func (v *Validator) InitialBalance(balance float64) {
	v.NonNegative("initial_balance", balance)
}
