/*
Package payment provides the payment methods a processor can charge.

Three variants implement Method:
- Card: number, expiry and CVV, charged at face value
- WalletAccount: an e-wallet identified by email, charged at face value
- CryptoWallet: an on-chain address; each send adds a network fee

Usage:

	card, err := payment.NewCard("4242424242424242", "12/28", "123", 200)
	if err != nil {
	    // *errors.DomainError with a code such as INVALID_CARD_DETAILS
	}

	ok := card.Pay(150.75)    // true, balance is now 49.25
	ok = card.AddFunds(-10)   // false, balance unchanged

Fees:

CryptoWallet charges 0.5% of the amount the recipient receives, never less
than 0.1 and never more than 5.0. The fee is debited on top of the amount:

	wallet, _ := payment.NewCryptoWallet("bc1qdemouseraddressfordemonstration", 15)
	wallet.Pay(10) // debits 10.1

Declines:

Pay and AddFunds never return errors. A non-positive amount or an
insufficient balance yields false and leaves the balance untouched; the
reason is logged at debug level. Construction failures are returned as
*errors.DomainError values.
*/
package payment
