// Package console implements the interactive payment menu. It owns the saved
// methods and the processor and only talks to the user through the reader
// and writer it is given.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"payproc/internal/logger"
	"payproc/internal/services/payment"
	"payproc/internal/services/processor"
	"payproc/internal/services/registry"
)

type App struct {
	in        *bufio.Scanner
	out       io.Writer
	registry  *registry.Registry
	processor *processor.Processor
}

func New(in io.Reader, out io.Writer, reg *registry.Registry, proc *processor.Processor) *App {
	return &App{
		in:        bufio.NewScanner(in),
		out:       out,
		registry:  reg,
		processor: proc,
	}
}

// Run drives the main menu until the user exits or input ends.
func (a *App) Run() error {
	a.println("Welcome to the payment console!")

	for {
		a.println("")
		a.println("Main menu:")
		a.println("1. Add a payment method")
		a.println("2. List saved payment methods")
		a.println("3. Make a payment")
		a.println("4. Top up a balance")
		a.println("5. Exit")

		choice, err := a.prompt("Your choice: ")
		if err != nil {
			return ignoreEOF(err)
		}

		switch choice {
		case "1":
			err = a.addMethodMenu()
		case "2":
			a.listMethods(a.registry.List(), "You have no saved payment methods yet.")
		case "3":
			err = a.makePayment()
		case "4":
			err = a.topUp()
		case "5":
			a.println("Thanks for using the payment console. Goodbye!")
			return nil
		default:
			a.println("Invalid choice, please try again.")
		}

		if err != nil {
			return ignoreEOF(err)
		}
	}
}

func (a *App) addMethodMenu() error {
	for {
		a.println("")
		a.println("Choose the kind of payment method to add:")
		a.println("1. Card")
		a.println("2. Wallet account")
		a.println("3. Crypto wallet")
		a.println("0. Back to main menu")

		choice, err := a.prompt("Method kind: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = a.addCard()
		case "2":
			err = a.addWalletAccount()
		case "3":
			err = a.addCryptoWallet()
		case "0":
			return nil
		default:
			a.println("Invalid choice, please try again.")
		}

		if err != nil {
			return err
		}
	}
}

func (a *App) addCard() error {
	a.println("")
	a.println("--- Add card ---")

	number, err := a.prompt("Card number: ")
	if err != nil {
		return err
	}
	expiry, err := a.prompt("Expiry (MM/YY): ")
	if err != nil {
		return err
	}
	cvv, err := a.prompt("CVV/CVC: ")
	if err != nil {
		return err
	}
	if number == "" || expiry == "" || cvv == "" {
		a.println("Error: all card fields are required.")
		return nil
	}

	return a.save(payment.KindCard, payment.MethodInput{
		CardNumber: number,
		Expiry:     expiry,
		CVV:        cvv,
	})
}

func (a *App) addWalletAccount() error {
	a.println("")
	a.println("--- Add wallet account ---")

	email, err := a.prompt("Account email: ")
	if err != nil {
		return err
	}
	if email == "" {
		a.println("Error: email is required.")
		return nil
	}

	return a.save(payment.KindWalletAccount, payment.MethodInput{Email: email})
}

func (a *App) addCryptoWallet() error {
	a.println("")
	a.println("--- Add crypto wallet ---")

	address, err := a.prompt("Wallet address: ")
	if err != nil {
		return err
	}
	if address == "" {
		a.println("Error: wallet address is required.")
		return nil
	}

	return a.save(payment.KindCryptoWallet, payment.MethodInput{WalletAddress: address})
}

// save asks for the opening balance, then builds and stores the method.
func (a *App) save(kind payment.Kind, input payment.MethodInput) error {
	balance, err := a.promptInitialBalance()
	if err != nil {
		return err
	}
	input.InitialBalance = balance

	method, err := payment.NewMethod(kind, input)
	if err != nil {
		a.printf("Error: %v\n", err)
		return nil
	}

	if _, err := a.registry.Add(method); err != nil {
		return fmt.Errorf("save payment method: %w", err)
	}
	a.printf("%s added. %s\n", method.Label(), method.BalanceInfo())
	return nil
}

func (a *App) promptInitialBalance() (float64, error) {
	for {
		text, err := a.prompt("Initial balance (e.g. 100.00, Enter for 0): ")
		if err != nil {
			return 0, err
		}

		balance, err := ParseInitialBalance(text)
		switch {
		case errors.Is(err, ErrNegativeBalance):
			a.println("Initial balance cannot be negative. Try again.")
		case err != nil:
			a.println("Invalid balance. Enter a number such as 50.25.")
		default:
			return balance, nil
		}
	}
}

func (a *App) listMethods(entries []registry.Entry, emptyMessage string) {
	a.println("")
	a.println("--- Saved payment methods ---")

	if len(entries) == 0 {
		a.println(emptyMessage)
		return
	}

	for i, e := range entries {
		details := e.Method.Label()
		if info := e.Method.BalanceInfo(); info != "" {
			details += ", " + info
		}
		a.printf("%d. %s (%s)\n", i+1, e.Method.Kind().DisplayName(), details)
	}
}

func (a *App) makePayment() error {
	a.println("")
	a.println("--- Make a payment ---")

	entries := a.registry.List()
	a.listMethods(entries, "You have no saved payment methods yet.")
	if len(entries) == 0 {
		a.println("--> Add a payment method first.")
		return nil
	}

	selected, ok, err := a.choose(entries, "payment method")
	if err != nil || !ok {
		return err
	}

	a.processor.SetStrategy(selected.Method)

	label := "Payment amount: "
	crypto, isCrypto := selected.Method.(*payment.CryptoWallet)
	if isCrypto {
		label = "Amount the recipient should receive (fee is added on top): "
	}

	text, err := a.prompt(label)
	if err != nil {
		return err
	}
	amount, err := ParseAmount(text)
	if err != nil {
		a.println("Invalid amount.")
		return nil
	}

	if isCrypto {
		fee := crypto.Fee(amount)
		a.printf("Network fee: $%.2f. Total to debit: $%.2f.\n", fee, amount+fee)
	}

	a.println("")
	a.println("Processing payment...")
	if a.processor.ProcessPayment(amount) {
		a.println(">>>> Payment processed successfully! <<<<")
	} else {
		a.println(">>>> Payment could not be processed. <<<<")
	}
	if info := selected.Method.BalanceInfo(); info != "" {
		a.println(info)
	}
	return nil
}

func (a *App) topUp() error {
	a.println("")
	a.println("--- Top up a balance ---")

	entries := a.registry.Fundable()
	a.listMethods(entries, "You have no accounts that can be topped up.")
	if len(entries) == 0 {
		a.println("--> Nothing to top up. Returning to main menu.")
		return nil
	}

	selected, ok, err := a.choose(entries, "account to top up")
	if err != nil || !ok {
		return err
	}

	text, err := a.prompt("Top-up amount: ")
	if err != nil {
		return err
	}
	amount, err := ParseAmount(text)
	if err != nil {
		a.println("Invalid amount. It must be a positive number.")
		return nil
	}

	if selected.Method.AddFunds(amount) {
		a.printf("Top-up successful! New %s\n", selected.Method.BalanceInfo())
	} else {
		a.println("Top-up failed.")
	}
	return nil
}

// choose asks the user to pick one of entries. ok is false when the
// selection was invalid and has already been reported.
func (a *App) choose(entries []registry.Entry, what string) (registry.Entry, bool, error) {
	text, err := a.prompt(fmt.Sprintf("Choose the %s (1-%d): ", what, len(entries)))
	if err != nil {
		return registry.Entry{}, false, err
	}

	i, err := parseChoice(text, len(entries))
	if err != nil {
		a.printf("Invalid selection: %v.\n", err)
		return registry.Entry{}, false, nil
	}
	return entries[i], true, nil
}

func (a *App) prompt(label string) (string, error) {
	fmt.Fprint(a.out, label)
	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			logger.Error().Err(err).Msg("reading console input failed")
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(a.in.Text()), nil
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
