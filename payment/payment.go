// Package payment shows interface dispatch standing in for an abstract base
// class: Method declares the behavior, CreditCard and Crypto implement it,
// and there is no base value to instantiate.
package payment

import (
	"errors"
	"fmt"
	"io"

	"github.com/marcodamonte/oop-concepts/registry"
)

var ErrInvalidAmount = errors.New("amount must not be negative")

// Method is anything that can be charged.
type Method interface {
	Process(w io.Writer, amount int) error
}

// Compile-time proof that both variants satisfy Method.
var (
	_ Method = CreditCard{}
	_ Method = Crypto{}
)

type CreditCard struct {
	CardNumber string
}

func (c CreditCard) Process(w io.Writer, amount int) error {
	if amount < 0 {
		return fmt.Errorf("charge card %s: %w", c.CardNumber, ErrInvalidAmount)
	}
	_, err := fmt.Fprintf(w, "Charging $%d to card %s\n", amount, c.CardNumber)
	return err
}

type Crypto struct {
	WalletAddress string
}

func (c Crypto) Process(w io.Writer, amount int) error {
	if amount < 0 {
		return fmt.Errorf("charge wallet %s: %w", c.WalletAddress, ErrInvalidAmount)
	}
	_, err := fmt.Fprintf(w, "Charging $%d to wallet %s\n", amount, c.WalletAddress)
	return err
}

// Kind selects a variant by name, e.g. from user input.
type Kind string

const (
	KindMethod     Kind = "PaymentMethod" // the supertype; New rejects it
	KindCreditCard Kind = "CreditCard"
	KindCrypto     Kind = "Crypto"
)

// New builds the variant named by kind for account (card number or wallet
// address). KindMethod fails with a *registry.AbstractError.
func New(kind Kind, account string) (Method, error) {
	switch kind {
	case KindCreditCard:
		return CreditCard{CardNumber: account}, nil
	case KindCrypto:
		return Crypto{WalletAddress: account}, nil
	case KindMethod:
		return nil, &registry.AbstractError{Type: string(kind)}
	default:
		return nil, fmt.Errorf("payment method %q: %w", kind, registry.ErrNotRegistered)
	}
}

// ProcessAll charges amount to every method in order and stops at the first
// failure.
func ProcessAll(w io.Writer, amount int, methods ...Method) error {
	for _, m := range methods {
		if err := m.Process(w, amount); err != nil {
			return err
		}
	}
	return nil
}
