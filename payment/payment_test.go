package payment_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/oop-concepts/payment"
	"github.com/marcodamonte/oop-concepts/registry"
)

func TestProcess(t *testing.T) {
	tests := []struct {
		name   string
		method payment.Method
		want   string
	}{
		{name: "credit card", method: payment.CreditCard{CardNumber: "4111-1111"}, want: "Charging $25 to card 4111-1111\n"},
		{name: "crypto", method: payment.Crypto{WalletAddress: "0xdeadbeef"}, want: "Charging $25 to wallet 0xdeadbeef\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.method.Process(&buf, 25))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestProcessNegativeAmount(t *testing.T) {
	var buf bytes.Buffer
	err := payment.CreditCard{CardNumber: "1"}.Process(&buf, -1)

	assert.ErrorIs(t, err, payment.ErrInvalidAmount)
	assert.Empty(t, buf.String())
}

func TestNew(t *testing.T) {
	m, err := payment.New(payment.KindCrypto, "0xabc")
	require.NoError(t, err)
	assert.Equal(t, payment.Crypto{WalletAddress: "0xabc"}, m)

	m, err = payment.New(payment.KindCreditCard, "1234")
	require.NoError(t, err)
	assert.Equal(t, payment.CreditCard{CardNumber: "1234"}, m)
}

func TestNewAbstractFails(t *testing.T) {
	m, err := payment.New(payment.KindMethod, "1234")
	assert.Nil(t, m)
	assert.True(t, errors.Is(err, registry.ErrAbstract))
}

func TestNewUnknownFails(t *testing.T) {
	_, err := payment.New("Cheque", "1234")
	assert.ErrorIs(t, err, registry.ErrNotRegistered)
}

func TestProcessAll(t *testing.T) {
	var buf bytes.Buffer
	err := payment.ProcessAll(&buf, 10,
		payment.CreditCard{CardNumber: "1111"},
		payment.Crypto{WalletAddress: "0x01"},
	)
	require.NoError(t, err)
	assert.Equal(t, "Charging $10 to card 1111\nCharging $10 to wallet 0x01\n", buf.String())
}
