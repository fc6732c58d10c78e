package processor

import (
	"math"
	"os"
	"testing"

	"payproc/internal/services/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	payment.SetCVVHashCost(bcrypt.MinCost)
	os.Exit(m.Run())
}

type MockMethod struct {
	mock.Mock
}

func newMockMethod() *MockMethod {
	return new(MockMethod)
}

func (m *MockMethod) Kind() payment.Kind {
	args := m.Called()
	return args.Get(0).(payment.Kind)
}

func (m *MockMethod) Label() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockMethod) Pay(amount float64) bool {
	args := m.Called(amount)
	return args.Bool(0)
}

func (m *MockMethod) AddFunds(amount float64) bool {
	args := m.Called(amount)
	return args.Bool(0)
}

func (m *MockMethod) Balance() float64 {
	args := m.Called()
	return args.Get(0).(float64)
}

func (m *MockMethod) BalanceInfo() string {
	args := m.Called()
	return args.String(0)
}

func TestProcessor_NoStrategy(t *testing.T) {
	p := New(nil)

	assert.False(t, p.HasStrategy())
	assert.Nil(t, p.Strategy())
	assert.False(t, p.ProcessPayment(100.0))
	assert.False(t, p.ProcessPayment(-1))
}

func TestProcessor_RejectsNonPositiveAmountWithoutCallingStrategy(t *testing.T) {
	for _, amount := range []float64{0, -0.01, -100, math.NaN()} {
		method := newMockMethod()
		p := New(method)

		assert.False(t, p.ProcessPayment(amount))
		method.AssertNotCalled(t, "Pay", mock.Anything)
	}
}

func TestProcessor_ReturnsStrategyVerdict(t *testing.T) {
	tests := []struct {
		name    string
		verdict bool
	}{
		{"accepted", true},
		{"declined", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := newMockMethod()
			method.On("Pay", 42.5).Return(tt.verdict).Once()

			p := New(nil)
			p.SetStrategy(method)

			assert.Equal(t, tt.verdict, p.ProcessPayment(42.5))
			method.AssertExpectations(t)
		})
	}
}

func TestProcessor_RecoversFromPanickingStrategy(t *testing.T) {
	method := newMockMethod()
	method.On("Pay", 10.0).Panic("gateway exploded").Once()

	p := New(method)

	assert.NotPanics(t, func() {
		assert.False(t, p.ProcessPayment(10.0))
	})
	method.AssertExpectations(t)
}

func TestProcessor_SetStrategyReplacesPrevious(t *testing.T) {
	first := newMockMethod()
	second := newMockMethod()
	second.On("Pay", 5.0).Return(true).Once()

	p := New(first)
	p.SetStrategy(second)

	assert.Same(t, second, p.Strategy())
	assert.True(t, p.ProcessPayment(5.0))
	first.AssertNotCalled(t, "Pay", mock.Anything)
	second.AssertExpectations(t)

	p.SetStrategy(nil)
	assert.False(t, p.HasStrategy())
	assert.False(t, p.ProcessPayment(5.0))
}

func TestProcessor_SetStrategyOnlyAssigns(t *testing.T) {
	method := newMockMethod()

	p := New(nil)
	p.SetStrategy(method)

	assert.True(t, p.HasStrategy())
	method.AssertNotCalled(t, "Kind")
	method.AssertNotCalled(t, "Label")
	method.AssertNotCalled(t, "Balance")
}

func TestProcessor_TypedNilStrategy(t *testing.T) {
	var card *payment.Card

	p := New(nil)
	assert.NotPanics(t, func() {
		p.SetStrategy(card)
	})
	assert.NotPanics(t, func() {
		assert.False(t, p.ProcessPayment(10))
	})
}

func TestProcessor_SetStrategyHasNoSideEffects(t *testing.T) {
	card, err := payment.NewCard("1111222233334444", "12/28", "123", 50)
	require.NoError(t, err)

	p := New(nil)
	p.SetStrategy(card)
	p.SetStrategy(card)

	assert.Equal(t, 50.0, card.Balance())
}

func TestProcessor_WithRealMethods(t *testing.T) {
	card, err := payment.NewCard("1111222233334444", "12/28", "123", 200)
	require.NoError(t, err)
	wallet, err := payment.NewWalletAccount("demo_user@example.com", 25)
	require.NoError(t, err)
	crypto, err := payment.NewCryptoWallet("bc1qdemouseraddressfordemonstrationpurposes", 15)
	require.NoError(t, err)

	p := New(nil)

	p.SetStrategy(card)
	assert.True(t, p.ProcessPayment(150.75))
	assert.InDelta(t, 49.25, card.Balance(), 1e-9)

	p.SetStrategy(wallet)
	assert.False(t, p.ProcessPayment(50))
	assert.Equal(t, 25.0, wallet.Balance())

	p.SetStrategy(crypto)
	assert.True(t, p.ProcessPayment(10))
	assert.InDelta(t, 4.9, crypto.Balance(), 1e-9)
	assert.False(t, p.ProcessPayment(10))
	assert.InDelta(t, 4.9, crypto.Balance(), 1e-9)
}
