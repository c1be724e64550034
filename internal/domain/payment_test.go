package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledForm(t *testing.T) *PaymentForm {
	t.Helper()
	f := NewPaymentForm()
	for name, value := range map[string]string{
		"first_name":      "Ada",
		"last_name":       "Lovelace",
		"email":           "ada@example.com",
		"phone":           "555-0100",
		"card_number":     "4242424242424242",
		"expiry_date":     "12/30",
		"cvv":             "123",
		"billing_address": "1 Analytical Way",
		"city":            "London",
		"zip_code":        "N1",
	} {
		require.NoError(t, f.SetField(name, value))
	}
	require.NoError(t, f.SetPassengerName(0, "Ada Lovelace"))
	return f
}

func TestNewPaymentForm(t *testing.T) {
	f := NewPaymentForm()
	assert.Equal(t, 1, f.PassengerCount())
	assert.Equal(t, []string{""}, f.PassengerNames())
}

func TestPaymentForm_SetPassengerCount(t *testing.T) {
	t.Run("growing keeps names and appends blanks", func(t *testing.T) {
		f := NewPaymentForm()
		require.NoError(t, f.SetPassengerName(0, "A B"))

		assert.Equal(t, 3, f.SetPassengerCount(3))
		assert.Equal(t, []string{"A B", "", ""}, f.PassengerNames())
	})

	t.Run("shrinking drops from the end", func(t *testing.T) {
		f := NewPaymentForm()
		f.SetPassengerCount(3)
		require.NoError(t, f.SetPassengerName(0, "A"))
		require.NoError(t, f.SetPassengerName(1, "B"))
		require.NoError(t, f.SetPassengerName(2, "C"))

		assert.Equal(t, 2, f.SetPassengerCount(2))
		assert.Equal(t, []string{"A", "B"}, f.PassengerNames())
	})

	t.Run("clamps to bounds", func(t *testing.T) {
		f := NewPaymentForm()
		assert.Equal(t, 1, f.SetPassengerCount(0))
		assert.Len(t, f.PassengerNames(), 1)
		assert.Equal(t, 9, f.SetPassengerCount(12))
		assert.Len(t, f.PassengerNames(), 9)
	})
}

func TestPaymentForm_PassengerNamesIsCopy(t *testing.T) {
	f := NewPaymentForm()
	names := f.PassengerNames()
	names[0] = "mutated"
	assert.Equal(t, "", f.PassengerNames()[0])
}

func TestPaymentForm_SetPassengerName_OutOfRange(t *testing.T) {
	f := NewPaymentForm()
	assert.ErrorIs(t, f.SetPassengerName(1, "x"), ErrInvalidRequest)
	assert.ErrorIs(t, f.SetPassengerName(-1, "x"), ErrInvalidRequest)
}

func TestPaymentForm_SetField_Unknown(t *testing.T) {
	f := NewPaymentForm()
	assert.ErrorIs(t, f.SetField("ssn", "x"), ErrInvalidRequest)
}

func TestPaymentForm_Validate(t *testing.T) {
	t.Run("complete form passes", func(t *testing.T) {
		assert.NoError(t, filledForm(t).Validate())
	})

	t.Run("missing card field", func(t *testing.T) {
		f := filledForm(t)
		require.NoError(t, f.SetField("cvv", ""))
		err := f.Validate()
		assert.ErrorIs(t, err, ErrMissingField)
		assert.Contains(t, err.Error(), "cvv")
	})

	t.Run("blank passenger name after growing", func(t *testing.T) {
		f := filledForm(t)
		f.SetPassengerCount(2)
		err := f.Validate()
		assert.ErrorIs(t, err, ErrMissingField)
		assert.Contains(t, err.Error(), "passenger 2")
	})

	t.Run("whitespace only counts as missing", func(t *testing.T) {
		f := filledForm(t)
		require.NoError(t, f.SetField("city", "   "))
		assert.ErrorIs(t, f.Validate(), ErrMissingField)
	})
}
