package teller_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tellerhq/teller"
)

func TestCredentials_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		creds := teller.Credentials{Name: "Alice", AccountNumber: "123", AuthCode: "9999"}
		assert.NoError(t, creds.Validate())
	})

	t.Run("presence only, no format checks", func(t *testing.T) {
		t.Parallel()
		creds := teller.Credentials{Name: "!", AccountNumber: "not-a-number", AuthCode: "x"}
		assert.NoError(t, creds.Validate())
	})

	cases := map[string]teller.Credentials{
		"missing name":       {AccountNumber: "123", AuthCode: "9999"},
		"missing account":    {Name: "Alice", AuthCode: "9999"},
		"missing auth code":  {Name: "Alice", AccountNumber: "123"},
		"whitespace account": {Name: "Alice", AccountNumber: "  \t", AuthCode: "9999"},
	}
	for name, creds := range cases {
		creds := creds
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, creds.Validate(), teller.ErrValidation)
		})
	}
}

func TestCredentials_Trimmed(t *testing.T) {
	t.Parallel()

	creds := teller.Credentials{Name: " Alice ", AccountNumber: "\t123", AuthCode: "9999\n"}
	assert.Equal(t,
		teller.Credentials{Name: "Alice", AccountNumber: "123", AuthCode: "9999"},
		creds.Trimmed())
}
