package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAccount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"cash", "paid 20 cash for lunch", "Cash"},
		{"paypal", "sent 50 via paypal", "Paypal"},
		{"multi word keyword", "paid with apple pay", "Apple pay"},
		{"first in list wins", "savings to cash", "Cash"},
		{"substring hit", "cashback offer", "Cash"},
		{"none", "paid 20 for lunch", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractAccount(tt.text))
		})
	}
}
