package parser

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow is a Wednesday; weekday adjustments are asserted against it.
var fixedNow = time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

func TestParse_CompleteExpense(t *testing.T) {
	tx, err := parse("I spent 25 dollars on lunch today at the restaurant", nil, fixedNow)
	require.NoError(t, err)

	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("25")), "amount = %s", tx.Amount)
	assert.Equal(t, Expense, tx.Direction)
	assert.Equal(t, "Food & Drinks", tx.Category)
	assert.Equal(t, fixedNow, tx.Date)
	assert.NotEmpty(t, tx.Description)
}

func TestParse_IncomeWithYesterday(t *testing.T) {
	tx, err := parse("Received 2000 salary payment yesterday", nil, fixedNow)
	require.NoError(t, err)

	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("2000")), "amount = %s", tx.Amount)
	assert.Equal(t, Income, tx.Direction)
	assert.Equal(t, fixedNow.AddDate(0, 0, -1), tx.Date)
}

func TestParse_TransferShortCircuits(t *testing.T) {
	tx, err := parse("transfer 100 to savings", nil, fixedNow)
	require.NoError(t, err)

	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("100")), "amount = %s", tx.Amount)
	assert.Equal(t, Transfer, tx.Direction)
}

func TestParse_NoAmount(t *testing.T) {
	tx, err := parse("just talking, no numbers here", nil, fixedNow)
	assert.Nil(t, tx)
	assert.ErrorIs(t, err, ErrNoAmount)
}

func TestParse_ShoppingOnMonday(t *testing.T) {
	tx, err := parse("50 for shopping on Monday", nil, fixedNow)
	require.NoError(t, err)

	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("50")), "amount = %s", tx.Amount)
	assert.Equal(t, "Shopping", tx.Category)
	// Monday of the same ISO week as the fixed Wednesday.
	assert.Equal(t, fixedNow.AddDate(0, 0, -2), tx.Date)
}

func TestParse_DescriptionNeverEmpty(t *testing.T) {
	// Utterances that leave nothing behind after amount and filler removal.
	inputs := []string{"50", "i paid 50", "$12.50 for a", "spent 7 on the"}
	for _, input := range inputs {
		tx, err := parse(input, nil, fixedNow)
		require.NoError(t, err, "input %q", input)
		assert.NotEmpty(t, tx.Description, "input %q", input)
		assert.NotEqual(t, " ", tx.Description, "input %q", input)
	}
}

func TestParse_UserCategoriesTakePrecedence(t *testing.T) {
	categories := []Category{
		{Name: "Lunch Money", Kind: Expense},
		{Name: "Side Hustle", Kind: Income},
	}

	tx, err := parse("spent 12 on lunch", categories, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "Lunch Money", tx.Category)
}

func TestParse_AmountDecimalExact(t *testing.T) {
	tx, err := parse("paid $25.50 for parking", nil, fixedNow)
	require.NoError(t, err)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("25.50")), "amount = %s", tx.Amount)
}

func TestParser_SetAvailableCategories(t *testing.T) {
	p := New()
	p.now = func() time.Time { return fixedNow }

	p.SetAvailableCategories([]Category{{Name: "Takeaway", Kind: Expense}})

	tx, err := p.Parse("ordered takeaway for 18 dollars")
	require.NoError(t, err)
	assert.Equal(t, "Takeaway", tx.Category)

	// Clearing the set falls back to the taxonomy.
	p.SetAvailableCategories(nil)
	tx, err = p.Parse("ordered takeaway for 18 dollars")
	require.NoError(t, err)
	assert.NotEqual(t, "Takeaway", tx.Category)
}

func TestParseWithCategories_NoSharedState(t *testing.T) {
	tx, err := New().ParseWithCategories("got 40 dollars in wages from work", []Category{{Name: "Wages", Kind: Income}})
	require.NoError(t, err)
	assert.Equal(t, Income, tx.Direction)
	assert.Equal(t, "Wages", tx.Category)
}
