package validation

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantMsg  string
	}{
		{
			name:     "valid payload",
			userName: "Jane Doe",
			email:    "jane@example.com",
			password: "Str0ng!pass",
		},
		{
			name:     "name too short",
			userName: "J",
			email:    "jane@example.com",
			password: "Str0ng!pass",
			wantMsg:  "Name must be at least 2 characters",
		},
		{
			name:     "name too long",
			userName: strings.Repeat("a", 51),
			email:    "jane@example.com",
			password: "Str0ng!pass",
			wantMsg:  "Name too long",
		},
		{
			name:     "name with digits",
			userName: "Jane 2",
			email:    "jane@example.com",
			password: "Str0ng!pass",
			wantMsg:  "Name can only contain letters and spaces",
		},
		{
			name:     "invalid email",
			userName: "Jane Doe",
			email:    "not-an-email",
			password: "Str0ng!pass",
			wantMsg:  "Invalid email format",
		},
		{
			name:     "email too long",
			userName: "Jane Doe",
			email:    strings.Repeat("a", 95) + "@x.com",
			password: "Str0ng!pass",
			wantMsg:  "Email too long",
		},
		{
			name:     "password too short",
			userName: "Jane Doe",
			email:    "jane@example.com",
			password: "S!0ng",
			wantMsg:  "Password must be at least 8 characters",
		},
		{
			name:     "password too long",
			userName: "Jane Doe",
			email:    "jane@example.com",
			password: "Str0ng!passwordX",
			wantMsg:  "Password cannot exceed 14 characters",
		},
		{
			name:     "password missing special character",
			userName: "Jane Doe",
			email:    "jane@example.com",
			password: "Str0ngpass",
			wantMsg:  "Password must contain uppercase, lowercase, number and special character",
		},
		{
			name:     "password missing digit",
			userName: "Jane Doe",
			email:    "jane@example.com",
			password: "Strong!pass",
			wantMsg:  "Password must contain uppercase, lowercase, number and special character",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Signup(tt.userName, tt.email, tt.password)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

// The first failing rule decides the message even when several rules fail.
func TestSignupFirstRuleWins(t *testing.T) {
	err := Signup("J", "bad-email", "short")
	require.Error(t, err)
	assert.Equal(t, "Name must be at least 2 characters", err.Error())
}

func TestSignin(t *testing.T) {
	assert.NoError(t, Signin("jane@example.com", "whatever8"))

	// Complexity is deliberately not checked on signin.
	assert.NoError(t, Signin("jane@example.com", "lowercase"))

	err := Signin("jane@example.com", "short")
	require.Error(t, err)
	assert.Equal(t, "Password must be at least 8 characters", err.Error())

	err = Signin("jane @example.com", "whatever8")
	require.Error(t, err)
	assert.Equal(t, "Invalid email format", err.Error())
}

func TestExpense(t *testing.T) {
	valid := decimal.NewFromInt(100)

	tests := []struct {
		name        string
		amount      decimal.Decimal
		category    string
		description string
		wantMsg     string
	}{
		{"valid payload", valid, "food", "lunch at the corner cafe", ""},
		{"uppercase category accepted", valid, "Food", "lunch", ""},
		{"zero amount", decimal.Zero, "food", "lunch", "Amount must be positive"},
		{"negative amount", decimal.NewFromInt(-5), "food", "lunch", "Amount must be positive"},
		{"amount over cap", decimal.NewFromInt(1_000_001), "food", "lunch", "Amount cannot exceed 1,000,000"},
		{"amount at cap", decimal.NewFromInt(1_000_000), "food", "lunch", ""},
		{"empty category", valid, "", "lunch", "Category is required"},
		{"unknown category", valid, "gadgets", "lunch", "Invalid category"},
		{"empty description", valid, "food", "", "Description is required"},
		{"description too long", valid, "food", strings.Repeat("a", 101), "Description too long"},
		{"blank description", valid, "food", "   ", "Description cannot be empty"},
		{"numeric description", valid, "food", "12345", "Description cannot be a number"},
		{"invalid description characters", valid, "food", "lunch [here]", "Description contains invalid characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Expense(tt.amount, tt.category, tt.description)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, "travel", NormalizeCategory("Travel"))
	assert.Equal(t, "food", NormalizeCategory("FOOD"))
}
