package validation

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"pennywise/internal/model"
)

// Error reports the first violated rule of a payload.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// rule pairs a predicate with the message surfaced when it fails.
type rule struct {
	ok      func() bool
	message string
}

// first evaluates rules in order and returns an Error for the first one that
// fails. Rule order is part of the contract: callers see only that message.
func first(rules ...rule) error {
	for _, r := range rules {
		if !r.ok() {
			return &Error{Message: r.message}
		}
	}
	return nil
}

var (
	nameRe            = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	emailRe           = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	upperRe           = regexp.MustCompile(`[A-Z]`)
	lowerRe           = regexp.MustCompile(`[a-z]`)
	digitRe           = regexp.MustCompile(`\d`)
	specialRe         = regexp.MustCompile(`[@$!%*?&]`)
	passwordCharsRe   = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]+$`)
	numericDescRe     = regexp.MustCompile(`^\d+$`)
	descriptionCharRe = regexp.MustCompile(`^[a-zA-Z0-9\s\-_.,!?@#$%^&*()]+$`)
)

// maxAmount is the upper bound for a single expense.
var maxAmount = decimal.NewFromInt(1_000_000)

func name(v string) []rule {
	return []rule{
		{func() bool { return len(v) >= 2 }, "Name must be at least 2 characters"},
		{func() bool { return len(v) <= 50 }, "Name too long"},
		{func() bool { return nameRe.MatchString(v) }, "Name can only contain letters and spaces"},
	}
}

func email(v string) []rule {
	return []rule{
		{func() bool { return emailRe.MatchString(v) }, "Invalid email format"},
		{func() bool { return len(v) <= 100 }, "Email too long"},
		{func() bool { return !strings.Contains(v, " ") }, "Email cannot contain spaces"},
	}
}

func passwordLength(v string) []rule {
	return []rule{
		{func() bool { return len(v) >= 8 }, "Password must be at least 8 characters"},
		{func() bool { return len(v) <= 14 }, "Password cannot exceed 14 characters"},
	}
}

func passwordComplexity(v string) rule {
	return rule{
		ok: func() bool {
			return upperRe.MatchString(v) &&
				lowerRe.MatchString(v) &&
				digitRe.MatchString(v) &&
				specialRe.MatchString(v) &&
				passwordCharsRe.MatchString(v)
		},
		message: "Password must contain uppercase, lowercase, number and special character",
	}
}

func amount(v decimal.Decimal) []rule {
	return []rule{
		{func() bool { return v.IsPositive() }, "Amount must be positive"},
		{func() bool { return v.LessThanOrEqual(maxAmount) }, "Amount cannot exceed 1,000,000"},
	}
}

func category(v string) []rule {
	return []rule{
		{func() bool { return len(v) >= 1 }, "Category is required"},
		{func() bool { return len(v) <= 20 }, "Category name too long"},
		{func() bool { return validCategory(v) }, "Invalid category"},
	}
}

func description(v string) []rule {
	return []rule{
		{func() bool { return len(v) >= 1 }, "Description is required"},
		{func() bool { return len(v) <= 100 }, "Description too long"},
		{func() bool { return strings.TrimSpace(v) != "" }, "Description cannot be empty"},
		{func() bool { return !numericDescRe.MatchString(strings.TrimSpace(v)) }, "Description cannot be a number"},
		{func() bool { return descriptionCharRe.MatchString(v) }, "Description contains invalid characters"},
	}
}

func validCategory(v string) bool {
	lowered := strings.ToLower(v)
	for _, c := range model.Categories() {
		if lowered == c {
			return true
		}
	}
	return false
}

// NormalizeCategory lowercases a category for storage.
func NormalizeCategory(v string) string {
	return strings.ToLower(v)
}

// Signup validates a signup payload, reporting the first violated rule.
func Signup(nameV, emailV, passwordV string) error {
	var rules []rule
	rules = append(rules, name(nameV)...)
	rules = append(rules, email(emailV)...)
	rules = append(rules, passwordLength(passwordV)...)
	rules = append(rules, passwordComplexity(passwordV))
	return first(rules...)
}

// Signin validates a signin payload. The password is only length-checked so
// the error never hints at the stored password's shape.
func Signin(emailV, passwordV string) error {
	var rules []rule
	rules = append(rules, email(emailV)...)
	rules = append(rules, passwordLength(passwordV)...)
	return first(rules...)
}

// Expense validates an expense payload (create and update share the rules).
func Expense(amountV decimal.Decimal, categoryV, descriptionV string) error {
	var rules []rule
	rules = append(rules, amount(amountV)...)
	rules = append(rules, category(categoryV)...)
	rules = append(rules, description(descriptionV)...)
	return first(rules...)
}
