package service

import (
	"strings"

	"github.com/shopspring/decimal"
)

// checkCategoryForTransaction enforces that a transaction only points at an
// active category of the same type.
func checkCategoryForTransaction(category *Category, transactionType Type) error {
	if !category.IsActive {
		return inactiveCategoryError(category.Name)
	}
	if category.Type != transactionType {
		return typeMismatchError(transactionType, category)
	}
	return nil
}

func validateType(t Type) error {
	if !t.Valid() {
		return invalidInputError("unknown type '%s', expected EXPENSE or INCOME", t)
	}
	return nil
}

// Amounts are stored as NUMERIC(19,2).
const amountScale = 2

var (
	minAmount   = decimal.New(1, -amountScale)
	amountLimit = decimal.New(1, 17)
)

func validateAmount(amount decimal.Decimal) error {
	if amount.LessThan(minAmount) {
		return invalidInputError("amount must be at least %s", minAmount.StringFixed(amountScale))
	}
	if amount.GreaterThanOrEqual(amountLimit) {
		return invalidInputError("amount must be less than %s", amountLimit.String())
	}
	if amount.Exponent() < -amountScale && !amount.Equal(amount.Truncate(amountScale)) {
		return invalidInputError("amount must have at most %d decimal places", amountScale)
	}
	return nil
}

func validateDescription(description string) (string, error) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return "", invalidInputError("description must not be blank")
	}
	return trimmed, nil
}

func validateCategoryID(id int64) error {
	if id < 1 {
		return invalidInputError("categoryId must be a positive number")
	}
	return nil
}

func validateCategoryName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", invalidInputError("category name must not be blank")
	}
	return trimmed, nil
}
