package validation

import (
	"reflect"
	"strings"
	"sync"

	"budget-watch/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("money", validateMoney)
	_ = v.RegisterValidation("positive_money", validatePositiveMoney)
	_ = v.RegisterValidation("non_negative_money", validateNonNegativeMoney)
	_ = v.RegisterValidation("fraction", validateFraction)
	_ = v.RegisterValidation("rule_type", validateRuleType)
	_ = v.RegisterValidation("budget_period", validateBudgetPeriod)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// Custom validation functions

func parseDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	if fl.Field().Kind() != reflect.String {
		return decimal.Zero, false
	}
	value, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	if err != nil {
		return decimal.Zero, false
	}
	return value, true
}

// validateMoney accepts a decimal string that is not zero once rounded to cents
func validateMoney(fl validator.FieldLevel) bool {
	value, ok := parseDecimal(fl)
	return ok && !value.Round(2).IsZero()
}

func validatePositiveMoney(fl validator.FieldLevel) bool {
	value, ok := parseDecimal(fl)
	return ok && value.Round(2).IsPositive()
}

func validateNonNegativeMoney(fl validator.FieldLevel) bool {
	value, ok := parseDecimal(fl)
	return ok && !value.IsNegative()
}

// validateFraction accepts a decimal in (0, 1]
func validateFraction(fl validator.FieldLevel) bool {
	value, ok := parseDecimal(fl)
	return ok && value.IsPositive() && value.LessThanOrEqual(decimal.NewFromInt(1))
}

func validateRuleType(fl validator.FieldLevel) bool {
	_, err := models.ParseRuleType(fl.Field().String())
	return err == nil
}

func validateBudgetPeriod(fl validator.FieldLevel) bool {
	_, err := models.ParseBudgetPeriod(fl.Field().String())
	return err == nil
}
