package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func decimalPtr(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}

func TestCategorizationRule_Validate(t *testing.T) {
	categoryID := uuid.New()

	tests := []struct {
		name    string
		rule    CategorizationRule
		wantErr error
	}{
		{
			name: "keyword rule",
			rule: CategorizationRule{RuleType: RuleTypeKeyword, Pattern: "starbucks", CategoryID: categoryID},
		},
		{
			name: "amount range rule",
			rule: CategorizationRule{RuleType: RuleTypeAmountRange, MinAmount: decimalPtr("0"), MaxAmount: decimalPtr("10"), CategoryID: categoryID},
		},
		{
			name:    "unknown type",
			rule:    CategorizationRule{RuleType: "regex", Pattern: "x", CategoryID: categoryID},
			wantErr: ErrInvalidRuleType,
		},
		{
			name:    "missing category",
			rule:    CategorizationRule{RuleType: RuleTypeMerchant, Pattern: "amazon"},
			wantErr: ErrRuleCategoryMissing,
		},
		{
			name:    "blank pattern",
			rule:    CategorizationRule{RuleType: RuleTypeKeyword, Pattern: "   ", CategoryID: categoryID},
			wantErr: ErrRulePatternRequired,
		},
		{
			name:    "range without bounds",
			rule:    CategorizationRule{RuleType: RuleTypeAmountRange, MinAmount: decimalPtr("5"), CategoryID: categoryID},
			wantErr: ErrInvalidAmountRange,
		},
		{
			name:    "inverted range",
			rule:    CategorizationRule{RuleType: RuleTypeAmountRange, MinAmount: decimalPtr("50"), MaxAmount: decimalPtr("10"), CategoryID: categoryID},
			wantErr: ErrInvalidAmountRange,
		},
		{
			name:    "negative lower bound",
			rule:    CategorizationRule{RuleType: RuleTypeAmountRange, MinAmount: decimalPtr("-1"), MaxAmount: decimalPtr("10"), CategoryID: categoryID},
			wantErr: ErrInvalidAmountRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCategorizationRule_Matches(t *testing.T) {
	keyword := CategorizationRule{RuleType: RuleTypeKeyword, Pattern: "STARBUCKS", IsActive: true}
	merchant := CategorizationRule{RuleType: RuleTypeMerchant, Pattern: "amazon", IsActive: true}
	amount := CategorizationRule{RuleType: RuleTypeAmountRange, MinAmount: decimalPtr("10"), MaxAmount: decimalPtr("20"), IsActive: true}

	assert.True(t, keyword.Matches(&Transaction{Description: "Starbucks Coffee #44"}))
	assert.False(t, keyword.Matches(&Transaction{Description: "Peets Coffee", MerchantName: "starbucks"}))

	assert.True(t, merchant.Matches(&Transaction{MerchantName: "AMAZON.COM*MK1"}))
	assert.False(t, merchant.Matches(&Transaction{Description: "amazon"}))

	assert.True(t, amount.Matches(&Transaction{Amount: decimal.NewFromInt(-10)}))
	assert.True(t, amount.Matches(&Transaction{Amount: decimal.NewFromInt(20)}))
	assert.False(t, amount.Matches(&Transaction{Amount: decimal.RequireFromString("20.01")}))

	inactive := keyword
	inactive.IsActive = false
	assert.False(t, inactive.Matches(&Transaction{Description: "STARBUCKS"}))
	assert.False(t, keyword.Matches(nil))
}

func TestParseRuleType(t *testing.T) {
	ruleType, err := ParseRuleType(" Amount_Range ")
	assert.NoError(t, err)
	assert.Equal(t, RuleTypeAmountRange, ruleType)

	_, err = ParseRuleType("fuzzy")
	assert.ErrorIs(t, err, ErrInvalidRuleType)
}
