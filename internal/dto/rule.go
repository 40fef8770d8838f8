package dto

// CreateRuleRequest creates a categorization rule owned by the caller.
// Keyword and merchant rules need a pattern; amount range rules need both bounds.
type CreateRuleRequest struct {
	RuleName   string  `json:"ruleName" validate:"omitempty,max=100"`
	RuleType   string  `json:"ruleType" validate:"required,rule_type"`
	Pattern    string  `json:"pattern" validate:"omitempty,max=255"`
	MinAmount  *string `json:"minAmount" validate:"omitempty,non_negative_money"`
	MaxAmount  *string `json:"maxAmount" validate:"omitempty,non_negative_money"`
	CategoryID string  `json:"categoryId" validate:"required,uuid"`
	Priority   int     `json:"priority" validate:"min=0,max=1000"`
}

// RulesReloadResponse reports the rule tables published by a reload
type RulesReloadResponse struct {
	Version    uint64 `json:"version"`
	RuleCount  int    `json:"ruleCount"`
	DurationMs int64  `json:"durationMs"`
}

// BackfillResult summarizes one backfill pass over uncategorized transactions
type BackfillResult struct {
	Processed   int   `json:"processed"`
	Categorized int   `json:"categorized"`
	StillManual int   `json:"stillManual"`
	Failed      int   `json:"failed"`
	DurationMs  int64 `json:"durationMs"`
}
