package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionFilters narrows transaction listings
type TransactionFilters struct {
	UserID        uuid.UUID
	AccountID     uuid.UUID
	CategoryID    *uuid.UUID
	Uncategorized bool
	StartDate     *time.Time
	EndDate       *time.Time
	MinAmount     *decimal.Decimal
	MaxAmount     *decimal.Decimal
	MerchantName  string
	Offset        int
	Limit         int
}
