package classifier

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrAPIKeyRequired   = errors.New("classifier API key is required")
	ErrEndpointRequired = errors.New("classifier endpoint is required")
	ErrNoChoices        = errors.New("no completion choices returned")
	ErrNoCategory       = errors.New("no category found in response")
)

// ClassifierInterface is the adapter contract for an external transaction classifier
type ClassifierInterface interface {
	Classify(ctx context.Context, req Request) (*Prediction, error)
}

// Request describes the transaction being classified and the category names the model may pick from
type Request struct {
	Description  string
	MerchantName string
	Amount       decimal.Decimal
	Categories   []string
}

// Prediction is the classifier's answer. Confidence is in [0, 1].
type Prediction struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// Config configures an HTTP classifier client
type Config struct {
	Endpoint    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
}
