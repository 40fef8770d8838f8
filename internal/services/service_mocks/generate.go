package service_mocks

//go:generate mockgen -source=../interfaces.go -destination=service_mocks.go -package=service_mocks

// Mocks for the service interfaces. To regenerate them, run:
//   go generate ./internal/services/service_mocks
