package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestLoad_Defaults() {
	s.T().Setenv("APP_ENV", "testing")

	cfg := Load()

	s.Equal("8080", cfg.Server.Port)
	s.Equal(0.70, cfg.Categorization.AIConfidenceThreshold)
	s.Equal(8, cfg.Categorization.BatchWorkers)
	s.Equal(5*time.Minute, cfg.Cache.TTL)
	s.False(cfg.Categorization.AIEnabled)
	s.NotNil(cfg.JWT.PublicKey)
	s.NotNil(cfg.JWT.PrivateKey)
	s.Equal([]string{"*"}, cfg.Server.CORSAllowOrigins)
	s.NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestLoad_OverridesFromEnvironment() {
	s.T().Setenv("APP_ENV", "testing")
	s.T().Setenv("AI_CONFIDENCE_THRESHOLD", "0.85")
	s.T().Setenv("CATEGORIZATION_BATCH_WORKERS", "3")
	s.T().Setenv("AI_CLASSIFIER_TIMEOUT", "750ms")
	s.T().Setenv("AI_CLASSIFIER_ENABLED", "true")
	s.T().Setenv("AI_CLASSIFIER_API_KEY", "sk-test")
	s.T().Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()

	s.Equal(0.85, cfg.Categorization.AIConfidenceThreshold)
	s.Equal(3, cfg.Categorization.BatchWorkers)
	s.Equal(750*time.Millisecond, cfg.Categorization.AITimeout)
	s.True(cfg.Categorization.AIEnabled)
	s.Equal([]string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
	s.NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestLoad_InvalidNumbersFallBackToDefaults() {
	s.T().Setenv("APP_ENV", "testing")
	s.T().Setenv("CATEGORIZATION_BATCH_WORKERS", "many")
	s.T().Setenv("AI_CONFIDENCE_THRESHOLD", "high")

	cfg := Load()

	s.Equal(8, cfg.Categorization.BatchWorkers)
	s.Equal(0.70, cfg.Categorization.AIConfidenceThreshold)
}

func (s *ConfigTestSuite) TestValidate_RejectsBadSettings() {
	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"threshold zero", func(c *Config) { c.Categorization.AIConfidenceThreshold = 0 }},
		{"threshold above one", func(c *Config) { c.Categorization.AIConfidenceThreshold = 1.2 }},
		{"no workers", func(c *Config) { c.Categorization.BatchWorkers = 0 }},
		{"no backfill batch", func(c *Config) { c.Categorization.BackfillBatchSize = 0 }},
		{"ai without key", func(c *Config) {
			c.Categorization.AIEnabled = true
			c.Categorization.AIAPIKey = ""
		}},
		{"empty cache", func(c *Config) { c.Cache.MaxEntries = 0 }},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.T().Setenv("APP_ENV", "testing")
			cfg := Load()
			tc.mutate(cfg)
			s.Error(cfg.Validate())
		})
	}
}

func (s *ConfigTestSuite) TestDatabaseConfig_DSN() {
	db := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"}

	s.Equal("host=db port=5432 user=u password=p dbname=n sslmode=disable", db.DSN())
}
