//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tavolo/pricing-service/config"
)

func TestInitializeDatabase_Disabled(t *testing.T) {
	cfg := config.DatabaseConfig{
		Enabled: false,
	}

	components := InitializeDatabase(cfg)

	assert.Nil(t, components)
}

func TestInitializeDatabase_ConnectionFailure(t *testing.T) {
	cfg := config.DatabaseConfig{
		Enabled:                        true,
		URI:                            "mongodb://127.0.0.1:1", // nothing listens here
		DatabaseName:                   "pricing_service_test",
		CircuitBreakerFailureThreshold: 3,
		CircuitBreakerSuccessThreshold: 1,
		CircuitBreakerTimeout:          time.Second,
	}

	components := InitializeDatabase(cfg)

	// Failure to connect degrades to running without a database.
	assert.Nil(t, components)
}
