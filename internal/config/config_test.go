package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "users.json", cfg.AccountsFile)
	assert.Equal(t, "customers.json", cfg.CustomersFile)
	assert.Equal(t, 12*time.Hour, cfg.SessionValidity)
	assert.Equal(t, "https://jsonplaceholder.typicode.com", cfg.SampleSourceURL)
	assert.Equal(t, 10*time.Second, cfg.SampleFetchTimeout)
	assert.NotEmpty(t, cfg.SecretKey)
	assert.NotEmpty(t, cfg.S3Bucket)
}
