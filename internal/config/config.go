// Package config handles runtime configuration for the record keeper,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - DataDir: directory holding the durable JSON stores.
//   - AccountsFile / CustomersFile: store file names inside DataDir.
//   - SecretKey: HMAC secret for signing session tokens (HS256).
//   - SessionValidity: session token lifetime.
//   - SampleSourceURL: base URL of the sample-data API.
//   - SampleFetchTimeout: upper bound on one sample-data fetch.
//   - S3AccessKey / S3SecretKey / S3Bucket / S3Region / S3BaseEndpoint:
//     object-storage settings for snapshot uploads.
type Config struct {
	DataDir            string
	AccountsFile       string
	CustomersFile      string
	SecretKey          string
	SessionValidity    time.Duration
	SampleSourceURL    string
	SampleFetchTimeout time.Duration
	S3AccessKey        string
	S3SecretKey        string
	S3Bucket           string
	S3Region           string
	S3BaseEndpoint     string
}

// LoadDefaults populates Config with development defaults.
// NOTE: The secret and S3 credentials are placeholders and should be
// overridden outside of local use.
func (c *Config) LoadDefaults() {
	c.DataDir = "data"
	c.AccountsFile = "users.json"
	c.CustomersFile = "customers.json"
	c.SecretKey = "secretKey"
	c.SessionValidity = 12 * time.Hour
	c.SampleSourceURL = "https://jsonplaceholder.typicode.com"
	c.SampleFetchTimeout = 10 * time.Second
	c.S3AccessKey = "admin"
	c.S3SecretKey = "secretpassword"
	c.S3Bucket = "snapshots"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
