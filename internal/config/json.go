package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/recordkeeper/internal/flagx"
	"github.com/dmitrijs2005/recordkeeper/internal/timex"
)

// JsonConfig is the JSON-file form of Config. Interval fields use
// timex.Duration so values can be written either as strings such as "10s"
// or as integer nanoseconds. After unmarshalling, fields are copied into
// the runtime Config.
type JsonConfig struct {
	DataDir            string         `json:"data_dir"`
	AccountsFile       string         `json:"accounts_file"`
	CustomersFile      string         `json:"customers_file"`
	SecretKey          string         `json:"secret_key"`
	SessionValidity    timex.Duration `json:"session_validity"`
	SampleSourceURL    string         `json:"sample_source_url"`
	SampleFetchTimeout timex.Duration `json:"sample_fetch_timeout"`
	S3AccessKey        string         `json:"s3_access_key"`
	S3SecretKey        string         `json:"s3_secret_key"`
	S3Bucket           string         `json:"s3_bucket"`
	S3Region           string         `json:"s3_region"`
	S3BaseEndpoint     string         `json:"s3_base_endpoint"`
}

// parseJson loads configuration values from the JSON file named by the
// -c or -config command-line flags. When no flag is given, nothing is
// loaded. An unreadable or invalid file panics: a half-applied explicit
// config is worse than no config.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.DataDir = c.DataDir
	config.AccountsFile = c.AccountsFile
	config.CustomersFile = c.CustomersFile
	config.SecretKey = c.SecretKey
	config.SessionValidity = time.Duration(c.SessionValidity.Duration)
	config.SampleSourceURL = c.SampleSourceURL
	config.SampleFetchTimeout = time.Duration(c.SampleFetchTimeout.Duration)
	config.S3AccessKey = c.S3AccessKey
	config.S3SecretKey = c.S3SecretKey
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
}
