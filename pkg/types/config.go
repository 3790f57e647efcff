// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by sinks that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "recipe-importer/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// MaxRetries bounds retries on HTTP 429 responses (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// OutputFormat selects how parsed records are written.
type OutputFormat string

const (
	OutputJSON  OutputFormat = "json"
	OutputJSONL OutputFormat = "jsonl"
)

// ParseConfig holds settings for the parse stage.
type ParseConfig struct {
	// RecipesDir is the root directory walked for recipe documents.
	RecipesDir string `json:"recipes_dir" yaml:"recipes_dir"`

	// Extension selects which files are loaded (default ".md").
	Extension string `json:"extension" yaml:"extension"`

	// OutputPath is where parsed records are written (default "parsed_recipes.json").
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Format selects the output encoding: json or jsonl.
	Format OutputFormat `json:"format" yaml:"format"`

	// Workers bounds concurrent parsing (default 1). Output order never
	// depends on this value.
	Workers int `json:"workers" yaml:"workers"`

	// TablesPath optionally points at a YAML file overriding the built-in
	// category, keyword, and unit tables.
	TablesPath string `json:"tables_path,omitempty" yaml:"tables_path,omitempty"`
}

// ContentStoreConfig holds settings for pushing records to the remote
// content store.
type ContentStoreConfig struct {
	HTTPConfig `yaml:",inline"`

	// ProjectID identifies the content store project.
	ProjectID string `json:"project_id" yaml:"project_id"`

	// Dataset is the target dataset (e.g. "production").
	Dataset string `json:"dataset" yaml:"dataset"`

	// APIVersion is the dated API version (e.g. "2024-01-01").
	APIVersion string `json:"api_version" yaml:"api_version"`

	// BaseURL overrides the API host derived from ProjectID. Used by tests.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// Token is the write token. Never serialized.
	Token string `json:"-" yaml:"-"`

	// BatchSize is the number of records per mutation request (default 10).
	BatchSize int `json:"batch_size" yaml:"batch_size"`

	// BatchDelay is the fixed pause between batches (default 500ms).
	BatchDelay time.Duration `json:"batch_delay" yaml:"batch_delay"`

	// ResultsPath is where the per-batch import log is written
	// (default "import_results.json").
	ResultsPath string `json:"results_path" yaml:"results_path"`
}

// StoreConfig holds settings for the local recipe catalog.
type StoreConfig struct {
	// StoreDir is the directory holding recipes.db and exports.
	StoreDir string `json:"store_dir" yaml:"store_dir"`

	// MaxResults is the default maximum number of search results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Parse        ParseConfig        `json:"parse" yaml:"parse"`
	ContentStore ContentStoreConfig `json:"content_store" yaml:"content_store"`
	Store        StoreConfig        `json:"store" yaml:"store"`
}
