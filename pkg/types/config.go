// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// LoaderConfig holds settings for the dataset loading stage.
type LoaderConfig struct {
	// Delimiter is the default field delimiter label: comma, semicolon, tab, or pipe.
	Delimiter string `json:"delimiter" yaml:"delimiter"`

	// PreviewLines is the number of raw input lines shown in previews (default 10).
	PreviewLines int `json:"preview_lines" yaml:"preview_lines"`
}

// DispatchConfig holds settings for opening links through a local browser.
type DispatchConfig struct {
	// OpenDelay is the pause between consecutive browser launches (default 500ms).
	// It exists to avoid overwhelming the browser, not for correctness.
	OpenDelay time.Duration `json:"open_delay" yaml:"open_delay"`

	// Browser optionally names an explicit browser executable. When empty,
	// well-known Chrome install locations are probed, then the system
	// default opener is used.
	Browser string `json:"browser,omitempty" yaml:"browser,omitempty"`
}

// ServerConfig holds settings for the hosted web UI.
type ServerConfig struct {
	// Addr is the listen address for the web UI (default ":8501").
	Addr string `json:"addr" yaml:"addr"`

	// MaxUploadBytes caps the accepted upload size (default 16 MiB).
	MaxUploadBytes int64 `json:"max_upload_bytes" yaml:"max_upload_bytes"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Loader   LoaderConfig   `json:"loader" yaml:"loader"`
	Dispatch DispatchConfig `json:"dispatch" yaml:"dispatch"`
	Server   ServerConfig   `json:"server" yaml:"server"`
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() PipelineConfig {
	return PipelineConfig{
		Loader: LoaderConfig{
			Delimiter:    "comma",
			PreviewLines: 10,
		},
		Dispatch: DispatchConfig{
			OpenDelay: 500 * time.Millisecond,
		},
		Server: ServerConfig{
			Addr:           ":8501",
			MaxUploadBytes: 16 << 20,
		},
	}
}
