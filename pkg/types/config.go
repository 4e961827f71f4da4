// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared configuration structs consumed by the
// CLI and the internal pipeline packages.
package types

// Default sentinel lines delimiting the submission region of a notebook.
const (
	DefaultStartMarker = "#MAINSTART"
	DefaultEndMarker   = "#MAINEND"

	// DefaultOutputPath is where the extracted notebook is written when
	// the caller does not choose a destination.
	DefaultOutputPath = "submission.ipynb"
)

// ExtractConfig holds settings for one extraction run.
type ExtractConfig struct {
	// InputPath is the source notebook (.ipynb).
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputPath is the destination notebook (default submission.ipynb).
	OutputPath string `json:"output_path" yaml:"output_path"`

	// StartMarker is the line delimiting the start of the region
	// (default #MAINSTART). A cell containing this line, after stripping
	// leading/trailing whitespace, is the start-marker cell.
	StartMarker string `json:"start_marker" yaml:"start_marker"`

	// EndMarker is the line delimiting the end of the region
	// (default #MAINEND).
	EndMarker string `json:"end_marker" yaml:"end_marker"`

	// IncludeMarkers includes the marker cells themselves in the output.
	IncludeMarkers bool `json:"include_markers" yaml:"include_markers"`

	// KeepOutputs suppresses the default clearing of code-cell outputs.
	KeepOutputs bool `json:"keep_outputs" yaml:"keep_outputs"`

	// KeepExecCounts suppresses the default clearing of execution counts.
	KeepExecCounts bool `json:"keep_exec_counts" yaml:"keep_exec_counts"`
}

// LocalizeConfig holds settings for one localization run (rewriting a
// Colab workflow notebook for local execution).
type LocalizeConfig struct {
	// InputPath is the Colab workflow notebook.
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputPath is the destination notebook.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// RulesPath optionally points to a YAML rules file overriding the
	// built-in skip patterns and path rewrites.
	RulesPath string `json:"rules_path,omitempty" yaml:"rules_path,omitempty"`
}
