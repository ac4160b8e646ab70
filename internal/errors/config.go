package errors

import (
	"fmt"
)

// ConfigFileError is raised when a configuration file cannot be read or parsed
type ConfigFileError struct {
	*PromptGenError
}

// NewConfigFileError creates a new config file error
func NewConfigFileError(filePath string, cause error) *ConfigFileError {
	return &ConfigFileError{
		PromptGenError: &PromptGenError{
			Message:  fmt.Sprintf("Failed to load configuration file: %s", filePath),
			Cause:    cause,
			ExitCode: ExitConfigError,
		},
	}
}

// NoFilesError is raised when scanning produced no candidate files
type NoFilesError struct {
	*PromptGenError
}

// NewNoFilesError creates a new no-files error
func NewNoFilesError() *NoFilesError {
	return &NoFilesError{
		PromptGenError: &PromptGenError{
			Message:  "No suitable files found for analysis",
			ExitCode: ExitNoFilesError,
		},
	}
}

// LLMError is raised when a chat-completion request fails
type LLMError struct {
	*PromptGenError
}

// NewLLMError creates a new LLM error
func NewLLMError(provider string, cause error) *LLMError {
	return &LLMError{
		PromptGenError: &PromptGenError{
			Message:  fmt.Sprintf("LLM request to provider '%s' failed", provider),
			Cause:    cause,
			ExitCode: ExitLLMError,
		},
	}
}

// OutputError is raised when the rendered prompt cannot be written
type OutputError struct {
	*PromptGenError
}

// NewOutputError creates a new output error
func NewOutputError(path string, cause error) *OutputError {
	return &OutputError{
		PromptGenError: &PromptGenError{
			Message:  fmt.Sprintf("Failed to write prompt to %s", path),
			Cause:    cause,
			ExitCode: ExitIOError,
		},
	}
}
