package openai

import "time"

const (
	// DefaultModel is used when the provider config leaves model empty
	DefaultModel = "gpt-4o-mini"

	// DefaultBaseURL is the OpenAI endpoint; DeepSeek and other compatible
	// services are reached by overriding it.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)
