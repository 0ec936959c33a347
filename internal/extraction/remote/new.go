package remote

import (
	"household-calendar/internal/extraction"
	"household-calendar/pkg/llmprovider"
	"household-calendar/pkg/log"
)

type implExtractor struct {
	l          log.Logger
	llm        *llmprovider.Manager
	maxHistory int
}

// New builds an LLM-backed extractor. maxHistoryTurns bounds how much of the
// conversation is forwarded; 0 forwards none.
func New(l log.Logger, llm *llmprovider.Manager, maxHistoryTurns int) extraction.RemoteExtractor {
	return &implExtractor{
		l:          l,
		llm:        llm,
		maxHistory: maxHistoryTurns,
	}
}
