package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"action-item-extractor/internal/extraction"
	"action-item-extractor/pkg/actionitem"
	"action-item-extractor/pkg/llmprovider"
	pkgLog "action-item-extractor/pkg/log"
)

// Config tunes generation and caching.
type Config struct {
	Temperature      float64
	MaxTokens        int
	MaxDialogueChars int
	DeepRepair       bool
	JSONMode         bool
	CacheSize        int
	CacheTTL         time.Duration
}

type implUseCase struct {
	l         pkgLog.Logger
	llm       llmprovider.Provider
	recoverer *actionitem.Recoverer
	cache     *expirable.LRU[string, cachedExtraction]
	cfg       Config
}

// New creates a new extraction UseCase instance.
func New(l pkgLog.Logger, llm llmprovider.Provider, cfg Config) extraction.UseCase {
	var opts []actionitem.Option
	if cfg.DeepRepair {
		opts = append(opts, actionitem.WithRepair())
	}

	uc := &implUseCase{
		l:         l,
		llm:       llm,
		recoverer: actionitem.NewRecoverer(opts...),
		cfg:       cfg,
	}
	if cfg.CacheSize > 0 {
		uc.cache = expirable.NewLRU[string, cachedExtraction](cfg.CacheSize, nil, cfg.CacheTTL)
	}
	return uc
}
