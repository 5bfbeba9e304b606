package usecase

import (
	"crypto/sha256"
	"encoding/hex"

	"action-item-extractor/pkg/actionitem"
)

type cachedExtraction struct {
	items    []actionitem.ActionItem
	stage    string
	provider string
	model    string
}

func cacheKey(dialogue string) string {
	sum := sha256.Sum256([]byte(dialogue))
	return hex.EncodeToString(sum[:])
}

func (uc *implUseCase) cacheGet(key string) (cachedExtraction, bool) {
	if uc.cache == nil {
		return cachedExtraction{}, false
	}
	return uc.cache.Get(key)
}

func (uc *implUseCase) cachePut(key string, v cachedExtraction) {
	if uc.cache == nil {
		return
	}
	uc.cache.Add(key, v)
}

func cloneItems(items []actionitem.ActionItem) []actionitem.ActionItem {
	out := make([]actionitem.ActionItem, len(items))
	copy(out, items)
	return out
}
