package nats

import (
	"action-item-extractor/internal/extraction"
	"action-item-extractor/pkg/actionitem"
)

type extractRequest struct {
	RequestID string `json:"request_id"`
	Dialogue  string `json:"dialogue"`
}

type extractResult struct {
	RequestID    string                  `json:"request_id"`
	ExtractionID string                  `json:"extraction_id,omitempty"`
	Items        []actionitem.ActionItem `json:"items"`
	Stage        string                  `json:"stage,omitempty"`
	Provider     string                  `json:"provider,omitempty"`
	Model        string                  `json:"model,omitempty"`
	Error        string                  `json:"error,omitempty"`
}

func newResult(requestID string, o extraction.ExtractOutput) extractResult {
	items := o.Items
	if items == nil {
		items = []actionitem.ActionItem{}
	}
	return extractResult{
		RequestID:    requestID,
		ExtractionID: o.ID,
		Items:        items,
		Stage:        o.Stage,
		Provider:     o.Provider,
		Model:        o.Model,
	}
}

func errorResult(requestID string, err error) extractResult {
	return extractResult{
		RequestID: requestID,
		Items:     []actionitem.ActionItem{},
		Error:     err.Error(),
	}
}
