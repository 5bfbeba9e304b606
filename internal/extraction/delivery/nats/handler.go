package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"action-item-extractor/internal/extraction"
	"action-item-extractor/internal/model"
)

func (c *consumer) Register(sub Subscriber) error {
	if c.cfg.SubjectIn == "" || c.cfg.SubjectOut == "" {
		return fmt.Errorf("nats consumer: subject_in and subject_out are required")
	}
	return sub.QueueSubscribe(c.cfg.SubjectIn, c.cfg.QueueGroup, c.handle)
}

// handle decodes one request, runs the extraction and publishes the result.
// Every request gets exactly one reply, including malformed ones.
func (c *consumer) handle(ctx context.Context, subject string, data []byte) {
	var req extractRequest
	if err := json.Unmarshal(data, &req); err != nil {
		c.l.Warnf(ctx, "nats consumer: malformed request on %s: %v", subject, err)
		c.publish(ctx, errorResult("", fmt.Errorf("malformed request: %w", err)))
		return
	}
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	sc := model.Scope{Source: model.SourceNATS}
	out, err := c.uc.Extract(ctx, sc, extraction.ExtractInput{Dialogue: req.Dialogue})
	if err != nil {
		c.l.Errorf(ctx, "nats consumer: extract %s failed: %v", req.RequestID, err)
		c.publish(ctx, errorResult(req.RequestID, err))
		return
	}

	c.publish(ctx, newResult(req.RequestID, out))
}

func (c *consumer) publish(ctx context.Context, res extractResult) {
	if err := c.pub.Publish(c.cfg.SubjectOut, res); err != nil {
		c.l.Errorf(ctx, "nats consumer: publish result for %s: %v", res.RequestID, err)
	}
}
