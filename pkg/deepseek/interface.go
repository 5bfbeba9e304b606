package deepseek

import (
	"context"
	"time"
)

const (
	DefaultBaseURL = "https://api.deepseek.com/v1"
	DefaultModel   = "deepseek-chat"
	// DeepSeek answers slower than the other vendors under load.
	DefaultTimeout = 60 * time.Second
)

// IDeepSeek is satisfied by *Client; the llmprovider adapter depends on it.
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

var _ IDeepSeek = (*Client)(nil)
