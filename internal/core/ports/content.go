package ports

import (
	"context"
	"encoding/json"

	"github.com/natnat/flowershop_content_microservice/internal/core/domain"
)

// ContentSource is the remote spreadsheet endpoint. found is false when the
// endpoint answered successfully but sent no data.
type ContentSource interface {
	Configured() bool
	Fetch(ctx context.Context, key domain.ContentKey) (data json.RawMessage, found bool, err error)
}

type ContentService interface {
	Enabled() bool
	Resolve(ctx context.Context, key domain.ContentKey) (domain.Resolution, error)
	ClearAll(ctx context.Context)
}
