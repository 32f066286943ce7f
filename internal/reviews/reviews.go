package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/expertrohr/web/internal/models"
)

var ErrMisconfigured = errors.New("reviews provider is not configured")

type Provider interface {
	Summary(ctx context.Context) (models.ReviewSummary, error)
}

// UpstreamError carries a non-OK provider status and its raw payload.
type UpstreamError struct {
	Status  string
	Payload json.RawMessage
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("reviews provider returned status %q", e.Status)
}
