package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job carries one captured document through background processing. The
// image travels with the job because documents store no blob reference.
type Job struct {
	DocumentID  uuid.UUID
	ImageBase64 string
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
