package interfaces

import (
	"context"
	"io"
)

// IMediaUploader stores a file and returns an opaque URL for it. The wizard
// never inspects the contents.
type IMediaUploader interface {
	Upload(ctx context.Context, filename string, contentType string, body io.Reader) (string, error)
}
