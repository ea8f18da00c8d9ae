package resumes

import (
	"context"
	"io"

	"jobapply-backend/internal/extract"
	"jobapply-backend/internal/profile"
	"jobapply-backend/internal/shared/storage/object"
	"jobapply-backend/internal/shared/telemetry"
)

// Resume is the stored upload plus the profile derived from it.
type Resume struct {
	FileName   string          `json:"file_name"`
	StorageKey string          `json:"storage_key"`
	SizeBytes  int64           `json:"size_bytes"`
	MimeType   string          `json:"mime_type"`
	Profile    profile.Profile `json:"profile"`
}

// Service stores uploaded resumes and derives a structured profile from them.
type Service struct {
	Store object.ObjectStore
}

// NewService constructs a Service.
func NewService(store object.ObjectStore) *Service {
	return &Service{Store: store}
}

// Upload persists the file, extracts its text and builds the profile.
// Extraction failures degrade to an empty profile rather than failing the
// upload: the caller still gets the stored file back.
func (s *Service) Upload(ctx context.Context, ownerKey, fileName string, r io.Reader) (Resume, error) {
	key, size, mimeType, err := s.Store.Save(ctx, ownerKey, fileName, r)
	if err != nil {
		return Resume{}, err
	}

	text, err := extract.ExtractText(ctx, s.Store, key, mimeType, fileName)
	if err != nil {
		telemetry.Warn("resumes.extract_failed", map[string]any{
			"storage_key": key,
			"mime_type":   mimeType,
			"err":         err.Error(),
		})
		text = ""
	}

	return Resume{
		FileName:   fileName,
		StorageKey: key,
		SizeBytes:  size,
		MimeType:   mimeType,
		Profile:    profile.Extract(text),
	}, nil
}
