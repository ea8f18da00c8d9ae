package export

import (
	"bytes"
	"context"
	"errors"
	"path"
	"strings"
	"time"

	"jobapply-backend/internal/jobs"
	"jobapply-backend/internal/shared/storage/object"
	"jobapply-backend/internal/shared/telemetry"
)

const exportsPrefix = "exports"

// Export is the stored PDF descriptor returned to the client.
type Export struct {
	FileName   string `json:"filename"`
	StorageKey string `json:"storage_key"`
	SizeBytes  int64  `json:"size_bytes"`
}

// Service renders cover letters to PDF and stores them in the object store.
type Service struct {
	Jobs  *jobs.Service
	Store object.ObjectStore
}

// NewService constructs a Service.
func NewService(jobsSvc *jobs.Service, store object.ObjectStore) *Service {
	return &Service{Jobs: jobsSvc, Store: store}
}

// Export renders letterText for the given job and persists the PDF. An empty
// fileName gets the generated CoverLetter_<company>_<title>_<timestamp> name.
func (s *Service) Export(ctx context.Context, jobID int64, letterText, fileName string) (Export, error) {
	posting, err := s.Jobs.Get(ctx, jobID)
	if err != nil {
		return Export{}, err
	}

	if strings.TrimSpace(fileName) == "" {
		fileName = GeneratedFileName(jobs.Field(posting, jobs.FieldCompany), jobs.Field(posting, jobs.FieldTitle), time.Now())
	} else {
		fileName = safeNamePart(strings.TrimSuffix(strings.TrimSpace(fileName), ".pdf"))
		if fileName == "" {
			return Export{}, errors.New("filename has no usable characters")
		}
		fileName += ".pdf"
	}

	var buf bytes.Buffer
	if err := Render(&buf, letterText); err != nil {
		return Export{}, err
	}

	saver, ok := s.Store.(object.KeySaver)
	if !ok {
		return Export{}, errors.New("object store does not support SaveWithKey")
	}
	key := path.Join(exportsPrefix, fileName)
	size, err := saver.SaveWithKey(ctx, key, "application/pdf", &buf)
	if err != nil {
		return Export{}, err
	}

	telemetry.Info("export.pdf_stored", map[string]any{
		"job_id":      jobID,
		"storage_key": key,
		"size_bytes":  size,
	})

	return Export{FileName: fileName, StorageKey: key, SizeBytes: size}, nil
}
