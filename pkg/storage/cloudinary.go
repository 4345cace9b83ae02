package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/studybuddy-app/classroom-api/pkg/config"
	appErrors "github.com/studybuddy-app/classroom-api/pkg/errors"
)

const observeTarget = "cloudinary"

// UploadResult carries the opaque reference returned by the media store plus
// a directly browsable delivery URL.
type UploadResult struct {
	Reference string
	URL       string
}

// Uploader pushes raw bytes to an external media store. The reference it
// returns is meaningful only to that store.
type Uploader interface {
	Upload(ctx context.Context, filename string, data []byte) (UploadResult, error)
}

// Observer records the duration of calls leaving the process.
type Observer interface {
	ObserveUpstream(target string, duration time.Duration)
}

// CloudinaryStorage implements Uploader against the Cloudinary API.
type CloudinaryStorage struct {
	cld      *cloudinary.Cloudinary
	timeout  time.Duration
	observer Observer
}

// NewCloudinary builds a Cloudinary-backed uploader from config. A nil
// observer disables instrumentation.
func NewCloudinary(cfg config.StorageConfig, observer Observer) (*CloudinaryStorage, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary client: %w", err)
	}
	return &CloudinaryStorage{cld: cld, timeout: cfg.UploadTimeout, observer: observer}, nil
}

// Upload stores the payload and returns its public id and secure URL. The
// call runs under a bounded deadline so a stalled upstream cannot pin a
// request forever.
func (s *CloudinaryStorage) Upload(ctx context.Context, filename string, data []byte) (UploadResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	res, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		FilenameOverride: filename,
		UseFilename:      api.Bool(true),
		UniqueFilename:   api.Bool(true),
	})
	if s.observer != nil {
		s.observer.ObserveUpstream(observeTarget, time.Since(start))
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return UploadResult{}, appErrors.Wrap(err, appErrors.ErrUpstreamTimeout.Code, appErrors.ErrUpstreamTimeout.Status, "media upload timed out")
		}
		return UploadResult{}, appErrors.Wrap(err, appErrors.ErrUpstreamUnavailable.Code, appErrors.ErrUpstreamUnavailable.Status, "media upload failed")
	}

	// The SDK reports API-level rejections in the body, not as an error.
	if res.Error.Message != "" {
		return UploadResult{}, appErrors.Clone(appErrors.ErrUpstreamUnavailable, "media upload failed: "+res.Error.Message)
	}

	return UploadResult{Reference: res.PublicID, URL: res.SecureURL}, nil
}

// RawDocumentURL builds the deterministic raw delivery link for a stored
// document reference: <base>/<reference>.pdf.
func RawDocumentURL(baseURL, reference string) string {
	return fmt.Sprintf("%s/%s.pdf", strings.TrimRight(baseURL, "/"), reference)
}
