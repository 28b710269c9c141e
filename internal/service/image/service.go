// Package image validates uploaded request images and produces the URL
// stored in the record store's attachment field.
package image

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/heartmarshall/material-tracker/internal/config"
	"github.com/heartmarshall/material-tracker/internal/domain"
)

// Service validates base64 image payloads and turns them into data URLs.
type Service struct {
	log      *slog.Logger
	maxBytes int64
}

// NewService creates an image service with the configured size limit.
func NewService(logger *slog.Logger, cfg config.UploadConfig) *Service {
	return &Service{
		log:      logger.With("service", "image"),
		maxBytes: cfg.MaxBytes,
	}
}

// IngestInput carries an uploaded image.
type IngestInput struct {
	// Image is the raw base64 payload without a data URL prefix.
	Image    string
	Filename string
}

// Ingest decodes and validates the payload and returns a data URL suitable
// for the record store's attachment field. The content type comes from
// sniffing the decoded bytes, never from the filename.
func (s *Service) Ingest(ctx context.Context, in IngestInput) (string, error) {
	if in.Image == "" {
		return "", domain.NewValidationError(domain.FieldError{Field: "image", Message: "is required"})
	}

	data, err := base64.StdEncoding.DecodeString(in.Image)
	if err != nil {
		return "", domain.NewValidationError(domain.FieldError{Field: "image", Message: "is not valid base64"})
	}

	if int64(len(data)) > s.maxBytes {
		return "", domain.NewValidationError(domain.FieldError{
			Field:   "image",
			Message: fmt.Sprintf("exceeds the %d byte limit", s.maxBytes),
		})
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", domain.NewValidationError(domain.FieldError{Field: "image", Message: "is not an image"})
	}

	s.log.InfoContext(ctx, "image ingested",
		slog.String("filename", in.Filename),
		slog.String("content_type", mtype.String()),
		slog.Int("size_bytes", len(data)),
	)

	return "data:" + mtype.String() + ";base64," + in.Image, nil
}
