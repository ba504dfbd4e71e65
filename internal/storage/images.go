package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"strings"

	"go.uber.org/zap"
)

var ErrInvalidDataURI = errors.New("invalid image data URI")

// ImageOffloader decodes base64 image data URIs and writes them to a
// FileStorage, so stories carry URLs instead of inline payloads.
type ImageOffloader struct {
	files  FileStorage
	logger *zap.Logger
}

func NewImageOffloader(files FileStorage, logger *zap.Logger) *ImageOffloader {
	return &ImageOffloader{files: files, logger: logger}
}

// StoreImages stores every image or none of them
func (o *ImageOffloader) StoreImages(ctx context.Context, images []string) ([]string, error) {
	urls := make([]string, 0, len(images))
	for i, img := range images {
		contentType, data, err := DecodeDataURI(img)
		if err != nil {
			o.rollback(ctx, urls)
			return nil, fmt.Errorf("image %d: %w", i, err)
		}

		url, err := o.files.SaveFile(ctx, bytes.NewReader(data), "", contentType)
		if err != nil {
			o.rollback(ctx, urls)
			return nil, fmt.Errorf("image %d: %w", i, err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// DeleteImages removes previously stored images. Failures are logged.
func (o *ImageOffloader) DeleteImages(ctx context.Context, urls []string) {
	o.rollback(ctx, urls)
}

func (o *ImageOffloader) rollback(ctx context.Context, urls []string) {
	for _, u := range urls {
		if err := o.files.DeleteFile(ctx, u); err != nil {
			o.logger.Warn("failed to remove stored image", zap.String("url", u), zap.Error(err))
		}
	}
}

// DecodeDataURI parses a base64 data:image/...;base64,... URI
func DecodeDataURI(uri string) (string, []byte, error) {
	header, payload, ok := strings.Cut(uri, ",")
	if !ok || !strings.HasPrefix(header, "data:image/") {
		return "", nil, ErrInvalidDataURI
	}

	params := strings.Split(strings.TrimPrefix(header, "data:"), ";")
	if len(params) < 2 || params[len(params)-1] != "base64" {
		return "", nil, ErrInvalidDataURI
	}
	contentType := params[0]

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
	}
	if len(data) == 0 {
		return "", nil, ErrInvalidDataURI
	}
	return contentType, data, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	}
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ".bin"
}
