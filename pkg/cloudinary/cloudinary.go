package cloudinary

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/config"
)

// Client mirrors uploaded media to Cloudinary.
type Client interface {
	UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (url string, err error)
	UploadVideo(ctx context.Context, file io.Reader, folder, publicID string) (url string, err error)
	Destroy(ctx context.Context, publicID, resourceType string) error
}

const (
	ResourceImage = "image"
	ResourceVideo = "video"
)

// Eager transformations for upload (single string per SDK)
const (
	imageEager = "q_auto,f_auto,w_1200,c_limit"
	videoEager = "q_auto:low,f_auto,w_1280"
)

var eagerAsyncTrue = true

type clientImpl struct {
	uploader *uploader.API
}

func (c *clientImpl) UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (string, error) {
	return c.upload(ctx, file, uploader.UploadParams{
		Folder:     folder,
		PublicID:   publicID,
		Eager:      imageEager,
		EagerAsync: &eagerAsyncTrue,
	})
}

// UploadVideo is eager-transcoded asynchronously; background videos can be large.
func (c *clientImpl) UploadVideo(ctx context.Context, file io.Reader, folder, publicID string) (string, error) {
	return c.upload(ctx, file, uploader.UploadParams{
		Folder:       folder,
		PublicID:     publicID,
		ResourceType: ResourceVideo,
		Eager:        videoEager,
		EagerAsync:   &eagerAsyncTrue,
	})
}

func (c *clientImpl) upload(ctx context.Context, file io.Reader, params uploader.UploadParams) (string, error) {
	result, err := c.uploader.Upload(ctx, file, params)
	if err != nil {
		return "", err
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload: %s", result.Error.Message)
	}
	return result.SecureURL, nil
}

// Destroy removes an asset. A missing asset is not an error.
func (c *clientImpl) Destroy(ctx context.Context, publicID, resourceType string) error {
	result, err := c.uploader.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	if err != nil {
		return err
	}
	if result.Error.Message != "" {
		return fmt.Errorf("cloudinary destroy: %s", result.Error.Message)
	}
	return nil
}

// NewClientFromParams builds a Client from Cloudinary cloud name, API key, and secret.
func NewClientFromParams(cloudName, apiKey, apiSecret string) (Client, error) {
	cfg, err := config.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	up, err := uploader.NewWithConfiguration(cfg)
	if err != nil {
		return nil, err
	}
	return &clientImpl{uploader: up}, nil
}
