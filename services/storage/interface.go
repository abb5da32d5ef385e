package storage

import "context"

// StorageService abstracts the hosted media store used for provider images.
type StorageService interface {
	// UploadFile uploads a local file into destFolder and returns its permanent identifier.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeleteFile removes a previously uploaded file.
	DeleteFile(ctx context.Context, publicID string) error
	// DownloadURL builds a public delivery URL for an uploaded image.
	DownloadURL(publicID string) (string, error)
}
