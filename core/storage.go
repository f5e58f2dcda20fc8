package core

import (
	"context"
	"io"
)

type StorageObject struct {
	Hash string `json:"hash"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

type StorageService interface {
	Upload(ctx context.Context, name string, r io.Reader) (*StorageObject, error)
	UploadMetadata(ctx context.Context, metadata map[string]any) (*StorageObject, error)
	Fetch(ctx context.Context, hash string) (string, error)
	FetchMetadata(ctx context.Context, hash string) (map[string]any, error)
	Pin(ctx context.Context, hash string) (bool, error)
}
