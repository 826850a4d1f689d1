package cli

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/daybookapp/daybook/internal/filex"
	"github.com/daybookapp/daybook/internal/netx"
)

// downloadsDir is where fetched attachments are stored, relative to the
// working directory.
const downloadsDir = "downloads"

// uploadAttachment reads a local file and uploads it straight to object
// storage through a presigned URL. The server never sees the bytes. The
// returned storage key goes into the entry's attachment list.
func (a *App) uploadAttachment(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	key, url, err := a.client.PresignPut(ctx, contentType)
	if err != nil {
		return "", err
	}

	if err := netx.UploadToPresignedURL(url, data, contentType); err != nil {
		return "", err
	}
	return key, nil
}

// downloadAttachment fetches a stored attachment through a presigned URL and
// writes it under the downloads directory. It returns the local path.
func (a *App) downloadAttachment(ctx context.Context, key string) (string, error) {
	url, err := a.client.PresignGet(ctx, key)
	if err != nil {
		return "", err
	}

	data, err := netx.DownloadFromPresignedURL(url)
	if err != nil {
		return "", err
	}

	dir, err := filex.EnsureSubDir(downloadsDir)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, filepath.Base(key))
	if err := os.WriteFile(path, data, 0o660); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
