package assets

import (
	"bytes"
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
)

type fakeObjectReader struct {
	objects map[string][]byte
}

func (r *fakeObjectReader) ReadObject(_ context.Context, objectKey string) ([]byte, error) {
	if data, ok := r.objects[objectKey]; ok {
		return data, nil
	}
	return nil, minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."}
}

func TestInlineRoundTrip(t *testing.T) {
	content := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0x00}
	reader := &fakeObjectReader{objects: map[string][]byte{
		"1756700000000-1-avatar.png": content,
	}}
	inliner := NewInliner(reader)

	asset, err := inliner.Inline(context.Background(), "1756700000000-1-avatar.png")
	if err != nil {
		t.Fatalf("inline: %v", err)
	}
	if asset == nil {
		t.Fatal("expected asset, got nil")
	}
	if asset.ContentType != "image/png" {
		t.Fatalf("expected image/png, got %q", asset.ContentType)
	}

	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(asset.DataURI, prefix) {
		t.Fatalf("unexpected data uri %q", asset.DataURI)
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(asset.DataURI, prefix))
	if err != nil {
		t.Fatalf("decode data uri: %v", err)
	}
	if !bytes.Equal(decoded, content) {
		t.Fatal("decoded payload differs from stored bytes")
	}
}

func TestInlineMissingObjectIsAbsentNotError(t *testing.T) {
	inliner := NewInliner(&fakeObjectReader{objects: map[string][]byte{}})

	asset, err := inliner.Inline(context.Background(), "1756700000000-2-gone.jpg")
	if err != nil {
		t.Fatalf("expected nil error for missing object, got %v", err)
	}
	if asset != nil {
		t.Fatalf("expected nil asset, got %+v", asset)
	}
}

func TestInlineEmptyReference(t *testing.T) {
	inliner := NewInliner(&fakeObjectReader{objects: map[string][]byte{}})

	asset, err := inliner.Inline(context.Background(), "")
	if err != nil || asset != nil {
		t.Fatalf("expected (nil, nil) for empty reference, got (%+v, %v)", asset, err)
	}
}

func TestMIMEByExt(t *testing.T) {
	cases := map[string]string{
		"jpg":  "image/jpeg",
		"jpeg": "image/jpeg",
		"png":  "image/png",
		"webp": "image/webp",
		"gif":  "image/gif",
		"pdf":  "application/pdf",
		"bin":  "application/octet-stream",
		"":     "application/octet-stream",
	}
	for ext, want := range cases {
		if got := MIMEByExt(ext); got != want {
			t.Errorf("MIMEByExt(%q) = %q, want %q", ext, got, want)
		}
	}
}
