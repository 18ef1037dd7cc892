package assets

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
)

type fakeObjectStore struct {
	uploaded map[string][]byte
	types    map[string]string
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{
		uploaded: map[string][]byte{},
		types:    map[string]string{},
	}
}

func (s *fakeObjectStore) UploadFile(_ context.Context, objectName string, reader io.Reader, _ int64, contentType string) (*minio.UploadInfo, error) {
	b, _ := io.ReadAll(reader)
	s.uploaded[objectName] = b
	s.types[objectName] = contentType
	return &minio.UploadInfo{}, nil
}

func TestSaveRejectsUnsupportedExtension(t *testing.T) {
	store := NewStore(newFakeObjectStore(), 0, "")

	_, err := store.Save(context.Background(), []byte("x"), "notes.txt", "text/plain")
	if err != ErrUnsupportedType {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestSaveRejectsMismatchedContentType(t *testing.T) {
	store := NewStore(newFakeObjectStore(), 0, "")

	// 扩展名合法但声明的 Content-Type 不在允许范围内。
	_, err := store.Save(context.Background(), []byte("x"), "photo.png", "text/html")
	if err != ErrUnsupportedType {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	store := NewStore(newFakeObjectStore(), 8, "")

	_, err := store.Save(context.Background(), []byte("123456789"), "photo.png", "image/png")
	if err != ErrTooLarge {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}

func TestSaveSanitizesAndUploads(t *testing.T) {
	objects := newFakeObjectStore()
	store := NewStore(objects, 0, "")

	ref, err := store.Save(context.Background(), []byte("payload"), "My Photo (1).PNG", "image/png")
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if !strings.HasSuffix(string(ref), "-my_photo__1_.png") {
		t.Fatalf("unexpected object key %q", ref)
	}
	if string(objects.uploaded[string(ref)]) != "payload" {
		t.Fatalf("uploaded content mismatch for %q", ref)
	}
	if objects.types[string(ref)] != "image/png" {
		t.Fatalf("content type not forwarded, got %q", objects.types[string(ref)])
	}
}

func TestSaveGeneratesDistinctKeys(t *testing.T) {
	store := NewStore(newFakeObjectStore(), 0, "")
	ctx := context.Background()

	first, err := store.Save(ctx, []byte("a"), "cv.pdf", "application/pdf")
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	second, err := store.Save(ctx, []byte("b"), "cv.pdf", "application/pdf")
	if err != nil {
		t.Fatalf("second save: %v", err)
	}

	if first == second {
		t.Fatalf("expected distinct keys, both %q", first)
	}
}

func TestReferenceDisplayName(t *testing.T) {
	ref := Reference("1756700000000-3-aws-architect.pdf")
	if got := ref.DisplayName(); got != "aws-architect.pdf" {
		t.Fatalf("expected uniqueness prefix stripped, got %q", got)
	}

	// 无前缀的引用原样返回。
	if got := Reference("plain.pdf").DisplayName(); got != "plain.pdf" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

func TestSanitizeName(t *testing.T) {
	cases := map[string]string{
		"Résumé Final.pdf": "r_sum__final.pdf",
		"photo.png":        "photo.png",
		"":                 "upload",
	}
	for input, want := range cases {
		if got := SanitizeName(input); got != want {
			t.Errorf("SanitizeName(%q) = %q, want %q", input, got, want)
		}
	}
}
