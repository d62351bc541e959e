package gallery

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/plumeria/retreat-api/internal/pkg/imaging"
)

type fakeStorage struct {
	saved   map[string][]byte
	deleted []string
	saveErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: make(map[string][]byte)}
}

func (f *fakeStorage) Save(ctx context.Context, filePath string, reader io.Reader, contentType string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.saved[filePath] = data
	return nil
}

func (f *fakeStorage) Delete(ctx context.Context, filePath string) error {
	f.deleted = append(f.deleted, filePath)
	delete(f.saved, filePath)
	return nil
}

func (f *fakeStorage) GetURL(filePath string) string {
	return "https://media.test/" + filePath
}

func testPNG(t *testing.T, w, h int) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func newTestService(store *fakeStorage) *Service {
	// Unseeded repository so counts start at zero.
	repo := &memoryRepository{images: make(map[uuid.UUID]*Image)}
	return NewService(repo, store, imaging.NewProcessor(imaging.DefaultConfig()))
}

func TestUploadStoresOriginalAndThumbnail(t *testing.T) {
	store := newFakeStorage()
	svc := newTestService(store)

	img, err := svc.Upload(context.Background(), CategoryNature, "Lake at dawn", "lake.png", 2048, testPNG(t, 800, 600))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	if len(store.saved) != 2 {
		t.Fatalf("stored %d files, want original and thumbnail", len(store.saved))
	}
	if !strings.HasPrefix(img.StoragePath, "gallery/nature/") {
		t.Fatalf("StoragePath = %q", img.StoragePath)
	}
	if !strings.Contains(img.ThumbPath, "_thumb") {
		t.Fatalf("ThumbPath = %q", img.ThumbPath)
	}
	if img.URL != "https://media.test/"+img.StoragePath {
		t.Fatalf("URL = %q", img.URL)
	}
	if img.Width != 800 || img.Height != 600 {
		t.Fatalf("dimensions = %dx%d, want 800x600", img.Width, img.Height)
	}

	list, err := svc.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 || list[0].ID != img.ID {
		t.Fatalf("List() = %v, want the uploaded image", list)
	}
}

func TestUploadRejections(t *testing.T) {
	svc := newTestService(newFakeStorage())
	ctx := context.Background()

	if _, err := svc.Upload(ctx, Category("food"), "", "a.png", 100, testPNG(t, 10, 10)); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("bad category error = %v, want ErrInvalidCategory", err)
	}
	if _, err := svc.Upload(ctx, CategoryNature, "", "a.pdf", 100, testPNG(t, 10, 10)); !errors.Is(err, ErrInvalidFile) {
		t.Fatalf("bad extension error = %v, want ErrInvalidFile", err)
	}
	if _, err := svc.Upload(ctx, CategoryNature, "", "a.png", imaging.MaxFileSize+1, testPNG(t, 10, 10)); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("oversize error = %v, want ErrFileTooLarge", err)
	}
	if _, err := svc.Upload(ctx, CategoryNature, "", "a.png", 100, bytes.NewReader([]byte("not an image"))); !errors.Is(err, ErrInvalidFile) {
		t.Fatalf("undecodable error = %v, want ErrInvalidFile", err)
	}
}

func TestUploadStorageFailureLeavesNothingBehind(t *testing.T) {
	store := newFakeStorage()
	store.saveErr = errors.New("bucket unreachable")
	svc := newTestService(store)

	_, err := svc.Upload(context.Background(), CategoryNature, "", "a.png", 100, testPNG(t, 10, 10))
	if err == nil {
		t.Fatal("expected error")
	}

	list, err := svc.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("failed upload recorded %d images", len(list))
	}
}

func TestListValidatesCategory(t *testing.T) {
	svc := newTestService(newFakeStorage())

	bad := Category("food")
	if _, err := svc.List(context.Background(), &bad); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("List() error = %v, want ErrInvalidCategory", err)
	}

	nature := CategoryNature
	if _, err := svc.List(context.Background(), &nature); err != nil {
		t.Fatalf("List(nature) error = %v", err)
	}
}

func TestDeleteRemovesStoredFiles(t *testing.T) {
	store := newFakeStorage()
	svc := newTestService(store)

	img, err := svc.Upload(context.Background(), CategoryAccommodation, "Cabin porch", "cabin.png", 2048, testPNG(t, 640, 480))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	if err := svc.Delete(context.Background(), img.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(store.saved) != 0 {
		t.Fatalf("%d stored files remain after delete", len(store.saved))
	}
	if err := svc.Delete(context.Background(), img.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestDeleteUnknownID(t *testing.T) {
	svc := newTestService(newFakeStorage())
	if err := svc.Delete(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete() error = %v, want ErrNotFound", err)
	}
}
