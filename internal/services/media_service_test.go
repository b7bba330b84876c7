package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/db_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/request_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/pkg/memcache"
)

type fakeMediaRepo struct {
	items    []db_models.MediaItem
	listAlls int
}

func (f *fakeMediaRepo) Insert(ctx context.Context, item *db_models.MediaItem) (uuid.UUID, error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	f.items = append([]db_models.MediaItem{*item}, f.items...)
	return item.ID, nil
}

func (f *fakeMediaRepo) Update(ctx context.Context, item *db_models.MediaItem) error {
	for i := range f.items {
		if f.items[i].ID == item.ID {
			f.items[i] = *item
			return nil
		}
	}
	return nil
}

func (f *fakeMediaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeMediaRepo) GetByID(ctx context.Context, id uuid.UUID) (*db_models.MediaItem, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			item := f.items[i]
			return &item, nil
		}
	}
	return nil, nil
}

func (f *fakeMediaRepo) ListAll(ctx context.Context) ([]db_models.MediaItem, error) {
	f.listAlls++
	return append([]db_models.MediaItem(nil), f.items...), nil
}

type stubUploader struct{}

func (stubUploader) UploadBase64(ctx context.Context, base64Data, publicID string) (string, int64, error) {
	return "https://cdn.example.com/" + publicID + ".jpg", 1024, nil
}

func newMediaFixture(t *testing.T) (MediaServiceInterface, *fakeMediaRepo) {
	t.Helper()
	repo := &fakeMediaRepo{}
	cache := memcache.NewCatalogCache(time.Minute)
	return NewMediaService(repo, stubUploader{}, cache), repo
}

func seedMedia(t *testing.T, svc MediaServiceInterface, fileName, category string) {
	t.Helper()
	_, err := svc.Upload(context.Background(), request_models.UploadMediaRequest{
		FileName:   fileName,
		Base64Data: "aGVsbG8=",
		Category:   category,
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestMediaListFiltersByCategory(t *testing.T) {
	svc, _ := newMediaFixture(t)
	seedMedia(t, svc, "summit-ridge.jpg", "landscape")
	seedMedia(t, svc, "porter-team.jpg", "people")
	seedMedia(t, svc, "gokyo-lakes.jpg", "landscape")

	landscape, err := svc.List(context.Background(), "landscape", 1, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(landscape) != 2 {
		t.Fatalf("expected 2 landscape items, got %d", len(landscape))
	}

	all, err := svc.List(context.Background(), "", 1, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("empty category should return everything, got %d", len(all))
	}
}

func TestMediaListPaginatesSnapshot(t *testing.T) {
	svc, _ := newMediaFixture(t)
	for _, name := range []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg", "e.jpg"} {
		seedMedia(t, svc, name, "landscape")
	}

	first, err := svc.List(context.Background(), "", 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 2 {
		t.Fatalf("page 1 has %d items, want 2", len(first))
	}

	last, err := svc.List(context.Background(), "", 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(last) != 1 {
		t.Fatalf("page 3 has %d items, want 1", len(last))
	}

	empty, err := svc.List(context.Background(), "", 4, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(empty) != 0 {
		t.Fatalf("page past the end has %d items, want 0", len(empty))
	}
}

func TestMediaMutationsInvalidateSnapshot(t *testing.T) {
	svc, repo := newMediaFixture(t)
	seedMedia(t, svc, "summit-ridge.jpg", "landscape")

	if _, err := svc.List(context.Background(), "", 1, 20); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.List(context.Background(), "", 1, 20); err != nil {
		t.Fatal(err)
	}
	if repo.listAlls != 1 {
		t.Fatalf("second list should hit the cache, repo queried %d times", repo.listAlls)
	}

	if err := svc.UpdateMeta(context.Background(), request_models.UpdateMediaRequest{
		ID:       repo.items[0].ID,
		Category: "people",
	}); err != nil {
		t.Fatal(err)
	}

	people, err := svc.List(context.Background(), "people", 1, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(people) != 1 {
		t.Fatalf("update should invalidate the snapshot, got %d people items", len(people))
	}
}
