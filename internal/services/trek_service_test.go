package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/db_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/request_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/pkg/memcache"
	"github.com/sujan03nepal/apex-trek-platform-sub000/pkg/utils"
)

func newTrekFixture(t *testing.T) (TrekServiceInterface, *fakeTrekRepo) {
	t.Helper()
	repo := &fakeTrekRepo{treks: map[uuid.UUID]*db_models.Trek{}}
	cache := memcache.NewCatalogCache(time.Minute)
	return NewTrekService(repo, cache, NoopRecommender{}), repo
}

func TestCreateTrekGeneratesSlugFromName(t *testing.T) {
	svc, repo := newTrekFixture(t)

	id, err := svc.CreateTrek(context.Background(), request_models.CreateTrekRequest{
		Name:       "Upper Mustang: The Last Forbidden Kingdom!",
		Difficulty: db_models.DifficultyModerate,
		Price:      1800,
	})
	if err != nil {
		t.Fatal(err)
	}

	if repo.treks[id].Slug != "upper-mustang-the-last-forbidden-kingdom" {
		t.Fatalf("generated slug %q", repo.treks[id].Slug)
	}
}

func TestCreateTrekRejectsDuplicateSlug(t *testing.T) {
	svc, _ := newTrekFixture(t)

	if _, err := svc.CreateTrek(context.Background(), request_models.CreateTrekRequest{Name: "Langtang Valley"}); err != nil {
		t.Fatal(err)
	}

	_, err := svc.CreateTrek(context.Background(), request_models.CreateTrekRequest{Name: "Langtang Valley"})
	if !errors.Is(err, utils.ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken, got %v", err)
	}
}

func TestCreateTrekRejectsUnknownDifficulty(t *testing.T) {
	svc, repo := newTrekFixture(t)

	_, err := svc.CreateTrek(context.Background(), request_models.CreateTrekRequest{
		Name:       "Mystery Ridge",
		Difficulty: "Impossible",
	})
	if !errors.Is(err, utils.ErrInvalidTrek) {
		t.Fatalf("expected ErrInvalidTrek, got %v", err)
	}
	if len(repo.treks) != 0 {
		t.Fatalf("trek was persisted despite invalid difficulty")
	}
}

func TestGetPublishedBySlugHidesDrafts(t *testing.T) {
	svc, repo := newTrekFixture(t)

	id, err := svc.CreateTrek(context.Background(), request_models.CreateTrekRequest{
		Name:        "Rara Lake",
		IsPublished: false,
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.GetPublishedBySlug(context.Background(), "rara-lake"); !errors.Is(err, utils.ErrTrekNotFound) {
		t.Fatalf("draft trek should be hidden, got %v", err)
	}

	repo.treks[id].IsPublished = true
	detail, err := svc.GetPublishedBySlug(context.Background(), "rara-lake")
	if err != nil {
		t.Fatal(err)
	}
	if detail.Name != "Rara Lake" {
		t.Fatalf("got detail for %q", detail.Name)
	}
}

func TestUpdateTrekPreservesRating(t *testing.T) {
	svc, repo := newTrekFixture(t)

	id, err := svc.CreateTrek(context.Background(), request_models.CreateTrekRequest{
		Name:  "Mardi Himal",
		Price: 650,
	})
	if err != nil {
		t.Fatal(err)
	}
	repo.treks[id].Rating = 4.8
	repo.treks[id].ReviewCount = 57

	err = svc.UpdateTrek(context.Background(), request_models.UpdateTrekRequest{
		ID: id,
		CreateTrekRequest: request_models.CreateTrekRequest{
			Name:  "Mardi Himal Trek",
			Price: 700,
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	updated := repo.treks[id]
	if updated.Rating != 4.8 || updated.ReviewCount != 57 {
		t.Fatalf("rating fields not preserved: %.1f / %d", updated.Rating, updated.ReviewCount)
	}
	if updated.Price != 700 {
		t.Fatalf("price not updated: %.0f", updated.Price)
	}
	if updated.Slug != "mardi-himal" {
		t.Fatalf("slug should be kept when the update omits it, got %q", updated.Slug)
	}
}

func TestListPublishedUsesCachedSnapshot(t *testing.T) {
	svc, repo := newTrekFixture(t)

	id, err := svc.CreateTrek(context.Background(), request_models.CreateTrekRequest{
		Name:        "Kanchenjunga Base Camp",
		IsPublished: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	first, err := svc.ListPublished(context.Background(), TrekFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 published trek, got %d", len(first))
	}

	// A write that bypasses the service is invisible until invalidation.
	repo.treks[id].Name = "Renamed Behind The Cache"
	second, _ := svc.ListPublished(context.Background(), TrekFilter{})
	if second[0].Name != "Kanchenjunga Base Camp" {
		t.Fatalf("expected cached name, got %q", second[0].Name)
	}

	if err := svc.DeleteTrek(context.Background(), id); err != nil {
		t.Fatal(err)
	}
	third, _ := svc.ListPublished(context.Background(), TrekFilter{})
	if len(third) != 0 {
		t.Fatalf("delete should invalidate the snapshot, got %d treks", len(third))
	}
}
