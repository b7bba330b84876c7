package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/db_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/request_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/response_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/repositories"
	"github.com/sujan03nepal/apex-trek-platform-sub000/pkg/memcache"
	"github.com/sujan03nepal/apex-trek-platform-sub000/pkg/seo"
	"github.com/sujan03nepal/apex-trek-platform-sub000/pkg/utils"
)

const postCacheEntity = "posts"

type BlogServiceInterface interface {
	ListPublished(ctx context.Context, category string) ([]response_models.PostSummary, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*response_models.PostDetail, error)

	CreatePost(ctx context.Context, req request_models.CreatePostRequest) (uuid.UUID, error)
	UpdatePost(ctx context.Context, req request_models.UpdatePostRequest) error
	DeletePost(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context, page, pageSize int) ([]db_models.BlogPost, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.BlogPost, error)
}

type BlogService struct {
	blogRepo repositories.BlogRepository
	cache    *memcache.CatalogCache
}

func NewBlogService(blogRepo repositories.BlogRepository, cache *memcache.CatalogCache) BlogServiceInterface {
	return &BlogService{
		blogRepo: blogRepo,
		cache:    cache,
	}
}

func (b *BlogService) ListPublished(ctx context.Context, category string) ([]response_models.PostSummary, error) {
	var posts []db_models.BlogPost

	if cached, ok := b.cache.Get(postCacheEntity, "published"); ok {
		posts = cached.([]db_models.BlogPost)
	} else {
		var err error
		posts, err = b.blogRepo.ListPublished(ctx)
		if err != nil {
			logrus.WithError(err).Error("listing published posts")
			return nil, utils.ErrDatabaseError
		}
		b.cache.Set(postCacheEntity, "published", posts)
	}

	summaries := make([]response_models.PostSummary, 0, len(posts))
	for i := range posts {
		if category != "" && posts[i].Category != category {
			continue
		}
		summaries = append(summaries, toPostSummary(&posts[i]))
	}
	return summaries, nil
}

// GetPublishedBySlug is the public detail view; each hit bumps the view
// counter. Counter failures are logged and ignored.
func (b *BlogService) GetPublishedBySlug(ctx context.Context, slug string) (*response_models.PostDetail, error) {
	post, err := b.blogRepo.GetBySlug(ctx, slug)
	if err != nil {
		logrus.WithError(err).Error("fetching post by slug")
		return nil, utils.ErrDatabaseError
	}
	if post == nil || !post.IsPublished {
		return nil, utils.ErrPostNotFound
	}

	if err := b.blogRepo.IncrementViews(ctx, post.ID); err != nil {
		logrus.WithError(err).WithField("post_id", post.ID).Warn("view count update failed")
	} else {
		post.ViewCount++
	}

	detail := &response_models.PostDetail{
		PostSummary:     toPostSummary(post),
		Content:         post.Content,
		MetaTitle:       post.MetaTitle,
		MetaDescription: post.MetaDescription,
	}
	return detail, nil
}

func (b *BlogService) CreatePost(ctx context.Context, req request_models.CreatePostRequest) (uuid.UUID, error) {
	slug := req.Slug
	if slug == "" {
		slug = seo.GenerateSlug(req.Title)
	}

	taken, err := b.blogRepo.SlugExists(ctx, slug, uuid.Nil)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	if taken {
		return uuid.Nil, utils.ErrSlugTaken
	}

	post := postFromRequest(req)
	post.Slug = slug

	// Fill meta fields from the heuristic when the editor left them blank.
	if post.MetaTitle == "" || post.MetaDescription == "" {
		result, _ := seo.NewHeuristicOptimizer().Optimize(ctx, seo.Input{
			Title:       req.Title,
			Content:     req.Content,
			ContentType: "blog",
		})
		if post.MetaTitle == "" {
			post.MetaTitle = result.MetaTitle
		}
		if post.MetaDescription == "" {
			post.MetaDescription = result.MetaDescription
		}
		if len(post.MetaKeywords) == 0 {
			post.MetaKeywords = result.Keywords
		}
	}

	id, err := b.blogRepo.Insert(ctx, post)
	if err != nil {
		logrus.WithError(err).Error("creating post")
		return uuid.Nil, utils.ErrDatabaseError
	}

	b.cache.Invalidate(postCacheEntity)
	return id, nil
}

func (b *BlogService) UpdatePost(ctx context.Context, req request_models.UpdatePostRequest) error {
	existing, err := b.blogRepo.GetByID(ctx, req.ID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrPostNotFound
	}

	slug := req.Slug
	if slug == "" {
		slug = existing.Slug
	}
	taken, err := b.blogRepo.SlugExists(ctx, slug, req.ID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if taken {
		return utils.ErrSlugTaken
	}

	updated := postFromRequest(req.CreatePostRequest)
	updated.ID = req.ID
	updated.Slug = slug
	updated.ViewCount = existing.ViewCount
	updated.CreatedAt = existing.CreatedAt

	if err := b.blogRepo.Update(ctx, updated); err != nil {
		logrus.WithError(err).Error("updating post")
		return utils.ErrDatabaseError
	}

	b.cache.Invalidate(postCacheEntity)
	return nil
}

func (b *BlogService) DeletePost(ctx context.Context, id uuid.UUID) error {
	existing, err := b.blogRepo.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrPostNotFound
	}

	if err := b.blogRepo.Delete(ctx, id); err != nil {
		logrus.WithError(err).Error("deleting post")
		return utils.ErrDatabaseError
	}

	b.cache.Invalidate(postCacheEntity)
	return nil
}

func (b *BlogService) ListAll(ctx context.Context, page, pageSize int) ([]db_models.BlogPost, error) {
	posts, err := b.blogRepo.ListAll(ctx, page, pageSize)
	if err != nil {
		logrus.WithError(err).Error("listing posts")
		return nil, utils.ErrDatabaseError
	}
	return posts, nil
}

func (b *BlogService) GetByID(ctx context.Context, id uuid.UUID) (*db_models.BlogPost, error) {
	post, err := b.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}
	return post, nil
}

func postFromRequest(req request_models.CreatePostRequest) *db_models.BlogPost {
	return &db_models.BlogPost{
		Title:           req.Title,
		Content:         req.Content,
		Excerpt:         req.Excerpt,
		Category:        req.Category,
		Author:          req.Author,
		CoverImage:      req.CoverImage,
		IsPublished:     req.IsPublished,
		IsFeatured:      req.IsFeatured,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		MetaKeywords:    req.MetaKeywords,
	}
}

func toPostSummary(post *db_models.BlogPost) response_models.PostSummary {
	return response_models.PostSummary{
		ID:         post.ID.String(),
		Title:      post.Title,
		Slug:       post.Slug,
		Excerpt:    post.Excerpt,
		Category:   post.Category,
		Author:     post.Author,
		CoverImage: post.CoverImage,
		IsFeatured: post.IsFeatured,
		ViewCount:  post.ViewCount,
		CreatedAt:  post.CreatedAt,
	}
}
