package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/social-stream/internal/model"
	"github.com/d60-Lab/social-stream/pkg/errs"
)

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id string) (*model.Post, error)
	// 三种信息流读取，统一 created_at 倒序 + limit 截断
	ListGlobal(ctx context.Context, limit int) ([]*model.Post, error)
	ListByAuthor(ctx context.Context, authorID string, limit int) ([]*model.Post, error)
	ListFeed(ctx context.Context, userID string, limit int) ([]*model.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) ListGlobal(ctx context.Context, limit int) ([]*model.Post, error) {
	var res []*model.Post
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID string, limit int) ([]*model.Post, error) {
	var res []*model.Post
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

// ListFeed 自己的帖子 ∪ 关注者的帖子。并集语义：自己的帖子不依赖自关注边。
func (r *postRepository) ListFeed(ctx context.Context, userID string, limit int) ([]*model.Post, error) {
	following := r.db.Model(&model.Relationship{}).
		Select("to_user_id").
		Where("from_user_id = ?", userID)

	var res []*model.Post
	err := r.db.WithContext(ctx).
		Where("author_id = ? OR author_id IN (?)", userID, following).
		Order("created_at DESC").
		Limit(limit).
		Find(&res).Error
	return res, err
}
