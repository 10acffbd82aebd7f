package service

import (
	"context"
	"errors"
	"strings"

	"github.com/d60-Lab/social-stream/internal/model"
	"github.com/d60-Lab/social-stream/internal/repository"
)

var ErrEmptyContent = errors.New("post content is empty")

// DefaultStreamLimit 每次信息流读取的最大条数（与旧版一致）
const DefaultStreamLimit = 100

// StreamService 发帖与信息流读取
type StreamService interface {
	CreatePost(ctx context.Context, authorID, content string) (*model.Post, error)
	GetPost(ctx context.Context, id string) (*model.Post, error)
	// OwnStream 自己 + 关注者的帖子；UserStream 某用户的公开主页；GlobalStream 全站
	OwnStream(ctx context.Context, userID string) ([]*model.Post, error)
	UserStream(ctx context.Context, username string) ([]*model.Post, error)
	GlobalStream(ctx context.Context) ([]*model.Post, error)
}

type streamService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	limit    int
}

func NewStreamService(postRepo repository.PostRepository, userRepo repository.UserRepository, limit int) StreamService {
	if limit <= 0 {
		limit = DefaultStreamLimit
	}
	return &streamService{postRepo: postRepo, userRepo: userRepo, limit: limit}
}

func (s *streamService) CreatePost(ctx context.Context, authorID, content string) (*model.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	post := &model.Post{AuthorID: authorID, Content: content}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *streamService) GetPost(ctx context.Context, id string) (*model.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *streamService) OwnStream(ctx context.Context, userID string) ([]*model.Post, error) {
	return s.postRepo.ListFeed(ctx, userID, s.limit)
}

// UserStream 用户名大小写不敏感；用户不存在返回 errs.ErrNotFound
func (s *streamService) UserStream(ctx context.Context, username string) ([]*model.Post, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.postRepo.ListByAuthor(ctx, user.ID, s.limit)
}

func (s *streamService) GlobalStream(ctx context.Context) ([]*model.Post, error) {
	return s.postRepo.ListGlobal(ctx, s.limit)
}
