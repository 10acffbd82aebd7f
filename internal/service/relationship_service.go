package service

import (
	"context"
	"errors"

	"github.com/d60-Lab/social-stream/internal/model"
	"github.com/d60-Lab/social-stream/internal/repository"
)

var (
	ErrFollowSelf = errors.New("cannot follow self")
)

// RelationshipService 关系链服务；目标用户按用户名大小写不敏感解析
type RelationshipService interface {
	Follow(ctx context.Context, actorID, targetUsername string) (*model.User, error)
	Unfollow(ctx context.Context, actorID, targetUsername string) (*model.User, error)
	Following(ctx context.Context, username string) ([]*model.User, error)
	Followers(ctx context.Context, username string) ([]*model.User, error)
}

type relationshipService struct {
	relRepo  repository.RelationshipRepository
	userRepo repository.UserRepository
}

func NewRelationshipService(relRepo repository.RelationshipRepository, userRepo repository.UserRepository) RelationshipService {
	return &relationshipService{relRepo: relRepo, userRepo: userRepo}
}

// Follow 目标不存在返回 errs.ErrNotFound；重复关注幂等成功
func (s *relationshipService) Follow(ctx context.Context, actorID, targetUsername string) (*model.User, error) {
	target, err := s.userRepo.GetByUsername(ctx, targetUsername)
	if err != nil {
		return nil, err
	}
	if target.ID == actorID {
		return nil, ErrFollowSelf
	}
	if err := s.relRepo.Create(ctx, actorID, target.ID); err != nil {
		return nil, err
	}
	return target, nil
}

// Unfollow 边不存在时同样幂等成功
func (s *relationshipService) Unfollow(ctx context.Context, actorID, targetUsername string) (*model.User, error) {
	target, err := s.userRepo.GetByUsername(ctx, targetUsername)
	if err != nil {
		return nil, err
	}
	if err := s.relRepo.Delete(ctx, actorID, target.ID); err != nil {
		return nil, err
	}
	return target, nil
}

func (s *relationshipService) Following(ctx context.Context, username string) ([]*model.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.relRepo.ListFollowing(ctx, user.ID)
}

func (s *relationshipService) Followers(ctx context.Context, username string) ([]*model.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.relRepo.ListFollowers(ctx, user.ID)
}
