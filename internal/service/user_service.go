package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/d60-Lab/social-stream/internal/model"
	"github.com/d60-Lab/social-stream/internal/repository"
	"github.com/d60-Lab/social-stream/pkg/errs"
)

var ErrInvalidCredentials = errors.New("email or password does not match")

// UserService 注册与登录；密码只存 bcrypt 哈希
type UserService interface {
	Register(ctx context.Context, username, email, password string, admin bool) (*model.User, error)
	Login(ctx context.Context, email, password string) (string, *model.User, error)
	Logout(ctx context.Context, token string) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	tokens   *TokenManager
}

func NewUserService(userRepo repository.UserRepository, tokens *TokenManager) UserService {
	return &userService{userRepo: userRepo, tokens: tokens}
}

// Register 用户名/邮箱冲突时返回 errs.ErrAlreadyExists
func (s *userService) Register(ctx context.Context, username, email, password string, admin bool) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username: username,
		Email:    email,
		Password: string(hash),
		IsAdmin:  admin,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login 凭证校验通过后签发会话令牌。邮箱未注册与密码不符
// 返回同一个错误，不区分提示。
func (s *userService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *userService) Logout(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.userRepo.GetByUsername(ctx, username)
}

func (s *userService) GetByID(ctx context.Context, id string) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
