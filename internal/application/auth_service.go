package application

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/devforum/backend/internal/domain/entity"
	repo "github.com/devforum/backend/internal/domain/repository"
	"github.com/devforum/backend/pkg/helpers"
)

// AuthService orchestrates signup and login on top of the user store, the
// password hasher, and the token service.
type AuthService struct {
	Users     repo.UserRepository
	Images    repo.ImageRepository
	JWT       *helpers.JWTManager
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
}

func NewAuthService(users repo.UserRepository, images repo.ImageRepository, jwt *helpers.JWTManager, gcs *storage.Client, gcsBucket string, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Images: images, JWT: jwt, GCS: gcs, GCSBucket: gcsBucket, Logger: logger}
}

type SignupInput struct {
	Name     string
	UserName string
	Email    string
	Password string
	Role     string
	// Avatar is an optional image payload stored as a related record.
	Avatar            []byte
	AvatarContentType string
}

// AuthResult pairs a signed token with the sanitized user projection.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      entity.PublicUser
}

const minPasswordLen = 6

// Signup registers a new user. Email and username uniqueness is pre-checked
// here as a fast path; the store's unique constraints remain the source of
// truth under concurrent signups.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	if len(in.Password) < minPasswordLen {
		return nil, ErrWeakPassword
	}
	role, err := entity.ParseRole(in.Role)
	if err != nil {
		return nil, ErrInvalidRole
	}

	if _, err := s.Users.GetByEmail(ctx, in.Email); err == nil {
		return nil, repo.ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	if _, err := s.Users.GetByUserName(ctx, in.UserName); err == nil {
		return nil, repo.ErrUsernameTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Name:         in.Name,
		UserName:     in.UserName,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}

	if len(in.Avatar) > 0 {
		if err := s.storeAvatar(ctx, u.ID, in.Avatar, in.AvatarContentType); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("avatar upload failed")
		}
	}

	return s.issue(u)
}

// Login authenticates by email and password. Unknown email and wrong
// password collapse into the same error so callers cannot probe which factor
// was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, ErrAccountDeactivated
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(u)
}

// GetUserByID loads a user for profile endpoints.
func (s *AuthService) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// UploadAvatar stores a new avatar for an existing user and records it as an
// image row.
func (s *AuthService) UploadAvatar(ctx context.Context, userID string, data []byte, filename, contentType string) (string, error) {
	if _, err := s.GetUserByID(ctx, userID); err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(filename))
	url, err := s.uploadToGCS(ctx, userID, data, ext, contentType)
	if err != nil {
		return "", err
	}
	if s.Images != nil {
		img := &entity.Image{URL: url, UserID: userID}
		if err := s.Images.Create(ctx, img); err != nil {
			return "", err
		}
	}
	return url, nil
}

func (s *AuthService) issue(u *entity.User) (*AuthResult, error) {
	token, exp, err := s.JWT.Issue(u.ID, u.Email, u.UserName, string(u.Role), u.Name)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("token signing failed")
		}
		return nil, err
	}
	return &AuthResult{Token: token, ExpiresAt: exp, User: u.Public()}, nil
}

func (s *AuthService) storeAvatar(ctx context.Context, userID string, data []byte, contentType string) error {
	url, err := s.uploadToGCS(ctx, userID, data, extFromContentType(contentType), contentType)
	if err != nil {
		return err
	}
	if s.Images == nil {
		return nil
	}
	return s.Images.Create(ctx, &entity.Image{URL: url, UserID: userID})
}

func (s *AuthService) uploadToGCS(ctx context.Context, userID string, data []byte, ext, contentType string) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	id := uuid.NewString()
	objectPath := filepath.ToSlash(filepath.Join("avatars", userID, id+ext))
	return helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, bytes.NewReader(data))
}

func extFromContentType(ct string) string {
	switch ct {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}
