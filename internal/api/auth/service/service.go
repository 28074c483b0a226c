package authService

import (
	"Tripp/internal/api/auth"
	authRepository "Tripp/internal/api/auth/repository"
	"Tripp/pkg/bcrypt"
	"context"
	"github.com/sirupsen/logrus"
)

type AuthService interface {
	Register(c context.Context, req auth.RegisterRequest) (auth.TokenResponse, error)
	Login(c context.Context, req auth.LoginRequest) (auth.TokenResponse, error)
}

type authService struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	bcryptUtils bcrypt.IBcrypt
}

func New(log *logrus.Logger, repo authRepository.Repository, bcryptUtils bcrypt.IBcrypt) AuthService {
	return &authService{
		log:         log,
		repo:        repo,
		bcryptUtils: bcryptUtils,
	}
}
