package authService

import (
	"Tripp/internal/api/auth"
	"Tripp/internal/entity"
	contextPkg "Tripp/pkg/context"
	jwtPkg "Tripp/pkg/jwt"
	"context"
	"errors"
	"github.com/sirupsen/logrus"
	"time"
)

const tokenTTL = time.Hour

func (s *authService) Register(c context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.TokenResponse{}, err
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return auth.TokenResponse{}, err
	}

	user := entity.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
	}

	userID, err := repo.Users.CreateUser(c, user)
	if err != nil {
		if errors.Is(err, auth.ErrEmailAlreadyExists) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("Registration rejected, email already exists")
			return auth.TokenResponse{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return auth.TokenResponse{}, err
	}

	token, _, err := jwtPkg.Sign(map[string]interface{}{"id": userID}, tokenTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.TokenResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    userID,
	}).Info("User registered")

	return auth.TokenResponse{Token: token, UserID: userID}, nil
}

func (s *authService) Login(c context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.TokenResponse{}, err
	}

	user, err := repo.Users.GetByEmail(c, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("Login with unknown email")
			return auth.TokenResponse{}, auth.ErrAuthenticationFailed
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return auth.TokenResponse{}, err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Password comparison failed")
		return auth.TokenResponse{}, auth.ErrAuthenticationFailed
	}

	token, _, err := jwtPkg.Sign(map[string]interface{}{"id": user.ID}, tokenTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{Token: token, UserID: user.ID}, nil
}
