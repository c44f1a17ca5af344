package auth

import (
	"net/http"

	"expenseflow/internal/user"
)

// Service combines credential verification with session token issuance.
type Service interface {
	Signup(email, name, password, securityQuestion, securityAnswer string) (*user.User, string, error)
	Login(email, password string) (*user.User, string, error)
	AuthMiddleware() func(http.Handler) http.Handler
}

type service struct {
	userService user.Service
	jwtManager  *JWTManager
}

func NewAuthService(userService user.Service, jwtManager *JWTManager) Service {
	return &service{
		userService: userService,
		jwtManager:  jwtManager,
	}
}

// Signup registers the account and immediately issues a session token, so a
// fresh signup is also a login.
func (s *service) Signup(email, name, password, securityQuestion, securityAnswer string) (*user.User, string, error) {
	newUser, err := s.userService.Register(email, name, password, securityQuestion, securityAnswer)
	if err != nil {
		return nil, "", err
	}

	token, err := s.jwtManager.GenerateToken(AuthUser{ID: newUser.ID, Email: newUser.Email, Name: newUser.Name})
	if err != nil {
		return nil, "", err
	}
	return newUser, token, nil
}

func (s *service) Login(email, password string) (*user.User, string, error) {
	existingUser, err := s.userService.Authenticate(email, password)
	if err != nil {
		return nil, "", err
	}

	token, err := s.jwtManager.GenerateToken(AuthUser{ID: existingUser.ID, Email: existingUser.Email, Name: existingUser.Name})
	if err != nil {
		return nil, "", err
	}
	return existingUser, token, nil
}
