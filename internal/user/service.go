package user

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/badoux/checkmail"
	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost        = 12
	minPasswordLength = 6
)

var (
	ErrInvalidEmail          = errors.New("email address is not valid")
	ErrEmailAlreadyExists    = errors.New("user already exists with this email")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrInvalidSecurityAnswer = errors.New("invalid security answer")
	ErrMissingFields         = errors.New("email, name, password, security question, and security answer are required")
	ErrWeakPassword          = errors.New("password must be at least 6 characters long and contain at least one uppercase letter, one lowercase letter, and one number")
	ErrInternalError         = errors.New("internal Server Error")
)

// User is a registered account with its authentication credentials. The
// security answer is stored as a bcrypt hash of the lowercased, trimmed
// answer, never in plain text.
type User struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	Name               string    `json:"name"`
	PasswordHash       string    `json:"-"`
	SecurityQuestion   string    `json:"-"`
	SecurityAnswerHash string    `json:"-"`
	CreatedAt          time.Time `json:"created_at"`
}

type Service interface {
	Register(email, name, password, securityQuestion, securityAnswer string) (*User, error)
	Authenticate(email, password string) (*User, error)
	GetUserByID(userID string) (*User, error)
	GetSecurityQuestion(email string) (string, error)
	ResetPassword(email, securityAnswer, newPassword string) error
	DeleteAccount(userID string) error
	DeleteData(userID string) error
}

type service struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &service{repo: repo}
}

func hashPassword(password string) (string, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hashedPasswordBytes), err
}

func verifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// normalizeAnswer lowercases and trims a security answer so that matching
// stays case-insensitive, as the recovery form promises.
func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmailAddress(email string) error {
	if err := checkmail.ValidateFormat(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrWeakPassword
	}
	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLower || !hasUpper || !hasDigit {
		return ErrWeakPassword
	}
	return nil
}

func (s *service) Register(email, name, password, securityQuestion, securityAnswer string) (*User, error) {
	if email == "" || name == "" || password == "" || securityQuestion == "" || securityAnswer == "" {
		return nil, ErrMissingFields
	}

	email = normalizeEmail(email)
	if err := validateEmailAddress(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	existing, err := s.repo.getUserByEmail(email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	answerHash, err := hashPassword(normalizeAnswer(securityAnswer))
	if err != nil {
		return nil, err
	}

	newUser := &User{
		Email:              email,
		Name:               name,
		PasswordHash:       passwordHash,
		SecurityQuestion:   securityQuestion,
		SecurityAnswerHash: answerHash,
	}
	if err := s.repo.createUser(newUser); err != nil {
		// The unique constraint closes the race between the existence
		// check and the insert.
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return newUser, nil
}

// Authenticate returns the account matching the credentials. Unknown email
// and wrong password both map to ErrInvalidCredentials so the response
// never reveals which one failed.
func (s *service) Authenticate(email, password string) (*User, error) {
	existing, err := s.repo.getUserByEmail(normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !verifyPassword(password, existing.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return existing, nil
}

func (s *service) GetUserByID(userID string) (*User, error) {
	return s.repo.getUserByID(userID)
}

func (s *service) GetSecurityQuestion(email string) (string, error) {
	existing, err := s.repo.getUserByEmail(normalizeEmail(email))
	if err != nil {
		return "", err
	}
	if existing.SecurityQuestion == "" {
		return "", ErrUserNotFound
	}
	return existing.SecurityQuestion, nil
}

func (s *service) ResetPassword(email, securityAnswer, newPassword string) error {
	existing, err := s.repo.getUserByEmail(normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrInvalidSecurityAnswer
		}
		return err
	}

	if existing.SecurityAnswerHash == "" || !verifyPassword(normalizeAnswer(securityAnswer), existing.SecurityAnswerHash) {
		return ErrInvalidSecurityAnswer
	}

	if err := validatePassword(newPassword); err != nil {
		return err
	}

	passwordHash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.repo.updateUserPassword(existing.ID, passwordHash)
}

// DeleteAccount removes the account together with all of its expenses and
// categories in one storage transaction.
func (s *service) DeleteAccount(userID string) error {
	return s.repo.deleteUser(userID)
}

// DeleteData wipes the account's expenses and categories but keeps the
// account itself.
func (s *service) DeleteData(userID string) error {
	return s.repo.deleteUserData(userID)
}
