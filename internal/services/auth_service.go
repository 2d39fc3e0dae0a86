package services

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"hospital/internal/models"
	"hospital/internal/repositories"
	"hospital/internal/utils"

	"github.com/dgrijalva/jwt-go"
)

// AuthService handles business logic for authentication.
//
// A session is a signed JWT bound to the user's ID. Logout revokes the
// presented token; revoked tokens are held in memory until they expire, so
// the session state machine is Anonymous -> Authenticated -> Anonymous.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which a session token is valid

	mu      sync.Mutex
	revoked map[string]time.Time // token -> expiry, pruned lazily
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour, // Token valid for 24 hours
		revoked:    make(map[string]time.Time),
	}
}

// Signup registers a new user with a hashed credential.
// The username must be at least 3 characters and not already taken.
func (s *AuthService) Signup(username, password string) (*models.User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, fmt.Errorf("password is required: %w", ErrValidation)
	}

	if existing, err := s.userRepo.GetByUsername(username); err == nil && existing != nil {
		return nil, fmt.Errorf("username '%s' already taken: %w", username, repositories.ErrConflict)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Password: hashed,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Login authenticates a user and returns a session token if successful.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		// Do not reveal whether the username exists
		return "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      now.Add(s.tokenDurat).Unix(),
		"iat":      now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// Logout revokes the presented session token. The token must still be valid;
// logging out twice, or without a session, fails.
func (s *AuthService) Logout(tokenString string) error {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return err
	}

	expiry := time.Now().Add(s.tokenDurat)
	if exp, ok := claims["exp"].(float64); ok {
		expiry = time.Unix(int64(exp), 0)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneRevokedLocked()
	s.revoked[tokenString] = expiry
	return nil
}

// ValidateToken parses and validates a session token, returning the claims
// if the token is well-formed, unexpired and not revoked.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	s.mu.Lock()
	_, isRevoked := s.revoked[tokenString]
	s.mu.Unlock()
	if isRevoked {
		return nil, errors.New("token has been revoked")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// pruneRevokedLocked drops revocation entries whose tokens have expired
// anyway. Caller must hold s.mu.
func (s *AuthService) pruneRevokedLocked() {
	now := time.Now()
	for token, expiry := range s.revoked {
		if now.After(expiry) {
			delete(s.revoked, token)
		}
	}
}
