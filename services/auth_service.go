package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/skillhub-api/config"
	"github.com/skillhub-api/database"
	"github.com/skillhub-api/dto"
	"github.com/skillhub-api/models"
	"github.com/skillhub-api/repositories"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any failed login
var ErrInvalidCredentials = errors.New("invalid email or password")

// Register creates a new operator account
func Register(req dto.RegisterRequest) (*models.User, error) {
	// Check if email already exists
	var count int64
	if err := database.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, repositories.TranslateError(err)
	}
	if count > 0 {
		return nil, repositories.NewError(repositories.ErrConflict, "email already registered", nil)
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		Name:     req.Name,
		Role:     models.RoleStaff,
	}

	// Save user to database, the unique index catches a concurrent registration
	if err := database.DB.Create(&user).Error; err != nil {
		err = repositories.TranslateError(err)
		if errors.Is(err, repositories.ErrConflict) {
			return nil, repositories.NewError(repositories.ErrConflict, "email already registered", err)
		}
		return nil, err
	}

	return &user, nil
}

// GetUser retrieves an operator by ID
func GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		err = repositories.TranslateError(err)
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, repositories.NewError(repositories.ErrNotFound, "user not found", err)
		}
		return nil, err
	}
	return &user, nil
}

// Login authenticates an operator and returns a token
func Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	// Find user by email
	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	// Check password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token:     token,
		User:      user,
		ExpiresAt: expiresAt,
	}, nil
}

// GenerateToken generates a new JWT token for an operator
func GenerateToken(userID uint, email, role string) (string, time.Time, error) {
	secretKey, ttl, err := tokenSettings()
	if err != nil {
		return "", time.Time{}, err
	}

	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := dto.TokenClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns claims if valid
func ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	secretKey, _, err := tokenSettings()
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

func tokenSettings() (string, time.Duration, error) {
	cfg := config.AppConfig
	if cfg == nil || cfg.JWTSecret == "" {
		return "", 0, errors.New("JWT_SECRET not set in environment")
	}
	ttl := cfg.JWTTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return cfg.JWTSecret, ttl, nil
}
