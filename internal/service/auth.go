package service

import (
    "context"
    "errors"
    "fmt"
    "time"

    "github.com/golang-jwt/jwt/v5"
    "golang.org/x/crypto/bcrypt"

    "github.com/d60-Lab/inquiry-service/config"
    "github.com/d60-Lab/inquiry-service/internal/repository"
)

// Authorizer 能力校验，替代宿主平台的全局 current_user 检查
type Authorizer interface {
    CanEdit(ctx context.Context, actor *Actor, inquiryID string) bool
}

// AllowAll 任何已认证管理员都可操作（单角色部署的默认策略）
type AllowAll struct{}

func (AllowAll) CanEdit(_ context.Context, actor *Actor, _ string) bool { return actor != nil }

type actorClaims struct {
    Name  string `json:"name"`
    Email string `json:"email"`
    jwt.RegisteredClaims
}

// AuthService 管理员登录与令牌解析
type AuthService interface {
    Login(ctx context.Context, username, password string) (string, error)
    ParseToken(token string) (*Actor, error)
}

type authService struct {
    users  repository.UserRepository
    secret []byte
    ttl    time.Duration
}

func NewAuthService(users repository.UserRepository, cfg *config.AuthConfig) AuthService {
    return &authService{users: users, secret: []byte(cfg.JWTSecret), ttl: cfg.TokenTTL}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
    u, err := s.users.GetByUsername(ctx, username)
    if err != nil {
        if errors.Is(err, repository.ErrUserNotFound) {
            return "", ErrInvalidCredentials
        }
        return "", err
    }
    if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
        return "", ErrInvalidCredentials
    }

    now := time.Now()
    claims := actorClaims{
        Name:  u.DisplayName,
        Email: u.Email,
        RegisteredClaims: jwt.RegisteredClaims{
            Subject:   u.ID,
            IssuedAt:  jwt.NewNumericDate(now),
            ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
        },
    }
    return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *authService) ParseToken(token string) (*Actor, error) {
    var claims actorClaims
    t, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
        }
        return s.secret, nil
    })
    if err != nil || !t.Valid {
        return nil, ErrInvalidCredentials
    }
    return &Actor{ID: claims.Subject, Name: claims.Name, Email: claims.Email}, nil
}
