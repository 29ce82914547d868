package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"BharatYield/internal/httpx"
	"BharatYield/internal/logger"
	"BharatYield/internal/repo"
)

type contextKey string

const userIDKey contextKey = "userID"

const (
	CookieName     = "session_token"
	sessionTTL     = 30 * 24 * time.Hour
	MinPasswordLen = 6
)

type Authenv struct {
	JWTkey []byte
	Users  repo.UserStore
	Log    *zap.Logger
	// InsecureCookie drops the Secure flag for plain-HTTP development servers.
	InsecureCookie bool
	Now            func() time.Time
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Phone     string   `json:"phone"`
	Location  string   `json:"location"`
	FarmSize  string   `json:"farmSize"`
	CropTypes []string `json:"cropTypes"`
}

// UserID returns the authenticated user id stored by AuthMiddleware.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// WithUserID is used by tests and by AuthMiddleware.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func (env *Authenv) now() time.Time {
	if env.Now != nil {
		return env.Now()
	}
	return time.Now()
}

func (env *Authenv) log() *zap.Logger { return logger.OrNop(env.Log) }

func (env *Authenv) parseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return env.JWTkey, nil
	}, jwt.WithTimeFunc(env.now))
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenInvalidClaims
	}
	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return id, nil
}

func (env *Authenv) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil {
			httpx.Error(w, http.StatusUnauthorized, "UNAUTHORIZED", "Login required")
			return
		}
		id, err := env.parseToken(cookie.Value)
		if err != nil {
			env.log().Debug("rejected session token", zap.Error(err))
			httpx.Error(w, http.StatusUnauthorized, "UNAUTHORIZED", "Session expired")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), id)))
	})
}

func (env *Authenv) addCookie(w http.ResponseWriter, u repo.User) error {
	expiration := env.now().Add(sessionTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"exp":     expiration.Unix(),
	})
	tokenString, err := token.SignedString(env.JWTkey)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    tokenString,
		Expires:  expiration,
		Path:     "/",
		HttpOnly: true,
		Secure:   !env.InsecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (env *Authenv) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request payload")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = repo.NormalizeEmail(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		httpx.Error(w, http.StatusBadRequest, "BAD_REQUEST", "Name, email and password required")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		httpx.Error(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid email address")
		return
	}
	if len(req.Password) < MinPasswordLen {
		httpx.Error(w, http.StatusBadRequest, "BAD_REQUEST", "Password must be at least 6 characters")
		return
	}

	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		env.log().Error("hash password", zap.Error(err))
		httpx.Error(w, http.StatusInternalServerError, "INTERNAL", "Error hashing password")
		return
	}
	u, err := env.Users.Create(r.Context(), repo.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        strings.TrimSpace(req.Phone),
		Location:     strings.TrimSpace(req.Location),
		FarmSize:     strings.TrimSpace(req.FarmSize),
		CropTypes:    req.CropTypes,
		PasswordHash: hashedPassword,
	})
	if errors.Is(err, repo.ErrUserExists) {
		httpx.Error(w, http.StatusConflict, "USER_EXISTS", "An account with this email already exists")
		return
	}
	if err != nil {
		env.log().Error("create user", zap.Error(err))
		httpx.Error(w, http.StatusInternalServerError, "INTERNAL", "Could not create account")
		return
	}

	if err := env.addCookie(w, u); err != nil {
		env.log().Error("sign session", zap.Error(err))
		httpx.Error(w, http.StatusInternalServerError, "INTERNAL", "Could not start session")
		return
	}
	env.log().Info("user registered", zap.String("user_id", u.ID))
	httpx.JSON(w, http.StatusCreated, u)
}

func (env *Authenv) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request payload")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		httpx.Error(w, http.StatusBadRequest, "BAD_REQUEST", "Email and password required")
		return
	}

	u, err := env.Users.FindByEmail(r.Context(), req.Email)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		env.log().Error("find user", zap.Error(err))
		httpx.Error(w, http.StatusInternalServerError, "INTERNAL", "Could not log in")
		return
	}
	if err != nil || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		httpx.Error(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
		return
	}
	if err := env.addCookie(w, u); err != nil {
		env.log().Error("sign session", zap.Error(err))
		httpx.Error(w, http.StatusInternalServerError, "INTERNAL", "Could not start session")
		return
	}
	httpx.JSON(w, http.StatusOK, u)
}

func (env *Authenv) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   !env.InsecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}
