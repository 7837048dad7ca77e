package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"backend/internal/models"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type demoUser struct {
	user         models.User
	passwordHash []byte
}

// Hardcoded demo credential table. The passwords are public by design; the
// login layer exists to resolve the acting cashier, not to secure anything.
var demoUsers = map[string]demoUser{}

func init() {
	seed := []struct {
		user     models.User
		password string
	}{
		{models.User{ID: "admin-1", Username: "admin", Role: models.RoleAdmin, Name: "Administrator"}, "admin123"},
		{models.User{ID: "kasir-1", Username: "kasir", Role: models.RoleKasir, Name: "Kasir 1"}, "kasir123"},
	}
	for _, s := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.MinCost)
		if err != nil {
			panic(err)
		}
		demoUsers[s.user.Username] = demoUser{user: s.user, passwordHash: hash}
	}
}

func Login(username, password string) (models.User, error) {
	record, ok := demoUsers[username]
	if !ok {
		return models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(record.passwordHash, []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return record.user, nil
}

func GenerateToken(user models.User, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     user.Role,
		"name":     user.Name,
		"exp":      time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// UserFromClaims rebuilds the acting cashier identity from token claims.
func UserFromClaims(claims jwt.MapClaims) models.User {
	id, _ := claims["sub"].(string)
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	name, _ := claims["name"].(string)
	return models.User{ID: id, Username: username, Role: role, Name: name}
}
