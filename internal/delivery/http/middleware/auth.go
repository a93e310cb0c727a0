package middleware

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/place-microservice/internal/domain"
	"github.com/place-microservice/internal/pkg/errors"
	"github.com/place-microservice/internal/pkg/utils"
	"go.uber.org/zap"
)

// identityKey - ключ Identity в Locals запроса.
const identityKey = "identity"

// Claims - клеймы bearer-токена. Имена полей совпадают с именами клеймов,
// к которым привязывается Identity.
type Claims struct {
	jwt.RegisteredClaims
	ID        int64  `json:"id,omitempty"`
	FirstName string `json:"firstname,omitempty"`
	LastName  string `json:"lastname,omitempty"`
	Username  string `json:"username,omitempty"`
	PhotoURL  string `json:"photourl,omitempty"`
}

// Auth проверяет подпись bearer-токена (HS256) и кладёт Identity в Locals.
// Запрос без валидного токена отклоняется с 401 до вызова обработчика.
func Auth(secret string, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			logger.Debug("Token verification failed", zap.Error(err))
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		// клейм id основной, sub - запасной для токенов ранних ревизий
		id := claims.ID
		if id == 0 && claims.Subject != "" {
			id, err = strconv.ParseInt(claims.Subject, 10, 64)
			if err != nil {
				logger.Debug("Invalid sub claim", zap.String("sub", claims.Subject))
				return utils.SendError(c, errors.ErrUnauthorized)
			}
		}
		if id == 0 {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		c.Locals(identityKey, &domain.Identity{
			ID:        id,
			FirstName: claims.FirstName,
			LastName:  claims.LastName,
			Username:  claims.Username,
			PhotoURL:  claims.PhotoURL,
		})

		return c.Next()
	}
}

// GetIdentity возвращает Identity, положенную Auth, или nil.
func GetIdentity(c *fiber.Ctx) *domain.Identity {
	identity, _ := c.Locals(identityKey).(*domain.Identity)
	return identity
}

// GenerateToken подписывает токен с клеймами identity. Сервис сам токены
// не выдаёт; функция нужна тестам и dev-скриптам.
func GenerateToken(secret string, identity *domain.Identity, ttl time.Duration) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   strconv.FormatInt(identity.ID, 10),
		},
		ID:        identity.ID,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		Username:  identity.Username,
		PhotoURL:  identity.PhotoURL,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
