package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/lucerocare/LRM-BookingService/internal/api/handlers"
	"github.com/lucerocare/LRM-BookingService/internal/domain"
)

const (
	msgMissingToken = "se requiere autenticación"
	msgInvalidToken = "sesión inválida o caducada"
	msgForbidden    = "no tienes permisos para esta operación"
)

type contextKey string

const identityKey contextKey = "identity"

// TokenParser интерфейс для проверки сессионных токенов
type TokenParser interface {
	ParseToken(token string) (domain.Identity, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth middleware аутентификации: извлекает Bearer токен,
// проверяет подпись и кладет идентичность вызывающего в контекст
type Auth struct {
	parser TokenParser
	logger Logger
}

// NewAuth создает новый middleware аутентификации
func NewAuth(parser TokenParser, logger Logger) *Auth {
	return &Auth{parser: parser, logger: logger}
}

// Authenticate проверяет токен и прокидывает идентичность в контекст
func (a *Auth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		identity, err := a.parser.ParseToken(token)
		if err != nil {
			a.logger.Warn("auth: token rejected for %s %s: %v", r.Method, r.URL.Path, err)
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAvailabilityManager пропускает только роли с правом управления календарем
func (a *Auth) RequireAvailabilityManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok || !identity.Role.CanManageAvailability() {
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireBookingManager пропускает только роли с правом управления бронированиями
func (a *Auth) RequireBookingManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok || !identity.Role.CanManageBookings() {
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// IdentityFromContext извлекает идентичность вызывающего из контекста
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(domain.Identity)
	return identity, ok
}

// WithIdentity кладет идентичность в контекст (для тестов)
func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}
