package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"github.com/RRibeiro-047/carlach-detailing/internal/api/handlers"
)

const (
	adminRealm      = `Basic realm="carlach-admin", charset="UTF-8"`
	msgUnauthorized = "credenciais inválidas"
)

type Logger interface {
	Warn(format string, v ...interface{})
}

// AdminAuth guards the admin routes with HTTP Basic auth.
// passwordHash is a bcrypt hash; the plain password is never stored.
func AdminAuth(username, passwordHash string, logger Logger) mux.MiddlewareFunc {
	hash := []byte(passwordHash)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, password, ok := r.BasicAuth()
			if !ok {
				logger.Warn("%s %s - Missing admin credentials", r.Method, r.URL.Path)
				unauthorized(w)
				return
			}

			userOK := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
			// bcrypt runs even for a wrong username so both failures take the same time
			passOK := bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
			if !userOK || !passOK {
				logger.Warn("%s %s - Invalid admin credentials for user=%q", r.Method, r.URL.Path, user)
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", adminRealm)
	handlers.RespondUnauthorized(w, msgUnauthorized)
}
