package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/DRSN-tech/food-delivery/pkg/logger"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// SessionHeader — заголовок, в котором витрина передаёт идентификатор сессии.
const SessionHeader = "X-Session-ID"

const maxSessionIDLen = 128

type sessionCtxKey struct{}

// sessionMiddleware достаёт id сессии из заголовка или выдаёт новый.
// Выданный id возвращается в том же заголовке ответа.
func sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(SessionHeader))
		if id == "" || len(id) > maxSessionIDLen {
			id = uuid.NewString()
		}

		w.Header().Set(SessionHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionCtxKey{}, id)))
	})
}

func sessionFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(sessionCtxKey{}).(string)
	return id
}

// requestLogger пишет в лог метод, путь, статус и длительность каждого запроса.
func requestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			line := "%s %s -> %d (%s) request_id=%s"
			args := []any{r.Method, r.URL.Path, status, time.Since(start), middleware.GetReqID(r.Context())}
			if status >= http.StatusInternalServerError {
				log.Warnf(line, args...)
				return
			}
			log.Debugf(line, args...)
		})
	}
}
