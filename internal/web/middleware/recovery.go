package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// Recovery creates panic recovery middleware that logs the panic and
// returns a minimal HTML error page
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic recovered",
						slog.Any("error", err),
						slog.String("stack", string(debug.Stack())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
					)

					w.Header().Set("Content-Type", "text/html; charset=utf-8")
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(`<!DOCTYPE html>
<html lang="fa" dir="rtl">
<head><meta charset="utf-8"><title>خطا</title></head>
<body>
<h1>خطای داخلی سرور</h1>
<p>مشکلی پیش آمد. لطفا بعدا دوباره تلاش کنید.</p>
<p><a href="/">بازگشت به خانه</a></p>
</body>
</html>`))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
