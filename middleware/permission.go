package middleware

import (
	"net/http"

	"github.com/dspstudio/backend/handlers"
	"github.com/dspstudio/backend/models"
	"github.com/dspstudio/backend/pkg"
)

// RequirePermission, belirli bir yetkiyi gerektiren middleware döner.
//
// Bu middleware AuthMiddleware'den SONRA çalışır — context'te zaten
// doğrulanmış user vardır. Yetkiler rol tabanlıdır ve sabittir
// (admin her şeyi yapar, editor yalnızca içerik yetkilerine sahiptir),
// bu yüzden DB sorgusu gerekmez: models.RoleHasPermission yeterlidir.
//
// Kullanım:
//
//	middleware.RequirePermission(models.PermManageUsers, http.HandlerFunc(userHandler.List))
//
// Bu pattern Go'da "middleware factory" olarak bilinir:
// RequirePermission bir http.Handler döner, dönen handler next'i wrap eder.
func RequirePermission(perm models.Permission, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := handlers.UserFromContext(r.Context())
		if !ok {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		if !models.RoleHasPermission(user.Role, perm) {
			pkg.ErrorWithMessage(w, http.StatusForbidden, "insufficient permissions")
			return
		}

		next.ServeHTTP(w, r)
	})
}
