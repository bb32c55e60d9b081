package session

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	apperrors "github.com/DamiHettich/damis-reserve-app/pkg/errors"
	httputil "github.com/DamiHettich/damis-reserve-app/pkg/http"
	"github.com/DamiHettich/damis-reserve-app/pkg/logger"
	"github.com/DamiHettich/damis-reserve-app/pkg/model"
)

// RequireRole gates a route on the session's role. Everything else about
// the session is ignored by the domain.
func RequireRole(src Source, log *logger.Logger, role model.Role, next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		sess := src.Current(r)
		if !sess.IsAuthenticated || sess.User == nil {
			if err := httputil.WriteError(w, apperrors.Forbidden("Authentication required")); err != nil {
				log.Error("failed to write error response", "middleware", "RequireRole", "error", err)
			}
			return
		}
		if sess.User.Role != role {
			log.Warn("Role gate rejected request",
				"path", r.URL.Path,
				"role", sess.User.Role,
				"required", role,
			)
			if err := httputil.WriteError(w, apperrors.Forbidden("Insufficient role")); err != nil {
				log.Error("failed to write error response", "middleware", "RequireRole", "error", err)
			}
			return
		}
		next(w, r, ps)
	}
}
