package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
)

// errorStatusMap lists the non-failure errors whose message is safe to show
// to the client. Anything else is answered with 500 and no details.
var errorStatusMap = map[error]int{
	ErrInvalidJSON:                     http.StatusBadRequest,
	ErrEmptyAuthorizationHeader:        http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader:      http.StatusUnauthorized,
	ErrNoClaimsInContext:               http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
}

var statusCodeMap = map[int]models.ResponseCode{
	http.StatusBadRequest:   models.CodeInvalidRequest,
	http.StatusUnauthorized: models.CodeUnauthorized,
}

func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError answers r with the envelope matching err:
//   - *models.Failure → 400 with the failure envelope;
//   - a known transport or token error → 400/401 with its message as data;
//   - anything else → 500 INTERNAL_ERROR without details.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var failure *models.Failure
	if errors.As(err, &failure) {
		log.Info().Str("code", string(failure.Code)).Str("reason", failure.Reason).Msg("request failed")
		utils.WriteJSON(w, failure.Response(), http.StatusBadRequest)
		return
	}

	status, known := statusFromError(err)
	if known == nil {
		log.Err(err).Msg("unexpected error occurred")
		utils.WriteJSON(w, models.NewResponse(models.CodeInternalError, nil), status)
		return
	}

	log.Info().Err(err).Int("status", status).Msg("request rejected")
	utils.WriteJSON(w, models.NewResponse(statusCodeMap[status], known.Error()), status)
}
