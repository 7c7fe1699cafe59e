package handlers

import (
	"errors"
	"net/http"

	"github.com/Rakhulsr/ecommerce-back-end/app/repositories"
	"github.com/Rakhulsr/ecommerce-back-end/app/utils/logger"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type AffectedResponse struct {
	Affected int64 `json:"affected"`
}

// responder holds what every route group needs to answer a request.
type responder struct {
	render *render.Render
	log    *zap.Logger
}

func (rs responder) ok(w http.ResponseWriter, v interface{}) {
	_ = rs.render.JSON(w, http.StatusOK, v)
}

func (rs responder) notFound(w http.ResponseWriter, message string) {
	_ = rs.render.JSON(w, http.StatusNotFound, ErrorResponse{Message: message})
}

// readFailed answers a failed list or lookup with 500 and the raw error text.
func (rs responder) readFailed(w http.ResponseWriter, r *http.Request, op string, err error) {
	logger.FromContext(r.Context(), rs.log).Error(op, zap.Error(err))
	_ = rs.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
}

// writeFailed answers every failed create, update or delete with 400. Storage
// failures on writes are not told apart from validation failures.
func (rs responder) writeFailed(w http.ResponseWriter, r *http.Request, op string, err error) {
	resp := ErrorResponse{Message: err.Error()}

	var verr *repositories.ValidationError
	if errors.As(err, &verr) {
		resp = ErrorResponse{Message: verr.Message, Errors: verr.Fields}
		logger.FromContext(r.Context(), rs.log).Info(op, zap.String("reason", verr.Error()))
	} else {
		logger.FromContext(r.Context(), rs.log).Error(op, zap.Error(err))
	}

	_ = rs.render.JSON(w, http.StatusBadRequest, resp)
}
