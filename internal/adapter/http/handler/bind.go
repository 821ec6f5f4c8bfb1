package handler

import (
	"strconv"

	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/adapter/http/middleware"
	"wallet-ledger/internal/core/domain"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// idURI binds the :id path segment shared by most resources.
type idURI struct {
	ID string `uri:"id" binding:"required,safe_id"`
}

// bindJSON decodes and sanitizes the body. On failure the error response is
// already written and the caller just returns.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	dto.SanitizeStruct(req)
	return true
}

func bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	return true
}

func pathID(c *gin.Context) (string, bool) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation("invalid id"))
		return "", false
	}
	return uri.ID, true
}

func pathYear(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1900 || year > 9999 {
		response.Error(c, apperror.Validation("invalid year"))
		return 0, false
	}
	return year, true
}

// session returns the session placed by SessionAuth. Routes are wired so it
// is always present; a missing one is reported as an invalid session.
func session(c *gin.Context) (domain.Session, bool) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidSession())
	}
	return s, ok
}

// bindOptionalJSON is bindJSON for endpoints whose body may be omitted.
func bindOptionalJSON(c *gin.Context, req any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	return bindJSON(c, req)
}
