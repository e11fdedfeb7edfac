package httpapi

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"noteboard/internal/common"
	"noteboard/internal/server/services"
)

// check is one validation predicate. Checks run in order before the handler
// body; the first failure short-circuits with its error kind.
type check func() error

func runChecks(checks ...check) error {
	for _, c := range checks {
		if err := c(); err != nil {
			return err
		}
	}
	return nil
}

func nonEmpty(values ...string) check {
	return func() error {
		for _, v := range values {
			if v == "" {
				return common.ErrMissingParams
			}
		}
		return nil
	}
}

func present(v any) check {
	return func() error {
		if v == nil {
			return common.ErrMissingParams
		}
		return nil
	}
}

// numericPriority accepts what JSON decoding produced for the priority
// field and demands an integral number.
func numericPriority(v any) check {
	return func() error {
		f, ok := v.(float64)
		if !ok || f != math.Trunc(f) {
			return common.ErrInvalidPriority
		}
		return nil
	}
}

// writeError translates a taxonomy error into a status and user-facing
// message. Store detail is logged, never echoed to the caller.
func (s *Server) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrMissingParams):
		c.JSON(http.StatusBadRequest, gin.H{"message": "missing parameters"})
	case errors.Is(err, common.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid credentials"})
	case errors.Is(err, common.ErrInvalidPriority):
		c.JSON(http.StatusBadRequest, gin.H{"message": "priority must be a number between 1 and 3"})
	case errors.Is(err, common.ErrDuplicate):
		c.JSON(http.StatusBadRequest, gin.H{"message": "name already exists"})
	case errors.Is(err, common.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	default:
		s.logger.Error(c.Request.Context(), "request failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, common.ErrMissingParams)
		return
	}

	if err := runChecks(nonEmpty(req.Email, req.Password)); err != nil {
		s.writeError(c, err)
		return
	}

	res, err := s.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken": res.AccessToken,
		"user": gin.H{
			"id":    res.Account.ID,
			"email": res.Account.Email,
			"name":  res.Account.FirstName + " " + res.Account.LastName,
			"role":  res.Account.Role,
		},
	})
}

// queryInt parses a query parameter, falling back to def for missing or
// non-numeric input.
func queryInt(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return v
}

func queryInt64(c *gin.Context, name string, def int64) int64 {
	v, err := strconv.ParseInt(c.DefaultQuery(name, strconv.FormatInt(def, 10)), 10, 64)
	if err != nil {
		return def
	}
	return v
}

func (s *Server) handleOffsetPage(c *gin.Context) {
	limit := queryInt(c, "limit", services.DefaultLimit)
	offset := queryInt(c, "offset", 0)

	page, err := s.pages.OffsetPage(c.Request.Context(), limit, offset)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (s *Server) handleCursorPage(c *gin.Context) {
	limit := queryInt(c, "limit", services.DefaultLimit)
	cursor := queryInt64(c, "cursor", 0)

	page, err := s.pages.CursorPage(c.Request.Context(), limit, cursor)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

type createRecordRequest struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	// decoded loosely so a missing or non-numeric value fails its own
	// predicate instead of a bind error
	Priority any `json:"priority"`
}

func (s *Server) handleCreateRecord(c *gin.Context) {
	var req createRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, common.ErrMissingParams)
		return
	}

	if err := runChecks(
		nonEmpty(req.Name, req.Message),
		present(req.Priority),
		numericPriority(req.Priority),
	); err != nil {
		s.writeError(c, err)
		return
	}

	entry, err := s.records.Create(c.Request.Context(), req.Name, req.Message, int(req.Priority.(float64)))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

func (s *Server) handleDeleteRecord(c *gin.Context) {
	name := c.Param("name")

	confirmation, err := s.records.Delete(c.Request.Context(), name)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry": confirmation})
}
