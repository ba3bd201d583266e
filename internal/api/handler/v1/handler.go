package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fairwaylabs/society-api/internal/api/handler/v1/response"
	"github.com/fairwaylabs/society-api/internal/api/middleware"
	"github.com/fairwaylabs/society-api/internal/domain"
	"github.com/fairwaylabs/society-api/internal/service"
)

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
	GetHandicapHistory(ctx context.Context, userID uint) ([]domain.HandicapHistory, error)
	SetHandicap(ctx context.Context, userID uint, handicap float64) (domain.User, error)
}

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Produce      json
// @Success      200  {string}  string
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func getUserFromContext(ctx *gin.Context, uSvc UserService) (domain.User, *response.Err) {
	rawID, exists := ctx.Get(middleware.ContextKeyUserID)
	if !exists {
		return domain.User{}, response.ErrUnauthorized(errors.New("user is not authenticated"))
	}

	userID, ok := rawID.(uint)
	if !ok {
		return domain.User{}, response.ErrUnauthorized(errors.New("invalid user ID in context"))
	}

	user, err := uSvc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return domain.User{}, response.ErrNotFound("user", "ID", userID)
		}

		err = fmt.Errorf("getUserFromContext -> uSvc.GetUser -> %w", err)
		return domain.User{}, response.ErrInternalServerError(err)
	}

	return user, nil
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%v must be a positive integer", name)
	}

	return uint(id), nil
}

func parseQueryUint(ctx *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(ctx.Query(name), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("query parameter %v must be a positive integer", name)
	}

	return uint(value), nil
}
