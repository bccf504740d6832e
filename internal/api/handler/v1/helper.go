package v1

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vkhomich/airport-api/internal/api/handler/v1/response"
	"github.com/vkhomich/airport-api/internal/api/middleware"
	"github.com/vkhomich/airport-api/internal/domain"
	"github.com/vkhomich/airport-api/internal/service"
)

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

func getUserFromContext(ctx *gin.Context, svc UserService) (domain.User, *response.Err) {
	val, exists := ctx.Get(middleware.ContextKeyUserID)
	if !exists {
		return domain.User{}, response.ErrNotLoggedIn(errors.New("user ID not found in context"))
	}

	userID, ok := val.(uint)
	if !ok {
		return domain.User{}, response.ErrNotLoggedIn(fmt.Errorf("invalid user ID in context (%v)", val))
	}

	user, err := svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return domain.User{}, response.ErrNotLoggedIn(err)
		}

		err = fmt.Errorf("getUserFromContext -> svc.GetUser -> %w", err)
		return domain.User{}, response.ErrInternalServerError(err)
	}

	return user, nil
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%v is not a valid %v", ctx.Param(name), name)
	}

	return uint(id), nil
}
