package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vkhomich/airport-api/internal/api/handler/v1/request"
	"github.com/vkhomich/airport-api/internal/api/handler/v1/response"
	"github.com/vkhomich/airport-api/internal/domain"
	"github.com/vkhomich/airport-api/internal/service"
)

type RouteService interface {
	CreateRoute(ctx context.Context, sourceID, destinationID uint, distance int) (domain.Route, error)
	GetRoute(ctx context.Context, id uint) (domain.Route, error)
	ListRoutes(ctx context.Context) ([]domain.Route, error)
	UpdateRoute(ctx context.Context, id, sourceID, destinationID uint, distance int) (domain.Route, error)
	DeleteRoute(ctx context.Context, id uint) error
}

type RouteHandler struct {
	svc  RouteService
	uSvc UserService
}

func NewRouteHandler(svc RouteService, uSvc UserService) *RouteHandler {
	return &RouteHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

func (h *RouteHandler) requireAdmin(ctx *gin.Context) bool {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return false
	}

	if !user.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID)))

		return false
	}

	return true
}

// HandleListRoutes godoc
// @Summary      List all routes
// @Tags         routes
// @Produce      json
// @Success      200  {array}   response.RouteSummary
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /routes [get]
// @Security BearerAuth
func (h *RouteHandler) HandleListRoutes(ctx *gin.Context) {
	routes, err := h.svc.ListRoutes(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListRoutes -> h.svc.ListRoutes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewRouteSummaries(routes))
}

// HandleGetRoute godoc
// @Summary      Get a route by ID
// @Tags         routes
// @Produce      json
// @Param        routeID  path      integer  true  "route ID"
// @Success      200  {object}  response.RouteDetail
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /routes/{routeID} [get]
// @Security BearerAuth
func (h *RouteHandler) HandleGetRoute(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "routeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	route, err := h.svc.GetRoute(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRouteNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("route", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetRoute -> h.svc.GetRoute -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewRouteDetail(route))
}

// HandleCreateRoute godoc
// @Summary      Create a new route
// @Description  Only admin users can create routes.
// @Tags         routes
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateRouteRequest  true  "request body"
// @Success      201  {object}  response.RouteDetail
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /routes [post]
// @Security BearerAuth
func (h *RouteHandler) HandleCreateRoute(ctx *gin.Context) {
	if !h.requireAdmin(ctx) {
		return
	}

	req := request.CreateRouteRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	route, err := h.svc.CreateRoute(ctx.Request.Context(), req.SourceID, req.DestinationID, req.Distance)
	if err != nil {
		renderRouteErr(ctx, "v1.HandleCreateRoute", err)

		return
	}

	ctx.JSON(http.StatusCreated, response.NewRouteDetail(route))
}

// HandleUpdateRoute godoc
// @Summary      Update a route
// @Description  Only admin users can update routes.
// @Tags         routes
// @Accept       json
// @Produce      json
// @Param        routeID  path      integer  true  "route ID"
// @Param        request  body      request.UpdateRouteRequest  true  "request body"
// @Success      200  {object}  response.RouteDetail
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /routes/{routeID} [put]
// @Security BearerAuth
func (h *RouteHandler) HandleUpdateRoute(ctx *gin.Context) {
	if !h.requireAdmin(ctx) {
		return
	}

	id, err := parseIDParam(ctx, "routeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.UpdateRouteRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	route, err := h.svc.UpdateRoute(ctx.Request.Context(), id, req.SourceID, req.DestinationID, req.Distance)
	if err != nil {
		if errors.Is(err, service.ErrRouteNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("route", "ID", id))

			return
		}

		renderRouteErr(ctx, "v1.HandleUpdateRoute", err)

		return
	}

	ctx.JSON(http.StatusOK, response.NewRouteDetail(route))
}

// HandleDeleteRoute godoc
// @Summary      Delete a route
// @Description  Only admin users can delete routes.
// @Tags         routes
// @Produce      json
// @Param        routeID  path      integer  true  "route ID"
// @Success      204  {string}  string  "No Content"
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /routes/{routeID} [delete]
// @Security BearerAuth
func (h *RouteHandler) HandleDeleteRoute(ctx *gin.Context) {
	if !h.requireAdmin(ctx) {
		return
	}

	id, err := parseIDParam(ctx, "routeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeleteRoute(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrRouteNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("route", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteRoute -> h.svc.DeleteRoute -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

func renderRouteErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrSameAirport),
		errors.Is(err, service.ErrInvalidDistance),
		errors.Is(err, service.ErrAirportNotFound):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	case errors.Is(err, service.ErrRouteExists):
		response.RenderErr(ctx, response.ErrConflict(service.ErrRouteExists))
	default:
		err = fmt.Errorf("%v -> %w", op, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
