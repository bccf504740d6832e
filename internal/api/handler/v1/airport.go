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

type AirportService interface {
	CreateAirport(ctx context.Context, airport domain.Airport) (domain.Airport, error)
	GetAirport(ctx context.Context, id uint) (domain.Airport, error)
	ListAirports(ctx context.Context) ([]domain.Airport, error)
	UpdateAirport(ctx context.Context, airport domain.Airport) (domain.Airport, error)
	DeleteAirport(ctx context.Context, id uint) error
}

type AirportHandler struct {
	svc  AirportService
	uSvc UserService
}

func NewAirportHandler(svc AirportService, uSvc UserService) *AirportHandler {
	return &AirportHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

func (h *AirportHandler) requireAdmin(ctx *gin.Context) bool {
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

// HandleListAirports godoc
// @Summary      List all airports
// @Tags         airports
// @Produce      json
// @Success      200  {array}   domain.Airport
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airports [get]
// @Security BearerAuth
func (h *AirportHandler) HandleListAirports(ctx *gin.Context) {
	airports, err := h.svc.ListAirports(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListAirports -> h.svc.ListAirports -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, airports)
}

// HandleGetAirport godoc
// @Summary      Get an airport by ID
// @Tags         airports
// @Produce      json
// @Param        airportID  path      integer  true  "airport ID"
// @Success      200  {object}  domain.Airport
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airports/{airportID} [get]
// @Security BearerAuth
func (h *AirportHandler) HandleGetAirport(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "airportID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	airport, err := h.svc.GetAirport(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAirportNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("airport", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetAirport -> h.svc.GetAirport -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, airport)
}

// HandleCreateAirport godoc
// @Summary      Create a new airport
// @Description  Only admin users can create airports.
// @Tags         airports
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateAirportRequest  true  "request body"
// @Success      201  {object}  domain.Airport
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airports [post]
// @Security BearerAuth
func (h *AirportHandler) HandleCreateAirport(ctx *gin.Context) {
	if !h.requireAdmin(ctx) {
		return
	}

	req := request.CreateAirportRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	airport, err := h.svc.CreateAirport(ctx.Request.Context(), domain.Airport{
		Name:           req.Name,
		LocationCity:   req.LocationCity,
		ClosestBigCity: req.ClosestBigCity,
	})
	if err != nil {
		if errors.Is(err, service.ErrAirportNameExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrAirportNameExists))

			return
		}

		err = fmt.Errorf("v1.HandleCreateAirport -> h.svc.CreateAirport -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, airport)
}

// HandleUpdateAirport godoc
// @Summary      Update an airport
// @Description  Only admin users can update airports.
// @Tags         airports
// @Accept       json
// @Produce      json
// @Param        airportID  path      integer  true  "airport ID"
// @Param        request    body      request.UpdateAirportRequest  true  "request body"
// @Success      200  {object}  domain.Airport
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airports/{airportID} [put]
// @Security BearerAuth
func (h *AirportHandler) HandleUpdateAirport(ctx *gin.Context) {
	if !h.requireAdmin(ctx) {
		return
	}

	id, err := parseIDParam(ctx, "airportID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.UpdateAirportRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	airport, err := h.svc.UpdateAirport(ctx.Request.Context(), domain.Airport{
		ID:             id,
		Name:           req.Name,
		LocationCity:   req.LocationCity,
		ClosestBigCity: req.ClosestBigCity,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAirportNotFound):
			response.RenderErr(ctx, response.ErrNotFound("airport", "ID", id))
		case errors.Is(err, service.ErrAirportNameExists):
			response.RenderErr(ctx, response.ErrConflict(service.ErrAirportNameExists))
		default:
			err = fmt.Errorf("v1.HandleUpdateAirport -> h.svc.UpdateAirport -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, airport)
}

// HandleDeleteAirport godoc
// @Summary      Delete an airport
// @Description  Only admin users can delete airports.
// @Tags         airports
// @Produce      json
// @Param        airportID  path      integer  true  "airport ID"
// @Success      204  {string}  string  "No Content"
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airports/{airportID} [delete]
// @Security BearerAuth
func (h *AirportHandler) HandleDeleteAirport(ctx *gin.Context) {
	if !h.requireAdmin(ctx) {
		return
	}

	id, err := parseIDParam(ctx, "airportID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeleteAirport(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrAirportNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("airport", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteAirport -> h.svc.DeleteAirport -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
