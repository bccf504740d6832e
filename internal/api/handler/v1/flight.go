package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vkhomich/airport-api/internal/api/handler/v1/request"
	"github.com/vkhomich/airport-api/internal/api/handler/v1/response"
	"github.com/vkhomich/airport-api/internal/domain"
	"github.com/vkhomich/airport-api/internal/service"
)

type FlightService interface {
	CreateFlight(ctx context.Context, routeID, airplaneID uint, crewIDs []uint, departure, arrival time.Time) (domain.Flight, error)
	GetFlight(ctx context.Context, id uint) (domain.Flight, error)
	ListFlights(ctx context.Context, filter domain.FlightFilter, limit, offset int) ([]domain.Flight, int64, error)
	UpdateFlight(ctx context.Context, id, routeID, airplaneID uint, crewIDs []uint, departure, arrival time.Time) (domain.Flight, error)
	DeleteFlight(ctx context.Context, id uint) error
}

type FlightHandler struct {
	svc  FlightService
	uSvc UserService
}

func NewFlightHandler(svc FlightService, uSvc UserService) *FlightHandler {
	return &FlightHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

func (h *FlightHandler) requireAdmin(ctx *gin.Context) bool {
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

// HandleListFlights godoc
// @Summary      List flights
// @Description  Lists flights with the per-seat availability annotation. Supports filtering and pagination.
// @Tags         flights
// @Produce      json
// @Param        flight_source       query     string  false  "comma-separated source airport IDs"
// @Param        flight_destination  query     string  false  "comma-separated destination airport IDs"
// @Param        departure_time      query     string  false  "departure date (YYYY-MM-DD-HH:MM, date part matched)"
// @Param        arrival_time        query     string  false  "arrival date (YYYY-MM-DD-HH:MM, date part matched)"
// @Param        page                query     integer false  "page number"
// @Param        page_size           query     integer false  "page size (max 10)"
// @Success      200  {object}  response.FlightListResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /flights [get]
// @Security BearerAuth
func (h *FlightHandler) HandleListFlights(ctx *gin.Context) {
	req := request.ListFlightsRequest{}
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	filter, err := req.Filter()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req.Normalize()

	flights, total, err := h.svc.ListFlights(ctx.Request.Context(), filter, req.PageSize, req.Offset())
	if err != nil {
		err = fmt.Errorf("v1.HandleListFlights -> h.svc.ListFlights -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewFlightList(flights, total))
}

// HandleGetFlight godoc
// @Summary      Get a flight by ID
// @Description  Retrieves one flight with its route, airplane, crew and sold seat map.
// @Tags         flights
// @Produce      json
// @Param        flightID  path      integer  true  "flight ID"
// @Success      200  {object}  response.FlightDetail
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /flights/{flightID} [get]
// @Security BearerAuth
func (h *FlightHandler) HandleGetFlight(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "flightID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	flight, err := h.svc.GetFlight(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrFlightNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("flight", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetFlight -> h.svc.GetFlight -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewFlightDetail(flight))
}

// HandleCreateFlight godoc
// @Summary      Create a new flight
// @Description  Only admin users can create flights.
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateFlightRequest  true  "request body"
// @Success      201  {object}  response.FlightDetail
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /flights [post]
// @Security BearerAuth
func (h *FlightHandler) HandleCreateFlight(ctx *gin.Context) {
	if !h.requireAdmin(ctx) {
		return
	}

	req := request.CreateFlightRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	flight, err := h.svc.CreateFlight(
		ctx.Request.Context(),
		req.RouteID,
		req.AirplaneID,
		req.CrewIDs,
		req.DepartureTime,
		req.ArrivalTime,
	)
	if err != nil {
		renderFlightErr(ctx, "v1.HandleCreateFlight", err)

		return
	}

	ctx.JSON(http.StatusCreated, response.NewFlightDetail(flight))
}

// HandleUpdateFlight godoc
// @Summary      Update a flight
// @Description  Only admin users can update flights. The crew list is replaced as a whole.
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        flightID  path      integer  true  "flight ID"
// @Param        request   body      request.UpdateFlightRequest  true  "request body"
// @Success      200  {object}  response.FlightDetail
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /flights/{flightID} [put]
// @Security BearerAuth
func (h *FlightHandler) HandleUpdateFlight(ctx *gin.Context) {
	if !h.requireAdmin(ctx) {
		return
	}

	id, err := parseIDParam(ctx, "flightID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.UpdateFlightRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	flight, err := h.svc.UpdateFlight(
		ctx.Request.Context(),
		id,
		req.RouteID,
		req.AirplaneID,
		req.CrewIDs,
		req.DepartureTime,
		req.ArrivalTime,
	)
	if err != nil {
		if errors.Is(err, service.ErrFlightNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("flight", "ID", id))

			return
		}

		renderFlightErr(ctx, "v1.HandleUpdateFlight", err)

		return
	}

	ctx.JSON(http.StatusOK, response.NewFlightDetail(flight))
}

// HandleDeleteFlight godoc
// @Summary      Delete a flight
// @Description  Only admin users can delete flights. Deletion cascades to sold tickets.
// @Tags         flights
// @Produce      json
// @Param        flightID  path      integer  true  "flight ID"
// @Success      204  {string}  string  "No Content"
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /flights/{flightID} [delete]
// @Security BearerAuth
func (h *FlightHandler) HandleDeleteFlight(ctx *gin.Context) {
	if !h.requireAdmin(ctx) {
		return
	}

	id, err := parseIDParam(ctx, "flightID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeleteFlight(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrFlightNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("flight", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteFlight -> h.svc.DeleteFlight -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

func renderFlightErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidTimeWindow),
		errors.Is(err, service.ErrEmptyCrew),
		errors.Is(err, service.ErrRouteNotFound),
		errors.Is(err, service.ErrAirplaneNotFound),
		errors.Is(err, service.ErrCrewNotFound):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	default:
		err = fmt.Errorf("%v -> %w", op, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
