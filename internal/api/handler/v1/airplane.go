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

type AirplaneService interface {
	CreateType(ctx context.Context, airplaneType domain.AirplaneType) (domain.AirplaneType, error)
	GetType(ctx context.Context, id uint) (domain.AirplaneType, error)
	ListTypes(ctx context.Context) ([]domain.AirplaneType, error)
	UpdateType(ctx context.Context, airplaneType domain.AirplaneType) (domain.AirplaneType, error)
	DeleteType(ctx context.Context, id uint) error

	CreateAirplane(ctx context.Context, airplane domain.Airplane) (domain.Airplane, error)
	GetAirplane(ctx context.Context, id uint) (domain.Airplane, error)
	ListAirplanes(ctx context.Context) ([]domain.Airplane, error)
	UpdateAirplane(ctx context.Context, airplane domain.Airplane) (domain.Airplane, error)
	DeleteAirplane(ctx context.Context, id uint) error
}

type AirplaneHandler struct {
	svc  AirplaneService
	uSvc UserService
}

func NewAirplaneHandler(svc AirplaneService, uSvc UserService) *AirplaneHandler {
	return &AirplaneHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

func (h *AirplaneHandler) requireAdmin(ctx *gin.Context) bool {
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

// HandleListAirplaneTypes godoc
// @Summary      List all airplane types
// @Tags         airplane-types
// @Produce      json
// @Success      200  {array}   domain.AirplaneType
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airplane-types [get]
// @Security BearerAuth
func (h *AirplaneHandler) HandleListAirplaneTypes(ctx *gin.Context) {
	types, err := h.svc.ListTypes(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListAirplaneTypes -> h.svc.ListTypes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, types)
}

// HandleGetAirplaneType godoc
// @Summary      Get an airplane type by ID
// @Tags         airplane-types
// @Produce      json
// @Param        typeID  path      integer  true  "airplane type ID"
// @Success      200  {object}  domain.AirplaneType
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airplane-types/{typeID} [get]
// @Security BearerAuth
func (h *AirplaneHandler) HandleGetAirplaneType(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "typeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	airplaneType, err := h.svc.GetType(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAirplaneTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("airplane type", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetAirplaneType -> h.svc.GetType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, airplaneType)
}

// HandleCreateAirplaneType godoc
// @Summary      Create a new airplane type
// @Description  Only admin users can create airplane types.
// @Tags         airplane-types
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateAirplaneTypeRequest  true  "request body"
// @Success      201  {object}  domain.AirplaneType
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airplane-types [post]
// @Security BearerAuth
func (h *AirplaneHandler) HandleCreateAirplaneType(ctx *gin.Context) {
	if !h.requireAdmin(ctx) {
		return
	}

	req := request.CreateAirplaneTypeRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	airplaneType, err := h.svc.CreateType(ctx.Request.Context(), domain.AirplaneType{Name: req.Name})
	if err != nil {
		if errors.Is(err, service.ErrAirplaneTypeNameExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrAirplaneTypeNameExists))

			return
		}

		err = fmt.Errorf("v1.HandleCreateAirplaneType -> h.svc.CreateType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, airplaneType)
}

// HandleUpdateAirplaneType godoc
// @Summary      Update an airplane type
// @Description  Only admin users can update airplane types.
// @Tags         airplane-types
// @Accept       json
// @Produce      json
// @Param        typeID   path      integer  true  "airplane type ID"
// @Param        request  body      request.UpdateAirplaneTypeRequest  true  "request body"
// @Success      200  {object}  domain.AirplaneType
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airplane-types/{typeID} [put]
// @Security BearerAuth
func (h *AirplaneHandler) HandleUpdateAirplaneType(ctx *gin.Context) {
	if !h.requireAdmin(ctx) {
		return
	}

	id, err := parseIDParam(ctx, "typeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.UpdateAirplaneTypeRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	airplaneType, err := h.svc.UpdateType(ctx.Request.Context(), domain.AirplaneType{ID: id, Name: req.Name})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAirplaneTypeNotFound):
			response.RenderErr(ctx, response.ErrNotFound("airplane type", "ID", id))
		case errors.Is(err, service.ErrAirplaneTypeNameExists):
			response.RenderErr(ctx, response.ErrConflict(service.ErrAirplaneTypeNameExists))
		default:
			err = fmt.Errorf("v1.HandleUpdateAirplaneType -> h.svc.UpdateType -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, airplaneType)
}

// HandleDeleteAirplaneType godoc
// @Summary      Delete an airplane type
// @Description  Only admin users can delete airplane types.
// @Tags         airplane-types
// @Produce      json
// @Param        typeID  path      integer  true  "airplane type ID"
// @Success      204  {string}  string  "No Content"
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airplane-types/{typeID} [delete]
// @Security BearerAuth
func (h *AirplaneHandler) HandleDeleteAirplaneType(ctx *gin.Context) {
	if !h.requireAdmin(ctx) {
		return
	}

	id, err := parseIDParam(ctx, "typeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeleteType(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrAirplaneTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("airplane type", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteAirplaneType -> h.svc.DeleteType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListAirplanes godoc
// @Summary      List all airplanes
// @Tags         airplanes
// @Produce      json
// @Success      200  {array}   response.AirplaneSummary
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airplanes [get]
// @Security BearerAuth
func (h *AirplaneHandler) HandleListAirplanes(ctx *gin.Context) {
	airplanes, err := h.svc.ListAirplanes(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListAirplanes -> h.svc.ListAirplanes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewAirplaneSummaries(airplanes))
}

// HandleGetAirplane godoc
// @Summary      Get an airplane by ID
// @Tags         airplanes
// @Produce      json
// @Param        airplaneID  path      integer  true  "airplane ID"
// @Success      200  {object}  response.AirplaneDetail
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airplanes/{airplaneID} [get]
// @Security BearerAuth
func (h *AirplaneHandler) HandleGetAirplane(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "airplaneID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	airplane, err := h.svc.GetAirplane(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAirplaneNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("airplane", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetAirplane -> h.svc.GetAirplane -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewAirplaneDetail(airplane))
}

// HandleCreateAirplane godoc
// @Summary      Create a new airplane
// @Description  Only admin users can create airplanes.
// @Tags         airplanes
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateAirplaneRequest  true  "request body"
// @Success      201  {object}  response.AirplaneDetail
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airplanes [post]
// @Security BearerAuth
func (h *AirplaneHandler) HandleCreateAirplane(ctx *gin.Context) {
	if !h.requireAdmin(ctx) {
		return
	}

	req := request.CreateAirplaneRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	airplane, err := h.svc.CreateAirplane(ctx.Request.Context(), domain.Airplane{
		Name:         req.Name,
		Rows:         req.Rows,
		SeatsInRow:   req.SeatsInRow,
		AirplaneType: domain.AirplaneType{ID: req.AirplaneTypeID},
	})
	if err != nil {
		renderAirplaneErr(ctx, "v1.HandleCreateAirplane", err)

		return
	}

	ctx.JSON(http.StatusCreated, response.NewAirplaneDetail(airplane))
}

// HandleUpdateAirplane godoc
// @Summary      Update an airplane
// @Description  Only admin users can update airplanes.
// @Tags         airplanes
// @Accept       json
// @Produce      json
// @Param        airplaneID  path      integer  true  "airplane ID"
// @Param        request     body      request.UpdateAirplaneRequest  true  "request body"
// @Success      200  {object}  response.AirplaneDetail
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airplanes/{airplaneID} [put]
// @Security BearerAuth
func (h *AirplaneHandler) HandleUpdateAirplane(ctx *gin.Context) {
	if !h.requireAdmin(ctx) {
		return
	}

	id, err := parseIDParam(ctx, "airplaneID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.UpdateAirplaneRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	airplane, err := h.svc.UpdateAirplane(ctx.Request.Context(), domain.Airplane{
		ID:           id,
		Name:         req.Name,
		Rows:         req.Rows,
		SeatsInRow:   req.SeatsInRow,
		AirplaneType: domain.AirplaneType{ID: req.AirplaneTypeID},
	})
	if err != nil {
		if errors.Is(err, service.ErrAirplaneNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("airplane", "ID", id))

			return
		}

		renderAirplaneErr(ctx, "v1.HandleUpdateAirplane", err)

		return
	}

	ctx.JSON(http.StatusOK, response.NewAirplaneDetail(airplane))
}

// HandleDeleteAirplane godoc
// @Summary      Delete an airplane
// @Description  Only admin users can delete airplanes.
// @Tags         airplanes
// @Produce      json
// @Param        airplaneID  path      integer  true  "airplane ID"
// @Success      204  {string}  string  "No Content"
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airplanes/{airplaneID} [delete]
// @Security BearerAuth
func (h *AirplaneHandler) HandleDeleteAirplane(ctx *gin.Context) {
	if !h.requireAdmin(ctx) {
		return
	}

	id, err := parseIDParam(ctx, "airplaneID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeleteAirplane(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrAirplaneNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("airplane", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteAirplane -> h.svc.DeleteAirplane -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

func renderAirplaneErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidSeatGeometry),
		errors.Is(err, service.ErrAirplaneTypeNotFound):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	case errors.Is(err, service.ErrAirplaneNameExists):
		response.RenderErr(ctx, response.ErrConflict(service.ErrAirplaneNameExists))
	default:
		err = fmt.Errorf("%v -> %w", op, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
