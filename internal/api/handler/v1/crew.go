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

type CrewService interface {
	CreateCrew(ctx context.Context, crew domain.Crew) (domain.Crew, error)
	GetCrew(ctx context.Context, id uint) (domain.Crew, error)
	ListCrew(ctx context.Context) ([]domain.Crew, error)
	UpdateCrew(ctx context.Context, crew domain.Crew) (domain.Crew, error)
	DeleteCrew(ctx context.Context, id uint) error
}

type CrewHandler struct {
	svc  CrewService
	uSvc UserService
}

func NewCrewHandler(svc CrewService, uSvc UserService) *CrewHandler {
	return &CrewHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

func (h *CrewHandler) requireAdmin(ctx *gin.Context) bool {
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

// HandleListCrew godoc
// @Summary      List all crew members
// @Tags         crew
// @Produce      json
// @Success      200  {array}   response.CrewSummary
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /crew [get]
// @Security BearerAuth
func (h *CrewHandler) HandleListCrew(ctx *gin.Context) {
	crew, err := h.svc.ListCrew(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListCrew -> h.svc.ListCrew -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewCrewSummaries(crew))
}

// HandleGetCrew godoc
// @Summary      Get a crew member by ID
// @Tags         crew
// @Produce      json
// @Param        crewID  path      integer  true  "crew member ID"
// @Success      200  {object}  domain.Crew
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /crew/{crewID} [get]
// @Security BearerAuth
func (h *CrewHandler) HandleGetCrew(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "crewID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	crew, err := h.svc.GetCrew(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCrewNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("crew member", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetCrew -> h.svc.GetCrew -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, crew)
}

// HandleCreateCrew godoc
// @Summary      Create a new crew member
// @Description  Only admin users can create crew members.
// @Tags         crew
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateCrewRequest  true  "request body"
// @Success      201  {object}  domain.Crew
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /crew [post]
// @Security BearerAuth
func (h *CrewHandler) HandleCreateCrew(ctx *gin.Context) {
	if !h.requireAdmin(ctx) {
		return
	}

	req := request.CreateCrewRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	crew, err := h.svc.CreateCrew(ctx.Request.Context(), domain.Crew{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Photo:     req.Photo,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateCrew -> h.svc.CreateCrew -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, crew)
}

// HandleUpdateCrew godoc
// @Summary      Update a crew member
// @Description  Only admin users can update crew members.
// @Tags         crew
// @Accept       json
// @Produce      json
// @Param        crewID   path      integer  true  "crew member ID"
// @Param        request  body      request.UpdateCrewRequest  true  "request body"
// @Success      200  {object}  domain.Crew
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /crew/{crewID} [put]
// @Security BearerAuth
func (h *CrewHandler) HandleUpdateCrew(ctx *gin.Context) {
	if !h.requireAdmin(ctx) {
		return
	}

	id, err := parseIDParam(ctx, "crewID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.UpdateCrewRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	crew, err := h.svc.UpdateCrew(ctx.Request.Context(), domain.Crew{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Photo:     req.Photo,
	})
	if err != nil {
		if errors.Is(err, service.ErrCrewNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("crew member", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateCrew -> h.svc.UpdateCrew -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, crew)
}

// HandleDeleteCrew godoc
// @Summary      Delete a crew member
// @Description  Only admin users can delete crew members.
// @Tags         crew
// @Produce      json
// @Param        crewID  path      integer  true  "crew member ID"
// @Success      204  {string}  string  "No Content"
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /crew/{crewID} [delete]
// @Security BearerAuth
func (h *CrewHandler) HandleDeleteCrew(ctx *gin.Context) {
	if !h.requireAdmin(ctx) {
		return
	}

	id, err := parseIDParam(ctx, "crewID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeleteCrew(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrCrewNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("crew member", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteCrew -> h.svc.DeleteCrew -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
