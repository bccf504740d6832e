package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vkhomich/airport-api/internal/api/handler/v1/request"
	"github.com/vkhomich/airport-api/internal/api/handler/v1/response"
	"github.com/vkhomich/airport-api/internal/domain"
	"github.com/vkhomich/airport-api/internal/service"
)

type OrderService interface {
	CreateOrder(ctx context.Context, userID uint, tickets []domain.TicketRequest) (domain.Order, error)
	GetOrder(ctx context.Context, userID, orderID uint) (domain.Order, error)
	ListOrders(ctx context.Context, userID uint, limit, offset int) ([]domain.Order, int64, error)
	DeleteOrder(ctx context.Context, userID, orderID uint) error
}

type OrderHandler struct {
	svc  OrderService
	uSvc UserService
}

func NewOrderHandler(svc OrderService, uSvc UserService) *OrderHandler {
	return &OrderHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleCreateOrder godoc
// @Summary      Create a new order
// @Description  Books all requested seats atomically. Either every ticket is created or none are.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateOrderRequest  true  "request body"
// @Success      201  {object}  response.OrderCreated
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /orders [post]
// @Security BearerAuth
func (h *OrderHandler) HandleCreateOrder(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	req := request.CreateOrderRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	order, err := h.svc.CreateOrder(ctx.Request.Context(), user.ID, req.ToDomain())
	if err != nil {
		var seatErr *service.SeatTakenError
		var validationErrs validation.Errors

		switch {
		case errors.Is(err, service.ErrEmptyOrder):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.As(err, &seatErr):
			response.RenderErr(ctx, response.ErrConflict(seatErr))
		case errors.As(err, &validationErrs):
			response.RenderErr(ctx, response.ErrBadRequest(validationErrs))
		default:
			err = fmt.Errorf("v1.HandleCreateOrder -> h.svc.CreateOrder -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, response.NewOrderCreated(order))
}

// HandleListOrders godoc
// @Summary      List own orders
// @Description  Lists the authenticated user's orders, newest first.
// @Tags         orders
// @Produce      json
// @Param        page       query     integer false  "page number"
// @Param        page_size  query     integer false  "page size (max 10)"
// @Success      200  {object}  response.OrderListResponse
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /orders [get]
// @Security BearerAuth
func (h *OrderHandler) HandleListOrders(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	pagination := request.Pagination{}
	if err := ctx.ShouldBindQuery(&pagination); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}
	pagination.Normalize()

	orders, total, err := h.svc.ListOrders(ctx.Request.Context(), user.ID, pagination.PageSize, pagination.Offset())
	if err != nil {
		err = fmt.Errorf("v1.HandleListOrders -> h.svc.ListOrders -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewOrderList(orders, total))
}

// HandleGetOrder godoc
// @Summary      Get an order by ID
// @Description  Retrieves one of the authenticated user's orders. Other users' orders are reported as not found.
// @Tags         orders
// @Produce      json
// @Param        orderID  path      integer  true  "order ID"
// @Success      200  {object}  response.OrderDetail
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /orders/{orderID} [get]
// @Security BearerAuth
func (h *OrderHandler) HandleGetOrder(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	id, err := parseIDParam(ctx, "orderID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	order, err := h.svc.GetOrder(ctx.Request.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("order", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetOrder -> h.svc.GetOrder -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewOrderDetail(order))
}

// HandleDeleteOrder godoc
// @Summary      Delete an order
// @Description  Deletes one of the authenticated user's orders and frees its seats.
// @Tags         orders
// @Produce      json
// @Param        orderID  path      integer  true  "order ID"
// @Success      204  {string}  string  "No Content"
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /orders/{orderID} [delete]
// @Security BearerAuth
func (h *OrderHandler) HandleDeleteOrder(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	id, err := parseIDParam(ctx, "orderID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeleteOrder(ctx.Request.Context(), user.ID, id); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("order", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteOrder -> h.svc.DeleteOrder -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
