package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkhomich/airport-api/internal/api/middleware"
	"github.com/vkhomich/airport-api/internal/domain"
	"github.com/vkhomich/airport-api/internal/service"
)

type stubUserService struct {
	user domain.User
}

func (s *stubUserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	return s.user, nil
}

type stubOrderService struct {
	createFunc func(ctx context.Context, userID uint, tickets []domain.TicketRequest) (domain.Order, error)
	getFunc    func(ctx context.Context, userID, orderID uint) (domain.Order, error)
	listFunc   func(ctx context.Context, userID uint, limit, offset int) ([]domain.Order, int64, error)
	deleteFunc func(ctx context.Context, userID, orderID uint) error
}

func (s *stubOrderService) CreateOrder(ctx context.Context, userID uint, tickets []domain.TicketRequest) (domain.Order, error) {
	return s.createFunc(ctx, userID, tickets)
}

func (s *stubOrderService) GetOrder(ctx context.Context, userID, orderID uint) (domain.Order, error) {
	return s.getFunc(ctx, userID, orderID)
}

func (s *stubOrderService) ListOrders(ctx context.Context, userID uint, limit, offset int) ([]domain.Order, int64, error) {
	return s.listFunc(ctx, userID, limit, offset)
}

func (s *stubOrderService) DeleteOrder(ctx context.Context, userID, orderID uint) error {
	return s.deleteFunc(ctx, userID, orderID)
}

func setupOrderRouter(svc OrderService, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(ctx *gin.Context) {
		ctx.Set(middleware.ContextKeyUserID, userID)
	})

	handler := NewOrderHandler(svc, &stubUserService{user: domain.User{ID: userID, Role: domain.RoleUser}})
	router.POST("/api/v1/orders", handler.HandleCreateOrder)
	router.GET("/api/v1/orders", handler.HandleListOrders)
	router.GET("/api/v1/orders/:orderID", handler.HandleGetOrder)
	router.DELETE("/api/v1/orders/:orderID", handler.HandleDeleteOrder)

	return router
}

func TestOrderHandler_HandleCreateOrder(t *testing.T) {
	t.Run("201 when the order is created", func(t *testing.T) {
		svc := &stubOrderService{
			createFunc: func(ctx context.Context, userID uint, tickets []domain.TicketRequest) (domain.Order, error) {
				require.Equal(t, uint(1), userID)
				require.Len(t, tickets, 1)

				return domain.Order{
					ID:     2,
					UserID: userID,
					Tickets: []domain.Ticket{
						{ID: 3, Flight: domain.Flight{ID: 10}, Row: 1, Seat: 1},
					},
				}, nil
			},
		}
		router := setupOrderRouter(svc, 1)

		body := `{"tickets":[{"flight":10,"row":1,"seat":1}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusCreated, resp.Code)

		var got struct {
			ID      uint `json:"id"`
			Tickets []struct {
				Flight uint `json:"flight"`
				Row    int  `json:"row"`
				Seat   int  `json:"seat"`
			} `json:"tickets"`
		}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
		assert.Equal(t, uint(2), got.ID)
		require.Len(t, got.Tickets, 1)
		assert.Equal(t, uint(10), got.Tickets[0].Flight)
	})

	t.Run("400 when the ticket list is empty", func(t *testing.T) {
		router := setupOrderRouter(&stubOrderService{}, 1)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(`{"tickets":[]}`))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("400 when seat validation fails", func(t *testing.T) {
		svc := &stubOrderService{
			createFunc: func(ctx context.Context, userID uint, tickets []domain.TicketRequest) (domain.Order, error) {
				return domain.Order{}, validation.Errors{
					"tickets.0": validation.Errors{"row": assert.AnError},
				}
			},
		}
		router := setupOrderRouter(svc, 1)

		body := `{"tickets":[{"flight":10,"row":99,"seat":1}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Contains(t, resp.Body.String(), "tickets.0")
	})

	t.Run("409 when the seat is already taken", func(t *testing.T) {
		svc := &stubOrderService{
			createFunc: func(ctx context.Context, userID uint, tickets []domain.TicketRequest) (domain.Order, error) {
				return domain.Order{}, &service.SeatTakenError{FlightID: 10, Row: 1, Seat: 1}
			},
		}
		router := setupOrderRouter(svc, 1)

		body := `{"tickets":[{"flight":10,"row":1,"seat":1}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusConflict, resp.Code)
	})
}

func TestOrderHandler_HandleGetOrder(t *testing.T) {
	t.Run("404 for a missing or foreign order", func(t *testing.T) {
		svc := &stubOrderService{
			getFunc: func(ctx context.Context, userID, orderID uint) (domain.Order, error) {
				return domain.Order{}, service.ErrOrderNotFound
			},
		}
		router := setupOrderRouter(svc, 1)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/99", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("400 for a malformed order id", func(t *testing.T) {
		router := setupOrderRouter(&stubOrderService{}, 1)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/abc", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestOrderHandler_HandleListOrders(t *testing.T) {
	t.Run("forwards normalized pagination to the service", func(t *testing.T) {
		svc := &stubOrderService{
			listFunc: func(ctx context.Context, userID uint, limit, offset int) ([]domain.Order, int64, error) {
				require.Equal(t, 10, limit)
				require.Equal(t, 10, offset)

				return []domain.Order{}, 0, nil
			},
		}
		router := setupOrderRouter(svc, 1)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders?page=2&page_size=25", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
	})
}

func TestOrderHandler_HandleDeleteOrder(t *testing.T) {
	t.Run("204 when the order is deleted", func(t *testing.T) {
		svc := &stubOrderService{
			deleteFunc: func(ctx context.Context, userID, orderID uint) error {
				require.Equal(t, uint(1), userID)
				require.Equal(t, uint(5), orderID)

				return nil
			},
		}
		router := setupOrderRouter(svc, 1)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/orders/5", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNoContent, resp.Code)
	})

	t.Run("404 when deleting another user's order", func(t *testing.T) {
		svc := &stubOrderService{
			deleteFunc: func(ctx context.Context, userID, orderID uint) error {
				return service.ErrOrderNotFound
			},
		}
		router := setupOrderRouter(svc, 1)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/orders/5", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}
