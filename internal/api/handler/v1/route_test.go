package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/vkhomich/airport-api/internal/api/middleware"
	"github.com/vkhomich/airport-api/internal/domain"
	"github.com/vkhomich/airport-api/internal/service"
)

type stubRouteService struct {
	createFunc func(ctx context.Context, sourceID, destinationID uint, distance int) (domain.Route, error)
}

func (s *stubRouteService) CreateRoute(ctx context.Context, sourceID, destinationID uint, distance int) (domain.Route, error) {
	return s.createFunc(ctx, sourceID, destinationID, distance)
}

func (s *stubRouteService) GetRoute(ctx context.Context, id uint) (domain.Route, error) {
	return domain.Route{}, nil
}

func (s *stubRouteService) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	return nil, nil
}

func (s *stubRouteService) UpdateRoute(ctx context.Context, id, sourceID, destinationID uint, distance int) (domain.Route, error) {
	return domain.Route{}, nil
}

func (s *stubRouteService) DeleteRoute(ctx context.Context, id uint) error {
	return nil
}

func setupRouteRouter(svc RouteService, user domain.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(ctx *gin.Context) {
		ctx.Set(middleware.ContextKeyUserID, user.ID)
	})

	handler := NewRouteHandler(svc, &stubUserService{user: user})
	router.POST("/api/v1/routes", handler.HandleCreateRoute)

	return router
}

func TestRouteHandler_HandleCreateRoute(t *testing.T) {
	body := `{"source": 1, "destination": 2, "distance": 5500}`

	t.Run("409 when the route already exists", func(t *testing.T) {
		svc := &stubRouteService{
			createFunc: func(ctx context.Context, sourceID, destinationID uint, distance int) (domain.Route, error) {
				return domain.Route{}, service.ErrRouteExists
			},
		}
		router := setupRouteRouter(svc, testUser(domain.RoleAdmin))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/routes", strings.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusConflict, resp.Code)
		assert.Contains(t, resp.Body.String(), "route already exists")
	})

	t.Run("400 when source and destination match", func(t *testing.T) {
		svc := &stubRouteService{
			createFunc: func(ctx context.Context, sourceID, destinationID uint, distance int) (domain.Route, error) {
				return domain.Route{}, service.ErrSameAirport
			},
		}
		router := setupRouteRouter(svc, testUser(domain.RoleAdmin))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/routes", strings.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("403 for a non-admin user", func(t *testing.T) {
		router := setupRouteRouter(&stubRouteService{}, testUser(domain.RoleUser))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/routes", strings.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusForbidden, resp.Code)
	})
}
