package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkhomich/airport-api/internal/api/middleware"
	"github.com/vkhomich/airport-api/internal/domain"
	"github.com/vkhomich/airport-api/internal/service"
)

type stubFlightService struct {
	createFunc func(ctx context.Context, routeID, airplaneID uint, crewIDs []uint, departure, arrival time.Time) (domain.Flight, error)
	getFunc    func(ctx context.Context, id uint) (domain.Flight, error)
	listFunc   func(ctx context.Context, filter domain.FlightFilter, limit, offset int) ([]domain.Flight, int64, error)
}

func (s *stubFlightService) CreateFlight(ctx context.Context, routeID, airplaneID uint, crewIDs []uint, departure, arrival time.Time) (domain.Flight, error) {
	return s.createFunc(ctx, routeID, airplaneID, crewIDs, departure, arrival)
}

func (s *stubFlightService) GetFlight(ctx context.Context, id uint) (domain.Flight, error) {
	return s.getFunc(ctx, id)
}

func (s *stubFlightService) ListFlights(ctx context.Context, filter domain.FlightFilter, limit, offset int) ([]domain.Flight, int64, error) {
	return s.listFunc(ctx, filter, limit, offset)
}

func (s *stubFlightService) UpdateFlight(ctx context.Context, id, routeID, airplaneID uint, crewIDs []uint, departure, arrival time.Time) (domain.Flight, error) {
	return domain.Flight{}, nil
}

func (s *stubFlightService) DeleteFlight(ctx context.Context, id uint) error {
	return nil
}

func setupFlightRouter(svc FlightService, user domain.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(ctx *gin.Context) {
		ctx.Set(middleware.ContextKeyUserID, user.ID)
	})

	handler := NewFlightHandler(svc, &stubUserService{user: user})
	router.GET("/api/v1/flights", handler.HandleListFlights)
	router.GET("/api/v1/flights/:flightID", handler.HandleGetFlight)
	router.POST("/api/v1/flights", handler.HandleCreateFlight)
	router.DELETE("/api/v1/flights/:flightID", handler.HandleDeleteFlight)

	return router
}

func testUser(role string) domain.User {
	return domain.User{ID: 1, Email: "user@example.com", Role: role}
}

func TestFlightHandler_HandleListFlights(t *testing.T) {
	t.Run("200 with count and annotated results", func(t *testing.T) {
		svc := &stubFlightService{
			listFunc: func(ctx context.Context, filter domain.FlightFilter, limit, offset int) ([]domain.Flight, int64, error) {
				require.Equal(t, []uint{2}, filter.SourceIDs)
				require.Equal(t, 5, limit)
				require.Equal(t, 0, offset)

				return []domain.Flight{
					{
						ID: 1,
						Route: domain.Route{
							Source:      domain.Airport{LocationCity: "New York"},
							Destination: domain.Airport{LocationCity: "London"},
						},
						Airplane:         domain.Airplane{Name: "Blue Jay"},
						TicketsAvailable: 58,
					},
				}, 1, nil
			},
		}
		router := setupFlightRouter(svc, testUser(domain.RoleUser))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/flights?flight_source=2", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)

		var got struct {
			Count   int64 `json:"count"`
			Results []struct {
				Route            string `json:"route"`
				TicketsAvailable int    `json:"tickets_available"`
			} `json:"results"`
		}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
		assert.Equal(t, int64(1), got.Count)
		require.Len(t, got.Results, 1)
		assert.Equal(t, "New York -> London", got.Results[0].Route)
		assert.Equal(t, 58, got.Results[0].TicketsAvailable)
	})

	t.Run("400 for malformed filter parameters", func(t *testing.T) {
		router := setupFlightRouter(&stubFlightService{}, testUser(domain.RoleUser))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/flights?flight_source=abc&departure_time=nope", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Contains(t, resp.Body.String(), "flight_source")
		assert.Contains(t, resp.Body.String(), "departure_time")
	})
}

func TestFlightHandler_HandleGetFlight(t *testing.T) {
	t.Run("200 with the sold seat map", func(t *testing.T) {
		svc := &stubFlightService{
			getFunc: func(ctx context.Context, id uint) (domain.Flight, error) {
				require.Equal(t, uint(1), id)

				return domain.Flight{
					ID:               1,
					Airplane:         domain.Airplane{Name: "Blue Jay", Rows: 10, SeatsInRow: 6},
					Crew:             []domain.Crew{{FirstName: "Amelia", LastName: "Earhart"}},
					TicketsAvailable: 59,
					SoldSeats:        []domain.SeatCoordinate{{Row: 1, Seat: 1}},
				}, nil
			},
		}
		router := setupFlightRouter(svc, testUser(domain.RoleUser))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/flights/1", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)

		var got struct {
			Crew        []string `json:"crew"`
			SoldTickets []struct {
				Row  int `json:"row"`
				Seat int `json:"seat"`
			} `json:"sold_tickets"`
		}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
		assert.Equal(t, []string{"Amelia Earhart"}, got.Crew)
		require.Len(t, got.SoldTickets, 1)
		assert.Equal(t, 1, got.SoldTickets[0].Row)
	})

	t.Run("404 for an unknown flight", func(t *testing.T) {
		svc := &stubFlightService{
			getFunc: func(ctx context.Context, id uint) (domain.Flight, error) {
				return domain.Flight{}, service.ErrFlightNotFound
			},
		}
		router := setupFlightRouter(svc, testUser(domain.RoleUser))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/flights/99", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestFlightHandler_HandleCreateFlight(t *testing.T) {
	body := `{
		"route": 1,
		"airplane": 1,
		"crew": [1, 2],
		"departure_time": "2025-06-01T10:00:00Z",
		"arrival_time": "2025-06-01T14:00:00Z"
	}`

	t.Run("403 for a non-admin user", func(t *testing.T) {
		router := setupFlightRouter(&stubFlightService{}, testUser(domain.RoleUser))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/flights", strings.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("201 for an admin user", func(t *testing.T) {
		svc := &stubFlightService{
			createFunc: func(ctx context.Context, routeID, airplaneID uint, crewIDs []uint, departure, arrival time.Time) (domain.Flight, error) {
				require.Equal(t, uint(1), routeID)
				require.Equal(t, []uint{1, 2}, crewIDs)

				return domain.Flight{ID: 5}, nil
			},
		}
		router := setupFlightRouter(svc, testUser(domain.RoleAdmin))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/flights", strings.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusCreated, resp.Code)
	})

	t.Run("400 when the time window is inverted", func(t *testing.T) {
		svc := &stubFlightService{
			createFunc: func(ctx context.Context, routeID, airplaneID uint, crewIDs []uint, departure, arrival time.Time) (domain.Flight, error) {
				return domain.Flight{}, service.ErrInvalidTimeWindow
			},
		}
		router := setupFlightRouter(svc, testUser(domain.RoleAdmin))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/flights", strings.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}
