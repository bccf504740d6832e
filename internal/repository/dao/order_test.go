package dao

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err == nil {
		err = pool.Client.Ping()
	}
	if err != nil {
		log.Printf("docker is not available, integration tests will be skipped: %v", err)
		os.Exit(m.Run())
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=airport_test",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	dsn := fmt.Sprintf(
		"host=localhost port=%v user=postgres password=secret dbname=airport_test sslmode=disable",
		resource.GetPort("5432/tcp"),
	)

	if err = pool.Retry(func() error {
		db, openErr := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if openErr != nil {
			return openErr
		}

		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			return dbErr
		}
		if pingErr := sqlDB.Ping(); pingErr != nil {
			return pingErr
		}

		testDB = db

		return nil
	}); err != nil {
		log.Fatalf("could not connect to postgres container: %v", err)
	}

	if err = InitTables(testDB); err != nil {
		log.Fatalf("could not migrate tables: %v", err)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Printf("could not purge postgres container: %v", err)
	}

	os.Exit(code)
}

func requireDB(t *testing.T) {
	t.Helper()

	if testDB == nil {
		t.Skip("docker is not available")
	}
}

var fixtureSeq atomic.Uint64

// seedFlight creates the full catalog chain one flight depends on.
// Names are made unique per call to stay clear of the catalog's
// uniqueness constraints.
func seedFlight(t *testing.T, rows, seatsInRow int) Flight {
	t.Helper()

	seq := fixtureSeq.Add(1)

	source := Airport{Name: fmt.Sprintf("Airport A%d", seq), LocationCity: "New York"}
	require.NoError(t, testDB.Create(&source).Error)

	destination := Airport{Name: fmt.Sprintf("Airport B%d", seq), LocationCity: "London"}
	require.NoError(t, testDB.Create(&destination).Error)

	airplaneType := AirplaneType{Name: fmt.Sprintf("Type %d", seq)}
	require.NoError(t, testDB.Create(&airplaneType).Error)

	airplane := Airplane{
		Name:           fmt.Sprintf("Airplane %d", seq),
		Rows:           rows,
		SeatsInRow:     seatsInRow,
		AirplaneTypeID: airplaneType.ID,
	}
	require.NoError(t, testDB.Create(&airplane).Error)

	route := Route{SourceID: source.ID, DestinationID: destination.ID, Distance: 5500}
	require.NoError(t, testDB.Create(&route).Error)

	crew := Crew{FirstName: "Amelia", LastName: "Earhart"}
	require.NoError(t, testDB.Create(&crew).Error)

	flightDAO := NewFlightDAO(testDB)
	flight, err := flightDAO.Insert(context.Background(), Flight{
		RouteID:       route.ID,
		AirplaneID:    airplane.ID,
		Crew:          []Crew{crew},
		DepartureTime: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		ArrivalTime:   time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	return flight
}

func seedUser(t *testing.T) User {
	t.Helper()

	seq := fixtureSeq.Add(1)

	user := User{Email: fmt.Sprintf("user%d@example.com", seq), Password: "hashed", Role: "user"}
	require.NoError(t, testDB.Create(&user).Error)

	return user
}

func TestOrderDAO_Insert_SeatConflict(t *testing.T) {
	requireDB(t)

	ctx := context.Background()
	flight := seedFlight(t, 10, 6)
	alice := seedUser(t)
	bob := seedUser(t)

	orderDAO := NewOrderDAO(testDB)

	_, err := orderDAO.Insert(ctx, Order{UserID: alice.ID}, []Ticket{
		{FlightID: flight.ID, Row: 1, Seat: 1},
	})
	require.NoError(t, err)

	_, err = orderDAO.Insert(ctx, Order{UserID: bob.ID}, []Ticket{
		{FlightID: flight.ID, Row: 1, Seat: 1},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSeatTaken)

	var seatErr *SeatTakenError
	require.ErrorAs(t, err, &seatErr)
	assert.Equal(t, flight.ID, seatErr.FlightID)
	assert.Equal(t, 1, seatErr.Row)
	assert.Equal(t, 1, seatErr.Seat)

	// The losing order must not exist.
	_, total, err := orderDAO.FindAllByUserID(ctx, bob.ID, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestOrderDAO_Insert_Atomicity(t *testing.T) {
	requireDB(t)

	ctx := context.Background()
	flight := seedFlight(t, 10, 6)
	alice := seedUser(t)
	bob := seedUser(t)

	orderDAO := NewOrderDAO(testDB)

	_, err := orderDAO.Insert(ctx, Order{UserID: alice.ID}, []Ticket{
		{FlightID: flight.ID, Row: 2, Seat: 2},
	})
	require.NoError(t, err)

	// The first ticket is free, the second conflicts. Neither may survive.
	_, err = orderDAO.Insert(ctx, Order{UserID: bob.ID}, []Ticket{
		{FlightID: flight.ID, Row: 1, Seat: 1},
		{FlightID: flight.ID, Row: 2, Seat: 2},
	})
	require.ErrorIs(t, err, ErrSeatTaken)

	sold, err := orderDAO.CountTicketsByFlightID(ctx, flight.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), sold)
}

func TestOrderDAO_DeleteForUser(t *testing.T) {
	requireDB(t)

	ctx := context.Background()
	flight := seedFlight(t, 10, 6)
	alice := seedUser(t)
	bob := seedUser(t)

	orderDAO := NewOrderDAO(testDB)

	order, err := orderDAO.Insert(ctx, Order{UserID: alice.ID}, []Ticket{
		{FlightID: flight.ID, Row: 3, Seat: 3},
	})
	require.NoError(t, err)

	t.Run("a non-owner cannot delete the order", func(t *testing.T) {
		err := orderDAO.DeleteForUser(ctx, bob.ID, order.ID)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("deletion frees the seats", func(t *testing.T) {
		require.NoError(t, orderDAO.DeleteForUser(ctx, alice.ID, order.ID))

		sold, err := orderDAO.CountTicketsByFlightID(ctx, flight.ID)
		require.NoError(t, err)
		assert.Zero(t, sold)

		// The same seat can be booked again.
		_, err = orderDAO.Insert(ctx, Order{UserID: bob.ID}, []Ticket{
			{FlightID: flight.ID, Row: 3, Seat: 3},
		})
		assert.NoError(t, err)
	})
}

func TestOrderDAO_FindByIDForUser(t *testing.T) {
	requireDB(t)

	ctx := context.Background()
	flight := seedFlight(t, 10, 6)
	alice := seedUser(t)
	bob := seedUser(t)

	orderDAO := NewOrderDAO(testDB)

	order, err := orderDAO.Insert(ctx, Order{UserID: alice.ID}, []Ticket{
		{FlightID: flight.ID, Row: 4, Seat: 4},
	})
	require.NoError(t, err)

	t.Run("the owner sees the order with its associations", func(t *testing.T) {
		found, err := orderDAO.FindByIDForUser(ctx, alice.ID, order.ID)
		require.NoError(t, err)
		require.Len(t, found.Tickets, 1)
		assert.Equal(t, flight.ID, found.Tickets[0].FlightID)
		assert.Equal(t, "New York", found.Tickets[0].Flight.Route.Source.LocationCity)
	})

	t.Run("a non-owner gets not found", func(t *testing.T) {
		_, err := orderDAO.FindByIDForUser(ctx, bob.ID, order.ID)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestFlightDAO_TicketsAvailable(t *testing.T) {
	requireDB(t)

	ctx := context.Background()
	flight := seedFlight(t, 4, 3)
	alice := seedUser(t)

	assert.Equal(t, 12, flight.TicketsAvailable)

	orderDAO := NewOrderDAO(testDB)
	_, err := orderDAO.Insert(ctx, Order{UserID: alice.ID}, []Ticket{
		{FlightID: flight.ID, Row: 1, Seat: 1},
		{FlightID: flight.ID, Row: 1, Seat: 2},
	})
	require.NoError(t, err)

	flightDAO := NewFlightDAO(testDB)
	found, err := flightDAO.FindByID(ctx, flight.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, found.TicketsAvailable)
	assert.Len(t, found.Tickets, 2)
}

func TestFlightDAO_FindAll_Filters(t *testing.T) {
	requireDB(t)

	ctx := context.Background()
	first := seedFlight(t, 10, 6)
	seedFlight(t, 10, 6)

	flightDAO := NewFlightDAO(testDB)

	t.Run("filter by source airport", func(t *testing.T) {
		found, err := flightDAO.FindByID(ctx, first.ID)
		require.NoError(t, err)

		flights, total, err := flightDAO.FindAll(ctx, FlightFilter{
			SourceIDs: []uint{found.Route.SourceID},
		}, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, flights, 1)
		assert.Equal(t, first.ID, flights[0].ID)
	})

	t.Run("filter by departure date matches the calendar date", func(t *testing.T) {
		day := time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)

		_, total, err := flightDAO.FindAll(ctx, FlightFilter{DepartureDate: &day}, 100, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, total, int64(2))
	})

	t.Run("no matches for an unknown source", func(t *testing.T) {
		_, total, err := flightDAO.FindAll(ctx, FlightFilter{SourceIDs: []uint{999999}}, 10, 0)
		require.NoError(t, err)
		assert.Zero(t, total)
	})
}
