package dao

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAirport(t *testing.T, city string) Airport {
	t.Helper()

	seq := fixtureSeq.Add(1)

	airport := Airport{Name: fmt.Sprintf("Airport %d", seq), LocationCity: city}
	require.NoError(t, testDB.Create(&airport).Error)

	return airport
}

func TestRouteDAO_Insert_DuplicatePair(t *testing.T) {
	requireDB(t)

	ctx := context.Background()
	source := seedAirport(t, "New York")
	destination := seedAirport(t, "London")

	routeDAO := NewRouteDAO(testDB)

	_, err := routeDAO.Insert(ctx, Route{
		SourceID:      source.ID,
		DestinationID: destination.ID,
		Distance:      5500,
	})
	require.NoError(t, err)

	t.Run("the same pair again is a conflict", func(t *testing.T) {
		_, err := routeDAO.Insert(ctx, Route{
			SourceID:      source.ID,
			DestinationID: destination.ID,
			Distance:      6000,
		})
		assert.ErrorIs(t, err, ErrRouteExists)
	})

	t.Run("the reverse direction is a distinct route", func(t *testing.T) {
		_, err := routeDAO.Insert(ctx, Route{
			SourceID:      destination.ID,
			DestinationID: source.ID,
			Distance:      5500,
		})
		assert.NoError(t, err)
	})
}

func TestRouteDAO_Insert_UnknownAirport(t *testing.T) {
	requireDB(t)

	source := seedAirport(t, "Paris")

	routeDAO := NewRouteDAO(testDB)

	_, err := routeDAO.Insert(context.Background(), Route{
		SourceID:      source.ID,
		DestinationID: 999999,
		Distance:      1000,
	})
	assert.ErrorIs(t, err, ErrAirportNotFound)
}

func TestAirportDAO_Insert_DuplicateName(t *testing.T) {
	requireDB(t)

	ctx := context.Background()
	airportDAO := NewAirportDAO(testDB)

	name := fmt.Sprintf("Airport %d", fixtureSeq.Add(1))

	_, err := airportDAO.Insert(ctx, Airport{Name: name, LocationCity: "Tokyo"})
	require.NoError(t, err)

	_, err = airportDAO.Insert(ctx, Airport{Name: name, LocationCity: "Osaka"})
	assert.ErrorIs(t, err, ErrAirportNameExists)
}

func TestAirplaneDAO_Insert_DuplicateName(t *testing.T) {
	requireDB(t)

	ctx := context.Background()
	airplaneDAO := NewAirplaneDAO(testDB)

	airplaneType, err := airplaneDAO.InsertType(ctx, AirplaneType{
		Name: fmt.Sprintf("Type %d", fixtureSeq.Add(1)),
	})
	require.NoError(t, err)

	name := fmt.Sprintf("Airplane %d", fixtureSeq.Add(1))

	_, err = airplaneDAO.Insert(ctx, Airplane{
		Name:           name,
		Rows:           10,
		SeatsInRow:     6,
		AirplaneTypeID: airplaneType.ID,
	})
	require.NoError(t, err)

	_, err = airplaneDAO.Insert(ctx, Airplane{
		Name:           name,
		Rows:           20,
		SeatsInRow:     4,
		AirplaneTypeID: airplaneType.ID,
	})
	assert.ErrorIs(t, err, ErrAirplaneNameExists)
}
