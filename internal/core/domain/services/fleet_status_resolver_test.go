package services_test

import (
	"testing"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/trip"
	"galapagos/internal/core/domain/model/vehicle"
	"galapagos/internal/core/domain/services"
	"galapagos/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNewVehicle(t *testing.T, id string) vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(id, "Cessna 208 Caravan Amphibian", 1200, 48.5)
	require.NoError(t, err)
	return v
}

func mustNewTrip(t *testing.T, vehicleID, origin, destination string) *trip.Trip {
	t.Helper()
	tr, err := trip.NewTrip(kernel.NewUUID(), vehicleID, origin, destination, 50, 12)
	require.NoError(t, err)
	return tr
}

func strPtr(s string) *string { return &s }

func TestFleetStatusResolver_Resolve(t *testing.T) {
	resolver := services.NewFleetStatusResolver()

	t.Run("stationed vehicle is parked at its port", func(t *testing.T) {
		facts := []ports.VehicleFact{
			{Vehicle: mustNewVehicle(t, "SEAPLANE-1"), StationedAtPortID: strPtr("PSC")},
		}

		statuses := resolver.Resolve(facts, nil)

		require.Len(t, statuses, 1)
		assert.Equal(t, vehicle.StatusParked, statuses[0].Status)
		require.NotNil(t, statuses[0].CurrentPortID)
		assert.Equal(t, "PSC", *statuses[0].CurrentPortID)
	})

	t.Run("vehicle without stationed fact is in maintenance", func(t *testing.T) {
		facts := []ports.VehicleFact{
			{Vehicle: mustNewVehicle(t, "SEAPLANE-2")},
		}

		statuses := resolver.Resolve(facts, nil)

		require.Len(t, statuses, 1)
		assert.Equal(t, vehicle.StatusMaintenance, statuses[0].Status)
		assert.Nil(t, statuses[0].CurrentPortID)
	})

	t.Run("active trip overrides status to in-flight at trip origin", func(t *testing.T) {
		facts := []ports.VehicleFact{
			{Vehicle: mustNewVehicle(t, "SEAPLANE-1"), StationedAtPortID: strPtr("PSC")},
			{Vehicle: mustNewVehicle(t, "SEAPLANE-2"), StationedAtPortID: strPtr("PBA")},
		}
		trips := []*trip.Trip{mustNewTrip(t, "SEAPLANE-1", "PIS", "PBA")}

		statuses := resolver.Resolve(facts, trips)

		require.Len(t, statuses, 2)
		assert.Equal(t, vehicle.StatusInFlight, statuses[0].Status)
		require.NotNil(t, statuses[0].CurrentPortID)
		assert.Equal(t, "PIS", *statuses[0].CurrentPortID)
		assert.Equal(t, vehicle.StatusParked, statuses[1].Status)
	})

	t.Run("override also applies to maintenance vehicles", func(t *testing.T) {
		facts := []ports.VehicleFact{
			{Vehicle: mustNewVehicle(t, "SEAPLANE-3")},
		}
		trips := []*trip.Trip{mustNewTrip(t, "SEAPLANE-3", "PSC", "PBA")}

		statuses := resolver.Resolve(facts, trips)

		require.Len(t, statuses, 1)
		assert.Equal(t, vehicle.StatusInFlight, statuses[0].Status)
	})

	t.Run("duplicate facts deduplicate by vehicle id keeping last", func(t *testing.T) {
		facts := []ports.VehicleFact{
			{Vehicle: mustNewVehicle(t, "SEAPLANE-1"), StationedAtPortID: strPtr("PSC")},
			{Vehicle: mustNewVehicle(t, "SEAPLANE-2")},
			{Vehicle: mustNewVehicle(t, "SEAPLANE-1"), StationedAtPortID: strPtr("PSC")},
		}

		statuses := resolver.Resolve(facts, nil)

		require.Len(t, statuses, 2)
		assert.Equal(t, "SEAPLANE-1", statuses[0].Vehicle.ID())
		assert.Equal(t, "SEAPLANE-2", statuses[1].Vehicle.ID())
	})

	t.Run("trip for unknown vehicle is ignored", func(t *testing.T) {
		facts := []ports.VehicleFact{
			{Vehicle: mustNewVehicle(t, "SEAPLANE-1"), StationedAtPortID: strPtr("PSC")},
		}
		trips := []*trip.Trip{mustNewTrip(t, "GHOST", "PSC", "PBA")}

		statuses := resolver.Resolve(facts, trips)

		require.Len(t, statuses, 1)
		assert.Equal(t, vehicle.StatusParked, statuses[0].Status)
	})

	t.Run("empty facts resolve to empty fleet", func(t *testing.T) {
		statuses := resolver.Resolve(nil, nil)
		assert.Empty(t, statuses)
	})
}
