package neo4j

import (
	"testing"

	"galapagos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFloat64(t *testing.T) {
	t.Run("float64 passes through", func(t *testing.T) {
		v, err := toFloat64("km", 12.5)
		require.NoError(t, err)
		assert.InDelta(t, 12.5, v, 0.001)
	})

	t.Run("int64 converts", func(t *testing.T) {
		v, err := toFloat64("km", int64(12))
		require.NoError(t, err)
		assert.InDelta(t, 12.0, v, 0.001)
	})

	t.Run("string fails", func(t *testing.T) {
		_, err := toFloat64("km", "12")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("nil fails", func(t *testing.T) {
		_, err := toFloat64("km", nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestToInt(t *testing.T) {
	t.Run("int64 converts", func(t *testing.T) {
		v, err := toInt("capacity", int64(100))
		require.NoError(t, err)
		assert.Equal(t, 100, v)
	})

	t.Run("float64 truncates", func(t *testing.T) {
		v, err := toInt("capacity", 100.0)
		require.NoError(t, err)
		assert.Equal(t, 100, v)
	})

	t.Run("bool fails", func(t *testing.T) {
		_, err := toInt("capacity", true)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestToString(t *testing.T) {
	t.Run("string passes through", func(t *testing.T) {
		v, err := toString("id", "P1")
		require.NoError(t, err)
		assert.Equal(t, "P1", v)
	})

	t.Run("int fails", func(t *testing.T) {
		_, err := toString("id", int64(1))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRecordMapping(t *testing.T) {
	t.Run("port record with integer coordinates", func(t *testing.T) {
		node, err := portFromRecord(map[string]any{
			"id":     "P5",
			"name":   "Baltra",
			"island": "Baltra",
			"lat":    int64(0),
			"lng":    -90.2839,
		})

		require.NoError(t, err)
		assert.Equal(t, "P5", node.ID())
		assert.Equal(t, "Baltra", node.Name())
		assert.InDelta(t, -90.2839, node.Location().Longitude(), 0.0001)
	})

	t.Run("vehicle fact without station", func(t *testing.T) {
		fact, err := vehicleFactFromRecord(map[string]any{
			"id":          "H2",
			"model":       "Poco 5",
			"capacity":    int64(10),
			"consumption": int64(1),
			"port":        nil,
		})

		require.NoError(t, err)
		assert.Equal(t, "H2", fact.Vehicle.ID())
		assert.Equal(t, 10, fact.Vehicle.CapacityKg())
		assert.Nil(t, fact.StationedAtPortID)
	})

	t.Run("vehicle fact with station", func(t *testing.T) {
		fact, err := vehicleFactFromRecord(map[string]any{
			"id":          "H1",
			"model":       "Seaplane X",
			"capacity":    int64(100),
			"consumption": 50.0,
			"port":        "P1",
		})

		require.NoError(t, err)
		require.NotNil(t, fact.StationedAtPortID)
		assert.Equal(t, "P1", *fact.StationedAtPortID)
	})
}
