package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripweaver/tripweaver/pkg/domain"
	"github.com/tripweaver/tripweaver/pkg/tools/catalog"
)

func TestListFlights_FixedAndDeterministic(t *testing.T) {
	first := catalog.ListFlights("Paris")
	second := catalog.ListFlights("Paris")

	require.Len(t, first, 3)
	assert.Equal(t, first, second, "same city must yield identical output")

	for _, f := range first {
		assert.Equal(t, "Paris", f.To)
		assert.NotEmpty(t, f.Airline)
		assert.Greater(t, f.PriceUSD, 0.0)
	}
}

func TestListHotels_FixedAndDeterministic(t *testing.T) {
	first := catalog.ListHotels("Paris")
	second := catalog.ListHotels("Paris")

	require.Len(t, first, 3)
	assert.Equal(t, first, second)

	for _, h := range first {
		assert.Contains(t, h.Name, "Paris")
		assert.GreaterOrEqual(t, h.Stars, 3)
		assert.LessOrEqual(t, h.Stars, 5)
	}
}

func TestFlightsTool_Handler(t *testing.T) {
	tool := catalog.FlightsTool()
	assert.Equal(t, catalog.FlightsToolName, tool.Name)

	out, err := tool.Handler(context.Background(), map[string]any{"city": "Kyoto"})
	require.NoError(t, err)

	flights, ok := out.([]domain.FlightOption)
	require.True(t, ok, "handler should return typed flight options")
	require.Len(t, flights, 3)
	assert.Equal(t, "Kyoto", flights[0].To)
}

func TestHotelsTool_Handler(t *testing.T) {
	tool := catalog.HotelsTool()

	out, err := tool.Handler(context.Background(), map[string]any{"city": "Kyoto"})
	require.NoError(t, err)

	hotels, ok := out.([]domain.HotelOption)
	require.True(t, ok)
	require.Len(t, hotels, 3)
	assert.Contains(t, hotels[0].Name, "Kyoto")
}

func TestCatalogTools_RejectEmptyCity(t *testing.T) {
	for _, tool := range []string{catalog.FlightsToolName, catalog.HotelsToolName} {
		var handlerTool = catalog.FlightsTool()
		if tool == catalog.HotelsToolName {
			handlerTool = catalog.HotelsTool()
		}

		_, err := handlerTool.Handler(context.Background(), map[string]any{"city": "   "})
		assert.Error(t, err, "tool %s should reject blank city", tool)

		_, err = handlerTool.Handler(context.Background(), map[string]any{})
		assert.Error(t, err, "tool %s should reject missing city", tool)
	}
}
