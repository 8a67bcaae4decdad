package pivot

import (
	"fmt"
	"testing"
	"time"

	v1 "github.com/aevon-lab/project-tally/internal/api/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func event(id, actor, product, device string) v1.ConsumptionEvent {
	return v1.ConsumptionEvent{ID: id, ActorID: actor, Product: product, Device: device, OccurredAt: base}
}

func TestAggregate_SplitByProduct(t *testing.T) {
	var events []v1.ConsumptionEvent
	for i := 0; i < 10; i++ {
		product := "Flower"
		if i >= 6 {
			product = "Hash"
		}
		events = append(events, event(fmt.Sprintf("e%d", i), "u1", product, "Joint"))
	}

	rows, err := Aggregate(events, nil, []DimensionID{DimProduct}, MetricLogs, 10, time.UTC)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 6, rows[0].Count)
	assert.Equal(t, "flower", rows[0].Values[DimProduct])
	assert.Equal(t, 4, rows[1].Count)
	assert.Equal(t, "hash", rows[1].Values[DimProduct])
	assert.Nil(t, rows[0].DistinctActors)
}

func TestAggregate_UniqueActorsRanksByDistinctCount(t *testing.T) {
	events := []v1.ConsumptionEvent{
		event("1", "u1", "Flower", ""),
		event("2", "u1", "Flower", ""),
		event("3", "u1", "Flower", ""),
		event("4", "u2", "Hash", ""),
		event("5", "u3", "Hash", ""),
	}

	rows, err := Aggregate(events, nil, []DimensionID{DimProduct}, MetricUniqueActors, 10, time.UTC)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "hash", rows[0].Values[DimProduct])
	require.NotNil(t, rows[0].DistinctActors)
	assert.Equal(t, 2, *rows[0].DistinctActors)
	assert.Equal(t, 2, rows[0].Count)

	assert.Equal(t, "flower", rows[1].Values[DimProduct])
	assert.Equal(t, 1, *rows[1].DistinctActors)
	assert.Equal(t, 3, rows[1].Count)
}

func TestAggregate_ZeroDimensionsIsGlobalTotal(t *testing.T) {
	events := []v1.ConsumptionEvent{
		event("1", "u1", "Flower", "Joint"),
		event("2", "u2", "Hash", "Bong"),
		{ID: "3", ActorID: "u3"},
	}

	rows, err := Aggregate(events, nil, nil, MetricLogs, 10, time.UTC)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Count)
	assert.Empty(t, rows[0].Values)
}

func TestAggregate_MultiDimensionKeysDoNotCollide(t *testing.T) {
	events := []v1.ConsumptionEvent{
		event("1", "u1", "a b", "c"),
		event("2", "u1", "a", "b c"),
	}

	rows, err := Aggregate(events, nil, []DimensionID{DimProduct, DimDevice}, MetricLogs, 10, time.UTC)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, 1, row.Count)
	}
}

func TestAggregate_ActorDimensionsUsePlaceholders(t *testing.T) {
	events := []v1.ConsumptionEvent{
		event("1", "u1", "Flower", ""),
		event("2", "u2", "Flower", ""),
		event("3", "u3", "Flower", ""),
		event("4", "ghost", "Flower", ""),
	}
	profiles := map[string]v1.ActorProfile{
		"u1": {ActorID: "u1", Gender: "Female", City: "Berlin", Country: "DE"},
		"u2": {ActorID: "u2", Gender: "m", City: "  "},
		"u3": {ActorID: "u3", Gender: "non-binary", City: "Berlin"},
	}

	rows, err := Aggregate(events, profiles, []DimensionID{DimGender, DimCity}, MetricLogs, 10, time.UTC)
	require.NoError(t, err)

	got := map[string]int{}
	for _, row := range rows {
		got[row.Values[DimGender]+"/"+row.Values[DimCity]] = row.Count
	}
	assert.Equal(t, map[string]int{
		"female/Berlin":              1,
		"male/" + Placeholder:        1,
		"other/Berlin":               1,
		"unspecified/" + Placeholder: 1,
	}, got)
}

func TestAggregate_TieBreakAndTopN(t *testing.T) {
	events := []v1.ConsumptionEvent{
		event("1", "u1", "Zeta", ""),
		event("2", "u1", "Alpha", ""),
		event("3", "u1", "Mid", ""),
		event("4", "u1", "Mid", ""),
	}

	rows, err := Aggregate(events, nil, []DimensionID{DimProduct}, MetricLogs, 2, time.UTC)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "mid", rows[0].Values[DimProduct])
	assert.Equal(t, "alpha", rows[1].Values[DimProduct])

	rows, err = Aggregate(events, nil, []DimensionID{DimProduct}, MetricLogs, -4, time.UTC)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestAggregate_EventLevelDimensions(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	evt := v1.ConsumptionEvent{
		ID:         "1",
		ActorID:    "u1",
		Product:    "Blüte",
		Device:     "Joint",
		Platform:   "iOS",
		Geo:        &v1.GeoPoint{Lat: 52.521, Lng: 13.405},
		OccurredAt: time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC),
	}
	dims := []DimensionID{DimPair, DimPlatform, DimDay, DimHour, DimWeekday, DimGeoCell, DimActor, DimLocation}

	rows, err := Aggregate([]v1.ConsumptionEvent{evt}, nil, dims, MetricLogs, 10, berlin)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	values := rows[0].Values
	assert.Equal(t, "blute__joint", values[DimPair])
	assert.Equal(t, "ios", values[DimPlatform])
	assert.Equal(t, "2024-01-02", values[DimDay])
	assert.Equal(t, "00", values[DimHour])
	assert.Equal(t, "2", values[DimWeekday])
	assert.NotEqual(t, Placeholder, values[DimGeoCell])
	assert.Equal(t, "u1", values[DimActor])
	assert.Equal(t, "unknown", values[DimLocation])
}

func TestAggregate_RejectsUnknownDimensionAndMetric(t *testing.T) {
	_, err := Aggregate(nil, nil, []DimensionID{"mood"}, MetricLogs, 10, nil)
	require.ErrorIs(t, err, ErrInvalidQuery)

	_, err = Aggregate(nil, nil, nil, "sum", 10, nil)
	require.ErrorIs(t, err, ErrInvalidQuery)
}

func TestParseDimensionAndMetric(t *testing.T) {
	id, err := ParseDimension(" GeoCell ")
	require.NoError(t, err)
	assert.Equal(t, DimGeoCell, id)

	_, err = ParseDimension("mood")
	require.ErrorIs(t, err, ErrInvalidQuery)

	metric, err := ParseMetric("")
	require.NoError(t, err)
	assert.Equal(t, MetricLogs, metric)

	metric, err = ParseMetric("uniqueActors")
	require.NoError(t, err)
	assert.Equal(t, MetricUniqueActors, metric)

	assert.True(t, NeedsProfiles([]DimensionID{DimProduct, DimCountry}))
	assert.False(t, NeedsProfiles([]DimensionID{DimProduct, DimDay}))
}
