package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbitrage/internal/domain"
)

func TestStoreGet(t *testing.T) {
	store := NewSampleStore()

	v, ok := store.Get("1")
	require.True(t, ok)
	assert.Equal(t, "Toyota", v.Make)
	assert.Equal(t, "Camry", v.Model)

	_, ok = store.Get("no-such-id")
	assert.False(t, ok)
}

func TestStoreAllReturnsCopy(t *testing.T) {
	store := NewSampleStore()

	all := store.All()
	require.Len(t, all, 5)
	all[0] = domain.Vehicle{}

	again := store.All()
	assert.Equal(t, "Toyota", again[0].Make)
}

func TestStoreFeaturedRanksByScore(t *testing.T) {
	store := NewSampleStore()

	featured := store.Featured(3)
	require.Len(t, featured, 3)
	assert.Equal(t, "F-150", featured[0].Model)  // 92
	assert.Equal(t, "Model 3", featured[1].Model) // 88
	assert.Equal(t, "Camry", featured[2].Model)   // 85

	assert.Empty(t, store.Featured(0))
	assert.Len(t, store.Featured(100), 5)
}

func TestStoreSimilarSharesMakeOrBodyType(t *testing.T) {
	store := NewSampleStore()

	// Camry is a sedan: other sedans qualify, the truck and suv do not
	similar := store.Similar("1", 10)
	var models []string
	for _, v := range similar {
		models = append(models, v.Model)
	}
	assert.ElementsMatch(t, []string{"Accord", "Model 3"}, models)

	for _, v := range similar {
		assert.NotEqual(t, "1", v.ID, "a listing is never similar to itself")
	}

	assert.Empty(t, store.Similar("no-such-id", 10))
}

func TestClientVehicleByIDReportsAbsence(t *testing.T) {
	client := NewInstantClient(NewSampleStore())

	v, ok, err := client.VehicleByID(context.Background(), "3")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Ford", v.Make)

	_, ok, err = client.VehicleByID(context.Background(), "999")
	require.NoError(t, err, "a missing id is not an error")
	assert.False(t, ok)
}

func TestClientSearchFailureInjection(t *testing.T) {
	client := NewInstantClient(NewSampleStore())
	client.SetFailing(true)

	_, err := client.Search(context.Background(), domain.FilterCriteria{}, 1, 12)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)

	client.SetFailing(false)
	page, err := client.Search(context.Background(), domain.FilterCriteria{}, 1, 12)
	require.NoError(t, err)
	assert.Equal(t, 5, page.Total)
}

func TestClientHonorsCancelledContext(t *testing.T) {
	client := NewClient(NewSampleStore()) // with latency simulation

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := client.Search(ctx, domain.FilterCriteria{}, 1, 12)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), searchLatency, "cancellation must not wait out the round trip")
}

func TestClientFeaturedAndSimilar(t *testing.T) {
	client := NewInstantClient(NewSampleStore())

	featured, err := client.Featured(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, featured, 2)
	assert.Equal(t, "F-150", featured[0].Model)

	similar, err := client.Similar(context.Background(), "5", 10)
	require.NoError(t, err)
	// X5 is the only suv and the only BMW: nothing shares make or body type
	assert.Empty(t, similar)
}
