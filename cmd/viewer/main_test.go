package main

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/wb-order-client/internal/adapter/cache"
	"github.com/example/wb-order-client/internal/adapter/httpapi"
	"github.com/example/wb-order-client/internal/adapter/orderapi"
	"github.com/example/wb-order-client/internal/domain"
	"github.com/example/wb-order-client/internal/format"
	"github.com/example/wb-order-client/internal/render"
	"github.com/example/wb-order-client/internal/usecase"
	"github.com/example/wb-order-client/internal/view"
)

type recordingRegion struct {
	mu     sync.Mutex
	states []view.State
}

func (r *recordingRegion) Show(s view.State) {
	r.mu.Lock()
	r.states = append(r.states, s)
	r.mu.Unlock()
}

func (r *recordingRegion) States() []view.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]view.State(nil), r.states...)
}

// Поднимает фикстурный бэкенд и собирает весь конвейер поверх него.
func setupPipeline(t *testing.T) (*usecase.Search, *lineInput, *recordingRegion) {
	t.Helper()

	store := cache.NewMemoryOrderStore()
	store.Set(domain.Order{
		OrderUID:    "abc123",
		TrackNumber: "WBILMTESTTRACK",
		Payment:     domain.Payment{Transaction: "abc123", Currency: "USD", Amount: 1817},
		Items:       []domain.Item{{ChrtID: 9934930, Name: "Mascaras", Status: 202}},
		CustomerID:  "test",
		DeliverySrv: "meest",
		DateCreated: "2021-11-26T06:22:19Z",
	})

	backend := httptest.NewServer(httpapi.NewServer(store, zap.NewNop()).Router)
	t.Cleanup(backend.Close)

	region := &recordingRegion{}
	input := &lineInput{}
	search := &usecase.Search{
		Input:  input,
		Source: orderapi.NewClient(backend.URL, backend.Client(), zap.NewNop()),
		Render: render.New(format.NewCurrency(zap.NewNop())),
		View:   view.NewController(region),
		Log:    zap.NewNop(),
	}
	return search, input, region
}

func TestEndToEndFound(t *testing.T) {
	search, input, region := setupPipeline(t)

	input.Set("abc123")
	search.Trigger(context.Background())

	states := region.States()
	require.Len(t, states, 2)
	assert.Equal(t, view.Loading{}, states[0])

	populated, ok := states[1].(view.Populated)
	require.True(t, ok, "final state must be Populated, got %T", states[1])
	assert.Contains(t, populated.Doc.Header.Title, "abc123")
	assert.Equal(t, 1, populated.Doc.Items.Count)
}

func TestEndToEndNotFound(t *testing.T) {
	search, input, region := setupPipeline(t)

	input.Set("missing-1")
	search.Trigger(context.Background())

	states := region.States()
	require.Len(t, states, 2)
	assert.Equal(t, view.Loading{}, states[0])
	assert.Equal(t, view.Failure{Message: "The requested order does not exist."}, states[1])
}

func TestEndToEndEmptyInput(t *testing.T) {
	search, input, region := setupPipeline(t)

	input.Set("   ")
	search.Trigger(context.Background())

	states := region.States()
	require.Len(t, states, 1)
	assert.Equal(t, view.Failure{Message: "Please enter an Order UID"}, states[0])
}
