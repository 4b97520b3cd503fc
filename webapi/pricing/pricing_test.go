package pricing_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/amirasaad/parcels/internal/fixtures/mocks"
	"github.com/amirasaad/parcels/pkg/domain"
	pricingweb "github.com/amirasaad/parcels/webapi/pricing"
	"github.com/amirasaad/parcels/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubTrigger struct {
	id      uuid.UUID
	queued  bool
	stopped bool
	calls   int
}

func (s *stubTrigger) Running() bool { return !s.stopped }

func (s *stubTrigger) Trigger() (uuid.UUID, bool) {
	s.calls++
	queued := s.queued
	s.queued = false
	return s.id, queued
}

func newApp(trigger pricingweb.Trigger, rates *mocks.MockRateProvider) *fiber.App {
	app := fiber.New()
	pricingweb.Routes(app, trigger, rates)
	return app
}

func TestCalculateDeliveryCosts(t *testing.T) {
	t.Parallel()
	trigger := &stubTrigger{id: uuid.New(), queued: true}
	app := newApp(trigger, mocks.NewMockRateProvider(t))

	decode := func(resp *http.Response) pricingweb.TaskAcceptedResponse {
		defer resp.Body.Close() //nolint:errcheck
		var body pricingweb.TaskAcceptedResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		return body
	}

	resp := testutils.MakeRequestWithApp(app, fiber.MethodPost, "/calculate_delivery_costs", "", "")
	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)
	first := decode(resp)
	assert.Equal(t, trigger.id.String(), first.TaskID)
	assert.Equal(t, "Delivery cost calculation started", first.Message)

	resp = testutils.MakeRequestWithApp(app, fiber.MethodPost, "/calculate_delivery_costs", "", "")
	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)
	second := decode(resp)
	assert.Equal(t, first.TaskID, second.TaskID, "coalesced requests share the task")
	assert.Equal(t, "Delivery cost calculation already queued", second.Message)
	assert.Equal(t, 2, trigger.calls)
}

func TestCalculateDeliveryCosts_SchedulerStopped(t *testing.T) {
	t.Parallel()
	trigger := &stubTrigger{id: uuid.New(), queued: true, stopped: true}
	app := newApp(trigger, mocks.NewMockRateProvider(t))

	resp := testutils.MakeRequestWithApp(app, fiber.MethodPost, "/calculate_delivery_costs", "", "")
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get(fiber.HeaderContentType))

	var pd struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	assert.Equal(t, "The pricing scheduler is not running", pd.Detail)
	assert.Zero(t, trigger.calls, "nothing is queued")
}

func TestGetUSDRate(t *testing.T) {
	t.Parallel()
	fetched := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("cached", func(t *testing.T) {
		t.Parallel()
		rates := mocks.NewMockRateProvider(t)
		rates.EXPECT().CurrentRate(mock.Anything).Return(&domain.CachedRate{
			Value: 95.5, Source: "cbr", FetchedAt: fetched, ExpiresAt: fetched.Add(time.Hour),
		}, nil)

		resp := testutils.MakeRequestWithApp(newApp(&stubTrigger{}, rates), fiber.MethodGet, "/rates/usd", "", "")
		defer resp.Body.Close() //nolint:errcheck
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body struct {
			Data pricingweb.RateResponse `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "USD", body.Data.Currency)
		assert.InDelta(t, 95.5, body.Data.Value, 1e-9)
		assert.Equal(t, "cbr", body.Data.Source)
		assert.True(t, fetched.Equal(body.Data.FetchedAt))
	})

	t.Run("nothing cached", func(t *testing.T) {
		t.Parallel()
		rates := mocks.NewMockRateProvider(t)
		rates.EXPECT().CurrentRate(mock.Anything).Return(nil, nil)

		resp := testutils.MakeRequestWithApp(newApp(&stubTrigger{}, rates), fiber.MethodGet, "/rates/usd", "", "")
		defer resp.Body.Close() //nolint:errcheck
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("cache failure", func(t *testing.T) {
		t.Parallel()
		rates := mocks.NewMockRateProvider(t)
		rates.EXPECT().CurrentRate(mock.Anything).Return(nil, errors.New("redis down"))

		resp := testutils.MakeRequestWithApp(newApp(&stubTrigger{}, rates), fiber.MethodGet, "/rates/usd", "", "")
		defer resp.Body.Close() //nolint:errcheck
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}
