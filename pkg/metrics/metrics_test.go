package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/QuangTung97/promo-pricing/model"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Nil_Receiver(t *testing.T) {
	var m *Metrics

	m.ObservePriceQuery("hit", time.Millisecond)
	m.ObserveSweep(1, 0)
	m.ObserveSnapshotLoad(nil)
	m.ObserveHTTPRequest("GET", "/", 200, time.Millisecond)
	m.ObserveCampaignEvent(model.CampaignEvent{})
}

func TestMetrics_ObservePriceQuery(t *testing.T) {
	m := New()

	m.ObservePriceQuery("hit", time.Microsecond)
	m.ObservePriceQuery("hit", time.Microsecond)
	m.ObservePriceQuery("miss", time.Microsecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.PriceQueriesTotal.WithLabelValues("hit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.PriceQueriesTotal.WithLabelValues("miss")))
}

func TestMetrics_ObserveSweep(t *testing.T) {
	m := New()

	m.ObserveSweep(3, 0)
	m.ObserveSweep(1, 2)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.SweepRunsTotal.WithLabelValues("ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SweepRunsTotal.WithLabelValues("failed")))
	assert.Equal(t, float64(4), testutil.ToFloat64(m.SweepDeactivated))
}

func TestMetrics_ConsumeCampaignEvents(t *testing.T) {
	m := New()

	events := make(chan model.CampaignEvent, 3)
	events <- model.CampaignEvent{Type: model.CampaignEventTypeCreated, Version: 1}
	events <- model.CampaignEvent{Type: model.CampaignEventTypeCreated, Version: 2}
	events <- model.CampaignEvent{Type: model.CampaignEventTypeDeleted, Version: 3}
	close(events)

	m.ConsumeCampaignEvents(context.Background(), events)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.StoreEventsTotal.WithLabelValues("created")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.StoreEventsTotal.WithLabelValues("deleted")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.StoreVersion))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObservePriceQuery("miss", time.Microsecond)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "promo_price_queries_total"))
}
