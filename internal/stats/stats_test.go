package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tradepost/tradepost/internal/metrics"
	storeMocks "github.com/tradepost/tradepost/internal/store/mocks"
	"github.com/tradepost/tradepost/pkg/logger"
	domain "github.com/tradepost/tradepost/pkg/types"
)

func gaugeValue(t *testing.T, g interface{ Write(*io_prometheus_client.Metric) error }) float64 {
	t.Helper()
	m := &io_prometheus_client.Metric{}
	require.NoError(t, g.Write(m))
	return m.GetGauge().GetValue()
}

func TestRefresh(t *testing.T) {
	st := storeMocks.NewMockStore(t)
	st.EXPECT().CountItems(mock.Anything).Return(12, nil).Once()
	st.EXPECT().CountItemsByCategory(mock.Anything).Return(map[domain.CategoryCode]int{
		domain.CategoryBooks:       7,
		domain.CategoryElectronics: 5,
	}, nil).Once()
	st.EXPECT().CountActiveTokens(mock.Anything).Return(3, nil).Once()

	c, err := NewCollector(st, time.Minute, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, c.Refresh(context.Background()))

	assert.Equal(t, float64(12), gaugeValue(t, metrics.ItemsTotal))
	assert.Equal(t, float64(3), gaugeValue(t, metrics.AuthTokensActive))

	books, err := metrics.ItemsByCategory.GetMetricWithLabelValues("books")
	require.NoError(t, err)
	assert.Equal(t, float64(7), gaugeValue(t, books))
}

func TestRefresh_CountError(t *testing.T) {
	st := storeMocks.NewMockStore(t)
	st.EXPECT().CountItems(mock.Anything).Return(0, errors.New("connection refused")).Once()

	c, err := NewCollector(st, time.Minute, logger.Nop())
	require.NoError(t, err)

	assert.Error(t, c.Refresh(context.Background()))
}

func TestNewCollector_RegistersEntry(t *testing.T) {
	st := storeMocks.NewMockStore(t)

	c, err := NewCollector(st, 30*time.Second, logger.Nop())
	require.NoError(t, err)

	assert.Len(t, c.Entries(), 1)
}
