package promhtable

import (
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llxisdsh/htable"
)

func gauge(t *testing.T, families []*dto.MetricFamily, name string) float64 {
	t.Helper()
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		require.Len(t, mf.GetMetric(), 1)
		m := mf.GetMetric()[0]
		if m.GetGauge() != nil {
			return m.GetGauge().GetValue()
		}
		return m.GetCounter().GetValue()
	}
	t.Fatalf("metric %s not gathered", name)
	return 0
}

func TestCollector(t *testing.T) {
	tbl := htable.New[int](20, htable.Quadratic)
	for i := 0; i < 20; i++ {
		require.NoError(t, tbl.Insert(strconv.Itoa(i), i))
	}

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(NewCollector("users", tbl)))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 5)

	assert.Equal(t, 20.0, gauge(t, families, "htable_size"))
	assert.Equal(t, float64(tbl.Capacity()), gauge(t, families, "htable_capacity"))
	assert.InDelta(t, tbl.LoadFactor(), gauge(t, families, "htable_load_factor"), 1e-9)
	assert.Equal(t, 1.0, gauge(t, families, "htable_growths_total"))
	assert.GreaterOrEqual(t, gauge(t, families, "htable_max_probe"), 1.0)

	for _, mf := range families {
		labels := map[string]string{}
		for _, lp := range mf.GetMetric()[0].GetLabel() {
			labels[lp.GetName()] = lp.GetValue()
		}
		assert.Equal(t, "users", labels["name"], mf.GetName())
		assert.Equal(t, "quadratic", labels["strategy"], mf.GetName())
	}
}

func TestCollector_SyncTable(t *testing.T) {
	st := htable.NewSync[string](5, htable.DoubleHash)
	reg := prometheus.NewRegistry()
	reg.MustRegister(NewCollector("sessions", st))

	require.NoError(t, st.Insert("a", "b"))
	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Equal(t, 1.0, gauge(t, families, "htable_size"))
	assert.Equal(t, 5.0, gauge(t, families, "htable_capacity"))
}
