// Package promhtable exports htable statistics to Prometheus.
package promhtable

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/llxisdsh/htable"
)

// StatsSource is implemented by *htable.Table and *htable.SyncTable.
type StatsSource interface {
	Stats() htable.Stats
}

var (
	sizeDesc = prometheus.NewDesc(
		"htable_size",
		"Number of keys stored in the table.",
		[]string{"name", "strategy"}, nil,
	)
	capacityDesc = prometheus.NewDesc(
		"htable_capacity",
		"Number of slots in the table.",
		[]string{"name", "strategy"}, nil,
	)
	loadDesc = prometheus.NewDesc(
		"htable_load_factor",
		"Ratio of stored keys to slots.",
		[]string{"name", "strategy"}, nil,
	)
	growthsDesc = prometheus.NewDesc(
		"htable_growths_total",
		"Number of resizes since the table was created.",
		[]string{"name", "strategy"}, nil,
	)
	maxProbeDesc = prometheus.NewDesc(
		"htable_max_probe",
		"Longest probe walk needed to reach a stored key.",
		[]string{"name", "strategy"}, nil,
	)
)

// Collector is a prometheus.Collector reporting the Stats of one table.
// Each scrape calls Stats, which walks the whole table; for a Table that is
// written concurrently use a SyncTable as the source.
type Collector struct {
	name string
	src  StatsSource
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector returns a collector labelling its metrics with name.
func NewCollector(name string, src StatsSource) *Collector {
	return &Collector{name: name, src: src}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- sizeDesc
	ch <- capacityDesc
	ch <- loadDesc
	ch <- growthsDesc
	ch <- maxProbeDesc
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := c.src.Stats()
	strategy := st.Strategy.String()
	ch <- prometheus.MustNewConstMetric(sizeDesc, prometheus.GaugeValue,
		float64(st.Size), c.name, strategy)
	ch <- prometheus.MustNewConstMetric(capacityDesc, prometheus.GaugeValue,
		float64(st.Capacity), c.name, strategy)
	ch <- prometheus.MustNewConstMetric(loadDesc, prometheus.GaugeValue,
		st.LoadFactor, c.name, strategy)
	ch <- prometheus.MustNewConstMetric(growthsDesc, prometheus.CounterValue,
		float64(st.Growths), c.name, strategy)
	ch <- prometheus.MustNewConstMetric(maxProbeDesc, prometheus.GaugeValue,
		float64(st.MaxProbe), c.name, strategy)
}
