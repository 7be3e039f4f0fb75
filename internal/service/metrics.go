package service

import (
	"github.com/prometheus/client_golang/prometheus"

	"bindash/internal/dashboard"
	"bindash/internal/model"
)

// seedMetrics exposes the loaded collection. The collection never changes
// after Load, so the gauges are set exactly once.
type seedMetrics struct {
	fillLevel   *prometheus.GaugeVec
	byClass     *prometheus.GaugeVec
	loadSuccess prometheus.Gauge
}

func newSeedMetrics(reg prometheus.Registerer) (*seedMetrics, error) {
	m := &seedMetrics{
		fillLevel: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "trash_bin_fill_level",
				Help: "Fill level of each trash bin in percent.",
			},
			[]string{"id", "location"},
		),
		byClass: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "trash_bins_by_class",
				Help: "Number of trash bins per fill class.",
			},
			[]string{"class"},
		),
		loadSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "trash_bins_load_success",
			Help: "1 if the trash bin collection loaded, 0 if loading failed.",
		}),
	}
	for _, c := range []prometheus.Collector{m.fillLevel, m.byClass, m.loadSuccess} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *seedMetrics) observe(bins []model.TrashBin) {
	counts := make(map[dashboard.FillClass]int, 3)
	for _, b := range bins {
		m.fillLevel.WithLabelValues(b.ID, b.Location).Set(float64(b.FillLevel))
		counts[dashboard.Classify(b.FillLevel)]++
	}
	for _, c := range dashboard.Classes() {
		m.byClass.WithLabelValues(string(c)).Set(float64(counts[c]))
	}
	m.loadSuccess.Set(1)
}

func (m *seedMetrics) observeFailure() {
	m.loadSuccess.Set(0)
}
