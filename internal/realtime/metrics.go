package realtime

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes hub activity. A nil *Metrics records nothing.
type Metrics struct {
	connections    prometheus.Gauge
	rooms          prometheus.Gauge
	publishedTotal *prometheus.CounterVec
	deliveredTotal prometheus.Counter
	droppedTotal   prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		connections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "eventboard",
			Subsystem: "realtime",
			Name:      "connections",
			Help:      "Open websocket connections.",
		}),
		rooms: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "eventboard",
			Subsystem: "realtime",
			Name:      "rooms",
			Help:      "Event rooms with at least one subscriber.",
		}),
		publishedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "eventboard",
			Subsystem: "realtime",
			Name:      "published_total",
			Help:      "Notifications published, by topic.",
		}, []string{"topic"}),
		deliveredTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "eventboard",
			Subsystem: "realtime",
			Name:      "delivered_total",
			Help:      "Frames queued to a connection.",
		}),
		droppedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "eventboard",
			Subsystem: "realtime",
			Name:      "dropped_clients_total",
			Help:      "Connections dropped because their send queue was full.",
		}),
	}
	reg.MustRegister(m.connections, m.rooms, m.publishedTotal, m.deliveredTotal, m.droppedTotal)
	return m
}

func (m *Metrics) setConnections(n int) {
	if m != nil {
		m.connections.Set(float64(n))
	}
}

func (m *Metrics) setRooms(n int) {
	if m != nil {
		m.rooms.Set(float64(n))
	}
}

func (m *Metrics) published(topic string) {
	if m != nil {
		m.publishedTotal.WithLabelValues(topic).Inc()
	}
}

func (m *Metrics) delivered() {
	if m != nil {
		m.deliveredTotal.Inc()
	}
}

func (m *Metrics) dropped() {
	if m != nil {
		m.droppedTotal.Inc()
	}
}
