package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
	Add(value float64, labels ...string)
}

type Counters struct {
	EntriesWritten Counter
	EntriesPurged  Counter
	Sweeps         Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func newCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "unilog",
		Name:      name,
		Help:      help,
	}, labels)
}

func NewPrometheusCounter(name, help string, labels []string) *PrometheusCounter {
	c := &PrometheusCounter{counter: newCounterVec(name, help, labels)}
	prometheus.MustRegister(c.counter)
	return c
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

func (p *PrometheusCounter) Add(value float64, labels ...string) {
	p.counter.WithLabelValues(labels...).Add(value)
}

var (
	entriesWrittenOpts = [...]string{"entries_written_total", "Log entry writes by level and outcome"}
	entriesPurgedOpts  = [...]string{"entries_purged_total", "Log entries deleted by retention sweeps"}
	sweepsOpts         = [...]string{"sweeps_total", "Retention sweeps by outcome"}
)

func New() *Counters {
	return &Counters{
		EntriesWritten: NewPrometheusCounter(entriesWrittenOpts[0], entriesWrittenOpts[1], []string{"level", "result"}),
		EntriesPurged:  NewPrometheusCounter(entriesPurgedOpts[0], entriesPurgedOpts[1], []string{"result"}),
		Sweeps:         NewPrometheusCounter(sweepsOpts[0], sweepsOpts[1], []string{"result"}),
	}
}

// NewTestCounters registers the same counters on a private registry so tests
// can build services repeatedly.
func NewTestCounters() *Counters {
	reg := prometheus.NewRegistry()

	entriesWritten := &PrometheusCounter{newCounterVec(entriesWrittenOpts[0], entriesWrittenOpts[1], []string{"level", "result"})}
	entriesPurged := &PrometheusCounter{newCounterVec(entriesPurgedOpts[0], entriesPurgedOpts[1], []string{"result"})}
	sweeps := &PrometheusCounter{newCounterVec(sweepsOpts[0], sweepsOpts[1], []string{"result"})}

	reg.MustRegister(entriesWritten.counter, entriesPurged.counter, sweeps.counter)

	return &Counters{
		EntriesWritten: entriesWritten,
		EntriesPurged:  entriesPurged,
		Sweeps:         sweeps,
	}
}
