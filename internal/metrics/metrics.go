// Package metrics exposes Prometheus instrumentation for the codec core: a
// promauto counter/gauge set plus StartHTTP, covering serialize/deserialize
// pause events and protocol errors.
package metrics

import (
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/canflux/uavcan/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus counters and gauges.
var (
	SerializePaused = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uavcan_serialize_paused_total",
		Help: "Total times SerializeInto paused with BufferFull.",
	})
	DeserializePaused = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uavcan_deserialize_paused_total",
		Help: "Total times DeserializeFrom paused with BufferInsufficient.",
	})
	TransfersSerialized = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uavcan_transfers_serialized_total",
		Help: "Total transfers fully serialized.",
	})
	TransfersDeserialized = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uavcan_transfers_deserialized_total",
		Help: "Total transfers fully deserialized.",
	})
	BitsSerialized = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uavcan_bits_serialized_total",
		Help: "Total bits written across all transfers.",
	})
	BitsDeserialized = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uavcan_bits_deserialized_total",
		Help: "Total bits read across all transfers.",
	})
	FramesParsed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uavcan_frame_ids_parsed_total",
		Help: "Total transfer-frame identifiers successfully parsed.",
	})
	BuildInfo = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "build_info",
		Help: "Build metadata (value is always 1).",
	}, []string{"version", "commit", "date"})
	Errors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "uavcan_errors_total",
		Help: "Protocol error counters by kind.",
	}, []string{"where"})

	readinessMu sync.RWMutex
	readinessFn func() bool
)

// Error label constants (stable label values to bound cardinality), mirroring
// the codec's protocol-fatal sentinel errors.
const (
	ErrStructureExhausted = "structure_exhausted"
	ErrNotFinished        = "not_finished"
	ErrLengthOverflow     = "length_overflow"
	ErrWrongTypeId        = "wrong_type_id"
)

// StartHTTP serves Prometheus metrics at /metrics and a readiness probe at
// /ready.
func StartHTTP(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		if IsReady() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready\n"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("not ready\n"))
	})

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	go func() {
		logging.L().Info("metrics_listen", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.L().Error("metrics_http_error", "error", err)
		}
	}()
	return srv
}

// Local mirrored counters for easy in-process inspection without scraping.
var (
	localSerializePaused   uint64
	localDeserializePaused uint64
	localTransfersSer      uint64
	localTransfersDeser    uint64
	localBitsSer           uint64
	localBitsDeser         uint64
	localFramesParsed      uint64
	localErrors            uint64
)

// Snapshot is a cheap copy of local counters.
type Snapshot struct {
	SerializePaused   uint64
	DeserializePaused uint64
	TransfersSer      uint64
	TransfersDeser    uint64
	BitsSer           uint64
	BitsDeser         uint64
	FramesParsed      uint64
	Errors            uint64
}

func Snap() Snapshot {
	return Snapshot{
		SerializePaused:   atomic.LoadUint64(&localSerializePaused),
		DeserializePaused: atomic.LoadUint64(&localDeserializePaused),
		TransfersSer:      atomic.LoadUint64(&localTransfersSer),
		TransfersDeser:    atomic.LoadUint64(&localTransfersDeser),
		BitsSer:           atomic.LoadUint64(&localBitsSer),
		BitsDeser:         atomic.LoadUint64(&localBitsDeser),
		FramesParsed:      atomic.LoadUint64(&localFramesParsed),
		Errors:            atomic.LoadUint64(&localErrors),
	}
}

func IncSerializePaused() {
	SerializePaused.Inc()
	atomic.AddUint64(&localSerializePaused, 1)
}

func IncDeserializePaused() {
	DeserializePaused.Inc()
	atomic.AddUint64(&localDeserializePaused, 1)
}

func IncTransferSerialized() {
	TransfersSerialized.Inc()
	atomic.AddUint64(&localTransfersSer, 1)
}

func IncTransferDeserialized() {
	TransfersDeserialized.Inc()
	atomic.AddUint64(&localTransfersDeser, 1)
}

func AddBitsSerialized(n int) {
	BitsSerialized.Add(float64(n))
	atomic.AddUint64(&localBitsSer, uint64(n))
}

func AddBitsDeserialized(n int) {
	BitsDeserialized.Add(float64(n))
	atomic.AddUint64(&localBitsDeser, uint64(n))
}

func IncFrameParsed() {
	FramesParsed.Inc()
	atomic.AddUint64(&localFramesParsed, 1)
}

func IncError(label string) {
	Errors.WithLabelValues(label).Inc()
	atomic.AddUint64(&localErrors, 1)
}

// InitBuildInfo sets the build info gauge and pre-registers error label
// series so the first error of each kind does not pay registration latency.
func InitBuildInfo(version, commit, date string) {
	BuildInfo.WithLabelValues(version, commit, date).Set(1)
	for _, lbl := range []string{ErrStructureExhausted, ErrNotFinished, ErrLengthOverflow, ErrWrongTypeId} {
		Errors.WithLabelValues(lbl).Add(0)
	}
}

// SetReadinessFunc registers a function used by /ready and IsReady.
func SetReadinessFunc(fn func() bool) { readinessMu.Lock(); readinessFn = fn; readinessMu.Unlock() }

// IsReady invokes the registered readiness function if present.
func IsReady() bool {
	readinessMu.RLock()
	fn := readinessFn
	readinessMu.RUnlock()
	if fn == nil {
		return true
	}
	return fn()
}

// Ready is a concise alias used at call sites.
func Ready() bool { return IsReady() }

// ClassifyAndCount increments the error counter for an already-classified
// label; it is the same as IncError. Callers resolve a codecerr sentinel to
// its label with errors.Is themselves, so this package does not import
// codecerr.
func ClassifyAndCount(label string) { IncError(label) }
