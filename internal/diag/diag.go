// Package diag provides the structured diagnostic event stream for sqlchart.
// The processing pipeline never writes to the console directly; it emits
// events with a severity, a kind, and contextual fields, and a Sink decides
// what to do with them.
package diag

import (
	"log/slog"
)

// Severity classifies how serious an event is.
type Severity int

const (
	// SeverityInfo is informational (run progress, summaries).
	SeverityInfo Severity = iota
	// SeverityWarn marks recovered problems (dropped rows, fallbacks).
	SeverityWarn
	// SeverityError marks fatal problems (connection faults).
	SeverityError
)

// Kind identifies the event in the error taxonomy.
type Kind string

const (
	// KindParseLeniency is emitted when a script ends without a trailing
	// terminator and the final statement is emitted anyway.
	KindParseLeniency Kind = "parse_leniency"

	// KindSchemaMismatch is emitted when a result set lacks an X or Y
	// column; the whole query's dataset is dropped.
	KindSchemaMismatch Kind = "schema_mismatch"

	// KindNullNumeric is emitted when a row's Y value is NULL.
	KindNullNumeric Kind = "null_numeric"

	// KindTypeMismatch is emitted when a row's Y value is date/time typed,
	// which usually means the X and Y columns are swapped in the query.
	KindTypeMismatch Kind = "type_mismatch"

	// KindNonNumeric is emitted when a row's Y value cannot be converted
	// to a number.
	KindNonNumeric Kind = "non_numeric"

	// KindCoercionFault is emitted for any other unexpected fault while
	// coercing a row.
	KindCoercionFault Kind = "coercion_fault"

	// KindDegenerateTrend is emitted when a trend line is requested over
	// points with zero X variance.
	KindDegenerateTrend Kind = "degenerate_trend"

	// KindRenderFault is emitted when the chart renderer fails and the
	// report falls back to a textual summary.
	KindRenderFault Kind = "render_fault"

	// KindConnectionFault is emitted when the database collaborator fails;
	// this aborts the run.
	KindConnectionFault Kind = "connection_fault"

	// KindRunSummary is emitted once per run with aggregate counters.
	KindRunSummary Kind = "run_summary"
)

// Event is one diagnostic occurrence.
type Event struct {
	Severity Severity
	Kind     Kind
	Message  string
	Context  map[string]any
}

// Sink consumes diagnostic events.
type Sink interface {
	Emit(e Event)
}

// Emitf is a convenience for building and emitting an event with
// alternating key/value context pairs, slog style.
func Emitf(s Sink, sev Severity, kind Kind, msg string, kv ...any) {
	e := Event{Severity: sev, Kind: kind, Message: msg}
	if len(kv) > 0 {
		e.Context = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			key, ok := kv[i].(string)
			if !ok {
				continue
			}
			e.Context[key] = kv[i+1]
		}
	}
	s.Emit(e)
}

// SlogSink forwards events to a slog.Logger.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink creates a sink backed by the given logger. A nil logger uses
// slog.Default.
func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{logger: logger}
}

// Emit logs the event at the level matching its severity.
func (s *SlogSink) Emit(e Event) {
	attrs := make([]any, 0, 2+2*len(e.Context))
	attrs = append(attrs, "kind", string(e.Kind))
	for k, v := range e.Context {
		attrs = append(attrs, k, v)
	}

	switch e.Severity {
	case SeverityError:
		s.logger.Error(e.Message, attrs...)
	case SeverityWarn:
		s.logger.Warn(e.Message, attrs...)
	default:
		s.logger.Info(e.Message, attrs...)
	}
}

// Collector records events in memory. Used by tests and by the engine's
// run summary counters.
type Collector struct {
	Events []Event
}

// Emit appends the event.
func (c *Collector) Emit(e Event) {
	c.Events = append(c.Events, e)
}

// Count returns how many collected events have the given kind.
func (c *Collector) Count(kind Kind) int {
	n := 0
	for _, e := range c.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Tee fans an event out to multiple sinks.
type Tee []Sink

// Emit sends the event to every sink in order.
func (t Tee) Emit(e Event) {
	for _, s := range t {
		s.Emit(e)
	}
}

// Discard drops all events.
type Discard struct{}

// Emit does nothing.
func (Discard) Emit(Event) {}
