package fuzz

import (
	"fmt"
	"math"

	"github.com/demandgen/demandgen/pkg/operation"
	"github.com/demandgen/demandgen/pkg/randomness"
	"github.com/demandgen/demandgen/pkg/sequence"
	"github.com/demandgen/demandgen/pkg/telemetry"
	"github.com/demandgen/demandgen/pkg/types"
)

// DefaultGaussianStdDev is the noise spread used when the options leave it
// unset.
const DefaultGaussianStdDev = 30

// Options configures a Fuzzer.
type Options struct {
	// Random is the shared seedable source. Required.
	Random *randomness.Source

	// GaussianStdDev overrides the numeric noise spread. Zero means
	// DefaultGaussianStdDev.
	GaussianStdDev float64

	// Logger receives debug logs. Nil means silent.
	Logger *telemetry.Logger

	// Metrics records fuzz activity by strategy. Nil means no metrics.
	Metrics *telemetry.Metrics
}

// Fuzzer appends statements computing a perturbed variant of a sequence's
// final value, preserving the original construction as a prefix.
type Fuzzer struct {
	rnd     *randomness.Source
	stdev   float64
	logger  *telemetry.Logger
	metrics *telemetry.Metrics
}

// NewFuzzer validates the options and builds a Fuzzer.
func NewFuzzer(opts Options) (*Fuzzer, error) {
	if opts.Random == nil {
		return nil, fmt.Errorf("fuzz: random source is required")
	}
	stdev := opts.GaussianStdDev
	if stdev == 0 {
		stdev = DefaultGaussianStdDev
	}
	if stdev < 0 {
		return nil, fmt.Errorf("fuzz: gaussian stdev must be positive, got %v", stdev)
	}
	logger := opts.Logger
	if logger == nil {
		logger = telemetry.NopLogger()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = telemetry.NewMetrics(telemetry.MetricsConfig{})
	}
	return &Fuzzer{
		rnd:     opts.Random,
		stdev:   stdev,
		logger:  logger.NewComponentLogger("fuzzer"),
		metrics: metrics,
	}, nil
}

// Fuzz dispatches on the type of seq's last variable and returns the possibly
// extended sequence together with the number of appended statements. A count
// of zero always means the returned sequence is the input, unchanged:
// unsupported kinds, empty-string edge cases and non-literal string values
// are silent no-ops by contract, never errors.
func (f *Fuzzer) Fuzz(seq *sequence.Sequence) (*sequence.Sequence, int) {
	last := seq.LastVariable().Type
	kind := last.Kind

	// Short has no sum combinator of its own; it is fuzzed as int and
	// narrowed back afterwards.
	isShort := kind == types.KindShort
	if isShort {
		kind = types.KindInt
	}

	switch kind {
	case types.KindInt, types.KindLong, types.KindFloat, types.KindDouble:
		out := f.fuzzNumber(seq, kind)
		strategy := "numeric"
		if isShort {
			out = f.narrowToShort(out)
			strategy = "short"
		}
		f.metrics.RecordFuzz(strategy)
		return out, out.Len() - seq.Len()
	case types.KindString:
		return f.fuzzString(seq)
	default:
		// void, boolean, byte, char and reference types are unsupported.
		return seq, 0
	}
}

// fuzzNumber appends a Gaussian noise literal of the sequence's numeric kind
// and a call to that kind's sum combinator over (original value, noise).
func (f *Fuzzer) fuzzNumber(seq *sequence.Sequence, kind types.Kind) *sequence.Sequence {
	g := f.rnd.Gaussian(f.stdev)

	var noise any
	var noiseType types.Type
	var sum operation.TypedOperation
	switch kind {
	case types.KindInt:
		noise, noiseType, sum = int(math.Round(g)), types.Int, opIntSum
	case types.KindLong:
		noise, noiseType, sum = int64(math.Round(g)), types.Long, opLongSum
	case types.KindFloat:
		noise, noiseType, sum = float32(g), types.Float, opFloatSum
	default:
		noise, noiseType, sum = g, types.Double, opDoubleSum
	}

	n := seq.Len()
	out, err := sequence.Compose(sum,
		[]*sequence.Sequence{seq, sequence.Literal(noiseType, noise)},
		[]int{n - 1, n})
	if err != nil {
		panic(fmt.Sprintf("fuzz: numeric perturbation produced unsound sequence: %v", err))
	}
	return out
}

// narrowToShort boxes the fuzzed int result and reads it back as a short.
func (f *Fuzzer) narrowToShort(seq *sequence.Sequence) *sequence.Sequence {
	out, err := seq.Extend(opBoxInt, []int{seq.Len() - 1})
	if err == nil {
		out, err = out.Extend(opShortValue, []int{out.Len() - 1})
	}
	if err != nil {
		panic(fmt.Sprintf("fuzz: short narrowing produced unsound sequence: %v", err))
	}
	return out
}

// fuzzString applies one of four strategies chosen uniformly at random. Every
// strategy goes through a text builder constructed from the original string;
// all but substring convert the builder back to a string at the end.
func (f *Fuzzer) fuzzString(seq *sequence.Sequence) (*sequence.Sequence, int) {
	strategy := f.rnd.Intn(4)

	lastStmt := seq.Statement(seq.Len() - 1)
	str, ok := lastStmt.Literal.(string)
	if !lastStmt.IsLiteral() || !ok {
		// The concrete value is unknown, so index bounds cannot be chosen.
		f.logger.Debug("last string value not statically known, fuzz skipped")
		return seq, 0
	}
	length := len(str)

	var out *sequence.Sequence
	var name string
	switch strategy {
	case 0:
		name = "insert"
		idx := 0
		if length > 0 {
			idx = f.rnd.Intn(length)
		}
		ch := rune(f.rnd.Intn(95) + 32) // printable ASCII
		out = f.applyStrategy(seq, opInsert, true,
			sequence.Literal(types.Int, idx),
			sequence.Literal(types.Char, ch))
	case 1:
		name = "delete"
		if length == 0 {
			return seq, 0
		}
		idx := f.rnd.Intn(length)
		out = f.applyStrategy(seq, opDeleteCharAt, true,
			sequence.Literal(types.Int, idx))
	case 2:
		name = "replace"
		if length == 0 {
			return seq, 0
		}
		i, j := f.rnd.Intn(length), f.rnd.Intn(length)
		start, end := minMax(i, j)
		repl := string(rune(f.rnd.Intn(95) + 32))
		out = f.applyStrategy(seq, opReplace, true,
			sequence.Literal(types.Int, start),
			sequence.Literal(types.Int, end),
			sequence.Literal(types.String, repl))
	default:
		name = "substring"
		if length == 0 {
			return seq, 0
		}
		i, j := f.rnd.Intn(length), f.rnd.Intn(length)
		start, end := minMax(i, j)
		out = f.applyStrategy(seq, opSubstring, false,
			sequence.Literal(types.Int, start),
			sequence.Literal(types.Int, end))
	}

	f.metrics.RecordFuzz(name)
	return out, out.Len() - seq.Len()
}

// applyStrategy builds the common string-strategy shape: construct a builder
// from the original string, append the argument literals, call the mutation
// on the trailing statements, and optionally convert back to a string.
func (f *Fuzzer) applyStrategy(seq *sequence.Sequence, mutation operation.TypedOperation,
	toString bool, args ...*sequence.Sequence) *sequence.Sequence {
	withBuilder, err := sequence.Compose(opNewBuilder,
		[]*sequence.Sequence{seq}, []int{seq.Len() - 1})
	if err != nil {
		panic(fmt.Sprintf("fuzz: builder construction produced unsound sequence: %v", err))
	}

	parts := append([]*sequence.Sequence{withBuilder}, args...)
	out, err := applyTrailing(sequence.Concat(parts...), mutation)
	if err == nil && toString {
		out, err = applyTrailing(out, opToString)
	}
	if err != nil {
		panic(fmt.Sprintf("fuzz: %s strategy produced unsound sequence: %v", mutation.Callable.Name, err))
	}
	return out
}

// applyTrailing appends a call to op whose inputs are the last arity
// statements of seq, in order.
func applyTrailing(seq *sequence.Sequence, op operation.TypedOperation) (*sequence.Sequence, error) {
	k := op.Arity()
	inputs := make([]int, k)
	for i := 0; i < k; i++ {
		inputs[i] = seq.Len() - k + i
	}
	return seq.Extend(op, inputs)
}

func minMax(a, b int) (int, int) {
	if a <= b {
		return a, b
	}
	return b, a
}
