package fuzz

import (
	"math"
	"testing"

	"github.com/demandgen/demandgen/pkg/generation"
	"github.com/demandgen/demandgen/pkg/operation"
	"github.com/demandgen/demandgen/pkg/randomness"
	"github.com/demandgen/demandgen/pkg/sequence"
	"github.com/demandgen/demandgen/pkg/types"
)

func newTestFuzzer(t *testing.T, seed int64) *Fuzzer {
	t.Helper()
	f, err := NewFuzzer(Options{Random: randomness.NewSource(seed)})
	if err != nil {
		t.Fatalf("creating fuzzer: %v", err)
	}
	return f
}

// lastValue executes the sequence and returns its final value.
func lastValue(t *testing.T, seq *sequence.Sequence) any {
	t.Helper()
	outcomes := generation.NewCallExecutor().Execute(seq)
	final := outcomes[len(outcomes)-1]
	if final.Kind != sequence.NormalExecution {
		t.Fatalf("fuzzed sequence failed to execute: %+v\n%s", final, seq)
	}
	return final.Value
}

func TestFuzzUnsupportedKindsAreNoOps(t *testing.T) {
	cases := []*sequence.Sequence{
		sequence.Literal(types.Boolean, true),
		sequence.Literal(types.Byte, 1),
		sequence.Literal(types.Char, 'x'),
		sequence.Literal(types.Void, nil),
		sequence.Literal(types.Reference("Point"), struct{}{}),
	}
	for _, seq := range cases {
		f := newTestFuzzer(t, 1)
		out, n := f.Fuzz(seq)
		if out != seq || n != 0 {
			t.Errorf("%s: fuzz must be the identity, got %d appended", seq.LastVariable().Type, n)
		}
	}
}

func TestFuzzInt(t *testing.T) {
	f := newTestFuzzer(t, 5)
	seq := sequence.Literal(types.Int, 5)

	out, n := f.Fuzz(seq)
	if n != 2 {
		t.Fatalf("appended statements: got %d, want 2 (noise literal, sum call)", n)
	}
	if out.Len() != 3 {
		t.Fatalf("sequence length: got %d, want 3", out.Len())
	}
	if err := out.Check(); err != nil {
		t.Fatalf("fuzzed sequence unsound: %v", err)
	}

	mirror := randomness.NewSource(5)
	want := 5 + int(math.Round(mirror.Gaussian(DefaultGaussianStdDev)))
	if got := lastValue(t, out); got != want {
		t.Errorf("fuzzed value: got %v, want %d", got, want)
	}
}

func TestFuzzLong(t *testing.T) {
	f := newTestFuzzer(t, 11)
	out, n := f.Fuzz(sequence.Literal(types.Long, int64(100)))
	if n != 2 {
		t.Fatalf("appended statements: got %d, want 2", n)
	}

	mirror := randomness.NewSource(11)
	want := int64(100) + int64(math.Round(mirror.Gaussian(DefaultGaussianStdDev)))
	if got := lastValue(t, out); got != want {
		t.Errorf("fuzzed value: got %v, want %d", got, want)
	}
}

func TestFuzzFloatAndDoubleAreUnrounded(t *testing.T) {
	f := newTestFuzzer(t, 3)
	out, n := f.Fuzz(sequence.Literal(types.Float, float32(1.5)))
	if n != 2 {
		t.Fatalf("float: appended %d, want 2", n)
	}
	mirror := randomness.NewSource(3)
	wantF := float32(1.5) + float32(mirror.Gaussian(DefaultGaussianStdDev))
	if got := lastValue(t, out); got != wantF {
		t.Errorf("float value: got %v, want %v", got, wantF)
	}

	f = newTestFuzzer(t, 3)
	out, n = f.Fuzz(sequence.Literal(types.Double, 2.5))
	if n != 2 {
		t.Fatalf("double: appended %d, want 2", n)
	}
	mirror = randomness.NewSource(3)
	wantD := 2.5 + mirror.Gaussian(DefaultGaussianStdDev)
	if got := lastValue(t, out); got != wantD {
		t.Errorf("double value: got %v, want %v", got, wantD)
	}
}

func TestFuzzShortNarrowsBack(t *testing.T) {
	f := newTestFuzzer(t, 7)
	seq := sequence.Literal(types.Short, 7)

	out, n := f.Fuzz(seq)
	if n != 4 {
		t.Fatalf("appended statements: got %d, want 4 (noise, sum, box, narrow)", n)
	}
	if !out.LastVariable().Type.Equal(types.Short) {
		t.Errorf("fuzzed short should end in a short, got %s", out.LastVariable().Type)
	}
	if err := out.Check(); err != nil {
		t.Fatalf("fuzzed sequence unsound: %v", err)
	}

	mirror := randomness.NewSource(7)
	want := int(int16(7 + int(math.Round(mirror.Gaussian(DefaultGaussianStdDev)))))
	if got := lastValue(t, out); got != want {
		t.Errorf("narrowed value: got %v, want %d", got, want)
	}
}

func TestFuzzStdevOverride(t *testing.T) {
	f, err := NewFuzzer(Options{Random: randomness.NewSource(9), GaussianStdDev: 5})
	if err != nil {
		t.Fatalf("creating fuzzer: %v", err)
	}
	out, _ := f.Fuzz(sequence.Literal(types.Int, 0))

	mirror := randomness.NewSource(9)
	want := int(math.Round(mirror.Gaussian(5)))
	if got := lastValue(t, out); got != want {
		t.Errorf("override stdev: got %v, want %d", got, want)
	}
}

// expectString mirrors the fuzzer's draw order for a string of the given
// value and returns the expected appended-statement count and result.
func expectString(mirror *randomness.Source, s string) (strategy, appended int, result string, noop bool) {
	strategy = mirror.Intn(4)
	n := len(s)
	switch strategy {
	case 0:
		idx := 0
		if n > 0 {
			idx = mirror.Intn(n)
		}
		ch := rune(mirror.Intn(95) + 32)
		return strategy, 5, s[:idx] + string(ch) + s[idx:], false
	case 1:
		if n == 0 {
			return strategy, 0, s, true
		}
		idx := mirror.Intn(n)
		return strategy, 4, s[:idx] + s[idx+1:], false
	case 2:
		if n == 0 {
			return strategy, 0, s, true
		}
		i, j := mirror.Intn(n), mirror.Intn(n)
		start, end := minMax(i, j)
		ch := string(rune(mirror.Intn(95) + 32))
		return strategy, 6, s[:start] + ch + s[end:], false
	default:
		if n == 0 {
			return strategy, 0, s, true
		}
		i, j := mirror.Intn(n), mirror.Intn(n)
		start, end := minMax(i, j)
		return strategy, 4, s[start:end], false
	}
}

func TestFuzzStringStrategies(t *testing.T) {
	covered := make(map[int]bool)

	for seed := int64(0); seed < 64; seed++ {
		seq := sequence.Literal(types.String, "hi")
		f := newTestFuzzer(t, seed)
		out, n := f.Fuzz(seq)

		strategy, wantN, wantS, _ := expectString(randomness.NewSource(seed), "hi")
		covered[strategy] = true

		if n != wantN {
			t.Fatalf("seed %d strategy %d: appended %d, want %d", seed, strategy, n, wantN)
		}
		if err := out.Check(); err != nil {
			t.Fatalf("seed %d: fuzzed sequence unsound: %v", seed, err)
		}
		if got := lastValue(t, out); got != wantS {
			t.Errorf("seed %d strategy %d: got %q, want %q", seed, strategy, got, wantS)
		}
		if strategy == 1 {
			if got := lastValue(t, out).(string); len(got) != 1 {
				t.Errorf("seed %d: deleting from %q should leave 1 char, got %q", seed, "hi", got)
			}
		}
	}

	if len(covered) != 4 {
		t.Errorf("64 seeds should exercise all four strategies, covered %v", covered)
	}
}

func TestFuzzEmptyString(t *testing.T) {
	for seed := int64(0); seed < 32; seed++ {
		seq := sequence.Literal(types.String, "")
		f := newTestFuzzer(t, seed)
		out, n := f.Fuzz(seq)

		strategy, wantN, wantS, noop := expectString(randomness.NewSource(seed), "")
		if noop {
			// delete, replace and substring cannot work on an empty
			// string: silent no-op, never an error.
			if out != seq || n != 0 {
				t.Errorf("seed %d strategy %d: empty string should be a no-op", seed, strategy)
			}
			continue
		}
		// Insertion into the empty string is allowed at index 0.
		if n != wantN {
			t.Errorf("seed %d: appended %d, want %d", seed, n, wantN)
			continue
		}
		if got := lastValue(t, out); got != wantS {
			t.Errorf("seed %d: got %q, want %q", seed, got, wantS)
		}
	}
}

func TestFuzzStringUnknownValueIsNoOp(t *testing.T) {
	greet := operation.NewTypedOperation(&operation.Callable{
		Kind:      operation.Method,
		Name:      "greet",
		Declaring: types.Reference("Util"),
		Static:    true,
		Returns:   types.String,
		Invoke:    func(args []any) (any, error) { return "hello", nil },
	})
	seq, err := sequence.Literal(types.Int, 0).Extend(greet, nil)
	if err != nil {
		t.Fatalf("extend: %v", err)
	}

	f := newTestFuzzer(t, 1)
	out, n := f.Fuzz(seq)
	if out != seq || n != 0 {
		t.Error("a string whose value is not statically known should not be fuzzed")
	}
}

func TestFuzzDeterministic(t *testing.T) {
	run := func() string {
		f := newTestFuzzer(t, 77)
		out, _ := f.Fuzz(sequence.Literal(types.String, "determinism"))
		return out.String()
	}
	if run() != run() {
		t.Error("identical seeds should fuzz identically")
	}

	runInt := func() string {
		f := newTestFuzzer(t, 78)
		out, _ := f.Fuzz(sequence.Literal(types.Int, 41))
		return out.String()
	}
	if runInt() != runInt() {
		t.Error("identical seeds should fuzz numbers identically")
	}
}

func TestFuzzPreservesPrefix(t *testing.T) {
	seq := sequence.Literal(types.Int, 9)
	f := newTestFuzzer(t, 2)
	out, _ := f.Fuzz(seq)

	if out.Len() < seq.Len() {
		t.Fatal("fuzz must not shrink the sequence")
	}
	first := out.Statement(0)
	if !first.IsLiteral() || first.Literal != 9 {
		t.Error("original construction must survive as a prefix")
	}
}

func TestNewFuzzerRequiresRandom(t *testing.T) {
	if _, err := NewFuzzer(Options{}); err == nil {
		t.Error("missing random source should be rejected")
	}
}
