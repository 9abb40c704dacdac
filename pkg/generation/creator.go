package generation

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/demandgen/demandgen/pkg/config"
	"github.com/demandgen/demandgen/pkg/pool"
	"github.com/demandgen/demandgen/pkg/randomness"
	"github.com/demandgen/demandgen/pkg/sequence"
	"github.com/demandgen/demandgen/pkg/telemetry"
	"github.com/demandgen/demandgen/pkg/types"
)

// CreatorOptions carries the collaborators and configuration of a Creator.
type CreatorOptions struct {
	// Catalog enumerates the host's accessible callables. Required.
	Catalog Catalog

	// Executor runs synthesized sequences. Required.
	Executor Executor

	// Random is the shared seedable source. Required.
	Random *randomness.Source

	// Config is the generator configuration. Zero value means defaults.
	Config config.Config

	// Logger receives engine logs. Nil means silent.
	Logger *telemetry.Logger

	// Metrics records engine activity. Nil means no metrics.
	Metrics *telemetry.Metrics
}

// Creator is the demand-driven orchestrator: it turns "the caller needs a
// value of type T and has none" into zero or more freshly executed,
// pool-registered sequences producing T. A Creator is single-threaded; give
// each concurrent session its own Creator, pools and random source.
type Creator struct {
	catalog   Catalog
	executor  Executor
	rnd       *randomness.Source
	cfg       config.Config
	logger    *telemetry.Logger
	metrics   *telemetry.Metrics
	sessionID string
}

// NewCreator validates the options and builds a Creator with a fresh session
// identifier.
func NewCreator(opts CreatorOptions) (*Creator, error) {
	if opts.Catalog == nil {
		return nil, fmt.Errorf("generation: catalog is required")
	}
	if opts.Executor == nil {
		return nil, fmt.Errorf("generation: executor is required")
	}
	if opts.Random == nil {
		return nil, fmt.Errorf("generation: random source is required")
	}
	cfg := opts.Config
	if cfg.PoolPolicy == "" {
		cfg.PoolPolicy = config.PoolPolicySeparate
	}
	if cfg.PoolPolicy != config.PoolPolicySeparate && cfg.PoolPolicy != config.PoolPolicyMerged {
		return nil, fmt.Errorf("generation: unknown pool policy %q", cfg.PoolPolicy)
	}
	logger := opts.Logger
	if logger == nil {
		logger = telemetry.NopLogger()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = telemetry.NewMetrics(telemetry.MetricsConfig{})
	}
	sessionID := uuid.NewString()
	return &Creator{
		catalog:   opts.Catalog,
		executor:  opts.Executor,
		rnd:       opts.Random,
		cfg:       cfg,
		logger:    logger.NewComponentLogger("creator").WithSessionID(sessionID),
		metrics:   metrics,
		sessionID: sessionID,
	}, nil
}

// SessionID returns the creator's session identifier, carried in its logs.
func (c *Creator) SessionID() string {
	return c.sessionID
}

// CreateInputsForType attempts to manufacture values of the target type.
// Producers are discovered through the catalog and attempted exactly once
// each, in discovery order: synthesize a sequence from the pools, execute it,
// and pool the produced value when the final outcome is normal and non-nil.
// The returned sequences are those of the destination pool producing the
// target type; an empty result means the type is still unsatisfiable this
// round and the caller should fall back to its own strategy.
//
// Under the separate pool policy, primary is read-only input and secondary
// receives new values; under the merged policy secondary is ignored and
// primary serves as both source and destination.
func (c *Creator) CreateInputsForType(primary, secondary *pool.ObjectPool, target types.Type) []*sequence.Sequence {
	log := c.logger.WithTargetType(target.Name)

	sources := []*pool.ObjectPool{primary, secondary}
	destination := secondary
	if c.cfg.PoolPolicy == config.PoolPolicyMerged || secondary == nil {
		sources = []*pool.ObjectPool{primary}
		destination = primary
	}

	producers := ProducerOperations(c.catalog, target, SearchOptions{
		ConsideredTypes: c.cfg.ConsideredTypes,
		Logger:          log,
	})
	c.metrics.RecordProducersDiscovered(target.Name, len(producers))

	for _, producer := range producers {
		seq := Synthesize(c.rnd, producer, sources)
		if seq == nil {
			c.metrics.RecordSynthesis("failed")
			log.WithOperation(producer.Signature()).Debug("inputs unsatisfiable, skipping producer")
			continue
		}
		c.metrics.RecordSynthesis("ok")
		c.executeAndPool(destination, seq, log.WithOperation(producer.Signature()))
	}

	return destination.SequencesOfType(target)
}

// executeAndPool runs one synthesized sequence and records its product in the
// destination pool when execution completes normally with a non-nil value.
func (c *Creator) executeAndPool(destination *pool.ObjectPool, seq *sequence.Sequence, log *telemetry.Logger) {
	outcomes := c.executor.Execute(seq)
	if len(outcomes) != seq.Len() {
		panic(fmt.Sprintf("generation: executor returned %d outcomes for %d statements",
			len(outcomes), seq.Len()))
	}

	last := outcomes[len(outcomes)-1]
	c.metrics.RecordExecution(last.Kind.String())

	switch last.Kind {
	case sequence.NormalExecution:
		if last.Value == nil {
			log.Debug("execution produced nil value, not pooled")
			return
		}
		destination.Put(last.Value, seq)
		c.metrics.RecordPoolInsertion()
		log.Debug("produced value pooled")
	case sequence.ExceptionalExecution:
		// Failures of the code under test end this producer's attempt but
		// not the surrounding search.
		log.WithError(last.Err).Debug("execution raised, value discarded")
	default:
		log.Debug("final statement not executed, value discarded")
	}
}
