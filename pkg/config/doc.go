// Package config defines the generator configuration: the random seed, the
// fuzzer's Gaussian spread, the pool-merging policy and the optional
// considered-types restriction, plus logging and metrics settings. It loads
// from YAML and validates with struct tags. Configuration is an explicit
// value handed to constructors; nothing in the engine reads ambient state.
package config
