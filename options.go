package fuelcall

import (
	"go.uber.org/zap"
)

// HandlerOption configures a CallHandler or MultiCallHandler.
type HandlerOption func(*handlerConfig)

// EstimateOption configures EstimateTxDependencies.
type EstimateOption func(*estimateConfig)

// handlerConfig holds shared handler configuration.
type handlerConfig struct {
	policies TxPolicies
	logger   *zap.Logger
}

// defaultHandlerConfig returns the default handler configuration: empty
// policies and a no-op logger.
func defaultHandlerConfig() handlerConfig {
	return handlerConfig{logger: zap.NewNop()}
}

// WithPolicies sets the transaction policies the handler assembles with.
func WithPolicies(policies TxPolicies) HandlerOption {
	return func(c *handlerConfig) {
		c.policies = policies
	}
}

// WithLogger attaches a structured logger to the handler. Simulation attempts
// and dependency patches are logged at debug level.
func WithLogger(logger *zap.Logger) HandlerOption {
	return func(c *handlerConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// estimateConfig holds configuration for the dependency estimation loop.
type estimateConfig struct {
	maxAttempts uint64
}

// defaultEstimateConfig returns the default estimation configuration.
func defaultEstimateConfig() estimateConfig {
	return estimateConfig{maxAttempts: DefaultTxDepEstimationAttempts}
}

// WithMaxAttempts overrides the attempt budget of the estimation loop.
// Default is DefaultTxDepEstimationAttempts.
func WithMaxAttempts(attempts uint64) EstimateOption {
	return func(c *estimateConfig) {
		c.maxAttempts = attempts
	}
}
