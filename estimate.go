package fuelcall

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// DefaultTxDepEstimationAttempts is how many times EstimateTxDependencies
// attempts to resolve missing transaction dependencies before giving the
// final simulation the last word.
const DefaultTxDepEstimationAttempts uint64 = 10

// TxDependencyExtension is the capability EstimateTxDependencies drives: a
// handler that can simulate its transaction and grow its declared outputs and
// contract dependencies. The Append methods return a new handler value; the
// receiver and its call list are never mutated.
type TxDependencyExtension[T any] interface {
	// Simulate dry-runs the handler's current call set.
	Simulate(ctx context.Context) error

	// AppendVariableOutputs returns a handler whose transaction carries num
	// additional variable-output placeholders.
	AppendVariableOutputs(num uint64) T

	// AppendContract returns a handler whose transaction additionally
	// references the given contract as an external dependency.
	AppendContract(id ContractID) T
}

// AppendMissingDependencies inspects simulation receipts and applies the
// recoverable patches: a failed-transfer-to-address revert appends exactly
// one variable output (the next simulation reveals any remaining deficit),
// and a contract-not-in-inputs panic appends the missing contract. Both may
// apply in the same pass. The second return reports whether anything was
// patched.
func AppendMissingDependencies[T TxDependencyExtension[T]](handler T, receipts []Receipt) (T, bool) {
	patched := false
	if IsMissingOutputVariables(receipts) {
		handler = handler.AppendVariableOutputs(1)
		patched = true
	}
	if id, ok := MissingContractID(receipts); ok {
		handler = handler.AppendContract(id)
		patched = true
	}
	return handler, patched
}

// EstimateTxDependencies simulates the handler's transaction and attempts to
// resolve missing dependencies, retrying up to the configured attempt count
// (DefaultTxDepEstimationAttempts unless overridden via WithMaxAttempts).
//
// A revert whose receipts carry a recognized recoverable condition is patched
// and retried. Any other error - including a revert with no recognized
// signal - is returned unchanged. Once the attempt budget is spent, one final
// simulation decides the outcome, so the caller always sees a genuine
// simulation result rather than a synthetic gave-up error.
func EstimateTxDependencies[T TxDependencyExtension[T]](ctx context.Context, handler T, opts ...EstimateOption) (T, error) {
	cfg := defaultEstimateConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	for attempt := uint64(0); attempt < cfg.maxAttempts; attempt++ {
		err := handler.Simulate(ctx)
		if err == nil {
			return handler, nil
		}

		var revert *RevertError
		if !errors.As(err, &revert) {
			return handler, err
		}

		patched := false
		handler, patched = AppendMissingDependencies(handler, revert.Receipts)
		if !patched {
			return handler, err
		}
	}

	if err := handler.Simulate(ctx); err != nil {
		return handler, err
	}
	return handler, nil
}

// CallHandler wraps one contract call together with the account that will
// fund and sign it. Handlers are immutable; the dependency-extension methods
// return new handlers with patched call values.
type CallHandler struct {
	call     *ContractCall
	account  Account
	policies TxPolicies
	logger   *zap.Logger
}

// NewCallHandler wraps a single call.
func NewCallHandler(call *ContractCall, account Account, opts ...HandlerOption) *CallHandler {
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &CallHandler{
		call:     call,
		account:  account,
		policies: cfg.policies,
		logger:   cfg.logger,
	}
}

// Call returns the handler's current call, including any applied patches.
func (h *CallHandler) Call() *ContractCall {
	return h.call
}

// TransactionBuilder assembles the unsigned transaction builder for the call.
func (h *CallHandler) TransactionBuilder(ctx context.Context) (*ScriptTransactionBuilder, error) {
	return TransactionBuilderFromCalls(ctx, []*ContractCall{h.call}, h.policies, h.account)
}

// BuildTx assembles, signs, and finalizes the transaction for the call.
func (h *CallHandler) BuildTx(ctx context.Context) (*ScriptTransaction, error) {
	return BuildTxFromCalls(ctx, []*ContractCall{h.call}, h.policies, h.account)
}

// Simulate dry-runs the call's transaction through the account's provider.
func (h *CallHandler) Simulate(ctx context.Context) error {
	return simulateCalls(ctx, []*ContractCall{h.call}, h.policies, h.account, h.logger)
}

// AppendVariableOutputs returns a handler whose call declares num additional
// variable-output placeholders.
func (h *CallHandler) AppendVariableOutputs(num uint64) *CallHandler {
	h.logger.Debug("appending variable output placeholders", zap.Uint64("num", num))
	clone := *h
	clone.call = h.call.AppendVariableOutputs(num)
	return &clone
}

// AppendContract returns a handler whose call additionally references the
// given contract.
func (h *CallHandler) AppendContract(id ContractID) *CallHandler {
	h.logger.Debug("appending missing contract dependency", zap.String("contract", id.Hex()))
	clone := *h
	clone.call = h.call.AppendExternalContract(id)
	return &clone
}

// EstimateTxDependencies simulates the call and resolves its missing
// dependencies, returning the patched handler.
func (h *CallHandler) EstimateTxDependencies(ctx context.Context, opts ...EstimateOption) (*CallHandler, error) {
	return EstimateTxDependencies(ctx, h, opts...)
}

// MultiCallHandler bundles several contract calls into one transaction.
// Like CallHandler it is immutable; patches produce new handlers.
type MultiCallHandler struct {
	calls    []*ContractCall
	account  Account
	policies TxPolicies
	logger   *zap.Logger
}

// NewMultiCallHandler wraps a list of calls executed in order within a single
// transaction.
func NewMultiCallHandler(calls []*ContractCall, account Account, opts ...HandlerOption) *MultiCallHandler {
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &MultiCallHandler{
		calls:    append([]*ContractCall(nil), calls...),
		account:  account,
		policies: cfg.policies,
		logger:   cfg.logger,
	}
}

// Calls returns the handler's current call list, including applied patches.
func (h *MultiCallHandler) Calls() []*ContractCall {
	return h.calls
}

// AddCall returns a handler executing one more call after the existing ones.
func (h *MultiCallHandler) AddCall(call *ContractCall) *MultiCallHandler {
	clone := *h
	clone.calls = append(append([]*ContractCall(nil), h.calls...), call)
	return &clone
}

// TransactionBuilder assembles the unsigned transaction builder for the call
// list.
func (h *MultiCallHandler) TransactionBuilder(ctx context.Context) (*ScriptTransactionBuilder, error) {
	if len(h.calls) == 0 {
		return nil, ErrNoCalls
	}
	return TransactionBuilderFromCalls(ctx, h.calls, h.policies, h.account)
}

// BuildTx assembles, signs, and finalizes the transaction for the call list.
func (h *MultiCallHandler) BuildTx(ctx context.Context) (*ScriptTransaction, error) {
	if len(h.calls) == 0 {
		return nil, ErrNoCalls
	}
	return BuildTxFromCalls(ctx, h.calls, h.policies, h.account)
}

// Simulate dry-runs the bundled transaction through the account's provider.
func (h *MultiCallHandler) Simulate(ctx context.Context) error {
	if len(h.calls) == 0 {
		return ErrNoCalls
	}
	return simulateCalls(ctx, h.calls, h.policies, h.account, h.logger)
}

// AppendVariableOutputs returns a handler whose transaction carries num
// additional variable-output placeholders. Outputs are transaction-wide, so
// the placeholders are attached to the first call.
func (h *MultiCallHandler) AppendVariableOutputs(num uint64) *MultiCallHandler {
	h.logger.Debug("appending variable output placeholders", zap.Uint64("num", num))
	return h.patchFirstCall(func(c *ContractCall) *ContractCall {
		return c.AppendVariableOutputs(num)
	})
}

// AppendContract returns a handler whose transaction additionally references
// the given contract. Contract inputs are transaction-wide, so the dependency
// is attached to the first call.
func (h *MultiCallHandler) AppendContract(id ContractID) *MultiCallHandler {
	h.logger.Debug("appending missing contract dependency", zap.String("contract", id.Hex()))
	return h.patchFirstCall(func(c *ContractCall) *ContractCall {
		return c.AppendExternalContract(id)
	})
}

// EstimateTxDependencies simulates the bundled transaction and resolves its
// missing dependencies, returning the patched handler.
func (h *MultiCallHandler) EstimateTxDependencies(ctx context.Context, opts ...EstimateOption) (*MultiCallHandler, error) {
	return EstimateTxDependencies(ctx, h, opts...)
}

// patchFirstCall clones the handler with its first call replaced by
// patch(first). The original call list is left untouched.
func (h *MultiCallHandler) patchFirstCall(patch func(*ContractCall) *ContractCall) *MultiCallHandler {
	clone := *h
	clone.calls = append([]*ContractCall(nil), h.calls...)
	if len(clone.calls) > 0 {
		clone.calls[0] = patch(clone.calls[0])
	}
	return &clone
}

// simulateCalls builds the transaction for the calls and dry-runs it.
func simulateCalls(ctx context.Context, calls []*ContractCall, policies TxPolicies, account Account, logger *zap.Logger) error {
	tx, err := BuildTxFromCalls(ctx, calls, policies, account)
	if err != nil {
		return err
	}

	provider, err := account.Provider()
	if err != nil {
		return err
	}

	logger.Debug("simulating transaction",
		zap.Int("calls", len(calls)),
		zap.Int("inputs", len(tx.Inputs)),
		zap.Int("outputs", len(tx.Outputs)))

	receipts, err := provider.DryRun(ctx, tx)
	if err != nil {
		return err
	}

	logger.Debug("simulation succeeded", zap.Int("receipts", len(receipts)))
	return nil
}
