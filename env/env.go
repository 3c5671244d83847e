package env

// PromiseStatus is the state of one entry in the ambient callback
// results table.
type PromiseStatus int

const (
	NotReady PromiseStatus = iota
	Successful
	Failed
)

// PromiseResult is the outcome of a previously dispatched asynchronous
// sub-call. Only Successful carries a payload.
type PromiseResult struct {
	Status PromiseStatus
	Data   []byte
}

// Env is the ambient call context a generated entry point executes
// against: the host-provided, call-scoped primitives for one contract
// call. Generated code acquires it once via Host and threads it through
// every runtime helper, so an in-memory implementation can stand in for
// the host during tests.
//
// Abort must not return; implementations terminate the call (the host
// traps, Mem panics with an AbortError).
//
//go:generate go run github.com/vektra/mockery/v2 --name Env --case underscore
type Env interface {
	// SetPanicHook routes runtime panics in the guest to the host's
	// abort mechanism so their message reaches the caller.
	SetPanicHook()

	CurrentAccount() string
	CallerAccount() string
	SignerAccount() string
	AttachedDeposit() uint64

	// ReadInput returns the call's input buffer, or false if the call
	// supplied no input.
	ReadInput() ([]byte, bool)

	ResultCount() int
	ResultAt(index int) PromiseResult

	StateExists() bool
	// ReadState returns the persisted contract state bytes, or false
	// if nothing has been persisted yet.
	ReadState() ([]byte, bool)
	WriteState(data []byte)

	SetReturnValue(data []byte)

	Abort(msg string)
}
