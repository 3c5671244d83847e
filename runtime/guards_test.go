package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"entrygen/env"
	"entrygen/env/mocks"
	"entrygen/runtime"
)

// The guards only touch the ambient identities they check; the mock
// asserts no other primitive is consulted.
func TestAssertPrivateAbortsThroughEnv(t *testing.T) {
	e := mocks.NewEnv(t)
	e.On("CallerAccount").Return("mallory.test").Once()
	e.On("SignerAccount").Return("alice.test").Once()
	e.On("Abort", "Method refund is private").Run(func(mock.Arguments) {
		panic(env.AbortError{Message: "Method refund is private"})
	}).Once()

	require.PanicsWithValue(t,
		env.AbortError{Message: "Method refund is private"},
		func() { runtime.AssertPrivate(e, "refund") })
}

func TestAssertNoDepositReadsDepositOnly(t *testing.T) {
	e := mocks.NewEnv(t)
	e.On("AttachedDeposit").Return(uint64(0)).Once()

	runtime.AssertNoDeposit(e, "transfer")
}

func TestAssertUninitializedChecksStateOnly(t *testing.T) {
	e := mocks.NewEnv(t)
	e.On("StateExists").Return(false).Once()

	runtime.AssertUninitialized(e)
}
