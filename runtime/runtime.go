// Package runtime carries the call-time semantics generated entry
// points delegate to. Each helper covers exactly one failure point of
// a contract call, aborting through the environment with a fixed
// diagnostic, so the generated body stays a flat statement sequence.
package runtime

import (
	"fmt"

	"entrygen/codec"
	"entrygen/env"
)

// AssertPrivate aborts unless the calling account is the original
// transaction signer.
func AssertPrivate(e env.Env, method string) {
	if e.CallerAccount() != e.SignerAccount() {
		e.Abort(fmt.Sprintf("Method %s is private", method))
	}
}

// AssertNoDeposit aborts if the call carries an attached deposit.
// Emitted for every method not marked payable.
func AssertNoDeposit(e env.Env, method string) {
	if e.AttachedDeposit() != 0 {
		e.Abort(fmt.Sprintf("Method %s doesn't accept deposit", method))
	}
}

// AssertUninitialized aborts when contract state already exists. Init
// methods run this after argument decoding, right before invocation.
func AssertUninitialized(e env.Env) {
	if e.StateExists() {
		e.Abort("The contract has already been initialized")
	}
}

// DecodeInput reads the call's input buffer and decodes it into the
// argument record T. Only emitted when the method has ordinary input
// parameters; a method without them never reads the buffer.
func DecodeInput[T any](e env.Env, kind codec.Kind) T {
	var args T
	data, ok := e.ReadInput()
	if !ok {
		e.Abort("Expected input since method has arguments.")
	}
	c := kind.Codec()
	if err := c.Decode(data, &args); err != nil {
		e.Abort(fmt.Sprintf("Failed to deserialize input from %s. Error: `%s`", c.Name(), err))
	}
	return args
}

// DecodeCallback decodes the callback result at index with the
// parameter's own encoding, independent of the main input's encoding.
func DecodeCallback[T any](e env.Env, kind codec.Kind, index int) T {
	var v T
	res := e.ResultAt(index)
	if res.Status != env.Successful {
		e.Abort(fmt.Sprintf("Callback computation %d was not successful", index))
	}
	c := kind.Codec()
	if err := c.Decode(res.Data, &v); err != nil {
		e.Abort(fmt.Sprintf("Failed to deserialize callback using %s. Error: `%s`", c.Name(), err))
	}
	return v
}

// DecodeCallbackAll collects every currently-available callback result
// into a slice, in results-table order. Any non-successful or
// malformed entry aborts the whole call.
func DecodeCallbackAll[T any](e env.Env, kind codec.Kind) []T {
	n := e.ResultCount()
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, DecodeCallback[T](e, kind, i))
	}
	return out
}

// LoadState reads the persisted contract state, falling back to the
// type's zero value when nothing has been persisted yet. State always
// uses the Borsh codec.
func LoadState[T any](e env.Env) T {
	var state T
	data, ok := e.ReadState()
	if !ok {
		return state
	}
	if err := codec.KindBorsh.Codec().Decode(data, &state); err != nil {
		e.Abort("Cannot deserialize the contract state.")
	}
	return state
}

// PersistState writes the contract state back to the state slot.
func PersistState[T any](e env.Env, state *T) {
	data, err := codec.KindBorsh.Codec().Encode(*state)
	if err != nil {
		e.Abort("Cannot serialize the contract state.")
	}
	e.WriteState(data)
}

// EmitReturn serializes the method's return value and sets it as the
// call's output.
func EmitReturn[T any](e env.Env, kind codec.Kind, v T) {
	c := kind.Codec()
	data, err := c.Encode(v)
	if err != nil {
		e.Abort(fmt.Sprintf("Failed to serialize the return value using %s.", c.Name()))
	}
	e.SetReturnValue(data)
}
