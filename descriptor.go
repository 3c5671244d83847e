// Package entrygen models the intermediate representation handed to
// the entry-point synthesizer: one fully-resolved descriptor per
// annotated contract method. Descriptors are produced by the
// annotation analyzer (or loaded from a manifest), validated once, and
// consumed exactly once by generate.Synthesizer.
package entrygen

import (
	"regexp"

	"github.com/huandu/go-clone"
	"github.com/pkg/errors"

	"entrygen/codec"
)

// ReceiverKind is how the user method takes the contract state.
type ReceiverKind int

const (
	// ReceiverInit marks a constructor: no receiver, the call's result
	// becomes the initial contract state.
	ReceiverInit ReceiverKind = iota
	ReceiverValue
	ReceiverRef
	ReceiverMutRef
)

func (k ReceiverKind) String() string {
	switch k {
	case ReceiverInit:
		return "init"
	case ReceiverValue:
		return "value"
	case ReceiverRef:
		return "ref"
	case ReceiverMutRef:
		return "mut_ref"
	}
	return "unknown"
}

// Origin is where a parameter's value comes from at call time.
type Origin int

const (
	// OriginInput parameters are decoded together from the call's
	// input buffer as one record.
	OriginInput Origin = iota
	// OriginCallback parameters are decoded independently from one
	// slot of the callback results table.
	OriginCallback
	// OriginCallbackAll collects every available callback result into
	// an ordered slice.
	OriginCallbackAll
)

type ParameterSpec struct {
	Name string
	// Type is the target-language type literal, e.g. "uint64" or
	// "types.Balance". For OriginCallbackAll it is the element type.
	Type     string
	Origin   Origin
	Encoding codec.Kind
	// CallbackIndex is the results-table slot for OriginCallback.
	CallbackIndex int
	// ByRef parameters are passed to the user method as a pointer into
	// the decoded argument record.
	ByRef bool
}

type ReturnSpec struct {
	Type     string
	Encoding codec.Kind
}

// MethodDescriptor describes one annotated contract method. Immutable
// once built; the synthesizer clones it before use.
type MethodDescriptor struct {
	Name     string
	Receiver ReceiverKind
	Params   []ParameterSpec
	Return   *ReturnSpec

	Private bool
	Payable bool
	View    bool
}

// Init reports whether the method is a constructor.
func (d *MethodDescriptor) Init() bool {
	return d.Receiver == ReceiverInit
}

// InputParams returns the ordinary-input parameters, in declaration
// order.
func (d *MethodDescriptor) InputParams() []ParameterSpec {
	var out []ParameterSpec
	for _, p := range d.Params {
		if p.Origin == OriginInput {
			out = append(out, p)
		}
	}
	return out
}

// CallbackParams returns the callback-bound parameters, in declaration
// order.
func (d *MethodDescriptor) CallbackParams() []ParameterSpec {
	var out []ParameterSpec
	for _, p := range d.Params {
		if p.Origin != OriginInput {
			out = append(out, p)
		}
	}
	return out
}

// InputEncoding is the single encoding shared by the ordinary-input
// group. Defaults to JSON when the method has no input parameters.
func (d *MethodDescriptor) InputEncoding() codec.Kind {
	for _, p := range d.Params {
		if p.Origin == OriginInput {
			return p.Encoding
		}
	}
	return codec.KindJSON
}

// Clone deep-copies the descriptor so the synthesizer's view cannot be
// skewed by later mutation on the caller's side.
func (d *MethodDescriptor) Clone() *MethodDescriptor {
	return clone.Clone(d).(*MethodDescriptor)
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks the structural invariants the synthesizer relies on.
func (d *MethodDescriptor) Validate() error {
	if !identRe.MatchString(d.Name) {
		return errors.Errorf("method name %q is not an identifier", d.Name)
	}
	switch d.Receiver {
	case ReceiverInit, ReceiverValue, ReceiverRef, ReceiverMutRef:
	default:
		return errors.Errorf("method %s: unknown receiver kind %d", d.Name, d.Receiver)
	}
	if d.Init() {
		if d.Return != nil {
			return errors.Errorf("method %s: init methods persist their result and cannot declare a return", d.Name)
		}
		if d.View {
			return errors.Errorf("method %s: init methods cannot be view", d.Name)
		}
	}
	if d.Return != nil && !d.Return.Encoding.Valid() {
		return errors.Errorf("method %s: unknown return encoding %q", d.Name, d.Return.Encoding)
	}

	seen := map[string]bool{}
	inputEncoding := codec.Kind("")
	for _, p := range d.Params {
		if !identRe.MatchString(p.Name) {
			return errors.Errorf("method %s: parameter name %q is not an identifier", d.Name, p.Name)
		}
		if seen[p.Name] {
			return errors.Errorf("method %s: duplicate parameter %s", d.Name, p.Name)
		}
		seen[p.Name] = true
		if p.Type == "" {
			return errors.Errorf("method %s: parameter %s has no type", d.Name, p.Name)
		}
		if !p.Encoding.Valid() {
			return errors.Errorf("method %s: parameter %s has unknown encoding %q", d.Name, p.Name, p.Encoding)
		}

		switch p.Origin {
		case OriginInput:
			// All ordinary-input parameters share one encoding; a
			// method cannot mix JSON and Borsh within the input group.
			if inputEncoding == "" {
				inputEncoding = p.Encoding
			} else if p.Encoding != inputEncoding {
				return errors.Errorf("method %s: parameter %s mixes %s into a %s input group",
					d.Name, p.Name, p.Encoding, inputEncoding)
			}
		case OriginCallback:
			if p.CallbackIndex < 0 {
				return errors.Errorf("method %s: parameter %s has negative callback index", d.Name, p.Name)
			}
		case OriginCallbackAll:
			if p.CallbackIndex != 0 {
				return errors.Errorf("method %s: parameter %s collects all callbacks and cannot bind an index", d.Name, p.Name)
			}
		default:
			return errors.Errorf("method %s: parameter %s has unknown origin %d", d.Name, p.Name, p.Origin)
		}
	}
	return nil
}
