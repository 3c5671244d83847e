package generate

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"

	"entrygen"
	"entrygen/codec"
)

// Synthesizer turns method descriptors for one contract type into
// entry-point functions. The emitted body is a flat statement
// sequence: panic hook, guards, input decode, callback decodes, init
// guard, state load, invocation, return emission, state persist. Every
// failure point delegates to a runtime helper so each diagnostic fires
// before any later side effect.
type Synthesizer struct {
	contract string
}

// NewSynthesizer returns a synthesizer for the given contract state
// type name.
func NewSynthesizer(contract string) *Synthesizer {
	return &Synthesizer{contract: contract}
}

// Synthesize emits the entry point for one method descriptor.
func (s *Synthesizer) Synthesize(desc *entrygen.MethodDescriptor) (*entrygen.GeneratedFunction, error) {
	if err := desc.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating descriptor")
	}
	// Descriptors are immutable once built; work on a copy so a caller
	// holding the original cannot skew emission midway.
	d := desc.Clone()

	fn := &entrygen.GeneratedFunction{
		Name:       strcase.ToSnake(d.Name),
		ExportName: d.Name,
	}
	emit := func(format string, args ...interface{}) {
		fn.Statements = append(fn.Statements, fmt.Sprintf(format, args...))
	}

	emit("e := env.Host()")
	emit("e.SetPanicHook()")

	if d.Private {
		emit("runtime.AssertPrivate(e, %q)", d.Name)
	}
	if !d.Payable {
		emit("runtime.AssertNoDeposit(e, %q)", d.Name)
	}

	inputs := d.InputParams()
	if len(inputs) > 0 {
		fn.Statements = append(fn.Statements, argsRecord(inputs, d.InputEncoding()))
		emit("in := runtime.DecodeInput[args](e, %s)", kindRef(d.InputEncoding()))
	}

	locals := map[string]string{}
	for _, p := range d.CallbackParams() {
		local := bindingName(p.Name)
		locals[p.Name] = local
		switch p.Origin {
		case entrygen.OriginCallback:
			emit("%s := runtime.DecodeCallback[%s](e, %s, %d)",
				local, p.Type, kindRef(p.Encoding), p.CallbackIndex)
		case entrygen.OriginCallbackAll:
			emit("%s := runtime.DecodeCallbackAll[%s](e, %s)",
				local, p.Type, kindRef(p.Encoding))
		}
	}

	// The re-initialization check sits after argument decoding:
	// constructors still need their arguments decoded first.
	if d.Init() {
		emit("runtime.AssertUninitialized(e)")
	} else {
		emit("contract := runtime.LoadState[%s](e)", s.contract)
	}

	call := s.invocation(d, locals)
	switch {
	case d.Init():
		emit("contract := %s", call)
	case d.Return != nil:
		emit("ret := contract.%s", call)
	default:
		emit("contract.%s", call)
	}

	if d.Return != nil {
		emit("runtime.EmitReturn(e, %s, ret)", kindRef(d.Return.Encoding))
	}

	// Persistence is gated on declared mutability: constructors
	// persist their result, mut-ref methods persist the mutated
	// state, and view methods never persist.
	if d.Init() || (d.Receiver == entrygen.ReceiverMutRef && !d.View) {
		emit("runtime.PersistState(e, &contract)")
	}

	return fn, nil
}

// invocation renders the user-method call expression, passing each
// decoded argument per its binding.
func (s *Synthesizer) invocation(d *entrygen.MethodDescriptor, locals map[string]string) string {
	argv := make([]string, 0, len(d.Params))
	for _, p := range d.Params {
		ref := ""
		if p.ByRef {
			ref = "&"
		}
		if p.Origin == entrygen.OriginInput {
			argv = append(argv, ref+"in."+strcase.ToCamel(p.Name))
		} else {
			argv = append(argv, ref+locals[p.Name])
		}
	}
	return fmt.Sprintf("%s(%s)", strcase.ToCamel(d.Name), strings.Join(argv, ", "))
}

// argsRecord synthesizes the anonymous record type carrying the
// ordinary-input parameters, order preserved. JSON inputs get field
// tags with the declared parameter names.
func argsRecord(inputs []entrygen.ParameterSpec, encoding codec.Kind) string {
	var b strings.Builder
	b.WriteString("type args struct {\n")
	for _, p := range inputs {
		if encoding == codec.KindJSON {
			fmt.Fprintf(&b, "\t%s %s `json:%q`\n", strcase.ToCamel(p.Name), p.Type, p.Name)
		} else {
			fmt.Fprintf(&b, "\t%s %s\n", strcase.ToCamel(p.Name), p.Type)
		}
	}
	b.WriteString("}")
	return b.String()
}

func kindRef(k codec.Kind) string {
	if k == codec.KindBorsh {
		return "codec.KindBorsh"
	}
	return "codec.KindJSON"
}

// Binding names the synthesizer itself introduces.
var reserved = map[string]bool{
	"e":        true,
	"in":       true,
	"args":     true,
	"contract": true,
	"ret":      true,
}

func bindingName(param string) string {
	name := strcase.ToLowerCamel(param)
	if reserved[name] {
		name += "Arg"
	}
	return name
}
