package generate

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"entrygen"
	"entrygen/codec"
)

// Manifest is the interchange format the annotation analyzer hands the
// synthesizer: one contract type with its resolved method descriptors.
// Surface-syntax analysis of the contract language happens upstream;
// by the time a manifest exists every type, encoding and flag is
// resolved.
type Manifest struct {
	// Package is the Go package the generated file belongs to.
	Package string `yaml:"package"`
	// Contract is the contract state type name.
	Contract string           `yaml:"contract"`
	Methods  []ManifestMethod `yaml:"methods"`
}

type ManifestMethod struct {
	Name     string          `yaml:"name"`
	Receiver string          `yaml:"receiver"`
	Private  bool            `yaml:"private"`
	Payable  bool            `yaml:"payable"`
	View     bool            `yaml:"view"`
	Params   []ManifestParam `yaml:"params"`
	Return   *ManifestReturn `yaml:"return"`
}

type ManifestParam struct {
	Name     string     `yaml:"name"`
	Type     string     `yaml:"type"`
	Encoding codec.Kind `yaml:"encoding"`
	// Callback binds the parameter to one results-table slot.
	Callback *int `yaml:"callback"`
	// CallbackAll collects every available callback result instead of
	// a single slot. Mutually exclusive with Callback.
	CallbackAll bool `yaml:"callback_all"`
	ByRef       bool `yaml:"by_ref"`
}

type ManifestReturn struct {
	Type     string     `yaml:"type"`
	Encoding codec.Kind `yaml:"encoding"`
}

// LoadManifest reads and validates a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading manifest")
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "unmarshalling manifest")
	}
	if m.Package == "" {
		return nil, errors.New("manifest has no package")
	}
	if m.Contract == "" {
		return nil, errors.New("manifest has no contract type")
	}
	if len(m.Methods) == 0 {
		return nil, errors.New("manifest has no methods")
	}

	// Fail early so the CLI reports a bad manifest before any file is
	// touched.
	if _, err := m.Descriptors(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Descriptors resolves the manifest methods into validated method
// descriptors.
func (m *Manifest) Descriptors() ([]*entrygen.MethodDescriptor, error) {
	out := make([]*entrygen.MethodDescriptor, 0, len(m.Methods))
	for _, mm := range m.Methods {
		d, err := mm.descriptor()
		if err != nil {
			return nil, errors.Wrapf(err, "method %s", mm.Name)
		}
		out = append(out, d)
	}
	return out, nil
}

func (mm ManifestMethod) descriptor() (*entrygen.MethodDescriptor, error) {
	receiver, err := receiverKind(mm.Receiver)
	if err != nil {
		return nil, err
	}

	d := &entrygen.MethodDescriptor{
		Name:     mm.Name,
		Receiver: receiver,
		Private:  mm.Private,
		Payable:  mm.Payable,
		View:     mm.View,
	}

	for _, mp := range mm.Params {
		if mp.Callback != nil && mp.CallbackAll {
			return nil, errors.Errorf("parameter %s binds a callback index and collects all callbacks", mp.Name)
		}
		p := entrygen.ParameterSpec{
			Name:     mp.Name,
			Type:     mp.Type,
			Encoding: defaultKind(mp.Encoding),
			ByRef:    mp.ByRef,
		}
		switch {
		case mp.CallbackAll:
			p.Origin = entrygen.OriginCallbackAll
		case mp.Callback != nil:
			p.Origin = entrygen.OriginCallback
			p.CallbackIndex = *mp.Callback
		default:
			p.Origin = entrygen.OriginInput
		}
		d.Params = append(d.Params, p)
	}

	if mm.Return != nil {
		d.Return = &entrygen.ReturnSpec{
			Type:     mm.Return.Type,
			Encoding: defaultKind(mm.Return.Encoding),
		}
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func receiverKind(s string) (entrygen.ReceiverKind, error) {
	switch s {
	case "init":
		return entrygen.ReceiverInit, nil
	case "value":
		return entrygen.ReceiverValue, nil
	case "ref":
		return entrygen.ReceiverRef, nil
	case "mut_ref":
		return entrygen.ReceiverMutRef, nil
	}
	return 0, errors.Errorf("unknown receiver kind %q", s)
}

func defaultKind(k codec.Kind) codec.Kind {
	if k == "" {
		return codec.KindJSON
	}
	return k
}
