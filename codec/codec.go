package codec

import (
	"encoding/json"

	"github.com/near/borsh-go"
	"github.com/pkg/errors"
)

// Kind selects one of the two supported wire encodings. It is the value
// carried by parameter and return specs; the manifest spells it in lower
// case ("json" or "borsh").
type Kind string

const (
	KindJSON  Kind = "json"
	KindBorsh Kind = "borsh"
)

func (k Kind) Valid() bool {
	return k == KindJSON || k == KindBorsh
}

// Label is the human-readable encoding name used in abort diagnostics.
func (k Kind) Label() string {
	switch k {
	case KindJSON:
		return "JSON"
	case KindBorsh:
		return "Borsh"
	}
	return string(k)
}

// Codec returns the codec implementation for the kind. Panics on an
// unknown kind; descriptor validation rejects those before any codec
// is ever looked up.
func (k Kind) Codec() Codec {
	switch k {
	case KindJSON:
		return jsonCodec{}
	case KindBorsh:
		return borshCodec{}
	}
	panic("codec: unknown kind " + string(k))
}

// Codec is a symmetric encode/decode pair over one wire format.
type Codec interface {
	// Name is the human label used in diagnostics ("JSON", "Borsh").
	Name() string
	Encode(v interface{}) ([]byte, error)
	Decode(data []byte, v interface{}) error
}

type jsonCodec struct{}

func (jsonCodec) Name() string { return "JSON" }

func (jsonCodec) Encode(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	return data, errors.Wrap(err, "marshal JSON")
}

func (jsonCodec) Decode(data []byte, v interface{}) error {
	return errors.Wrap(json.Unmarshal(data, v), "unmarshal JSON")
}

type borshCodec struct{}

func (borshCodec) Name() string { return "Borsh" }

func (borshCodec) Encode(v interface{}) ([]byte, error) {
	data, err := borsh.Serialize(v)
	return data, errors.Wrap(err, "serialize Borsh")
}

func (borshCodec) Decode(data []byte, v interface{}) error {
	return errors.Wrap(borsh.Deserialize(v, data), "deserialize Borsh")
}
