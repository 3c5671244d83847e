package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"entrygen/codec"
)

type payload struct {
	Owner  string
	Amount uint64
	Tags   []string
}

func TestRoundTrip(t *testing.T) {
	for _, kind := range []codec.Kind{codec.KindJSON, codec.KindBorsh} {
		kind := kind
		t.Run(kind.Label(), func(t *testing.T) {
			c := kind.Codec()

			in := payload{Owner: "alice.test", Amount: 128, Tags: []string{"a", "b"}}
			data, err := c.Encode(in)
			require.NoError(t, err)

			var out payload
			err = c.Decode(data, &out)
			require.NoError(t, err)
			require.Equal(t, in, out)
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	var v payload
	require.Error(t, codec.KindJSON.Codec().Decode([]byte("{"), &v))
	require.Error(t, codec.KindBorsh.Codec().Decode([]byte{0x01}, &v))
}

func TestKind(t *testing.T) {
	require.True(t, codec.KindJSON.Valid())
	require.True(t, codec.KindBorsh.Valid())
	require.False(t, codec.Kind("xml").Valid())

	require.Equal(t, "JSON", codec.KindJSON.Label())
	require.Equal(t, "Borsh", codec.KindBorsh.Label())
}
