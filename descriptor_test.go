package entrygen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"entrygen"
	"entrygen/codec"
)

func validDescriptor() *entrygen.MethodDescriptor {
	return &entrygen.MethodDescriptor{
		Name:     "transfer",
		Receiver: entrygen.ReceiverMutRef,
		Params: []entrygen.ParameterSpec{
			{Name: "receiver", Type: "string", Origin: entrygen.OriginInput, Encoding: codec.KindJSON},
			{Name: "amount", Type: "uint64", Origin: entrygen.OriginInput, Encoding: codec.KindJSON},
			{Name: "price", Type: "uint64", Origin: entrygen.OriginCallback, CallbackIndex: 0, Encoding: codec.KindBorsh},
		},
		Return: &entrygen.ReturnSpec{Type: "uint64", Encoding: codec.KindJSON},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validDescriptor().Validate())
}

func TestValidateMixedInputEncodings(t *testing.T) {
	d := validDescriptor()
	d.Params[1].Encoding = codec.KindBorsh
	err := d.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "input group")
}

func TestValidateCallbackEncodingsIndependent(t *testing.T) {
	// Callback parameters may each pick their own encoding, unlike the
	// ordinary-input group.
	d := validDescriptor()
	d.Params = append(d.Params, entrygen.ParameterSpec{
		Name: "note", Type: "string", Origin: entrygen.OriginCallback,
		CallbackIndex: 1, Encoding: codec.KindJSON,
	})
	require.NoError(t, d.Validate())
}

func TestValidateInitWithReturn(t *testing.T) {
	d := validDescriptor()
	d.Receiver = entrygen.ReceiverInit
	require.Error(t, d.Validate())
}

func TestValidateInitView(t *testing.T) {
	d := &entrygen.MethodDescriptor{
		Name:     "new",
		Receiver: entrygen.ReceiverInit,
		View:     true,
	}
	require.Error(t, d.Validate())
}

func TestValidateDuplicateParam(t *testing.T) {
	d := validDescriptor()
	d.Params[1].Name = "receiver"
	require.Error(t, d.Validate())
}

func TestValidateBadNames(t *testing.T) {
	d := validDescriptor()
	d.Name = "7transfer"
	require.Error(t, d.Validate())

	d = validDescriptor()
	d.Params[0].Name = "a-b"
	require.Error(t, d.Validate())
}

func TestValidateCallbackAllWithIndex(t *testing.T) {
	d := validDescriptor()
	d.Params[2].Origin = entrygen.OriginCallbackAll
	d.Params[2].CallbackIndex = 1
	require.Error(t, d.Validate())

	d.Params[2].CallbackIndex = 0
	require.NoError(t, d.Validate())
}

func TestValidateUnknownEncoding(t *testing.T) {
	d := validDescriptor()
	d.Params[0].Encoding = codec.Kind("xml")
	require.Error(t, d.Validate())
}

func TestClone(t *testing.T) {
	d := validDescriptor()
	c := d.Clone()
	c.Params[0].Name = "other"
	c.Return.Type = "string"

	require.Equal(t, "receiver", d.Params[0].Name)
	require.Equal(t, "uint64", d.Return.Type)
}

func TestParamGroups(t *testing.T) {
	d := validDescriptor()
	inputs := d.InputParams()
	require.Len(t, inputs, 2)
	require.Equal(t, "receiver", inputs[0].Name)
	require.Equal(t, "amount", inputs[1].Name)

	callbacks := d.CallbackParams()
	require.Len(t, callbacks, 1)
	require.Equal(t, "price", callbacks[0].Name)

	require.Equal(t, codec.KindJSON, d.InputEncoding())
}
