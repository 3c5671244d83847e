package env_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"entrygen/env"
)

func TestMemResultAtOutOfRange(t *testing.T) {
	m := env.NewMem()
	m.Results = []env.PromiseResult{{Status: env.Successful, Data: []byte(`1`)}}

	require.Equal(t, env.NotReady, m.ResultAt(-1).Status)
	require.Equal(t, env.NotReady, m.ResultAt(1).Status)
	require.Equal(t, env.Successful, m.ResultAt(0).Status)
}

func TestMemResultAtDoesNotAlias(t *testing.T) {
	m := env.NewMem()
	m.Results = []env.PromiseResult{{Status: env.Successful, Data: []byte(`abc`)}}

	res := m.ResultAt(0)
	res.Data[0] = 'x'
	require.Equal(t, []byte(`abc`), m.Results[0].Data)
}

func TestMemStateIsolation(t *testing.T) {
	m := env.NewMem()
	data := []byte{1, 2, 3}
	m.WriteState(data)
	data[0] = 9

	stored, ok := m.ReadState()
	require.True(t, ok)
	require.Equal(t, []byte{1, 2, 3}, stored)

	stored[1] = 9
	again, _ := m.ReadState()
	require.Equal(t, []byte{1, 2, 3}, again)
}

func TestMemReadInputCounts(t *testing.T) {
	m := env.NewMem()
	_, ok := m.ReadInput()
	require.False(t, ok)
	require.Equal(t, 1, m.InputReads)
}

func TestMemAbortPanics(t *testing.T) {
	m := env.NewMem()
	require.PanicsWithValue(t,
		env.AbortError{Message: "boom"},
		func() { m.Abort("boom") })
}

func TestHostRegistration(t *testing.T) {
	m := env.NewMem()
	env.Register(m)
	require.Same(t, m, env.Host())

	env.Register(nil)
	require.Panics(t, func() { env.Host() })
}
