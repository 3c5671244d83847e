package env

import (
	"fmt"

	"github.com/huandu/go-clone"
)

// AbortError is the panic value Mem.Abort raises. Tests trap it to
// assert on the diagnostic the generated code would surface.
type AbortError struct {
	Message string
}

func (e AbortError) Error() string {
	return fmt.Sprintf("aborted: %s", e.Message)
}

var _ Env = (*Mem)(nil)

// Mem is an in-memory Env for tests. Every field is plain data so a
// test can arrange a call context directly and inspect what the entry
// point wrote back.
type Mem struct {
	CurrentID string
	CallerID  string
	SignerID  string
	Deposit   uint64

	Input    []byte
	HasInput bool

	Results []PromiseResult

	State    []byte
	HasState bool

	Return    []byte
	ReturnSet bool

	// InputReads counts ReadInput calls, so tests can prove that a
	// method without arguments never touches the input buffer.
	InputReads  int
	PanicHooked bool
}

func NewMem() *Mem {
	return &Mem{
		CurrentID: "contract.test",
		CallerID:  "caller.test",
		SignerID:  "caller.test",
	}
}

func (m *Mem) SetPanicHook() {
	m.PanicHooked = true
}

func (m *Mem) CurrentAccount() string { return m.CurrentID }
func (m *Mem) CallerAccount() string  { return m.CallerID }
func (m *Mem) SignerAccount() string  { return m.SignerID }

func (m *Mem) AttachedDeposit() uint64 { return m.Deposit }

func (m *Mem) ReadInput() ([]byte, bool) {
	m.InputReads++
	if !m.HasInput {
		return nil, false
	}
	return clone.Clone(m.Input).([]byte), true
}

func (m *Mem) ResultCount() int {
	return len(m.Results)
}

func (m *Mem) ResultAt(index int) PromiseResult {
	if index < 0 || index >= len(m.Results) {
		return PromiseResult{Status: NotReady}
	}
	// Clone so a decode cannot alias the table entry.
	return clone.Clone(m.Results[index]).(PromiseResult)
}

func (m *Mem) StateExists() bool {
	return m.HasState
}

func (m *Mem) ReadState() ([]byte, bool) {
	if !m.HasState {
		return nil, false
	}
	return clone.Clone(m.State).([]byte), true
}

func (m *Mem) WriteState(data []byte) {
	m.State = clone.Clone(data).([]byte)
	m.HasState = true
}

func (m *Mem) SetReturnValue(data []byte) {
	m.Return = clone.Clone(data).([]byte)
	m.ReturnSet = true
}

func (m *Mem) Abort(msg string) {
	panic(AbortError{Message: msg})
}
