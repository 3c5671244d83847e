package env

var host Env

// Register installs the process-wide host environment. The contract's
// main package calls this once before any entry point runs; tests
// register a Mem instead.
func Register(e Env) {
	host = e
}

// Host returns the registered environment. Generated entry points call
// this as their first statement.
func Host() Env {
	if host == nil {
		panic("env: no host environment registered")
	}
	return host
}
