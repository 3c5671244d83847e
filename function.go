package entrygen

// GeneratedFunction is the synthesized entry point for one method: an
// ordered statement sequence under a single exported symbol. Exactly
// one is produced per descriptor; symbol collisions across methods are
// the caller's concern.
type GeneratedFunction struct {
	// Name is the Go function name of the generated wrapper.
	Name string
	// ExportName is the external symbol the VM links against. It
	// equals the descriptor's method name.
	ExportName string
	// Statements is the function body, in execution order. A single
	// statement may span multiple lines (argument record types).
	Statements []string
}
