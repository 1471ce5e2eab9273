package symbols

// SymbolInfo records what the analyzer knows about a declared variable.
type SymbolInfo struct {
	Type string // "int", "float", "string"
}
