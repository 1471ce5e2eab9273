package scope

import (
	"fmt"

	"github.com/minic-lang/minic/internal/compiler/symbols"
)

// Scope is the symbol table for one analysis run. The language has a single
// flat scope per run, so there is no outer-scope chain; insertion order is
// irrelevant.
type Scope struct {
	Symbols map[string]symbols.SymbolInfo
}

func NewScope() *Scope {
	return &Scope{
		Symbols: make(map[string]symbols.SymbolInfo),
	}
}

// Define adds a symbol to the scope. It returns an error if the symbol
// already exists; a name may be declared at most once per run.
func (s *Scope) Define(name string, info symbols.SymbolInfo) error {
	if _, exists := s.Symbols[name]; exists {
		return fmt.Errorf("variable already declared: %s", name)
	}
	s.Symbols[name] = info
	return nil
}

// Lookup returns the symbol info for a name, if declared.
func (s *Scope) Lookup(name string) (symbols.SymbolInfo, bool) {
	info, ok := s.Symbols[name]
	return info, ok
}
