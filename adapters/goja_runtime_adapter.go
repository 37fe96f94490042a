package adapters

import (
	"fmt"
	"sync"

	"github.com/dop251/goja"
)

// GojaRuntimeAdapter hosts vendor scripts in an embedded JavaScript VM.
// The VM global object is also exposed as `window`.
type GojaRuntimeAdapter struct {
	mu sync.Mutex
	vm *goja.Runtime
}

// Ensure GojaRuntimeAdapter implements VendorRuntime and ScriptEvaluator
var (
	_ VendorRuntime   = (*GojaRuntimeAdapter)(nil)
	_ ScriptEvaluator = (*GojaRuntimeAdapter)(nil)
)

// NewGojaRuntimeAdapter creates a new VM with `window` bound to the global object.
func NewGojaRuntimeAdapter() *GojaRuntimeAdapter {
	vm := goja.New()
	vm.Set("window", vm.GlobalObject())
	return &GojaRuntimeAdapter{vm: vm}
}

// Set defines a global value, e.g. a console shim, before scripts are loaded.
func (g *GojaRuntimeAdapter) Set(name string, value any) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.vm.Set(name, value)
}

// Get exports the current value of a global, or nil if it is not defined.
func (g *GojaRuntimeAdapter) Get(name string) any {
	g.mu.Lock()
	defer g.mu.Unlock()
	v := g.vm.Get(name)
	if v == nil {
		return nil
	}
	return v.Export()
}

func (g *GojaRuntimeAdapter) Eval(name, source string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, err := g.vm.RunScript(name, source); err != nil {
		return scriptError(name, err)
	}
	return nil
}

func (g *GojaRuntimeAdapter) Defined(global string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	v := g.vm.Get(global)
	return v != nil && v.ToBoolean()
}

func (g *GojaRuntimeAdapter) Send(global string, payload map[string]any) error {
	return g.call(global, payload)
}

func (g *GojaRuntimeAdapter) Command(global, command, subject string, properties map[string]any) error {
	return g.call(global, command, subject, properties)
}

func (g *GojaRuntimeAdapter) call(global string, args ...any) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	fn, ok := goja.AssertFunction(g.vm.Get(global))
	if !ok {
		return fmt.Errorf("%w: %s", ErrGlobalUndefined, global)
	}

	values := make([]goja.Value, len(args))
	for i, arg := range args {
		values[i] = g.vm.ToValue(arg)
	}

	if _, err := fn(goja.Undefined(), values...); err != nil {
		return scriptError(global, err)
	}
	return nil
}

func scriptError(name string, err error) error {
	if jsErr, ok := err.(*goja.Exception); ok {
		return fmt.Errorf("%s: script threw: %v", name, jsErr.Value())
	}
	return fmt.Errorf("%s: script failed: %w", name, err)
}
