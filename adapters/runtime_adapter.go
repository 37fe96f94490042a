package adapters

import "context"

// VendorRuntime is the capability boundary to the execution context that
// hosts the vendor global.
// Implement this interface to bridge to a different execution context.
type VendorRuntime interface {
	// Defined reports whether the named global exists and is truthy.
	Defined(global string) bool

	// Send invokes the global with a single structured object argument.
	//
	// Returns ErrGlobalUndefined if the global is not callable.
	Send(global string, payload map[string]any) error

	// Command invokes the global positionally as (command, subject, properties).
	//
	// Returns ErrGlobalUndefined if the global is not callable.
	Command(global, command, subject string, properties map[string]any) error
}

// ScriptEvaluator evaluates script source inside an execution context.
type ScriptEvaluator interface {
	// Eval runs source, using name for error locations.
	Eval(name, source string) error
}

// ScriptLoader acquires a vendor script declared by a script tag.
// Implement this interface to load scripts from somewhere other than HTTP.
type ScriptLoader interface {
	// Load fetches the script at src and evaluates it.
	//
	// Returns error if the fetch or the evaluation fails.
	Load(ctx context.Context, src string) error
}
