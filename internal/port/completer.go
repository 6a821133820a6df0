package port

import "context"

// Completer abstracts the language-model completion service configured
// for a fixed deployment. Complete returns the generated text verbatim;
// auth, quota, and timeout failures are opaque and propagate as-is.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
