package port

import "context"

// PromptRenderer abstracts the remote prompt template service. GetPrompt
// returns the current text of the named template; invalid credentials or
// an unknown template surface as errors at call time.
type PromptRenderer interface {
	GetPrompt(ctx context.Context, name string) (string, error)
}
