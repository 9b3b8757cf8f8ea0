//go:generate mockgen -source=summarizer_interface.go -destination=mocks/summarizer_interface_mock.go -package=mock_interfaces

package interfaces

import "context"

// ISummarizer abstracts the external text-generation service used for
// dashboard insights. Any error is treated as advisory by callers.
type ISummarizer interface {
	Summarize(ctx context.Context, instruction string, payload any) (string, error)
}
