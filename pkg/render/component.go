package render

import (
	"context"
	"strings"

	"github.com/a-h/templ"
)

// Component renders a templ component to a string.
func Component(ctx context.Context, c templ.Component) (string, error) {
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
