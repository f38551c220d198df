package notification

import "context"

// RenderContext carries everything a renderer needs for one template.
type RenderContext struct {
	// Template is the raw template text. Its syntax is owned by the renderer.
	Template string
	// Model is the notification being rendered.
	Model Notification
	// Parameters are the extracted parameters of Model, keyed by name.
	Parameters map[string]any
	// LanguageCode is the language of the selected template.
	LanguageCode string
	// LayoutID is the layout the output is wrapped into when UseLayouts is set.
	LayoutID   string
	UseLayouts bool
}

// Renderer turns a template into text.
type Renderer interface {
	Render(ctx context.Context, rc RenderContext) (string, error)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(ctx context.Context, rc RenderContext) (string, error)

// Render calls f(ctx, rc).
func (f RendererFunc) Render(ctx context.Context, rc RenderContext) (string, error) {
	return f(ctx, rc)
}

// TemplateStore supplies the templates of a notification type.
type TemplateStore interface {
	GetTemplates(ctx context.Context, notificationType string) (Templates, error)
}
