package render

import (
	"context"
	"errors"
	"io"
	"text/template"

	"github.com/a-h/templ"
)

// Layout wraps rendered content into a shared frame.
type Layout func(content templ.Component) templ.Component

// TemplateLayout builds a layout from template text. The wrapped content is
// inserted where the template calls {{content}}.
func TemplateLayout(src string) (Layout, error) {
	base, err := template.New("layout").
		Funcs(template.FuncMap{"content": func() string { return "" }}).
		Parse(src)
	if err != nil {
		return nil, errors.Join(ErrParseTemplate, err)
	}
	return func(content templ.Component) templ.Component {
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			inner, err := Component(ctx, content)
			if err != nil {
				return err
			}
			t, err := base.Clone()
			if err != nil {
				return err
			}
			t.Funcs(template.FuncMap{"content": func() string { return inner }})
			if err := t.Execute(w, nil); err != nil {
				return errors.Join(ErrExecuteTemplate, err)
			}
			return nil
		})
	}, nil
}

// MustTemplateLayout is like TemplateLayout but panics on parse errors.
func MustTemplateLayout(src string) Layout {
	l, err := TemplateLayout(src)
	if err != nil {
		panic(err)
	}
	return l
}
