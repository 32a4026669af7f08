package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var defaultFS embed.FS

// Renderer исполняет разметку поверх структурированного содержимого документа.
// html/template экранирует вывод автоматически, сырой HTML в данные не просочится.
type Renderer struct {
	defaults *template.Template
}

// New парсит встроенные шаблоны по умолчанию (bill, invoice, receipt).
func New() (*Renderer, error) {
	t, err := template.ParseFS(defaultFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse default templates: %w", err)
	}
	return &Renderer{defaults: t}, nil
}

// Validate проверяет, что markup — синтаксически корректный шаблон.
// Вызывается до сохранения шаблона в БД.
func Validate(markup string) error {
	_, err := template.New("markup").Parse(markup)
	return err
}

// Render исполняет сохранённую разметку с данными data и возвращает HTML.
func (r *Renderer) Render(markup string, data any) (string, error) {
	t, err := template.New("markup").Parse(markup)
	if err != nil {
		return "", fmt.Errorf("parse markup: %w", err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute markup: %w", err)
	}
	return buf.String(), nil
}

// RenderDefault исполняет встроенный шаблон name ("bill.html" и т.п.).
func (r *Renderer) RenderDefault(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.defaults.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("execute default template %s: %w", name, err)
	}
	return buf.String(), nil
}
