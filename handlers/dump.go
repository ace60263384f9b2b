// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	texttemplate "text/template"

	"github.com/danielhkuo/ajax-example/models"
)

// dumpLayout lays the fields out the way PHP's print_r prints an array
const dumpLayout = `Array
(
{{range .}}    [{{.Name}}] => {{.Value}}
{{end}})
`

// dumpTemplate wraps the layout in <pre>. Names and values are HTML-escaped.
var dumpTemplate = template.Must(template.New("dump").Parse("<pre>\n" + dumpLayout + "</pre>\n"))

var dumpTextTemplate = texttemplate.Must(texttemplate.New("dump-text").Parse(dumpLayout))

// RenderFormDump renders every submitted field in a <pre> block
func RenderFormDump(form models.FormRequest) (string, error) {
	var buf bytes.Buffer
	if err := dumpTemplate.Execute(&buf, form.Fields); err != nil {
		return "", fmt.Errorf("failed to render form dump: %w", err)
	}
	return buf.String(), nil
}

// RenderFormText renders the same dump as plain text, for alerts
func RenderFormText(form models.FormRequest) (string, error) {
	var buf bytes.Buffer
	if err := dumpTextTemplate.Execute(&buf, form.Fields); err != nil {
		return "", fmt.Errorf("failed to render form text: %w", err)
	}
	return buf.String(), nil
}
