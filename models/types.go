// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Option names
const (
	OptionName         = "ajax_example"
	WidgetSettingsName = "widget_ajax_example_widget"
)

// NonceAction is the namespace nonces are minted and verified in.
const NonceAction = "ajax_example"

// AJAX action names
const (
	ActionAdminOptions     = "ajax_example_admin_options"
	ActionUpdateWidgetText = "ajax_example_update_widget_text"
	ActionWidget           = "ajax_example_widget"
)

// Caller identifies the form that originated an AJAX request.
type Caller string

const (
	CallerWidget           Caller = "ajax-example-widget"
	CallerAdminOptions     Caller = "admin-options"
	CallerUpdateWidgetText Caller = "update-widget-text"
)

// Known reports whether c is one of the forms this service renders.
func (c Caller) Known() bool {
	switch c {
	case CallerWidget, CallerAdminOptions, CallerUpdateWidgetText:
		return true
	}
	return false
}

// Status and print values
const (
	StatusPassed = "passed"
	StatusFailed = "failed"

	PrintYes = "yes"
	PrintNo  = "no"

	PrintWhereAlert = "alert"
)

// AuthFailureMessage is returned in-band when the nonce does not verify.
const AuthFailureMessage = "DOING IT WRONG!"

// Request types

// Field is a single name/value pair from a serialized form.
type Field struct {
	Name  string
	Value string
}

// FormRequest is the parsed `data` field of an AJAX post.
// Fields keeps submission order; the typed fields hold the documented
// defaults for anything not submitted.
type FormRequest struct {
	Fields []Field

	Action      string
	Caller      Caller
	PrintOutput string
	PrintWhere  string
	Output      string
	Status      string

	ExampleData    string
	HasExampleData bool
}

// Get returns the submitted value for name.
func (f FormRequest) Get(name string) (string, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field.Value, true
		}
	}
	return "", false
}

// Response types

type AjaxResponse struct {
	Caller      string `json:"caller"`
	Status      string `json:"status"`
	PrintOutput string `json:"print_output"`
	PrintWhere  string `json:"print_where"`
	Output      string `json:"output"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Domain types

type WidgetSettings struct {
	Title string `json:"title"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
