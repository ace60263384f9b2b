// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/danielhkuo/ajax-example/models"
)

// ParseFormData parses a serialized form (the `data` field of an AJAX post).
//
// Pairs are split on '&' only. A repeated name keeps its first position and
// takes the last value. Leading spaces in names are dropped and remaining
// spaces and dots become underscores. Pairs with an empty name are skipped.
func ParseFormData(data string) (models.FormRequest, error) {
	var form models.FormRequest
	seen := make(map[string]int)

	for data != "" {
		var pair string
		pair, data, _ = strings.Cut(data, "&")
		if pair == "" {
			continue
		}

		rawName, rawValue, _ := strings.Cut(pair, "=")
		name, err := url.QueryUnescape(rawName)
		if err != nil {
			return models.FormRequest{}, fmt.Errorf("invalid field name %q: %w", rawName, err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return models.FormRequest{}, fmt.Errorf("invalid value for %q: %w", name, err)
		}

		name = normalizeFieldName(name)
		if name == "" {
			continue
		}

		if i, ok := seen[name]; ok {
			form.Fields[i].Value = value
			continue
		}
		seen[name] = len(form.Fields)
		form.Fields = append(form.Fields, models.Field{Name: name, Value: value})
	}

	form.Action = fieldOr(form, "action", "")
	form.Caller = models.Caller(fieldOr(form, "caller", ""))
	form.PrintOutput = fieldOr(form, "print_output", models.PrintNo)
	form.PrintWhere = fieldOr(form, "print_where", "")
	form.Output = fieldOr(form, "output", "")
	form.Status = fieldOr(form, "status", models.StatusFailed)
	form.ExampleData, form.HasExampleData = form.Get("example-data")

	return form, nil
}

// fieldOr returns the submitted value, even if empty, or def when the
// field was not submitted at all.
func fieldOr(form models.FormRequest, name, def string) string {
	if v, ok := form.Get(name); ok {
		return v
	}
	return def
}

var fieldNameReplacer = strings.NewReplacer(" ", "_", ".", "_")

func normalizeFieldName(name string) string {
	return fieldNameReplacer.Replace(strings.TrimLeft(name, " "))
}
