// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package functions

import (
	"bytes"
	"encoding/json"
	"strings"
)

func ToJSON(v any) string {
	buffer := new(bytes.Buffer)
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return ""
	}

	return strings.TrimSuffix(buffer.String(), "\n")
}

// Pick returns the keys of object that are present, object is empty when data is not an object.
func Pick(data any, keys ...string) map[string]any {
	result := make(map[string]any, len(keys))
	object, ok := data.(map[string]any)
	if !ok {
		return result
	}

	for _, key := range keys {
		if val, exists := object[key]; exists {
			result[key] = val
		}
	}

	return result
}

// Get returns the key of data when data is an object holding it, defaultValue otherwise.
func Get(key string, defaultValue any, data any) any {
	object, ok := data.(map[string]any)
	if !ok {
		return defaultValue
	}

	if val, exists := object[key]; exists {
		return val
	}

	return defaultValue
}
