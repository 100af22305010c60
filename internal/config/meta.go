package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings.
// This stays in sync when new fields are added to Settings.
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates an example value from the field type and name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug"
		case reflect.Int:
			switch fieldName {
			case "max_log_files":
				return 1000
			case "scan_max_depth":
				return 8
			}
			return 0
		}
	}

	switch t.Kind() {
	case reflect.String:
		if fieldName == "default_chat_mode" {
			return "normal"
		}
		return "example"
	case reflect.Slice:
		if fieldName == "scan_exclude" {
			return []string{"*.log", "coverage/**"}
		}
		return []string{"example1", "example2"}
	}

	return nil
}
