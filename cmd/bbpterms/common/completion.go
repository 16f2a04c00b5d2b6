package common

import (
	"reflect"
	"strings"

	"github.com/spf13/cobra"
)

// LogLevels supported by bbpterms
var LogLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic"}

// AutocompleteLogLevel - Autocomplete log level options.
// -> "trace", "debug", "info", "warn", "error", "fatal", "panic"
func AutocompleteLogLevel(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return LogLevels, cobra.ShellCompDirectiveNoFileComp
}

// AutocompleteFormat - Autocomplete json or a go template over the fields
// of o. Only exported top-level fields are suggested.
func AutocompleteFormat(o interface{}) func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		suggestions := []string{"json"}
		if strings.HasPrefix(toComplete, "{") {
			suggestions = nil
		}
		prefix := toComplete
		if i := strings.LastIndex(prefix, "."); i >= 0 {
			prefix = prefix[:i]
		} else {
			prefix = "{{"
		}
		for _, field := range structFields(o) {
			suggestions = append(suggestions, prefix+"."+field)
		}
		return suggestions, cobra.ShellCompDirectiveNoSpace | cobra.ShellCompDirectiveNoFileComp
	}
}

func structFields(o interface{}) []string {
	t := reflect.TypeOf(o)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	fields := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if f := t.Field(i); f.IsExported() {
			fields = append(fields, f.Name)
		}
	}
	return fields
}

// AutocompleteSequenceFile - Autocomplete JSON sequence files.
func AutocompleteSequenceFile(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"json"}, cobra.ShellCompDirectiveFilterFileExt
}
