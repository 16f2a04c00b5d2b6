package validate

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

var _ pflag.Value = &choiceValue{}

// Honors cobra.Value interface
type choiceValue struct {
	value   *string
	choices []string
}

// ChoiceValue may be used in cobra FlagSet methods Var/VarP/VarPF() to select from a set of values
//
// Example:
//
//	level := validate.ChoiceValue(&logLevel, common.LogLevels...)
//	flags.Var(level, "log-level", "Log messages above specified level: "+level.Choices())
func ChoiceValue(p *string, choices ...string) *choiceValue {
	return &choiceValue{
		value:   p,
		choices: choices,
	}
}

func (c *choiceValue) String() string {
	return *c.value
}

func (c *choiceValue) Set(value string) error {
	for _, v := range c.choices {
		if strings.EqualFold(v, value) {
			*c.value = v
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value.  Choose from: %q", value, c.Choices())
}

func (c *choiceValue) Choices() string {
	return strings.Join(c.choices, ", ")
}

func (c *choiceValue) Type() string {
	return "choice"
}
