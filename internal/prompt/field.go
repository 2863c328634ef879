package prompt

import (
	"context"
	"fmt"

	"github.com/goliatone/go-kendo/pkg/form"
)

// AskKind lets the user pick one of reg's kinds, preselecting fallback.
func AskKind(ctx context.Context, driver Driver, reg *form.Registry, fallback string) (form.Kind, error) {
	name, err := driver.Select(ctx, SelectConfig{
		Message: "Widget kind",
		Options: reg.Names(),
		Default: fallback,
	})
	if err != nil {
		return form.Kind{}, err
	}
	return reg.Get(name)
}

// AskValue prompts for the field's initial value and stores it. Answers are
// validated with the field's own converter, so the prompt repeats until the
// text parses; an empty answer clears the value.
func AskValue(ctx context.Context, driver Driver, field *form.Field) error {
	current, err := field.Value()
	if err != nil {
		return err
	}
	answer, err := driver.Input(ctx, InputConfig{
		Message: fmt.Sprintf("Value for %s", field.MarkupID()),
		Default: current,
		Help:    fmt.Sprintf("Format: %s. Leave empty for no value.", field.Pattern()),
		Validator: func(text string) error {
			_, err := field.ConvertToObject(text, field.Locale())
			return err
		},
	})
	if err != nil {
		return err
	}
	return field.Input(answer)
}
