package contentcmd

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-agency-site/internal/content"
)

const checkMessageType = "site.content.check"

// CheckContentCommand lints the content tree. Kinds defaults to every kind.
type CheckContentCommand struct {
	Kinds   []string `json:"kinds,omitempty"`
	Locales []string `json:"locales"`

	OnComplete func(*Report) `json:"-"`
}

// Type implements command.Message.
func (CheckContentCommand) Type() string { return checkMessageType }

// Validate ensures at least one locale is requested and every kind is known.
func (cmd CheckContentCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Locales, validation.Required, validation.Each(validation.Required, validation.Length(2, 10))),
		validation.Field(&cmd.Kinds, validation.Each(validation.By(func(value any) error {
			name, _ := value.(string)
			if _, err := content.ParseKind(name); err != nil {
				return errors.New("unknown content kind")
			}
			return nil
		}))),
	)
}

func (cmd CheckContentCommand) kinds() []content.Kind {
	if len(cmd.Kinds) == 0 {
		return content.Kinds()
	}
	out := make([]content.Kind, 0, len(cmd.Kinds))
	for _, name := range cmd.Kinds {
		if kind, err := content.ParseKind(name); err == nil {
			out = append(out, kind)
		}
	}
	return out
}
