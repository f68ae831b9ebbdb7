package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() func(Portfolio, []BlogPost) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})

	return func(portfolio Portfolio, posts []BlogPost) error {
		if err := v.Struct(portfolio); err != nil {
			return fmt.Errorf("invalid portfolio: %w", describe(err))
		}

		ids := make(map[int]string, len(posts))
		slugs := make(map[string]int, len(posts))
		for i, p := range posts {
			if err := v.Struct(p); err != nil {
				return fmt.Errorf("invalid post #%d (%q): %w", i+1, p.Slug, describe(err))
			}
			if prev, ok := ids[p.ID]; ok {
				return fmt.Errorf("duplicate post id %d (%q and %q)", p.ID, prev, p.Slug)
			}
			ids[p.ID] = p.Slug
			if _, ok := slugs[p.Slug]; ok {
				return fmt.Errorf("duplicate post slug %q", p.Slug)
			}
			slugs[p.Slug] = p.ID
		}
		return nil
	}
}

func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}
