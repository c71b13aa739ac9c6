package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// langToken must appear in per-language URL templates so the language code
// can be substituted in.
const langToken = "{lang}"

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("langtoken", hasLangToken); err != nil {
		return nil, nil, fmt.Errorf("failed to register langtoken validation: %w", err)
	}
	// The translation text must not spell out langToken itself: the
	// translator treats every braced token as a positional parameter.
	if err := validate.RegisterTranslation("langtoken", trans, func(ut ut.Translator) error {
		return ut.Add("langtoken", "{0} must contain the lang placeholder", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("langtoken", strings.TrimPrefix(fe.Namespace(), "Config."))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register langtoken translation: %w", err)
	}

	return validate, trans, nil
}

func hasLangToken(fl validator.FieldLevel) bool {
	return strings.Contains(fl.Field().String(), langToken)
}
