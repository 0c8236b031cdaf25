package Validation

import (
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/pl"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"

	"ChecklistPro/Locales"
)

// Validator wraps go-playground validation with per-locale error messages so
// request errors come back in the caller's active language.
type Validator struct {
	validate *validator.Validate
	uni      *ut.UniversalTranslator
}

func New() *Validator {
	enLocale := en.New()
	plLocale := pl.New()
	uni := ut.New(enLocale, enLocale, plLocale)

	validate := validator.New()

	if trans, ok := uni.GetTranslator("en"); ok {
		entranslations.RegisterDefaultTranslations(validate, trans)
	}
	if trans, ok := uni.GetTranslator("pl"); ok {
		registerPolish(validate, trans)
	}

	return &Validator{validate: validate, uni: uni}
}

// The validator project ships no Polish catalog, so the tags used by this API
// are registered by hand.
func registerPolish(validate *validator.Validate, trans ut.Translator) {
	messages := map[string]string{
		"required": "Pole {0} jest wymagane",
		"email":    "Pole {0} musi być poprawnym adresem e-mail",
		"datetime": "Pole {0} musi być datą w formacie RRRR-MM-DD",
		"oneof":    "Pole {0} ma niedozwoloną wartość",
		"min":      "Pole {0} jest za krótkie",
	}
	for tag, message := range messages {
		tag, message := tag, message
		validate.RegisterTranslation(tag, trans,
			func(ut ut.Translator) error {
				return ut.Add(tag, message, true)
			},
			func(ut ut.Translator, fe validator.FieldError) string {
				msg, err := ut.T(tag, fe.Field())
				if err != nil {
					return fe.Error()
				}
				return msg
			},
		)
	}
}

// Struct validates s and returns localized error messages, or nil when valid.
func (v *Validator) Struct(s interface{}, lang Locales.Language) []string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	trans, found := v.uni.GetTranslator(string(lang))
	if !found {
		trans = v.uni.GetFallback()
	}

	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		messages = append(messages, fe.Translate(trans))
	}
	return messages
}
