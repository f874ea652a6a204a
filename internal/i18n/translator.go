package i18n

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/sirupsen/logrus"
)

var placeholder = regexp.MustCompile(`\{([a-z_]+)\}`)

// Translator resolves message keys against a universal-translator catalog.
// Unknown keys resolve to the key itself.
type Translator struct {
	trans  ut.Translator
	params map[string][]string
}

// NewTranslator builds a translator for locale. Only English ships a
// catalog; other locales fall back to it.
func NewTranslator(locale string) (*Translator, error) {
	return newTranslator(locale, english)
}

func newTranslator(locale string, catalog map[string]string) (*Translator, error) {
	_en := en.New()
	uni := ut.New(_en, _en)

	trans, found := uni.GetTranslator(locale)
	if !found {
		if locale != "" {
			logrus.WithField("locale", locale).Warn("⚠ Locale not available, falling back to en")
		}
		trans = uni.GetFallback()
	}

	t := &Translator{trans: trans, params: make(map[string][]string, len(catalog))}
	for key, text := range catalog {
		indexed, names := indexPlaceholders(text)
		if err := trans.Add(key, indexed, false); err != nil {
			return nil, fmt.Errorf("adding translation %s: %w", key, err)
		}
		t.params[key] = names
	}
	return t, nil
}

// indexPlaceholders rewrites "{member_name}" style placeholders into the
// positional "{0}" form universal-translator expects. Each occurrence gets
// its own position.
func indexPlaceholders(text string) (string, []string) {
	var names []string
	indexed := placeholder.ReplaceAllStringFunc(text, func(m string) string {
		names = append(names, m[1:len(m)-1])
		return "{" + strconv.Itoa(len(names)-1) + "}"
	})
	return indexed, names
}

// TranslateMessage resolves key and fills its named placeholders from params.
// Missing params render empty.
func (t *Translator) TranslateMessage(key string, params map[string]string) string {
	names, ok := t.params[key]
	if !ok {
		return key
	}
	args := make([]string, len(names))
	for i, name := range names {
		args[i] = params[name]
	}
	msg, err := t.trans.T(key, args...)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Debug("Translation lookup failed")
		return key
	}
	return msg
}

// Locale returns the effective locale.
func (t *Translator) Locale() string {
	return t.trans.Locale()
}
