package utils

import (
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

const DefaultLanguage = "pt-BR"

var bundle *i18n.Bundle

func init() {
	bundle = newDefaultBundle()
}

func newDefaultBundle() *i18n.Bundle {
	b := i18n.NewBundle(language.BrazilianPortuguese)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	b.MustAddMessages(language.BrazilianPortuguese, ptBRMessages...)
	b.MustAddMessages(language.English, enMessages...)
	return b
}

// InitI18NBundle loads every yaml message file under dir on top of the
// built-in messages. File names carry the language tag, e.g. `pt-BR.yaml`.
func InitI18NBundle(dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return err
	}

	b := newDefaultBundle()
	for _, f := range files {
		if _, err := b.LoadMessageFile(f); err != nil {
			return err
		}
		log.WithField("prefix", "i18n").Debugf("loaded message file: %s", f)
	}
	bundle = b

	return nil
}

func NewLocalizer(langs ...string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, langs...)
}

// Localize returns the translated message, falling back to the message id
// when the message is unknown to every requested language.
func Localize(loc *i18n.Localizer, id string, data map[string]interface{}) string {
	if loc == nil {
		loc = NewLocalizer(DefaultLanguage)
	}

	msg, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		log.WithField("prefix", "i18n").WithError(err).Warnf("can not localize message: %s", id)
		return id
	}
	return msg
}
