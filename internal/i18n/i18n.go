// Package i18n loads the embedded message catalogs and resolves a request's locale.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// DefaultLanguage is used when no preference matches a catalog.
var DefaultLanguage = language.English

// Catalog holds every loaded language.
type Catalog struct {
	bundle  *goi18n.Bundle
	tags    []language.Tag
	matcher language.Matcher
}

// Load reads the embedded catalogs.
func Load() (*Catalog, error) {
	return LoadFS(localeFS, "locales")
}

// LoadFS reads every *.yaml catalog under dir. The file name is the language tag.
func LoadFS(fsys fs.FS, dir string) (*Catalog, error) {
	bundle := goi18n.NewBundle(DefaultLanguage)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no catalogs found in %s", dir)
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(fsys, f); err != nil {
			return nil, fmt.Errorf("load catalog %s: %w", f, err)
		}
	}

	// Keep the default first so the matcher falls back to it.
	tags := []language.Tag{DefaultLanguage}
	for _, tag := range bundle.LanguageTags() {
		if tag != DefaultLanguage {
			tags = append(tags, tag)
		}
	}
	return &Catalog{bundle: bundle, tags: tags, matcher: language.NewMatcher(tags)}, nil
}

// Languages lists the supported tags, default first.
func (c *Catalog) Languages() []language.Tag {
	return append([]language.Tag(nil), c.tags...)
}

// Match picks the best supported language for the given preferences, in priority order.
// Each preference may be a single tag or an Accept-Language header value.
func (c *Catalog) Match(prefs ...string) language.Tag {
	var wanted []language.Tag
	for _, p := range prefs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		wanted = append(wanted, parsed...)
	}
	if len(wanted) == 0 {
		return DefaultLanguage
	}
	_, idx, conf := c.matcher.Match(wanted...)
	if conf == language.No {
		return DefaultLanguage
	}
	return c.tags[idx]
}

// Translator returns a translator for tag.
func (c *Catalog) Translator(tag language.Tag) *Translator {
	return &Translator{
		lang:      tag,
		localizer: goi18n.NewLocalizer(c.bundle, tag.String(), DefaultLanguage.String()),
	}
}

// Translator resolves message ids for one language.
type Translator struct {
	lang      language.Tag
	localizer *goi18n.Localizer
}

// Lang returns the BCP 47 tag, suitable for the html lang attribute.
func (t *Translator) Lang() string {
	if t == nil {
		return DefaultLanguage.String()
	}
	return t.lang.String()
}

// T returns the message for id, or id itself when no catalog defines it.
func (t *Translator) T(id string) string {
	if t == nil {
		return id
	}
	msg, err := t.localizer.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil || msg == "" {
		return id
	}
	return msg
}
