// Package i18n supplies every user-facing message produced by the analysis
// engine. The engine owns no text itself; it asks the catalog for a template
// by ID and locale.
package i18n

import "strings"

const (
	LocaleEnglish = "en"
	LocaleSwedish = "sv"

	defaultLocale = LocaleEnglish
)

// Params carries template substitutions, e.g. {"count": "3"} for "{count} images".
type Params map[string]string

// Catalog resolves message templates per locale.
type Catalog struct {
	messages map[string]map[string]string // templateID -> locale -> template
}

// NewCatalog builds the catalog with the built-in en and sv message sets.
func NewCatalog() *Catalog {
	c := &Catalog{messages: make(map[string]map[string]string, len(messagesEN))}
	c.register(LocaleEnglish, messagesEN)
	c.register(LocaleSwedish, messagesSV)
	return c
}

func (c *Catalog) register(locale string, set map[string]string) {
	for id, tpl := range set {
		byLocale, ok := c.messages[id]
		if !ok {
			byLocale = make(map[string]string, 2)
			c.messages[id] = byLocale
		}
		byLocale[locale] = tpl
	}
}

// Get resolves a template and substitutes {param} placeholders. An unknown
// locale falls back to English; an unknown template ID is returned verbatim so
// a missing translation is visible instead of silently blank.
func (c *Catalog) Get(templateID, locale string, params Params) string {
	byLocale, ok := c.messages[templateID]
	if !ok {
		return templateID
	}
	tpl, ok := byLocale[NormalizeLocale(locale)]
	if !ok {
		tpl = byLocale[defaultLocale]
	}
	if tpl == "" {
		return templateID
	}
	for key, val := range params {
		tpl = strings.ReplaceAll(tpl, "{"+key+"}", val)
	}
	return tpl
}

// NormalizeLocale maps a requested locale onto a supported one.
func NormalizeLocale(locale string) string {
	switch strings.ToLower(strings.TrimSpace(locale)) {
	case LocaleSwedish, "sv-se", "swedish":
		return LocaleSwedish
	default:
		return defaultLocale
	}
}
