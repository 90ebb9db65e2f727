// Package i18n provides the small set of user-facing strings the API
// localizes, keyed by BCP-47 language tags.
package i18n

import "golang.org/x/text/language"

var expiredLabels = map[language.Tag]string{
	language.English:    "Link expired",
	language.Chinese:    "链接已过期",
	language.French:     "Lien expiré",
	language.German:     "Link abgelaufen",
	language.Spanish:    "Enlace caducado",
	language.Portuguese: "Link expirado",
	language.Russian:    "Срок действия ссылки истёк",
	language.Indonesian: "Tautan kedaluwarsa",
	language.Hindi:      "लिंक की समय-सीमा समाप्त",
}

var (
	supported []language.Tag
	matcher   language.Matcher
)

func init() {
	// English first: the matcher falls back to the first tag.
	supported = append(supported, language.English)
	for tag := range expiredLabels {
		if tag != language.English {
			supported = append(supported, tag)
		}
	}
	matcher = language.NewMatcher(supported)
}

// ExpiredLabel returns the "link expired" message for lang, which may be a
// single BCP-47 tag (e.g. "zh-CN", "pt-BR") or a weighted Accept-Language
// list. Empty or unparseable input falls back to English.
func ExpiredLabel(lang string) string {
	_, idx := language.MatchStrings(matcher, lang)
	return expiredLabels[supported[idx]]
}
