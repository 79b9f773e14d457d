package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for error codes.
// data provides values substituted into {name} placeholders (for example,
// "target" or "keys").
type Translator interface {
	Message(code string, data map[string]string) string
}

var catalog = map[string]map[string]string{
	"en": {
		"unsupported_notation": "Cannot convert the provided notation to an object of type {target}: {notation}.",
		"supported_formats":    "The following types/formats are supported:",
		"no_supported_formats": "No input types/formats are supported.",
		"required_keys":        "Required keys {keys} are missing from map {map}.",
		"construction_failed":  "Could not create an instance of type {target}: {cause}",
		"invalid_notation":     "Cannot convert {notation}: {reason}.",
		"conversion_failed":    "Could not convert the '{field}' entry: {cause}",
		"for_example":          "for example",
		"or":                   "or",
	},
	"ja": {
		"unsupported_notation": "指定された記法を {target} 型のオブジェクトに変換できません: {notation}。",
		"supported_formats":    "サポートされている型/形式は次のとおりです:",
		"no_supported_formats": "サポートされている入力の型/形式はありません。",
		"required_keys":        "必須キー {keys} がマップ {map} にありません。",
		"construction_failed":  "{target} 型のインスタンスを生成できません: {cause}",
		"invalid_notation":     "{notation} を変換できません: {reason}。",
		"conversion_failed":    "'{field}' エントリを変換できません: {cause}",
		"for_example":          "例",
		"or":                   "または",
	},
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	msgs, ok := catalog[t.lang]
	if !ok {
		msgs = catalog["en"]
	}
	tmpl, ok := msgs[code]
	if !ok {
		return code
	}
	return Expand(tmpl, data)
}

// Expand substitutes {name} placeholders in tmpl with values from data.
// Unknown placeholders are left untouched.
func Expand(tmpl string, data map[string]string) string {
	if len(data) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var (
	translatorMu      sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	translatorMu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	translatorMu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). nil restores the English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	translatorMu.Lock()
	currentTranslator = tr
	translatorMu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	translatorMu.RLock()
	tr := currentTranslator
	translatorMu.RUnlock()
	return tr.Message(code, data)
}
