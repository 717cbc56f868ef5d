package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message ("label" and
// "family").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"unknown_label":        "'{label}' is not a valid {family} value",
		"duplicate_label":      "'{label}' is already declared in {family}",
		"empty_label":          "empty value for {family}",
		"family_sealed":        "{family} is sealed",
		"unknown_family":       "unknown enumeration {family}",
		"duplicate_family":     "enumeration {family} is already registered",
		"family_mismatch":      "'{label}' does not belong to {family}",
		"missing_display_name": "enumeration display name missing",
		"parse_error":          "parse error",
	},
	"ja": {
		"unknown_label":        "'{label}' は {family} の有効な値ではありません",
		"duplicate_label":      "'{label}' は {family} に既に宣言されています",
		"empty_label":          "{family} に空の値は指定できません",
		"family_sealed":        "{family} は封印されています",
		"unknown_family":       "列挙型 {family} は登録されていません",
		"duplicate_family":     "列挙型 {family} は既に登録されています",
		"family_mismatch":      "'{label}' は {family} に属していません",
		"missing_display_name": "列挙型の表示名がありません",
		"parse_error":          "解析エラー",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
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
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	mu.Lock()
	defer mu.Unlock()
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
