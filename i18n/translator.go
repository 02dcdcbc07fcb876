package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for error codes.
// data provides optional values to embed in the message (for example,
// "kind" or "key"); placeholders are written as {name}.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"unconvertible":   "unable to convert schema",
		"invalid_key":     "mapping key needs a name, a group of named members or a catch-all",
		"invalid_literal": "literal {value} is not a scalar",
		"resolver_failed": "cannot resolve callable {name}",
		"hook_failed":     "extension hook failed",
		"max_depth":       "schema nesting exceeds {depth} levels",
	},
	"ja": {
		"unconvertible":   "スキーマを変換できません",
		"invalid_key":     "マッピングのキーには名前・名前付きメンバーのグループ・キャッチオールのいずれかが必要です",
		"invalid_literal": "リテラル {value} はスカラー値ではありません",
		"resolver_failed": "呼び出し可能オブジェクト {name} の型を解決できません",
		"hook_failed":     "拡張フックが失敗しました",
		"max_depth":       "スキーマのネストが {depth} 階層を超えています",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
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
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). It may be called while conversions are running.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
