package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	msg := T("required_keys", map[string]string{"keys": "[group]", "map": "map[]"})
	if msg != "Required keys [group] are missing from map map[]." {
		t.Fatalf("unexpected english message: %q", msg)
	}

	SetLanguage("ja")
	if msg := T("required_keys", map[string]string{"keys": "[group]", "map": "map[]"}); msg == "Required keys [group] are missing from map map[]." {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodeFallsBackToCode(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected code echo, got %q", msg)
	}
}

type upper struct{}

func (upper) Message(code string, data map[string]string) string { return "X:" + code }

func TestSetTranslator_CustomAndReset(t *testing.T) {
	SetTranslator(upper{})
	if msg := T("or", nil); msg != "X:or" {
		t.Fatalf("custom translator not used: %q", msg)
	}
	SetTranslator(nil)
	if msg := T("or", nil); msg != "or" {
		t.Fatalf("expected english after reset, got %q", msg)
	}
}

func TestExpand_LeavesUnknownPlaceholders(t *testing.T) {
	got := Expand("{a} and {b}", map[string]string{"a": "1"})
	if got != "1 and {b}" {
		t.Fatalf("unexpected expansion: %q", got)
	}
}
