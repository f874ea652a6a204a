package i18n

import "testing"

func TestTranslateMessage(t *testing.T) {
	tr, err := NewTranslator("en")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got := tr.TranslateMessage("REMOVE_MEMBER_SUCCESS_MSG", map[string]string{"member_name": "Asha"})
	if got != "Asha was removed from the group" {
		t.Fatalf("unexpected translation: %s", got)
	}

	if got := tr.TranslateMessage("REMOVE", nil); got != "Remove" {
		t.Fatalf("expected Remove, got %s", got)
	}

	if got := tr.TranslateMessage("NOT_A_KEY", nil); got != "NOT_A_KEY" {
		t.Fatalf("expected key fallback, got %s", got)
	}
}

func TestTranslateMessageMissingParam(t *testing.T) {
	tr, err := NewTranslator("en")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	got := tr.TranslateMessage("LOGGED_IN_MEMBER", nil)
	if got != " (You)" {
		t.Fatalf("expected empty placeholder, got %q", got)
	}
}

func TestRepeatedPlaceholder(t *testing.T) {
	tr, err := newTranslator("en", map[string]string{
		"ECHO": "{name} and {other} and {name}",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	got := tr.TranslateMessage("ECHO", map[string]string{"name": "a", "other": "b"})
	if got != "a and b and a" {
		t.Fatalf("unexpected translation: %s", got)
	}
}

func TestUnknownLocaleFallsBack(t *testing.T) {
	tr, err := NewTranslator("xx")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if tr.Locale() != "en" {
		t.Fatalf("expected en fallback, got %s", tr.Locale())
	}
}
