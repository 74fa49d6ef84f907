package codacy

import "testing"

func TestAllLanguagesCoversFullCatalog(t *testing.T) {
	langs := AllLanguages()

	if len(langs) != 57 {
		t.Errorf("expected 57 languages, got %d", len(langs))
	}

	seen := make(map[string]bool, len(langs))
	for _, l := range langs {
		if seen[l] {
			t.Errorf("duplicate language %q", l)
		}
		seen[l] = true
	}
	for _, want := range []string{"Go", "Python", "CSharp", "Objective C", "CPP"} {
		if !seen[want] {
			t.Errorf("expected %q in the language list", want)
		}
	}
}

func TestAllLanguagesReturnsCopy(t *testing.T) {
	first := AllLanguages()
	first[0] = "mutated"

	if AllLanguages()[0] == "mutated" {
		t.Error("callers must not be able to mutate the shared list")
	}
}
