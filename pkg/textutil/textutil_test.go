package textutil

import (
	"reflect"
	"testing"
)

func TestWordCount(t *testing.T) {
	t.Parallel()

	if got := WordCount("  one  two\nthree\t"); got != 3 {
		t.Fatalf("expected 3 words, got %d", got)
	}
	if got := WordCount("   "); got != 0 {
		t.Fatalf("expected 0 words, got %d", got)
	}
}

func TestTokens(t *testing.T) {
	t.Parallel()

	got := Tokens("Breaking: Officials confirm 2 new reports, a scam!")
	want := []string{"breaking", "officials", "confirm", "new", "reports", "scam"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tokens: %v", got)
	}
}

func TestCollapseSpace(t *testing.T) {
	t.Parallel()

	if got := CollapseSpace("a\n\n  b\tc "); got != "a b c" {
		t.Fatalf("unexpected collapse: %q", got)
	}
}
