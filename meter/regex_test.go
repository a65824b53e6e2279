package meter

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestToPostfixSimpleConcat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bahr.meter")
	defer teardown()
	//
	got, err := ToPostfix("=-")
	if err != nil {
		t.Fatal(err)
	}
	want := "=-."
	if string(got) != want {
		t.Fatalf("expected %q, got %q", want, string(got))
	}
}

func TestToPostfixAlternationLowestPrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bahr.meter")
	defer teardown()
	//
	got, err := ToPostfix("=|-_")
	if err != nil {
		t.Fatal(err)
	}
	want := "=-_.|"
	if string(got) != want {
		t.Fatalf("expected %q, got %q", want, string(got))
	}
}

func TestToPostfixGroupingOverridesPrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bahr.meter")
	defer teardown()
	//
	got, err := ToPostfix("(=|-)_")
	if err != nil {
		t.Fatal(err)
	}
	want := "=-|_."
	if string(got) != want {
		t.Fatalf("expected %q, got %q", want, string(got))
	}
}

func TestToPostfixUnaryOperator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bahr.meter")
	defer teardown()
	//
	got, err := ToPostfix("=*-")
	if err != nil {
		t.Fatal(err)
	}
	want := "=*-."
	if string(got) != want {
		t.Fatalf("expected %q, got %q", want, string(got))
	}
}

func TestToPostfixRejectsUnmatchedParen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bahr.meter")
	defer teardown()
	//
	if _, err := ToPostfix("(=-"); err == nil {
		t.Fatal("expected an error for an unclosed '('")
	}
	if _, err := ToPostfix("=-)"); err == nil {
		t.Fatal("expected an error for an unmatched ')'")
	}
}
