package metadata

import (
	"reflect"
	"strings"
	"testing"

	"golang.org/x/text/unicode/norm"
)

func TestDefaultLabelsLookup(t *testing.T) {
	labels := DefaultLabels()
	for label, want := range map[string]Field{
		"제목":   FieldTitle,
		" 구분 ": FieldCategory,
		"초록":   FieldAbstract,
	} {
		got, ok := labels.Lookup(label)
		if !ok || got != want {
			t.Errorf("Lookup(%q) = %v, %v; want %v", label, got, ok, want)
		}
	}
	if _, ok := labels.Lookup("title"); ok {
		t.Error("expected English label to be unknown by default")
	}
}

func TestLookupMatchesDecomposedHangul(t *testing.T) {
	decomposed := norm.NFD.String(LabelTitle)
	if decomposed == LabelTitle {
		t.Fatal("test requires a decomposed form")
	}
	field, ok := DefaultLabels().Lookup(decomposed)
	if !ok || field != FieldTitle {
		t.Fatalf("expected NFD label to match title, got %v %v", field, ok)
	}
}

func TestNewLabelsCustomSet(t *testing.T) {
	labels, err := NewLabels([]string{"제목", "Title"}, []string{"구분", "Category"}, []string{"초록", "Abstract"})
	if err != nil {
		t.Fatalf("NewLabels: %v", err)
	}
	fields := ParseString("Title: English\nCategory: Physics\n초록: 혼용", labels)
	want := Fields{Title: "English", Category: "Physics", Abstract: "혼용"}
	if fields != want {
		t.Fatalf("got %+v, want %+v", fields, want)
	}
	if got := labels.For(FieldTitle); !reflect.DeepEqual(got, []string{"Title", "제목"}) {
		t.Fatalf("For(title) = %v", got)
	}
}

func TestNewLabelsRejectsConflicts(t *testing.T) {
	if _, err := NewLabels([]string{"x"}, []string{"x"}, nil); err == nil || !strings.Contains(err.Error(), "claimed") {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if _, err := NewLabels([]string{"a:b"}, nil, nil); err == nil {
		t.Fatal("expected separator error")
	}
}

func TestZeroLabelsBehaveAsDefaults(t *testing.T) {
	var labels Labels
	if field, ok := labels.Lookup(LabelAbstract); !ok || field != FieldAbstract {
		t.Fatalf("zero Labels lookup = %v %v", field, ok)
	}
	if got := labels.For(FieldCategory); !reflect.DeepEqual(got, []string{LabelCategory}) {
		t.Fatalf("zero Labels For = %v", got)
	}
}

func TestFieldString(t *testing.T) {
	if FieldTitle.String() != "title" || FieldCategory.String() != "category" || FieldAbstract.String() != "abstract" {
		t.Fatal("unexpected field names")
	}
}
