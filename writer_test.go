package mllwriter

import (
	"errors"
	"testing"
)

func TestProperty(t *testing.T) {
	prop := NewProperty("class", "superhero")
	if prop.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", prop.Len())
	}

	prop.Add("style", "width: auto")
	pairs := prop.Pairs()
	if len(pairs) != 2 {
		t.Fatalf("Pairs() length = %d, want 2", len(pairs))
	}
	if pairs[0] != (Pair{"class", "superhero"}) {
		t.Errorf("pairs[0] = %+v, want class=superhero", pairs[0])
	}
	if pairs[1] != (Pair{"style", "width: auto"}) {
		t.Errorf("pairs[1] = %+v, want style=width: auto", pairs[1])
	}
}

func TestProperty_Chaining(t *testing.T) {
	prop := NewProperty("a", "1").Add("b", "2").Add("c", "3")
	if prop.Len() != 3 {
		t.Errorf("Len() = %d, want 3", prop.Len())
	}
}

func TestProperty_PairsCopies(t *testing.T) {
	prop := NewProperty("class", "container")
	pairs := prop.Pairs()
	pairs[0].Value = "changed"
	if prop.Pairs()[0].Value != "container" {
		t.Error("Pairs() aliases the internal slice")
	}
}

func TestCheckName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"div", true},
		{"h1", true},
		{"img", true},
		{"td", true},
		{"123", true},
		{"", false},
		{"DIV", false},
		{"dIv", false},
		{"di v", false},
		{"<div>", false},
		{"class-name", false},
		{"näme", false},
	}

	for _, tt := range tests {
		err := CheckName(tt.name)
		if tt.valid && err != nil {
			t.Errorf("CheckName(%q) = %v, want nil", tt.name, err)
		}
		if !tt.valid && !errors.Is(err, ErrInvalidName) {
			t.Errorf("CheckName(%q) = %v, want ErrInvalidName", tt.name, err)
		}
	}
}

func TestMust(t *testing.T) {
	Must(nil) // must not panic

	defer func() {
		if recover() == nil {
			t.Error("Must(err) did not panic")
		}
	}()
	Must(errors.New("boom"))
}

func TestMustWriter(t *testing.T) {
	if got := MustWriter("ok", nil); got != "ok" {
		t.Errorf("MustWriter = %q, want ok", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustWriter with error did not panic")
		}
	}()
	MustWriter(0, errors.New("boom"))
}
