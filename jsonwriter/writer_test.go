package jsonwriter

import (
	"errors"
	"testing"

	gojson "github.com/goccy/go-json"

	"github.com/michaeleberhardt310/mllwriter"
)

func TestNew_Defaults(t *testing.T) {
	wr := New()
	if wr.String() != "" {
		t.Errorf("content = %q, want empty", wr.String())
	}
	if wr.IndentSize() != 2 {
		t.Errorf("IndentSize() = %d, want 2", wr.IndentSize())
	}
}

func TestSingleTagUnsupported(t *testing.T) {
	wr := New()
	if err := wr.SingleTag("img"); !errors.Is(err, mllwriter.ErrUnsupported) {
		t.Errorf("SingleTag = %v, want ErrUnsupported", err)
	}
	if err := wr.SingleTagAttr("img", "style", "x"); !errors.Is(err, mllwriter.ErrUnsupported) {
		t.Errorf("SingleTagAttr = %v, want ErrUnsupported", err)
	}
}

func TestDualElements(t *testing.T) {
	wr := New()
	mllwriter.Must(wr.OpenTag(""))
	mllwriter.Must(wr.CloseTag())
	if wr.String() != "{\n}" {
		t.Errorf("content = %q, want %q", wr.String(), "{\n}")
	}

	wr.Reset()
	mllwriter.Must(wr.OpenTagAttr("", "Name", `"Mustermann"`))
	want := "{\n  \"Name\": \"Mustermann\""
	if wr.String() != want {
		t.Errorf("content = %q, want %q", wr.String(), want)
	}
}

func TestMixedEntries(t *testing.T) {
	wr := New()
	mllwriter.Must(wr.OpenTag(""))
	mllwriter.Must(wr.AddAttr("Name", `"Eberhardt"`))
	mllwriter.Must(wr.AddAttr("Vorname", `"Michael"`))
	mllwriter.Must(wr.OpenTag("Daten"))
	mllwriter.Must(wr.AddAttr("Geburtstag", `"03.10.1985"`))
	mllwriter.Must(wr.CloseTag())
	mllwriter.Must(wr.CloseTag())

	want := "{\n  \"Name\": \"Eberhardt\",\n  \"Vorname\": \"Michael\",\n  \"Daten\":\n  {\n    \"Geburtstag\": \"03.10.1985\"\n  }\n}"
	if wr.String() != want {
		t.Errorf("content = %q, want %q", wr.String(), want)
	}
}

func TestAddAttrs(t *testing.T) {
	props := mllwriter.NewProperty("Name", `"Eberhardt"`).Add("Alter", "35")

	wr := New()
	mllwriter.Must(wr.OpenTag(""))
	if err := wr.AddAttrs(props); err != nil {
		t.Fatalf("AddAttrs failed: %v", err)
	}
	mllwriter.Must(wr.CloseTag())

	want := "{\n  \"Name\": \"Eberhardt\",\n  \"Alter\": 35\n}"
	if wr.String() != want {
		t.Errorf("content = %q, want %q", wr.String(), want)
	}

	wr.Reset()
	if wr.String() != "" {
		t.Errorf("content after Reset = %q, want empty", wr.String())
	}
}

func TestTypedValues(t *testing.T) {
	wr := New()
	mllwriter.Must(wr.OpenTag(""))
	mllwriter.Must(wr.AddString("name", `say "hi"`))
	mllwriter.Must(wr.AddInt("count", 42))
	mllwriter.Must(wr.AddFloat("ratio", 3.5))
	mllwriter.Must(wr.AddBool("ok", true))
	mllwriter.Must(wr.AddNull("extra"))
	mllwriter.Must(wr.CloseTag())

	want := "{\n" +
		"  \"name\": \"say \\\"hi\\\"\",\n" +
		"  \"count\": 42,\n" +
		"  \"ratio\": 3.5,\n" +
		"  \"ok\": true,\n" +
		"  \"extra\": null\n" +
		"}"
	if wr.String() != want {
		t.Errorf("content = %q, want %q", wr.String(), want)
	}
}

func TestArrays(t *testing.T) {
	wr := New()
	mllwriter.Must(wr.OpenTag(""))
	mllwriter.Must(wr.OpenArray("items"))
	mllwriter.Must(wr.Element(`"a"`))
	mllwriter.Must(wr.AddValue("", "b"))
	mllwriter.Must(wr.CloseArray())
	mllwriter.Must(wr.CloseTag())

	want := "{\n  \"items\":\n  [\n    \"a\",\n    \"b\"\n  ]\n}"
	if wr.String() != want {
		t.Errorf("content = %q, want %q", wr.String(), want)
	}
}

func TestArrayOfObjects(t *testing.T) {
	wr := New()
	mllwriter.Must(wr.OpenArray(""))
	mllwriter.Must(wr.OpenTag(""))
	mllwriter.Must(wr.AddInt("id", 1))
	mllwriter.Must(wr.CloseTag())
	mllwriter.Must(wr.OpenTag(""))
	mllwriter.Must(wr.AddInt("id", 2))
	mllwriter.Must(wr.CloseTag())
	mllwriter.Must(wr.CloseArray())

	var parsed []map[string]any
	if err := gojson.Unmarshal([]byte(wr.String()), &parsed); err != nil {
		t.Fatalf("generated JSON does not parse: %v\n%s", err, wr.String())
	}
	if len(parsed) != 2 {
		t.Fatalf("parsed %d elements, want 2", len(parsed))
	}
}

func TestBlockMismatch(t *testing.T) {
	wr := New()
	if err := wr.CloseTag(); !errors.Is(err, mllwriter.ErrNoOpenBlock) {
		t.Errorf("CloseTag on empty stack = %v, want ErrNoOpenBlock", err)
	}
	if err := wr.CloseArray(); !errors.Is(err, mllwriter.ErrNoOpenBlock) {
		t.Errorf("CloseArray on empty stack = %v, want ErrNoOpenBlock", err)
	}

	mllwriter.Must(wr.OpenArray(""))
	if err := wr.CloseTag(); !errors.Is(err, mllwriter.ErrBlockMismatch) {
		t.Errorf("CloseTag on array = %v, want ErrBlockMismatch", err)
	}

	wr.Reset()
	mllwriter.Must(wr.OpenTag(""))
	if err := wr.CloseArray(); !errors.Is(err, mllwriter.ErrBlockMismatch) {
		t.Errorf("CloseArray on object = %v, want ErrBlockMismatch", err)
	}
}

func TestComments(t *testing.T) {
	wr := New()
	mllwriter.Must(wr.OpenTag(""))
	wr.AddComment("first")
	wr.AddComment("second")
	mllwriter.Must(wr.CloseTag())

	want := "{\n  \"_comment1\": \"first\",\n  \"_comment2\": \"second\"\n}"
	if wr.String() != want {
		t.Errorf("content = %q, want %q", wr.String(), want)
	}

	// The counter restarts after Reset.
	wr.Reset()
	mllwriter.Must(wr.OpenTag(""))
	wr.AddComment("again")
	mllwriter.Must(wr.CloseTag())
	want = "{\n  \"_comment1\": \"again\"\n}"
	if wr.String() != want {
		t.Errorf("content = %q, want %q", wr.String(), want)
	}
}

func TestGeneratedOutputParses(t *testing.T) {
	wr := New()
	mllwriter.Must(wr.OpenTag(""))
	mllwriter.Must(wr.AddString("First Name", "Muster"))
	mllwriter.Must(wr.AddString("Second Name", "Max"))
	mllwriter.Must(wr.OpenTag("Data"))
	mllwriter.Must(wr.AddString("Date of Birth", "05.06.1981"))
	mllwriter.Must(wr.AddInt("Number of Kids", 2))
	mllwriter.Must(wr.CloseTag())
	mllwriter.Must(wr.CloseTag())

	var parsed map[string]any
	if err := gojson.Unmarshal([]byte(wr.String()), &parsed); err != nil {
		t.Fatalf("generated JSON does not parse: %v\n%s", err, wr.String())
	}
	data, ok := parsed["Data"].(map[string]any)
	if !ok {
		t.Fatalf("Data member missing or wrong type: %#v", parsed)
	}
	if data["Date of Birth"] != "05.06.1981" {
		t.Errorf("Date of Birth = %v, want 05.06.1981", data["Date of Birth"])
	}
}
