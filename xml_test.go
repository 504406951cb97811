package tmxparser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func collect(t *testing.T, doc string) ([]string, error) {
	t.Helper()
	c := newCursor([]byte(doc), "doc")
	var got []string
	for {
		ev, err := c.next()
		if err != nil {
			return got, err
		}
		switch ev.kind {
		case evEOF:
			return got, nil
		case evStart:
			got = append(got, "start "+ev.elem.Name.Local)
		case evEmpty:
			got = append(got, "empty "+ev.elem.Name.Local)
		case evEnd:
			got = append(got, "end "+ev.end)
		case evText:
			got = append(got, "text "+string(ev.text))
		}
	}
}

func TestCursorEvents(t *testing.T) {
	got, err := collect(t, `<?xml version="1.0"?><!-- c --><a x="1"><b/><c></c>text<d><e /></d></a>`)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"start a",
		"empty b",
		"start c",
		"end c",
		"text text",
		"start d",
		"empty e",
		"end d",
		"end a",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestCursorEmptyFollowedByText(t *testing.T) {
	got, err := collect(t, "<a/>\n<b></b>")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"empty a", "text \n", "start b", "end b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestCursorMalformed(t *testing.T) {
	for _, doc := range []string{"<a><b></a>", "<a", "<a></b>", "<a>"} {
		if _, err := collect(t, doc); !errors.Is(err, ErrParse) {
			t.Errorf("%q: err = %v, want ErrParse", doc, err)
		}
	}
}

func TestWalkStopsAtSentinel(t *testing.T) {
	p := newParser("map.tmx", nil, true)
	c := newCursor([]byte(`<properties><property name="a" type="int" value="1"/></properties><after/>`), "doc")
	if ev, err := c.next(); err != nil || ev.kind != evStart {
		t.Fatalf("first event = %+v, %v", ev, err)
	}
	props := newProperties()
	if err := p.walk(c, target{kind: docProperties, props: &props}); err != nil {
		t.Fatal(err)
	}
	if props.Integers["a"] != 1 {
		t.Errorf("properties = %+v", props)
	}
	ev, err := c.next()
	if err != nil || ev.kind != evEmpty || ev.elem.Name.Local != "after" {
		t.Errorf("next event after walk = %+v, %v", ev, err)
	}
}

func TestCursorSkip(t *testing.T) {
	c := newCursor([]byte(`<a><b><a/><c>t</c></b><d/></a>`), "doc")
	for _, want := range []string{"a", "b"} {
		ev, err := c.next()
		if err != nil || ev.kind != evStart || ev.elem.Name.Local != want {
			t.Fatalf("event = %+v, %v, want start %s", ev, err, want)
		}
	}
	if err := c.skip(); err != nil {
		t.Fatal(err)
	}
	ev, err := c.next()
	if err != nil || ev.kind != evEmpty || ev.elem.Name.Local != "d" {
		t.Errorf("event after skip = %+v, %v", ev, err)
	}
}

func TestCursorSkipMalformed(t *testing.T) {
	c := newCursor([]byte(`<a><b>`), "doc")
	if _, err := c.next(); err != nil {
		t.Fatal(err)
	}
	if err := c.skip(); !errors.Is(err, ErrParse) {
		t.Errorf("err = %v, want ErrParse", err)
	}
}
