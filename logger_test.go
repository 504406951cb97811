package tmxparser

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	return &buf
}

func TestSetLoggerNil(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger() = nil after SetLogger(nil)")
	}
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("nil logger should discard every level")
	}
}

func TestUnknownTagsAreLogged(t *testing.T) {
	buf := captureLogs(t, slog.LevelWarn)
	m := mustParse(t, `<map width="2" flavour="sweet">
 <mystery><layer name="hidden" width="0" height="0"/></mystery>
 <layer name="l" width="1" height="1" shiny="1"><data encoding="csv">3</data></layer>
 <properties><property name="f" type="float" value="1.5"/></properties>
</map>`)
	if m.Width != 2 || len(m.Layers) != 1 {
		t.Errorf("map = width %d, %d layers", m.Width, len(m.Layers))
	}
	if m.LayerByName("hidden") != nil {
		t.Error("layer inside an unknown tag was not skipped")
	}
	out := buf.String()
	for _, want := range []string{
		"unrecognized attribute", "attr=flavour", "attr=shiny",
		"unrecognized tag", "tag=mystery",
		"unrecognized property type", "type=float",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestIncludesAreLoggedAtDebug(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)
	if _, err := parseString(t, `<map/>`); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "including file") || !strings.Contains(buf.String(), "path=map.tmx") {
		t.Errorf("debug output = %q", buf.String())
	}
}
