package domdbg

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func TestDump(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(
		`<html><body><div id="a" style="color: red"><p class="x"></p></div></body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	if err := Dump(&sb, doc); err != nil {
		t.Fatalf("dump failed: %v", err)
	}
	out := sb.String()
	t.Logf("\n%s", out)
	for _, want := range []string{"div", `id="a"`, "style: color: red", `class="x"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected dump to contain %q, doesn't:\n%s", want, out)
		}
	}
	if err := Dump(&sb, nil); err == nil {
		t.Error("expected nil DOM to be rejected, wasn't")
	}
}
