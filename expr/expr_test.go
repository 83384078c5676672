package expr

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stybind/binding"
	"github.com/npillmayer/stybind/dom/style"
	"github.com/stretchr/testify/require"
)

func TestParsePrimaries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stybind.expr")
	defer teardown()
	//
	x, err := Parse("'red'")
	require.NoError(t, err)
	require.IsType(t, &Literal{}, x)
	require.Equal(t, style.Property("red"), x.Evaluate(NewContext(), nil))
	//
	x, err = Parse("theme.accentColor")
	require.NoError(t, err)
	ap, ok := x.(*AccessPath)
	require.True(t, ok, "expected an access path")
	require.Equal(t, "theme.accentColor", ap.Path())
}

func TestParseRejectsMalformedInput(t *testing.T) {
	for _, src := range []string{
		"", "  ", "'unterminated", "a..b", "1abc", "a ?", "a ? b", "x | ", "x | 2bad",
	} {
		if _, err := Parse(src); err == nil {
			t.Errorf("expected %q not to parse, did", src)
		}
	}
}

func TestAccessPathEvaluateAndAssign(t *testing.T) {
	ctx := NewContext()
	theme := NewContext()
	theme.Set("accent", "teal")
	ctx.SetChild("theme", theme)
	x, err := Parse("theme.accent")
	require.NoError(t, err)
	require.Equal(t, style.Property("teal"), x.Evaluate(ctx, nil))
	x.Assign(ctx, "coral", nil)
	require.Equal(t, style.Property("coral"), theme.Get("accent"))
	// a path through a missing child evaluates to the null style
	orphan, err := Parse("missing.key")
	require.NoError(t, err)
	require.Equal(t, style.NullStyle, orphan.Evaluate(ctx, nil))
}

func TestLiteralIsNotAssignable(t *testing.T) {
	x, err := Parse("'red'")
	require.NoError(t, err)
	require.Panics(t, func() {
		x.Assign(NewContext(), "blue", nil)
	})
}

func TestContextNotifiesOnChangeOnly(t *testing.T) {
	ctx := NewContext()
	po := ctx.PropertyObserver("k").(*propertyObserver)
	spy := &spySubscriber{}
	po.Subscribe("t", spy)
	ctx.Set("k", "a")
	ctx.Set("k", "a") // equal: silent
	ctx.Set("k", "b")
	if len(spy.values) != 2 || spy.values[0] != "a" || spy.values[1] != "b" {
		t.Errorf("expected notifications [a b], have %v", spy.values)
	}
	if ctx.PropertyObserver("k") != binding.PropertyObserver(po) {
		t.Error("expected the property observer to be stable per key")
	}
}

type spySubscriber struct {
	values []style.Property
}

func (s *spySubscriber) HandleChange(_ string, newValue, _ style.Property) {
	s.values = append(s.values, newValue)
}

// fake dependency tracker recording observed keys
type keyRecorder struct {
	keys []string
}

func (r *keyRecorder) ObserveProperty(_ binding.Observable, key string) {
	r.keys = append(r.keys, key)
}

func TestConditionalConnectsActiveBranchOnly(t *testing.T) {
	ctx := NewContext()
	ctx.Set("dark", "true")
	ctx.Set("a", "black")
	ctx.Set("b", "white")
	x, err := Parse("dark ? a : b")
	require.NoError(t, err)
	require.Equal(t, style.Property("black"), x.Evaluate(ctx, nil))
	rec := &keyRecorder{}
	x.Connect(rec, ctx)
	require.Equal(t, []string{"dark", "a"}, rec.keys)
	//
	ctx.Set("dark", "0")
	require.Equal(t, style.Property("white"), x.Evaluate(ctx, nil))
	rec = &keyRecorder{}
	x.Connect(rec, ctx)
	require.Equal(t, []string{"dark", "b"}, rec.keys)
}

func TestConverterPipe(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stybind.expr")
	defer teardown()
	//
	ctx := NewContext()
	ctx.Set("size", "12")
	lf := Converters{"pt": ptConverter{}}
	x, err := Parse("size | pt")
	require.NoError(t, err)
	require.Equal(t, style.Property("12pt"), x.Evaluate(ctx, lf))
	x.Assign(ctx, "8pt", lf)
	require.Equal(t, style.Property("8"), ctx.Get("size"))
	// dependencies pass through the pipe
	rec := &keyRecorder{}
	x.Connect(rec, ctx)
	require.Equal(t, []string{"size"}, rec.keys)
}

func TestUnknownConverterPanics(t *testing.T) {
	x, err := Parse("size | nosuch")
	require.NoError(t, err)
	require.Panics(t, func() {
		x.Evaluate(NewContext(), Converters{})
	})
}

// ptConverter appends/strips a "pt" unit.
type ptConverter struct{}

func (ptConverter) ToView(v style.Property) style.Property {
	if v.IsEmpty() {
		return v
	}
	return v + "pt"
}

func (ptConverter) FromView(v style.Property) style.Property {
	if len(v) > 2 && v[len(v)-2:] == "pt" {
		return v[:len(v)-2]
	}
	return v
}
