/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package registry_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/cssvalues/internal/mapfs"
	"bennypowers.dev/cssvalues/registry"
	"bennypowers.dev/cssvalues/value"
)

func TestDefaultDatabase(t *testing.T) {
	db := registry.Default()
	assert.Same(t, db, registry.Default())
	assert.Greater(t, db.Len(), 50)

	names := db.Names()
	assert.IsNonDecreasing(t, names)

	for _, name := range names {
		p, err := db.Property(name)
		require.NoError(t, err)
		assert.Equal(t, name, p.Name)
	}
}

func TestPropertyQueries(t *testing.T) {
	db := registry.Default()

	tests := []struct {
		name      string
		known     bool
		inherited bool
		shorthand bool
	}{
		{"color", true, true, false},
		{"COLOR", true, true, false},
		{"width", true, false, false},
		{"margin", true, false, true},
		{"font-family", true, true, false},
		{"not-a-property", false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.known, db.IsKnownProperty(tt.name))
			assert.Equal(t, tt.inherited, db.IsInherited(tt.name))
			assert.Equal(t, tt.shorthand, db.IsShorthand(tt.name))
		})
	}

	_, err := db.Property("not-a-property")
	assert.ErrorIs(t, err, registry.ErrUnknownProperty)
}

func TestInitialValue(t *testing.T) {
	db := registry.Default()

	tests := []struct {
		property string
		want     string
	}{
		{"width", "auto"},
		{"margin-top", "0"},
		{"background-position", "0% 0%"},
		{"animation-duration", "0s"},
		{"color", "canvastext"},
	}
	for _, tt := range tests {
		t.Run(tt.property, func(t *testing.T) {
			v, ok := db.InitialValue(tt.property)
			require.True(t, ok)
			assert.Equal(t, tt.want, v.CSSText())
		})
	}

	t.Run("fresh values", func(t *testing.T) {
		a, _ := db.InitialValue("width")
		b, _ := db.InitialValue("width")
		assert.NotSame(t, a, b)
		assert.True(t, a.Equals(b))
	})

	t.Run("shorthand has none", func(t *testing.T) {
		_, ok := db.InitialValue("margin")
		assert.False(t, ok)
	})
}

func TestIdentifierValues(t *testing.T) {
	db := registry.Default()

	assert.True(t, db.IsIdentifierValue("width", "auto"))
	assert.True(t, db.IsIdentifierValue("display", "FLEX"))
	assert.True(t, db.IsIdentifierValue("list-style-type", "decimal"))
	assert.False(t, db.IsIdentifierValue("width", "flex"))
	assert.False(t, db.IsIdentifierValue("unknown", "auto"))
}

func TestKeywordCaseWithRegistry(t *testing.T) {
	f := value.NewFactory(value.WithRegistry(registry.Default()))

	v, err := f.ParsePropertyFor("display", "FLEX")
	require.NoError(t, err)
	assert.Equal(t, "flex", v.CSSText())

	v, err = f.ParsePropertyFor("animation-name", "FadeIn")
	require.NoError(t, err)
	assert.Equal(t, "FadeIn", v.CSSText())
}

func TestShorthands(t *testing.T) {
	db := registry.Default()

	assert.Equal(t, []string{"margin-top", "margin-right", "margin-bottom", "margin-left"}, db.Longhands("margin"))
	assert.Nil(t, db.Longhands("width"))

	assert.Equal(t, []string{"border-color"}, db.Shorthands("border-top-color"))
	assert.True(t, db.IsShorthandSubproperty("padding-left"))
	assert.False(t, db.IsShorthandSubproperty("z-index"))
	assert.True(t, db.IsShorthandSubpropertyOf("flex", "FLEX-GROW"))
	assert.False(t, db.IsShorthandSubpropertyOf("flex", "margin-top"))

	t.Run("longhands are copies", func(t *testing.T) {
		l := db.Longhands("margin")
		l[0] = "changed"
		assert.Equal(t, "margin-top", db.Longhands("margin")[0])
	})
}

func TestSyntaxMatching(t *testing.T) {
	db := registry.Default()

	tests := []struct {
		property string
		text     string
		want     bool
	}{
		{"width", "10px", true},
		{"width", "auto", true},
		{"width", "red", false},
		{"color", "red", true},
		{"color", "#fff", true},
		{"opacity", "50%", true},
		{"z-index", "2", true},
		{"z-index", "2.5", false},
		{"transition-duration", "1s, 200ms", true},
		{"padding", "1px 2px 3px", true},
		{"transform", "rotate(45deg) scale(2)", true},
	}
	for _, tt := range tests {
		t.Run(tt.property+" "+tt.text, func(t *testing.T) {
			def, ok := db.Syntax(tt.property)
			require.True(t, ok)
			v, err := value.ParsePropertyFor(tt.property, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, value.MatchSyntax(v, def))
		})
	}

	_, ok := db.Syntax("font-family")
	assert.False(t, ok)
}

func TestSuggest(t *testing.T) {
	db := registry.Default()

	assert.Equal(t, "color", db.Suggest("colr"))
	assert.Equal(t, "z-index", db.Suggest("zindex"))
	assert.Empty(t, db.Suggest("something-entirely-different"))
}

func TestParse(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		db, err := registry.Parse([]byte(`
properties:
  - name: --brand
    initial: red
    inherited: true
    syntax: "<color>"
`))
		require.NoError(t, err)
		assert.True(t, db.IsInherited("--brand"))
	})

	t.Run("json with comments", func(t *testing.T) {
		db, err := registry.Parse([]byte(`{
  // custom layout property
  "properties": [
    {"name": "gutter", "initial": "1rem", "syntax": "<length>",},
  ],
}`))
		require.NoError(t, err)
		def, ok := db.Syntax("gutter")
		require.True(t, ok)
		assert.Equal(t, "<length>", def.String())
	})

	errs := []struct {
		name string
		doc  string
	}{
		{"malformed", "properties: [\n"},
		{"missing name", "properties:\n  - initial: auto\n"},
		{"bad syntax", "properties:\n  - name: x\n    syntax: \"<bogus>\"\n"},
		{"bad initial", "properties:\n  - name: x\n    initial: \"a(\"\n"},
	}
	for _, tt := range errs {
		t.Run(tt.name, func(t *testing.T) {
			_, err := registry.Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, registry.ErrInvalidRegistry)
		})
	}
}

func TestMerge(t *testing.T) {
	extra, err := registry.Parse([]byte("properties:\n  - name: width\n    initial: 10px\n  - name: gutter\n    initial: 1rem\n"))
	require.NoError(t, err)

	merged := registry.Default().Merge(extra)
	v, ok := merged.InitialValue("width")
	require.True(t, ok)
	assert.Equal(t, "10px", v.CSSText())
	assert.True(t, merged.IsKnownProperty("gutter"))
	assert.True(t, merged.IsKnownProperty("color"))

	v, _ = registry.Default().InitialValue("width")
	assert.Equal(t, "auto", v.CSSText())
}

type fakeFetcher map[string]string

func (f fakeFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	body, ok := f[url]
	if !ok {
		return nil, errors.New("not found")
	}
	return []byte(body), nil
}

func TestLoad(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/extra.yaml", "properties:\n  - name: gutter\n    initial: 1rem\n")
	mfs.AddFile("/project/override.json", `{"properties": [{"name": "gutter", "initial": "2rem"}]}`)

	fetcher := fakeFetcher{
		"https://example.com/props.yaml": "properties:\n  - name: --remote\n    inherited: true\n",
	}

	t.Run("later sources win", func(t *testing.T) {
		db, err := registry.Load(context.Background(), mfs, nil, "/project/extra.yaml", "/project/override.json")
		require.NoError(t, err)
		v, ok := db.InitialValue("gutter")
		require.True(t, ok)
		assert.Equal(t, "2rem", v.CSSText())
	})

	t.Run("remote", func(t *testing.T) {
		db, err := registry.Load(context.Background(), mfs, fetcher, "https://example.com/props.yaml")
		require.NoError(t, err)
		assert.True(t, db.IsInherited("--remote"))
	})

	t.Run("remote without fetcher", func(t *testing.T) {
		_, err := registry.Load(context.Background(), mfs, nil, "https://example.com/props.yaml")
		assert.ErrorIs(t, err, registry.ErrRemoteSource)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := registry.Load(context.Background(), mfs, nil, "/project/missing.yaml")
		assert.Error(t, err)
	})

	t.Run("no sources", func(t *testing.T) {
		db, err := registry.Load(context.Background(), mfs, nil)
		require.NoError(t, err)
		assert.Same(t, registry.Default(), db)
	})
}

func TestHTTPFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			assert.Contains(t, r.Header.Get("User-Agent"), "cssvalues/")
			_, _ = w.Write([]byte("properties: []\n"))
		case "/big":
			_, _ = w.Write(make([]byte, 64))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := registry.NewHTTPFetcher(32)

	body, err := f.Fetch(context.Background(), srv.URL+"/ok")
	require.NoError(t, err)
	assert.Equal(t, "properties: []\n", string(body))

	_, err = f.Fetch(context.Background(), srv.URL+"/big")
	assert.ErrorContains(t, err, "exceeds")

	_, err = f.Fetch(context.Background(), srv.URL+"/missing")
	assert.ErrorContains(t, err, "404")
}
