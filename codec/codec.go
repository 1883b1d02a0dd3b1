// Package codec exposes the escaping formats behind a single registry,
// looked up by name or alias.
package codec

import (
	"sort"
	"strings"

	"github.com/BurntSushi/locker"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/sunwei/textescape/codec/htmlescape"
	"github.com/sunwei/textescape/codec/javaescape"
	"github.com/sunwei/textescape/codec/jsescape"
	"github.com/sunwei/textescape/codec/jsonescape"
	"github.com/sunwei/textescape/codec/xmlescape"
)

// Codec escapes and unescapes text for one target format using that
// format's default type and level.
type Codec interface {
	Name() string
	Escape(s string) string
	Unescape(s string) string
}

// Provider resolves codecs by name.
type Provider interface {
	Get(name string) Codec
	Names() []string
}

// NewProvider builds every format table up front and returns a registry
// over all of them.
func NewProvider() (Provider, error) {
	var g errgroup.Group
	g.Go(htmlescape.Prepare)
	g.Go(xmlescape.Prepare)
	g.Go(jsescape.Prepare)
	g.Go(jsonescape.Prepare)
	g.Go(javaescape.Prepare)
	if err := g.Wait(); err != nil {
		return nil, err
	}

	codecs := make(map[string]Codec)
	add := func(c Codec, aliases ...string) {
		aliases = append(aliases, c.Name())
		addCodec(codecs, c, aliases...)
	}

	add(funcCodec{"html", htmlescape.Escape, htmlescape.Unescape}, "html5")
	add(funcCodec{"html4", htmlescape.EscapeHTML4, htmlescape.Unescape})
	add(funcCodec{"xml", xmlescape.Escape, xmlescape.Unescape}, "xml10")
	add(funcCodec{"xml11", xmlescape.EscapeXML11, xmlescape.Unescape})
	add(funcCodec{"js", jsescape.Escape, jsescape.Unescape}, "javascript", "ecmascript")
	add(funcCodec{"json", jsonescape.Escape, jsonescape.Unescape})
	add(funcCodec{"java", javaescape.Escape, javaescape.Unescape})

	return &codecRegistry{codecs: codecs}, nil
}

var (
	defaultReady    atomic.Bool
	defaultProvider Provider
)

// Default returns the shared provider, building it on first use.
func Default() (Provider, error) {
	if defaultReady.Load() {
		return defaultProvider, nil
	}
	locker.Lock("codec.default")
	defer locker.Unlock("codec.default")
	if defaultReady.Load() {
		return defaultProvider, nil
	}
	p, err := NewProvider()
	if err != nil {
		return nil, err
	}
	defaultProvider = p
	defaultReady.Store(true)
	return p, nil
}

func addCodec(m map[string]Codec, c Codec, aliases ...string) {
	for _, alias := range aliases {
		m[strings.ToLower(alias)] = c
	}
}

type funcCodec struct {
	name     string
	escape   func(string) string
	unescape func(string) string
}

func (c funcCodec) Name() string             { return c.name }
func (c funcCodec) Escape(s string) string   { return c.escape(s) }
func (c funcCodec) Unescape(s string) string { return c.unescape(s) }

type codecRegistry struct {
	// Maps name (html, html5, js, javascript etc.) to a codec. Also used
	// for aliasing, so the same codec may be registered multiple times.
	// All names are lower case.
	codecs map[string]Codec
}

func (r *codecRegistry) Get(name string) Codec {
	return r.codecs[strings.ToLower(name)]
}

func (r *codecRegistry) Names() []string {
	names := make([]string, 0, len(r.codecs))
	for name := range r.codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
