// Package fileresolve resolves file notations (paths, file: URIs, open files)
// into absolute paths. The resolver is exposed to the rest of the module as an
// ordinary notation.Parser.
package fileresolve

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/reoring/notation"
)

// Path is a cleaned, absolute file path.
type Path string

// String returns the path.
func (p Path) String() string { return string(p) }

// Name returns the last element of the path.
func (p Path) Name() string { return filepath.Base(string(p)) }

// Ext returns the text after the last dot of the file name, or "" when the
// name has no dot.
func (p Path) Ext() string {
	name := p.Name()
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return name[i+1:]
}

// Resolver resolves relative paths against BaseDir. An empty BaseDir means
// the process working directory.
type Resolver struct {
	BaseDir string
}

// NewResolver returns a Resolver rooted at baseDir.
func NewResolver(baseDir string) *Resolver { return &Resolver{BaseDir: baseDir} }

// Resolve turns a path or file: URI into an absolute Path.
func (r *Resolver) Resolve(s string) (Path, error) {
	if isURI(s) {
		u, err := url.Parse(s)
		if err != nil {
			return "", &notation.InvalidNotationError{Notation: s, Reason: err.Error()}
		}
		return r.resolveURL(u)
	}
	return r.resolvePath(s)
}

func (r *Resolver) resolveURL(u *url.URL) (Path, error) {
	if u.Scheme != "file" {
		return "", &notation.InvalidNotationError{
			Notation: u.String(),
			Reason:   fmt.Sprintf("cannot convert URL with scheme '%s' to a file", u.Scheme),
		}
	}
	p := u.Path
	if p == "" {
		// file:relative/path
		p = u.Opaque
	}
	return r.resolvePath(p)
}

func (r *Resolver) resolvePath(p string) (Path, error) {
	if strings.TrimSpace(p) == "" {
		return "", &notation.InvalidNotationError{Notation: p, Reason: "path must not be empty"}
	}
	p = filepath.FromSlash(p)
	if !filepath.IsAbs(p) {
		base := r.BaseDir
		if base == "" {
			base = "."
		}
		p = filepath.Join(base, p)
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", &notation.InvalidNotationError{Notation: p, Reason: err.Error()}
	}
	return Path(abs), nil
}

// isURI reports whether s starts with a URI scheme of at least two letters,
// so Windows drive letters are treated as paths.
func isURI(s string) bool {
	i := strings.IndexByte(s, ':')
	if i < 2 {
		return false
	}
	for j := 0; j < i; j++ {
		c := s[j]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case j > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}

// namer is implemented by *os.File and similar handles.
type namer interface {
	Name() string
}

// AsParser returns a parser converting file notations into Paths. Only
// strings, URLs, Paths and named file handles are accepted; arbitrary
// fmt.Stringer values such as json.Number or time.Duration are not paths.
func (r *Resolver) AsParser() *notation.Parser[Path] {
	b := notation.ToType[Path]().TypeDisplayName("File")
	notation.FromString(b, notation.Described[string, Path](
		notation.TypeConverterFunc[string, Path](func(_ context.Context, s string) (Path, error) { return r.Resolve(s) }),
		"A String path or file: URI", "'src/main/java'", "'/usr/include'", "'file:/usr/include'"))
	notation.FromType(b, notation.Described[*url.URL, Path](
		notation.TypeConverterFunc[*url.URL, Path](func(_ context.Context, u *url.URL) (Path, error) { return r.resolveURL(u) }),
		"A URL instance with the file scheme", "'file:/usr/include'"))
	// Path also has a Name method, so it must precede the file handle candidate.
	notation.FromType(b, notation.Described[Path, Path](
		notation.TypeConverterFunc[Path, Path](func(_ context.Context, p Path) (Path, error) { return r.resolvePath(string(p)) }),
		"Instances of Path"))
	notation.FromType(b, notation.Described[namer, Path](
		notation.TypeConverterFunc[namer, Path](func(_ context.Context, f namer) (Path, error) { return r.resolvePath(f.Name()) }),
		"An open file handle"))
	return b.ToComposite()
}
