// Package problem renders failures as RFC 7807 "problem details" documents.
//
// Translate is a pure function: it maps one apperr value to a status code, the
// application/problem+json content type, and a serialized body. It performs no
// I/O and no logging; callers at the HTTP boundary write the Response and emit
// any logs or metrics they need.
//
// Example body (DefaultOptions, internal error):
//
//	{
//	  "type": "https://example.com/probs/internal-server-error",
//	  "title": "Internal Server Error",
//	  "status": 500,
//	  "detail": "An unexpected error occurred",
//	  "instance": "/"
//	}
package problem

import (
	"encoding/json"
	"net/http"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tbourn/go-problem-server/internal/apperr"
)

// ContentType is the media type of every problem response.
const ContentType = "application/problem+json"

// Defaults reproduced by DefaultOptions. detail and instance are static unless
// Options asks otherwise.
const (
	DefaultTypeURI  = "https://example.com/probs/internal-server-error"
	DefaultTypeBase = "https://example.com/probs"
	DefaultDetail   = "An unexpected error occurred"
	DefaultInstance = "/"

	// BlankType is used for transport-level problems outside the taxonomy.
	BlankType = "about:blank"
)

// fallbackBody is written when serialization fails. Its status matches the
// 500 returned alongside it.
var fallbackBody = []byte(`{"type":"about:blank","title":"Internal Server Error","status":500,"detail":"An unexpected error occurred","instance":"/"}`)

// marshal is swapped in tests to exercise the fallback path.
var marshal = json.Marshal

// Details is the problem document. All five members are always present.
type Details struct {
	Type     string `json:"type" example:"https://example.com/probs/internal-server-error"`
	Title    string `json:"title" example:"Internal Server Error"`
	Status   int    `json:"status" example:"500"`
	Detail   string `json:"detail" example:"An unexpected error occurred"`
	Instance string `json:"instance" example:"/"`
}

// Options controls how the variable members of a problem are filled.
//
// Empty string fields fall back to the package defaults, so the zero value
// behaves like DefaultOptions.
type Options struct {
	TypeURI        string // used for every variant unless TypePerVariant
	TypeBase       string // prefix for per-variant types
	TypePerVariant bool

	Detail          string
	DetailFromCause bool // bad requests echo their message

	Instance         string
	InstanceFromPath bool
	Path             string // request path, used when InstanceFromPath
}

// DefaultOptions returns options that yield the fixed type, detail and
// instance values for every failure.
func DefaultOptions() Options {
	return Options{
		TypeURI:  DefaultTypeURI,
		TypeBase: DefaultTypeBase,
		Detail:   DefaultDetail,
		Instance: DefaultInstance,
	}
}

// WithPath returns a copy of o bound to a request path.
func (o Options) WithPath(path string) Options {
	o.Path = path
	return o
}

// Response is a fully rendered problem.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
	Details     Details
}

// Translate converts err into a problem response.
func Translate(err *apperr.Error, opts Options) Response {
	if err == nil {
		err = apperr.Wrap(nil)
	}
	kind := err.Kind()
	d := Details{
		Type:     opts.typeFor(kind),
		Title:    kind.Title(),
		Status:   kind.Status(),
		Detail:   opts.detailFor(err),
		Instance: opts.instance(),
	}
	return render(d)
}

// Generic builds a problem for a transport-level status such as 404, 405 or
// 429, which sit outside the handler taxonomy.
func Generic(status int, detail, instance string) Response {
	if instance == "" {
		instance = DefaultInstance
	}
	return render(Details{
		Type:     BlankType,
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: instance,
	})
}

func render(d Details) Response {
	body, err := marshal(d)
	if err != nil {
		return Response{
			Status:      http.StatusInternalServerError,
			ContentType: ContentType,
			Body:        fallbackBody,
			Details: Details{
				Type:     BlankType,
				Title:    apperr.KindInternal.Title(),
				Status:   http.StatusInternalServerError,
				Detail:   DefaultDetail,
				Instance: DefaultInstance,
			},
		}
	}
	return Response{
		Status:      d.Status,
		ContentType: ContentType,
		Body:        body,
		Details:     d,
	}
}

func (o Options) typeFor(k apperr.Kind) string {
	if o.TypePerVariant {
		base := strings.TrimRight(o.TypeBase, "/")
		if base == "" {
			base = DefaultTypeBase
		}
		return base + "/" + slug(k.Title())
	}
	if o.TypeURI == "" {
		return DefaultTypeURI
	}
	return o.TypeURI
}

func (o Options) detailFor(err *apperr.Error) string {
	if o.DetailFromCause && err.Kind() == apperr.KindBadRequest && err.Message() != "" {
		return err.Message()
	}
	if o.Detail == "" {
		return DefaultDetail
	}
	return o.Detail
}

func (o Options) instance() string {
	if o.InstanceFromPath && o.Path != "" {
		return o.Path
	}
	if o.Instance == "" {
		return DefaultInstance
	}
	return o.Instance
}

// slug lower-cases a title and joins its words with '-'.
func slug(title string) string {
	lower := cases.Lower(language.English).String(title)
	return strings.Join(strings.Fields(lower), "-")
}
