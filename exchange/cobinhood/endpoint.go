package cobinhood

import (
	"net/url"
	"strings"

	"github.com/lukehollenback/cobinhood/exchange"
)

// Endpoint is a fixed HTTP verb paired with a path template. Templates may contain {name}
// placeholders in both the path and the query string.
type Endpoint struct {
	Method string
	Path   string
	Auth   bool
}

// Params maps placeholder names to the values that should be substituted for them. It is built per
// call and never retained.
type Params map[string]string

// WithFilter returns a copy of the endpoint with an optional query filter appended to its template
// and registers the filter's value in the provided params so that a single Expand resolves it. An
// empty value means that the filter was not requested, in which case the endpoint is returned
// untouched. With nil params, the (escaped) value is written into the template directly.
func (o Endpoint) WithFilter(name string, value string, params Params) Endpoint {
	if value == "" {
		return o
	}

	if strings.Contains(o.Path, "?") {
		o.Path += "&"
	} else {
		o.Path += "?"
	}

	if params == nil {
		o.Path += url.QueryEscape(name) + "=" + url.QueryEscape(value)

		return o
	}

	o.Path += name + "={" + name + "}"
	params[name] = value

	return o
}

// Expand substitutes every placeholder of the template with its (escaped) value from the provided
// params. A placeholder without a value yields a *exchange.MissingParamError.
func (o Endpoint) Expand(params Params) (string, error) {
	var (
		b       strings.Builder
		rest    = o.Path
		inQuery = false
	)

	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			break
		}

		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			break
		}

		end += start

		literal := rest[:start]
		if strings.Contains(literal, "?") {
			inQuery = true
		}

		b.WriteString(literal)

		name := rest[start+1 : end]

		value, ok := params[name]
		if !ok {
			return "", &exchange.MissingParamError{Name: name, Template: o.Path}
		}

		if inQuery {
			b.WriteString(url.QueryEscape(value))
		} else {
			b.WriteString(url.PathEscape(value))
		}

		rest = rest[end+1:]
	}

	b.WriteString(rest)

	return b.String(), nil
}
