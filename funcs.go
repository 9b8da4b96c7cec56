package templatetools

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/templatetools/pkg/collection"
	"github.com/dmitrymomot/templatetools/pkg/humanize"
	"github.com/dmitrymomot/templatetools/pkg/icelandic"
	"github.com/dmitrymomot/templatetools/pkg/link"
	"github.com/dmitrymomot/templatetools/pkg/logger"
)

// Funcs returns the template functions bound to l.
func (l *Library) Funcs() template.FuncMap {
	return template.FuncMap{
		"format_datetime":         l.formatDateTime,
		"format_date":             l.formatDate,
		"format_age":              l.formatAge,
		"format_phone":            l.formatPhone,
		"format_time_to_date":     l.formatTimeToDate,
		"readable_nr_of_comments": l.readableNrOfComments,
		"copyright":               l.copyright,
		"conditional_href":        l.conditionalHref,
		"get_list_of_objects":     l.getListOfObjects,
		"romanize":                romanize,
		"get_position_class":      positionClass,
		"age":                     newAge,
		"relative_date":           l.relativeDate,
		"forloop":                 newLoop,
	}
}

// {{ .Published | format_datetime }}
func (l *Library) formatDateTime(v any) (string, error) {
	t, ok, err := asTime(v)
	if !ok {
		return "", err
	}
	return l.humanizer.FormatDateTime(t), nil
}

// {{ .Date | format_date }} or {{ .Date | format_date "þgf" }}
func (l *Library) formatDate(args ...any) (string, error) {
	extra, value, err := splitPiped("format_date", args, 1)
	if err != nil {
		return "", err
	}

	c := icelandic.Nominative
	if len(extra) == 1 {
		s, ok := extra[0].(string)
		if !ok {
			return "", fmt.Errorf("%w: format_date case must be a string, got %T", ErrInvalidArgument, extra[0])
		}
		if c, err = icelandic.ParseCase(s); err != nil {
			return "", err
		}
	}

	t, ok, err := asTime(value)
	if !ok {
		return "", err
	}
	return l.humanizer.FormatDate(t, c), nil
}

// {{ age 21 0 2 | format_age }}
func (l *Library) formatAge(v any) (string, error) {
	switch a := v.(type) {
	case humanize.Age:
		return l.humanizer.FormatAge(a), nil
	case *humanize.Age:
		if a == nil {
			return "", nil
		}
		return l.humanizer.FormatAge(*a), nil
	case []int:
		if len(a) == 3 {
			return l.humanizer.FormatAge(humanize.Age{Years: a[0], Months: a[1], Days: a[2]}), nil
		}
	}
	return "", fmt.Errorf("%w: format_age expects (years, months, days), got %T", ErrInvalidArgument, v)
}

func newAge(years, months, days int) humanize.Age {
	return humanize.Age{Years: years, Months: months, Days: days}
}

// {{ .Phone | format_phone }} or {{ .Phone | format_phone "en" }}
//
// Without a language the site's LanguageCode applies.
func (l *Library) formatPhone(args ...string) (string, error) {
	switch len(args) {
	case 1:
		return humanize.FormatPhone(args[0], l.settings.LanguageCode), nil
	case 2:
		return humanize.FormatPhone(args[1], args[0]), nil
	default:
		return "", fmt.Errorf("%w: format_phone takes 1 or 2 arguments, got %d", ErrInvalidArgument, len(args))
	}
}

// {{ .Deadline | relative_date "Skil" | format_time_to_date }}
func (l *Library) formatTimeToDate(v any) (string, error) {
	switch r := v.(type) {
	case humanize.RelativeDate:
		return l.humanizer.FormatRelativeDate(r), nil
	case *humanize.RelativeDate:
		if r == nil {
			return "", nil
		}
		return l.humanizer.FormatRelativeDate(*r), nil
	default:
		return "", fmt.Errorf("%w: format_time_to_date expects a relative date, got %T", ErrInvalidArgument, v)
	}
}

func (l *Library) relativeDate(prefix string, target any) (humanize.RelativeDate, error) {
	t, ok, err := asTime(target)
	if !ok {
		if err == nil {
			err = fmt.Errorf("%w: relative_date target is nil", ErrInvalidArgument)
		}
		return humanize.RelativeDate{}, err
	}
	return humanize.NewRelativeDate(l.now(), t, prefix), nil
}

// {{ .CommentCount | readable_nr_of_comments }}
func (l *Library) readableNrOfComments(v any) (string, error) {
	n, ok := asInt(v)
	if !ok {
		return "", fmt.Errorf("%w: readable_nr_of_comments expects an integer, got %T", ErrInvalidArgument, v)
	}
	return l.humanizer.Comments(n), nil
}

// {{ copyright }}
func (l *Library) copyright() string {
	return l.humanizer.Copyright(l.settings.CreatedYear)
}

// {{ conditional_href .Request "Fréttir" "news" }}
//
// Renders nothing when the request is missing or the name cannot be reversed.
func (l *Library) conditionalHref(r *http.Request, title, name string, params ...string) (template.HTML, error) {
	if r == nil {
		l.logger.Debug("conditional_href without request", slog.String("url_name", name))
		return "", nil
	}

	ctx := logger.WithPath(r.Context(), r.URL.Path)
	lk, err := link.Resolve(l.resolver, r.URL.Path, title, name, params...)
	if err != nil {
		l.logger.DebugContext(ctx, "conditional_href reverse failed",
			slog.String("url_name", name),
			slog.String("error", err.Error()),
		)
		return "", nil
	}

	var b strings.Builder
	if err := link.Component(lk).Render(ctx, &b); err != nil {
		return "", err
	}
	return template.HTML(b.String()), nil
}

// {{ $articles := get_list_of_objects "news" "article" }}
// {{ $drafts := get_list_of_objects .Request "news" "article" "drafts" }}
func (l *Library) getListOfObjects(args ...any) ([]any, error) {
	ctx := context.Background()
	if len(args) > 0 {
		switch c := args[0].(type) {
		case context.Context:
			ctx, args = c, args[1:]
		case *http.Request:
			ctx, args = c.Context(), args[1:]
		}
	}

	bits := []string{"get_list_of_objects"}
	for _, a := range args {
		s, ok := a.(string)
		if !ok {
			return nil, fmt.Errorf("%w: get_list_of_objects arguments must be strings, got %T", ErrInvalidArgument, a)
		}
		bits = append(bits, s)
	}
	if len(bits) == 3 {
		bits = append(bits, collection.DefaultManager)
	}
	bits = append(bits, "as", "objects")

	node, err := l.registry.ParseTokens(bits)
	if err != nil {
		return nil, err
	}
	return l.registry.All(ctx, node.App, node.Model, node.Manager)
}

// {{ .Number | romanize }} or {{ .Number | romanize false }}
//
// Non-integer values are returned unchanged.
func romanize(args ...any) (any, error) {
	extra, value, err := splitPiped("romanize", args, 1)
	if err != nil {
		return nil, err
	}

	upper := true
	if len(extra) == 1 {
		b, ok := extra[0].(bool)
		if !ok {
			return nil, fmt.Errorf("%w: romanize flag must be a bool, got %T", ErrInvalidArgument, extra[0])
		}
		upper = b
	}

	n, ok := asInt(value)
	if !ok {
		return value, nil
	}
	return humanize.Romanize(n, upper)
}

type positioned interface {
	First() bool
	Last() bool
}

// {{ forloop $i (len .Items) | get_position_class }}
func positionClass(v any) (string, error) {
	switch p := v.(type) {
	case positioned:
		return humanize.PositionClass(p.First(), p.Last()), nil
	case map[string]bool:
		return humanize.PositionClass(p["first"], p["last"]), nil
	case map[string]any:
		first, _ := p["first"].(bool)
		last, _ := p["last"].(bool)
		return humanize.PositionClass(first, last), nil
	default:
		return "", fmt.Errorf("%w: get_position_class expects first/last flags, got %T", ErrInvalidArgument, v)
	}
}

func newLoop(index, length int) humanize.Loop {
	return humanize.Loop{Index: index, Length: length}
}
