package views

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/url"
	"strconv"
	"strings"
)

func Funcs() template.FuncMap {
	return template.FuncMap{
		"old":      old,
		"add":      func(a, b int) int { return a + b },
		"sub":      func(a, b int) int { return a - b },
		"hasInt":   hasInt,
		"money":    func(v float64) string { return formatThousands(int64(v)) },
		"pct":      func(v float64) string { return fmt.Sprintf("%+.1f%%", v) },
		"barWidth": barWidth,
		"json":     toJSON,
		"join":     strings.Join,
		"dict":     dict,
		"pageURL":  pageURL,
	}
}

// old prefers the value the operator just submitted over the stored one.
func old(values map[string]string, key string, fallback any) string {
	if v, ok := values[key]; ok {
		return v
	}
	if fallback == nil {
		return ""
	}
	switch v := fallback.(type) {
	case int:
		if v == 0 {
			return ""
		}
		return strconv.Itoa(v)
	case float64:
		if v == 0 {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(fallback)
}

// dict builds a map for passing several values to a partial.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

// pageURL links to another page of a list, keeping the search and filters.
func pageURL(base, query string, page int, extra any) string {
	v := url.Values{}
	if query != "" {
		v.Set("q", query)
	}
	v.Set("page", strconv.Itoa(page))
	switch m := extra.(type) {
	case map[string]string:
		for k, val := range m {
			v.Set(k, val)
		}
	case map[string]any:
		for k, val := range m {
			v.Set(k, fmt.Sprint(val))
		}
	}
	return base + "?" + v.Encode()
}

func hasInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func barWidth(v, max float64) int {
	if max <= 0 || v <= 0 {
		return 0
	}
	return int(v / max * 100)
}

func toJSON(v any) (template.JS, error) {
	b, err := json.Marshal(v)
	return template.JS(b), err
}

func formatThousands(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
