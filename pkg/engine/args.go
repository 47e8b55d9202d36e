package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/chazu/facet/pkg/graph"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value: treat as flag with nil.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// argReader pulls typed keyword values into destinations, keeping the
// first error and tracking which keywords were consumed.
type argReader struct {
	fn   string
	pa   kwArgs
	used map[string]bool
	args int // positional arguments consumed
	err  error
}

func newArgReader(fn string, args []zygo.Sexp) *argReader {
	return &argReader{fn: fn, pa: parseArgs(args), used: make(map[string]bool)}
}

func (r *argReader) take(key string) (zygo.Sexp, bool) {
	r.used[key] = true
	if r.err != nil {
		return nil, false
	}
	v, ok := r.pa.kw[key]
	return v, ok
}

// arg returns positional argument i and marks it consumed.
func (r *argReader) arg(i int) (zygo.Sexp, bool) {
	if i+1 > r.args {
		r.args = i + 1
	}
	if r.err != nil || i >= len(r.pa.positional) {
		return nil, false
	}
	return r.pa.positional[i], true
}

func (r *argReader) fail(key string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("%s: %s: %w", r.fn, key, err)
	}
}

// number stores the keyword's value in dst and reports whether it was
// given.
func (r *argReader) number(key string, dst *float64) bool {
	v, ok := r.take(key)
	if !ok {
		return false
	}
	f, err := toFloat64(v)
	if err != nil {
		r.fail(key, err)
		return false
	}
	*dst = f
	return true
}

func (r *argReader) integer(key string, dst *int) {
	if v, ok := r.take(key); ok {
		n, err := toInt(v)
		if err != nil {
			r.fail(key, err)
			return
		}
		*dst = n
	}
}

func (r *argReader) flag(key string, dst *bool) {
	if v, ok := r.take(key); ok {
		b, err := toBool(v)
		if err != nil {
			r.fail(key, err)
			return
		}
		*dst = b
	}
}

func (r *argReader) vec3(key string, dst **graph.Vec3) {
	if v, ok := r.take(key); ok {
		vec, err := toVec3(v)
		if err != nil {
			r.fail(key, err)
			return
		}
		*dst = &vec
	}
}

// scale accepts either a vec3 or a number applied to all three axes.
func (r *argReader) scale(key string, dst **graph.Vec3) {
	if v, ok := r.take(key); ok {
		if f, err := toFloat64(v); err == nil {
			*dst = &graph.Vec3{X: f, Y: f, Z: f}
			return
		}
		vec, err := toVec3(v)
		if err != nil {
			r.fail(key, fmt.Errorf("expected number or vec3, got %T (%s)", v, v.SexpString(nil)))
			return
		}
		*dst = &vec
	}
}

// done reports the first extraction error, or an error naming keywords
// the builtin does not understand or positional arguments it did not
// consume.
func (r *argReader) done() error {
	if r.err != nil {
		return r.err
	}
	if extra := len(r.pa.positional) - r.args; extra > 0 {
		return fmt.Errorf("%s: %d unexpected positional argument(s), starting with %s",
			r.fn, extra, r.pa.positional[r.args].SexpString(nil))
	}
	var unknown []string
	for k := range r.pa.kw {
		if !r.used[k] {
			unknown = append(unknown, ":"+k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("%s: unknown keyword %s", r.fn, strings.Join(unknown, ", "))
	}
	return nil
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toInt extracts an integer. Floats are accepted when they hold a whole
// number.
func toInt(s zygo.Sexp) (int, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return int(v.Val), nil
	case *zygo.SexpFloat:
		if v.Val == math.Trunc(v.Val) {
			return int(v.Val), nil
		}
		return 0, fmt.Errorf("expected integer, got %g", v.Val)
	}
	return 0, fmt.Errorf("expected integer, got %T (%s)", s, s.SexpString(nil))
}

// toBool extracts a boolean. A bare trailing keyword arrives as null and
// reads as true.
func toBool(s zygo.Sexp) (bool, error) {
	switch v := s.(type) {
	case *zygo.SexpBool:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return true, nil
		}
	}
	return false, fmt.Errorf("expected boolean, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toVec3 extracts a Vec3 from a sexpVec3.
func toVec3(s zygo.Sexp) (graph.Vec3, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	return graph.Vec3{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}
