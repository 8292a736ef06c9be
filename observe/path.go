package observe

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Path is a parsed dot-delimited path expression.
type Path []string

func ParsePath(expr string) (Path, error) {
	if expr == "" {
		return nil, &PathError{Op: "parse", Path: expr, Err: ErrInvalidPath}
	}
	p := Path(strings.Split(expr, "."))
	for i, key := range p {
		if key == "" {
			return nil, &PathError{Op: "parse", Path: expr, Segment: i, Err: ErrInvalidPath}
		}
	}
	return p, nil
}

func (p Path) String() string {
	return strings.Join(p, ".")
}

// ResolvePath looks up expr in root one segment at a time. Nodes are read
// through their tracked accessors, so a resolution running inside a
// collection records every property it passes. Plain map[string]any and []any
// values are indexed without tracking.
func ResolvePath(root any, expr string) (any, error) {
	p, err := ParsePath(expr)
	if err != nil {
		return nil, err
	}
	return p.resolve(root, expr)
}

func (p Path) resolve(root any, expr string) (any, error) {
	v := root
	for i, key := range p {
		next, err := index(v, key)
		if err != nil {
			return nil, &PathError{Op: "resolve", Path: expr, Segment: i, Key: key, Err: err}
		}
		v = next
	}
	return v, nil
}

// AssignPath walks expr like ResolvePath and stores value at its last segment.
// Writes to a node go through Node.Set and notify its subscribers; the
// returned error then joins the failures of that pass.
//
// If an intermediate segment is missing or not a container nothing is
// assigned and a PathError wrapping ErrAssignmentSkipped is returned.
func AssignPath(root any, expr string, value any) error {
	p, err := ParsePath(expr)
	if err != nil {
		return err
	}

	parent := root
	last := len(p) - 1
	for i, key := range p[:last] {
		next, err := index(parent, key)
		if err != nil {
			return skipped(root, expr, i, key, err)
		}
		parent = next
	}

	key := p[last]
	switch c := parent.(type) {
	case *Node:
		return c.Set(key, value)
	case map[string]any:
		c[key] = value
		return nil
	case []any:
		i, ok := sliceIndex(c, key)
		if !ok {
			return skipped(root, expr, last, key, ErrNoSuchKey)
		}
		c[i] = value
		return nil
	default:
		return skipped(root, expr, last, key, ErrNotContainer)
	}
}

func skipped(root any, expr string, segment int, key string, cause error) error {
	err := &PathError{
		Op:      "assign",
		Path:    expr,
		Segment: segment,
		Key:     key,
		Err:     fmt.Errorf("%w: %w", ErrAssignmentSkipped, cause),
	}
	if n, ok := root.(*Node); ok {
		n.sys.logger.Warn("assignment skipped", slog.String("path", expr), slog.Int("segment", segment), slog.Any("err", cause))
	}
	return err
}

func index(container any, key string) (any, error) {
	switch c := container.(type) {
	case *Node:
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		return nil, ErrNoSuchKey
	case map[string]any:
		if v, ok := c[key]; ok {
			return v, nil
		}
		return nil, ErrNoSuchKey
	case []any:
		if i, ok := sliceIndex(c, key); ok {
			return c[i], nil
		}
		return nil, ErrNoSuchKey
	default:
		return nil, ErrNotContainer
	}
}

func sliceIndex(s []any, key string) (int, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= len(s) {
		return 0, false
	}
	return i, true
}
