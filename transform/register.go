package transform

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

var (
	mu sync.RWMutex
	d  = map[string]Transform{}
)

var ErrTransformExists = errors.New("transform exists")

func Register(t Transform) error {
	mu.Lock()
	defer mu.Unlock()
	_, present := d[t.String()]
	if present {
		return fmt.Errorf("%s: %w", t, ErrTransformExists)
	}
	d[t.String()] = t
	return nil
}

func init() {
	Register(Swap())
	Register(LegacySwap())
	Register(Reverse())
	Register(Base64())
}

func Lookup(s string) Transform {
	mu.RLock()
	defer mu.RUnlock()
	return d[s]
}

// Names returns the registered transform names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]string, 0, len(d))
	for name := range d {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}

// ParseList resolves a comma separated list of transform names.
func ParseList(v string) ([]Transform, error) {
	var res []Transform
	for _, name := range strings.Split(v, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		t := Lookup(name)
		if t == nil {
			return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknown, name, strings.Join(Names(), ", "))
		}
		res = append(res, t)
	}
	return res, nil
}
