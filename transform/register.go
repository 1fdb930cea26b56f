package transform

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	mu sync.RWMutex
	d  = map[string]Symbol{}
)

var (
	ErrSymbolExists = errors.New("step exists")
	ErrUnknownStep  = errors.New("unknown step")
	ErrStepArgs     = errors.New("wrong number of step arguments")
)

func Register(s Symbol) error {
	mu.Lock()
	defer mu.Unlock()
	_, present := d[s.String()]
	if present {
		return fmt.Errorf("%s: %w", s, ErrSymbolExists)
	}
	d[s.String()] = s
	return nil
}

func init() {
	Register(SimplifyStep())
	Register(DifferentiateStep())
	Register(IntegrateStep())
	Register(SubstituteStep())
	Register(FactorStep())
}

// Lookup returns the step registered under s, or nil.
func Lookup(s string) Symbol {
	mu.RLock()
	defer mu.RUnlock()
	return d[s]
}

// Steps returns the registered steps ordered by name.
func Steps() []Symbol {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]Symbol, 0, len(d))
	for _, s := range d {
		res = append(res, s)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].String() < res[j].String() })
	return res
}
