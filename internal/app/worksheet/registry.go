package worksheet

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tutu-network/mathsheet/internal/app/addsub"
	"github.com/tutu-network/mathsheet/internal/domain"
)

// Registry maps task types to their generators.
type Registry struct {
	gens map[domain.TaskType]domain.TaskGenerator
}

// NewRegistry registers the built-in task types.
func NewRegistry(opts addsub.Options) (*Registry, error) {
	as, err := addsub.New(opts)
	if err != nil {
		return nil, fmt.Errorf("addsub: %w", err)
	}
	r := &Registry{gens: make(map[domain.TaskType]domain.TaskGenerator)}
	r.Register(domain.TaskAddSub, as)
	return r, nil
}

// Register adds or replaces the generator for a task type.
func (r *Registry) Register(t domain.TaskType, g domain.TaskGenerator) {
	r.gens[t] = g
}

// Get returns the generator for t.
func (r *Registry) Get(t domain.TaskType) (domain.TaskGenerator, error) {
	g, ok := r.gens[t]
	if !ok {
		return nil, fmt.Errorf("%q (known: %s): %w", t, strings.Join(r.names(), ", "), domain.ErrUnknownTaskType)
	}
	return g, nil
}

// Types returns the registered task types in name order.
func (r *Registry) Types() []domain.TaskType {
	out := make([]domain.TaskType, 0, len(r.gens))
	for _, n := range r.names() {
		out = append(out, domain.TaskType(n))
	}
	return out
}

// ParseTypes turns raw flag values into task types. Values may be repeated
// or comma separated; surrounding blanks are ignored. Every type must be
// registered.
func (r *Registry) ParseTypes(raw []string) ([]domain.TaskType, error) {
	var out []domain.TaskType
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part == "" {
				continue
			}
			t := domain.TaskType(part)
			if _, err := r.Get(t); err != nil {
				return nil, err
			}
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil, domain.ErrNoTaskTypes
	}
	return out, nil
}

func (r *Registry) names() []string {
	names := make([]string, 0, len(r.gens))
	for t := range r.gens {
		names = append(names, string(t))
	}
	sort.Strings(names)
	return names
}
