package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/tutu-network/mathsheet/internal/config"
	"github.com/tutu-network/mathsheet/internal/domain"
	"github.com/tutu-network/mathsheet/internal/service"
)

// loadConfig reads the --config file, or the default location.
func loadConfig() (config.Config, error) {
	if configPath == "" {
		return config.Load()
	}
	return config.LoadFile(configPath)
}

// newService builds a Service after mutate has applied flag overrides.
func newService(mutate func(*config.Config)) (*service.Service, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if mutate != nil {
		mutate(&cfg)
	}
	return service.NewWithConfig(cfg)
}

func joinTypes(types []domain.TaskType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}

// printRuns writes runs as an aligned table.
func printRuns(out io.Writer, runs []domain.Run) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSEED\tCOUNT\tTYPES\tDIGITS\tBASE\tCREATED")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%d-%d\t%s\t%s\n",
			r.ID,
			r.Seed,
			r.Count,
			joinTypes(r.TaskTypes),
			r.DigitsMin, r.DigitsMax,
			r.Base,
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}
	return w.Flush()
}
