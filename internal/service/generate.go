package service

import (
	"fmt"
	"log"
	"time"

	"github.com/tutu-network/mathsheet/internal/app/worksheet"
	"github.com/tutu-network/mathsheet/internal/domain"
	"github.com/tutu-network/mathsheet/internal/infra/metrics"
)

// GenerateRequest describes one generate invocation.
type GenerateRequest struct {
	Filename string
	Count    int
	// Types overrides the configured task types when not empty.
	Types []string
	// Seed is used when HasSeed is set; otherwise a random seed is drawn.
	Seed    uint64
	HasSeed bool
	Verbose bool
	// NoHistory skips recording the run even when history is enabled.
	NoHistory bool
}

// GenerateResult reports what a generate invocation wrote.
type GenerateResult struct {
	Run        domain.Run
	Worksheets []domain.Worksheet
}

// Generate writes req.Count task/solution PDF pairs. All worksheets of one
// call are drawn from a single random stream seeded with the run seed.
func (s *Service) Generate(req GenerateRequest) (*GenerateResult, error) {
	if req.Count < 1 {
		return nil, fmt.Errorf("count %d: %w", req.Count, domain.ErrInvalidWorksheetCount)
	}

	raw := req.Types
	if len(raw) == 0 {
		raw = s.Config.Task.Types
	}
	types, err := s.Registry.ParseTypes(raw)
	if err != nil {
		return nil, err
	}

	var logger *log.Logger
	if req.Verbose {
		logger = log.New(log.Writer(), "", log.LstdFlags)
	}
	builder, err := worksheet.NewBuilder(s.Registry, worksheetOptions(s.Config, types), logger)
	if err != nil {
		return nil, err
	}

	files, err := worksheet.OutputFiles(req.Filename, req.Count)
	if err != nil {
		return nil, err
	}
	base, _ := worksheet.Base(req.Filename)

	seed := req.Seed
	if !req.HasSeed {
		seed = worksheet.RandomSeed()
	}
	rng := worksheet.NewRand(seed)

	result := &GenerateResult{
		Run: worksheet.NewRun(seed, req.Count, types, s.Config.Task.DigitsMin, s.Config.Task.DigitsMax, base),
	}
	result.Run.Files = files

	for i, f := range files {
		ws := builder.Build(rng, i)
		metrics.ObserveWorksheet("cli", ws)

		if err := s.render(f.Task, ws, false); err != nil {
			return nil, err
		}
		if err := s.render(f.Solution, ws, true); err != nil {
			return nil, err
		}
		result.Worksheets = append(result.Worksheets, ws)

		if req.Verbose {
			fmt.Fprintf(s.out, "Neues Aufgabenblatt: %s\n", f.Task)
			logger.Printf("[worksheet] %d: %d tasks on %d pages", i, ws.TaskCount(), s.Renderer.Pages(ws))
		}
	}

	if s.History != nil && !req.NoHistory {
		if err := s.History.InsertRun(result.Run); err != nil {
			// The PDFs are already written; a lost history entry is not fatal.
			log.Printf("[history] record run %s: %v", result.Run.ID, err)
		} else {
			metrics.RunsRecorded.Inc()
		}
	}
	return result, nil
}

func (s *Service) render(path string, ws domain.Worksheet, solution bool) error {
	doc := metrics.DocumentLabel(solution)
	start := time.Now()
	if err := s.Renderer.WriteFile(path, ws, solution); err != nil {
		metrics.RenderFailures.WithLabelValues(doc).Inc()
		return err
	}
	metrics.RenderLatency.WithLabelValues(doc).Observe(time.Since(start).Seconds())
	return nil
}
