package worksheet

import (
	"time"

	"github.com/google/uuid"

	"github.com/tutu-network/mathsheet/internal/domain"
)

// NewRun records the parameters needed to reproduce a generate invocation.
func NewRun(seed uint64, count int, types []domain.TaskType, digitsMin, digitsMax int, base string) domain.Run {
	return domain.Run{
		ID:        uuid.New().String(),
		Seed:      seed,
		Count:     count,
		TaskTypes: append([]domain.TaskType(nil), types...),
		DigitsMin: digitsMin,
		DigitsMax: digitsMax,
		Base:      base,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}
