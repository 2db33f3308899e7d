package worksheet

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tutu-network/mathsheet/internal/domain"
)

// SolutionSuffix is appended to the base name of every solution file.
const SolutionSuffix = "_loesung"

// Base strips everything from the first "." of the file name on, keeping the
// directory: "out/week.3.pdf" becomes "out/week".
func Base(filename string) (string, error) {
	if strings.TrimSpace(filename) == "" {
		return "", domain.ErrEmptyFilename
	}
	dir, file := filepath.Split(filename)
	name, _, _ := strings.Cut(file, ".")
	if name == "" {
		return "", fmt.Errorf("%q: %w", filename, domain.ErrEmptyFilename)
	}
	return dir + name, nil
}

// OutputFiles names the task/solution PDF pair of each of count worksheets.
// A single worksheet gets "<base>.pdf"; several get "<base>_<NN>.pdf" with
// NN counted from zero and padded to the number of digits of count.
func OutputFiles(filename string, count int) ([]domain.OutputFiles, error) {
	if count < 1 {
		return nil, fmt.Errorf("count %d: %w", count, domain.ErrInvalidWorksheetCount)
	}
	base, err := Base(filename)
	if err != nil {
		return nil, err
	}
	if count == 1 {
		return []domain.OutputFiles{{
			Task:     base + ".pdf",
			Solution: base + SolutionSuffix + ".pdf",
		}}, nil
	}

	width := len(strconv.Itoa(count))
	out := make([]domain.OutputFiles, count)
	for n := range count {
		stem := fmt.Sprintf("%s_%0*d", base, width, n)
		out[n] = domain.OutputFiles{
			Task:     stem + ".pdf",
			Solution: stem + SolutionSuffix + ".pdf",
		}
	}
	return out, nil
}
