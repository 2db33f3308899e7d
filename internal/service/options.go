package service

import (
	"github.com/tutu-network/mathsheet/internal/app/addsub"
	"github.com/tutu-network/mathsheet/internal/app/worksheet"
	"github.com/tutu-network/mathsheet/internal/config"
	"github.com/tutu-network/mathsheet/internal/domain"
	"github.com/tutu-network/mathsheet/internal/infra/pdf"
)

func addSubOptions(cfg config.Config) addsub.Options {
	return addsub.Options{
		DigitsMin: cfg.Task.DigitsMin,
		DigitsMax: cfg.Task.DigitsMax,
		Padding: addsub.Padding{
			RowsAbove:  cfg.Layout.RowsAbove,
			RowsBelow:  cfg.Layout.RowsBelow,
			ColsBefore: cfg.Layout.ColsBefore,
			ColsAfter:  cfg.Layout.ColsAfter,
		},
	}
}

func worksheetOptions(cfg config.Config, types []domain.TaskType) worksheet.Options {
	return worksheet.Options{
		Title:          cfg.Worksheet.Title,
		SolutionSuffix: cfg.Worksheet.SolutionSuffix,
		Days:           cfg.Worksheet.Days,
		TasksPerDay:    cfg.Worksheet.TasksPerDay,
		Types:          types,
	}
}

func pdfStyle(cfg config.Config) pdf.Style {
	s := pdf.DefaultStyle()
	s.CellSize = cfg.Layout.CellSize
	s.TaskSpacing = cfg.Layout.TaskSpacing
	s.TasksPerRow = cfg.Layout.TasksPerRow
	if cfg.Layout.FontSize > 0 {
		s.FontSize = cfg.Layout.FontSize
	}
	if cfg.Layout.CarryFontSize > 0 {
		s.CarryFontSize = cfg.Layout.CarryFontSize
	}
	return s
}
