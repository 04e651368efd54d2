package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"

	"meeting-eval-service/internal/adapters/datasets"
	"meeting-eval-service/internal/adapters/repositories"
	"meeting-eval-service/internal/adapters/travel"
	"meeting-eval-service/internal/domain"
	"meeting-eval-service/internal/platform/db"
	"meeting-eval-service/internal/services"
)

func newRunCmd() *cobra.Command {
	var (
		dataPath string
		task     string
		save     bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate a dataset of model responses and print accuracy",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch task {
			case "meeting":
				return runMeeting(cmd.Context(), dataPath, save)
			case "calendar":
				return runCalendar(dataPath)
			case "trip":
				return runTrip(dataPath)
			}
			return fmt.Errorf("unknown task %q (want meeting, calendar, or trip)", task)
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "data/meeting_planning.json", "path to the dataset JSON file")
	cmd.Flags().StringVar(&task, "task", "meeting", "benchmark task: meeting, calendar, or trip")
	cmd.Flags().BoolVar(&save, "save", false, "persist per-sample results to postgres (DATABASE_URL)")

	return cmd
}

func runMeeting(ctx context.Context, dataPath string, save bool) error {
	samples, err := datasets.LoadMeetingDataset(dataPath)
	if err != nil {
		return err
	}

	var summary services.Summary
	evals := make([]domain.Evaluation, 0, len(samples))

	for _, sample := range samples {
		ev, err := services.EvaluateSample(sample, travel.NewMatrixProvider(sample.DistMatrix))
		if err != nil {
			return err
		}
		summary.Add(ev)
		evals = append(evals, ev)
	}

	for i, b := range summary.Buckets {
		fmt.Printf("Accuracy for %d people: %v\n", i+1, b.Accuracy())
	}
	fmt.Printf("Accuracy for all: %v\n", summary.Accuracy())

	if save {
		return saveResults(ctx, evals)
	}
	return nil
}

func runCalendar(dataPath string) error {
	samples, err := datasets.LoadCalendarDataset(dataPath)
	if err != nil {
		return err
	}

	overall, groups := services.CalendarReport(samples)
	fmt.Printf("Overall solve rate of %d samples: %v\n", len(samples), overall)
	for _, g := range groups {
		fmt.Printf(
			"Solve rate of %d people and %d days of %d samples: %v\n",
			g.NumPeople, g.NumDays, g.Samples, g.SolveRate(),
		)
	}
	return nil
}

func runTrip(dataPath string) error {
	samples, err := datasets.LoadTripDataset(dataPath)
	if err != nil {
		return err
	}

	fmt.Printf("EM Accuracy of %d samples: %v\n", len(samples), services.TripAccuracy(samples))
	return nil
}

func saveResults(ctx context.Context, evals []domain.Evaluation) error {
	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if databaseURL == "" {
		return fmt.Errorf("--save requires DATABASE_URL")
	}

	pg, err := db.OpenPostgres(databaseURL)
	if err != nil {
		return err
	}
	defer pg.Close()

	repo := repositories.NewSQLResultRepository(pg)
	if err := repo.SaveResults(ctx, evals); err != nil {
		return err
	}

	fmt.Printf("Saved %d results\n", len(evals))
	return nil
}
