package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	appServices "github.com/yigit/academics/internal/app/services"
	"gopkg.in/yaml.v3"
)

// Data is the layout of a seed file. Courses refer to academics by their
// position in Academics.
type Data struct {
	Academics []AcademicSeed `yaml:"academics"`
	Courses   []CourseSeed   `yaml:"courses"`
}

// AcademicSeed describes one academic to create
type AcademicSeed struct {
	Name  string `yaml:"name"`
	Hobby string `yaml:"hobby"`
}

// CourseSeed describes one course and its enrolments
type CourseSeed struct {
	Creator     int    `yaml:"creator"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Staff       []int  `yaml:"staff"`
	Members     []int  `yaml:"members"`
}

// LoadFile reads and parses a seed file
func LoadFile(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &data, nil
}

// CreateDefaultData loads the seed file at path, if any, through the services.
// Entries that fail are logged and skipped; the joined errors are returned.
func CreateDefaultData(ctx context.Context, path string, svcs *appServices.Services, lgr zerolog.Logger) error {
	if path == "" {
		return nil
	}

	data, err := LoadFile(path)
	if err != nil {
		return err
	}

	lgr.Info().Str("path", path).Int("academics", len(data.Academics)).Int("courses", len(data.Courses)).Msg("Seeding registry...")
	return Apply(ctx, data, svcs, lgr)
}

// Apply creates the academics and courses described by data
func Apply(ctx context.Context, data *Data, svcs *appServices.Services, lgr zerolog.Logger) error {
	var finalErr error // To collect errors without stopping the process

	ids := make([]int64, len(data.Academics))
	for i, a := range data.Academics {
		id, err := svcs.Academic.CreateAcademic(ctx, a.Name, a.Hobby)
		if err != nil {
			lgr.Error().Err(err).Int("index", i).Msg("Error seeding academic")
			finalErr = errors.Join(finalErr, fmt.Errorf("academic %d: %w", i, err))
			continue
		}
		ids[i] = id
	}

	lookup := func(index int) (int64, error) {
		if index < 0 || index >= len(ids) || ids[index] == 0 {
			return 0, fmt.Errorf("no seeded academic at index %d", index)
		}
		return ids[index], nil
	}

	for i, c := range data.Courses {
		creator, err := lookup(c.Creator)
		if err != nil {
			lgr.Error().Err(err).Int("index", i).Msg("Error seeding course")
			finalErr = errors.Join(finalErr, fmt.Errorf("course %d: %w", i, err))
			continue
		}

		courseID, err := svcs.Course.CreateCourse(ctx, creator, c.Name, c.Description)
		if err != nil {
			lgr.Error().Err(err).Int("index", i).Msg("Error seeding course")
			finalErr = errors.Join(finalErr, fmt.Errorf("course %d: %w", i, err))
			continue
		}

		enrol := func(index int, isStaff bool) {
			academicID, err := lookup(index)
			if err == nil {
				err = svcs.Course.Enrol(ctx, academicID, courseID, isStaff)
			}
			if err != nil {
				lgr.Error().Err(err).Int("course", i).Int("academic", index).Msg("Error seeding enrolment")
				finalErr = errors.Join(finalErr, fmt.Errorf("course %d enrolment %d: %w", i, index, err))
			}
		}
		for _, index := range c.Staff {
			enrol(index, true)
		}
		for _, index := range c.Members {
			enrol(index, false)
		}
	}

	return finalErr
}
