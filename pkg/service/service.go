package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-pagesort/internal/logging"
	"github.com/mattsolo1/grove-pagesort/pkg/models"
	"github.com/mattsolo1/grove-pagesort/pkg/reorder"
	"github.com/mattsolo1/grove-pagesort/pkg/smartsort"
	"github.com/mattsolo1/grove-pagesort/pkg/source"
)

// ErrNotSorted is returned by Check when labels are not in smart-sort order.
var ErrNotSorted = errors.New("labels are not in smart-sort order")

// Service ties sources, configuration and the sort engine together for
// the commands.
type Service struct {
	Config *models.SortConfig
	Logger *logrus.Logger
	// Stdin is the reader used for the "-" source.
	Stdin io.Reader

	opts smartsort.Options
}

// New creates a service from a validated configuration.
func New(config *models.SortConfig, logger *logrus.Logger) (*Service, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	opts, err := config.SortOptions()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Service{
		Config: config,
		Logger: logger,
		Stdin:  os.Stdin,
		opts:   opts,
	}, nil
}

// ReadLabels resolves location to a source and reads its labels.
func (s *Service) ReadLabels(ctx context.Context, location string) ([]string, error) {
	src, err := source.Open(location, source.Options{
		Stdin:     s.Stdin,
		Workspace: s.Config.Index.Workspace,
	})
	if err != nil {
		return nil, err
	}

	labels, err := src.Labels(ctx)
	if err != nil {
		return nil, fmt.Errorf("read labels from %s: %w", src.Name(), err)
	}

	s.Logger.WithFields(logrus.Fields{
		"source": src.Name(),
		"count":  len(labels),
	}).Debug("read labels")
	return labels, nil
}

// Sort returns labels in smart-sort order.
func (s *Service) Sort(labels []string) []string {
	return smartsort.Sort(labels, smartsort.WithOptions(s.opts))
}

// Explain returns the segment and group structure of the sorted labels.
func (s *Service) Explain(labels []string) smartsort.Layout {
	return smartsort.Explain(labels, smartsort.WithOptions(s.opts))
}

// Plan returns how labels have to move to reach smart-sort order.
func (s *Service) Plan(labels []string) reorder.Result {
	return reorder.Plan(labels, s.Sort(labels))
}

// CheckResult describes the first position (1-based) where labels differ
// from their sorted order.
type CheckResult struct {
	Sorted   bool   `json:"sorted"`
	Position int    `json:"position,omitempty"`
	Got      string `json:"got,omitempty"`
	Want     string `json:"want,omitempty"`
}

// Check compares labels against their sorted order. The returned error
// wraps ErrNotSorted when they differ.
func (s *Service) Check(labels []string) (CheckResult, error) {
	sorted := s.Sort(labels)
	for i := range sorted {
		if sorted[i] != labels[i] {
			res := CheckResult{Position: i + 1, Got: labels[i], Want: sorted[i]}
			s.Logger.WithFields(logrus.Fields{
				"position": res.Position,
				"got":      labels[i],
				"want":     sorted[i],
			}).Debug("order mismatch")
			return res, fmt.Errorf("position %d: got %q, want %q: %w", res.Position, res.Got, res.Want, ErrNotSorted)
		}
	}
	return CheckResult{Sorted: true}, nil
}
