// Package cli implements schedulectl, a terminal front end for the lesson
// scheduler. Each invocation builds an in-memory schedule from a seed file.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noah-isme/lesson-scheduler/internal/app"
	"github.com/noah-isme/lesson-scheduler/pkg/config"
	"github.com/noah-isme/lesson-scheduler/pkg/logger"
)

var version = "dev"

// SetVersion overrides the reported version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

type options struct {
	seedFile   string
	jsonOutput bool
	logLevel   string
}

type session struct {
	opts   options
	cfg    *config.Config
	app    *app.App
	logger *zap.Logger
}

// NewRootCommand builds the schedulectl command tree.
func NewRootCommand() *cobra.Command {
	s := &session{}

	root := &cobra.Command{
		Use:     "schedulectl",
		Version: version,
		Short:   "Inspect and plan a weekly lesson schedule",
		Long: `schedulectl loads professors, classrooms, courses and lessons from a YAML
seed file and answers questions about the resulting weekly schedule.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.init(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&s.opts.seedFile, "seed", "", "YAML seed file (defaults to SEED_FILE)")
	flags.BoolVar(&s.opts.jsonOutput, "json", false, "Output in JSON format")
	flags.StringVar(&s.opts.logLevel, "log-level", "warn", "Log level")

	root.AddGroup(
		&cobra.Group{ID: "schedule", Title: "Schedule:"},
		&cobra.Group{ID: "analytics", Title: "Analytics:"},
	)

	for _, cmd := range []*cobra.Command{newLessonsCommand(s), newCheckCommand(s), newExportCommand(s)} {
		cmd.GroupID = "schedule"
		root.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{newReportCommand(s), newAvailableCommand(s), newProfessorCommand(s)} {
		cmd.GroupID = "analytics"
		root.AddCommand(cmd)
	}
	return root
}

// Execute runs schedulectl against the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func (s *session) init(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log, err := logger.NewConsole(s.opts.logLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	s.cfg = cfg
	s.logger = log
	s.app = app.New(app.Options{Grid: app.GridFromConfig(cfg.Schedule), Logger: log})

	path := s.opts.seedFile
	if path == "" {
		path = cfg.Seed.File
	}
	if ctx == nil {
		ctx = context.Background()
	}
	summary, err := s.app.Seed(ctx, path)
	if err != nil {
		return err
	}
	for _, msg := range summary.Rejected {
		log.Warn("seed lesson skipped", zap.String("reason", msg))
	}
	return nil
}

// render prints v as JSON when --json is set and calls text otherwise.
func (s *session) render(w io.Writer, v interface{}, text func(io.Writer)) error {
	if s.opts.jsonOutput {
		return outputJSON(w, v)
	}
	text(w)
	return nil
}
