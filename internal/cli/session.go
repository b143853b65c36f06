package cli

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/watchfire-io/abacus/internal/calc"
	"github.com/watchfire-io/abacus/internal/config"
	"github.com/watchfire-io/abacus/internal/models"
)

// session bundles what every command needs: settings, a logger and a
// calculator tagged with a fresh session id.
type session struct {
	settings *models.Settings
	calc     *calc.Calculator
	log      *logrus.Entry
	closer   io.Closer
}

func openSession(cmd *cobra.Command) (*session, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	logger, closer, err := config.OpenLog(debugFlag)
	if err != nil {
		// A calculator that can't log is still a calculator.
		fmt.Fprintln(cmd.ErrOrStderr(), styleWarning.Render("Warning:")+" "+err.Error())
		logger, closer = config.DiscardLogger(), io.NopCloser(nil)
	}

	id := uuid.NewString()
	log := logger.WithField("session", id)
	log.WithField("command", cmd.CommandPath()).Debug("session started")

	return &session{
		settings: settings,
		calc: calc.New(
			calc.WithSessionID(id),
			calc.WithFactorialLimit(settings.Limits.MaxFactorial),
			calc.WithLogger(log),
		),
		log:    log,
		closer: closer,
	}, nil
}

func (s *session) Close() {
	_ = s.closer.Close()
}
