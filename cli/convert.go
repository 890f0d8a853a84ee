package cli

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"github.com/autoware-viz/sceneconv/config"
	"github.com/autoware-viz/sceneconv/diagnostics"
	"github.com/autoware-viz/sceneconv/host"
	"github.com/autoware-viz/sceneconv/logging"
	"github.com/autoware-viz/sceneconv/ros"
	"github.com/autoware-viz/sceneconv/scene"
)

const logFileMaxSizeMB = 100

// newLogger returns the CLI logger and a func that releases its log file, if any.
func newLogger(c *cli.Context) (logging.Logger, func()) {
	logger := logging.NewBlankLogger("sceneconv")
	logger.AddCore(logging.NewWriterCore(c.App.ErrWriter, true))
	if !c.Bool(debugFlag) {
		logger.SetLevel(logging.INFO)
	}
	closeFn := func() {}
	if path := c.String(logFileFlag); path != "" {
		core, closer := logging.NewFileCore(path, logFileMaxSizeMB)
		logger.AddCore(core)
		closeFn = func() {
			if err := closer.Close(); err != nil {
				warningf(c.App.ErrWriter, "failed to close log file: %v", err)
			}
		}
	}
	return logger, closeFn
}

// loadConfig reads the --config file, or builds the default config when none is given.
func loadConfig(c *cli.Context, logger logging.Logger) (*config.Config, error) {
	path := c.String(configFlag)
	if path != "" {
		return config.Read(c.Context, path, logger)
	}
	cfg := &config.Config{Topics: config.DefaultTopics(), Diagnostics: diagnostics.ResultTopics}
	if err := cfg.Ensure(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readInput(c *cli.Context, cfg *config.Config) ([]ros.Message, error) {
	bagPath, inputPath := c.String(bagFlag), c.String(inputFlag)
	switch {
	case bagPath != "" && inputPath != "":
		return nil, errors.Errorf("only one of --%s and --%s may be given", bagFlag, inputFlag)
	case bagPath != "":
		rb, err := ros.ReadBag(bagPath)
		if err != nil {
			return nil, err
		}
		return ros.MessagesForTopics(c.Context, rb, cfg.TopicNames())
	case inputPath != "":
		return readMessagesFile(c, inputPath)
	default:
		return nil, errors.Errorf("one of --%s or --%s is required", bagFlag, inputFlag)
	}
}

func readMessagesFile(c *cli.Context, path string) (messages []ros.Message, err error) {
	if path == "-" {
		return ros.ReadMessages(c.Context, c.App.Reader)
	}
	//nolint:gosec
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open input file")
	}
	defer func() {
		err = multierr.Combine(err, f.Close())
	}()
	return ros.ReadMessages(c.Context, f)
}

// ConvertAction runs every configured topic of the input through its converter.
func ConvertAction(c *cli.Context) (err error) {
	logger, closeLog := newLogger(c)
	defer closeLog()
	cfg, err := loadConfig(c, logger)
	if err != nil {
		return err
	}
	if name := c.String(vehicleFlag); name != "" {
		cfg.Vehicle = name
	}

	h, err := host.New(cfg, logger.Sublogger("host"))
	if err != nil {
		return err
	}
	defer h.Close()

	messages, err := readInput(c, cfg)
	if err != nil {
		return err
	}

	var out io.Writer = c.App.Writer
	if path := c.String(outputFlag); path != "" {
		//nolint:gosec
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "unable to create output file")
		}
		defer func() {
			err = multierr.Combine(err, f.Close())
		}()
		out = f
	}

	stats, err := h.Run(c.Context, messages, scene.NewEncoder(out))
	if err != nil {
		return err
	}
	logger.Infow("conversion done",
		"messages", len(messages),
		"converted", stats.Converted,
		"dropped", stats.Dropped,
		"unknown", stats.Unknown,
		"skipped", stats.Skipped,
		"diagnostics", stats.Diagnostics,
	)
	if stats.Dropped > 0 {
		warningf(c.App.ErrWriter, "%d of %d messages could not be converted", stats.Dropped, len(messages))
	}
	return nil
}
