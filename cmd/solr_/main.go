// Плагин Munin для статистики Solr.
//
// Устанавливается символическими ссылками вида solr_<метрика>:
//
//	ln -s /usr/share/munin/plugins/solr_ /etc/munin/plugins/solr_query_result_cache_hit_ratio
//
// Munin запускает ссылку без аргументов (текущее значение), с аргументом
// config (описание графика), autoconf (проверка окружения) или suggest
// (список метрик).
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/25x8/munin-solr/internal/buildinfo"
	"github.com/25x8/munin-solr/internal/catalogue"
	"github.com/25x8/munin-solr/internal/config"
	"github.com/25x8/munin-solr/internal/logger"
	"github.com/25x8/munin-solr/internal/navigator"
	"github.com/25x8/munin-solr/internal/plugin"
	"github.com/25x8/munin-solr/internal/transport"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage error")

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

// run выполняет плагин и возвращает код завершения.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	defer logger.Sync()

	cmd := newCommand(args[0], stdout, stderr)
	err := cmd.Run(ctx, args)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage):
		fmt.Fprintf(stderr, "error: %v\n\n%s", err, usage(cmd.Name))
		return exitUsage
	default:
		logger.Log.Error("Plugin failed", zap.Error(err))
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
}

// app - состояние, собранное в Before и общее для всех режимов.
type app struct {
	argv0  string
	stdout io.Writer
	plugin *plugin.Plugin
	err    error
}

func newCommand(argv0 string, stdout, stderr io.Writer) *cli.Command {
	a := &app{argv0: argv0, stdout: stdout}

	return &cli.Command{
		Name:            "solr_",
		Usage:           "Munin plugin reporting Solr statistics from admin/stats.jsp",
		Version:         buildinfo.String(),
		Writer:          stdout,
		ErrWriter:       stderr,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-file",
				Usage:   "load configuration variables from `FILE`",
				Sources: cli.EnvVars("SOLR_ENV_FILE"),
			},
			&cli.StringFlag{
				Name:  "metric",
				Usage: "metric identifier, overrides the one derived from the program name",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Before: a.setup,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Present() {
				return fmt.Errorf("%w: unknown mode %q", errUsage, cmd.Args().First())
			}
			return a.runMode(ctx, cmd, plugin.ModeFetch)
		},
		Commands: []*cli.Command{
			a.modeCommand(plugin.ModeFetch),
			a.modeCommand(plugin.ModeDescribe),
			a.modeCommand(plugin.ModeProbe),
			a.modeCommand(plugin.ModeList),
		},
	}
}

var modeUsage = map[plugin.Mode]string{
	plugin.ModeFetch:    "print the current value of the metric",
	plugin.ModeDescribe: "print the graph configuration of the metric",
	plugin.ModeProbe:    "report whether the plugin can run here",
	plugin.ModeList:     "list all supported metric identifiers",
}

func (a *app) modeCommand(mode plugin.Mode) *cli.Command {
	return &cli.Command{
		Name:  string(mode),
		Usage: modeUsage[mode],
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Present() {
				return fmt.Errorf("%w: unexpected argument %q", errUsage, cmd.Args().First())
			}
			return a.runMode(ctx, cmd, mode)
		},
	}
}

// setup загружает конфигурацию и собирает плагин. Ошибка конфигурации
// сохраняется: autoconf должен ответить "no (...)", а не упасть.
func (a *app) setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := config.Load(cmd.String("env-file"))
	if err != nil {
		a.err = fmt.Errorf("invalid configuration: %w", err)
		return ctx, nil
	}

	level := cfg.LogLevel
	if cmd.Bool("debug") {
		level = "debug"
	}
	if err := logger.Initialize(level); err != nil {
		a.err = fmt.Errorf("invalid log level %q: %w", level, err)
		return ctx, nil
	}

	a.plugin = plugin.New(
		catalogue.Build(cfg.QueryHandler),
		transport.NewHTTPClient(cfg.StatsURL()),
		navigator.New(),
	)

	logger.Log.Debug("Plugin configured",
		zap.String("url", cfg.StatsURL()),
		zap.String("query_handler", cfg.QueryHandler),
	)
	return ctx, nil
}

func (a *app) runMode(ctx context.Context, cmd *cli.Command, mode plugin.Mode) error {
	if a.err != nil {
		if mode == plugin.ModeProbe {
			_, err := fmt.Fprintln(a.stdout, plugin.ProbeResult{Reasons: []string{a.err.Error()}})
			return err
		}
		return a.err
	}

	id := ""
	if mode == plugin.ModeFetch || mode == plugin.ModeDescribe {
		id = a.metric(cmd)
		if id == "" {
			return fmt.Errorf("%w: no metric selected, run as solr_<metric> or pass --metric", errUsage)
		}
	}

	return a.plugin.Run(ctx, mode, a.stdout, id)
}

// metric возвращает идентификатор метрики: флаг --metric или имя запуска.
func (a *app) metric(cmd *cli.Command) string {
	if id := cmd.String("metric"); id != "" {
		return id
	}
	return plugin.ResolveIdentifier(a.argv0, plugin.InvocationPrefix)
}

func usage(name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s<metric> [mode]\n\nModes:\n", name)
	fmt.Fprintf(&b, "  %-9s same as %s\n", "(none)", plugin.ModeFetch)
	for _, m := range plugin.Modes {
		fmt.Fprintf(&b, "  %-9s %s\n", m, modeUsage[m])
	}
	fmt.Fprintf(&b, "\nRun %s --help for flags.\n", name)
	return b.String()
}
