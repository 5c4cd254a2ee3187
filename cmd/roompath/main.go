// Command roompath computes a walking route between two grid cells of a room template.
//
// Usage:
//
//	roompath -room rooms/armoury.yaml -from -2,0 -to 1,0 [-format yaml] [-watch]
//
// Coordinates are world grid cells; waypoints are printed as world-space cell centres.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roompath/astar"
	"github.com/katalvlaran/roompath/internal/config"
	"github.com/katalvlaran/roompath/internal/logger"
	"github.com/katalvlaran/roompath/room"
)

var errNoRoom = errors.New("no room file given (use -room or room.file in config)")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "roompath:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("roompath", flag.ContinueOnError)
	var flags config.Flags
	flags.Register(fs)
	from := fs.String("from", "", "Start cell as x,y (world grid)")
	to := fs.String("to", "", "Target cell as x,y (world grid)")
	watch := fs.Bool("watch", false, "Recompute whenever the room file changes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(&flags)
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return err
	}
	defer logger.Sync()
	logger.Sugar.Debugf("config: %+v", cfg)

	if cfg.Room.File == "" {
		return errNoRoom
	}
	start, err := parsePoint(*from)
	if err != nil {
		return fmt.Errorf("-from: %w", err)
	}
	end, err := parsePoint(*to)
	if err != nil {
		return fmt.Errorf("-to: %w", err)
	}

	r, err := room.Load(cfg.Room.File, room.WithLogger(logger.Log))
	if err != nil {
		return err
	}
	opts := searchOptions(cfg)
	if err := solve(r, start, end, opts, cfg.Output.Format, stdout); err != nil {
		return err
	}
	if !*watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info("watching room file", zap.String("file", cfg.Room.File))

	return room.Watch(ctx, cfg.Room.File, func(r *room.Room, err error) {
		if err != nil {
			logger.Warn("room reload failed", zap.Error(err))
			return
		}
		if err := solve(r, start, end, opts, cfg.Output.Format, stdout); err != nil {
			logger.Warn("path search failed", zap.Error(err))
		}
	}, room.WithLogger(logger.Log))
}

// searchOptions maps the search config onto astar options.
func searchOptions(cfg *config.Config) []astar.Option {
	var opts []astar.Option
	if cfg.Search.StepBudget > 0 {
		opts = append(opts, astar.WithStepBudget(cfg.Search.StepBudget))
	}
	if cfg.Search.WeightedPenalty {
		opts = append(opts, astar.WithWeightedPenalty())
	}
	return opts
}

// report is the YAML shape of one search.
type report struct {
	Room      string             `yaml:"room"`
	From      astar.Point        `yaml:"from"`
	To        astar.Point        `yaml:"to"`
	Found     bool               `yaml:"found"`
	Cost      int                `yaml:"cost,omitempty"`
	Waypoints []astar.WorldPoint `yaml:"waypoints,omitempty"`
}

// solve runs one search and writes the result in the given format.
func solve(r *room.Room, start, end astar.Point, opts []astar.Option, format string, w io.Writer) error {
	p, err := r.BuildPath(start, end, opts...)
	if err != nil {
		return err
	}

	rep := report{Room: r.ID, From: start, To: end}
	if p != nil {
		rep.Found = true
		rep.Cost = p.Cost()
		rep.Waypoints = p.Points()
	}
	logger.Debug("search done", zap.String("room", r.ID), zap.Bool("found", rep.Found))

	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(rep)
	}

	if !rep.Found {
		_, err = fmt.Fprintf(w, "room %s: (%d,%d) -> (%d,%d) unreachable\n", r.ID, start.X, start.Y, end.X, end.Y)
		return err
	}
	if _, err := fmt.Fprintf(w, "room %s: (%d,%d) -> (%d,%d) cost=%d waypoints=%d\n",
		r.ID, start.X, start.Y, end.X, end.Y, rep.Cost, len(rep.Waypoints)); err != nil {
		return err
	}
	for _, wp := range rep.Waypoints {
		if _, err := fmt.Fprintf(w, "  %g %g\n", wp.X, wp.Y); err != nil {
			return err
		}
	}
	return nil
}

// parsePoint parses "x,y" into a grid cell.
func parsePoint(s string) (astar.Point, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return astar.Point{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return astar.Point{}, fmt.Errorf("bad x in %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return astar.Point{}, fmt.Errorf("bad y in %q: %w", s, err)
	}
	return astar.Point{X: x, Y: y}, nil
}
