package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/denismitr/florist/catalog"
	"github.com/denismitr/florist/flower"
	"github.com/denismitr/florist/set"
)

type CLI struct {
	Verbose   bool   `short:"v" help:"Enable verbose logging"`
	LogFormat string `name:"log-format" enum:"text,json" default:"text" env:"FLORIST_LOG_FORMAT" help:"Log output format (text, json)"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	slog.SetDefault(newLogger(os.Stderr, c.LogFormat, c.Verbose))
	return nil
}

func newLogger(w io.Writer, format string, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("florist"),
		kong.Description("Fills a flower catalog and prints it after every change."),
	)

	ctx.FatalIfErrorf(run(os.Stdout, slog.Default()))
}

func run(out io.Writer, logger *slog.Logger) error {
	rose, err := flower.NewRose(70, 8, 55)
	if err != nil {
		return err
	}
	tulip, err := flower.NewTulip(40, 7, 35)
	if err != nil {
		return err
	}
	lily, err := flower.NewLily(105, 9, 50)
	if err != nil {
		return err
	}

	c := catalog.New(catalog.WithLogger(logger))

	if _, err := c.Add(rose, tulip, lily); err != nil {
		return err
	}

	// duplicates are ignored
	if _, err := c.Add(rose, tulip); err != nil {
		return err
	}

	if err := printSection(out, c, "flowers after adding:"); err != nil {
		return err
	}

	c.Remove(tulip)
	if err := printSection(out, c, "\nflowers after removing the tulip:"); err != nil {
		return err
	}

	newRose, err := flower.NewRose(80, 7, 50)
	if err != nil {
		return err
	}
	newTulip, err := flower.NewTulip(35, 9, 40)
	if err != nil {
		return err
	}

	if _, err := c.AddAll(set.SliceOf(newRose, newTulip)); err != nil {
		return err
	}
	if err := printSection(out, c, "\nflowers after adding new ones:"); err != nil {
		return err
	}

	logger.Info("catalog ready", "size", c.Len(), "total_price", c.TotalPrice())

	_, err = fmt.Fprintf(out, "\ncatalog size: %d\n", c.Len())
	return err
}

func printSection(out io.Writer, c *catalog.Catalog, title string) error {
	if _, err := fmt.Fprintln(out, title); err != nil {
		return err
	}
	return c.Render(out)
}
