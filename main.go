package main

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"time"

	"github.com/ProsperityMC/bubblesort/internal/bubble"
	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

type cli struct {
	Conf     string `short:"c" type:"path" help:"Path to the config file."`
	LogLevel string `help:"Log level: debug, info, warn or error."`

	Run   runCmd   `cmd:"" default:"withargs" help:"Shuffle and sort a generated list of integers."`
	Serve serveCmd `cmd:"" help:"Serve sort runs over HTTP."`
}

type runCmd struct {
	Items    string             `arg:"" optional:"" help:"Number of items in the list. Prompted for when omitted."`
	Seed     *int64             `help:"Seed for the shuffle. Time based when omitted."`
	Shuffle  bubble.ShuffleMode `help:"Shuffle algorithm: biased or uniform."`
	Debug    bool               `short:"d" help:"Print the sorted list."`
	MaxItems int                `help:"Largest accepted list size."`
	Stats    bool               `help:"Count passes, comparisons and swaps while sorting."`
}

var shuffleMapper = kong.TypeMapper(reflect.TypeOf(bubble.ShuffleMode("")), kong.MapperFunc(func(ctx *kong.DecodeContext, target reflect.Value) error {
	var s string
	if err := ctx.Scan.PopValueInto("string", &s); err != nil {
		return err
	}
	m, err := bubble.ParseShuffleMode(s)
	if err != nil {
		return err
	}
	target.Set(reflect.ValueOf(m))
	return nil
}))

func newLogger(level string) (*log.Logger, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "BubbleSort",
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level '%s': %w", level, err)
	}
	logger.SetLevel(lvl)
	return logger, nil
}

func newParser(flags *cli, options ...kong.Option) (*kong.Kong, error) {
	return kong.New(flags, append([]kong.Option{
		kong.Name("bubblesort"),
		kong.Description("Sorts a shuffled list of integers with bubble sort and reports how long it took."),
		shuffleMapper,
	}, options...)...)
}

// setup loads the config and applies the global flags over it.
func setup(flags *cli) (Config, *log.Logger, error) {
	conf, err := loadConfig(flags.Conf)
	if err != nil {
		return conf, nil, err
	}
	if flags.LogLevel != "" {
		conf.LogLevel = flags.LogLevel
	}
	logger, err := newLogger(conf.LogLevel)
	return conf, logger, err
}

func main() {
	var flags cli
	parser, err := newParser(&flags)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	conf, logger, err := setup(&flags)
	parser.FatalIfErrorf(err)

	err = ctx.Run(conf, logger, &flags)
	if err != nil {
		logger.Fatal("Failed", "err", err)
	}
}

func (c *runCmd) Run(conf Config, logger *log.Logger) error {
	return c.run(conf, logger, os.Stdin, os.Stdout)
}

// options merges the flags over the config. Flags left at their zero value
// keep the configured setting.
func (c *runCmd) options(conf Config) (RunOptions, bool) {
	opts := RunOptions{
		Shuffle:  conf.Shuffle,
		MaxItems: conf.MaxItems,
		Count:    c.Stats,
	}
	if c.Shuffle != "" {
		opts.Shuffle = c.Shuffle
	}
	if c.MaxItems > 0 {
		opts.MaxItems = c.MaxItems
	}

	switch {
	case c.Seed != nil:
		opts.Seed = *c.Seed
	case conf.Seed != nil:
		opts.Seed = *conf.Seed
	default:
		opts.Seed = time.Now().UnixNano()
	}
	return opts, conf.Debug || c.Debug
}

func (c *runCmd) run(conf Config, logger *log.Logger, in io.Reader, out io.Writer) error {
	opts, debug := c.options(conf)
	opts.Shuffled = func() { printShuffled(out) }

	_, _ = fmt.Fprintln(out, bannerLine)

	var items int
	var err error
	if c.Items != "" {
		items, err = parseItemCount(c.Items)
	} else {
		items, err = promptItemCount(in, out)
	}
	if err != nil {
		return err
	}

	logger.Debug("Sorting", "items", items, "seed", opts.Seed, "shuffle", opts.Shuffle)
	report, err := runSort(items, opts)
	if err != nil {
		return err
	}
	logger.Debug("Sorted", "id", report.ID, "elapsed", report.Elapsed)

	printReport(out, report, debug)
	return nil
}
