package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"

	coroutines "github.com/jostrzol/zpr-homework-coroutines"
)

type options struct {
	LogLevel string `long:"log-level" default:"info" description:"log level"`
	Max      int    `long:"max" default:"3" description:"number of values each counter produces"`
}

func main() {
	opts := options{}
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}

	level, err := log.ParseLevel(opts.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("invalid log level")
	}
	log.SetLevel(level)

	log.Info("--- infinite counter, pulled a fixed number of times ---")
	runInfiniteCounter(opts.Max)

	log.Info("--- eager counter with a completion value ---")
	runEagerCounter(opts.Max)

	log.Info("--- pull-driven counter ---")
	runPullCounter(opts.Max)
}

// runInfiniteCounter drives a never-ending computation for a fixed number of
// pulls and then releases it, unwinding the suspended body.
func runInfiniteCounter(pulls int) {
	counter := coroutines.New(func(c *coroutines.Context[int, coroutines.Void]) {
		for i := 0; ; i++ {
			log.WithField("i", i).Info("coroutine: counting")
			c.Yield(i)
		}
	}, coroutines.WithPanicPolicy(coroutines.Silence))
	defer counter.Close()

	for i := 0; i < pulls; i++ {
		log.WithField("i", counter.Value()).Info("main: pulled")
	}
}

// runEagerCounter starts the body at construction, so the first value is
// already buffered before the loop runs, and reads the completion message
// once the counter reports exhaustion.
func runEagerCounter(max int) {
	counter := coroutines.NewReturning(func(c *coroutines.Context[int, string]) string {
		for i := 0; i < max; i++ {
			log.WithField("i", i).Info("coroutine: generated")
			c.Yield(i)
		}
		log.Info("coroutine: ending")
		return "maximum value reached"
	}, coroutines.WithStart(coroutines.Eager))
	defer counter.Close()

	for counter.Next() {
		log.WithField("value", counter.Value()).Info("main: got from coroutine")
	}

	if msg, ok := counter.Result(); ok {
		log.WithField("result", msg).Info("main: coroutine ended")
	}
}

// runPullCounter consumes a bounded computation through the plain pull loop.
func runPullCounter(max int) {
	counter := coroutines.New(func(c *coroutines.Context[int, coroutines.Void]) {
		for i := 0; i < max; i++ {
			log.WithField("i", i).Info("coroutine: generated")
			c.Yield(i)
		}
	})
	defer counter.Close()

	for counter.Next() {
		log.WithField("value", counter.Value()).Info("main: got from coroutine")
	}
}
