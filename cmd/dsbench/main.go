package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"
	"slices"
	"time"

	_ "net/http/pprof"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/sync/errgroup"

	"github.com/larynjahor/ds/container"
	"github.com/larynjahor/ds/deque"
	"github.com/larynjahor/ds/internal/config"
	"github.com/larynjahor/ds/internal/logging"
	"github.com/larynjahor/ds/list"
	"github.com/larynjahor/ds/queue"
	"github.com/larynjahor/ds/stack"
	"github.com/larynjahor/ds/vector"
)

func main() {
	c := logging.Auto()
	defer c.Close()

	if err := run(); err != nil {
		log.Fatalln(err)
	}
}

func run() error {
	configPath := flag.String("config", "", "scenarios file, empty for the built-in set")
	flag.Parse()

	slog.Info("started dsbench")
	defer slog.Info("exited dsbench")

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	results := make([]Result, len(cfg.Scenarios))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, sc := range cfg.Scenarios {
		g.Go(func() error {
			res, err := runScenario(sc)
			if err != nil {
				slog.Error("scenario failed", slog.String("name", sc.Name), slog.Any("err", err))
				return err
			}

			slog.Debug("scenario done", slog.String("name", sc.Name), slog.Duration("elapsed", res.Elapsed))
			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	totals := make(map[string]time.Duration)
	for _, res := range results {
		totals[res.Adapter] += res.Elapsed
	}

	adapters := maps.Keys(totals)
	slices.Sort(adapters)

	for _, a := range adapters {
		slog.Info("adapter total", slog.String("adapter", a), slog.Duration("elapsed", totals[a]))
	}

	return json.NewEncoder(os.Stdout).Encode(results)
}

func runScenario(sc config.Scenario) (Result, error) {
	var (
		drained int
		err     error
	)

	start := time.Now()

	switch sc.Adapter {
	case config.AdapterStack:
		switch sc.Backend {
		case config.BackendVector:
			drained, err = driveStack(stack.From[string](vector.New[string]()), sc.Ops)
		case config.BackendDeque:
			drained, err = driveStack(stack.From[string](deque.New[string]()), sc.Ops)
		case config.BackendList:
			drained, err = driveStack(stack.From[string](list.New[string]()), sc.Ops)
		}
	case config.AdapterQueue:
		switch sc.Backend {
		case config.BackendDeque:
			drained, err = driveQueue(queue.From[string](deque.New[string]()), sc.Ops)
		case config.BackendList:
			drained, err = driveQueue(queue.From[string](list.New[string]()), sc.Ops)
		}
	}

	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", sc.Name, err)
	}

	if want := sc.Ops - sc.Ops/3; drained != want {
		return Result{}, fmt.Errorf("%s: drained %d elements, want %d", sc.Name, drained, want)
	}

	return Result{
		Name:    sc.Name,
		Adapter: sc.Adapter,
		Backend: sc.Backend,
		Ops:     sc.Ops,
		Drained: drained,
		Elapsed: time.Since(start),
	}, nil
}

// driveStack pushes ops random payloads, popping every third one early, then
// drains the rest and reports how many elements passed through.
func driveStack[C interface {
	container.Interface[string]
	container.Validator
}](s *stack.Stack[string, C], ops int) (int, error) {
	for i := 0; i < ops; i++ {
		s.Push(uuid.NewString())

		if i%3 == 2 {
			s.Pop()
		}
	}

	if err := stack.Validate(s); err != nil {
		return 0, err
	}

	drained := 0
	for !s.Empty() {
		s.Pop()
		drained++
	}

	return drained, nil
}

func driveQueue[C interface {
	container.DoubleEnded[string]
	container.Validator
}](q *queue.Queue[string, C], ops int) (int, error) {
	for i := 0; i < ops; i++ {
		q.Push(uuid.NewString())

		if i%3 == 2 {
			q.Pop()
		}
	}

	if err := queue.Validate(q); err != nil {
		return 0, err
	}

	drained := 0
	for !q.Empty() {
		q.Pop()
		drained++
	}

	return drained, nil
}

type Result struct {
	Name    string
	Adapter string
	Backend string

	Ops     int
	Drained int

	Elapsed time.Duration
}
