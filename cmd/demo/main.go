// Demo drives a todo store from a scripted action sequence, printing the
// committed state after each dispatch. Commit notifications are consumed
// through a channel listener in the select loop rather than inline.
//
// Usage:
//
//	demo [-interval 500ms] [-script actions.yaml]
//
// The script file is a YAML list of steps:
//
//	- {op: insert, text: Clean the bathroom}
//	- {op: reject}
//	- {op: clear}
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/comalice/storex"
)

type todoState struct {
	Todos []string
}

func (s todoState) Clone() todoState {
	return todoState{Todos: append([]string(nil), s.Todos...)}
}

type step struct {
	Op   string `yaml:"op"`
	Text string `yaml:"text,omitempty"`
}

var defaultScript = []step{
	{Op: "insert", Text: "Clean the bathroom"},
	{Op: "insert", Text: "Grocery shopping"},
	{Op: "reject"},
	{Op: "insert", Text: "Water the plants"},
	{Op: "clear"},
	{Op: "insert", Text: "Start over"},
}

func reduce(s todoState, a step) (todoState, error) {
	switch a.Op {
	case "insert":
		s = s.Clone()
		s.Todos = append(s.Todos, a.Text)
		return s, nil
	case "clear":
		return todoState{}, nil
	case "reject":
		return s, errors.New("rejected by script")
	default:
		return s, fmt.Errorf("unknown op %q", a.Op)
	}
}

func loadScript(path string) ([]step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var steps []step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return steps, nil
}

func main() {
	interval := flag.Duration("interval", 500*time.Millisecond, "delay between dispatches")
	scriptPath := flag.String("script", "", "YAML action script (optional)")
	flag.Parse()

	script := defaultScript
	if *scriptPath != "" {
		loaded, err := loadScript(*scriptPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		script = loaded
	}

	commits := make(chan struct{}, 16)
	store, err := storex.New(
		storex.ReducerFunc[todoState, step](reduce),
		todoState{},
		storex.ChanListener(commits),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	next := 0
	for {
		select {
		case <-ticker.C:
			if next >= len(script) {
				fmt.Println("Script complete.")
				return
			}
			action := script[next]
			next++

			fmt.Printf("\n--- Step %d: %s %q ---\n", next, action.Op, action.Text)
			if err := store.Dispatch(action); err != nil {
				fmt.Printf("rejected: %v (state unchanged)\n", err)
			}

			select {
			case <-commits:
				fmt.Println("committed:", store.State().Todos)
			default:
				fmt.Println("state:    ", store.State().Todos)
			}
		case <-sig:
			fmt.Println("\nShutting down gracefully...")
			return
		}
	}
}
