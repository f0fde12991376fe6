// Package main provides the surf command: an autonomous web agent that
// turns a natural-language task into a browsing plan and executes it
// step by step in a real browser session.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/entrhq/surf/pkg/agent"
	"github.com/entrhq/surf/pkg/agent/guard"
	appconfig "github.com/entrhq/surf/pkg/config"
	"github.com/entrhq/surf/pkg/llm/openai"
	"github.com/entrhq/surf/pkg/logging"
	"github.com/entrhq/surf/pkg/tools"
	"github.com/entrhq/surf/pkg/tools/browser"
	"github.com/entrhq/surf/pkg/tools/websearch"
	"github.com/entrhq/surf/pkg/types"
)

const version = "0.1.0"

// cliOptions holds command-line configuration.
type cliOptions struct {
	Task        string
	Model       string
	APIKey      string
	BaseURL     string
	ConfigFile  string
	Headless    bool
	Timeout     time.Duration
	OutputFile  string
	ShowVersion bool
}

func main() {
	opts := parseFlags()

	if opts.ShowVersion {
		fmt.Printf("surf v%s\n", version)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())

	// Graceful shutdown on Ctrl-C: the browser session must still close.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\nShutting down gracefully...")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		cancel()
		log.Printf("Execution failed: %v", err)
		os.Exit(1)
	}
	cancel()
}

func parseFlags() *cliOptions {
	opts := &cliOptions{}

	flag.StringVar(&opts.Task, "task", "", "Task description (required)")
	flag.StringVar(&opts.Model, "model", "", "LLM model to use (overrides config)")
	flag.StringVar(&opts.APIKey, "api-key", "", "OpenAI API key (overrides config and environment)")
	flag.StringVar(&opts.BaseURL, "base-url", "", "OpenAI API base URL (overrides config and environment)")
	flag.StringVar(&opts.ConfigFile, "config", "", "Path to configuration file (YAML)")
	flag.BoolVar(&opts.Headless, "headless", false, "Run the browser without a window")
	flag.DurationVar(&opts.Timeout, "timeout", 5*time.Minute, "Execution timeout")
	flag.StringVar(&opts.OutputFile, "output", "", "Write the run summary as JSON to this file")
	flag.BoolVar(&opts.ShowVersion, "version", false, "Show version and exit")
	flag.Parse()

	return opts
}

func run(ctx context.Context, opts *cliOptions) error {
	if strings.TrimSpace(opts.Task) == "" {
		return fmt.Errorf("a task is required: surf -task \"Open YouTube and play a video\"")
	}

	cfg, err := appconfig.Load(opts.ConfigFile)
	if err != nil {
		return err
	}

	// Flags override the config file.
	if opts.Model != "" {
		cfg.LLM.Model = opts.Model
	}
	if opts.APIKey != "" {
		cfg.LLM.APIKey = opts.APIKey
	}
	if opts.BaseURL != "" {
		cfg.LLM.BaseURL = opts.BaseURL
	}
	if opts.Headless {
		cfg.Browser.Headless = true
	}

	if cfg.LLM.APIKey == "" {
		return fmt.Errorf("an API key is required: set OPENAI_API_KEY, the config file, or -api-key")
	}

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	providerOpts := []openai.ProviderOption{openai.WithModel(cfg.LLM.Model)}
	if cfg.LLM.BaseURL != "" {
		providerOpts = append(providerOpts, openai.WithBaseURL(cfg.LLM.BaseURL))
	}
	provider, err := openai.NewProvider(cfg.LLM.APIKey, providerOpts...)
	if err != nil {
		return fmt.Errorf("failed to create LLM provider: %w", err)
	}

	fmt.Println("Launching browser...")
	session, err := browser.Launch(browser.Options{
		Headless: cfg.Browser.Headless,
		Timeout:  cfg.Browser.TimeoutMS,
	})
	if err != nil {
		return fmt.Errorf("failed to launch browser: %w", err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			log.Printf("Failed to close browser session: %v", err)
		}
	}()

	toolSet := append(
		[]tools.Tool{websearch.NewSearchTool(websearch.NewClient())},
		browser.Tools(session)...,
	)
	registry := tools.NewRegistry(toolSet...)

	urlGuard, err := guard.New(cfg.Guard.DenyPatterns)
	if err != nil {
		return err
	}

	orchestrator := agent.New(provider, registry,
		agent.WithGuard(urlGuard),
		agent.WithMaxPlanSteps(cfg.MaxPlanSteps),
		agent.WithEventSink(renderEvent),
	)

	fmt.Printf("Task: %s\n", opts.Task)
	fmt.Printf("Model: %s | Session: %s\n\n", cfg.LLM.Model, logging.GetSessionID())

	sess, err := orchestrator.Run(ctx, opts.Task)
	if err != nil {
		return err
	}

	fmt.Printf("\n%s\n", sess.FinalAnswer)

	if opts.OutputFile != "" {
		if err := writeSummary(opts.OutputFile, sess); err != nil {
			return fmt.Errorf("failed to write run summary: %w", err)
		}
		fmt.Printf("\nRun summary written to %s\n", opts.OutputFile)
	}
	return nil
}

// renderEvent prints run progress to the terminal.
func renderEvent(ev *types.AgentEvent) {
	switch ev.Type {
	case types.EventTypeIntentAnalyzed:
		fmt.Printf("Intent: %s\n", ev.Content)
	case types.EventTypePlanGenerated:
		steps := ev.Metadata["steps"]
		if fallback, _ := ev.Metadata["fallback"].(bool); fallback {
			fmt.Printf("Plan: %v step(s) (fallback plan — plan generation failed)\n\n", steps)
		} else {
			fmt.Printf("Plan: %v step(s)\n\n", steps)
		}
	case types.EventTypeToolCall:
		fmt.Printf("[%d] %s(%s)\n", ev.Step, ev.Action, ev.Content)
	case types.EventTypeToolResult:
		fmt.Printf("    -> %s\n", firstLine(ev.Content))
	case types.EventTypeValidation:
		success, _ := ev.Metadata["success"].(bool)
		canContinue, _ := ev.Metadata["can_continue"].(bool)
		fmt.Printf("    validated: success=%t continue=%t", success, canContinue)
		if ev.Content != "" {
			fmt.Printf(" (%s)", ev.Content)
		}
		fmt.Println()
	case types.EventTypeError:
		fmt.Printf("Error: %v\n", ev.Error)
	}
}

// firstLine trims a result to a single display line.
func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i] + " ..."
	}
	const max = 160
	if len(s) > max {
		s = s[:max] + "..."
	}
	return s
}

// runSummary is the JSON shape written with -output.
type runSummary struct {
	RunID       string        `json:"run_id"`
	Task        string        `json:"task"`
	Intent      string        `json:"intent"`
	Steps       []stepSummary `json:"steps"`
	FinalAnswer string        `json:"final_answer"`
}

type stepSummary struct {
	Step        int    `json:"step"`
	Action      string `json:"action"`
	Input       string `json:"input"`
	Result      string `json:"result"`
	Description string `json:"description"`
}

func writeSummary(path string, sess *agent.Session) error {
	summary := runSummary{
		RunID:       sess.RunID,
		Task:        sess.UserInput,
		Intent:      sess.Intent,
		FinalAnswer: sess.FinalAnswer,
	}
	for _, h := range sess.History {
		summary.Steps = append(summary.Steps, stepSummary{
			Step:        h.Step,
			Action:      h.Action,
			Input:       h.Input.String(),
			Result:      h.Result,
			Description: h.Description,
		})
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
