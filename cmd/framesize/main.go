package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/facebookincubator/go-belt"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/framesize"
	"github.com/xaionaro-go/framesize/config"
	"github.com/xaionaro-go/framesize/logger"
	"github.com/xaionaro-go/observability"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "syntax: %s [flags] <source WxH> <target WxH>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "        %s --config <jobs.yaml|jobs.toml>\n", os.Args[0])
		pflag.PrintDefaults()
	}

	loggerLevel := logger.LevelWarning
	pflag.Var(&loggerLevel, "log-level", "Log level")
	configPath := pflag.String("config", "", "a YAML or TOML file with jobs to compute")
	job := config.Job{
		Name:           "cli",
		FitPolicy:      framesize.FitPolicyFit,
		ScaleDirection: framesize.ScaleDirectionAny,
	}
	pflag.Var(&job.FitPolicy, "fit-policy", "fill or fit")
	pflag.Var(&job.ScaleDirection, "scale-direction", "none, downscale-only, upscale-only or any")
	pflag.BoolVar(&job.Crop, "crop", false, "crop the result to the target")
	pflag.BoolVar(&job.Pad, "pad", false, "pad the result to the target")
	pflag.BoolVar(&job.RoundWidthToEven, "round-width-to-even", false, "round the resulting width up to an even value")
	pflag.Parse()

	ctx, l := logger.CtxWithNew(context.Background(), loggerLevel)
	defer belt.Flush(ctx)

	var jobs []config.Job
	switch {
	case *configPath != "":
		if pflag.NArg() != 0 {
			pflag.Usage()
			os.Exit(1)
		}
		cfg, err := config.Load(ctx, *configPath)
		if err != nil {
			l.Fatal(err)
		}
		jobs = cfg.Jobs
	case pflag.NArg() == 2:
		if err := job.Source.Set(pflag.Arg(0)); err != nil {
			l.Fatal(err)
		}
		if err := job.Target.Set(pflag.Arg(1)); err != nil {
			l.Fatal(err)
		}
		jobs = append(jobs, job)
	default:
		pflag.Usage()
		os.Exit(1)
	}

	results := runJobs(ctx, jobs)
	exitCode := 0
	for idx, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", jobs[idx].Name, r.Err)
			exitCode = 1
			continue
		}
		fmt.Println(formatResult(jobs[idx], r.Size))
	}
	os.Exit(exitCode)
}

type result struct {
	Size framesize.Size
	Err  error
}

func runJobs(ctx context.Context, jobs []config.Job) []result {
	results := make([]result, len(jobs))
	var wg sync.WaitGroup
	for idx, job := range jobs {
		wg.Add(1)
		observability.Go(ctx, func(ctx context.Context) {
			defer wg.Done()
			logger.Debugf(ctx, "running %s", job)
			s, err := job.Run()
			results[idx] = result{Size: s, Err: err}
		})
	}
	wg.Wait()
	return results
}

func formatResult(job config.Job, s framesize.Size) string {
	out := fmt.Sprintf("%s: %s", job.Name, s)
	if s.AreBothDimensionsDefined() && s.Height().Value() != 0 {
		out += fmt.Sprintf(" aspect=%s (%.4f) area=%s px", s.AspectRatioRational(), s.AspectRatio(), humanize.Comma(int64(s.Area())))
	}
	return out
}
