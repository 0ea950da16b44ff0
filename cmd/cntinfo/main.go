// Command cntinfo opens a CNT recording and prints its metadata. Patient-
// identifying fields are redacted unless -patient is given.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/eegtools/libeep-go/pkg/libeep"
	"github.com/eegtools/libeep-go/pkg/libeep/logging"
)

const triggerPrintLimit = 20

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	patient := flag.Bool("patient", false, "print patient-identifying metadata instead of redacting it")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-v] [-patient] file.cnt\n", os.Args[0])
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := logging.New(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	ctx := context.Background()

	logger.Debug(ctx, "libeep binding",
		"wrapper", libeep.WrapperVersion(),
		"native", libeep.Version(),
	)

	path := flag.Arg(0)
	r, err := libeep.OpenReader(path)
	if err != nil {
		logger.Error(ctx, "open failed", "path", path, "err", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := r.Close(); cerr != nil {
			logger.Warn(ctx, "close error", "err", cerr)
		}
	}()

	fmt.Printf("file:             %s\n", path)
	fmt.Printf("sample frequency: %d Hz\n", r.SampleFrequency())
	fmt.Printf("sample count:     %d\n", r.SampleCount())
	fmt.Printf("start time:       %s\n", r.StartTime())
	if t, ok := r.StartTimeAndFraction(); ok {
		fmt.Printf("start (precise):  %s\n", t)
	}

	if hospital, ok := r.Hospital(); ok {
		fmt.Printf("hospital:         %s\n", hospital)
	}
	machine := r.MachineInfo()
	fmt.Printf("machine:          %s %s (serial %s)\n", machine.Make, machine.Model, machine.SerialNumber)

	info := r.PatientInfo()
	if *patient {
		fmt.Printf("patient:          %s (id %s)\n", info.Name, info.ID)
		if !info.BirthDate.IsZero() {
			fmt.Printf("born:             %s\n", info.BirthDate.Format("2006-01-02"))
		}
	} else {
		logger.Info(ctx, "patient metadata withheld",
			logging.Redacted("patient_name"),
			logging.Redacted("patient_id"),
		)
	}

	n := r.ChannelCount()
	fmt.Printf("channels:         %d\n", n)
	for i := 0; i < n; i++ {
		ch, err := r.Channel(i)
		if err != nil {
			logger.Error(ctx, "channel read failed", "index", i, "err", err)
			os.Exit(1)
		}
		fmt.Printf("  %3d: %-10s unit=%-6s ref=%s\n", i, ch.Label, ch.Unit, ch.Reference)
	}

	tc := r.TriggerCount()
	fmt.Printf("triggers:         %d\n", tc)
	for i := 0; i < tc && i < triggerPrintLimit; i++ {
		tr, err := r.Trigger(i)
		if err != nil {
			logger.Error(ctx, "trigger read failed", "index", i, "err", err)
			os.Exit(1)
		}
		fmt.Printf("  %3d: %-8s offset=%d duration=%d\n", i, tr.Code, tr.SampleOffset, tr.DurationInSamples)
	}
	if tc > triggerPrintLimit {
		fmt.Printf("  ... %d more\n", tc-triggerPrintLimit)
	}
}
