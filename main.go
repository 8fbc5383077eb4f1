/*
 * cabaliser - Command line entrypoint
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	getopt "github.com/pborman/getopt/v2"

	cfg "github.com/ahtoms/cabaliser/config"
	"github.com/ahtoms/cabaliser/console"
	"github.com/ahtoms/cabaliser/debugopt"
	"github.com/ahtoms/cabaliser/decoder"
	"github.com/ahtoms/cabaliser/logging"
	"github.com/ahtoms/cabaliser/normalform"
	"github.com/ahtoms/cabaliser/pandora"
	"github.com/ahtoms/cabaliser/stream"
	"github.com/ahtoms/cabaliser/widget"
)

var Logger *slog.Logger

func main() {
	optConfig := getopt.StringLong("config", 'c', "cabaliser.cfg", "Configuration file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optLayer := getopt.IntLong("layer", 'y', 0, "Layer to fetch from pandora, if configured")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var out *os.File = os.Stderr
	if *optLogFile != "" {
		f, err := os.Create(*optLogFile)
		if err != nil {
			os.Exit(1)
		}
		out = f
	}
	Logger = logging.New(out, slog.LevelDebug, *optLogFile != "")
	slog.SetDefault(Logger)

	Logger.Info("cabaliser started")

	config := cfg.Default()
	if _, err := os.Stat(*optConfig); err == nil {
		config, err = cfg.Load(*optConfig)
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
	}
	for _, name := range config.DebugCategories {
		if err := debugopt.Enable(name); err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
	}

	var w *widget.Widget
	if config.PandoraDSN != "" {
		var err error
		w, err = runFromPandora(config, *optLayer)
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
	} else {
		w = widget.New(0, config.MaxQubits)
		w.ConfigureWorkers(config.Workers, config.ChunkWidth)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan error, 1)
	go func() {
		done <- console.Run(w, os.Stdout)
	}()

	select {
	case <-sigChan:
		Logger.Info("got quit signal")
	case err := <-done:
		if err != nil {
			Logger.Error(err.Error())
		}
	}

	Logger.Info("shutting down")
}

func runFromPandora(config cfg.Config, layer int) (*widget.Widget, error) {
	ctx := context.Background()
	client, err := pandora.Connect(ctx, config.PandoraDSN)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	n, err := client.CountQubits(ctx)
	if err != nil {
		return nil, err
	}
	w := widget.New(n, config.MaxQubits)
	w.ConfigureWorkers(config.Workers, config.ChunkWidth)

	if err := client.Decorate(ctx); err != nil {
		return nil, err
	}

	buf, count, err := client.GetLayer(ctx, layer)
	if err != nil {
		return nil, err
	}
	Logger.Info("fetched layer", "run_id", client.RunID.String(), "records", count)

	records, err := stream.Decode(buf)
	if err != nil {
		return nil, err
	}
	if err := decoder.Run(w, records); err != nil {
		return nil, err
	}
	normalform.Run(w)
	return w, nil
}
