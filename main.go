package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fyne.io/fyne/v2"

	"LocalSketch/internal/config"
	"LocalSketch/internal/export"
	"LocalSketch/internal/logging"
	localnet "LocalSketch/internal/net"
	"LocalSketch/internal/render"
	"LocalSketch/internal/sketch"
	"LocalSketch/internal/state"
	"LocalSketch/internal/store"
	"LocalSketch/internal/ui"
)

var (
	configPath = flag.String("config", "localsketch.toml", "Settings file")
	verbose    = flag.Bool("v", false, "Log debug output")
	replay     = flag.String("replay", "", "Replay a JSON event list without opening a window")
	svgOut     = flag.String("svg", "", "Write the saved document here after a replay")
	pngOut     = flag.String("png", "", "Write the raster surface here after a replay")
	pdfOut     = flag.String("pdf", "", "Write a PDF here after a replay")
	jsonOut    = flag.String("json", "", "Write the strokes as JSON here after a replay")
	serve      = flag.Bool("serve", false, "Serve the live preview to browsers on the local network")
	discover   = flag.Duration("discover", 0, "Look for preview servers on the local network for this long and exit")
)

func main() {
	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(); err != nil {
		log.Fatalf("localsketch: %v", err)
	}
}

func run() error {
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *discover > 0 {
		return localnet.Browse(*discover, func(addr string) {
			fmt.Printf("http://%s/\n", addr)
		})
	}

	// The default path may be absent; a path the user named must exist.
	cfg, err := config.Load(*configPath, !config.FlagGiven(flag.CommandLine, "config"))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var targets []sketch.DisplayTarget
	if *serve {
		hub, err := startPreview(ctx, cfg.Preview)
		if err != nil {
			return err
		}
		defer hub.Close()
		targets = append(targets, hub)
	}

	var st sketch.Store
	if cfg.Store.Dir != "" {
		d, err := store.NewDir(cfg.Store.Dir)
		if err != nil {
			return err
		}
		st = d
	}

	if *replay == "" {
		ui.RunApp(st, cfg.Options(), fyne.NewSize(float32(cfg.Canvas.Width), float32(cfg.Canvas.Height)), targets...)
		return nil
	}

	if st == nil {
		st = store.NewMemory()
	}
	if err := runReplay(cfg, st, targets); err != nil {
		return err
	}
	if *serve {
		logging.Logger().Info("[HOST] serving replayed preview until interrupted")
		<-ctx.Done()
	}
	return nil
}

// startPreview starts the websocket preview server in the background and
// advertises it when configured to.
func startPreview(ctx context.Context, p config.Preview) (*localnet.PreviewHub, error) {
	hub := localnet.NewPreviewHub()
	go func() {
		if err := localnet.Serve(ctx, p.Addr, hub.Handler()); err != nil {
			logging.Logger().Error("[HOST] preview server stopped", "err", err)
		}
	}()

	if url, err := localnet.ShareURL(p.Addr); err == nil {
		fmt.Printf("Preview: %s\n", url)
	}

	if p.Advertise {
		port, err := localnet.Port(p.Addr)
		if err != nil {
			return nil, err
		}
		server, err := localnet.Advertise(port)
		if err != nil {
			// The preview is still reachable by URL.
			logging.Logger().Warn("[MDNS] advertise failed", "err", err)
			return hub, nil
		}
		go func() {
			<-ctx.Done()
			server.Shutdown()
		}()
	}
	return hub, nil
}

func runReplay(cfg config.Config, st sketch.Store, targets []sketch.DisplayTarget) error {
	f, err := os.Open(*replay)
	if err != nil {
		return err
	}
	events, err := sketch.ReadEvents(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", *replay, err)
	}

	raster := render.NewRaster(cfg.Canvas.Width, cfg.Canvas.Height)
	ctrl := sketch.NewController(state.NewHistory(), raster, st, cfg.Options(), targets...)

	start := time.Now()
	if err := ctrl.Replay(events); err != nil {
		return err
	}
	logging.Logger().Debug("[RECORDER] replay finished", "took", time.Since(start))

	if *svgOut != "" {
		if err := ctrl.Save(); err != nil {
			return err
		}
		doc, ok, err := ctrl.Load()
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("saved document disappeared")
		}
		if err := os.WriteFile(*svgOut, []byte(doc), 0o644); err != nil {
			return err
		}
	}

	strokes := ctrl.History().Strokes()
	if *pngOut != "" {
		if err := writeFile(*pngOut, raster.WritePNG); err != nil {
			return err
		}
	}
	if *pdfOut != "" {
		err := writeFile(*pdfOut, func(w io.Writer) error {
			return export.WritePDF(w, strokes, export.DefaultPDFOptions)
		})
		if err != nil {
			return err
		}
	}
	if *jsonOut != "" {
		err := writeFile(*jsonOut, func(w io.Writer) error {
			return export.WriteJSON(w, strokes)
		})
		if err != nil {
			return err
		}
	}
	fmt.Printf("Replayed %d events into %d strokes\n", len(events), len(strokes))
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
