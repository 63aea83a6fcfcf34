package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"conway/internal/app"
	"conway/internal/render"
	"conway/internal/settings"
	"conway/internal/sweep"
)

func main() {
	opts := sweep.DefaultOptions()
	flag.IntVar(&opts.Rows, "rows", opts.Rows, "grid rows")
	flag.IntVar(&opts.Cols, "cols", opts.Cols, "grid columns")
	flag.IntVar(&opts.Runs, "runs", opts.Runs, "number of soups, seeded consecutively")
	flag.Int64Var(&opts.Seed, "seed", opts.Seed, "seed of the first soup")
	flag.Float64Var(&opts.Density, "density", opts.Density, "live cell probability")
	flag.IntVar(&opts.MaxGenerations, "max", opts.MaxGenerations, "generation cap per soup")
	flag.BoolVar(&opts.Wrap, "wrap", opts.Wrap, "join opposite grid edges")
	flag.IntVar(&opts.Workers, "workers", opts.Workers, "parallel soups")
	flag.IntVar(&opts.Depth, "depth", opts.Depth, "generations compared when looking for repeats")
	configPath := flag.String("config", "", "optional config file shared with the GUI")
	snapshots := flag.String("snapshot", "", "directory to write a PNG of every final grid")
	flag.Parse()

	look := settings.Default()
	if *configPath != "" {
		explicit := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

		cfg := app.NewConfig()
		if err := cfg.LoadFile(*configPath); err != nil {
			log.Fatalf("config: %v", err)
		}
		s, err := cfg.Settings()
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		look = s
		if !explicit["wrap"] {
			opts.Wrap = cfg.Wraparound
		}
		if !explicit["density"] {
			opts.Density = cfg.Density
		}
		if !explicit["seed"] {
			opts.Seed = cfg.Seed
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("running %d soups of %dx%d (density %.2f, wrap %v, cap %d)",
		opts.Runs, opts.Rows, opts.Cols, opts.Density, opts.Wrap, opts.MaxGenerations)
	results, err := sweep.Run(ctx, opts)
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}

	counts := map[sweep.Outcome]int{}
	for _, r := range results {
		counts[r.Outcome]++
		fmt.Printf("seed %d: %s after %d generations, population %d\n", r.Seed, r.Outcome, r.Generations, r.Population)
		if *snapshots != "" {
			if err := writeSnapshot(*snapshots, r, look); err != nil {
				log.Fatalf("snapshot: %v", err)
			}
		}
	}
	fmt.Printf("\nextinct %d, settled %d, capped %d\n", counts[sweep.Extinct], counts[sweep.Settled], counts[sweep.Capped])
}

func writeSnapshot(dir string, r sweep.Result, look settings.Settings) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	img := render.NewCanvas(r.Final.Rows(), r.Final.Cols(), look)
	render.Rasterize(img, r.Final, look)

	f, err := os.Create(filepath.Join(dir, fmt.Sprintf("seed-%d.png", r.Seed)))
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
