package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/annel0/blocksandbox/internal/config"
	"github.com/annel0/blocksandbox/internal/world"
	"github.com/annel0/blocksandbox/internal/world/block"
)

// applySeed подставляет сид из флага, только если -seed задан явно.
// Так -seed 0 выбирает нулевой сид, а не сид из конфигурации.
func applySeed(fs *flag.FlagSet, cfg *world.GenConfig, seed int64) {
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.Seed = seed
		}
	})
}

func main() {
	var (
		configPath = flag.String("config", "", "YAML конфигурация (по умолчанию $GAME_CONFIG)")
		seed       = flag.Int64("seed", 0, "сид мира (без флага - из конфигурации)")
		legend     = flag.Bool("legend", false, "вывести легенду символов")
		stats      = flag.Bool("stats", false, "вывести количество блоков каждого типа")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}
	applySeed(flag.CommandLine, &cfg.World, *seed)

	w, err := world.NewWorld(cfg.World, nil)
	if err != nil {
		log.Fatalf("❌ Ошибка генерации мира: %v", err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	counts := render(out, w)
	if *legend {
		printLegend(out)
	}
	if *stats {
		printStats(out, counts)
	}
}

// render печатает мир построчно и возвращает число блоков каждого типа
func render(out io.Writer, w *world.World) map[block.BlockID]int {
	counts := make(map[block.BlockID]int)
	line := make([]rune, w.Width())
	for y := 0; y < w.Height(); y++ {
		for x, id := range w.Row(y) {
			line[x] = block.Glyph(id)
			counts[id]++
		}
		fmt.Fprintln(out, string(line))
	}
	w.ClearDirty()
	return counts
}

func printLegend(out io.Writer) {
	fmt.Fprintln(out)
	for _, id := range block.All() {
		fmt.Fprintf(out, "%c  %s\n", block.Glyph(id), id)
	}
}

func printStats(out io.Writer, counts map[block.BlockID]int) {
	fmt.Fprintln(out)
	for _, id := range block.All() {
		if n := counts[id]; n > 0 {
			fmt.Fprintf(out, "%-10s %6d\n", id, n)
		}
	}
}
