package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/delaneyj/deptrack/observe"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100}
	iters = flag.Int("iters", 100, "writes measured per grid cell")
	pgo   = flag.String("cpuprofile", "default.pgo", "write a CPU profile here, empty to disable")
)

func main() {
	flag.Parse()

	if *pgo != "" {
		f, err := os.Create(*pgo)
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	log.Printf("warming up")
	benchmarkNotify(false)
	benchmarkNotify(true)
}

// chain builds a document nested depth levels deep and returns it with the
// path to the mapping holding its leaf.
func chain(depth int) (map[string]any, string) {
	doc := map[string]any{"value": 0}
	keys := make([]string, 0, depth)
	for i := 0; i < depth; i++ {
		doc = map[string]any{"next": doc}
		keys = append(keys, "next")
	}
	return doc, strings.Join(keys, ".")
}

func benchmarkNotify(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Watcher notification")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "deps", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: *iters})

			sys := observe.NewSystem(observe.WithErrorHandler(func(from *observe.Watcher, err error) {
				log.Panic(err)
			}))
			doc, parent := chain(h)
			path := parent + ".value"
			root := observe.MakeReactive(sys, doc)

			fired := 0
			deps := 0
			for i := 0; i < w; i++ {
				watcher, err := observe.NewWatcher(root, path, func(any) error {
					fired++
					return nil
				})
				if err != nil {
					log.Fatal(err)
				}
				deps += watcher.Deps()
			}

			leaf, err := observe.ResolvePath(root, parent)
			if err != nil {
				log.Fatal(err)
			}
			node := leaf.(*observe.Node)

			n := *iters
			for i := 0; i < n; i++ {
				start := time.Now()
				if err := node.Set("value", i+1); err != nil {
					log.Fatal(err)
				}
				tach.AddTime(time.Since(start))
			}
			if fired != w*n {
				log.Fatalf("expected %d callbacks, got %d", w*n, fired)
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("notify: %d * %d", w, h),
					deps,
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}
