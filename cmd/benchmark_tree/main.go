package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/delaneyj/deptrack/observe"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

func main() {
	log.Print("Starting tree benchmark, please wait...")
	defer log.Print("Finished tree benchmark")

	perfTestCfgs := []benchmarkTestConfig{
		{
			name:            "small form",
			width:           10,
			depth:           3,
			watchFraction:   1,
			replaceFraction: 0,
			iterations:      600000,
		},
		{
			name:            "partial watch",
			width:           100,
			depth:           5,
			watchFraction:   0.2,
			replaceFraction: 0,
			iterations:      200000,
		},
		{
			name:            "subtree swaps",
			width:           100,
			depth:           5,
			watchFraction:   1,
			replaceFraction: 0.25,
			iterations:      100000,
		},
		{
			name:            "wide dense",
			width:           1000,
			depth:           2,
			watchFraction:   1,
			replaceFraction: 0.05,
			iterations:      100000,
		},
		{
			name:            "deep",
			width:           5,
			depth:           500,
			watchFraction:   1,
			replaceFraction: 0.1,
			iterations:      2000,
		},
	}

	type results struct {
		sum      int
		count    int64
		duration time.Duration
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"test", "size", "watched%", "replace%",
		"nTimes", "time", "callbacks", "updateRate", "title",
	})

	testRepeats := 5
	for _, cfg := range perfTestCfgs {
		log.Printf("Running '%s' config", cfg.name)

		runOnce := func() (int, int64) {
			tree := benchmarkMakeTree(&cfg)
			return benchmarkRunTree(tree, &cfg)
		}
		// run once to warm up
		runOnce()

		bestResult := &results{
			duration: time.Hour,
		}

		for i := 0; i < testRepeats; i++ {
			log.Printf("Running '%s' config, iteration %d/%d %d%%", cfg.name, i+1, testRepeats, (i+1)*100/testRepeats)
			start := time.Now()
			sum, count := runOnce()
			duration := time.Since(start)

			if duration < bestResult.duration {
				bestResult.duration = duration
				bestResult.sum = sum
				bestResult.count = count
			}
		}

		makeTitle := func() string {
			sb := strings.Builder{}
			sb.WriteString(fmt.Sprintf("%dx%d", cfg.width, cfg.depth))
			if cfg.watchFraction < 1 {
				sb.WriteString(fmt.Sprintf(" watch %0.2f%%", 100*cfg.watchFraction))
			}
			if cfg.replaceFraction > 0 {
				sb.WriteString(" swapping")
			}
			return sb.String()
		}

		updateRate := float64(bestResult.count) / (float64(bestResult.duration) / float64(time.Millisecond))

		table.Append([]string{
			cfg.name,                                   // test
			fmt.Sprintf("%dx%d", cfg.width, cfg.depth), // size
			fmt.Sprint(cfg.watchFraction),              // watched%
			fmt.Sprint(cfg.replaceFraction),            // replace%
			humanize.Comma(cfg.iterations),             // nTimes
			fmt.Sprint(bestResult.duration),            // time
			humanize.Comma(bestResult.count),           // callbacks
			humanize.Comma(int64(updateRate)),          // updateRate
			makeTitle(),                                // title
		})
	}
	table.Render() // Send output
}

type benchmarkTestConfig struct {
	name            string  // friendly name for the test, should be unique
	width           int     // number of branches under the root
	depth           int     // nesting of every branch
	watchFraction   float64 // fraction of leaves with a watcher
	replaceFraction float64 // fraction of writes that swap a whole branch instead of a leaf
	iterations      int64   // number of writes
}

type benchmarkTree struct {
	root    *observe.Node
	leaves  []string // leaf path per branch
	watched []string
	counter *int64
	sum     *int
}

// branch returns a chain of depth nested mappings with value at the bottom.
func branch(depth, value int) map[string]any {
	m := map[string]any{"value": value}
	for i := 0; i < depth; i++ {
		m = map[string]any{"n": m}
	}
	return m
}

func benchmarkMakeTree(cfg *benchmarkTestConfig) *benchmarkTree {
	doc := make(map[string]any, cfg.width)
	leaves := make([]string, cfg.width)
	suffix := strings.Repeat(".n", cfg.depth) + ".value"
	for i := 0; i < cfg.width; i++ {
		key := fmt.Sprintf("b%d", i)
		doc[key] = branch(cfg.depth, i)
		leaves[i] = key + suffix
	}

	tree := &benchmarkTree{
		root:    observe.MakeReactive(observe.NewSystem(), doc),
		leaves:  leaves,
		counter: new(int64),
		sum:     new(int),
	}

	random := rand.New(rand.NewSource(0))
	skipCount := int(math.Round(float64(len(leaves)) * (1 - cfg.watchFraction)))
	tree.watched = benchmarkRemoveElems(leaves, skipCount, random)
	for _, path := range tree.watched {
		_, err := observe.NewWatcher(tree.root, path, func(v any) error {
			*tree.counter++
			if n, ok := v.(int); ok {
				*tree.sum += n
			}
			return nil
		})
		if err != nil {
			log.Fatal(err)
		}
	}
	return tree
}

// benchmarkRunTree writes leaves round robin, sometimes replacing the whole
// branch, and returns the sum of the values seen by callbacks and how many
// callbacks ran.
func benchmarkRunTree(tree *benchmarkTree, cfg *benchmarkTestConfig) (int, int64) {
	random := rand.New(rand.NewSource(0))
	for i := 0; i < int(cfg.iterations); i++ {
		b := i % cfg.width
		var err error
		if random.Float64() < cfg.replaceFraction {
			err = observe.AssignPath(tree.root, fmt.Sprintf("b%d", b), branch(cfg.depth, i))
		} else {
			err = observe.AssignPath(tree.root, tree.leaves[b], i)
		}
		if err != nil {
			log.Fatal(err)
		}
	}
	return *tree.sum, *tree.counter
}

func benchmarkRemoveElems[T comparable](src []T, rmCount int, rand *rand.Rand) []T {
	copyWithRemovals := make([]T, len(src))
	copy(copyWithRemovals, src)
	for i := 0; i < rmCount; i++ {
		rmDex := rand.Intn(len(copyWithRemovals))
		copyWithRemovals[rmDex] = copyWithRemovals[len(copyWithRemovals)-1]
		copyWithRemovals = copyWithRemovals[:len(copyWithRemovals)-1]
	}
	return copyWithRemovals
}
