// Command measure times building an OSTree by repeated insertion in random and in
// ascending order for growing sizes, and reports the resulting heights, showing how
// the unbalanced tree degrades on sorted input.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"testing"

	"github.com/MatusOllah/slogcolor"
	"github.com/fatih/color"
	"github.com/g-m-twostay/ostree/Trees"
)

var (
	bAddN     = flag.Int("n", 1<<14, "largest tree size")
	bNumSteps = flag.Int("steps", 8, "number of sizes measured between n/steps and n")
)

var _R = rand.New(rand.NewSource(0))

func benchmarkInsert(vs []int) func(b *testing.B) {
	return func(b *testing.B) {
		for range b.N {
			tree := Trees.New[int, uint32]()
			for _, v := range vs {
				tree.Insert(v)
			}
		}
	}
}

// stats of per operation times in ms/op.
func stats(cs []float64) (avg, stddev float64) {
	for _, v := range cs {
		avg += v
	}
	avg /= float64(len(cs))
	for _, v := range cs {
		stddev += (v - avg) * (v - avg)
	}
	return avg, math.Sqrt(stddev / float64(len(cs)))
}

func main() {
	testing.Init()
	flag.Parse()
	slog.SetDefault(slog.New(slogcolor.NewHandler(os.Stderr, &slogcolor.Options{
		Level:         slog.LevelInfo,
		TimeFormat:    "15:04:05.000",
		SrcFileMode:   slogcolor.ShortFile,
		SrcFileLength: 16,
		MsgPrefix:     color.HiWhiteString("|"),
		MsgColor:      color.New(color.FgHiWhite),
		MsgLength:     24,
	})))
	if *bAddN < *bNumSteps || *bNumSteps < 1 {
		slog.Error("need n>=steps>=1", slog.Int("n", *bAddN), slog.Int("steps", *bNumSteps))
		os.Exit(2)
	}
	var random, sorted []float64
	for i := 1; i <= *bNumSteps; i++ {
		size := *bAddN / *bNumSteps * i
		perm, asc := _R.Perm(size), make([]int, size)
		for j := range asc {
			asc[j] = j
		}
		br, bs := testing.Benchmark(benchmarkInsert(perm)), testing.Benchmark(benchmarkInsert(asc))
		random = append(random, float64(br.NsPerOp())/1e6)
		sorted = append(sorted, float64(bs.NsPerOp())/1e6)

		rt, st := Trees.New[int, uint32](), Trees.New[int, uint32]()
		for j := range perm {
			rt.Insert(perm[j])
			st.Insert(asc[j])
		}
		slog.Info("measured", slog.Int("size", size),
			slog.Float64("randomMs", random[len(random)-1]), slog.Int("randomHeight", rt.Height()),
			slog.Float64("sortedMs", sorted[len(sorted)-1]), slog.Int("sortedHeight", st.Height()))
	}
	avg, sd := stats(random)
	fmt.Printf("random:    average: %fms/op, stddev: %fms/op\n", avg, sd)
	avg, sd = stats(sorted)
	fmt.Printf("ascending: average: %fms/op, stddev: %fms/op\n", avg, sd)
}
