// Command ostdemo exercises an OSTree the way a caller would: it prints the sorted
// contents, the level-order layout and a few rank lookups before and after removing
// every other inserted element, once for integers and once for strings. With -n>0
// it additionally runs a random workload and verifies the tree after every batch.
package main

import (
	"cmp"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"

	"github.com/MatusOllah/slogcolor"
	"github.com/fatih/color"
	"github.com/g-m-twostay/ostree/Trees"
)

var (
	logLevel = flag.String("log-level", "info", "debug, info, warn or error")
	n        = flag.Int("n", 0, "size of the random workload, 0 skips it")
	seed     = flag.Int64("seed", 1, "seed of the random workload")
	skewed   = flag.Bool("skewed", false, "insert the random workload in ascending order")
)

func setupLogger() error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(*logLevel)); err != nil {
		return err
	}
	slog.SetDefault(slog.New(slogcolor.NewHandler(os.Stderr, &slogcolor.Options{
		Level:         lvl,
		TimeFormat:    "15:04:05.000",
		SrcFileMode:   slogcolor.ShortFile,
		SrcFileLength: 16,
		MsgPrefix:     color.HiWhiteString("|"),
		MsgColor:      color.New(color.FgHiWhite),
		MsgLength:     24,
	})))
	return nil
}

var heading = color.New(color.FgCyan, color.Bold)

func printSorted[T any](t *Trees.OSTree[T, uint32]) {
	if t.IsEmpty() {
		fmt.Println("Empty tree")
		return
	}
	var sb strings.Builder
	for v := range t.All() {
		fmt.Fprintf(&sb, "%v, ", v)
	}
	fmt.Println(strings.TrimSuffix(sb.String(), ", "))
}

func printLevels[T any](t *Trees.OSTree[T, uint32]) {
	if t.IsEmpty() {
		fmt.Println("Empty")
		return
	}
	for d, l := range t.Levels() {
		fmt.Printf("%2d: %v\n", d, l)
	}
}

func printIndexes[T any](t *Trees.OSTree[T, uint32], is ...int) {
	for _, i := range is {
		v, err := t.Get(i)
		if err != nil {
			slog.Warn("rank lookup failed", slog.Int("index", i), slog.Any("error", err))
			continue
		}
		fmt.Printf("The value at index %d is %v\n", i, v)
	}
}

// demo inserts vs, shows the tree, removes every other element in insertion order
// and shows it again.
func demo[T cmp.Ordered](name string, vs []T, before, after []int) error {
	heading.Printf("\n*** %s ***\n", name)
	t := Trees.New[T, uint32]()
	for _, v := range vs {
		t.Insert(v)
	}
	slog.Debug("inserted", slog.String("demo", name), slog.Int("size", t.Len()), slog.Int("height", t.Height()))
	printSorted(t)
	heading.Println("Level order")
	printLevels(t)
	printIndexes(t, before...)

	var removed []T
	for i := 1; i < len(vs); i += 2 {
		t.Remove(vs[i])
		removed = append(removed, vs[i])
	}
	heading.Printf("Tree contents after removing %v\n", removed)
	printSorted(t)
	printIndexes(t, after...)
	return t.Verify()
}

// workload inserts and removes random values, checking the invariants and the
// rank lookup against the iterator after every batch.
func workload(size int, seed int64, skewed bool) error {
	rg := rand.New(rand.NewSource(seed))
	t := Trees.New[int, uint32]()
	vs := rg.Perm(size)
	if skewed {
		for i := range vs {
			vs[i] = i
		}
	}
	const batch = 1000
	for i, v := range vs {
		t.Insert(v)
		if rg.Intn(3) == 0 {
			t.Remove(vs[rg.Intn(i+1)])
		}
		if (i+1)%batch != 0 && i != len(vs)-1 {
			continue
		}
		if err := t.Verify(); err != nil {
			return fmt.Errorf("after %d operations: %w", i+1, err)
		}
		j := 0
		for v := range t.All() {
			g, err := t.Get(j)
			if err != nil {
				return err
			}
			if g != v {
				return fmt.Errorf("rank %d holds %d but the iterator gives %d", j, g, v)
			}
			j++
		}
		slog.Debug("batch verified", slog.Int("ops", i+1), slog.Int("size", t.Len()), slog.Int("height", t.Height()))
	}
	slog.Info("workload verified", slog.Int("n", size), slog.Int("size", t.Len()), slog.Int("height", t.Height()), slog.Bool("skewed", skewed))
	return nil
}

func run() error {
	if err := demo("Numbers", []int{20, 10, 11, 30, 2, 29, 33, 28, 17, 4}, []int{0, 1, 2, 3, 8, 9}, []int{0, 1, 2, 3}); err != nil {
		return err
	}
	if err := demo("Strings", []string{"Harry", "Maria", "Bob", "Dan", "Sue", "Ann", "Jose"}, []int{0, 2, 6}, []int{0, 2, 3}); err != nil {
		return err
	}
	if *n < 0 {
		return errors.New("-n must not be negative")
	}
	if *n > 0 {
		return workload(*n, *seed, *skewed)
	}
	return nil
}

func main() {
	flag.Parse()
	if err := setupLogger(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(); err != nil {
		slog.Error("demo failed", slog.Any("error", err))
		os.Exit(1)
	}
}
