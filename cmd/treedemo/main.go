// Command treedemo builds a binary search tree from every line of its input
// files and prints the selected traversal of each tree, one line per tree.
package main

import (
	"context"
	"fmt"
	"github.com/g-m-twostay/go-trees/Lists"
	"github.com/g-m-twostay/go-trees/Trees"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
	"os"
	"strconv"
	"strings"
	"sync"
)

const (
	cfgOrder   = "order"
	cfgDelete  = "delete"
	cfgExtrema = "extrema"
	cfgVerbose = "verbose"

	orderIn   = "inorder"
	orderPre  = "preorder"
	orderPost = "postorder"
)

var Log = logrus.New()

var rootCmd = &cobra.Command{
	Use:           "treedemo [flags] file...",
	Short:         "Build a binary search tree from every line of the given files and print its traversal",
	Args:          cobra.MinimumNArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// registerFlags registers the configuration flags with the provided command.
func registerFlags(cmd *cobra.Command) {
	if !cmd.Flags().Parsed() {
		cmd.Flags().String(cfgOrder, orderIn, "Traversal printed per tree: inorder, preorder or postorder")
		cmd.Flags().String(cfgDelete, "", "Comma-separated keys removed from every tree after building it")
		cmd.Flags().Bool(cfgExtrema, false, "Also print the smallest and largest key of every tree")
		cmd.Flags().Bool(cfgVerbose, false, "Log at debug level")
	}

	for _, v := range []string{
		cfgOrder,
		cfgDelete,
		cfgExtrema,
		cfgVerbose,
	} {
		viper.BindPFlag(v, cmd.Flags().Lookup(v)) // nolint: errcheck
	}
}

func init() {
	registerFlags(rootCmd)
	viper.SetEnvPrefix("TREEDEMO")
	viper.AutomaticEnv()
}

func run(_ *cobra.Command, args []string) error {
	if viper.GetBool(cfgVerbose) {
		Log.SetLevel(logrus.DebugLevel)
	}
	order := viper.GetString(cfgOrder)
	switch order {
	case orderIn, orderPre, orderPost:
	default:
		return fmt.Errorf("unknown traversal order %q", order)
	}
	deletions, err := parseKeys(viper.GetString(cfgDelete))
	if err != nil {
		return err
	}
	extrema := viper.GetBool(cfgExtrema)

	// outMu guards stdout so lines from concurrent files never interleave.
	var outMu sync.Mutex
	g, ctx := errgroup.WithContext(context.Background())
	for _, path := range args {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lines, err := processFile(path, order, deletions, extrema)
			if err != nil {
				return err
			}
			outMu.Lock()
			defer outMu.Unlock()
			lines.All(func(s *string) bool {
				fmt.Println(*s)
				return true
			})
			return nil
		})
	}
	return g.Wait()
}

// processFile builds one tree per non-empty line of the file at path and
// renders each tree per the flags. The returned lines are in file order.
func processFile(path, order string, deletions []int, extrema bool) (*Lists.LinkedList[string], error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	fileLog := Log.WithFields(logrus.Fields{
		"file": path,
	})

	out := Lists.MakeLinkedList[string]()
	built, keys := 0, 0
	for i, line := range strings.Split(string(raw), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		t := Trees.New[int]()
		for _, f := range fields {
			k, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad key %q: %w", path, i+1, f, err)
			}
			t.Insert(k)
		}
		built++
		keys += int(t.Size())
		for _, k := range deletions {
			if !t.Remove(k) {
				fileLog.WithFields(logrus.Fields{
					"line": i + 1, "key": k,
				}).Debug("delete target absent")
			}
		}
		out.PushBack(keyLine(t, order))
		if extrema {
			out.PushBack(extremaLine(t))
		}
	}

	fileLog.WithFields(logrus.Fields{
		"trees": built, "keys": keys,
	}).Debug("file processed")
	return out, nil
}

// keyLine renders the keys of t in the given traversal order, comma-joined.
// An empty tree renders as an empty line.
func keyLine(t *Trees.BSTree[int], order string) string {
	var walk func(func(*int) bool)
	switch order {
	case orderPre:
		walk = t.PreOrder
	case orderPost:
		walk = t.PostOrder
	default:
		walk = t.InOrder
	}
	parts := make([]string, 0, t.Size())
	walk(func(k *int) bool {
		parts = append(parts, strconv.Itoa(*k))
		return true
	})
	return strings.Join(parts, ",")
}

func extremaLine(t *Trees.BSTree[int]) string {
	min, ok := t.Minimum()
	if !ok {
		return "min/max: empty tree"
	}
	max, _ := t.Maximum()
	return fmt.Sprintf("min=%d max=%d", min, max)
}

func parseKeys(csv string) ([]int, error) {
	if csv == "" {
		return nil, nil
	}
	parts := strings.Split(csv, ",")
	keys := make([]int, len(parts))
	for i, p := range parts {
		k, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad delete key %q: %w", p, err)
		}
		keys[i] = k
	}
	return keys, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		Log.Fatal(err)
	}
}
