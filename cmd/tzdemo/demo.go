package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/g-m-twostay/go-containers/Lists"
	"github.com/g-m-twostay/go-containers/Maps/ChainTable"
	"github.com/g-m-twostay/go-containers/Queues"
	"github.com/g-m-twostay/go-containers/Trees"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const junk = "**junk**"

func newDemoCmd(load func() (settings, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Replay the reference scenarios, each line should read hello, world!",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := load()
			if err != nil {
				return err
			}
			return runDemo(cmd.OutOrStdout(), s)
		},
	}
}

func runDemo(w io.Writer, s settings) error {
	l := Lists.New[string](nil)
	a := l.InsertAfter(nil, "hello")
	l.InsertBefore(l.InsertAfter(a, "world!"), ", ")
	fmt.Fprintf(w, "list: %s\n", strings.Join(l.Values(), ""))
	l.Free()

	st := Queues.MakeLinkedStack[string](nil)
	for _, v := range []string{"o, world!", junk, "l", "l", "he", junk} {
		st.Push(v)
	}
	got, err := drain(st, 6, map[int]bool{0: true, 4: true})
	if err != nil {
		return errors.Wrap(err, "stack")
	}
	fmt.Fprintf(w, "stack: %s\n", got)

	q := Queues.MakeLinkedQueue[string](nil)
	for _, v := range []string{"he", junk, "l", "l", "o, world!"} {
		q.Push(v)
	}
	if got, err = drain(q, 5, map[int]bool{1: true}); err != nil {
		return errors.Wrap(err, "queue")
	}
	fmt.Fprintf(w, "queue: %s\n", got)

	t, err := ChainTable.NewCustom[string](s.length, s.hash, nil, nil)
	if err != nil {
		return err
	}
	defer t.Free()
	for _, kv := range [][2]string{{"part1", "hello"}, {"part2", ", "}, {"junk!!!", "this is some junk!!"}, {"part3", "world!"}} {
		t.Store(kv[0], kv[1])
	}
	if t.Store("part2", "this won't insert!") {
		return errors.New("table: duplicate key was stored")
	}
	if _, ok := t.Remove("junk!!!"); !ok {
		return errors.New("table: junk!!! was not stored")
	}
	var b strings.Builder
	for _, k := range []string{"part1", "part2", "part3"} {
		v, _ := t.Fetch(k)
		b.WriteString(v)
	}
	fmt.Fprintf(w, "table: %s\n", b.String())

	tree := Trees.NewBinTree[int](nil)
	for _, v := range []int{5, 3, 8, 1, 4, 9} {
		Trees.Push(tree, v)
	}
	var vs []string
	next := tree.InOrder()
	for v, ok := next(); ok; v, ok = next() {
		vs = append(vs, fmt.Sprint(v))
	}
	fmt.Fprintf(w, "tree: %s\n", strings.Join(vs, " "))
	return nil
}

// drain pops n items from q, concatenating all but the ones whose pop index is in skip.
func drain(q Queues.Queue[string], n int, skip map[int]bool) (string, error) {
	var b strings.Builder
	for i := 0; i < n; i++ {
		v, err := q.Pop()
		if err != nil {
			return "", err
		}
		if !skip[i] {
			b.WriteString(v)
		}
	}
	return b.String(), nil
}
