package tools

import (
	"fmt"
	"os"

	"github.com/named-data/backdrop/std/log"
	"github.com/named-data/backdrop/std/types/arc"
	"github.com/named-data/backdrop/std/types/backdrop"
	"github.com/named-data/backdrop/std/utils"
	"github.com/named-data/backdrop/std/utils/toolutils"
	"github.com/spf13/cobra"
)

// Check verifies that conversions between pointer variants preserve
// identity, counts and payload bytes.
type Check struct {
	buffers int
	size    int
	failed  int
}

func CmdCheck() *cobra.Command {
	c := Check{}

	cmd := &cobra.Command{
		GroupID: "tools",
		Use:     "check",
		Short:   "Verify pointer conversions round-trip",
		Args:    cobra.NoArgs,
		Example: `  backdrop check --buffers 64`,
		Run:     c.run,
	}

	cmd.Flags().IntVar(&c.buffers, "buffers", 64, "number of buffers in the payload")
	cmd.Flags().IntVar(&c.size, "size", 1024, "size of each buffer, in bytes")
	return cmd
}

func (c *Check) String() string {
	return "check"
}

type checkResult struct {
	name string
	err  error
}

func (c *Check) run(_ *cobra.Command, _ []string) {
	before := arc.Allocations().Live
	results := c.checks()

	p := toolutils.StatusPrinter{File: os.Stdout, Padding: 10}
	for _, r := range results {
		p.Print(r.name, utils.If(r.err == nil, "OK", "FAIL"))
		if r.err != nil {
			c.failed++
			log.Error(c, "Check failed", "check", r.name, "err", r.err)
		}
	}

	if leaked := arc.Allocations().Live - before; leaked != 0 {
		log.Fatal(c, "Allocations leaked", "count", leaked)
	}
	if c.failed > 0 {
		log.Fatal(c, "Checks failed", "count", c.failed)
	}
}

func (c *Check) checks() []checkResult {
	return []checkResult{
		{"raw", c.checkRaw()},
		{"offset", c.checkOffset()},
		{"union", c.checkUnion()},
		{"slice", c.checkSlice()},
	}
}

func expect(ok bool, format string, v ...any) error {
	if ok {
		return nil
	}
	return fmt.Errorf(format, v...)
}

func (c *Check) checkRaw() error {
	a := arc.New[backdrop.Trivial](newFrame(c.buffers, c.size))
	defer a.Release()
	sum, heap := a.Get().Sum(), a.HeapPtr()

	a = arc.FromRaw[backdrop.Trivial](a.IntoRaw())
	if err := expect(a.HeapPtr() == heap, "identity changed"); err != nil {
		return err
	}
	return expect(a.Get().Sum() == sum, "payload digest changed")
}

func (c *Check) checkOffset() error {
	a := arc.New[backdrop.Trivial](newFrame(c.buffers, c.size))
	keep := a.Clone()
	defer keep.Release()
	sum := a.Get().Sum()

	o := a.IntoOffset()
	back := o.IntoArc()
	defer back.Release()
	if err := expect(back.PtrEq(&keep), "identity changed"); err != nil {
		return err
	}
	if err := expect(back.Count() == 2, "count is %d, want 2", back.Count()); err != nil {
		return err
	}
	return expect(back.Get().Sum() == sum, "payload digest changed")
}

func (c *Check) checkUnion() error {
	f := arc.New[backdrop.Trivial](newFrame(c.buffers, c.size))
	sum := f.Get().Sum()
	u := arc.NewRight[string, backdrop.Trivial](&f)
	defer u.Release()

	d := u.Clone()
	defer d.Release()
	right := d.Inspect().Right()
	if err := expect(right.IsSet() && !u.Inspect().Left().IsSet(), "wrong side"); err != nil {
		return err
	}
	return expect(right.Unwrap().Get().Sum() == sum, "payload digest changed")
}

func (c *Check) checkSlice() error {
	frames := make([]frame, c.buffers)
	for i := range frames {
		frames[i] = newFrame(1, c.size)
	}
	a := arc.FromHeaderAndSlice[backdrop.Trivial](len(frames), frames)
	defer a.Release()
	for i := range frames {
		if err := expect(a.Get().Slice()[i].Sum() == frames[i].Sum(), "element %d differs", i); err != nil {
			return err
		}
	}
	return expect(a.Get().Header == a.Get().Len(), "header %d, len %d", a.Get().Header, a.Get().Len())
}
