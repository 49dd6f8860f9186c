// Package emit builds the client declaration model for one batch of host
// types.
//
// Types are grouped by namespace, namespaces and types are sorted ordinally,
// class and value members are sorted by name and enum members keep their
// declared order. The output is a pure function of the input batch and
// options, so repeated runs produce identical compile units.
package emit

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/developerxd/webapiclientgen/clientgen/cherry"
	"github.com/developerxd/webapiclientgen/clientgen/codedom"
	"github.com/developerxd/webapiclientgen/clientgen/doccomment"
	"github.com/developerxd/webapiclientgen/clientgen/hosttype"
	"github.com/developerxd/webapiclientgen/clientgen/translate"
	"github.com/developerxd/webapiclientgen/errors"
	"github.com/developerxd/webapiclientgen/logger"
)

// Policy decides which members are exposed and which are required.
type Policy interface {
	Classify(member *hosttype.Member, declaring *hosttype.Type, methods cherry.Method) cherry.Category
}

// DocLookup resolves documentation by T:/P:/F: key.
type DocLookup interface {
	Lookup(key string) (doccomment.Doc, bool)
}

// Options configures one run.
type Options struct {
	// Suffix is appended to every host namespace, e.g. ".Client".
	Suffix  string
	Methods cherry.Method
	Policy  Policy
	// Docs is optional.
	Docs DocLookup
	// Workers bounds how many namespace groups are built concurrently.
	// Zero or one builds them sequentially.
	Workers int
}

// Diagnostic is a non-fatal problem found while emitting.
type Diagnostic struct {
	Namespace string
	Type      string
	Message   string
}

func (d Diagnostic) String() string {
	return d.Namespace + "." + d.Type + ": " + d.Message
}

// Result is the output of one run.
type Result struct {
	Unit        *codedom.CompileUnit
	Diagnostics []Diagnostic
}

// Emit builds the compile unit for types. Every type in the batch is
// treated as pending, so references between them are mirrored.
func Emit(types []*hosttype.Type, opts Options) (*Result, error) {
	return EmitContext(context.Background(), types, opts)
}

// EmitContext is Emit with cancellation. A translation assertion failure
// in any group cancels the others and no unit is returned.
func EmitContext(ctx context.Context, types []*hosttype.Type, opts Options) (*Result, error) {
	if len(types) == 0 {
		return nil, errors.NewInvalidInputError("no host types to emit")
	}
	if opts.Policy == nil {
		return nil, errors.NewInvalidInputError("no member policy configured")
	}
	for i, t := range types {
		if t == nil {
			return nil, errors.NewInvalidInputError("host type %d is nil", i)
		}
	}

	start := time.Now()
	groups := groupByNamespace(types)
	namespaces := make(map[string]bool, len(groups))
	for _, g := range groups {
		namespaces[g.namespace] = true
	}

	b := &builder{
		tr:         translate.New(hosttype.NewPendingSet(types), opts.Suffix),
		opts:       opts,
		namespaces: namespaces,
	}

	results := make([]groupResult, len(groups))
	if opts.Workers <= 1 || len(groups) == 1 {
		for i, g := range groups {
			if err := ctx.Err(); err != nil {
				return nil, errors.Wrap(err, "emit cancelled")
			}
			r, err := b.buildGroup(ctx, g)
			if err != nil {
				return nil, err
			}
			results[i] = r
		}
	} else {
		eg, gctx := errgroup.WithContext(ctx)
		eg.SetLimit(min(opts.Workers, len(groups)))
		for i, g := range groups {
			eg.Go(func() error {
				r, err := b.buildGroup(gctx, g)
				if err != nil {
					return err
				}
				results[i] = r
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	}

	res := &Result{Unit: codedom.NewCompileUnit()}
	for _, r := range results {
		res.Unit.Namespaces = append(res.Unit.Namespaces, r.ns)
		res.Diagnostics = append(res.Diagnostics, r.diags...)
	}

	logger.Debugw("emitted compile unit",
		logger.FieldCount, len(types),
		"namespaces", len(groups),
		logger.FieldWorkers, opts.Workers,
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return res, nil
}

type group struct {
	namespace string
	types     []*hosttype.Type
}

type groupResult struct {
	ns    *codedom.Namespace
	diags []Diagnostic
}

func groupByNamespace(types []*hosttype.Type) []group {
	byNS := make(map[string][]*hosttype.Type)
	for _, t := range types {
		byNS[t.Namespace] = append(byNS[t.Namespace], t)
	}
	keys := make([]string, 0, len(byNS))
	for k := range byNS {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]group, len(keys))
	for i, k := range keys {
		ts := byNS[k]
		sort.SliceStable(ts, func(a, b int) bool { return ts[a].Name < ts[b].Name })
		out[i] = group{namespace: k, types: ts}
	}
	return out
}
