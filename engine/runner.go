// Package engine drives a full validation run over a plugin project:
// root discovery, generation detection, terminology seeding, then one
// synchronous pass over the process-definition tree and the
// clinical-resource tree. Every per-file failure becomes a finding;
// the run itself only stops on context cancellation.
package engine

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	pv "github.com/careproc/validator"
	"github.com/careproc/validator/bpmn"
	"github.com/careproc/validator/pkg/logger"
	"github.com/careproc/validator/process"
	"github.com/careproc/validator/reflection"
	"github.com/careproc/validator/resolve"
	"github.com/careproc/validator/resource"
	"github.com/careproc/validator/terminology"
)

// Conventional subdirectory names under a project root.
const (
	processDir  = "bpe"
	resourceDir = "fhir"
)

// Runner executes validation runs. A Runner is cheap; collaborators are
// assembled per run because root and generation may differ between
// runs.
type Runner struct {
	options *pv.Options
	log     *logger.Logger
}

// Result is the outcome of one validation run.
type Result struct {
	// Root is the project root the run was anchored at.
	Root string

	// Generation is the API generation the project declares.
	Generation pv.Generation

	// Seed summarizes terminology seeding, when enabled.
	Seed terminology.SeedStats

	// Report holds every finding of the run.
	Report *pv.Report
}

// New creates a Runner with the given options.
func New(opts ...pv.Option) *Runner {
	options := pv.DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return &Runner{
		options: options,
		log:     logger.Default(),
	}
}

// Options returns the runner's options.
func (r *Runner) Options() *pv.Options {
	return r.options
}

// Run validates the project. The only error condition is context
// cancellation; everything else is captured as findings.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	root := r.options.ProjectRoot
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("determine working directory: %w", err)
		}
		root = resolve.FindProjectRoot(wd)
	}
	r.log.Info("validating project at %s", root)

	generation := r.options.Generation
	if !generation.IsValid() {
		generation = resolve.DetectGeneration(root)
	}
	r.log.Info("API generation %s", generation)

	res := &Result{
		Root:       root,
		Generation: generation,
		Report:     pv.NewReport(),
	}

	cache := terminology.NewCache()
	if r.options.SeedTerminology {
		res.Seed = cache.SeedFromProject(root)
		r.log.Debug("seeded %d vocabulary systems from %d files",
			res.Seed.SystemsLoaded, res.Seed.FilesScanned)
	}

	resolver := resolve.New(root)

	procValidator := process.New(resolver,
		reflection.NewDirInspector(r.options.BuildOutputDir), generation)
	procValidator.CheckClasses = r.options.ValidateClasses

	registry := resource.NewRegistry(resource.Deps{Cache: cache, Resolver: resolver})

	if err := r.runProcesses(ctx, root, procValidator, res.Report); err != nil {
		return nil, err
	}
	if err := r.runResources(ctx, root, registry, res.Report); err != nil {
		return nil, err
	}

	counts := res.Report.Counts()
	r.log.Info("run finished: %d errors, %d warnings, %d successes",
		counts[pv.SeverityError], counts[pv.SeverityWarning], counts[pv.SeveritySuccess])
	return res, nil
}

// runProcesses validates every process-definition file under the
// conventional process trees.
func (r *Runner) runProcesses(ctx context.Context, root string, v *process.Validator, report *pv.Report) error {
	return r.walkTree(ctx, root, processDir, func(path, rel string) {
		if !strings.EqualFold(filepath.Ext(path), bpmn.Ext) {
			return
		}
		defs, err := bpmn.ParseFile(path)
		if err != nil {
			r.log.Warn("unparsable process definition %s: %v", rel, err)
			report.Add(pv.Error(pv.RuleProcessUnparsable).
				Message(fmt.Sprintf("process definition cannot be parsed: %v", err)).
				In(rel).Build())
			return
		}
		report.AddAll(v.ValidateDefinitions(defs, rel))
	})
}

// runResources validates every clinical-resource file under the
// conventional resource trees.
func (r *Runner) runResources(ctx context.Context, root string, registry *resource.Registry, report *pv.Report) error {
	return r.walkTree(ctx, root, resourceDir, func(path, rel string) {
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".xml" && ext != ".json" {
			return
		}
		doc, err := resolve.ParseDocument(path)
		if err != nil {
			r.log.Warn("unparsable resource %s: %v", rel, err)
			report.Add(pv.Error(pv.RuleResourceUnparsable).
				Message(fmt.Sprintf("resource cannot be parsed: %v", err)).
				In(rel).Build())
			return
		}
		report.AddAll(registry.Dispatch(doc, rel))
	})
}

// walkTree visits every regular file under the conventional locations
// of the named tree, nested Maven layout first. Walk errors are logged
// and skipped; only context cancellation stops the walk.
func (r *Runner) walkTree(ctx context.Context, root, name string, visit func(path, rel string)) error {
	for _, dir := range []string{
		filepath.Join(root, "src", "main", "resources", name),
		filepath.Join(root, name),
	} {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if cerr := ctx.Err(); cerr != nil {
				return cerr
			}
			if err != nil {
				if !os.IsNotExist(err) {
					r.log.Debug("skipping %s: %v", path, err)
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			rel, rerr := filepath.Rel(root, path)
			if rerr != nil {
				rel = path
			}
			visit(path, filepath.ToSlash(rel))
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
