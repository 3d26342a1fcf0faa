package assembler

import (
	"fmt"
	"time"

	"github.com/vvka-141/premisgen/internal/binding"
	"github.com/vvka-141/premisgen/internal/schema"
	"github.com/vvka-141/premisgen/pkg/premisgen"
)

// Options are the record values that do not come from the scanned files.
type Options struct {
	SIPID               string
	SystemAgent         premisgen.Agent
	Depositor           premisgen.Agent
	Rights              premisgen.Rights
	CreatingApplication premisgen.CreatingApplication
	IngestionEvent      bool
	Now                 func() time.Time
}

// OptionsFrom copies the record values of cfg.
func OptionsFrom(cfg *premisgen.GenerateConfig) Options {
	return Options{
		SIPID:               cfg.SIPID,
		SystemAgent:         cfg.SystemAgent,
		Depositor:           cfg.Depositor,
		Rights:              cfg.Rights,
		CreatingApplication: cfg.CreatingApplication,
		IngestionEvent:      cfg.IngestionEvent,
		Now:                 cfg.Clock(),
	}
}

// Assembler drives synthesis, binding and attachment to build one record
// per Build call.
// Thread-Safety: NOT safe for concurrent Build() calls on the same instance.
type Assembler struct {
	opts     Options
	registry *binding.Registry
	table    binding.AttachmentTable
	sink     Sink
	logger   premisgen.Logger
}

// New creates an assembler over the PREMIS v3 binding.
// Panics if sink or logger is nil (programming error).
func New(opts Options, sink Sink, logger premisgen.Logger) *Assembler {
	if sink == nil {
		panic("sink cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Assembler{
		opts:     opts,
		registry: schema.NewRegistry(),
		table:    schema.Attachments(),
		sink:     sink,
		logger:   logger,
	}
}

// WithRegistry replaces the strategy registry, e.g. to take a kind's
// strategies away in tests.
func (a *Assembler) WithRegistry(registry *binding.Registry) *Assembler {
	if registry == nil {
		panic("registry cannot be nil")
	}
	a.registry = registry
	return a
}

// Build assembles the record for entries and hands the root to the sink.
//
// Problems with individual elements become phase warnings. The returned
// error is non-nil only when the sink fails; the result is returned in
// that case too.
func (a *Assembler) Build(entries []premisgen.FileEntry) (*Result, error) {
	b := &build{
		Assembler: a,
		synth:     binding.NewSynthesizer(a.registry, a.logger),
		binder:    binding.NewBinder(a.logger),
		attacher:  binding.NewAttacher(a.table, a.logger),
		entries:   entries,
	}

	b.run(PhaseRoot, b.buildRoot)
	b.run(PhaseIntellectualObject, b.buildIntellectualObject)
	b.run(PhaseAgentsRights, b.buildAgentsAndRights)
	b.run(PhaseObjects, b.buildObjects)
	b.run(PhaseRelationships, b.buildRelationships)
	if a.opts.IngestionEvent {
		b.run(PhaseEvents, b.buildEvents)
	}
	b.run(PhaseSummary, b.summarize)

	result := &Result{Root: b.root, Phases: b.phases, Summary: b.summary}
	if err := a.sink.Write(b.root); err != nil {
		return result, fmt.Errorf("failed to write record: %w", err)
	}
	return result, nil
}

// build holds the state of one Build call.
type build struct {
	*Assembler
	synth    *binding.Synthesizer
	binder   *binding.Binder
	attacher *binding.Attacher
	entries  []premisgen.FileEntry

	root    *schema.Premis
	entity  binding.Instance
	summary Summary

	metadataIDs []string
	schemaIDs   []string

	phases  []PhaseResult
	current *PhaseResult
}

// run executes one phase, turning a panic into a warning.
func (b *build) run(phase Phase, fn func()) {
	b.phases = append(b.phases, PhaseResult{Phase: phase})
	b.current = &b.phases[len(b.phases)-1]
	b.logger.Verbose("phase %s", phase)

	defer func() {
		if r := recover(); r != nil {
			b.warn("phase aborted: %v", r)
		}
		b.current = nil
	}()
	fn()
}

func (b *build) warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if b.current != nil {
		b.current.Warnings = append(b.current.Warnings, msg)
		b.logger.Warn("%s: %s", b.current.Phase, msg)
		return
	}
	b.logger.Warn("%s", msg)
}

// create synthesizes an instance of kind, or warns and returns nil.
func (b *build) create(kind binding.Kind, hint string) binding.Instance {
	inst, err := b.synth.Synthesize(kind, hint)
	if err != nil {
		b.warn("%v", err)
		return nil
	}
	return inst
}

// set binds value to property, warning on failure. A nil instance is
// skipped silently since its creation already warned.
func (b *build) set(inst binding.Instance, property string, value any) bool {
	if inst == nil {
		return false
	}
	if !b.binder.Bind(inst, property, value) {
		b.warn("%s.%s: value %v not accepted", inst.Kind(), property, value)
		return false
	}
	return true
}

// attach links child under parent, warning when the child is dropped.
func (b *build) attach(parent, child binding.Instance) bool {
	if parent == nil || child == nil {
		return false
	}
	if !b.attacher.Attach(parent, child) {
		b.warn("%s dropped: no place under %s", child.Kind(), parent.Kind())
		return false
	}
	b.current.Attached++
	return true
}

// identifier builds one of the <kind>Type / <kind>Value identifier elements.
func (b *build) identifier(kind binding.Kind, typ, value string) binding.Instance {
	id := b.create(kind, "")
	if id == nil {
		return nil
	}
	b.set(id, string(kind)+"Type", typ)
	b.set(id, string(kind)+"Value", value)
	return id
}

func (b *build) timestamp() string {
	return b.opts.Now().Format(time.RFC3339)
}
