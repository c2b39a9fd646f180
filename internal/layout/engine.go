package layout

import "fmt"

// DefaultNamespace is the layout namespace the generator registers under.
const DefaultNamespace = "stream"

// Provider is what the runtime needs from a layout generator: one call per
// layout demand and one per user command.
type Provider interface {
	Namespace() string
	GenerateLayout(viewCount, usableWidth, usableHeight, tags uint32, output string) (GeneratedLayout, error)
	UserCmd(cmd string, tags *uint32, output string) error
}

// Engine generates main-plus-stack layouts. It is immutable once built and
// safe to share.
type Engine struct {
	namespace string
	tiers     []Tier
	remainder RemainderPolicy
}

type Option func(*Engine)

// WithNamespace overrides the namespace used in layout names.
func WithNamespace(ns string) Option {
	return func(e *Engine) {
		if ns != "" {
			e.namespace = ns
		}
	}
}

// WithTiers replaces the main area tier table. A nil table keeps the default.
func WithTiers(tiers []Tier) Option {
	return func(e *Engine) {
		if tiers != nil {
			e.tiers = append([]Tier(nil), tiers...)
		}
	}
}

// WithRemainder sets the row height remainder policy.
func WithRemainder(p RemainderPolicy) Option {
	return func(e *Engine) {
		e.remainder = p
	}
}

// NewEngine builds an engine with the default tiers and RemainderDrop unless
// overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		namespace: DefaultNamespace,
		tiers:     DefaultTiers(),
		remainder: RemainderDrop,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Namespace() string { return e.namespace }

func (e *Engine) Tiers() []Tier { return append([]Tier(nil), e.tiers...) }

func (e *Engine) Remainder() RemainderPolicy { return e.remainder }

// LayoutName is the name reported to the compositor for output.
func (e *Engine) LayoutName(output string) string {
	return fmt.Sprintf("%s for output %s", e.namespace, output)
}

// Generate computes the layout for viewCount views on a usable area of
// usableWidth x usableHeight.
func (e *Engine) Generate(viewCount, usableWidth, usableHeight uint32, output string) GeneratedLayout {
	main := SelectMain(e.tiers, usableWidth, usableHeight)

	views := make([]Rectangle, 0, viewCount)
	if viewCount > 0 {
		views = append(views, main.Rect())
	}

	if viewCount > 1 {
		p := PartitionStack(viewCount, main.X, main.Width, usableWidth)
		views = append(views, PlaceColumn(p.LeftCount, p.LeftWidth, usableHeight, 0, e.remainder)...)
		views = append(views, PlaceColumn(p.RightCount, p.RightWidth, usableHeight, main.X+int32(main.Width), e.remainder)...)
	}

	return GeneratedLayout{
		LayoutName: e.LayoutName(output),
		Views:      views,
	}
}

// GenerateLayout implements Provider. Tags do not influence the layout and
// the error is always nil.
func (e *Engine) GenerateLayout(viewCount, usableWidth, usableHeight, _ uint32, output string) (GeneratedLayout, error) {
	return e.Generate(viewCount, usableWidth, usableHeight, output), nil
}

// UserCmd implements Provider. No commands are defined yet: every command is
// accepted and ignored. New commands would hook in here.
func (e *Engine) UserCmd(_ string, _ *uint32, _ string) error {
	return nil
}
