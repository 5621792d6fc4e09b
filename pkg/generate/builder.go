package generate

import "github.com/quarryforge/monzo-beancount/pkg/ledger"

// Builder is an ordered, append-only accumulator of directives. The
// assembler owns one per run; append order is the serialization order.
type Builder struct {
	directives []ledger.Directive
}

// Add appends directives in the order given.
func (b *Builder) Add(ds ...ledger.Directive) {
	b.directives = append(b.directives, ds...)
}

// Directives returns the accumulated list.
func (b *Builder) Directives() []ledger.Directive {
	return b.directives
}
