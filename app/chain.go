package app

import (
	"reflect"

	"github.com/iov-one/remit"
)

// Decorators holds a chain of decorators, not yet resolved by a Handler
type Decorators struct {
	chain []remit.Decorator
}

/*
ChainDecorators takes a chain of decorators,
and upon adding a final Handler (often a Router),
returns a Handler that will execute this whole stack.

  app.ChainDecorators(
    utils.NewLogging(),
    utils.NewRecovery(),
    sigs.NewDecorator(),
    utils.NewSavepoint().OnDeliver(),
  ).WithHandler(
    router,
  )
*/
func ChainDecorators(chain ...remit.Decorator) Decorators {
	return Decorators{}.Chain(chain...)
}

// Chain allows us to keep adding more Decorators to the chain
func (d Decorators) Chain(chain ...remit.Decorator) Decorators {
	chain = cutoffNil(chain)
	newChain := make([]remit.Decorator, 0, len(d.chain)+len(chain))
	newChain = append(newChain, d.chain...)
	newChain = append(newChain, chain...)
	return Decorators{newChain}
}

// cutoffNil returns the given decorators without the nil values. Typed nil
// pointers are dropped as well.
func cutoffNil(ds []remit.Decorator) []remit.Decorator {
	res := make([]remit.Decorator, 0, len(ds))
	for _, d := range ds {
		if d == nil {
			continue
		}
		if v := reflect.ValueOf(d); v.Kind() == reflect.Ptr && v.IsNil() {
			continue
		}
		res = append(res, d)
	}
	return res
}

// WithHandler resolves the stack and returns a concrete Handler
// that will pass through the chain of decorators before calling
// the final Handler.
func (d Decorators) WithHandler(h remit.Handler) remit.Handler {
	// the first decorator of the chain is the outermost one
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = step{d: d.chain[i], next: h}
	}
	return h
}

// step captures one step executing a decorator around a
// specific Handler.
type step struct {
	d    remit.Decorator
	next remit.Handler
}

var _ remit.Handler = step{}

// Check passes the handler into the decorator, implements Handler
func (s step) Check(ctx remit.Context, store remit.KVStore, tx remit.Tx) (*remit.CheckResult, error) {
	return s.d.Check(ctx, store, tx, s.next)
}

// Deliver passes the handler into the decorator, implements Handler
func (s step) Deliver(ctx remit.Context, store remit.KVStore, tx remit.Tx) (*remit.DeliverResult, error) {
	return s.d.Deliver(ctx, store, tx, s.next)
}
