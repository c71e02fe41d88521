package catalog

import (
	"github.com/sghaida/gopatterns/patterns/abstractfactory"
	"github.com/sghaida/gopatterns/patterns/adapter"
	"github.com/sghaida/gopatterns/patterns/builder"
	"github.com/sghaida/gopatterns/patterns/chain"
	"github.com/sghaida/gopatterns/patterns/command"
	"github.com/sghaida/gopatterns/patterns/composite"
	"github.com/sghaida/gopatterns/patterns/decorator"
	"github.com/sghaida/gopatterns/patterns/facade"
	"github.com/sghaida/gopatterns/patterns/factory"
	"github.com/sghaida/gopatterns/patterns/flyweight"
	"github.com/sghaida/gopatterns/patterns/iterator"
	"github.com/sghaida/gopatterns/patterns/observer"
	"github.com/sghaida/gopatterns/patterns/prototype"
	"github.com/sghaida/gopatterns/patterns/proxy"
	"github.com/sghaida/gopatterns/patterns/singleton"
	"github.com/sghaida/gopatterns/patterns/strategy"
)

// Builtin returns a registry holding every demo in this module.
//
// Order: the five core demos first, then the rest grouped by category.
func Builtin() *Registry {
	return NewRegistry().
		MustRegister(Demo{Name: "strategy", Category: Behavioral, Summary: "vehicles delegate driving to an interchangeable strategy", Run: strategy.Demo}).
		MustRegister(Demo{Name: "observer", Category: Behavioral, Summary: "restocking notifies registered observers in order", Run: observer.Demo}).
		MustRegister(Demo{Name: "decorator", Category: Structural, Summary: "toppings wrap a pizza and add to its cost", Run: decorator.Demo}).
		MustRegister(Demo{Name: "factory", Category: Creational, Summary: "a discriminator selects the concrete shape", Run: factory.Demo}).
		MustRegister(Demo{Name: "abstractfactory", Category: Creational, Summary: "one factory yields a consistent widget family", Run: abstractfactory.Demo}).
		MustRegister(Demo{Name: "builder", Category: Creational, Summary: "step-by-step cluster construction with validation", Run: builder.Demo}).
		MustRegister(Demo{Name: "singleton", Category: Creational, Summary: "one lazily created shared instance", Run: singleton.Demo}).
		MustRegister(Demo{Name: "prototype", Category: Creational, Summary: "independent copies through Clone", Run: prototype.Demo}).
		MustRegister(Demo{Name: "adapter", Category: Structural, Summary: "wrap an incompatible API behind the expected interface", Run: adapter.Demo}).
		MustRegister(Demo{Name: "composite", Category: Structural, Summary: "files and folders searched through one interface", Run: composite.Demo}).
		MustRegister(Demo{Name: "facade", Category: Structural, Summary: "one call over order, payment and delivery", Run: facade.Demo}).
		MustRegister(Demo{Name: "flyweight", Category: Structural, Summary: "books share cached type records", Run: flyweight.Demo}).
		MustRegister(Demo{Name: "proxy", Category: Structural, Summary: "rate-limiting proxy in front of a server", Run: proxy.Demo}).
		MustRegister(Demo{Name: "chain", Category: Behavioral, Summary: "departments handle an order in sequence", Run: chain.Demo}).
		MustRegister(Demo{Name: "command", Category: Behavioral, Summary: "remote control slots execute wrapped actions", Run: command.Demo}).
		MustRegister(Demo{Name: "iterator", Category: Behavioral, Summary: "walk a container through a cursor", Run: iterator.Demo})
}
