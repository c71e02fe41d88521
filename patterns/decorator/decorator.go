package decorator

// Pizza is the decorated capability.
type Pizza interface {
	Cost() int
}

// Pizza1 is a base pizza.
type Pizza1 struct{}

// Cost implements Pizza.
func (Pizza1) Cost() int { return 10 }

// Pizza2 is a base pizza.
type Pizza2 struct{}

// Cost implements Pizza.
func (Pizza2) Cost() int { return 20 }

// Topping1 adds 1 to the pizza it wraps.
type Topping1 struct {
	pizza Pizza
}

// NewTopping1 wraps p. p must not be nil.
func NewTopping1(p Pizza) *Topping1 { return &Topping1{pizza: p} }

// Cost implements Pizza, adding 1 to the wrapped cost.
func (t *Topping1) Cost() int { return t.pizza.Cost() + 1 }

// Topping2 adds 2 to the pizza it wraps.
type Topping2 struct {
	pizza Pizza
}

// NewTopping2 wraps p. p must not be nil.
func NewTopping2(p Pizza) *Topping2 { return &Topping2{pizza: p} }

// Cost implements Pizza, adding 2 to the wrapped cost.
func (t *Topping2) Cost() int { return t.pizza.Cost() + 2 }
