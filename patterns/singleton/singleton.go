package singleton

import (
	"sync"
	"sync/atomic"
)

// Config is the single shared value.
type Config struct {
	Name string
}

// lazy builds its value on first get and counts constructions.
type lazy struct {
	once    sync.Once
	value   *Config
	created atomic.Int32
}

func (l *lazy) get() *Config {
	l.once.Do(func() {
		l.created.Add(1)
		l.value = &Config{Name: "shared"}
	})
	return l.value
}

var shared lazy

// Instance returns the process-wide Config, creating it on first call.
func Instance() *Config { return shared.get() }

// Created reports how many times the instance was constructed. It is 0 until
// the first Instance call and 1 afterwards; reading it never constructs.
func Created() int { return int(shared.created.Load()) }
