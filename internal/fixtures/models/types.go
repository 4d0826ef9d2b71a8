// Package models holds marked types whose generated accessors are checked
// in, so that the runtime can be tested against real generator output.
package models

import "time"

//go:generate go run github.com/signadot/go-accessor/cmd/accessor-gen

//accessor:instantiate Box[time.Time]
//accessor:instantiate Pair[string, int]

// Data is a plain record.
//
//accessor:generate
type Data struct {
	Id   int
	Name string
}

// NullableData has members that can be nil.
//
//accessor:generate
type NullableData struct {
	Name  *string
	Tags  []string
	Attrs map[string]int
	Any   any
	Count int
}

// Box holds one value of any type.
//
//accessor:generate
//accessor:instantiate Box[int]
//accessor:instantiate Box[string]
type Box[T any] struct {
	Value T
}

//accessor:generate
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Account exercises member tags.
//
//accessor:generate
type Account struct {
	ID       string `accessor:"readonly"`
	Secret   string `accessor:"writeonly"`
	Internal string `accessor:"-"`
	Created  time.Time
	Owner    string `accessor:"name=OwnerName"`
	Meta

	balance int
}

// Meta is embedded in Account; its fields are not members of Account.
type Meta struct {
	Note string
}

// Balance returns the unexported balance.
func (a *Account) Balance() int { return a.balance }

// Deposit adds to the unexported balance.
func (a *Account) Deposit(n int) { a.balance += n }
