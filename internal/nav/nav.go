// Package nav defines the navigation contract between screen sessions and
// the host UI layer.
package nav

import "sync"

// Screen names used by the demo binary and tests.
const (
	ScreenProductDetail  = "product_detail"
	ScreenBarcodeScanner = "barcode_scanner"
)

// Params carries values handed to a pushed screen. OnScan is the optional
// one-shot callback a caller supplies when pushing the scanner.
type Params struct {
	ProductID string
	OnScan    func(payload string)
}

// Route identifies a screen plus its parameters.
type Route struct {
	Name   string
	Params Params
}

// Navigator is implemented by the host navigation layer.
type Navigator interface {
	Push(route Route)
	Back()
}

// Stack is an in-process Navigator used by the demo binary and tests.
type Stack struct {
	mu     sync.Mutex
	routes []Route
}

// NewStack builds a Stack rooted at the given route.
func NewStack(root Route) *Stack {
	return &Stack{routes: []Route{root}}
}

// Push appends a route on top of the stack.
func (s *Stack) Push(route Route) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes = append(s.routes, route)
}

// Back pops the top route. The root route never pops.
func (s *Stack) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.routes) > 1 {
		s.routes = s.routes[:len(s.routes)-1]
	}
}

// Current returns the route on top of the stack.
func (s *Stack) Current() Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.routes[len(s.routes)-1]
}

// Depth returns the number of routes on the stack.
func (s *Stack) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.routes)
}
