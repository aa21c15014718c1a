package mock

import (
	"fmt"
	"reflect"
	"sync"

	resolver "github.com/centraunit/goallin_resolver"
)

// Core interfaces
type Logger interface {
	Log(msg string)
}

type Storage interface {
	Save(key, value string) error
}

// ConsoleLogger is a singleton-marked Logger.
type ConsoleLogger struct {
	mu       sync.Mutex
	Messages []string
}

func (l *ConsoleLogger) Singleton() {}

func (l *ConsoleLogger) Log(msg string) {
	l.mu.Lock()
	l.Messages = append(l.Messages, msg)
	l.mu.Unlock()
}

// NoopLogger is a second Logger implementation, used to exercise rebinding.
type NoopLogger struct{}

func (l *NoopLogger) Log(msg string) {}

// FileStorage depends on Logger through its injection hook.
type FileStorage struct {
	Log  Logger
	Data map[string]string
}

func (s *FileStorage) Inject(log Logger) {
	s.Log = log
	s.Data = make(map[string]string)
}

func (s *FileStorage) Save(key, value string) error {
	if s.Data == nil {
		return fmt.Errorf("storage not initialized")
	}
	s.Data[key] = value
	s.Log.Log("saved " + key)
	return nil
}

// Counter has no hook and no singleton capability; every resolution builds a
// fresh instance.
type Counter struct {
	N int
}

// Settings is constructed through a registered constructor so explicit
// arguments can be observed.
type Settings struct {
	Path    string
	Verbose bool
}

func NewSettings(path string) *Settings {
	return &Settings{Path: path}
}

func NewSettingsChecked(path string) (*Settings, error) {
	if path == "" {
		return nil, fmt.Errorf("empty path")
	}
	return &Settings{Path: path}, nil
}

// Deep concrete chain: DeepC -> DeepB -> DeepA.
type DeepA struct {
	Value string
}

type DeepB struct {
	A *DeepA
}

func (b *DeepB) Inject(a *DeepA) {
	a.Value = "deep"
	b.A = a
}

type DeepC struct {
	B *DeepB
}

func (c *DeepC) Inject(b *DeepB) {
	c.B = b
}

// Recorder collects construction-order events; singleton so every fixture in
// one test observes the same instance.
type Recorder struct {
	mu     sync.Mutex
	Events []string
}

func (r *Recorder) Singleton() {}

func (r *Recorder) Add(ev string) {
	r.mu.Lock()
	r.Events = append(r.Events, ev)
	r.mu.Unlock()
}

// Ordering fixtures: the consumer declares (First, Second) and each
// implementation records when it is built.
type First interface {
	FirstMark()
}

type Second interface {
	SecondMark()
}

type FirstImpl struct {
	Rec *Recorder
}

func (f *FirstImpl) FirstMark() {}

func (f *FirstImpl) Inject(rec *Recorder) {
	rec.Add("first")
	f.Rec = rec
}

type SecondImpl struct {
	Rec *Recorder
}

func (s *SecondImpl) SecondMark() {}

func (s *SecondImpl) Inject(rec *Recorder) {
	rec.Add("second")
	s.Rec = rec
}

type OrderedConsumer struct {
	A First
	B Second
}

func (o *OrderedConsumer) Inject(a First, b Second) {
	o.A = a
	o.B = b
}

// OptionalConsumer declares a nullable Logger dependency.
type OptionalConsumer struct {
	Log resolver.Optional[Logger]
}

func (o *OptionalConsumer) Inject(log resolver.Optional[Logger]) {
	o.Log = log
}

// RequiredConsumer declares a required Logger dependency.
type RequiredConsumer struct {
	Log Logger
}

func (c *RequiredConsumer) Inject(log Logger) {
	c.Log = log
}

// ContainerAware receives the container itself and uses it for dynamic
// lookups after construction.
type ContainerAware struct {
	C resolver.Container
}

func (a *ContainerAware) Inject(c resolver.Container) {
	a.C = c
}

func (a *ContainerAware) LookupLogger() (Logger, error) {
	inst, err := a.C.ResolveByInterface(reflect.TypeOf((*Logger)(nil)).Elem())
	if err != nil || inst == nil {
		return nil, err
	}
	return inst.(Logger), nil
}

// Circular pair.
type CycleA struct {
	B *CycleB
}

func (a *CycleA) Inject(b *CycleB) {
	a.B = b
}

type CycleB struct {
	A *CycleA
}

func (b *CycleB) Inject(a *CycleA) {
	b.A = a
}

// PrimitiveConsumer declares a dependency no registry can satisfy.
type PrimitiveConsumer struct {
	N int
}

func (p *PrimitiveConsumer) Inject(n int) {
	p.N = n
}

// WireConsumer declares its dependencies through a non-default hook name.
type WireConsumer struct {
	Log Logger
}

func (w *WireConsumer) Wire(log Logger) {
	w.Log = log
}

// FailingConsumer aborts resolution from its hook.
type FailingConsumer struct{}

func (f *FailingConsumer) Inject(log Logger) error {
	return fmt.Errorf("refusing logger")
}
