package dllist

import "fmt"

// DefaultDumpName имя диагностического дампа по умолчанию.
const DefaultDumpName = "graph.dot"

// Option опция создания списка.
type Option interface {
	String() string
	apply(s *settings)
}

// WithDumper задаёт получателя диагностических дампов.
func WithDumper(d Dumper) Option {
	return dumperOption{d: d}
}

// WithPersister задаёт хранилище значений списка.
func WithPersister(p Persister) Option {
	return persisterOption{p: p}
}

// WithDumpName задаёт имя дампа, создаваемого перед аварийным завершением.
func WithDumpName(name string) Option {
	return dumpNameOption(name)
}

type settings struct {
	dumper    Dumper
	persister Persister
	dumpName  string
}

func defaultSettings() settings {
	return settings{
		dumpName: DefaultDumpName,
	}
}

type dumperOption struct {
	d Dumper
}

func (o dumperOption) String() string {
	return fmt.Sprintf("set dumper %T", o.d)
}

func (o dumperOption) apply(s *settings) {
	s.dumper = o.d
}

type persisterOption struct {
	p Persister
}

func (o persisterOption) String() string {
	return fmt.Sprintf("set persister %T", o.p)
}

func (o persisterOption) apply(s *settings) {
	s.persister = o.p
}

type dumpNameOption string

func (o dumpNameOption) String() string {
	return fmt.Sprintf("set failure dump name to '%s'", string(o))
}

func (o dumpNameOption) apply(s *settings) {
	s.dumpName = string(o)
}
