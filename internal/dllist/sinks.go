package dllist

//go:generate mockgen -destination=../listmocks/sinks_mocks.go -package=listmocks . Dumper,Persister

// Dumper получатель диагностических слепков списка.
type Dumper interface {
	// Dump сохранение слепка под данным именем.
	Dump(name string, s Snapshot) error
}

// Persister хранилище значений списка.
type Persister interface {
	// Persist сохранение значений в порядке от головы к хвосту.
	Persist(name string, values []any) error
}
